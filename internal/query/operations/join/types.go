package join

import (
	"fmt"
	"strings"

	"github.com/leengari/csvjoin/internal/domain/data"
)

// Type represents the type of JOIN operation
type Type int

const (
	TypeInner Type = iota // Returns only matching pairs
	TypeLeft              // Returns the left table augmented with matches
	TypeRight             // Returns the right table augmented with matches
)

// String returns the string representation of the JOIN type
func (jt Type) String() string {
	switch jt {
	case TypeInner:
		return "INNER JOIN"
	case TypeLeft:
		return "LEFT JOIN"
	case TypeRight:
		return "RIGHT JOIN"
	default:
		return "UNKNOWN JOIN"
	}
}

// ParseType maps "inner", "left" and "right" (any case) to a Type
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inner", "":
		return TypeInner, nil
	case "left", "left-outer", "leftouter":
		return TypeLeft, nil
	case "right", "right-outer", "rightouter":
		return TypeRight, nil
	default:
		return 0, fmt.Errorf("unknown join type: %q", s)
	}
}

// Result holds everything a single pass of the matcher produces
type Result struct {
	// Left is a copy of the left input where every matched row carries the
	// fields of its matches. A row matching several right rows keeps the
	// values of the last one.
	Left *data.Table
	// Matches holds one merged row per matching (left, right) pair, in
	// left-major, right-minor order.
	Matches []data.Row
	// Columns is the left header followed by the right columns it lacks
	Columns []string
}

// Inner returns the inner-join table
func (r *Result) Inner() *data.Table {
	t := data.NewTable(r.Left.Name, r.Columns)
	t.Rows = r.Matches
	return t
}

// Augmented returns the left-augmented table with the unioned header
func (r *Result) Augmented() *data.Table {
	t := data.NewTable(r.Left.Name, r.Columns)
	t.Rows = r.Left.Rows
	return t
}
