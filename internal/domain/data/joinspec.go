package data

import "strings"

// JoinColumn is one equality key of a join
type JoinColumn struct {
	Label  string // free-form name, only used in logs
	Column string // column name, matched case-insensitively
}

// JoinSpec lists the columns two rows must agree on. All entries must hold (AND).
type JoinSpec []JoinColumn

// NewJoinSpec builds a spec whose labels are the column names
func NewJoinSpec(columns ...string) JoinSpec {
	spec := make(JoinSpec, 0, len(columns))
	for _, col := range columns {
		spec = spec.Add(col, col)
	}
	return spec
}

// Add returns the spec with another key column appended
func (s JoinSpec) Add(label, column string) JoinSpec {
	return append(s, JoinColumn{Label: label, Column: column})
}

// Empty reports whether the spec names no columns
func (s JoinSpec) Empty() bool {
	return len(s) == 0
}

// Columns returns the column names in spec order
func (s JoinSpec) Columns() []string {
	cols := make([]string, len(s))
	for i, jc := range s {
		cols[i] = jc.Column
	}
	return cols
}

// String returns a string representation for debugging
func (s JoinSpec) String() string {
	parts := make([]string, len(s))
	for i, jc := range s {
		if jc.Label == jc.Column {
			parts[i] = jc.Column
		} else {
			parts[i] = jc.Label + "=" + jc.Column
		}
	}
	return strings.Join(parts, " AND ")
}
