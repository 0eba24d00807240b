package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Sentinels for the join failure taxonomy.
// Callers match with errors.Is; the typed errors below unwrap to them.
var (
	// ErrEmptyJoinSpec means no join columns were supplied
	ErrEmptyJoinSpec = stderrors.New("no join columns supplied")

	// ErrMissingColumn means a join column is absent from one of the inputs
	ErrMissingColumn = stderrors.New("missing join column")

	// ErrNoMatch means the join produced zero matching pairs
	ErrNoMatch = stderrors.New("join produced no matches")

	// ErrMalformedTable means a row disagrees with the header-derived column set
	ErrMalformedTable = stderrors.New("malformed table")
)

// MissingColumnError reports a join column that a table (or row) does not carry
type MissingColumnError struct {
	Table  string // table name, usually the source file
	Column string // requested column as the caller spelled it
}

func (e *MissingColumnError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %q", ErrMissingColumn, e.Column)
	}
	return fmt.Sprintf("%s: %q not found in table %q", ErrMissingColumn, e.Column, e.Table)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}

// NewMissingColumn creates a MissingColumnError
func NewMissingColumn(table, column string) *MissingColumnError {
	return &MissingColumnError{Table: table, Column: column}
}

// MalformedTableError reports a structural problem found while loading a table
type MalformedTableError struct {
	Table  string // table name
	Line   int    // 1-based line in the source (0 if unknown)
	Reason string // human-readable explanation
	Err    error  // underlying parse error, if any
}

func (e *MalformedTableError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("%s %q", ErrMalformedTable, e.Table))

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

// Unwrap exposes both the sentinel and the underlying cause
func (e *MalformedTableError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedTable, e.Err}
	}
	return []error{ErrMalformedTable}
}

// NewMalformedTable creates a MalformedTableError without an underlying cause
func NewMalformedTable(table string, line int, reason string) *MalformedTableError {
	return &MalformedTableError{
		Table:  table,
		Line:   line,
		Reason: reason,
	}
}
