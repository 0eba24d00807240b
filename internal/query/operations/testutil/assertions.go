package testutil

import (
	"testing"

	"github.com/leengari/csvjoin/internal/domain/data"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnExists checks if a column exists in a row
func AssertColumnExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row.Get(column); !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
	}
}

// AssertColumnNotExists checks if a column does not exist in a row
func AssertColumnNotExists(t *testing.T, row data.Row, column, context string) {
	t.Helper()
	if _, exists := row.Get(column); exists {
		t.Errorf("%s: did not expect column '%s' to exist", context, column)
	}
}

// AssertValue checks the value stored under column
func AssertValue(t *testing.T, row data.Row, column, expected, context string) {
	t.Helper()
	got, exists := row.Get(column)
	if !exists {
		t.Errorf("%s: expected column '%s' to exist", context, column)
		return
	}
	if got != expected {
		t.Errorf("%s: expected %s=%q, got %q", context, column, expected, got)
	}
}

// RowMaps flattens rows for whole-table comparisons
func RowMaps(rows []data.Row) []map[string]string {
	out := make([]map[string]string, len(rows))
	for i, r := range rows {
		out[i] = r.Map()
	}
	return out
}
