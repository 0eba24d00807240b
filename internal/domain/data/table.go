package data

import (
	"fmt"
	"strings"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/leengari/csvjoin/internal/domain/errors"
)

// Table is an ordered sequence of rows that all share the header's column set
type Table struct {
	mu      sync.RWMutex
	Name    string   // usually the source path
	Columns []string // header row, in file order
	Rows    []Row
}

// NewTable creates an empty table with the given header
func NewTable(name string, columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{
		Name:    name,
		Columns: cols,
		Rows:    []Row{},
	}
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// Append adds a row to the table without validation
func (t *Table) Append(r Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Rows = append(t.Rows, r)
}

// ResolveColumn finds the header entry matching name case-insensitively.
// An exact match wins over a case-folded one.
func (t *Table) ResolveColumn(name string) (string, bool) {
	for _, col := range t.Columns {
		if col == name {
			return col, true
		}
	}
	for _, col := range t.Columns {
		if strings.EqualFold(col, name) {
			return col, true
		}
	}
	return "", false
}

// Validate checks that every row carries exactly the header's column set
func (t *Table) Validate() error {
	t.RLock()
	defer t.RUnlock()

	for i, row := range t.Rows {
		if row.Len() != len(t.Columns) {
			return errors.NewMalformedTable(t.Name, 0,
				fmt.Sprintf("row %d has %d columns, header has %d", i, row.Len(), len(t.Columns)))
		}
		for _, col := range t.Columns {
			if _, ok := row.Get(col); !ok {
				return errors.NewMalformedTable(t.Name, 0,
					fmt.Sprintf("row %d is missing column %q", i, col))
			}
		}
	}
	return nil
}

// Columnar converts the table into column name -> values, in header order
func (t *Table) Columnar() *orderedmap.OrderedMap[string, []string] {
	t.RLock()
	defer t.RUnlock()

	out := orderedmap.New[string, []string]()
	for _, col := range t.Columns {
		values := make([]string, len(t.Rows))
		for i, row := range t.Rows {
			values[i], _ = row.Get(col)
		}
		out.Set(col, values)
	}
	return out
}

// FromColumnar is the inverse of Columnar.
// Every column must hold the same number of values.
func FromColumnar(name string, cols *orderedmap.OrderedMap[string, []string]) (*Table, error) {
	if cols == nil || cols.Len() == 0 {
		return NewTable(name, nil), nil
	}

	header := make([]string, 0, cols.Len())
	n := len(cols.Oldest().Value)
	for pair := cols.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) != n {
			return nil, errors.NewMalformedTable(name, 0,
				fmt.Sprintf("column %q has %d values, expected %d", pair.Key, len(pair.Value), n))
		}
		header = append(header, pair.Key)
	}

	t := NewTable(name, header)
	for i := 0; i < n; i++ {
		row := NewRow()
		for pair := cols.Oldest(); pair != nil; pair = pair.Next() {
			row.Set(pair.Key, pair.Value[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
