package data

import (
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row represents a single table row
// Key = column name, Value = cell value
// Fields keep their insertion order, which is the order they are written out in
type Row struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewRow creates an empty Row
func NewRow() Row {
	return Row{fields: orderedmap.New[string, string]()}
}

// RowFromPairs builds a row from alternating column/value arguments
// RowFromPairs("id", "1", "name", "x")
func RowFromPairs(kv ...string) Row {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("RowFromPairs: odd number of arguments (%d)", len(kv)))
	}
	r := NewRow()
	for i := 0; i < len(kv); i += 2 {
		r.Set(kv[i], kv[i+1])
	}
	return r
}

func (r *Row) init() {
	if r.fields == nil {
		r.fields = orderedmap.New[string, string]()
	}
}

// Set adds or overwrites a field; new columns are appended at the end
func (r *Row) Set(column, value string) {
	r.init()
	r.fields.Set(column, value)
}

// Get returns the value stored under the exact column name
func (r Row) Get(column string) (string, bool) {
	if r.fields == nil {
		return "", false
	}
	return r.fields.Get(column)
}

// Lookup resolves a column case-insensitively.
// An exact match wins over a case-folded one.
func (r Row) Lookup(column string) (string, bool) {
	if v, ok := r.Get(column); ok {
		return v, true
	}
	if r.fields == nil {
		return "", false
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		if strings.EqualFold(pair.Key, column) {
			return pair.Value, true
		}
	}
	return "", false
}

// Len returns the number of fields
func (r Row) Len() int {
	if r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Columns returns the column names in insertion order
func (r Row) Columns() []string {
	cols := make([]string, 0, r.Len())
	if r.fields == nil {
		return cols
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		cols = append(cols, pair.Key)
	}
	return cols
}

// Copy creates a deep copy of the row to prevent mutation
func (r Row) Copy() Row {
	c := NewRow()
	if r.fields == nil {
		return c
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		c.fields.Set(pair.Key, pair.Value)
	}
	return c
}

// Merge writes every field of other into r. Fields of other win on conflict
// and columns r does not have yet are appended in other's order.
func (r *Row) Merge(other Row) {
	r.init()
	if other.fields == nil {
		return
	}
	for pair := other.fields.Oldest(); pair != nil; pair = pair.Next() {
		r.fields.Set(pair.Key, pair.Value)
	}
}

// Project returns the values for the given columns in order.
// Columns the row does not carry yield an empty string.
func (r Row) Project(columns []string) []string {
	out := make([]string, len(columns))
	for i, col := range columns {
		out[i], _ = r.Get(col)
	}
	return out
}

// Map returns the fields as a plain map (order is lost)
func (r Row) Map() map[string]string {
	m := make(map[string]string, r.Len())
	if r.fields == nil {
		return m
	}
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		m[pair.Key] = pair.Value
	}
	return m
}

// MarshalJSON implements json.Marshaler interface
// Fields are emitted in column order
func (r Row) MarshalJSON() ([]byte, error) {
	if r.fields == nil {
		return []byte("{}"), nil
	}
	return r.fields.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler interface
// Keys keep the order they appear in the document
func (r *Row) UnmarshalJSON(b []byte) error {
	m := orderedmap.New[string, string]()
	if err := json.Unmarshal(b, m); err != nil {
		return err
	}
	r.fields = m
	return nil
}

// String returns a string representation for debugging
func (r Row) String() string {
	parts := make([]string, 0, r.Len())
	if r.fields != nil {
		for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
			parts = append(parts, pair.Key+":"+pair.Value)
		}
	}
	return "Row{" + strings.Join(parts, " ") + "}"
}
