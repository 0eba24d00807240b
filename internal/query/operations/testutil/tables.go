package testutil

import (
	"github.com/leengari/csvjoin/internal/domain/data"
)

// CreateTestTable builds a table from a header and rows of values in header order
func CreateTestTable(name string, columns []string, rows ...[]string) *data.Table {
	table := data.NewTable(name, columns)
	for _, values := range rows {
		row := data.NewRow()
		for i, col := range columns {
			row.Set(col, values[i])
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// CreatePeopleTable creates the left-hand table used across join tests
func CreatePeopleTable() *data.Table {
	return CreateTestTable("people",
		[]string{"id", "name"},
		[]string{"1", "x"},
		[]string{"2", "y"},
	)
}

// CreateDeptTable creates the right-hand table used across join tests
// Note: id 2 has no department and id 3 has no person
func CreateDeptTable() *data.Table {
	return CreateTestTable("depts",
		[]string{"id", "dept"},
		[]string{"1", "eng"},
		[]string{"3", "ops"},
	)
}

// CreateOrdersTable creates a table where user 1 has two orders
func CreateOrdersTable() *data.Table {
	return CreateTestTable("orders",
		[]string{"order_id", "ID", "product"},
		[]string{"10", "1", "Laptop"},
		[]string{"11", "1", "Mouse"},
		[]string{"12", "2", "Keyboard"},
	)
}
