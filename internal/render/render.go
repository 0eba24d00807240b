package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/leengari/csvjoin/internal/domain/data"
)

// NullText is shown for cells a row does not carry (e.g. unmatched outer rows)
const NullText = "NULL"

// PrintTable renders a table as an aligned grid followed by a row count
func PrintTable(w io.Writer, t *data.Table) {
	t.RLock()
	defer t.RUnlock()

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(t.Columns)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			val, ok := row.Get(col)
			if !ok {
				cells[i] = NullText
			} else {
				cells[i] = val
			}
		}
		tw.Append(cells)
	}
	tw.Render()

	fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
}
