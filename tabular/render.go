package tabular

import (
	"strings"

	"github.com/ghetzel/go-stockutil/typeutil"

	"github.com/ghetzel/go-toolbelt/textfmt"
)

// String renders the table as aligned text with a header rule, sized by
// display width so wide runes stay aligned.
func (self *Table) String() string {
	widths := make([]int, len(self.Columns))

	for i, column := range self.Columns {
		widths[i] = textfmt.Width(column)
	}

	cells := make([][]string, len(self.Rows))

	for i, row := range self.Rows {
		cells[i] = make([]string, len(row))

		for j, cell := range row {
			s := typeutil.String(cell)
			cells[i][j] = s

			if j < len(widths) {
				if w := textfmt.Width(s); w > widths[j] {
					widths[j] = w
				}
			}
		}
	}

	var out strings.Builder

	writeRow := func(row []string) {
		for j, cell := range row {
			if j > 0 {
				out.WriteString(`  `)
			}

			out.WriteString(textfmt.PadRight(cell, widths[j]))
		}

		out.WriteString("\n")
	}

	writeRow(self.Columns)

	rules := make([]string, len(self.Columns))

	for i := range rules {
		rules[i] = strings.Repeat(`-`, widths[i])
	}

	writeRow(rules)

	for _, row := range cells {
		writeRow(row)
	}

	return out.String()
}
