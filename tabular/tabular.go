// Package tabular converts between row/record data shapes: header+rows
// tables, slices of records, CSV/TSV, and XML documents.
package tabular

import (
	"fmt"
	"sort"

	"github.com/ghetzel/go-stockutil/typeutil"

	"github.com/ghetzel/go-toolbelt/numfmt"
)

// Table is a rectangular dataset: named columns and rows of cells.
type Table struct {
	Columns []string        `json:"columns"`
	Rows    [][]interface{} `json:"rows"`
}

// New returns an empty table with the given columns.
func New(columns ...string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([][]interface{}, 0),
	}
}

// Append adds a row to the table.  Short rows are padded with nils; long rows
// are an error.
func (self *Table) Append(row ...interface{}) error {
	if len(row) > len(self.Columns) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(self.Columns))
	}

	for len(row) < len(self.Columns) {
		row = append(row, nil)
	}

	self.Rows = append(self.Rows, row)
	return nil
}

// Len returns the number of rows.
func (self *Table) Len() int {
	return len(self.Rows)
}

// ColumnIndex returns the position of the named column, or -1.
func (self *Table) ColumnIndex(name string) int {
	for i, column := range self.Columns {
		if column == name {
			return i
		}
	}

	return -1
}

// Column returns all values of the named column.
func (self *Table) Column(name string) ([]interface{}, error) {
	i := self.ColumnIndex(name)

	if i < 0 {
		return nil, fmt.Errorf("no such column %q", name)
	}

	out := make([]interface{}, len(self.Rows))

	for j, row := range self.Rows {
		out[j] = row[i]
	}

	return out, nil
}

// Records converts the table into a slice of column-keyed maps.
func (self *Table) Records() []map[string]interface{} {
	out := make([]map[string]interface{}, len(self.Rows))

	for i, row := range self.Rows {
		record := make(map[string]interface{}, len(self.Columns))

		for j, column := range self.Columns {
			record[column] = row[j]
		}

		out[i] = record
	}

	return out
}

// Summarize computes descriptive statistics over the named (numeric) column.
func (self *Table) Summarize(column string) (*numfmt.Summary, error) {
	if values, err := self.Column(column); err == nil {
		return numfmt.Summarize(values)
	} else {
		return nil, err
	}
}

// SortBy reorders rows by the named column, ascending (or descending with
// reverse), comparing values numerically when both parse as numbers.
func (self *Table) SortBy(column string, reverse ...bool) error {
	i := self.ColumnIndex(column)

	if i < 0 {
		return fmt.Errorf("no such column %q", column)
	}

	desc := len(reverse) > 0 && reverse[0]

	sort.SliceStable(self.Rows, func(a int, b int) bool {
		less := lessValues(self.Rows[a][i], self.Rows[b][i])

		if desc {
			return !less
		}

		return less
	})

	return nil
}

func lessValues(a interface{}, b interface{}) bool {
	av := typeutil.V(a)
	bv := typeutil.V(b)

	if numfmt.IsNumeric(a) && numfmt.IsNumeric(b) {
		return av.Float() < bv.Float()
	}

	return av.String() < bv.String()
}

// FromRecords builds a table from a slice of maps.  Column order follows the
// given columns, or the sorted union of all record keys if omitted.
func FromRecords(records []map[string]interface{}, columns ...string) *Table {
	if len(columns) == 0 {
		seen := make(map[string]bool)

		for _, record := range records {
			for k := range record {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}

		sort.Strings(columns)
	}

	table := New(columns...)

	for _, record := range records {
		row := make([]interface{}, len(columns))

		for i, column := range columns {
			row[i] = record[column]
		}

		table.Rows = append(table.Rows, row)
	}

	return table
}
