// Package table holds the in-memory tabular dataset model.
//
// A Table is an ordered collection of named columns of equal length.
// Each column carries a Kind fixed at load time; cells keep their raw
// string form plus a missing flag, and numeric access parses on demand.
package table

import (
	"strconv"

	"csvscope/domain/core"
)

// Kind is the declared data type of a column, determined once at load
// and treated as fixed thereafter.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
	KindBoolean Kind = "boolean"
)

// Cell is a single entry in a column. Missing cells keep an empty Raw.
type Cell struct {
	Raw     string
	Missing bool
}

// Column is a named sequence of cells with a declared kind.
type Column struct {
	Name  string
	Kind  Kind
	Cells []Cell
}

// Table is the single in-memory dataset. At most one Table is held by
// the session at a time; loads replace it wholesale and cleaning
// operations mutate it in place.
type Table struct {
	ID      core.ID
	Source  string
	Columns []Column
}

// New creates a table over the given columns, assigning a fresh ID.
func New(source string, columns []Column) *Table {
	return &Table{
		ID:      core.NewID(),
		Source:  source,
		Columns: columns,
	}
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// MissingTotal returns the number of missing cells across all columns.
func (t *Table) MissingTotal() int {
	total := 0
	for i := range t.Columns {
		total += t.Columns[i].MissingCount()
	}
	return total
}

// Len returns the number of cells in the column.
func (c *Column) Len() int {
	return len(c.Cells)
}

// IsNumeric reports whether the column's declared kind is numeric.
func (c *Column) IsNumeric() bool {
	return c.Kind == KindNumeric
}

// MissingCount returns the number of missing cells.
func (c *Column) MissingCount() int {
	count := 0
	for _, cell := range c.Cells {
		if cell.Missing {
			count++
		}
	}
	return count
}

// NonNullCount returns the number of non-missing cells.
func (c *Column) NonNullCount() int {
	return len(c.Cells) - c.MissingCount()
}

// UniqueCount returns the number of distinct non-missing values.
func (c *Column) UniqueCount() int {
	seen := make(map[string]bool)
	for _, cell := range c.Cells {
		if !cell.Missing {
			seen[cell.Raw] = true
		}
	}
	return len(seen)
}

// TopValue returns the most frequent non-missing value and its
// frequency. Ties resolve to the value seen first. The bool is false
// when the column holds no values at all.
func (c *Column) TopValue() (string, int, bool) {
	freq := make(map[string]int)
	var order []string
	for _, cell := range c.Cells {
		if cell.Missing {
			continue
		}
		if _, ok := freq[cell.Raw]; !ok {
			order = append(order, cell.Raw)
		}
		freq[cell.Raw]++
	}
	if len(order) == 0 {
		return "", 0, false
	}
	top := order[0]
	for _, v := range order[1:] {
		if freq[v] > freq[top] {
			top = v
		}
	}
	return top, freq[top], true
}

// Floats returns the parsed non-missing numeric values of the column,
// in row order. Cells that fail to parse are skipped.
func (c *Column) Floats() []float64 {
	values := make([]float64, 0, len(c.Cells))
	for _, cell := range c.Cells {
		if cell.Missing {
			continue
		}
		if v, err := strconv.ParseFloat(cell.Raw, 64); err == nil {
			values = append(values, v)
		}
	}
	return values
}
