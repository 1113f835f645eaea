// Package cleaning applies destructive missing-value transforms to the
// current dataset in place. Exactly one strategy executes per
// invocation and there is no undo.
package cleaning

import (
	"fmt"

	"csvscope/domain/table"
	"csvscope/internal/errors"
)

// Strategy selects one of the three mutually exclusive cleaning
// transforms.
type Strategy int

const (
	DropMissingRows Strategy = iota + 1
	DropMissingColumns
	FillMissingWithZero
)

// Labels returns the strategy names in menu order.
func Labels() []string {
	return []string{
		DropMissingRows.String(),
		DropMissingColumns.String(),
		FillMissingWithZero.String(),
	}
}

// FromLabel maps a menu label back to its strategy.
func FromLabel(label string) (Strategy, bool) {
	for _, s := range []Strategy{DropMissingRows, DropMissingColumns, FillMissingWithZero} {
		if s.String() == label {
			return s, true
		}
	}
	return 0, false
}

func (s Strategy) String() string {
	switch s {
	case DropMissingRows:
		return "Drop NaN Rows"
	case DropMissingColumns:
		return "Drop NaN Columns"
	case FillMissingWithZero:
		return "Fill NaN with 0"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Confirmation is the message shown after the strategy succeeds.
func (s Strategy) Confirmation() string {
	switch s {
	case DropMissingRows:
		return "NaN rows dropped!"
	case DropMissingColumns:
		return "NaN columns dropped!"
	case FillMissingWithZero:
		return "NaN values filled with 0!"
	}
	return "Cleaning complete"
}

// Apply runs the strategy against the table in place.
func Apply(t *table.Table, s Strategy) error {
	switch s {
	case DropMissingRows:
		dropRows(t)
	case DropMissingColumns:
		dropColumns(t)
	case FillMissingWithZero:
		fillZero(t)
	default:
		return errors.New(errors.CodeCleanFailed, fmt.Sprintf("unknown cleaning strategy %d", int(s)))
	}
	return nil
}

// dropRows removes every row containing at least one missing value,
// preserving the order of the surviving rows.
func dropRows(t *table.Table) {
	rowCount := t.RowCount()
	keep := make([]int, 0, rowCount)
	for row := 0; row < rowCount; row++ {
		complete := true
		for i := range t.Columns {
			if t.Columns[i].Cells[row].Missing {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, row)
		}
	}

	for i := range t.Columns {
		cells := make([]table.Cell, len(keep))
		for j, row := range keep {
			cells[j] = t.Columns[i].Cells[row]
		}
		t.Columns[i].Cells = cells
	}
}

// dropColumns removes every column containing at least one missing
// value. Surviving columns are untouched.
func dropColumns(t *table.Table) {
	kept := t.Columns[:0]
	for i := range t.Columns {
		if t.Columns[i].MissingCount() == 0 {
			kept = append(kept, t.Columns[i])
		}
	}
	t.Columns = kept
}

// fillZero replaces every missing cell with the literal zero. The
// column's declared kind is unchanged: text and boolean columns carry
// the "0" literal, numeric columns parse it as 0.
func fillZero(t *table.Table) {
	for i := range t.Columns {
		for j := range t.Columns[i].Cells {
			if t.Columns[i].Cells[j].Missing {
				t.Columns[i].Cells[j] = table.Cell{Raw: "0"}
			}
		}
	}
}
