package analysis

import (
	"fmt"
	"strings"

	"csvscope/domain/table"
	"csvscope/internal/errors"
	"csvscope/internal/report"
)

// notApplicable marks statistics that do not exist for a column, such
// as the mean of a text column.
const notApplicable = "N/A"

// ColumnStats is the ephemeral per-column statistics record,
// recomputed on each request.
type ColumnStats struct {
	Column       string
	Mean         string
	UniqueValues int
	TopValue     string
	MissingCount int
	Kind         table.Kind
}

// ComputeColumnStats computes the on-demand statistics for one column.
func ComputeColumnStats(t *table.Table, name string) (*ColumnStats, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, errors.UnknownColumn(name)
	}

	cs := &ColumnStats{
		Column:       col.Name,
		Mean:         notApplicable,
		TopValue:     notApplicable,
		UniqueValues: col.UniqueCount(),
		MissingCount: col.MissingCount(),
		Kind:         col.Kind,
	}

	if col.IsNumeric() {
		if values := col.Floats(); len(values) > 0 {
			cs.Mean = report.Float(mean(values))
		}
	}
	if top, _, ok := col.TopValue(); ok {
		cs.TopValue = top
	}
	return cs, nil
}

// Report renders the column statistics as a Statistic/Value grid.
func (cs *ColumnStats) Report() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("=== COLUMN STATS: %s ===\n\n", cs.Column))
	sb.WriteString(report.Grid(
		[]string{"Statistic", "Value"},
		[][]string{
			{"Mean", cs.Mean},
			{"Unique Values", report.Int(cs.UniqueValues)},
			{"Top Value", cs.TopValue},
			{"NaN Count", report.Int(cs.MissingCount)},
			{"Data Type", string(cs.Kind)},
		},
	))
	return sb.String()
}
