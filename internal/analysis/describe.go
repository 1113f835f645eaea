// Package analysis implements the read-only views over the current
// dataset: the full summary, the missing-value summary, and per-column
// statistics. Every view recomputes from scratch and returns formatted
// report text; nothing here mutates the table.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"csvscope/domain/table"
	"csvscope/internal/report"

	"github.com/montanaflynn/stats"
)

// describeRows is the row order of the descriptive-statistics grid,
// mirroring an include-all describe: count and the categorical trio
// first, then the numeric spread.
var describeRows = []string{"count", "unique", "top", "freq", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe produces the full summary report: dataset info per column,
// then descriptive statistics for every column. Numeric columns get
// count/mean/std/min/quartiles/max; non-numeric columns get
// count/unique/top/freq. Cells that do not apply render as "NaN".
func Describe(t *table.Table) string {
	var sb strings.Builder

	sb.WriteString("=== DATASET INFO ===\n\n")
	sb.WriteString(fmt.Sprintf("Rows: %d, Columns: %d\n\n", t.RowCount(), t.ColumnCount()))

	infoRows := make([][]string, len(t.Columns))
	for i := range t.Columns {
		col := &t.Columns[i]
		infoRows[i] = []string{
			report.Int(i),
			col.Name,
			fmt.Sprintf("%d non-null", col.NonNullCount()),
			string(col.Kind),
		}
	}
	sb.WriteString(report.Grid([]string{"#", "Column", "Non-Null", "Kind"}, infoRows))

	sb.WriteString("\n=== DESCRIPTIVE STATISTICS ===\n\n")

	headers := append([]string{"Statistic"}, t.ColumnNames()...)
	cells := make(map[string][]string, len(describeRows))
	for _, name := range describeRows {
		cells[name] = []string{name}
	}

	for i := range t.Columns {
		col := &t.Columns[i]
		desc := describeColumn(col)
		for _, name := range describeRows {
			cells[name] = append(cells[name], desc[name])
		}
	}

	rows := make([][]string, 0, len(describeRows))
	for _, name := range describeRows {
		rows = append(rows, cells[name])
	}
	sb.WriteString(report.Grid(headers, rows))

	return sb.String()
}

// describeColumn computes one column of the describe grid.
func describeColumn(col *table.Column) map[string]string {
	desc := make(map[string]string, len(describeRows))
	for _, name := range describeRows {
		desc[name] = report.NaNToken
	}
	desc["count"] = report.Int(col.NonNullCount())

	if col.IsNumeric() {
		values := col.Floats()
		if len(values) == 0 {
			return desc
		}
		desc["mean"] = report.Float(mean(values))
		desc["std"] = report.Float(sampleStdDev(values))
		desc["min"] = statOrNaN(stats.Min(values))
		desc["25%"] = statOrNaN(stats.Percentile(values, 25))
		desc["50%"] = statOrNaN(stats.Median(values))
		desc["75%"] = statOrNaN(stats.Percentile(values, 75))
		desc["max"] = statOrNaN(stats.Max(values))
		return desc
	}

	desc["unique"] = report.Int(col.UniqueCount())
	if top, freq, ok := col.TopValue(); ok {
		desc["top"] = top
		desc["freq"] = report.Int(freq)
	}
	return desc
}

func statOrNaN(v float64, err error) string {
	if err != nil {
		return report.NaNToken
	}
	return report.Float(v)
}

func mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// sampleStdDev is the n-1 denominator standard deviation; a single
// value has no spread to estimate.
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	sd, err := stats.StandardDeviationSample(values)
	if err != nil {
		return math.NaN()
	}
	return sd
}
