package analysis

import (
	"fmt"
	"math"
	"strings"

	"csvscope/domain/table"
	"csvscope/internal/report"
)

// MissingSummary reports, per column, the absolute missing-value count
// and that count as a percentage of total rows rounded to two
// decimals. Percentages are independent per column.
func MissingSummary(t *table.Table) string {
	var sb strings.Builder
	sb.WriteString("=== NaN SUMMARY ===\n\n")

	totalRows := t.RowCount()
	rows := make([][]string, len(t.Columns))
	for i := range t.Columns {
		col := &t.Columns[i]
		missing := col.MissingCount()
		rows[i] = []string{
			col.Name,
			report.Int(missing),
			fmt.Sprintf("%.2f", MissingPercentage(missing, totalRows)),
		}
	}
	sb.WriteString(report.Grid([]string{"Column", "NaN Count", "Percentage (%)"}, rows))

	if t.MissingTotal() == 0 {
		sb.WriteString("\nNo missing values found!\n")
	}
	return sb.String()
}

// MissingPercentage is 100*missing/totalRows rounded to two decimals.
func MissingPercentage(missing, totalRows int) float64 {
	if totalRows == 0 {
		return 0
	}
	pct := 100 * float64(missing) / float64(totalRows)
	return math.Round(pct*100) / 100
}
