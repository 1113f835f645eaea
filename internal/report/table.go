// Package report renders analysis results as grid-formatted text for
// the output pane and the exporter.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// NaNToken is printed where a statistic is not applicable, rather than
// leaving the cell blank.
const NaNToken = "NaN"

// Grid renders headers and rows as a bordered text table.
func Grid(headers []string, rows [][]string) string {
	var sb strings.Builder
	tw := tablewriter.NewWriter(&sb)
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_CENTER)
	tw.SetRowLine(true)
	tw.AppendBulk(rows)
	tw.Render()
	return sb.String()
}

// Float formats a numeric statistic to two decimal places, or the NaN
// token when the value is not a number.
func Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NaNToken
	}
	return fmt.Sprintf("%.2f", v)
}

// Int formats an integer cell.
func Int(v int) string {
	return fmt.Sprintf("%d", v)
}
