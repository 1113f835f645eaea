package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"csvscope/domain/table"
)

// Mirrors the reference scenario: name ["Al","Bo"], age [30, missing].
func newSparseTable() *table.Table {
	return table.New("sparse.csv", []table.Column{
		{
			Name:  "name",
			Kind:  table.KindText,
			Cells: []table.Cell{{Raw: "Al"}, {Raw: "Bo"}},
		},
		{
			Name:  "age",
			Kind:  table.KindNumeric,
			Cells: []table.Cell{{Raw: "30"}, {Missing: true}},
		},
	})
}

func TestMissingSummary_CountsAndPercentages(t *testing.T) {
	out := MissingSummary(newSparseTable())

	assert.Contains(t, out, "=== NaN SUMMARY ===")
	assert.Contains(t, out, "age")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "0.00")
	assert.NotContains(t, out, "No missing values found!")
}

func TestMissingSummary_CleanTableGetsConfirmation(t *testing.T) {
	out := MissingSummary(newPeopleTable())

	assert.Contains(t, out, "No missing values found!")
}

func TestMissingPercentage(t *testing.T) {
	assert.Equal(t, 50.0, MissingPercentage(1, 2))
	assert.Equal(t, 0.0, MissingPercentage(0, 10))
	assert.Equal(t, 100.0, MissingPercentage(10, 10))
	// Rounded to two decimals, each column independent of the others.
	assert.Equal(t, 33.33, MissingPercentage(1, 3))
	assert.Equal(t, 66.67, MissingPercentage(2, 3))
	// Zero-row table reports zero rather than dividing by zero.
	assert.Equal(t, 0.0, MissingPercentage(0, 0))
}
