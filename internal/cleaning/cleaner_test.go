package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"csvscope/domain/table"
	"csvscope/internal/errors"
)

// name ["Al","Bo"], age [30, missing]: the canonical two-row dataset
// used across the cleaning cases.
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

func TestApply_DropMissingRows(t *testing.T) {
	tbl := newSparseTable()

	require.NoError(t, Apply(tbl, DropMissingRows))

	assert.Equal(t, 1, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
	name, _ := tbl.Column("name")
	age, _ := tbl.Column("age")
	assert.Equal(t, "Al", name.Cells[0].Raw)
	assert.Equal(t, "30", age.Cells[0].Raw)
	assert.Equal(t, 0, tbl.MissingTotal())
}

func TestApply_DropMissingRows_PreservesOrder(t *testing.T) {
	tbl := table.New("t.csv", []table.Column{
		{
			Name: "n",
			Kind: table.KindNumeric,
			Cells: []table.Cell{
				{Raw: "1"}, {Missing: true}, {Raw: "3"}, {Raw: "4"},
			},
		},
	})

	require.NoError(t, Apply(tbl, DropMissingRows))

	n, _ := tbl.Column("n")
	assert.Equal(t, []float64{1, 3, 4}, n.Floats())
}

func TestApply_DropMissingColumns(t *testing.T) {
	tbl := newSparseTable()

	require.NoError(t, Apply(tbl, DropMissingColumns))

	assert.Equal(t, 1, tbl.ColumnCount())
	assert.Equal(t, []string{"name"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.RowCount())
}

func TestApply_FillMissingWithZero(t *testing.T) {
	tbl := newSparseTable()

	require.NoError(t, Apply(tbl, FillMissingWithZero))

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 0, tbl.MissingTotal())
	age, _ := tbl.Column("age")
	assert.Equal(t, []float64{30, 0}, age.Floats())
	// Filling does not change the declared column kind.
	assert.Equal(t, table.KindNumeric, age.Kind)
}

func TestApply_FillMissingWithZero_TextColumnGetsLiteral(t *testing.T) {
	tbl := table.New("t.csv", []table.Column{
		{
			Name:  "city",
			Kind:  table.KindText,
			Cells: []table.Cell{{Raw: "Oslo"}, {Missing: true}},
		},
	})

	require.NoError(t, Apply(tbl, FillMissingWithZero))

	city, _ := tbl.Column("city")
	assert.Equal(t, "0", city.Cells[1].Raw)
	assert.Equal(t, table.KindText, city.Kind)
}

func TestApply_CleanTableIsUntouched(t *testing.T) {
	tbl := table.New("t.csv", []table.Column{
		{
			Name:  "n",
			Kind:  table.KindNumeric,
			Cells: []table.Cell{{Raw: "1"}, {Raw: "2"}},
		},
	})

	for _, s := range []Strategy{DropMissingRows, DropMissingColumns, FillMissingWithZero} {
		require.NoError(t, Apply(tbl, s))
	}

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 1, tbl.ColumnCount())
}

func TestApply_UnknownStrategy(t *testing.T) {
	err := Apply(newSparseTable(), Strategy(99))
	require.Error(t, err)
	assert.Equal(t, errors.CodeCleanFailed, errors.GetCode(err))
}

func TestLabelsRoundTrip(t *testing.T) {
	labels := Labels()
	require.Equal(t, []string{"Drop NaN Rows", "Drop NaN Columns", "Fill NaN with 0"}, labels)

	for _, label := range labels {
		s, ok := FromLabel(label)
		require.True(t, ok)
		assert.Equal(t, label, s.String())
		assert.NotEmpty(t, s.Confirmation())
	}

	_, ok := FromLabel("Shuffle Rows")
	assert.False(t, ok)
}
