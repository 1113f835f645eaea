package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable() *Table {
	return New("people.csv", []Column{
		{
			Name: "name",
			Kind: KindText,
			Cells: []Cell{
				{Raw: "Al"},
				{Raw: "Bo"},
				{Raw: "Al"},
			},
		},
		{
			Name: "age",
			Kind: KindNumeric,
			Cells: []Cell{
				{Raw: "30"},
				{Missing: true},
				{Raw: "45"},
			},
		},
	})
}

func TestTable_Counts(t *testing.T) {
	tbl := newTestTable()

	assert.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, []string{"name", "age"}, tbl.ColumnNames())
	assert.Equal(t, 1, tbl.MissingTotal())
	assert.False(t, tbl.ID.IsEmpty())
}

func TestTable_ColumnLookup(t *testing.T) {
	tbl := newTestTable()

	col, ok := tbl.Column("age")
	require.True(t, ok)
	assert.Equal(t, KindNumeric, col.Kind)

	_, ok = tbl.Column("salary")
	assert.False(t, ok)
}

func TestColumn_MissingAndUnique(t *testing.T) {
	tbl := newTestTable()

	name, _ := tbl.Column("name")
	assert.Equal(t, 0, name.MissingCount())
	assert.Equal(t, 3, name.NonNullCount())
	assert.Equal(t, 2, name.UniqueCount())

	age, _ := tbl.Column("age")
	assert.Equal(t, 1, age.MissingCount())
	assert.Equal(t, 2, age.NonNullCount())
	assert.Equal(t, 2, age.UniqueCount())
}

func TestColumn_TopValue(t *testing.T) {
	tbl := newTestTable()

	name, _ := tbl.Column("name")
	top, freq, ok := name.TopValue()
	require.True(t, ok)
	assert.Equal(t, "Al", top)
	assert.Equal(t, 2, freq)

	empty := Column{Name: "empty", Kind: KindText, Cells: []Cell{{Missing: true}, {Missing: true}}}
	_, _, ok = empty.TopValue()
	assert.False(t, ok)
}

func TestColumn_TopValueTieKeepsFirstSeen(t *testing.T) {
	col := Column{Name: "city", Kind: KindText, Cells: []Cell{
		{Raw: "Oslo"},
		{Raw: "Turin"},
		{Raw: "Turin"},
		{Raw: "Oslo"},
	}}

	top, freq, ok := col.TopValue()
	require.True(t, ok)
	assert.Equal(t, "Oslo", top)
	assert.Equal(t, 2, freq)
}

func TestColumn_FloatsSkipsMissingAndUnparseable(t *testing.T) {
	col := Column{Name: "score", Kind: KindNumeric, Cells: []Cell{
		{Raw: "1.5"},
		{Missing: true},
		{Raw: "oops"},
		{Raw: "-2"},
	}}

	assert.Equal(t, []float64{1.5, -2}, col.Floats())
}
