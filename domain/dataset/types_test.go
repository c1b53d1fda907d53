package dataset

import (
	"math"
	"testing"

	"heartdash/internal/errors"
	"heartdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func small(t *testing.T) *Dataset {
	t.Helper()
	ds, err := FromRecords("small.csv", [][]string{
		{"age", "oldpeak", "sex", "thal", "note"},
		{"63", "2.3", "1", "1", "a"},
		{"37", "", "1", "NA", "b"},
		{"41", "1.4", "0", "2", ""},
	})
	require.NoError(t, err)
	return ds
}

func TestFromRecords_ShapeAndTypes(t *testing.T) {
	ds := small(t)

	rows, cols := ds.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 5, cols)
	assert.Equal(t, []string{"age", "oldpeak", "sex", "thal", "note"}, ds.Columns())
	assert.Equal(t, []string{"age", "oldpeak", "sex", "thal"}, ds.NumericColumns())
	assert.False(t, ds.IsNumeric("note"))
	assert.Equal(t, "small.csv", ds.Source())
}

func TestFromRecords_HeartSample(t *testing.T) {
	records := testkit.NewHeartDataGenerator(testkit.DefaultHeartConfig()).Records()
	ds, err := FromRecords("heart.csv", records)
	require.NoError(t, err)

	rows, cols := ds.Shape()
	assert.Equal(t, 303, rows)
	assert.Equal(t, 14, cols)
	assert.Equal(t, testkit.HeartColumns, ds.NumericColumns())
}

func TestFromRecords_HeaderOnlyFails(t *testing.T) {
	_, err := FromRecords("empty.csv", [][]string{{"a", "b"}})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDataLoad, errors.GetCode(err))
}

func TestFloatsAndNulls(t *testing.T) {
	ds := small(t)

	vals, err := ds.Floats("oldpeak")
	require.NoError(t, err)
	require.Len(t, vals, 3)
	assert.Equal(t, 2.3, vals[0])
	assert.True(t, math.IsNaN(vals[1]))

	nulls, err := ds.Nulls("thal")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, nulls)

	nulls, err = ds.Nulls("note")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, nulls)

	_, err = ds.Floats("note")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidColumn, errors.GetCode(err))
	assert.Equal(t, `column "note" is not numeric`, err.Error())
}

func TestMissingColumn(t *testing.T) {
	ds := small(t)

	_, err := ds.Floats("target")
	require.Error(t, err)
	assert.Equal(t, errors.CodeMissingColumn, errors.GetCode(err))
	assert.False(t, ds.Has("target"))
	assert.False(t, ds.IsNumeric("target"))
}

func TestLabels(t *testing.T) {
	ds := small(t)

	labels, err := ds.Labels("oldpeak")
	require.NoError(t, err)
	assert.Equal(t, []string{"2.3", "", "1.4"}, labels)

	labels, err = ds.Labels("age")
	require.NoError(t, err)
	assert.Equal(t, []string{"63", "37", "41"}, labels)
}

func TestHead(t *testing.T) {
	ds := small(t)

	p, err := ds.Head(2)
	require.NoError(t, err)
	assert.Equal(t, ds.Columns(), p.Columns)
	assert.Equal(t, [][]string{
		{"63", "2.3", "1", "1", "a"},
		{"37", "NaN", "1", "NaN", "b"},
	}, p.Rows)

	p, err = ds.Head(20)
	require.NoError(t, err)
	assert.Len(t, p.Rows, 3)

	p, err = ds.Head(-1)
	require.NoError(t, err)
	assert.Empty(t, p.Rows)
}
