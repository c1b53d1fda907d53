package testkit

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeartDataGenerator_Shape(t *testing.T) {
	records := NewHeartDataGenerator(DefaultHeartConfig()).Records()

	require.Len(t, records, 304)
	assert.Equal(t, HeartColumns, records[0])
	for i, rec := range records {
		assert.Len(t, rec, 14, "record %d", i)
	}
}

func TestHeartDataGenerator_Deterministic(t *testing.T) {
	g := NewHeartDataGenerator(DefaultHeartConfig())
	assert.Equal(t, g.Records(), g.Records())
	assert.Equal(t, g.Records(), NewHeartDataGenerator(DefaultHeartConfig()).Records())
}

func TestHeartDataGenerator_CategoricalCardinality(t *testing.T) {
	records := NewHeartDataGenerator(DefaultHeartConfig()).Records()

	distinct := make(map[string]map[string]bool)
	for _, rec := range records[1:] {
		for j, v := range rec {
			col := HeartColumns[j]
			if distinct[col] == nil {
				distinct[col] = make(map[string]bool)
			}
			distinct[col][v] = true
		}
	}

	for _, col := range HeartColumns {
		isCategorical := indexOf(HeartCategoricalColumns, col) >= 0
		if isCategorical {
			assert.Less(t, len(distinct[col]), 10, "column %s", col)
		} else {
			assert.GreaterOrEqual(t, len(distinct[col]), 10, "column %s", col)
		}
	}
	assert.Len(t, distinct["target"], 2)
}

func TestHeartDataGenerator_NullCells(t *testing.T) {
	cfg := DefaultHeartConfig()
	cfg.NullCells = map[string]int{"chol": 7, "ca": 4}
	records := NewHeartDataGenerator(cfg).Records()

	nulls := map[string]int{}
	for _, rec := range records[1:] {
		for j, v := range rec {
			if v == "" {
				nulls[HeartColumns[j]]++
			}
		}
	}
	assert.Equal(t, map[string]int{"chol": 7, "ca": 4}, nulls)
}

func TestHeartDataGenerator_ValuesParse(t *testing.T) {
	for _, rec := range NewHeartDataGenerator(DefaultHeartConfig()).Records()[1:] {
		for j, v := range rec {
			_, err := strconv.ParseFloat(v, 64)
			assert.NoError(t, err, "column %s", HeartColumns[j])
		}
	}
}

func TestHeartDataGenerator_WriteFiles(t *testing.T) {
	dir := t.TempDir()
	g := NewHeartDataGenerator(DefaultHeartConfig())

	require.NoError(t, g.WriteCSV(filepath.Join(dir, "heart.csv")))
	require.NoError(t, g.WriteXLSX(filepath.Join(dir, "heart.xlsx")))
	assert.FileExists(t, filepath.Join(dir, "heart.csv"))
	assert.FileExists(t, filepath.Join(dir, "heart.xlsx"))
}
