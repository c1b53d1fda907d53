package eda

import (
	"sort"
	"strconv"

	"heartdash/domain/dataset"
)

// CategoricalThreshold is the distinct-value count below which a column is
// treated as categorical
const CategoricalThreshold = 10

// DistinctCount counts the distinct non-null values of a column
func DistinctCount(ds *dataset.Dataset, column string) (int, error) {
	levels, err := Levels(ds, column)
	if err != nil {
		return 0, err
	}
	return len(levels), nil
}

// CategoricalColumns returns, in column order, every column whose distinct
// non-null value count is strictly below maxDistinct
func CategoricalColumns(ds *dataset.Dataset, maxDistinct int) ([]string, error) {
	var out []string
	for _, name := range ds.Columns() {
		n, err := DistinctCount(ds, name)
		if err != nil {
			return nil, err
		}
		if n < maxDistinct {
			out = append(out, name)
		}
	}
	return out, nil
}

// Levels returns the distinct non-null values of a column, sorted numerically
// for numeric columns and lexically otherwise
func Levels(ds *dataset.Dataset, column string) ([]string, error) {
	labels, err := ds.Labels(column)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var levels []string
	for _, l := range labels {
		if l == "" || seen[l] {
			continue
		}
		seen[l] = true
		levels = append(levels, l)
	}

	if ds.IsNumeric(column) {
		sort.Slice(levels, func(i, j int) bool {
			a, _ := strconv.ParseFloat(levels[i], 64)
			b, _ := strconv.ParseFloat(levels[j], 64)
			return a < b
		})
	} else {
		sort.Strings(levels)
	}
	return levels, nil
}

// HueCounts holds row counts per (level, hue) pair for a count plot
type HueCounts struct {
	Column    string
	Hue       string
	Levels    []string
	HueLevels []string
	// Counts[h][l] is the number of rows with hue HueLevels[h] and value Levels[l].
	Counts [][]int
}

// CountByHue tallies a column split by a hue column. Rows where either cell is
// null are skipped.
func CountByHue(ds *dataset.Dataset, column, hue string) (*HueCounts, error) {
	values, err := ds.Labels(column)
	if err != nil {
		return nil, err
	}
	hues, err := ds.Labels(hue)
	if err != nil {
		return nil, err
	}
	levels, err := Levels(ds, column)
	if err != nil {
		return nil, err
	}
	hueLevels, err := Levels(ds, hue)
	if err != nil {
		return nil, err
	}

	levelIdx := indexMap(levels)
	hueIdx := indexMap(hueLevels)
	counts := make([][]int, len(hueLevels))
	for h := range counts {
		counts[h] = make([]int, len(levels))
	}
	for i, v := range values {
		if v == "" || hues[i] == "" {
			continue
		}
		counts[hueIdx[hues[i]]][levelIdx[v]]++
	}

	return &HueCounts{
		Column:    column,
		Hue:       hue,
		Levels:    levels,
		HueLevels: hueLevels,
		Counts:    counts,
	}, nil
}

func indexMap(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}
