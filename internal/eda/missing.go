package eda

import (
	"heartdash/domain/dataset"
)

// ColumnCount pairs a column name with a count
type ColumnCount struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
}

// MissingCounts counts null cells per column, in column order
func MissingCounts(ds *dataset.Dataset) ([]ColumnCount, error) {
	cols := ds.Columns()
	out := make([]ColumnCount, 0, len(cols))
	for _, name := range cols {
		nulls, err := ds.Nulls(name)
		if err != nil {
			return nil, err
		}
		n := 0
		for _, isNull := range nulls {
			if isNull {
				n++
			}
		}
		out = append(out, ColumnCount{Column: name, Count: n})
	}
	return out, nil
}

// TotalMissing sums the counts
func TotalMissing(counts []ColumnCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}
