package eda

import (
	"math"
	"sort"

	"heartdash/domain/dataset"
	"heartdash/internal/errors"

	"github.com/montanaflynn/stats"
)

// SummaryRow is one row of the transposed describe table
type SummaryRow struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Q50    float64 `json:"q50"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// Describe computes count, mean, sample standard deviation, min, quartiles and
// max for each of the given numeric columns. Nulls are skipped. Statistics that
// need more observations than available are NaN.
func Describe(ds *dataset.Dataset, columns []string) ([]SummaryRow, error) {
	rows := make([]SummaryRow, 0, len(columns))
	for _, name := range columns {
		vals, err := ds.Floats(name)
		if err != nil {
			return nil, err
		}
		row, err := describeValues(name, dropNaN(vals))
		if err != nil {
			return nil, errors.Wrapf(err, "describe %s", name)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func describeValues(name string, data []float64) (SummaryRow, error) {
	nan := math.NaN()
	row := SummaryRow{Column: name, Count: len(data), Mean: nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan}
	if len(data) == 0 {
		return row, nil
	}

	var err error
	if row.Mean, err = stats.Mean(data); err != nil {
		return row, err
	}
	if row.Min, err = stats.Min(data); err != nil {
		return row, err
	}
	if row.Max, err = stats.Max(data); err != nil {
		return row, err
	}
	if len(data) > 1 {
		if row.Std, err = stats.StandardDeviationSample(data); err != nil {
			return row, err
		}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	row.Q25 = Quantile(sorted, 0.25)
	row.Q50 = Quantile(sorted, 0.50)
	row.Q75 = Quantile(sorted, 0.75)
	return row, nil
}

// Quantile returns the q-th quantile of ascending data, interpolating linearly
// between the two closest ranks at position (n-1)*q.
func Quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 || q < 0 || q > 1 {
		return math.NaN()
	}
	pos := float64(n-1) * q
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

func dropNaN(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
