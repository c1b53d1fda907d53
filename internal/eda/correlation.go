package eda

import (
	"math"

	"heartdash/domain/dataset"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Correlation is a symmetric Pearson correlation matrix over named columns
type Correlation struct {
	Columns []string
	Matrix  *mat.SymDense
}

// At returns the coefficient for columns i and j
func (c *Correlation) At(i, j int) float64 {
	return c.Matrix.At(i, j)
}

// CorrelationMatrix computes pairwise Pearson correlation over the given
// numeric columns. Each pair uses the rows where both values are present.
// Pairs with fewer than two such rows, or with zero variance, are NaN.
func CorrelationMatrix(ds *dataset.Dataset, columns []string) (*Correlation, error) {
	data := make([][]float64, len(columns))
	for i, name := range columns {
		vals, err := ds.Floats(name)
		if err != nil {
			return nil, err
		}
		data[i] = vals
	}

	n := len(columns)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, pairwise(data[i], data[j], i == j))
		}
	}
	return &Correlation{Columns: append([]string(nil), columns...), Matrix: m}, nil
}

func pairwise(a, b []float64, diagonal bool) float64 {
	x := make([]float64, 0, len(a))
	y := make([]float64, 0, len(b))
	for k := range a {
		if math.IsNaN(a[k]) || math.IsNaN(b[k]) {
			continue
		}
		x = append(x, a[k])
		y = append(y, b[k])
	}
	if len(x) < 2 {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	if diagonal {
		return 1
	}
	r := stat.Correlation(x, y, nil)
	return math.Max(-1, math.Min(1, r))
}
