package eda

import "math"

// GridColumns is the number of panels per row in the boxplot and count-plot grids
const GridColumns = 3

// GridRows is the number of rows needed to hold n panels, GridColumns per row
func GridRows(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + GridColumns - 1) / GridColumns
}

// BoxplotGridRows sizes the boxplot grid as n/3 + 1. This matches GridRows
// except when n is a multiple of 3, where it leaves one extra row of blank axes.
func BoxplotGridRows(n int) int {
	if n <= 0 {
		return 0
	}
	return n/GridColumns + 1
}

// HistogramLayout returns the (rows, cols) grid used for n histograms: the
// smallest near-square layout holding all of them.
func HistogramLayout(n int) (rows, cols int) {
	switch {
	case n <= 0:
		return 0, 0
	case n == 1:
		return 1, 1
	case n == 2:
		return 1, 2
	case n <= 4:
		return 2, 2
	}
	k := int(math.Ceil(math.Sqrt(float64(n))))
	if (k-1)*k >= n {
		return k, k - 1
	}
	return k, k
}
