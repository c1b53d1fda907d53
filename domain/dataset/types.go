package dataset

import (
	"fmt"
	"strconv"

	"heartdash/internal/errors"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// NullTokens are the cell values read as missing
var NullTokens = []string{"", "NA", "NaN", "nan", "null", "<nil>"}

// Dataset is the in-memory table the dashboard is computed from. It is never
// mutated after load; every accessor hands out copies.
type Dataset struct {
	df     dataframe.DataFrame
	source string
}

// Preview is the first rows of the table, formatted for display
type Preview struct {
	Columns []string
	Rows    [][]string
}

// FromRecords builds a Dataset from a header record followed by data records.
// Column types are detected per column: all-integer, all-float, bool, else string.
func FromRecords(source string, records [][]string) (*Dataset, error) {
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(NullTokens),
	)
	if df.Err != nil {
		return nil, errors.DataLoad(source, df.Err)
	}
	return &Dataset{df: df, source: source}, nil
}

// Source returns the path the dataset was loaded from
func (d *Dataset) Source() string { return d.source }

// Shape returns (rows, columns)
func (d *Dataset) Shape() (int, int) { return d.df.Dims() }

// Columns returns the column names in file order
func (d *Dataset) Columns() []string { return d.df.Names() }

// Has reports whether the column exists
func (d *Dataset) Has(name string) bool {
	for _, n := range d.df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func (d *Dataset) col(name string) (series.Series, error) {
	if !d.Has(name) {
		return series.Series{}, errors.MissingColumn(name)
	}
	s := d.df.Col(name)
	if s.Err != nil {
		return series.Series{}, errors.Wrapf(s.Err, "column %q", name)
	}
	return s, nil
}

// IsNumeric reports whether the column was detected as integer or float
func (d *Dataset) IsNumeric(name string) bool {
	s, err := d.col(name)
	if err != nil {
		return false
	}
	return s.Type() == series.Int || s.Type() == series.Float
}

// NumericColumns returns the numeric columns in file order
func (d *Dataset) NumericColumns() []string {
	var out []string
	for _, name := range d.df.Names() {
		if d.IsNumeric(name) {
			out = append(out, name)
		}
	}
	return out
}

// Floats returns the values of a numeric column; missing cells are NaN
func (d *Dataset) Floats(name string) ([]float64, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	if s.Type() != series.Int && s.Type() != series.Float {
		return nil, errors.WithCode(errors.CodeInvalidColumn, fmt.Errorf("column %q is not numeric", name))
	}
	return s.Float(), nil
}

// Nulls returns one flag per row, true where the cell is missing
func (d *Dataset) Nulls(name string) ([]bool, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	return s.IsNaN(), nil
}

// Labels returns every cell of the column as display text; missing cells are ""
func (d *Dataset) Labels(name string) ([]string, error) {
	s, err := d.col(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, s.Len())
	for i := range out {
		out[i] = formatElement(s.Elem(i), s.Type())
	}
	return out, nil
}

// Head returns the first n rows for display
func (d *Dataset) Head(n int) (Preview, error) {
	rows, _ := d.Shape()
	if n > rows {
		n = rows
	}
	if n < 0 {
		n = 0
	}

	names := d.Columns()
	cols := make([][]string, len(names))
	for j, name := range names {
		labels, err := d.Labels(name)
		if err != nil {
			return Preview{}, err
		}
		cols[j] = labels
	}

	out := make([][]string, n)
	for i := 0; i < n; i++ {
		out[i] = make([]string, len(names))
		for j := range names {
			cell := cols[j][i]
			if cell == "" {
				cell = "NaN"
			}
			out[i][j] = cell
		}
	}
	return Preview{Columns: names, Rows: out}, nil
}

func formatElement(e series.Element, t series.Type) string {
	if e.IsNA() {
		return ""
	}
	if t == series.Float {
		return strconv.FormatFloat(e.Float(), 'g', -1, 64)
	}
	return e.String()
}
