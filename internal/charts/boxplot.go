package charts

import (
	"heartdash/domain/dataset"
	"heartdash/internal/eda"
	"heartdash/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// BoxplotGrid draws one horizontal boxplot per column, three per row.
// Grid cells past the last column keep empty axes.
func BoxplotGrid(ds *dataset.Dataset, columns []string) (Figure, error) {
	rows := eda.BoxplotGridRows(len(columns))
	cols := eda.GridColumns
	cells := make([]*plot.Plot, rows*cols)

	for i := range cells {
		if i >= len(columns) {
			cells[i] = blankAxes("")
			continue
		}
		name := columns[i]
		vals, err := ds.Floats(name)
		if err != nil {
			return Figure{}, err
		}
		data := finite(vals)
		if len(data) == 0 {
			cells[i] = blankAxes(name)
			continue
		}

		p := plot.New()
		p.Title.Text = name
		p.X.Label.Text = name
		b, err := plotter.NewBoxPlot(vg.Points(28), 0, plotter.Values(data))
		if err != nil {
			return Figure{}, errors.Wrapf(err, "boxplot %s", name)
		}
		b.Horizontal = true
		b.FillColor = seriesColor(0)
		p.Add(b)
		p.HideY()
		cells[i] = p
	}

	svg, err := drawGrid(boxplotSize, rows, cols, cells)
	if err != nil {
		return Figure{}, errors.RenderFailed("boxplots", err)
	}
	return Figure{Name: "boxplots", Rows: rows, Cols: cols, Panels: len(columns), SVG: svg}, nil
}
