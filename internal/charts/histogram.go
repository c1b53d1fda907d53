package charts

import (
	"heartdash/domain/dataset"
	"heartdash/internal/eda"
	"heartdash/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HistogramBins is the number of equal-width bins per histogram
const HistogramBins = 20

// HistogramGrid draws one histogram per column in a near-square grid
func HistogramGrid(ds *dataset.Dataset, columns []string) (Figure, error) {
	rows, cols := eda.HistogramLayout(len(columns))
	cells := make([]*plot.Plot, 0, len(columns))

	for _, name := range columns {
		vals, err := ds.Floats(name)
		if err != nil {
			return Figure{}, err
		}
		data := finite(vals)
		if len(data) == 0 {
			cells = append(cells, blankAxes(name))
			continue
		}

		p := plot.New()
		p.Title.Text = name
		h, err := plotter.NewHist(plotter.Values(data), HistogramBins)
		if err != nil {
			return Figure{}, errors.Wrapf(err, "histogram %s", name)
		}
		h.FillColor = seriesColor(0)
		h.LineStyle.Width = vg.Points(0.5)
		p.Add(h, plotter.NewGrid())
		cells = append(cells, p)
	}

	svg, err := drawGrid(histogramSize, rows, cols, cells)
	if err != nil {
		return Figure{}, errors.RenderFailed("histograms", err)
	}
	return Figure{Name: "histograms", Rows: rows, Cols: cols, Panels: len(columns), SVG: svg}, nil
}
