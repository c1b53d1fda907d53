package charts

import (
	"fmt"

	"heartdash/domain/dataset"
	"heartdash/internal/eda"
	"heartdash/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// CountPlotGrid draws one grouped bar chart per column, bars split by the
// hue column. Cells past the last column are left empty.
func CountPlotGrid(ds *dataset.Dataset, columns []string, hue string) (Figure, error) {
	rows := eda.GridRows(len(columns))
	cols := eda.GridColumns
	cells := make([]*plot.Plot, 0, len(columns))

	w, _ := countPlotSize.lengths()
	panelWidth := (w / vg.Length(cols)) * 0.75

	for _, name := range columns {
		counts, err := eda.CountByHue(ds, name, hue)
		if err != nil {
			return Figure{}, err
		}
		p, err := countPlot(counts, panelWidth)
		if err != nil {
			return Figure{}, errors.Wrapf(err, "count plot %s", name)
		}
		cells = append(cells, p)
	}

	svg, err := drawGrid(countPlotSize, rows, cols, cells)
	if err != nil {
		return Figure{}, errors.RenderFailed("count plots", err)
	}
	return Figure{Name: "countplots", Rows: rows, Cols: cols, Panels: len(columns), SVG: svg}, nil
}

func countPlot(hc *eda.HueCounts, panelWidth vg.Length) (*plot.Plot, error) {
	if len(hc.Levels) == 0 || len(hc.HueLevels) == 0 {
		return blankAxes(hc.Column), nil
	}

	p := plot.New()
	p.Title.Text = hc.Column
	p.Y.Label.Text = "count"
	p.Y.Min = 0
	p.Legend.Top = true

	groups := len(hc.HueLevels)
	slot := panelWidth / vg.Length(len(hc.Levels))
	barWidth := slot * 0.8 / vg.Length(groups)

	for h, level := range hc.HueLevels {
		vals := make(plotter.Values, len(hc.Levels))
		for l, n := range hc.Counts[h] {
			vals[l] = float64(n)
		}
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return nil, err
		}
		bars.Color = seriesColor(h)
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(h)-float64(groups-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(fmt.Sprintf("%s=%s", hc.Hue, level), bars)
	}
	p.NominalX(hc.Levels...)
	return p, nil
}
