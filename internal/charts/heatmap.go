package charts

import (
	"fmt"
	"image/color"
	"math"

	"heartdash/internal/eda"
	"heartdash/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// HeatmapColors is the number of palette steps across [-1, 1]
const HeatmapColors = 64

// coolWarm returns the blue-to-red diverging map over [-1, 1], meeting at 0
func coolWarm() palette.DivergingColorMap {
	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	cm.SetConvergePoint(0)
	return cm
}

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Grid row 0 is
// drawn at the bottom, so rows are flipped to put the first column on top.
type corrGrid struct {
	c *eda.Correlation
}

func (g corrGrid) n() int { return len(g.c.Columns) }
func (g corrGrid) Dims() (c, r int) { return g.n(), g.n() }
func (g corrGrid) Z(c, r int) float64 { return g.c.At(g.n()-1-r, c) }
func (g corrGrid) X(c int) float64 { return float64(c) }
func (g corrGrid) Y(r int) float64 { return float64(r) }
func (g corrGrid) Min() float64 { return -1 }
func (g corrGrid) Max() float64 { return 1 }

// CorrelationHeatmap draws an annotated heatmap of the matrix with a
// vertical color bar.
func CorrelationHeatmap(corr *eda.Correlation) (Figure, error) {
	n := len(corr.Columns)
	if n == 0 {
		return Figure{}, errors.RenderFailed("correlation", fmt.Errorf("no numeric columns"))
	}

	cm := coolWarm()
	grid := corrGrid{c: corr}
	hm := plotter.NewHeatMap(grid, cm.Palette(HeatmapColors))
	hm.NaN = color.White

	labels, err := cellLabels(grid)
	if err != nil {
		return Figure{}, errors.RenderFailed("correlation", err)
	}

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(hm, labels)
	p.NominalX(corr.Columns...)
	yNames := make([]string, n)
	for r := range yNames {
		yNames[r] = corr.Columns[n-1-r]
	}
	p.NominalY(yNames...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	bar := plot.New()
	bar.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: HeatmapColors})
	bar.HideX()
	bar.Y.Padding = 0

	w, h := heatmapSize.lengths()
	canvas := vgsvg.New(w, h)
	dc := draw.New(canvas)
	fillBackground(dc)

	barWidth := w / 10
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, w-barWidth+vg.Points(10), -vg.Points(10), vg.Points(40), -vg.Points(30)))

	svg, err := encode(canvas)
	if err != nil {
		return Figure{}, errors.RenderFailed("correlation", err)
	}
	return Figure{Name: "correlation", Rows: 1, Cols: 1, Panels: 1, SVG: svg}, nil
}

// cellLabels annotates every finite cell with its value to two decimals
func cellLabels(g corrGrid) (*plotter.Labels, error) {
	cols, rows := g.Dims()
	var xys plotter.XYs
	var text []string
	var values []float64
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			z := g.Z(c, r)
			if math.IsNaN(z) {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			text = append(text, fmt.Sprintf("%.2f", z))
			values = append(values, z)
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = draw.XCenter
		labels.TextStyle[i].YAlign = draw.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(7)
		if math.Abs(values[i]) > 0.6 {
			labels.TextStyle[i].Color = color.White
		} else {
			labels.TextStyle[i].Color = color.Black
		}
	}
	return labels, nil
}
