// Package charts draws the dashboard figures with gonum/plot and encodes
// them as SVG documents.
package charts

import (
	"bytes"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Figure is one rendered multi-panel chart
type Figure struct {
	Name   string
	Rows   int
	Cols   int
	Panels int
	SVG    []byte
}

// Figure sizes, in inches of the source canvas.
var (
	histogramSize = size{12, 10}
	boxplotSize   = size{15, 12}
	heatmapSize   = size{10, 8}
	countPlotSize = size{15, 12}
)

type size struct{ w, h float64 }

func (s size) lengths() (vg.Length, vg.Length) {
	return vg.Length(s.w) * vg.Inch, vg.Length(s.h) * vg.Inch
}

// seriesColors follows the usual categorical palette: blue, orange, green, red.
var seriesColors = []color.Color{
	color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff},
	color.RGBA{R: 0x55, G: 0xa8, B: 0x68, A: 0xff},
	color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff},
}

func seriesColor(i int) color.Color {
	return seriesColors[i%len(seriesColors)]
}

// drawGrid lays cells out row-major on a rows×cols grid and encodes the
// result as SVG. Nil cells are left empty.
func drawGrid(s size, rows, cols int, cells []*plot.Plot) ([]byte, error) {
	w, h := s.lengths()
	canvas := vgsvg.New(w, h)
	dc := draw.New(canvas)
	fillBackground(dc)

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadTop:    vg.Points(6),
		PadBottom: vg.Points(6),
		PadLeft:   vg.Points(6),
		PadRight:  vg.Points(6),
		PadX:      vg.Points(18),
		PadY:      vg.Points(18),
	}
	for i, p := range cells {
		if p == nil {
			continue
		}
		r, c := i/cols, i%cols
		if r >= rows {
			break
		}
		p.Draw(tiles.At(dc, c, r))
	}

	return encode(canvas)
}

func fillBackground(dc draw.Canvas) {
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())
}

func encode(canvas *vgsvg.Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := canvas.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// blankAxes is an empty panel with unit axes
func blankAxes(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	return p
}

func finite(vals []float64) []float64 {
	out := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out = append(out, v)
		}
	}
	return out
}
