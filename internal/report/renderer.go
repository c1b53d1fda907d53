// Package report assembles the dashboard: every table and figure, computed
// from the loaded dataset in a fixed order.
package report

import (
	"context"
	"html/template"
	"time"

	"heartdash/domain/core"
	"heartdash/domain/dataset"
	"heartdash/internal"
	"heartdash/internal/charts"
	"heartdash/internal/eda"
	"heartdash/internal/errors"

	"golang.org/x/sync/errgroup"
)

const (
	// Title is the page heading
	Title = "Heart Disease EDA Dashboard"

	// PreviewRows is how many rows the raw data preview shows
	PreviewRows = 20
)

// Options are the per-render switches exposed in the sidebar
type Options struct {
	ShowRaw bool

	// ID correlates the render with a caller's request; a new one is
	// generated when empty.
	ID core.RenderID
}

// Report is one complete dashboard render
type Report struct {
	ID          core.RenderID
	Title       string
	Source      string
	GeneratedAt time.Time

	ShowRaw bool
	Preview dataset.Preview

	Rows    int
	Cols    int
	Columns []string

	Missing      []eda.ColumnCount
	TotalMissing int

	Summary     []eda.SummaryRow
	Correlation *eda.Correlation
	Categorical []string

	Histograms charts.Figure
	Boxplots   charts.Figure
	Heatmap    charts.Figure
	CountPlots charts.Figure

	Insights template.HTML
}

// Figures returns the figures in page order
func (r *Report) Figures() []charts.Figure {
	return []charts.Figure{r.Histograms, r.Boxplots, r.Heatmap, r.CountPlots}
}

// Renderer builds reports from a dataset that never changes after load
type Renderer struct {
	ds     *dataset.Dataset
	target string
	logger *internal.Logger
}

// NewRenderer creates a renderer for ds with target as the hue column
func NewRenderer(ds *dataset.Dataset, target string, logger *internal.Logger) *Renderer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Renderer{ds: ds, target: target, logger: logger.With("Renderer")}
}

// Dataset returns the dataset the renderer reads from
func (r *Renderer) Dataset() *dataset.Dataset { return r.ds }

// Render computes every section of the dashboard. Any failure aborts the
// whole render and no partial report is returned.
func (r *Renderer) Render(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()
	id := opts.ID
	if core.ID(id).IsEmpty() {
		id = core.NewRenderID()
	}
	rep := &Report{
		ID:          id,
		Title:       Title,
		Source:      r.ds.Source(),
		GeneratedAt: start,
		ShowRaw:     opts.ShowRaw,
	}
	r.logger.Debug("render %s started (raw=%t)", rep.ID.Short(), opts.ShowRaw)

	if !r.ds.Has(r.target) {
		return nil, errors.MissingColumn(r.target)
	}

	if opts.ShowRaw {
		preview, err := r.ds.Head(PreviewRows)
		if err != nil {
			return nil, err
		}
		rep.Preview = preview
	}

	rep.Rows, rep.Cols = r.ds.Shape()
	rep.Columns = r.ds.Columns()

	missing, err := eda.MissingCounts(r.ds)
	if err != nil {
		return nil, err
	}
	rep.Missing = missing
	rep.TotalMissing = eda.TotalMissing(missing)

	numeric := r.ds.NumericColumns()
	rep.Summary, err = eda.Describe(r.ds, r.summaryColumns(numeric))
	if err != nil {
		return nil, err
	}

	rep.Correlation, err = eda.CorrelationMatrix(r.ds, numeric)
	if err != nil {
		return nil, err
	}

	rep.Categorical, err = eda.CategoricalColumns(r.ds, eda.CategoricalThreshold)
	if err != nil {
		return nil, err
	}

	if err := r.drawFigures(ctx, rep, numeric); err != nil {
		return nil, err
	}

	rep.Insights = RenderInsights()

	r.logger.Info("render %s done in %s (%dx%d, %d figures)",
		rep.ID.Short(), time.Since(start).Round(time.Millisecond), rep.Rows, rep.Cols, len(rep.Figures()))
	return rep, nil
}

// summaryColumns drops the target label from the statistics table
func (r *Renderer) summaryColumns(numeric []string) []string {
	out := make([]string, 0, len(numeric))
	for _, c := range numeric {
		if c != r.target {
			out = append(out, c)
		}
	}
	return out
}

// drawFigures renders the four figures concurrently. Each writes only its
// own field, so the report reads the same as a sequential render.
func (r *Renderer) drawFigures(ctx context.Context, rep *Report, numeric []string) error {
	g, gctx := errgroup.WithContext(ctx)

	draw := func(dst *charts.Figure, fn func() (charts.Figure, error)) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fig, err := fn()
			if err != nil {
				return err
			}
			*dst = fig
			r.logger.Trace("drew %s (%d bytes)", fig.Name, len(fig.SVG))
			return nil
		})
	}

	draw(&rep.Histograms, func() (charts.Figure, error) {
		return charts.HistogramGrid(r.ds, numeric)
	})
	draw(&rep.Boxplots, func() (charts.Figure, error) {
		return charts.BoxplotGrid(r.ds, numeric)
	})
	draw(&rep.Heatmap, func() (charts.Figure, error) {
		return charts.CorrelationHeatmap(rep.Correlation)
	})
	draw(&rep.CountPlots, func() (charts.Figure, error) {
		return charts.CountPlotGrid(r.ds, rep.Categorical, r.target)
	})

	if err := g.Wait(); err != nil {
		r.logger.Error("render %s failed: %v", rep.ID.Short(), err)
		return err
	}
	return nil
}
