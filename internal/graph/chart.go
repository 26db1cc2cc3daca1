// Package graph computes axis ranges and draw calls for a line chart with a
// bar chart overlaid in its lower band.
//
// Series tagged Line drive the main axis. Series tagged Bar are scaled on
// their own and never affect the main axis. Drawing goes through the Canvas
// interface; concrete surfaces live in internal/surface.
package graph

import (
	"fmt"
	"slices"
)

// Geometry is the canvas size for one paint, in pixels.
type Geometry struct {
	Width      float64
	Height     float64
	Border     float64
	LabelWidth float64
}

// ChartOption customises a Chart.
type ChartOption func(*Chart)

// WithRangeProvider replaces the range queries used to build each Frame.
func WithRangeProvider(p RangeProvider) ChartOption {
	return func(c *Chart) { c.ranges = p }
}

// WithRenderer replaces the series renderer.
func WithRenderer(r SeriesRenderer) ChartOption {
	return func(c *Chart) { c.renderer = r }
}

// Chart hosts a series list and paints it with a range provider and a
// series renderer. Both default to a CombinedRenderer over the same data.
type Chart struct {
	cfg      Config
	series   []Series
	ranges   RangeProvider
	renderer SeriesRenderer
}

// NewChart validates cfg and wires the default CombinedRenderer.
func NewChart(cfg Config, series []Series, opts ...ChartOption) (*Chart, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new chart: %w", err)
	}
	combined := NewCombinedRenderer(cfg, series)
	c := &Chart{
		cfg:      cfg,
		series:   slices.Clone(series),
		ranges:   combined,
		renderer: combined,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Chart) Config() Config { return c.cfg }

func (c *Chart) Series() []Series { return slices.Clone(c.series) }

func (c *Chart) Ranges() RangeProvider { return c.ranges }

// Frame resolves plot geometry and the main-chart axis window for g.
func (c *Chart) Frame(g Geometry) Frame {
	minX := c.ranges.MinX(false)
	minY := c.ranges.MinY()
	return Frame{
		PlotWidth:  max(g.Width-g.LabelWidth-1, 0),
		PlotHeight: max((g.Height-2*g.Border)*c.cfg.MainChartHeightPortion, 0),
		Border:     g.Border,
		MinX:       minX,
		MinY:       minY,
		DiffX:      c.ranges.MaxX(false) - minX,
		DiffY:      c.ranges.MaxY() - minY,
		XOffset:    g.LabelWidth,
	}
}

// Paint draws every series in order onto cv.
func (c *Chart) Paint(cv Canvas, g Geometry) {
	f := c.Frame(g)
	for _, s := range c.series {
		c.renderer.DrawSeries(cv, VisiblePoints(s.Points, c.cfg.Viewport), f, s.Style)
	}
}
