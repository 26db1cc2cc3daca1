package graph

import (
	"math"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Paint carries the stroke attributes for a single draw call.
type Paint struct {
	StrokeWidth float64
	Color       lipgloss.Color
}

// Canvas receives draw primitives in pixel coordinates. Y grows downwards.
type Canvas interface {
	DrawLine(x1, y1, x2, y2 float64, p Paint)
	DrawRect(left, top, right, bottom float64, p Paint)
}

// Frame is the plot geometry and main-chart axis window for one paint.
type Frame struct {
	PlotWidth  float64
	PlotHeight float64
	Border     float64
	MinX       float64
	MinY       float64
	DiffX      float64
	DiffY      float64
	XOffset    float64
}

// RangeProvider answers the axis range queries the host scales with.
type RangeProvider interface {
	MinX(ignoreViewport bool) float64
	MaxX(ignoreViewport bool) float64
	MinY() float64
	MaxY() float64
}

// SeriesRenderer draws one series into a canvas.
type SeriesRenderer interface {
	DrawSeries(c Canvas, values []Point, f Frame, style Style)
}

// CombinedRenderer draws LINE series as the main chart and BAR series as a
// utility band under it, keeping the two charts' ranges apart.
type CombinedRenderer struct {
	cfg    Config
	series []Series
}

var (
	_ RangeProvider  = (*CombinedRenderer)(nil)
	_ SeriesRenderer = (*CombinedRenderer)(nil)
)

// NewCombinedRenderer captures cfg and a copy of the series list.
func NewCombinedRenderer(cfg Config, series []Series) *CombinedRenderer {
	if cfg.MainChartHeightPortion <= 0 {
		cfg.MainChartHeightPortion = DefaultMainChartHeightPortion
	}
	return &CombinedRenderer{cfg: cfg, series: slices.Clone(series)}
}

// DrawSeries dispatches on the series chart style.
func (r *CombinedRenderer) DrawSeries(c Canvas, values []Point, f Frame, style Style) {
	paint := Paint{StrokeWidth: style.Thickness, Color: style.Color}
	switch style.Chart {
	case Line:
		r.drawLine(c, values, f, paint)
	case Bar:
		r.drawBars(c, values, f, paint)
	}
}

func (r *CombinedRenderer) drawLine(c Canvas, values []Point, f Frame, paint Paint) {
	width := f.PlotWidth
	if r.cfg.ChartWidthRatio != 0 {
		width *= r.cfg.ChartWidthRatio
	}

	var lastX, lastY float64
	for i, v := range values {
		x := width * ratio(v.X-f.MinX, f.DiffX)
		y := f.PlotHeight * ratio(v.Y-f.MinY, f.DiffY)
		if i > 0 {
			x1 := lastX + f.XOffset + 1
			y1 := f.Border - lastY + f.PlotHeight
			x2 := x + f.XOffset + 1
			y2 := f.Border - y + f.PlotHeight
			if finite(x1, y1, x2, y2) {
				c.DrawLine(x1, y1, x2, y2, paint)
			}
		}
		lastX, lastY = x, y
	}
}

// drawBars ignores the frame's Y window and scales against the bar series only.
func (r *CombinedRenderer) drawBars(c Canvas, values []Point, f Frame, paint Paint) {
	if len(values) == 0 {
		return
	}
	b := r.YBounds(false)
	if b.Empty {
		return
	}

	width := f.PlotWidth
	if r.cfg.BarsFollowWidthRatio && r.cfg.ChartWidthRatio != 0 {
		width *= r.cfg.ChartWidthRatio
	}
	colWidth := width / float64(len(values))
	band := f.PlotHeight - f.PlotHeight*r.cfg.MainChartHeightPortion + f.Border
	bottom := f.PlotHeight + band + f.Border
	diff := b.Diff()

	for i, v := range values {
		y := band * ratio(v.Y-b.Min, diff)
		left := float64(i)*colWidth + f.XOffset
		top := bottom - y - 1
		right := left + colWidth - 1
		if finite(left, top, right, bottom) {
			c.DrawRect(left, top, right, bottom, paint)
		}
	}
}

// ratio maps a zero-width range to 0 so degenerate data lands on the baseline.
func ratio(v, diff float64) float64 {
	if diff == 0 {
		return 0
	}
	return v / diff
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
