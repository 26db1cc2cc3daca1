package graph

// Bounds is a (min, max) pair that can be explicitly empty when no series
// contributed a value.
type Bounds struct {
	Min   float64
	Max   float64
	Empty bool
}

func emptyBounds() Bounds { return Bounds{Empty: true} }

func (b Bounds) include(v float64) Bounds {
	if b.Empty {
		return Bounds{Min: v, Max: v}
	}
	if v < b.Min {
		b.Min = v
	}
	if v > b.Max {
		b.Max = v
	}
	return b
}

// Diff is Max-Min, or 0 for an empty range.
func (b Bounds) Diff() float64 {
	if b.Empty {
		return 0
	}
	return b.Max - b.Min
}

// VisiblePoints returns the points inside the viewport window plus the
// nearest point on either side of it, so lines reach the plot edges.
// Without an active viewport all points are returned.
func VisiblePoints(points []Point, vp *Viewport) []Point {
	if vp == nil || vp.Size == 0 {
		return points
	}
	end := vp.Start + vp.Size
	var out []Point
	for _, p := range points {
		if p.X >= vp.Start {
			out = append(out, p)
			if p.X > end {
				break
			}
			continue
		}
		// keep only the last point before the window
		if len(out) == 0 {
			out = append(out, p)
		} else {
			out[0] = p
		}
	}
	return out
}

// YBounds scans the visible points of the series selected by mainChart.
// A manual Y axis short-circuits the scan for both charts.
func (r *CombinedRenderer) YBounds(mainChart bool) Bounds {
	if m := r.cfg.ManualYAxis; m != nil {
		return Bounds{Min: m.Min, Max: m.Max}
	}
	b := emptyBounds()
	for _, s := range r.series {
		if !IsActualDataSeries(s, mainChart) {
			continue
		}
		for _, p := range VisiblePoints(s.Points, r.cfg.Viewport) {
			b = b.include(p.Y)
		}
	}
	return b
}

// XBounds returns the viewport window unless ignored, otherwise the extent
// of the selected series. Points are assumed sorted, so only the first and
// last point of each series are read.
//
// If the first series qualifies and has no points the result is (0, 0)
// without looking at the other series.
func (r *CombinedRenderer) XBounds(ignoreViewport, mainChart bool) Bounds {
	if !ignoreViewport && r.cfg.viewportActive() {
		vp := r.cfg.Viewport
		return Bounds{Min: vp.Start, Max: vp.Start + vp.Size}
	}
	if len(r.series) == 0 {
		return emptyBounds()
	}
	if first := r.series[0]; len(first.Points) == 0 && IsActualDataSeries(first, mainChart) {
		return Bounds{}
	}
	b := emptyBounds()
	for _, s := range r.series {
		if !IsActualDataSeries(s, mainChart) || len(s.Points) == 0 {
			continue
		}
		b = b.include(s.Points[0].X).include(s.Points[len(s.Points)-1].X)
	}
	return b
}

// MinY is the lowest Y of the line chart.
func (r *CombinedRenderer) MinY() float64 { return r.minY(true) }

// MaxY is the highest Y of the line chart.
func (r *CombinedRenderer) MaxY() float64 { return r.maxY(true) }

// MinX is the lowest X of the line chart.
func (r *CombinedRenderer) MinX(ignoreViewport bool) float64 { return r.minX(ignoreViewport, true) }

// MaxX is the highest X of the line chart.
func (r *CombinedRenderer) MaxX(ignoreViewport bool) float64 { return r.maxX(ignoreViewport, true) }

func (r *CombinedRenderer) minY(mainChart bool) float64 { return r.YBounds(mainChart).Min }

func (r *CombinedRenderer) maxY(mainChart bool) float64 { return r.YBounds(mainChart).Max }

func (r *CombinedRenderer) minX(ignoreViewport, mainChart bool) float64 {
	return r.XBounds(ignoreViewport, mainChart).Min
}

func (r *CombinedRenderer) maxX(ignoreViewport, mainChart bool) float64 {
	return r.XBounds(ignoreViewport, mainChart).Max
}
