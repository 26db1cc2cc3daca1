package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func line(points ...Point) Series {
	return Series{Style: Style{Chart: Line, Thickness: 1}, Points: points}
}

func bar(points ...Point) Series {
	return Series{Style: Style{Chart: Bar, Thickness: 1}, Points: points}
}

func mixedSeries() []Series {
	return []Series{
		line(Point{0, 0}, Point{1, 10}, Point{2, 5}),
		bar(Point{0, 3}, Point{1, 7}),
	}
}

func TestIsActualDataSeriesPartitions(t *testing.T) {
	series := []Series{
		line(), bar(), line(Point{1, 1}), bar(Point{2, 2}), line(),
	}
	var mains, utils int
	for i, s := range series {
		main := IsActualDataSeries(s, true)
		util := IsActualDataSeries(s, false)
		require.NotEqual(t, main, util, "series %d must land in exactly one chart", i)
		require.Equal(t, s.Style.Chart == Line, main)
		if main {
			mains++
		} else {
			utils++
		}
	}
	require.Equal(t, 3, mains)
	require.Equal(t, 2, utils)
}

func TestMainAndBarYRangesAreIndependent(t *testing.T) {
	r := NewCombinedRenderer(DefaultConfig(), mixedSeries())

	require.Equal(t, 0.0, r.MinY())
	require.Equal(t, 10.0, r.MaxY())
	require.Equal(t, 3.0, r.minY(false))
	require.Equal(t, 7.0, r.maxY(false))
}

func TestManualYAxisOverridesScan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ManualYAxis = &AxisRange{Min: 0, Max: 100}
	r := NewCombinedRenderer(cfg, []Series{
		line(Point{0, -50}, Point{1, 500}),
		bar(Point{0, 3}),
	})

	require.Equal(t, 0.0, r.MinY())
	require.Equal(t, 100.0, r.MaxY())
	require.Equal(t, Bounds{Min: 0, Max: 100}, r.YBounds(false))
}

func TestXRangeIgnoresBars(t *testing.T) {
	r := NewCombinedRenderer(DefaultConfig(), []Series{
		bar(Point{-100, 1}, Point{100, 1}),
		line(Point{2, 0}, Point{8, 1}),
		bar(),
		line(Point{-1, 0}, Point{3, 1}),
		line(),
	})

	require.Equal(t, -1.0, r.MinX(true))
	require.Equal(t, 8.0, r.MaxX(true))
	require.Equal(t, -100.0, r.minX(true, false))
	require.Equal(t, 100.0, r.maxX(true, false))
}

func TestXRangeFirstEmptyLineFallsBackToZero(t *testing.T) {
	r := NewCombinedRenderer(DefaultConfig(), []Series{
		line(),
		line(Point{5, 0}, Point{9, 1}),
	})

	require.Equal(t, 0.0, r.MinX(true))
	require.Equal(t, 0.0, r.MaxX(true))
	require.False(t, r.XBounds(true, true).Empty)

	// the first series does not qualify for the bar chart, so bars scan normally
	r = NewCombinedRenderer(DefaultConfig(), []Series{
		line(),
		bar(Point{5, 0}, Point{9, 1}),
	})
	require.Equal(t, Bounds{Min: 5, Max: 9}, r.XBounds(true, false))
}

func TestEmptyRangesAreExplicit(t *testing.T) {
	r := NewCombinedRenderer(DefaultConfig(), []Series{bar(Point{0, 1})})

	y := r.YBounds(true)
	require.True(t, y.Empty)
	require.Equal(t, 0.0, y.Diff())
	require.Equal(t, 0.0, r.MinY())
	require.Equal(t, 0.0, r.MaxY())

	require.True(t, NewCombinedRenderer(DefaultConfig(), nil).XBounds(true, true).Empty)
}

func TestViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport = &Viewport{Start: 2, Size: 3}
	r := NewCombinedRenderer(cfg, []Series{
		line(Point{0, 100}, Point{1, 50}, Point{2, 4}, Point{3, 6}, Point{5, 2}, Point{6, 8}, Point{9, -40}),
	})

	require.Equal(t, 2.0, r.MinX(false))
	require.Equal(t, 5.0, r.MaxX(false))
	require.Equal(t, 0.0, r.MinX(true))
	require.Equal(t, 9.0, r.MaxX(true))

	// visible: (1,50) before the window, 2..5 inside, (6,8) after it
	require.Equal(t, 2.0, r.MinY())
	require.Equal(t, 50.0, r.MaxY())
}

func TestZeroSizeViewportIsInactive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Viewport = &Viewport{Start: 3}
	r := NewCombinedRenderer(cfg, []Series{line(Point{0, 1}, Point{10, 2})})

	require.Equal(t, 0.0, r.MinX(false))
	require.Equal(t, 10.0, r.MaxX(false))
}

func TestVisiblePoints(t *testing.T) {
	pts := []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	tests := []struct {
		name string
		vp   *Viewport
		want []Point
	}{
		{"no viewport", nil, pts},
		{"zero size", &Viewport{Start: 2}, pts},
		{"middle", &Viewport{Start: 1.5, Size: 2}, []Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{"aligned", &Viewport{Start: 2, Size: 2}, []Point{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}},
		{"before data", &Viewport{Start: -10, Size: 2}, []Point{{0, 0}}},
		{"after data", &Viewport{Start: 10, Size: 2}, []Point{{5, 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, VisiblePoints(pts, tt.vp))
		})
	}
}

func TestRangeQueriesAreIdempotent(t *testing.T) {
	series := mixedSeries()
	r := NewCombinedRenderer(DefaultConfig(), series)

	first := []float64{r.MinX(true), r.MaxX(true), r.MinY(), r.MaxY(), r.minY(false), r.maxY(false)}
	for i := 0; i < 3; i++ {
		again := []float64{r.MinX(true), r.MaxX(true), r.MinY(), r.MaxY(), r.minY(false), r.maxY(false)}
		require.Equal(t, first, again)
	}
	require.Equal(t, mixedSeries(), series)
}

func TestRendererCopiesSeriesList(t *testing.T) {
	series := mixedSeries()
	r := NewCombinedRenderer(DefaultConfig(), series)
	series[0] = bar(Point{0, 1000})

	require.Equal(t, 10.0, r.MaxY())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(*Config) {}, false},
		{"full height", func(c *Config) { c.MainChartHeightPortion = 1 }, false},
		{"zero portion", func(c *Config) { c.MainChartHeightPortion = 0 }, true},
		{"portion above one", func(c *Config) { c.MainChartHeightPortion = 1.2 }, true},
		{"negative ratio", func(c *Config) { c.ChartWidthRatio = -0.5 }, true},
		{"inverted manual axis", func(c *Config) { c.ManualYAxis = &AxisRange{Min: 5, Max: 1} }, true},
		{"flat manual axis", func(c *Config) { c.ManualYAxis = &AxisRange{Min: 5, Max: 5} }, false},
		{"negative viewport", func(c *Config) { c.Viewport = &Viewport{Size: -1} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseChartStyle(t *testing.T) {
	s, err := ParseChartStyle(" LINE ")
	require.NoError(t, err)
	require.Equal(t, Line, s)

	s, err = ParseChartStyle("Bar")
	require.NoError(t, err)
	require.Equal(t, Bar, s)
	require.Equal(t, "bar", s.String())

	_, err = ParseChartStyle("lines")
	require.ErrorIs(t, err, ErrUnknownChartStyle)
	require.Contains(t, err.Error(), `did you mean "line"`)

	require.Equal(t, "ChartStyle(7)", ChartStyle(7).String())
}
