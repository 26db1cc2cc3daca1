package graph

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownChartStyle is returned when a chart type name is not recognised.
var ErrUnknownChartStyle = errors.New("unknown chart style")

// ChartStyle tags a series as part of the main line chart or the utility bar chart.
type ChartStyle int

const (
	Line ChartStyle = iota
	Bar
)

var chartStyleNames = []string{"line", "bar"}

func (s ChartStyle) String() string {
	if int(s) < 0 || int(s) >= len(chartStyleNames) {
		return fmt.Sprintf("ChartStyle(%d)", int(s))
	}
	return chartStyleNames[s]
}

// ParseChartStyle maps "line" or "bar" (any case) to a ChartStyle. Unknown
// names report the closest known one.
func ParseChartStyle(name string) (ChartStyle, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, known := range chartStyleNames {
		if n == known {
			return ChartStyle(i), nil
		}
	}
	best, bestDist := "", -1
	for _, known := range chartStyleNames {
		d := levenshtein.ComputeDistance(n, known)
		if bestDist < 0 || d < bestDist {
			best, bestDist = known, d
		}
	}
	return Line, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownChartStyle, name, best)
}

// Point is a single (x, y) sample.
type Point struct {
	X float64
	Y float64
}

// Style holds per-series rendering attributes.
type Style struct {
	Thickness float64
	Color     lipgloss.Color
	Chart     ChartStyle
}

// Series is an ordered run of points. Points are expected ascending by X.
type Series struct {
	ID     string
	Name   string
	Style  Style
	Points []Point
}

// IsActualDataSeries reports whether s feeds the main chart (LINE) or the
// utility chart (BAR). Every range query filters through it.
func IsActualDataSeries(s Series, mainChart bool) bool {
	if mainChart {
		return s.Style.Chart == Line
	}
	return s.Style.Chart == Bar
}
