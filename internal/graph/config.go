package graph

import (
	"errors"
	"fmt"
)

// DefaultMainChartHeightPortion is the share of plot height given to the line chart.
const DefaultMainChartHeightPortion = 0.8

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid chart config")

// Viewport is an explicit X window. A zero Size means no viewport.
type Viewport struct {
	Start float64
	Size  float64
}

// AxisRange is a manual (min, max) override for the Y axis.
type AxisRange struct {
	Min float64
	Max float64
}

// Config is the immutable chart configuration shared by the host and renderer.
type Config struct {
	MainChartHeightPortion float64
	// ChartWidthRatio scales the line chart width when non-zero.
	ChartWidthRatio float64
	ManualYAxis     *AxisRange
	Viewport        *Viewport
	// BarsFollowWidthRatio applies ChartWidthRatio to bar columns as well.
	BarsFollowWidthRatio bool
}

// DefaultConfig returns a Config with the default height split and no overrides.
func DefaultConfig() Config {
	return Config{MainChartHeightPortion: DefaultMainChartHeightPortion}
}

// Validate checks the configuration for values the renderer cannot use.
func (c Config) Validate() error {
	if c.MainChartHeightPortion <= 0 || c.MainChartHeightPortion > 1 {
		return fmt.Errorf("%w: main chart height portion %v not in (0, 1]", ErrInvalidConfig, c.MainChartHeightPortion)
	}
	if c.ChartWidthRatio < 0 {
		return fmt.Errorf("%w: negative chart width ratio %v", ErrInvalidConfig, c.ChartWidthRatio)
	}
	if c.ManualYAxis != nil && c.ManualYAxis.Min > c.ManualYAxis.Max {
		return fmt.Errorf("%w: manual y axis min %v > max %v", ErrInvalidConfig, c.ManualYAxis.Min, c.ManualYAxis.Max)
	}
	if c.Viewport != nil && c.Viewport.Size < 0 {
		return fmt.Errorf("%w: negative viewport size %v", ErrInvalidConfig, c.Viewport.Size)
	}
	return nil
}

func (c Config) viewportActive() bool {
	return c.Viewport != nil && c.Viewport.Size != 0
}
