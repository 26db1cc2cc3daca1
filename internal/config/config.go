package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"github.com/jask/graphview/internal/graph"
	"github.com/jask/graphview/internal/theme"
)

// ErrNoSeries is returned when a chart document defines no series.
var ErrNoSeries = errors.New("chart document has no series")

// Document is a chart definition: canvas settings plus inline series.
type Document struct {
	Chart  ChartConfig
	Series []SeriesConfig
}

// ChartConfig holds canvas geometry and the graph.Config knobs.
type ChartConfig struct {
	Width                float64   `mapstructure:"width"`
	Height               float64   `mapstructure:"height"`
	Border               float64   `mapstructure:"border"`
	LabelWidth           float64   `mapstructure:"label_width"`
	MainHeightPortion    float64   `mapstructure:"main_height_portion"`
	WidthRatio           float64   `mapstructure:"width_ratio"`
	BarsFollowWidthRatio bool      `mapstructure:"bars_follow_width_ratio"`
	ManualY              []float64 `mapstructure:"manual_y"`
	Viewport             []float64 `mapstructure:"viewport"`
}

// SeriesConfig is one [[series]] table.
type SeriesConfig struct {
	ID        string      `mapstructure:"id"`
	Name      string      `mapstructure:"name"`
	Type      string      `mapstructure:"type"`
	Color     string      `mapstructure:"color"`
	Thickness float64     `mapstructure:"thickness"`
	Points    [][]float64 `mapstructure:"points"`
}

// DefaultPath is where Load looks when neither a path nor GRAPHVIEW_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "graphview", "chart.toml")
}

// Load reads a chart document from path, GRAPHVIEW_CONFIG, or DefaultPath, in
// that order. Env var overrides use prefix GRAPHVIEW_.
func Load(path string) (Document, error) {
	v := viper.New()

	// default values
	v.SetDefault("chart.width", 80)
	v.SetDefault("chart.height", 24)
	v.SetDefault("chart.border", 1)
	v.SetDefault("chart.label_width", 0)
	v.SetDefault("chart.main_height_portion", graph.DefaultMainChartHeightPortion)
	v.SetDefault("chart.width_ratio", 0)
	v.SetDefault("chart.bars_follow_width_ratio", false)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("GRAPHVIEW_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("GRAPHVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return Document{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var d Document
	if err := v.Unmarshal(&d); err != nil {
		return Document{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(d.Series) == 0 {
		return Document{}, fmt.Errorf("%s: %w", path, ErrNoSeries)
	}
	return d, nil
}

// Save writes the document to path as TOML, creating the directory if needed.
func Save(path string, d Document) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("chart.width", d.Chart.Width)
	v.Set("chart.height", d.Chart.Height)
	v.Set("chart.border", d.Chart.Border)
	v.Set("chart.label_width", d.Chart.LabelWidth)
	v.Set("chart.main_height_portion", d.Chart.MainHeightPortion)
	v.Set("chart.width_ratio", d.Chart.WidthRatio)
	v.Set("chart.bars_follow_width_ratio", d.Chart.BarsFollowWidthRatio)
	if len(d.Chart.ManualY) > 0 {
		v.Set("chart.manual_y", d.Chart.ManualY)
	}
	if len(d.Chart.Viewport) > 0 {
		v.Set("chart.viewport", d.Chart.Viewport)
	}
	series := make([]map[string]any, 0, len(d.Series))
	for _, s := range d.Series {
		series = append(series, map[string]any{
			"id":        s.ID,
			"name":      s.Name,
			"type":      s.Type,
			"color":     s.Color,
			"thickness": s.Thickness,
			"points":    s.Points,
		})
	}
	v.Set("series", series)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Geometry returns the canvas size for image and text output.
func (d Document) Geometry() graph.Geometry {
	return graph.Geometry{
		Width:      d.Chart.Width,
		Height:     d.Chart.Height,
		Border:     d.Chart.Border,
		LabelWidth: d.Chart.LabelWidth,
	}
}

// GraphConfig converts the [chart] table into a graph.Config.
func (d Document) GraphConfig() (graph.Config, error) {
	cfg := graph.Config{
		MainChartHeightPortion: d.Chart.MainHeightPortion,
		ChartWidthRatio:        d.Chart.WidthRatio,
		BarsFollowWidthRatio:   d.Chart.BarsFollowWidthRatio,
	}
	if n := len(d.Chart.ManualY); n > 0 {
		if n != 2 {
			return graph.Config{}, fmt.Errorf("%w: manual_y needs [min, max], got %d values", graph.ErrInvalidConfig, n)
		}
		cfg.ManualYAxis = &graph.AxisRange{Min: d.Chart.ManualY[0], Max: d.Chart.ManualY[1]}
	}
	if n := len(d.Chart.Viewport); n > 0 {
		if n != 2 {
			return graph.Config{}, fmt.Errorf("%w: viewport needs [start, size], got %d values", graph.ErrInvalidConfig, n)
		}
		cfg.Viewport = &graph.Viewport{Start: d.Chart.Viewport[0], Size: d.Chart.Viewport[1]}
	}
	return cfg, cfg.Validate()
}

// GraphSeries converts the [[series]] tables. Missing names, colours and
// thicknesses get defaults; IDs are derived from the name when absent.
func (d Document) GraphSeries() ([]graph.Series, error) {
	out := make([]graph.Series, 0, len(d.Series))
	var lines, bars int
	for i, sc := range d.Series {
		kind, err := graph.ParseChartStyle(sc.Type)
		if err != nil {
			return nil, fmt.Errorf("series %d: %w", i, err)
		}
		name := strings.TrimSpace(sc.Name)
		if name == "" {
			name = fmt.Sprintf("series-%d", i+1)
		}
		id := sc.ID
		if id == "" {
			id = SeriesID(name)
		}
		thickness := sc.Thickness
		if thickness <= 0 {
			thickness = 1
		}
		color := sc.Color
		if color == "" {
			if kind == graph.Bar {
				color = string(theme.BarColor(bars))
			} else {
				color = string(theme.LineColor(lines))
			}
		}
		if kind == graph.Bar {
			bars++
		} else {
			lines++
		}

		points := make([]graph.Point, 0, len(sc.Points))
		for j, p := range sc.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("series %q point %d: want [x, y], got %d values", name, j, len(p))
			}
			points = append(points, graph.Point{X: p[0], Y: p[1]})
		}

		out = append(out, graph.Series{
			ID:     id,
			Name:   name,
			Style:  graph.Style{Thickness: thickness, Color: lipgloss.Color(color), Chart: kind},
			Points: points,
		})
	}
	return out, nil
}

// Build returns a ready chart and its geometry.
func (d Document) Build() (*graph.Chart, graph.Geometry, error) {
	cfg, err := d.GraphConfig()
	if err != nil {
		return nil, graph.Geometry{}, err
	}
	series, err := d.GraphSeries()
	if err != nil {
		return nil, graph.Geometry{}, err
	}
	c, err := graph.NewChart(cfg, series)
	if err != nil {
		return nil, graph.Geometry{}, err
	}
	return c, d.Geometry(), nil
}

// SeriesID is a stable identifier for a series name.
func SeriesID(name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("series:"+name)).String()
}
