// Package theme holds the colours used for series, the terminal viewer and
// its chrome.
package theme

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	Rosewater lipgloss.Color = "#f5e0dc"
	Pink      lipgloss.Color = "#f5c2e7"
	Mauve     lipgloss.Color = "#cba6f7"
	Red       lipgloss.Color = "#f38ba8"
	Peach     lipgloss.Color = "#fab387"
	Yellow    lipgloss.Color = "#f9e2af"
	Green     lipgloss.Color = "#a6e3a1"
	Teal      lipgloss.Color = "#94e2d5"
	Sky       lipgloss.Color = "#89dceb"
	Sapphire  lipgloss.Color = "#74c7ec"
	Blue      lipgloss.Color = "#89b4fa"
	Lavender  lipgloss.Color = "#b4befe"

	Text     lipgloss.Color = "#cdd6f4"
	Overlay1 lipgloss.Color = "#7f849c"
	Surface1 lipgloss.Color = "#45475a"
	Base     lipgloss.Color = "#1e1e2e"
)

// lineColors and barColors are kept apart so a bar band never shares a hue
// with the line it sits under.
var (
	lineColors = []lipgloss.Color{Blue, Green, Peach, Mauve, Sky, Yellow, Pink}
	barColors  = []lipgloss.Color{Surface1, Overlay1, Lavender, Teal, Sapphire, Rosewater, Red}
)

// LineColor returns the colour for the i-th line series, cycling the palette.
func LineColor(i int) lipgloss.Color {
	return lineColors[mod(i, len(lineColors))]
}

// BarColor returns the colour for the i-th bar series, cycling the palette.
func BarColor(i int) lipgloss.Color {
	return barColors[mod(i, len(barColors))]
}

// SeriesColors returns every colour a series can be assigned.
func SeriesColors() []lipgloss.Color {
	out := make([]lipgloss.Color, 0, len(lineColors)+len(barColors))
	out = append(out, lineColors...)
	return append(out, barColors...)
}

var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(Mauve)
	StatusStyle = lipgloss.NewStyle().Foreground(Overlay1)
	FrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Surface1)
)

func mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}
