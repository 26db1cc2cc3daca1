package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/graphview/internal/graph"
	"github.com/jask/graphview/internal/surface"
	"github.com/jask/graphview/internal/theme"
)

// chromeLines is the title and status row around the plot.
const chromeLines = 2

// App repaints a chart on every window resize.
type App struct {
	chart   *graph.Chart
	title   string
	border  float64
	labelW  float64
	width   int
	height  int
	term    *surface.Terminal
	repaint int
}

// New builds the viewer. Border and label width are taken from g; the
// canvas size follows the terminal.
func New(c *graph.Chart, title string, g graph.Geometry) *App {
	return &App{chart: c, title: title, border: g.Border, labelW: g.LabelWidth}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.paint()
	case tea.KeyMsg:
		switch m.String() {
		case "q", "esc", "ctrl+c":
			return a, tea.Quit
		case "r":
			a.paint()
		}
	}
	return a, nil
}

func (a *App) View() string {
	if a.term == nil {
		return "waiting for window size..."
	}
	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render(a.title))
	b.WriteString("\n")
	b.WriteString(a.term.View())
	b.WriteString("\n")
	b.WriteString(theme.StatusStyle.Render(a.status()))
	return b.String()
}

// Repaints reports how many times the chart has been drawn.
func (a *App) Repaints() int { return a.repaint }

func (a *App) paint() {
	w, h := a.width, a.height-chromeLines
	if w <= 0 || h <= 0 {
		a.term = nil
		return
	}
	a.term = surface.NewTerminal(w, h)
	a.chart.Paint(a.term, graph.Geometry{
		Width:      float64(w),
		Height:     float64(h),
		Border:     a.border,
		LabelWidth: a.labelW,
	})
	a.repaint++
}

func (a *App) status() string {
	r := a.chart.Ranges()
	return fmt.Sprintf("x %g..%g  y %g..%g  %d series  %dx%d  r repaint  q quit",
		r.MinX(false), r.MaxX(false), r.MinY(), r.MaxY(), len(a.chart.Series()), a.width, a.height)
}
