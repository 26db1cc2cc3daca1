package surface

import (
	"math"

	"github.com/NimbleMarkets/ntcharts/canvas"
	ntgraph "github.com/NimbleMarkets/ntcharts/canvas/graph"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/graphview/internal/graph"
)

// maxCell bounds coordinates passed to the line rasteriser.
const maxCell = 1 << 16

// Terminal draws onto an ntcharts cell canvas, one pixel per cell.
type Terminal struct {
	Canvas canvas.Model
	width  int
	height int
}

var _ graph.Canvas = (*Terminal)(nil)

func NewTerminal(width, height int) *Terminal {
	width, height = max(width, 1), max(height, 1)
	return &Terminal{Canvas: canvas.New(width, height), width: width, height: height}
}

func (t *Terminal) Width() int { return t.width }

func (t *Terminal) Height() int { return t.height }

func (t *Terminal) DrawLine(x1, y1, x2, y2 float64, p graph.Paint) {
	from, ok1 := cellPoint(x1, y1)
	to, ok2 := cellPoint(x2, y2)
	if !ok1 || !ok2 {
		return
	}
	points := ntgraph.GetLinePoints(from, to)
	ntgraph.DrawLinePoints(&t.Canvas, points, runes.ThinLineStyle, paintStyle(p))
}

func (t *Terminal) DrawRect(left, top, right, bottom float64, p graph.Paint) {
	tl, ok1 := cellPoint(left, top)
	br, ok2 := cellPoint(right, bottom)
	if !ok1 || !ok2 {
		return
	}
	x0, x1 := max(min(tl.X, br.X), 0), min(max(tl.X, br.X), t.width-1)
	y0, y1 := max(min(tl.Y, br.Y), 0), min(max(tl.Y, br.Y), t.height-1)
	cell := canvas.NewCellWithStyle(runes.FullBlock, paintStyle(p))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.Canvas.SetCell(canvas.Point{X: x, Y: y}, cell)
		}
	}
}

// View renders the canvas as styled text.
func (t *Terminal) View() string { return t.Canvas.View() }

func paintStyle(p graph.Paint) lipgloss.Style {
	s := lipgloss.NewStyle()
	if p.Color != "" {
		s = s.Foreground(p.Color)
	}
	return s
}

func cellPoint(x, y float64) (canvas.Point, bool) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) ||
		math.Abs(x) > maxCell || math.Abs(y) > maxCell {
		return canvas.Point{}, false
	}
	return canvas.Point{X: int(math.Round(x)), Y: int(math.Round(y))}, true
}
