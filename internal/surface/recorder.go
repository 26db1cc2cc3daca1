// Package surface provides graph.Canvas implementations: an in-memory
// recorder, a terminal cell canvas and a PNG/SVG image canvas.
package surface

import (
	"fmt"
	"strings"

	"github.com/jask/graphview/internal/graph"
)

// OpKind identifies a recorded draw primitive.
type OpKind string

const (
	OpLine OpKind = "line"
	OpRect OpKind = "rect"
)

// Op is one recorded draw call. For rects X1,Y1 is left/top and X2,Y2 is
// right/bottom.
type Op struct {
	Kind  OpKind
	X1    float64
	Y1    float64
	X2    float64
	Y2    float64
	Paint graph.Paint
}

func (o Op) String() string {
	return fmt.Sprintf("%s %g,%g %g,%g width=%g color=%s", o.Kind, o.X1, o.Y1, o.X2, o.Y2, o.Paint.StrokeWidth, o.Paint.Color)
}

// Recorder keeps every draw call in order.
type Recorder struct {
	ops []Op
}

var _ graph.Canvas = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64, p graph.Paint) {
	r.ops = append(r.ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: p})
}

func (r *Recorder) DrawRect(left, top, right, bottom float64, p graph.Paint) {
	r.ops = append(r.ops, Op{Kind: OpRect, X1: left, Y1: top, X2: right, Y2: bottom, Paint: p})
}

func (r *Recorder) Ops() []Op { return append([]Op(nil), r.ops...) }

func (r *Recorder) Lines() []Op { return r.filter(OpLine) }

func (r *Recorder) Rects() []Op { return r.filter(OpRect) }

func (r *Recorder) Reset() { r.ops = r.ops[:0] }

// String renders one op per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, o := range r.ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Recorder) filter(kind OpKind) []Op {
	var out []Op
	for _, o := range r.ops {
		if o.Kind == kind {
			out = append(out, o)
		}
	}
	return out
}
