package surface

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jask/graphview/internal/graph"
)

// ErrUnknownFormat is returned for an image format other than png or svg.
var ErrUnknownFormat = errors.New("unknown image format")

// Format selects the image encoder.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// DefaultImageColor is used when a paint colour is not a hex value.
var DefaultImageColor = drawing.ColorBlack

// Image draws onto a go-chart renderer and encodes it as PNG or SVG.
type Image struct {
	r      chart.Renderer
	width  int
	height int
}

var _ graph.Canvas = (*Image)(nil)

// NewImage creates a white canvas of the given pixel size.
func NewImage(format Format, width, height int) (*Image, error) {
	var provider chart.RendererProvider
	switch Format(strings.ToLower(string(format))) {
	case FormatPNG:
		provider = chart.PNG
	case FormatSVG:
		provider = chart.SVG
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	r, err := provider(width, height)
	if err != nil {
		return nil, fmt.Errorf("create %s renderer: %w", format, err)
	}
	img := &Image{r: r, width: width, height: height}
	img.fill(0, 0, float64(width), float64(height), drawing.ColorWhite)
	return img, nil
}

func (img *Image) DrawLine(x1, y1, x2, y2 float64, p graph.Paint) {
	img.r.ResetStyle()
	img.r.SetStrokeColor(imageColor(p))
	img.r.SetStrokeWidth(max(p.StrokeWidth, 1))
	img.r.MoveTo(round(x1), round(y1))
	img.r.LineTo(round(x2), round(y2))
	img.r.Stroke()
}

func (img *Image) DrawRect(left, top, right, bottom float64, p graph.Paint) {
	img.fill(left, top, right, bottom, imageColor(p))
}

// Save encodes the image.
func (img *Image) Save(w io.Writer) error {
	if err := img.r.Save(w); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

func (img *Image) fill(left, top, right, bottom float64, c drawing.Color) {
	img.r.ResetStyle()
	img.r.SetFillColor(c)
	img.r.SetStrokeColor(c)
	img.r.SetStrokeWidth(0)
	img.r.MoveTo(round(left), round(top))
	img.r.LineTo(round(right), round(top))
	img.r.LineTo(round(right), round(bottom))
	img.r.LineTo(round(left), round(bottom))
	img.r.Close()
	img.r.Fill()
}

func imageColor(p graph.Paint) drawing.Color {
	hex := strings.TrimPrefix(string(p.Color), "#")
	if len(hex) != 3 && len(hex) != 6 {
		return DefaultImageColor
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return DefaultImageColor
		}
	}
	return drawing.ColorFromHex(hex)
}

func round(v float64) int { return int(math.Round(v)) }
