package sink

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"math"
	"strings"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/shape"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	strokeWidth float64
	background  color.RGBA
	title       string
}

// WithStrokeWidth sets the outline width in canvas units (default 1).
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }

// WithBackground replaces the white canvas background.
func WithBackground(c color.RGBA) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithTitle embeds a <title> element.
func WithTitle(t string) SVGOption { return func(r *svgRenderer) { r.title = t } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{strokeWidth: 1, background: White}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// White is the default canvas background.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// RenderSVG paints d onto a canvas of d's size. Every shape is drawn as an
// unfilled outline in its own color, in insertion order.
func RenderSVG(d *shape.Drawing, opts ...SVGOption) ([]byte, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeInvalidArgument, "drawing must not be nil")
	}
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		d.Width(), d.Height(), d.Width(), d.Height())
	if r.title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(r.title))
	}
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%d" height="%d" fill="%s"/>`+"\n",
		d.Width(), d.Height(), shape.FormatColor(r.background))
	fmt.Fprintf(&buf, `  <g fill="none" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round">`+"\n",
		num(r.strokeWidth))

	err := shape.Accept(d, func(s shape.Shape) error {
		return r.paint(&buf, s)
	})
	if err != nil {
		return nil, err
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes(), nil
}

func (r *svgRenderer) paint(buf *bytes.Buffer, s shape.Shape) error {
	switch v := s.(type) {
	case *shape.PerfectCircle:
		fmt.Fprintf(buf, `    <ellipse cx="%s" cy="%s" rx="%s" ry="%s" stroke="%s"/>`+"\n",
			num(v.CenterX()), num(v.CenterY()), num(v.Radius()), num(v.Radius()), stroke(v))
	case *shape.HanddrawnCircle:
		b := v.PaintBox()
		rx, ry := (b.URx-b.LLx)/2, (b.URy-b.LLy)/2
		fmt.Fprintf(buf, `    <ellipse cx="%s" cy="%s" rx="%s" ry="%s" stroke="%s"/>`+"\n",
			num(b.LLx+rx), num(b.LLy+ry), num(math.Abs(rx)), num(math.Abs(ry)), stroke(v))
	case *shape.PerfectRectangle:
		x0, y0, x1, y1 := shape.NormalizeBox(v.X0(), v.Y0(), v.X1(), v.Y1())
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" stroke="%s"/>`+"\n",
			num(x0), num(y0), num(x1-x0), num(y1-y0), stroke(v))
	case *shape.HanddrawnRectangle:
		c, m := v.Corners(), v.Mids()
		fmt.Fprintf(buf, `    <path d="M %s %s`, num(c[0].X), num(c[0].Y))
		for i := range 4 {
			next := c[(i+1)%4]
			fmt.Fprintf(buf, " Q %s %s %s %s", num(m[i].X), num(m[i].Y), num(next.X), num(next.Y))
		}
		fmt.Fprintf(buf, ` Z" stroke="%s"/>`+"\n", stroke(v))
	case *shape.PerfectLine:
		fmt.Fprintf(buf, `    <line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s"/>`+"\n",
			num(v.X0()), num(v.Y0()), num(v.X1()), num(v.Y1()), stroke(v))
	case *shape.HanddrawnLine:
		fmt.Fprintf(buf, `    <path d="M %s %s Q %s %s %s %s" stroke="%s"/>`+"\n",
			num(v.X0()), num(v.Y0()), num(v.MidX()), num(v.MidY()), num(v.X1()), num(v.Y1()), stroke(v))
	default:
		return errors.New(errors.ErrCodeUnsupported, "svg: cannot paint %T", s)
	}
	return nil
}

func stroke(c shape.Colored) string {
	return shape.FormatColor(c.Color())
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	s := strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
