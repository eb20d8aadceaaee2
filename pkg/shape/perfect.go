package shape

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
)

// PerfectCircle is an exact circle.
type PerfectCircle struct {
	cx, cy float64
	r      float64
	c      color.RGBA
}

// NewPerfectCircle creates a circle centred on (cx, cy).
func NewPerfectCircle(cx, cy, r float64, c color.RGBA) *PerfectCircle {
	return &PerfectCircle{cx: cx, cy: cy, r: r, c: c}
}

func (p *PerfectCircle) Kind() Kind        { return KindPerfectCircle }
func (p *PerfectCircle) Radius() float64   { return p.r }
func (p *PerfectCircle) Color() color.RGBA { return p.c }
func (p *PerfectCircle) CenterX() float64  { return p.cx }
func (p *PerfectCircle) CenterY() float64  { return p.cy }
func (p *PerfectCircle) Area() float64     { return math.Pi * p.r * p.r }
func (p *PerfectCircle) ToStandard() Shape { return p }

func (p *PerfectCircle) Move(dx, dy int) {
	p.cx += float64(dx)
	p.cy += float64(dy)
}

func (p *PerfectCircle) MirrorX(axis float64) { p.cx = mirror(axis, p.cx) }
func (p *PerfectCircle) MirrorY(axis float64) { p.cy = mirror(axis, p.cy) }

func (p *PerfectCircle) Bounds() rect.Rect {
	return rect.Rect{LLx: p.cx - p.r, LLy: p.cy - p.r, URx: p.cx + p.r, URy: p.cy + p.r}
}

// PerfectRectangle is an exact axis-aligned rectangle given by its top-left
// (x0, y0) and bottom-right (x1, y1) corners.
type PerfectRectangle struct {
	x0, y0 float64
	x1, y1 float64
	c      color.RGBA
}

// NewPerfectRectangle creates a rectangle from two opposite corners. The
// corners are stored as given; use [NormalizeBox] to order them first.
func NewPerfectRectangle(x0, y0, x1, y1 float64, c color.RGBA) *PerfectRectangle {
	return &PerfectRectangle{x0: x0, y0: y0, x1: x1, y1: y1, c: c}
}

func (p *PerfectRectangle) Kind() Kind        { return KindPerfectRectangle }
func (p *PerfectRectangle) X0() float64       { return p.x0 }
func (p *PerfectRectangle) Y0() float64       { return p.y0 }
func (p *PerfectRectangle) X1() float64       { return p.x1 }
func (p *PerfectRectangle) Y1() float64       { return p.y1 }
func (p *PerfectRectangle) Width() float64    { return math.Abs(p.x1 - p.x0) }
func (p *PerfectRectangle) Height() float64   { return math.Abs(p.y1 - p.y0) }
func (p *PerfectRectangle) Color() color.RGBA { return p.c }
func (p *PerfectRectangle) CenterX() float64  { return p.x0 + (p.x1-p.x0)/2 }
func (p *PerfectRectangle) CenterY() float64  { return p.y0 + (p.y1-p.y0)/2 }
func (p *PerfectRectangle) ToStandard() Shape { return p }

// Area returns the signed area (x1-x0)*(y1-y0); it is positive when the
// corners are ordered top-left, bottom-right.
func (p *PerfectRectangle) Area() float64 { return (p.x1 - p.x0) * (p.y1 - p.y0) }

func (p *PerfectRectangle) Move(dx, dy int) {
	p.x0 += float64(dx)
	p.y0 += float64(dy)
	p.x1 += float64(dx)
	p.y1 += float64(dy)
}

// MirrorX reflects both x coordinates and swaps them, so x0 stays the left
// edge of a normalised rectangle.
func (p *PerfectRectangle) MirrorX(axis float64) {
	p.x0, p.x1 = mirror(axis, p.x1), mirror(axis, p.x0)
}

// MirrorY reflects both y coordinates and swaps them, so y0 stays the top
// edge of a normalised rectangle.
func (p *PerfectRectangle) MirrorY(axis float64) {
	p.y0, p.y1 = mirror(axis, p.y1), mirror(axis, p.y0)
}

func (p *PerfectRectangle) Bounds() rect.Rect {
	return boundsOf(pt(p.x0, p.y0), pt(p.x1, p.y1))
}

// PerfectLine is an exact straight segment from (x0, y0) to (x1, y1).
type PerfectLine struct {
	x0, y0 float64
	x1, y1 float64
	c      color.RGBA
}

// NewPerfectLine creates a segment.
func NewPerfectLine(x0, y0, x1, y1 float64, c color.RGBA) *PerfectLine {
	return &PerfectLine{x0: x0, y0: y0, x1: x1, y1: y1, c: c}
}

func (p *PerfectLine) Kind() Kind        { return KindPerfectLine }
func (p *PerfectLine) X0() float64       { return p.x0 }
func (p *PerfectLine) Y0() float64       { return p.y0 }
func (p *PerfectLine) X1() float64       { return p.x1 }
func (p *PerfectLine) Y1() float64       { return p.y1 }
func (p *PerfectLine) Color() color.RGBA { return p.c }
func (p *PerfectLine) CenterX() float64  { return p.x0 + (p.x1-p.x0)/2 }
func (p *PerfectLine) CenterY() float64  { return p.y0 + (p.y1-p.y0)/2 }
func (p *PerfectLine) Area() float64     { return 0 }
func (p *PerfectLine) ToStandard() Shape { return p }

// Length returns the Euclidean distance between the end points.
func (p *PerfectLine) Length() float64 {
	return pt(p.x1, p.y1).Sub(pt(p.x0, p.y0)).Length()
}

func (p *PerfectLine) Move(dx, dy int) {
	p.x0 += float64(dx)
	p.y0 += float64(dy)
	p.x1 += float64(dx)
	p.y1 += float64(dy)
}

func (p *PerfectLine) MirrorX(axis float64) {
	p.x0 = mirror(axis, p.x0)
	p.x1 = mirror(axis, p.x1)
}

func (p *PerfectLine) MirrorY(axis float64) {
	p.y0 = mirror(axis, p.y0)
	p.y1 = mirror(axis, p.y1)
}

func (p *PerfectLine) Bounds() rect.Rect {
	return boundsOf(pt(p.x0, p.y0), pt(p.x1, p.y1))
}
