package shape

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is the capability set shared by every variant, leaf or composite.
type Shape interface {
	// Kind reports the concrete variant.
	Kind() Kind

	// Move translates every stored coordinate by (dx, dy).
	Move(dx, dy int)

	// MirrorX reflects every stored x coordinate about the vertical line x = axis.
	MirrorX(axis float64)

	// MirrorY reflects every stored y coordinate about the horizontal line y = axis.
	MirrorY(axis float64)

	// CenterX and CenterY return the shape's centroid.
	CenterX() float64
	CenterY() float64

	// ToStandard returns a perfect-only equivalent without modifying the receiver.
	ToStandard() Shape

	// Bounds returns the axis-aligned box enclosing everything the shape
	// paints. LLx/LLy hold the minimum coordinates, URx/URy the maximum.
	Bounds() rect.Rect
}

// Colored is implemented by every leaf variant.
type Colored interface {
	Color() color.RGBA
}

// Circle is implemented by both circle variants.
type Circle interface {
	Shape
	Colored
	// Radius returns the radius the circle was created with.
	Radius() float64
}

// Rectangle is implemented by both rectangle variants.
type Rectangle interface {
	Shape
	Colored
	Width() float64
	Height() float64
}

// Line is implemented by both line variants.
type Line interface {
	Shape
	Colored
	Length() float64
}

// Perfect is implemented by the perfect leaf variants.
type Perfect interface {
	Shape
	Area() float64
}

// mirror reflects c about axis.
func mirror(axis, c float64) float64 {
	return axis + (axis - c)
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// boundsOf returns the smallest box containing all pts.
func boundsOf(pts ...vec.Vec2) rect.Rect {
	if len(pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: math.Inf(1), LLy: math.Inf(1), URx: math.Inf(-1), URy: math.Inf(-1)}
	for _, p := range pts {
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// union returns the smallest box containing both a and b.
func union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}
