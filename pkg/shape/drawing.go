package shape

import "image/color"

// Drawing is a [Group] on a fixed canvas, tagged with the style its shapes
// are built in. Its centroid is always the canvas centre.
type Drawing struct {
	Group
	width, height int
	style         Style
}

// MaxCanvasSize bounds each canvas dimension of a stored drawing.
const MaxCanvasSize = 10000

// ValidCanvas reports whether both dimensions lie in 1..[MaxCanvasSize].
func ValidCanvas(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxCanvasSize && height <= MaxCanvasSize
}

// NewDrawing creates a drawing of the given canvas size holding shapes.
func NewDrawing(width, height int, style Style, shapes ...Shape) *Drawing {
	d := &Drawing{width: width, height: height, style: style}
	d.Add(shapes...)
	return d
}

func (d *Drawing) Kind() Kind       { return KindDrawing }
func (d *Drawing) Width() int       { return d.width }
func (d *Drawing) Height() int      { return d.height }
func (d *Drawing) Style() Style     { return d.style }
func (d *Drawing) CenterX() float64 { return float64(d.width) / 2 }
func (d *Drawing) CenterY() float64 { return float64(d.height) / 2 }

// ToStandard returns a new perfect-style drawing with the same canvas.
func (d *Drawing) ToStandard() Shape {
	return d.Standardize()
}

// Standardize is ToStandard with a typed result.
func (d *Drawing) Standardize() *Drawing {
	return &Drawing{
		Group:  Group{shapes: d.standardMembers()},
		width:  d.width,
		height: d.height,
		style:  StylePerfect,
	}
}

// Circle creates a circle in the drawing's style without adding it.
func (d *Drawing) Circle(cx, cy, r float64, c color.RGBA) Circle {
	return NewCircle(d.style, cx, cy, r, c)
}

// Rectangle creates a rectangle in the drawing's style without adding it.
func (d *Drawing) Rectangle(x0, y0, x1, y1 float64, c color.RGBA) Rectangle {
	return NewRectangle(d.style, x0, y0, x1, y1, c)
}

// Line creates a line in the drawing's style without adding it.
func (d *Drawing) Line(x0, y0, x1, y1 float64, c color.RGBA) Line {
	return NewLine(d.style, x0, y0, x1, y1, c)
}
