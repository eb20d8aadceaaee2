package shape

import (
	"image/color"

	"github.com/matzehuels/drawshop/pkg/noise"
)

// NewCircle creates a circle of the given style. Any style other than
// StyleHanddrawn yields a perfect circle.
func NewCircle(style Style, cx, cy, r float64, c color.RGBA) Circle {
	return Factory{Style: style}.Circle(cx, cy, r, c)
}

// NewRectangle creates a rectangle of the given style from its top-left and
// bottom-right corners.
func NewRectangle(style Style, x0, y0, x1, y1 float64, c color.RGBA) Rectangle {
	return Factory{Style: style}.Rectangle(x0, y0, x1, y1, c)
}

// NewLine creates a line of the given style.
func NewLine(style Style, x0, y0, x1, y1 float64, c color.RGBA) Line {
	return Factory{Style: style}.Line(x0, y0, x1, y1, c)
}

// Factory builds shapes of one style. A nil Noise uses [noise.Default].
type Factory struct {
	Style Style
	Noise noise.Source
}

func (f Factory) src() noise.Source {
	if f.Noise == nil {
		return noise.Default
	}
	return f.Noise
}

func (f Factory) Circle(cx, cy, r float64, c color.RGBA) Circle {
	if f.Style == StyleHanddrawn {
		return NewHanddrawnCircleFrom(f.src(), cx, cy, r, c)
	}
	return NewPerfectCircle(cx, cy, r, c)
}

func (f Factory) Rectangle(x0, y0, x1, y1 float64, c color.RGBA) Rectangle {
	if f.Style == StyleHanddrawn {
		return NewHanddrawnRectangleFrom(f.src(), x0, y0, x1, y1, c)
	}
	return NewPerfectRectangle(x0, y0, x1, y1, c)
}

func (f Factory) Line(x0, y0, x1, y1 float64, c color.RGBA) Line {
	if f.Style == StyleHanddrawn {
		return NewHanddrawnLineFrom(f.src(), x0, y0, x1, y1, c)
	}
	return NewPerfectLine(x0, y0, x1, y1, c)
}

// NormalizeBox orders two opposite corners of a box so that (x0, y0) holds
// the minimum and (x1, y1) the maximum coordinates.
func NormalizeBox(x0, y0, x1, y1 float64) (float64, float64, float64, float64) {
	return min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1)
}

// CircleFromBox derives a circle from a dragged box: centred on the box with
// a radius of half the box height.
func CircleFromBox(x0, y0, x1, y1 float64) (cx, cy, r float64) {
	x0, y0, x1, y1 = NormalizeBox(x0, y0, x1, y1)
	return x0 + (x1-x0)/2, y0 + (y1-y0)/2, (y1 - y0) / 2
}
