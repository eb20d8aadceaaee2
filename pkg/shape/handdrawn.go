package shape

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/noise"
)

// HanddrawnCircle is a circle whose centre and horizontal/vertical extents
// were jittered independently, so it may paint as a slight ellipse. The
// radius it was requested with is kept separately from the jittered extents.
type HanddrawnCircle struct {
	cx, cy        float64
	height, width float64
	r             float64
	c             color.RGBA
}

// NewHanddrawnCircle jitters a circle using [noise.Default].
func NewHanddrawnCircle(cx, cy, r float64, c color.RGBA) *HanddrawnCircle {
	return NewHanddrawnCircleFrom(noise.Default, cx, cy, r, c)
}

// NewHanddrawnCircleFrom jitters a circle using src. Samples are drawn in the
// order centre x, centre y, height, width.
func NewHanddrawnCircleFrom(src noise.Source, cx, cy, r float64, c color.RGBA) *HanddrawnCircle {
	h := &HanddrawnCircle{r: r, c: c}
	h.cx = cx + src.Sample()
	h.cy = cy + src.Sample()
	h.height = r + src.Sample()
	h.width = r + src.Sample()
	return h
}

// RestoreHanddrawnCircle rebuilds a circle from already jittered values.
func RestoreHanddrawnCircle(cx, cy, width, height, r float64, c color.RGBA) *HanddrawnCircle {
	return &HanddrawnCircle{cx: cx, cy: cy, width: width, height: height, r: r, c: c}
}

func (h *HanddrawnCircle) Kind() Kind        { return KindHanddrawnCircle }
func (h *HanddrawnCircle) Radius() float64   { return h.r }
func (h *HanddrawnCircle) Width() float64    { return h.width }
func (h *HanddrawnCircle) Height() float64   { return h.height }
func (h *HanddrawnCircle) Color() color.RGBA { return h.c }
func (h *HanddrawnCircle) CenterX() float64  { return h.cx }
func (h *HanddrawnCircle) CenterY() float64  { return h.cy }

func (h *HanddrawnCircle) Move(dx, dy int) {
	h.cx += float64(dx)
	h.cy += float64(dy)
}

func (h *HanddrawnCircle) MirrorX(axis float64) { h.cx = mirror(axis, h.cx) }
func (h *HanddrawnCircle) MirrorY(axis float64) { h.cy = mirror(axis, h.cy) }

// ToStandard keeps the jittered centre but returns to the requested radius.
func (h *HanddrawnCircle) ToStandard() Shape {
	return NewPerfectCircle(h.cx, h.cy, h.r, h.c)
}

// PaintBox returns the box the circle is painted into: its origin is the
// centre minus the requested radius, its size twice the jittered extents.
func (h *HanddrawnCircle) PaintBox() rect.Rect {
	x, y := h.cx-h.r, h.cy-h.r
	return rect.Rect{LLx: x, LLy: y, URx: x + 2*h.width, URy: y + 2*h.height}
}

func (h *HanddrawnCircle) Bounds() rect.Rect {
	b := h.PaintBox()
	return boundsOf(pt(b.LLx, b.LLy), pt(b.URx, b.URy))
}

// HanddrawnLine is a segment painted as a quadratic curve through a jittered
// control point near its midpoint.
type HanddrawnLine struct {
	x0, y0 float64
	x1, y1 float64
	mx, my float64
	c      color.RGBA
}

// NewHanddrawnLine jitters a segment using [noise.Default].
func NewHanddrawnLine(x0, y0, x1, y1 float64, c color.RGBA) *HanddrawnLine {
	return NewHanddrawnLineFrom(noise.Default, x0, y0, x1, y1, c)
}

// NewHanddrawnLineFrom jitters a segment using src. The control point is
// jittered around the midpoint of the requested (unjittered) end points.
func NewHanddrawnLineFrom(src noise.Source, x0, y0, x1, y1 float64, c color.RGBA) *HanddrawnLine {
	h := &HanddrawnLine{c: c}
	h.x0 = x0 + src.Sample()
	h.y0 = y0 + src.Sample()
	h.x1 = x1 + src.Sample()
	h.y1 = y1 + src.Sample()
	h.mx = (x0+x1)/2 + src.Sample()
	h.my = (y0+y1)/2 + src.Sample()
	return h
}

// RestoreHanddrawnLine rebuilds a line from already jittered values.
func RestoreHanddrawnLine(x0, y0, x1, y1, mx, my float64, c color.RGBA) *HanddrawnLine {
	return &HanddrawnLine{x0: x0, y0: y0, x1: x1, y1: y1, mx: mx, my: my, c: c}
}

func (h *HanddrawnLine) Kind() Kind        { return KindHanddrawnLine }
func (h *HanddrawnLine) X0() float64       { return h.x0 }
func (h *HanddrawnLine) Y0() float64       { return h.y0 }
func (h *HanddrawnLine) X1() float64       { return h.x1 }
func (h *HanddrawnLine) Y1() float64       { return h.y1 }
func (h *HanddrawnLine) MidX() float64     { return h.mx }
func (h *HanddrawnLine) MidY() float64     { return h.my }
func (h *HanddrawnLine) Color() color.RGBA { return h.c }
func (h *HanddrawnLine) CenterX() float64  { return h.x0 + (h.x1-h.x0)/2 }
func (h *HanddrawnLine) CenterY() float64  { return h.y0 + (h.y1-h.y0)/2 }

// Length returns the straight distance between the jittered end points.
func (h *HanddrawnLine) Length() float64 {
	return pt(h.x1, h.y1).Sub(pt(h.x0, h.y0)).Length()
}

func (h *HanddrawnLine) Move(dx, dy int) {
	h.x0 += float64(dx)
	h.y0 += float64(dy)
	h.x1 += float64(dx)
	h.y1 += float64(dy)
	h.mx += float64(dx)
	h.my += float64(dy)
}

func (h *HanddrawnLine) MirrorX(axis float64) {
	h.x0 = mirror(axis, h.x0)
	h.x1 = mirror(axis, h.x1)
	h.mx = mirror(axis, h.mx)
}

func (h *HanddrawnLine) MirrorY(axis float64) {
	h.y0 = mirror(axis, h.y0)
	h.y1 = mirror(axis, h.y1)
	h.my = mirror(axis, h.my)
}

// ToStandard drops the control point and keeps the jittered end points.
func (h *HanddrawnLine) ToStandard() Shape {
	return NewPerfectLine(h.x0, h.y0, h.x1, h.y1, h.c)
}

// Bounds encloses the end points and the control point, and therefore the
// whole curve.
func (h *HanddrawnLine) Bounds() rect.Rect {
	return boundsOf(pt(h.x0, h.y0), pt(h.x1, h.y1), pt(h.mx, h.my))
}

// outOfRange is returned by the index accessors of [HanddrawnRectangle] for
// indices outside 0-3.
const outOfRange = -1

// HanddrawnRectangle is a rectangle with four independently jittered corners
// and four jittered edge midpoints. Corner i and edge i are stored in slot i;
// edge i joins corner i to corner (i+1) mod 4. Slot 0 is the top-left corner
// and the edge leaving it.
type HanddrawnRectangle struct {
	x, y       [4]float64
	midx, midy [4]float64
	c          color.RGBA
}

// NewHanddrawnRectangle jitters a rectangle using [noise.Default].
func NewHanddrawnRectangle(x0, y0, x1, y1 float64, c color.RGBA) *HanddrawnRectangle {
	return NewHanddrawnRectangleFrom(noise.Default, x0, y0, x1, y1, c)
}

// NewHanddrawnRectangleFrom jitters a rectangle using src. Corners are laid
// out as (x0,y0), (x0,y1), (x1,y1), (x1,y0); each edge midpoint is jittered
// around the midpoint of its two already jittered corners.
func NewHanddrawnRectangleFrom(src noise.Source, x0, y0, x1, y1 float64, c color.RGBA) *HanddrawnRectangle {
	h := &HanddrawnRectangle{c: c}
	corners := [4][2]float64{{x0, y0}, {x0, y1}, {x1, y1}, {x1, y0}}
	for i, p := range corners {
		h.x[i] = p[0] + src.Sample()
		h.y[i] = p[1] + src.Sample()
	}
	for i := range 4 {
		j := (i + 1) % 4
		h.midx[i] = (h.x[i]+h.x[j])/2 + src.Sample()
		h.midy[i] = (h.y[i]+h.y[j])/2 + src.Sample()
	}
	return h
}

// RestoreHanddrawnRectangle rebuilds a rectangle from already jittered
// corners and edge midpoints.
func RestoreHanddrawnRectangle(corners, mids [4]vec.Vec2, c color.RGBA) *HanddrawnRectangle {
	h := &HanddrawnRectangle{c: c}
	for i := range 4 {
		h.x[i], h.y[i] = corners[i].X, corners[i].Y
		h.midx[i], h.midy[i] = mids[i].X, mids[i].Y
	}
	return h
}

func (h *HanddrawnRectangle) Kind() Kind        { return KindHanddrawnRectangle }
func (h *HanddrawnRectangle) Color() color.RGBA { return h.c }

// Width is the horizontal distance between the midpoints of edges 0 and 2.
func (h *HanddrawnRectangle) Width() float64 { return math.Abs(h.midx[2] - h.midx[0]) }

// Height is the vertical distance between the midpoints of edges 1 and 3.
func (h *HanddrawnRectangle) Height() float64 { return math.Abs(h.midy[1] - h.midy[3]) }

// X returns the x coordinate of corner i, or -1 if i is outside 0-3.
func (h *HanddrawnRectangle) X(i int) float64 { return at(h.x, i) }

// Y returns the y coordinate of corner i, or -1 if i is outside 0-3.
func (h *HanddrawnRectangle) Y(i int) float64 { return at(h.y, i) }

// MidX returns the x coordinate of the midpoint of edge i, or -1 if i is
// outside 0-3.
func (h *HanddrawnRectangle) MidX(i int) float64 { return at(h.midx, i) }

// MidY returns the y coordinate of the midpoint of edge i, or -1 if i is
// outside 0-3.
func (h *HanddrawnRectangle) MidY(i int) float64 { return at(h.midy, i) }

func at(a [4]float64, i int) float64 {
	if i < 0 || i >= len(a) {
		return outOfRange
	}
	return a[i]
}

// Corner returns corner i, failing with INDEX_OUT_OF_RANGE outside 0-3.
func (h *HanddrawnRectangle) Corner(i int) (vec.Vec2, error) {
	if i < 0 || i >= 4 {
		return vec.Vec2{}, errors.New(errors.ErrCodeIndexOutOfRange, "corner index %d out of range [0, 3]", i)
	}
	return pt(h.x[i], h.y[i]), nil
}

// Mid returns the midpoint of edge i, failing with INDEX_OUT_OF_RANGE
// outside 0-3.
func (h *HanddrawnRectangle) Mid(i int) (vec.Vec2, error) {
	if i < 0 || i >= 4 {
		return vec.Vec2{}, errors.New(errors.ErrCodeIndexOutOfRange, "edge index %d out of range [0, 3]", i)
	}
	return pt(h.midx[i], h.midy[i]), nil
}

// Corners returns a copy of the four corners in slot order.
func (h *HanddrawnRectangle) Corners() [4]vec.Vec2 {
	var out [4]vec.Vec2
	for i := range out {
		out[i] = pt(h.x[i], h.y[i])
	}
	return out
}

// Mids returns a copy of the four edge midpoints in slot order.
func (h *HanddrawnRectangle) Mids() [4]vec.Vec2 {
	var out [4]vec.Vec2
	for i := range out {
		out[i] = pt(h.midx[i], h.midy[i])
	}
	return out
}

func (h *HanddrawnRectangle) CenterX() float64 { return h.x[0] + (h.x[3]-h.x[0])/2 }
func (h *HanddrawnRectangle) CenterY() float64 { return h.y[0] + (h.y[2]-h.y[0])/2 }

func (h *HanddrawnRectangle) Move(dx, dy int) {
	for i := range 4 {
		h.x[i] += float64(dx)
		h.y[i] += float64(dy)
		h.midx[i] += float64(dx)
		h.midy[i] += float64(dy)
	}
}

// MirrorX reflects every x coordinate about axis and then re-slots them:
// corners 0<->1 and 2<->3 swap, edge midpoints 1<->3 swap, edge midpoints
// 0 and 2 stay. Only x coordinates move between slots.
func (h *HanddrawnRectangle) MirrorX(axis float64) {
	for i := range 4 {
		h.x[i] = mirror(axis, h.x[i])
		h.midx[i] = mirror(axis, h.midx[i])
	}
	h.x[0], h.x[1] = h.x[1], h.x[0]
	h.x[2], h.x[3] = h.x[3], h.x[2]
	h.midx[1], h.midx[3] = h.midx[3], h.midx[1]
}

// MirrorY reflects every y coordinate about axis and then re-slots them:
// corners 0<->3 and 1<->2 swap, edge midpoints 0<->2 swap, edge midpoints
// 1 and 3 stay. Only y coordinates move between slots.
func (h *HanddrawnRectangle) MirrorY(axis float64) {
	for i := range 4 {
		h.y[i] = mirror(axis, h.y[i])
		h.midy[i] = mirror(axis, h.midy[i])
	}
	h.y[0], h.y[3] = h.y[3], h.y[0]
	h.y[1], h.y[2] = h.y[2], h.y[1]
	h.midy[0], h.midy[2] = h.midy[2], h.midy[0]
}

// ToStandard keeps corners 0 and 2 as the perfect rectangle's top-left and
// bottom-right corners; corners 1 and 3 and all midpoints are dropped.
func (h *HanddrawnRectangle) ToStandard() Shape {
	return NewPerfectRectangle(h.x[0], h.y[0], h.x[2], h.y[2], h.c)
}

func (h *HanddrawnRectangle) Bounds() rect.Rect {
	c, m := h.Corners(), h.Mids()
	return boundsOf(append(c[:], m[:]...)...)
}
