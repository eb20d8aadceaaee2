package shape

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// Group is an ordered composite of shapes. Every [Shape] operation recurses
// into the members. A shape should belong to at most one group at a time.
type Group struct {
	shapes []Shape
}

// NewGroup creates a group holding shapes in the given order.
func NewGroup(shapes ...Shape) *Group {
	g := &Group{}
	g.Add(shapes...)
	return g
}

func (g *Group) Kind() Kind { return KindGroup }

// Add appends shapes in order. Nil shapes are skipped.
func (g *Group) Add(shapes ...Shape) {
	for _, s := range shapes {
		if s != nil {
			g.shapes = append(g.shapes, s)
		}
	}
}

// Remove deletes the first member identical to s and reports whether one was
// found. Nested groups are not searched.
func (g *Group) Remove(s Shape) bool {
	for i, m := range g.shapes {
		if m == s {
			g.shapes = append(g.shapes[:i], g.shapes[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAt deletes the member at index i and returns it.
func (g *Group) RemoveAt(i int) (Shape, bool) {
	if i < 0 || i >= len(g.shapes) {
		return nil, false
	}
	s := g.shapes[i]
	g.shapes = append(g.shapes[:i], g.shapes[i+1:]...)
	return s, true
}

// Shapes returns a copy of the member slice.
func (g *Group) Shapes() []Shape {
	out := make([]Shape, len(g.shapes))
	copy(out, g.shapes)
	return out
}

// Len returns the number of direct members.
func (g *Group) Len() int { return len(g.shapes) }

// At returns the member at index i, or nil when i is out of range.
func (g *Group) At(i int) Shape {
	if i < 0 || i >= len(g.shapes) {
		return nil
	}
	return g.shapes[i]
}

func (g *Group) Move(dx, dy int) {
	for _, s := range g.shapes {
		s.Move(dx, dy)
	}
}

// MirrorX reflects every member about the same axis.
func (g *Group) MirrorX(axis float64) {
	for _, s := range g.shapes {
		s.MirrorX(axis)
	}
}

// MirrorY reflects every member about the same axis.
func (g *Group) MirrorY(axis float64) {
	for _, s := range g.shapes {
		s.MirrorY(axis)
	}
}

// CenterX returns the unweighted mean of the members' CenterX. It is NaN for
// an empty group.
func (g *Group) CenterX() float64 {
	if len(g.shapes) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, s := range g.shapes {
		sum += s.CenterX()
	}
	return sum / float64(len(g.shapes))
}

// CenterY returns the unweighted mean of the members' CenterY. It is NaN for
// an empty group.
func (g *Group) CenterY() float64 {
	if len(g.shapes) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, s := range g.shapes {
		sum += s.CenterY()
	}
	return sum / float64(len(g.shapes))
}

// ToStandard returns a new group of the converted members.
func (g *Group) ToStandard() Shape {
	return &Group{shapes: g.standardMembers()}
}

func (g *Group) standardMembers() []Shape {
	out := make([]Shape, len(g.shapes))
	for i, s := range g.shapes {
		out[i] = s.ToStandard()
	}
	return out
}

// Bounds returns the union of the members' bounds, or the zero box for an
// empty group.
func (g *Group) Bounds() rect.Rect {
	if len(g.shapes) == 0 {
		return rect.Rect{}
	}
	b := g.shapes[0].Bounds()
	for _, s := range g.shapes[1:] {
		b = union(b, s.Bounds())
	}
	return b
}

// Leaves calls fn for every non-composite shape in depth-first insertion
// order and stops at the first error.
func (g *Group) Leaves(fn func(Shape) error) error {
	for _, s := range g.shapes {
		var err error
		switch c := s.(type) {
		case *Group:
			err = c.Leaves(fn)
		case *Drawing:
			err = c.Leaves(fn)
		default:
			err = fn(s)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
