package shape

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/noise"
)

func TestGroupCentroidIsUnweighted(t *testing.T) {
	g := NewGroup(
		NewPerfectCircle(0, 0, 100, Black),
		NewPerfectRectangle(5, 5, 15, 15, Black),
	)
	if g.CenterX() != 5 || g.CenterY() != 5 {
		t.Errorf("center = (%v, %v), want (5, 5)", g.CenterX(), g.CenterY())
	}
}

func TestEmptyGroupCentroid(t *testing.T) {
	g := NewGroup()
	if !math.IsNaN(g.CenterX()) || !math.IsNaN(g.CenterY()) {
		t.Errorf("empty group center = (%v, %v), want NaN", g.CenterX(), g.CenterY())
	}
}

func TestNestedGroupCentroid(t *testing.T) {
	inner := NewGroup(NewPerfectCircle(0, 0, 1, Black), NewPerfectCircle(20, 0, 1, Black))
	g := NewGroup(inner, NewPerfectCircle(30, 30, 1, Black))
	// Mean of the inner group's centroid (10, 0) and (30, 30).
	if g.CenterX() != 20 || g.CenterY() != 15 {
		t.Errorf("center = (%v, %v), want (20, 15)", g.CenterX(), g.CenterY())
	}
}

func TestGroupTransformsRecurse(t *testing.T) {
	c := NewPerfectCircle(10, 10, 1, Black)
	l := NewPerfectLine(0, 0, 4, 4, Black)
	g := NewGroup(NewGroup(c), l)

	g.Move(1, 2)
	if c.CenterX() != 11 || c.CenterY() != 12 {
		t.Errorf("nested circle after Move = (%v, %v), want (11, 12)", c.CenterX(), c.CenterY())
	}

	// Every member reflects about the same axis, not its own centre.
	g.MirrorX(0)
	if c.CenterX() != -11 || l.X0() != -1 || l.X1() != -5 {
		t.Errorf("after MirrorX(0): circle x = %v, line x = (%v, %v)", c.CenterX(), l.X0(), l.X1())
	}
	g.MirrorY(0)
	if c.CenterY() != -12 {
		t.Errorf("after MirrorY(0): circle y = %v, want -12", c.CenterY())
	}
}

func TestGroupAddRemove(t *testing.T) {
	a := NewPerfectCircle(0, 0, 1, Black)
	b := NewPerfectCircle(0, 0, 1, Black)
	g := NewGroup(a, nil, b)

	if g.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (nil skipped)", g.Len())
	}
	if !g.Remove(b) {
		t.Error("Remove(b) = false, want true")
	}
	if g.Remove(b) {
		t.Error("second Remove(b) = true, want false")
	}
	if g.At(0) != a || g.At(1) != nil {
		t.Error("At() returned unexpected members")
	}
	if _, ok := g.RemoveAt(3); ok {
		t.Error("RemoveAt(3) succeeded on a one-member group")
	}

	shapes := g.Shapes()
	shapes[0] = nil
	if g.At(0) != a {
		t.Error("Shapes() must return a copy")
	}
}

func TestGroupToStandard(t *testing.T) {
	src := noise.NewSequence(1, 2, 3, 4)
	h := NewHanddrawnCircleFrom(src, 10, 10, 5, Black)
	p := NewPerfectLine(0, 0, 1, 1, Black)
	g := NewGroup(NewGroup(h), p)

	std, ok := g.ToStandard().(*Group)
	if !ok {
		t.Fatalf("ToStandard() = %T, want *Group", g.ToStandard())
	}
	if std == g {
		t.Fatal("ToStandard() returned the receiver")
	}
	inner, ok := std.At(0).(*Group)
	if !ok || inner.Len() != 1 {
		t.Fatalf("structure not preserved: %T", std.At(0))
	}
	if inner.At(0).Kind() != KindPerfectCircle {
		t.Errorf("inner member kind = %v, want perfect_circle", inner.At(0).Kind())
	}
	if std.At(1) != p {
		t.Error("perfect members should convert to themselves")
	}
	if g.At(0).(*Group).At(0) != h {
		t.Error("ToStandard must not modify the receiver")
	}
}

func TestDrawing(t *testing.T) {
	d := NewDrawing(100, 80, StyleHanddrawn)
	if d.CenterX() != 50 || d.CenterY() != 40 {
		t.Errorf("empty drawing center = (%v, %v), want (50, 40)", d.CenterX(), d.CenterY())
	}
	d.Add(d.Circle(0, 0, 5, Black), d.Rectangle(0, 0, 1, 1, Black), d.Line(0, 0, 1, 1, Black))
	if d.CenterX() != 50 || d.CenterY() != 40 {
		t.Error("drawing center must not depend on its shapes")
	}

	want := map[Kind]int{KindHanddrawnCircle: 1, KindHanddrawnRectangle: 1, KindHanddrawnLine: 1}
	if diff := cmp.Diff(want, Count(d)); diff != "" {
		t.Errorf("Count (-want +got):\n%s", diff)
	}

	std := d.Standardize()
	if std == d || std.Style() != StylePerfect || std.Width() != 100 || std.Height() != 80 {
		t.Errorf("Standardize() = %p style=%v %dx%d", std, std.Style(), std.Width(), std.Height())
	}
	if d.Style() != StyleHanddrawn {
		t.Error("Standardize must not change the receiver's style")
	}
	want = map[Kind]int{KindPerfectCircle: 1, KindPerfectRectangle: 1, KindPerfectLine: 1}
	if diff := cmp.Diff(want, Count(std)); diff != "" {
		t.Errorf("Count(standardized) (-want +got):\n%s", diff)
	}
	if _, ok := d.ToStandard().(*Drawing); !ok {
		t.Errorf("ToStandard() = %T, want *Drawing", d.ToStandard())
	}
}

func TestDrawingEndToEnd(t *testing.T) {
	d := NewDrawing(100, 100, StylePerfect)
	r := NewPerfectRectangle(10, 10, 50, 50, Black)
	d.Add(r)

	std := d.Standardize()
	if std.Len() != 1 || std.At(0) != r {
		t.Errorf("standardized drawing = %d shapes, first %v", std.Len(), std.At(0))
	}
}

func TestAccept(t *testing.T) {
	a := NewPerfectCircle(0, 0, 1, Black)
	b := NewPerfectLine(0, 0, 1, 1, Black)
	c := NewPerfectRectangle(0, 0, 1, 1, Black)
	d := NewDrawing(10, 10, StylePerfect, a, NewGroup(b, NewGroup()), c)

	var visited []Shape
	err := Accept(d, func(s Shape) error {
		visited = append(visited, s)
		return nil
	})
	if err != nil {
		t.Fatalf("Accept error: %v", err)
	}
	if len(visited) != 3 || visited[0] != a || visited[1] != b || visited[2] != c {
		t.Errorf("visit order = %v, want insertion order", visited)
	}

	stop := fmt.Errorf("stop")
	n := 0
	err = Accept(d, func(Shape) error {
		n++
		return stop
	})
	if err != stop || n != 1 {
		t.Errorf("Accept = %v after %d calls, want stop after 1", err, n)
	}
}

func TestAcceptNil(t *testing.T) {
	if err := Accept(NewPerfectCircle(0, 0, 1, Black), nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Accept(nil visitor) error = %v, want INVALID_ARGUMENT", err)
	}
	if err := Accept(nil, func(Shape) error { return nil }); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Accept(nil shape) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestArea(t *testing.T) {
	d := NewDrawing(100, 100, StylePerfect,
		NewPerfectRectangle(10, 10, 50, 50, Black),
		NewGroup(NewPerfectCircle(0, 0, 1, Black), NewPerfectLine(0, 0, 5, 5, Black)),
	)
	got, err := Area(d)
	if err != nil {
		t.Fatalf("Area error: %v", err)
	}
	if want := 1600 + math.Pi; math.Abs(got-want) > 1e-9 {
		t.Errorf("Area = %v, want %v", got, want)
	}

	if _, err := Area(NewDrawing(10, 10, StyleHanddrawn)); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Area(handdrawn) error = %v, want INVALID_ARGUMENT", err)
	}
	mixed := NewDrawing(10, 10, StylePerfect, NewHanddrawnLineFrom(noise.Zero{}, 0, 0, 1, 1, Black))
	if _, err := Area(mixed); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Area(mixed) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestBounds(t *testing.T) {
	g := NewGroup(
		NewPerfectCircle(10, 10, 5, Black),
		NewPerfectLine(-3, 20, 4, 30, Black),
	)
	b := g.Bounds()
	if b.LLx != -3 || b.LLy != 5 || b.URx != 15 || b.URy != 30 {
		t.Errorf("Bounds() = %+v, want {-3 5 15 30}", b)
	}
}
