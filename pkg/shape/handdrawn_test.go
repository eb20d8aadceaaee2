package shape

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/noise"
)

func labelled() *HanddrawnRectangle {
	return RestoreHanddrawnRectangle(
		[4]vec.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}},
		[4]vec.Vec2{{X: 5, Y: 5}, {X: 6, Y: 6}, {X: 7, Y: 7}, {X: 8, Y: 8}},
		Black,
	)
}

func TestHanddrawnRectangleMirrorXPermutation(t *testing.T) {
	h := labelled()
	h.MirrorX(0)

	if got, want := h.x, [4]float64{-2, -1, -4, -3}; got != want {
		t.Errorf("x = %v, want %v", got, want)
	}
	if got, want := h.midx, [4]float64{-5, -8, -7, -6}; got != want {
		t.Errorf("midx = %v, want %v", got, want)
	}
	if got, want := h.y, [4]float64{1, 2, 3, 4}; got != want {
		t.Errorf("y = %v, want %v (mirrorX must not touch y)", got, want)
	}
	if got, want := h.midy, [4]float64{5, 6, 7, 8}; got != want {
		t.Errorf("midy = %v, want %v", got, want)
	}
}

func TestHanddrawnRectangleMirrorYPermutation(t *testing.T) {
	h := labelled()
	h.MirrorY(0)

	if got, want := h.y, [4]float64{-4, -3, -2, -1}; got != want {
		t.Errorf("y = %v, want %v", got, want)
	}
	if got, want := h.midy, [4]float64{-7, -6, -5, -8}; got != want {
		t.Errorf("midy = %v, want %v", got, want)
	}
	if got, want := h.x, [4]float64{1, 2, 3, 4}; got != want {
		t.Errorf("x = %v, want %v (mirrorY must not touch x)", got, want)
	}
	if got, want := h.midx, [4]float64{5, 6, 7, 8}; got != want {
		t.Errorf("midx = %v, want %v", got, want)
	}
}

func TestHanddrawnRectangleMirrorXCorners(t *testing.T) {
	h := NewHanddrawnRectangleFrom(noise.Zero{}, 0, 0, 10, 10, Black)
	before := h.Corners()
	h.MirrorX(5)

	// Corner 0 takes the reflected x of the old corner 1 and keeps its row.
	if got, want := h.X(0), mirror(5, before[1].X); got != want {
		t.Errorf("X(0) = %v, want %v", got, want)
	}
	if got, want := h.Y(0), before[0].Y; got != want {
		t.Errorf("Y(0) = %v, want %v", got, want)
	}
}

func TestHanddrawnRectangleDoubleMirror(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mirror func(*HanddrawnRectangle)
	}{
		{"x", func(h *HanddrawnRectangle) { h.MirrorX(3.5) }},
		{"y", func(h *HanddrawnRectangle) { h.MirrorY(-2.25) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			h := labelled()
			want := labelled()
			tc.mirror(h)
			tc.mirror(h)
			if diff := cmp.Diff(want.Corners(), h.Corners()); diff != "" {
				t.Errorf("corners after double mirror (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(want.Mids(), h.Mids()); diff != "" {
				t.Errorf("mids after double mirror (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHanddrawnRectangleConstruction(t *testing.T) {
	h := NewHanddrawnRectangleFrom(noise.Zero{}, 0, 0, 10, 20, Black)

	wantCorners := [4]vec.Vec2{{X: 0, Y: 0}, {X: 0, Y: 20}, {X: 10, Y: 20}, {X: 10, Y: 0}}
	if diff := cmp.Diff(wantCorners, h.Corners()); diff != "" {
		t.Errorf("corners (-want +got):\n%s", diff)
	}
	wantMids := [4]vec.Vec2{{X: 0, Y: 10}, {X: 5, Y: 20}, {X: 10, Y: 10}, {X: 5, Y: 0}}
	if diff := cmp.Diff(wantMids, h.Mids()); diff != "" {
		t.Errorf("mids (-want +got):\n%s", diff)
	}
	// Height comes from the bottom and top mids (1 and 3). The side mids
	// share a y, so measuring between them would always give 0.
	if h.Width() != 10 || h.Height() != 20 {
		t.Errorf("size = %vx%v, want 10x20", h.Width(), h.Height())
	}
	if h.CenterX() != 5 || h.CenterY() != 10 {
		t.Errorf("center = (%v, %v), want (5, 10)", h.CenterX(), h.CenterY())
	}
}

func TestHanddrawnRectangleMidsUseJitteredCorners(t *testing.T) {
	// Eight corner samples followed by eight midpoint samples.
	src := noise.NewSequence(1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0)
	h := NewHanddrawnRectangleFrom(src, 0, 0, 10, 10, Black)
	if got := h.MidX(0); got != 1 {
		t.Errorf("MidX(0) = %v, want 1", got)
	}
	if got := h.MidY(1); got != 11 {
		t.Errorf("MidY(1) = %v, want 11", got)
	}
}

func TestHanddrawnRectangleIndexSentinel(t *testing.T) {
	h := labelled()
	for _, i := range []int{-1, 4, 100} {
		if h.X(i) != -1 || h.Y(i) != -1 || h.MidX(i) != -1 || h.MidY(i) != -1 {
			t.Errorf("index %d: want -1 sentinel from every accessor", i)
		}
		if _, err := h.Corner(i); !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
			t.Errorf("Corner(%d) error = %v, want INDEX_OUT_OF_RANGE", i, err)
		}
		if _, err := h.Mid(i); !errors.Is(err, errors.ErrCodeIndexOutOfRange) {
			t.Errorf("Mid(%d) error = %v, want INDEX_OUT_OF_RANGE", i, err)
		}
	}
	c, err := h.Corner(2)
	if err != nil || c != (vec.Vec2{X: 3, Y: 3}) {
		t.Errorf("Corner(2) = %v, %v; want (3, 3), nil", c, err)
	}
}

func TestHanddrawnRectangleToStandard(t *testing.T) {
	h := labelled()
	p, ok := h.ToStandard().(*PerfectRectangle)
	if !ok {
		t.Fatalf("ToStandard() = %T, want *PerfectRectangle", h.ToStandard())
	}
	if p.X0() != 1 || p.Y0() != 1 || p.X1() != 3 || p.Y1() != 3 {
		t.Errorf("ToStandard() corners = (%v,%v)-(%v,%v), want (1,1)-(3,3)", p.X0(), p.Y0(), p.X1(), p.Y1())
	}
	if h.X(1) != 2 {
		t.Error("ToStandard must not modify the receiver")
	}
}

func TestHanddrawnCircle(t *testing.T) {
	h := NewHanddrawnCircleFrom(noise.NewSequence(1, 2, 3, 4), 50, 60, 10, Black)

	if h.CenterX() != 51 || h.CenterY() != 62 {
		t.Errorf("center = (%v, %v), want (51, 62)", h.CenterX(), h.CenterY())
	}
	if h.Height() != 13 || h.Width() != 14 {
		t.Errorf("extents = %vx%v, want 14x13", h.Width(), h.Height())
	}
	if h.Radius() != 10 {
		t.Errorf("Radius() = %v, want 10", h.Radius())
	}

	c, ok := h.ToStandard().(*PerfectCircle)
	if !ok {
		t.Fatalf("ToStandard() = %T, want *PerfectCircle", h.ToStandard())
	}
	if c.Radius() != 10 {
		t.Errorf("ToStandard().Radius() = %v, want the original radius 10", c.Radius())
	}
	if c.CenterX() != 51 || c.CenterY() != 62 {
		t.Errorf("ToStandard() center = (%v, %v), want jittered (51, 62)", c.CenterX(), c.CenterY())
	}

	box := h.PaintBox()
	if box.LLx != 41 || box.LLy != 52 || box.URx != 41+28 || box.URy != 52+26 {
		t.Errorf("PaintBox() = %+v", box)
	}
}

func TestHanddrawnCircleRadiusRandom(t *testing.T) {
	for i := range 100 {
		h := NewHanddrawnCircle(0, 0, 25, Black)
		if got := h.ToStandard().(Circle).Radius(); got != 25 {
			t.Fatalf("iteration %d: ToStandard radius = %v, want 25", i, got)
		}
		if h.Width() < 20 || h.Width() > 30 || h.Height() < 20 || h.Height() > 30 {
			t.Fatalf("iteration %d: extents %vx%v outside jitter range", i, h.Width(), h.Height())
		}
	}
}

func TestHanddrawnLine(t *testing.T) {
	h := NewHanddrawnLineFrom(noise.NewSequence(1, 2, 3, 4, -1, -2), 0, 0, 10, 20, Black)

	if h.X0() != 1 || h.Y0() != 2 || h.X1() != 13 || h.Y1() != 24 {
		t.Errorf("end points = (%v,%v)-(%v,%v), want (1,2)-(13,24)", h.X0(), h.Y0(), h.X1(), h.Y1())
	}
	// The control point is jittered around the unjittered midpoint (5, 10).
	if h.MidX() != 4 || h.MidY() != 8 {
		t.Errorf("control = (%v, %v), want (4, 8)", h.MidX(), h.MidY())
	}
	if h.CenterX() != 7 || h.CenterY() != 13 {
		t.Errorf("center = (%v, %v), want (7, 13)", h.CenterX(), h.CenterY())
	}

	p := h.ToStandard().(*PerfectLine)
	if p.X0() != 1 || p.Y0() != 2 || p.X1() != 13 || p.Y1() != 24 {
		t.Errorf("ToStandard() = (%v,%v)-(%v,%v), want (1,2)-(13,24)", p.X0(), p.Y0(), p.X1(), p.Y1())
	}
}
