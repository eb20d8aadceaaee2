package shape

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/drawshop/pkg/errors"
	"github.com/matzehuels/drawshop/pkg/noise"
)

var allowShapes = cmp.AllowUnexported(
	PerfectCircle{}, PerfectRectangle{}, PerfectLine{},
	HanddrawnCircle{}, HanddrawnRectangle{}, HanddrawnLine{},
	Group{}, Drawing{},
)

// sample builds one shape of every leaf kind. The jitter values are exact
// binary fractions so that transforms round-trip without rounding.
func sample() []Shape {
	src := noise.NewSequence(0.5, -1.25, 2, -3.5, 4.75, -0.25)
	return []Shape{
		NewPerfectCircle(10, 20, 5, Black),
		NewPerfectRectangle(10, 10, 50, 40, Black),
		NewPerfectLine(0, 0, 30, 40, Black),
		NewHanddrawnCircleFrom(src, 10, 20, 5, Black),
		NewHanddrawnRectangleFrom(src, 10, 10, 50, 40, Black),
		NewHanddrawnLineFrom(src, 0, 0, 30, 40, Black),
	}
}

func TestMoveInverse(t *testing.T) {
	for _, s := range sample() {
		want := sample()[indexOfKind(s.Kind())]
		s.Move(7, -3)
		s.Move(-7, 3)
		if diff := cmp.Diff(want, s, allowShapes); diff != "" {
			t.Errorf("%s: move round trip (-want +got):\n%s", s.Kind(), diff)
		}
	}
}

func TestMoveTranslatesCentre(t *testing.T) {
	for _, s := range sample() {
		cx, cy := s.CenterX(), s.CenterY()
		s.Move(4, -6)
		if s.CenterX() != cx+4 || s.CenterY() != cy-6 {
			t.Errorf("%s: center = (%v, %v), want (%v, %v)", s.Kind(), s.CenterX(), s.CenterY(), cx+4, cy-6)
		}
	}
}

func TestDoubleMirror(t *testing.T) {
	for _, s := range sample() {
		want := sample()[indexOfKind(s.Kind())]
		s.MirrorX(12.5)
		s.MirrorX(12.5)
		s.MirrorY(-4)
		s.MirrorY(-4)
		if diff := cmp.Diff(want, s, allowShapes); diff != "" {
			t.Errorf("%s: double mirror (-want +got):\n%s", s.Kind(), diff)
		}
	}
}

func TestMirrorAboutOwnCentreKeepsCentre(t *testing.T) {
	for _, s := range sample() {
		if s.Kind() == KindHanddrawnRectangle {
			// The centre is derived from corners that move between slots.
			continue
		}
		cx, cy := s.CenterX(), s.CenterY()
		s.MirrorX(cx)
		s.MirrorY(cy)
		if s.CenterX() != cx || s.CenterY() != cy {
			t.Errorf("%s: center moved to (%v, %v), want (%v, %v)", s.Kind(), s.CenterX(), s.CenterY(), cx, cy)
		}
	}
}

func TestPerfectToStandardIdentity(t *testing.T) {
	for _, s := range sample()[:3] {
		if got := s.ToStandard(); got != s {
			t.Errorf("%s: ToStandard() returned a different value", s.Kind())
		}
	}
}

func TestToStandardIsPerfect(t *testing.T) {
	for _, s := range sample() {
		got := s.ToStandard()
		if _, ok := got.(Perfect); !ok {
			t.Errorf("%s: ToStandard() = %T, want a perfect shape", s.Kind(), got)
		}
	}
}

func TestPerfectRectangleMirror(t *testing.T) {
	r := NewPerfectRectangle(10, 10, 30, 20, Black)
	r.MirrorX(0)
	if r.X0() != -30 || r.X1() != -10 {
		t.Errorf("MirrorX: x = (%v, %v), want (-30, -10)", r.X0(), r.X1())
	}
	r.MirrorY(0)
	if r.Y0() != -20 || r.Y1() != -10 {
		t.Errorf("MirrorY: y = (%v, %v), want (-20, -10)", r.Y0(), r.Y1())
	}
	if r.Area() != 200 {
		t.Errorf("Area() = %v, want 200", r.Area())
	}
}

func TestPerfectMeasures(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"circle area", NewPerfectCircle(0, 0, 2, Black).Area(), 4 * math.Pi},
		{"rectangle width", NewPerfectRectangle(50, 0, 10, 5, Black).Width(), 40},
		{"rectangle height", NewPerfectRectangle(50, 0, 10, 5, Black).Height(), 5},
		{"line length", NewPerfectLine(0, 0, 30, 40, Black).Length(), 50},
		{"line area", NewPerfectLine(0, 0, 30, 40, Black).Area(), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestFactory(t *testing.T) {
	tests := []struct {
		style Style
		want  [3]Kind
	}{
		{StylePerfect, [3]Kind{KindPerfectCircle, KindPerfectRectangle, KindPerfectLine}},
		{StyleHanddrawn, [3]Kind{KindHanddrawnCircle, KindHanddrawnRectangle, KindHanddrawnLine}},
		{Style(42), [3]Kind{KindPerfectCircle, KindPerfectRectangle, KindPerfectLine}},
	}
	for _, tt := range tests {
		got := [3]Kind{
			NewCircle(tt.style, 0, 0, 1, Black).Kind(),
			NewRectangle(tt.style, 0, 0, 1, 1, Black).Kind(),
			NewLine(tt.style, 0, 0, 1, 1, Black).Kind(),
		}
		if got != tt.want {
			t.Errorf("style %v: kinds = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestFactoryNoise(t *testing.T) {
	f := Factory{Style: StyleHanddrawn, Noise: noise.Zero{}}
	c := f.Circle(10, 10, 5, Black).(*HanddrawnCircle)
	if c.CenterX() != 10 || c.Width() != 5 {
		t.Errorf("zero-noise circle = (%v, w=%v), want (10, w=5)", c.CenterX(), c.Width())
	}
}

func TestNormalizeBox(t *testing.T) {
	x0, y0, x1, y1 := NormalizeBox(50, 5, 10, 40)
	if x0 != 10 || y0 != 5 || x1 != 50 || y1 != 40 {
		t.Errorf("NormalizeBox = (%v,%v,%v,%v), want (10,5,50,40)", x0, y0, x1, y1)
	}
	cx, cy, r := CircleFromBox(50, 40, 10, 0)
	if cx != 30 || cy != 20 || r != 20 {
		t.Errorf("CircleFromBox = (%v,%v,%v), want (30,20,20)", cx, cy, r)
	}
}

func TestParseStyle(t *testing.T) {
	tests := []struct {
		in      string
		want    Style
		wantErr bool
	}{
		{"perfect", StylePerfect, false},
		{"Standard", StylePerfect, false},
		{"handdrawn", StyleHanddrawn, false},
		{" Hand-Drawn ", StyleHanddrawn, false},
		{"sketchy", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStyle(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("ParseStyle(%q) error = %v, want INVALID_STYLE", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStyle(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if StyleHanddrawn.DisplayName() != "Handdrawn Drawing" {
		t.Errorf("DisplayName() = %q", StyleHanddrawn.DisplayName())
	}
}

func TestParseKind(t *testing.T) {
	for k := KindPerfectCircle; k <= KindDrawing; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v; want %v", k.String(), got, err, k)
		}
	}
	if _, err := ParseKind("triangle"); !errors.Is(err, errors.ErrCodeInvalidKind) {
		t.Errorf("ParseKind(triangle) error = %v, want INVALID_KIND", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#ff0000", "#ff0000"},
		{"#0f0", "#00ff00"},
		{"Black", "#000000"},
		{"steelblue", "#4682b4"},
	}
	for _, tt := range tests {
		c, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if got := FormatColor(c); got != tt.want {
			t.Errorf("FormatColor(ParseColor(%q)) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := ParseColor("not-a-colour"); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("ParseColor(invalid) error = %v, want INVALID_ARGUMENT", err)
	}
}

func indexOfKind(k Kind) int {
	return int(k - KindPerfectCircle)
}
