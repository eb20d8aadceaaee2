package shape

import "github.com/matzehuels/drawshop/pkg/errors"

// Kind identifies the concrete variant of a [Shape].
type Kind int

// Shape kinds. The zero value is not a valid kind.
const (
	KindPerfectCircle Kind = iota + 1
	KindPerfectRectangle
	KindPerfectLine
	KindHanddrawnCircle
	KindHanddrawnRectangle
	KindHanddrawnLine
	KindGroup
	KindDrawing
)

var kindNames = map[Kind]string{
	KindPerfectCircle:      "perfect_circle",
	KindPerfectRectangle:   "perfect_rectangle",
	KindPerfectLine:        "perfect_line",
	KindHanddrawnCircle:    "handdrawn_circle",
	KindHanddrawnRectangle: "handdrawn_rectangle",
	KindHanddrawnLine:      "handdrawn_line",
	KindGroup:              "group",
	KindDrawing:            "drawing",
}

// String returns the variant tag used in persisted documents.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind converts a variant tag back into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidKind, "unknown shape kind: %q", s)
}

// IsComposite reports whether k is a group or a drawing.
func (k Kind) IsComposite() bool {
	return k == KindGroup || k == KindDrawing
}

// IsHanddrawn reports whether k is one of the hand-drawn leaf variants.
func (k Kind) IsHanddrawn() bool {
	return k == KindHanddrawnCircle || k == KindHanddrawnRectangle || k == KindHanddrawnLine
}
