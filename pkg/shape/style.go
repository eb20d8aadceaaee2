package shape

import (
	"strings"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// Style selects the variant family a drawing is built from.
type Style int

const (
	// StylePerfect builds geometrically exact shapes.
	StylePerfect Style = iota
	// StyleHanddrawn builds jittered, sketch-like shapes.
	StyleHanddrawn
)

// Styles lists every style in declaration order.
var Styles = []Style{StylePerfect, StyleHanddrawn}

// String returns the short tag used in documents, flags and config files.
func (s Style) String() string {
	switch s {
	case StylePerfect:
		return "perfect"
	case StyleHanddrawn:
		return "handdrawn"
	}
	return "unknown"
}

// DisplayName returns the human readable name of the style.
func (s Style) DisplayName() string {
	switch s {
	case StylePerfect:
		return "Standard Drawing"
	case StyleHanddrawn:
		return "Handdrawn Drawing"
	}
	return "Unknown Drawing"
}

// ParseStyle accepts "perfect" (alias "standard") and "handdrawn" (alias
// "hand-drawn"), case-insensitively.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perfect", "standard":
		return StylePerfect, nil
	case "handdrawn", "hand-drawn":
		return StyleHanddrawn, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidStyle, "invalid style: %q (must be 'perfect' or 'handdrawn')", s)
}
