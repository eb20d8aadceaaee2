package shape

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/matzehuels/drawshop/pkg/errors"
)

// Black is the default stroke color.
var Black = color.RGBA{A: 255}

// ParseColor accepts "#rrggbb", "#rgb" or an SVG 1.1 color name such as
// "black" or "steelblue". The result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidArgument, err, "invalid color %q", s)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.New(errors.ErrCodeInvalidArgument, "invalid color %q", s)
}

// FormatColor renders c as "#rrggbb". Alpha is dropped.
func FormatColor(c color.RGBA) string {
	c.A = 255
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
