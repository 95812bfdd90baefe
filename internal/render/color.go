package render

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/gogpu/gg"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// ParseColor parses a CSS hex color: #rgb, #rrggbb or #rrggbbaa.
// The leading '#' is optional.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 6, 8:
	default:
		return nil, fmt.Errorf("%w: color %q must be #rgb, #rrggbb or #rrggbbaa", layout.ErrInvalidParameter, s)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return nil, fmt.Errorf("%w: color %q contains non-hex digit %q", layout.ErrInvalidParameter, s, c)
		}
	}
	c := gg.Hex(hex)
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}, nil
}

// channel rounds a [0, 1] component to 8 bits. gg's own conversion truncates.
func channel(v float64) uint8 {
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// FormatColor renders c as #rrggbb, or #rrggbbaa when it is not opaque.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}
