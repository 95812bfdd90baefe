// Package fit maps a source image onto a grid cell under one of three
// policies: stretch, letterbox fit and crop fill.
package fit

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// Mode selects how an image is placed into a cell.
type Mode int

const (
	// Stretch scales the image to the cell exactly, ignoring aspect ratio.
	Stretch Mode = iota
	// Fit letterboxes the whole image inside the cell.
	Fit
	// Fill covers the whole cell and crops the overflow.
	Fill
)

// Modes lists every fit mode in display order.
var Modes = []Mode{Stretch, Fit, Fill}

// Valid reports whether m is one of Stretch, Fit or Fill.
func (m Mode) Valid() bool {
	return m == Stretch || m == Fit || m == Fill
}

func (m Mode) String() string {
	switch m {
	case Stretch:
		return "stretch"
	case Fit:
		return "fit"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %s", layout.ErrInvalidParameter, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses a fit mode name. "contain" and "cover" are accepted as
// the CSS-style aliases of fit and fill.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stretch":
		return Stretch, nil
	case "fit", "contain":
		return Fit, nil
	case "fill", "cover":
		return Fill, nil
	default:
		return 0, fmt.Errorf("%w: unknown fit mode %q (want stretch, fit or fill)", layout.ErrInvalidParameter, s)
	}
}

// Placement is where the image is drawn for one cell. When Clip is non-nil
// painting must be restricted to it for the duration of the draw.
type Placement struct {
	Draw layout.Rect  `json:"draw"`
	Clip *layout.Rect `json:"clip,omitempty"`
}

// Resolve computes the draw rectangle for an image with aspect ratio imageAR
// placed into cell. An exact aspect tie is treated as "not wider".
//
// Resolve is total: a mode that is not Valid yields the cell itself with
// no clip. Callers that accept modes from outside ParseMode must check
// Valid first; the renderer does.
func Resolve(imageAR float64, cell layout.Rect, mode Mode) Placement {
	cellAR := cell.Aspect()

	switch mode {
	case Stretch:
		return Placement{Draw: cell}

	case Fit:
		if imageAR > cellAR {
			h := cell.W / imageAR
			return Placement{Draw: layout.Rect{X: cell.X, Y: cell.Y + (cell.H-h)/2, W: cell.W, H: h}}
		}
		w := cell.H * imageAR
		return Placement{Draw: layout.Rect{X: cell.X + (cell.W-w)/2, Y: cell.Y, W: w, H: cell.H}}

	case Fill:
		clip := cell
		if imageAR > cellAR {
			w := cell.H * imageAR
			return Placement{Draw: layout.Rect{X: cell.X + (cell.W-w)/2, Y: cell.Y, W: w, H: cell.H}, Clip: &clip}
		}
		h := cell.W / imageAR
		return Placement{Draw: layout.Rect{X: cell.X, Y: cell.Y + (cell.H-h)/2, W: cell.W, H: h}, Clip: &clip}

	default:
		return Placement{Draw: cell}
	}
}

// Visible maps the part of a placement that survives clipping back into
// source pixel coordinates. src is the region of an srcW x srcH image to
// sample and dst is where it lands. ok is false when nothing is visible.
func Visible(p Placement, srcW, srcH int) (src image.Rectangle, dst layout.Rect, ok bool) {
	dst = p.Draw
	if p.Clip != nil {
		dst = p.Draw.Intersect(*p.Clip)
	}
	if dst.Empty() || p.Draw.Empty() || srcW <= 0 || srcH <= 0 {
		return image.Rectangle{}, layout.Rect{}, false
	}

	sx := float64(srcW) / p.Draw.W
	sy := float64(srcH) / p.Draw.H
	x0 := clampInt(math.Round((dst.X-p.Draw.X)*sx), 0, srcW)
	y0 := clampInt(math.Round((dst.Y-p.Draw.Y)*sy), 0, srcH)
	x1 := clampInt(math.Round((dst.Right()-p.Draw.X)*sx), 0, srcW)
	y1 := clampInt(math.Round((dst.Bottom()-p.Draw.Y)*sy), 0, srcH)
	if x1 <= x0 || y1 <= y0 {
		return image.Rectangle{}, layout.Rect{}, false
	}
	return image.Rect(x0, y0, x1, y1), dst, true
}

func clampInt(v float64, lo, hi int) int {
	return min(max(int(v), lo), hi)
}
