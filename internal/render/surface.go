package render

import (
	"image"
	"image/color"

	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/source"
)

// Surface is a raster canvas owned by a single render pass.
//
// PushClip narrows painting to the intersection of r and any clip already in
// effect until the matching PopClip. Image returns a snapshot of the pixels.
type Surface interface {
	Reset(width, height int, background color.Color) error
	FillRect(r layout.Rect, c color.Color) error
	StrokeRect(r layout.Rect, c color.Color, lineWidth float64) error
	DrawImage(src *source.Image, dst layout.Rect) error
	PushClip(r layout.Rect)
	PopClip()
	Image() image.Image
}
