package export

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// Thumbnail scales img to fit within maxSide pixels on its longer side,
// keeping the aspect ratio. Images that already fit are copied unscaled.
func Thumbnail(img image.Image, maxSide int) (*image.RGBA, error) {
	if maxSide <= 0 {
		return nil, fmt.Errorf("%w: thumbnail size %d must be positive", layout.ErrInvalidParameter, maxSide)
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: cannot thumbnail an empty image", layout.ErrInvalidParameter)
	}

	newWidth, newHeight := width, height
	if width > maxSide || height > maxSide {
		if width > height {
			newWidth = maxSide
			newHeight = max(1, int(float64(height)*float64(maxSide)/float64(width)+0.5))
		} else {
			newHeight = maxSide
			newWidth = max(1, int(float64(width)*float64(maxSide)/float64(height)+0.5))
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	if newWidth == width && newHeight == height {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst, nil
	}
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst, nil
}
