package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// Lossy encoder quality, on the 0-100 scale.
const (
	JPEGQuality = 95
	WEBPQuality = 95

	// documentJPEGQuality is used for the page image embedded in a PDF.
	documentJPEGQuality = 100
)

// EncodeImage writes img to w as a PNG, JPEG or WEBP file.
func EncodeImage(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("failed to encode png: %w", err)
		}
	case JPEG:
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
			return fmt.Errorf("failed to encode jpeg: %w", err)
		}
	case WEBP:
		opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, WEBPQuality)
		if err != nil {
			return fmt.Errorf("failed to create webp options: %w", err)
		}
		if err := webp.Encode(w, img, opts); err != nil {
			return fmt.Errorf("failed to encode webp: %w", err)
		}
	default:
		return fmt.Errorf("%w: %s is not an image format", layout.ErrInvalidParameter, format)
	}
	return nil
}

// Export writes the rendered sheet in the requested format. PDF output is
// sized to paper; the image formats ignore it.
func Export(w io.Writer, img image.Image, format Format, paper layout.PaperSpec) error {
	if img == nil || img.Bounds().Empty() {
		return fmt.Errorf("%w: nothing to export", layout.ErrInvalidParameter)
	}
	if format == PDF {
		return WriteDocument(w, img, paper)
	}
	return EncodeImage(w, img, format)
}
