// Package source loads the single image that gets tiled across the sheet.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// Decode limits: encoded size, and decoded size checked against the
// header before any pixel memory is allocated.
const (
	MaxBytes  = 64 << 20
	MaxPixels = 100_000_000
)

// ErrNotImage is returned when the input is not a decodable image.
var ErrNotImage = errors.New("not a supported image")

// Image is a decoded source image. It is never modified after loading.
type Image struct {
	Pixels image.Image
	Width  int
	Height int
	Format string // decoder name: "png", "jpeg", "webp", ...
}

// AspectRatio returns width divided by height.
func (img *Image) AspectRatio() float64 {
	return float64(img.Width) / float64(img.Height)
}

// New wraps an already decoded image.
func New(pixels image.Image) (*Image, error) {
	if pixels == nil {
		return nil, fmt.Errorf("%w: nil image", layout.ErrInvalidParameter)
	}
	b := pixels.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", layout.ErrInvalidParameter, b.Dx(), b.Dy())
	}
	return &Image{Pixels: pixels, Width: b.Dx(), Height: b.Dy()}, nil
}

// Decode reads and decodes an image, applying its EXIF orientation.
func Decode(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > MaxBytes {
		return nil, fmt.Errorf("%w: image exceeds %d bytes", layout.ErrInvalidParameter, MaxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: image size %dx%d must be positive", layout.ErrInvalidParameter, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: image size %dx%d exceeds %d pixels", layout.ErrInvalidParameter, cfg.Width, cfg.Height, MaxPixels)
	}

	pixels, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s image: %w", format, err)
	}

	img, err := New(pixels)
	if err != nil {
		return nil, err
	}
	img.Format = format
	return img, nil
}

// Open decodes the image stored at path.
func Open(path string) (*Image, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
