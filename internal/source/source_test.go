package source

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kozaktomas/card-grid/internal/layout"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	img, err := Decode(bytes.NewReader(encodePNG(t, 40, 20)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width != 40 || img.Height != 20 {
		t.Errorf("expected 40x20, got %dx%d", img.Width, img.Height)
	}
	if img.Format != "png" {
		t.Errorf("expected png format, got %q", img.Format)
	}
	if img.AspectRatio() != 2.0 {
		t.Errorf("expected aspect 2.0, got %v", img.AspectRatio())
	}
}

func TestDecode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 16, 32)), nil); err != nil {
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Format != "jpeg" || img.Width != 16 || img.Height != 32 {
		t.Errorf("unexpected image %s %dx%d", img.Format, img.Width, img.Height)
	}
}

func TestDecode_NotAnImage(t *testing.T) {
	_, err := Decode(strings.NewReader("just some text, definitely not pixels"))
	if !errors.Is(err, ErrNotImage) {
		t.Errorf("expected ErrNotImage, got %v", err)
	}
}

// pngHeader returns a PNG holding only a signature, an IHDR declaring
// w x h RGBA pixels and IEND. The header is enough for DecodeConfig.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	chunk := func(typ string, data []byte) {
		_ = binary.Write(&buf, binary.BigEndian, uint32(len(data)))
		crc := crc32.NewIEEE()
		crc.Write([]byte(typ))
		crc.Write(data)
		buf.WriteString(typ)
		buf.Write(data)
		_ = binary.Write(&buf, binary.BigEndian, crc.Sum32())
	}
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // RGBA
	chunk("IHDR", ihdr)
	chunk("IEND", nil)
	return buf.Bytes()
}

func TestDecode_RejectsHugeDimensions(t *testing.T) {
	data := pngHeader(100000, 100000)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("fixture header does not parse: %v", err)
	}
	if cfg.Width != 100000 || cfg.Height != 100000 {
		t.Fatalf("fixture declares %dx%d", cfg.Width, cfg.Height)
	}

	_, err = Decode(bytes.NewReader(data))
	if !errors.Is(err, layout.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter, got %v", err)
	}
	if errors.Is(err, ErrNotImage) {
		t.Errorf("oversized image must not be reported as not an image")
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	if _, err := New(image.NewRGBA(image.Rect(0, 0, 0, 10))); !errors.Is(err, layout.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for empty image, got %v", err)
	}
	if _, err := New(nil); !errors.Is(err, layout.ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for nil image, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	if err := os.WriteFile(path, encodePNG(t, 8, 8), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	img, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img.Width != 8 {
		t.Errorf("expected width 8, got %d", img.Width)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
