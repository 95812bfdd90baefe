package handlers

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kozaktomas/card-grid/internal/config"
)

// testConfig returns a config with the built-in defaults regardless of the
// environment the tests run in.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	for _, key := range []string{
		"CARDGRID_PAPER", "CARDGRID_COLUMNS", "CARDGRID_ROWS", "CARDGRID_SPACING_MM",
		"CARDGRID_MARGIN_MM", "CARDGRID_FIT", "CARDGRID_BACKGROUND", "CARDGRID_FORMAT",
		"CARDGRID_PRESETS_FILE", "WEB_MAX_UPLOAD_MB",
	} {
		t.Setenv(key, "")
	}
	return config.Load()
}

// pngBytes encodes a solid w x h image.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

// pngHeaderOnly returns a tiny PNG whose header declares w x h pixels but
// which carries no image data.
func pngHeaderOnly(w, h uint32) []byte {
	ihdr := binary.BigEndian.AppendUint32(nil, w)
	ihdr = binary.BigEndian.AppendUint32(ihdr, h)
	ihdr = append(ihdr, 8, 6, 0, 0, 0) // 8-bit RGBA

	buf := []byte("\x89PNG\r\n\x1a\n")
	for _, typ := range []string{"IHDR", "IEND"} {
		var data []byte
		if typ == "IHDR" {
			data = ihdr
		}
		chunk := append([]byte(typ), data...)
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(data)))
		buf = append(buf, chunk...)
		buf = binary.BigEndian.AppendUint32(buf, crc32.ChecksumIEEE(chunk))
	}
	return buf
}

// multipartRequest builds a POST with the given fields and, when image is
// not nil, an "image" file part.
func multipartRequest(t *testing.T, path string, fields map[string]string, image []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatalf("failed to write field: %v", err)
		}
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "card.png")
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		part.Write(image)
	}
	writer.Close()

	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}
