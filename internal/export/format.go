// Package export serializes a rendered sheet as an image file or a PDF page.
package export

import (
	"fmt"
	"strings"

	"github.com/kozaktomas/card-grid/internal/layout"
)

// Format is an output file format.
type Format int

const (
	PNG Format = iota
	JPEG
	WEBP
	PDF
)

// Formats lists every supported format in display order.
var Formats = []Format{PNG, JPEG, WEBP, PDF}

// BaseFilename is the download name without extension.
const BaseFilename = "card-grid"

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case WEBP:
		return "webp"
	case PDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case WEBP:
		return "image/webp"
	case PDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return f.String()
}

// Filename is the default download name, e.g. card-grid.png.
func (f Format) Filename() string {
	return BaseFilename + "." + f.Extension()
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat parses png, jpg, jpeg, webp or pdf (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "webp":
		return WEBP, nil
	case "pdf":
		return PDF, nil
	default:
		return PNG, fmt.Errorf("%w: unknown format %q (want png, jpeg, webp or pdf)", layout.ErrInvalidParameter, s)
	}
}
