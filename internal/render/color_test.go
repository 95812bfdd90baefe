package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/kozaktomas/card-grid/internal/layout"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#dddddd", color.NRGBA{0xdd, 0xdd, 0xdd, 255}},
		{"000", color.NRGBA{0, 0, 0, 255}},
		{"#f80", color.NRGBA{0xff, 0x88, 0x00, 255}},
		{"#12345680", color.NRGBA{0x12, 0x34, 0x56, 0x80}},
		{"  #AbCdEf ", color.NRGBA{0xab, 0xcd, 0xef, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, in := range []string{"", "#ff", "#gggggg", "white", "#1234567"} {
		if _, err := ParseColor(in); !errors.Is(err, layout.ErrInvalidParameter) {
			t.Errorf("ParseColor(%q): expected ErrInvalidParameter, got %v", in, err)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(color.White); got != "#ffffff" {
		t.Errorf("FormatColor(white) = %q", got)
	}
	if got := FormatColor(color.NRGBA{R: 1, G: 2, B: 3, A: 4}); got != "#01020304" {
		t.Errorf("FormatColor(translucent) = %q", got)
	}
}
