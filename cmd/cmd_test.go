package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kozaktomas/card-grid/internal/sheet"
)

func TestFormatFromOutput(t *testing.T) {
	tests := []struct {
		format string
		output string
		want   string
	}{
		{"", "sheet.pdf", "pdf"},
		{"", "cards.JPG", "JPG"},
		{"", "sheet.tiff", ""},
		{"", "sheet", ""},
		{"", "", ""},
		{"png", "sheet.pdf", "png"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			req := sheet.Request{Format: tt.format}
			formatFromOutput(&req, tt.output)
			if req.Format != tt.want {
				t.Errorf("format = %q, want %q", req.Format, tt.want)
			}
		})
	}
}

func TestPreviewPath(t *testing.T) {
	tests := map[string]string{
		"sheet.pdf":        "sheet.preview.png",
		"out/cards.png":    "out/cards.preview.png",
		"card-grid":        "card-grid.preview.png",
		"dir.v2/sheet.jpg": "dir.v2/sheet.preview.png",
	}
	for in, want := range tests {
		if got := previewPath(in); got != want {
			t.Errorf("previewPath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLayoutCommand_JSON(t *testing.T) {
	t.Setenv("CARDGRID_PAPER", "")
	t.Setenv("CARDGRID_PRESETS_FILE", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"layout", "--paper", "a4", "--columns", "2", "--rows", "3", "--json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("layout failed: %v", err)
	}

	var report sheet.LayoutReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("output is not a layout report: %v\n%s", err, out.String())
	}
	if len(report.Cells) != 6 || report.Grid.Columns != 2 {
		t.Errorf("unexpected report: %d cells, grid %+v", len(report.Cells), report.Grid)
	}
	if report.SurfaceWidth != 2480 || report.SurfaceHeight != 3507 {
		t.Errorf("unexpected surface %dx%d", report.SurfaceWidth, report.SurfaceHeight)
	}
}
