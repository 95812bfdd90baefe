package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/kozaktomas/card-grid/internal/layout"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"CARDGRID_PAPER", "CARDGRID_COLUMNS", "CARDGRID_ROWS", "CARDGRID_SPACING_MM",
		"CARDGRID_MARGIN_MM", "CARDGRID_FIT", "CARDGRID_BACKGROUND", "CARDGRID_FORMAT",
		"CARDGRID_PRESETS_FILE", "WEB_HOST", "WEB_PORT", "WEB_MAX_UPLOAD_MB", "WEB_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	want := DefaultsConfig{
		Paper: "a4", Columns: 3, Rows: 4, SpacingMM: 5, MarginMM: 10,
		Fit: "fit", Background: "#ffffff", Format: "png",
	}
	if cfg.Defaults != want {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
	if cfg.Web.Host != "0.0.0.0" || cfg.Web.Port != 8080 || cfg.Web.MaxUploadMB != 32 {
		t.Errorf("unexpected web config %+v", cfg.Web)
	}
	if cfg.Web.MaxUploadBytes() != 32<<20 {
		t.Errorf("MaxUploadBytes = %d", cfg.Web.MaxUploadBytes())
	}
	if len(cfg.Web.AllowedOrigins) != 0 {
		t.Errorf("expected no allowed origins, got %v", cfg.Web.AllowedOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CARDGRID_PAPER", "letter")
	t.Setenv("CARDGRID_COLUMNS", "2")
	t.Setenv("CARDGRID_ROWS", "5")
	t.Setenv("CARDGRID_SPACING_MM", "0")
	t.Setenv("CARDGRID_MARGIN_MM", "7.5")
	t.Setenv("WEB_PORT", "9000")
	t.Setenv("WEB_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")

	cfg := Load()

	grid := cfg.DefaultGrid()
	if grid != (layout.GridSpec{Columns: 2, Rows: 5, SpacingMM: 0, MarginMM: 7.5}) {
		t.Errorf("DefaultGrid = %+v", grid)
	}
	if cfg.Defaults.Paper != "letter" {
		t.Errorf("Paper = %q, want letter", cfg.Defaults.Paper)
	}
	if cfg.Web.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Web.Port)
	}
	if len(cfg.Web.AllowedOrigins) != 2 || cfg.Web.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("AllowedOrigins = %v", cfg.Web.AllowedOrigins)
	}
}

func TestEnvHelpers_InvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_INT", "-3")
	t.Setenv("TEST_FLOAT", "abc")
	t.Setenv("TEST_NEG_FLOAT", "-1")

	if got := envInt("TEST_INT", 4); got != 4 {
		t.Errorf("envInt = %d, want default 4", got)
	}
	if got := envFloat("TEST_FLOAT", 2.5); got != 2.5 {
		t.Errorf("envFloat = %v, want default 2.5", got)
	}
	if got := envFloat("TEST_NEG_FLOAT", 1); got != 1 {
		t.Errorf("envFloat = %v, want default 1", got)
	}
}

func TestEmbeddedPresets(t *testing.T) {
	t.Setenv("CARDGRID_PRESETS_FILE", "")
	cfg := Load()

	if err := cfg.Presets.validate(); err != nil {
		t.Fatalf("embedded presets invalid: %v", err)
	}
	papers := map[string]layout.PaperSpec{
		"a4":     {WidthMM: 210, HeightMM: 297},
		"letter": {WidthMM: 216, HeightMM: 279},
		"legal":  {WidthMM: 216, HeightMM: 356},
		"a5":     {WidthMM: 148, HeightMM: 210},
		"a3":     {WidthMM: 297, HeightMM: 420},
		"custom": {WidthMM: 210, HeightMM: 297},
	}
	for name, want := range papers {
		got, ok := cfg.Presets.Paper(name)
		if !ok {
			t.Errorf("missing paper preset %q", name)
			continue
		}
		if got.Spec() != want {
			t.Errorf("paper %q = %+v, want %+v", name, got.Spec(), want)
		}
	}
	if _, ok := cfg.Presets.Grid("3x4"); !ok {
		t.Error("missing grid preset 3x4")
	}
}

func TestResolvePaper(t *testing.T) {
	t.Setenv("CARDGRID_PAPER", "")
	cfg := Load()

	tests := []struct {
		name          string
		paper         string
		width, height float64
		want          layout.PaperSpec
	}{
		{"default", "", 0, 0, layout.PaperSpec{WidthMM: 210, HeightMM: 297}},
		{"named ignores size", "A5", 100, 100, layout.PaperSpec{WidthMM: 148, HeightMM: 210}},
		{"custom without size is a4", "custom", 0, 0, layout.PaperSpec{WidthMM: 210, HeightMM: 297}},
		{"custom width only", "custom", 100, 0, layout.PaperSpec{WidthMM: 100, HeightMM: 297}},
		{"custom both", "custom", 89, 51, layout.PaperSpec{WidthMM: 89, HeightMM: 51}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cfg.ResolvePaper(tt.paper, tt.width, tt.height)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got.WidthMM-tt.want.WidthMM) > 1e-9 || math.Abs(got.HeightMM-tt.want.HeightMM) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolvePaper_Errors(t *testing.T) {
	cfg := Load()
	if _, err := cfg.ResolvePaper("tabloid", 0, 0); !errors.Is(err, layout.ErrInvalidParameter) {
		t.Errorf("unknown paper: expected ErrInvalidParameter, got %v", err)
	}
	if _, err := cfg.ResolvePaper("custom", -10, 50); !errors.Is(err, layout.ErrInvalidParameter) {
		t.Errorf("negative width: expected ErrInvalidParameter, got %v", err)
	}
}

func TestLoadPresetsFile_Merge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	content := `papers:
  - name: a4
    width_mm: 211
    height_mm: 298
  - name: card
    width_mm: 85
    height_mm: 55
grids:
  - name: 1x8
    columns: 1
    rows: 8
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write presets: %v", err)
	}
	t.Setenv("CARDGRID_PRESETS_FILE", path)

	cfg := Load()

	a4, _ := cfg.Presets.Paper("a4")
	if a4.WidthMM != 211 {
		t.Errorf("a4 not overridden: %+v", a4)
	}
	if cfg.Presets.Papers[0].Name != "a4" {
		t.Errorf("override should keep position, first paper is %q", cfg.Presets.Papers[0].Name)
	}
	if _, ok := cfg.Presets.Paper("card"); !ok {
		t.Error("new paper preset not merged")
	}
	if _, ok := cfg.Presets.Paper("letter"); !ok {
		t.Error("embedded presets lost on merge")
	}
	grid, ok := cfg.Presets.Grid("1x8")
	if !ok || grid.Rows != 8 {
		t.Errorf("grid preset not merged: %+v", grid)
	}
}

func TestLoadPresetsFile_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad yaml":   "papers: [",
		"zero width": "papers:\n  - name: x\n    width_mm: 0\n    height_mm: 10\n",
		"no name":    "grids:\n  - columns: 1\n    rows: 1\n",
		"zero rows":  "grids:\n  - name: g\n    columns: 1\n    rows: 0\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, filepath.Base(name)+".yaml")
			if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
				t.Fatalf("failed to write presets: %v", err)
			}
			if _, err := LoadPresetsFile(path); err == nil {
				t.Error("expected error")
			}
		})
	}
	if _, err := LoadPresetsFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_BadPresetsFileIsIgnored(t *testing.T) {
	t.Setenv("CARDGRID_PRESETS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	cfg := Load()
	if _, ok := cfg.Presets.Paper("a4"); !ok {
		t.Error("embedded presets should survive a bad presets file")
	}
}
