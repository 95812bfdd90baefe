package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kozaktomas/card-grid/internal/layout"
)

//go:embed presets.yaml
var presetsYAML []byte

// CustomPaper is the paper name whose size comes from explicit width/height.
const CustomPaper = "custom"

type Config struct {
	Defaults DefaultsConfig
	Web      WebConfig
	Presets  PresetsConfig
}

// DefaultsConfig holds the render parameters used when a request or flag
// does not set them.
type DefaultsConfig struct {
	Paper      string  // CARDGRID_PAPER, defaults to a4
	Columns    int     // CARDGRID_COLUMNS, defaults to 3
	Rows       int     // CARDGRID_ROWS, defaults to 4
	SpacingMM  float64 // CARDGRID_SPACING_MM, defaults to 5
	MarginMM   float64 // CARDGRID_MARGIN_MM, defaults to 10
	Fit        string  // CARDGRID_FIT, defaults to fit
	Background string  // CARDGRID_BACKGROUND, defaults to #ffffff
	Format     string  // CARDGRID_FORMAT, defaults to png
}

type WebConfig struct {
	Host           string
	Port           int
	MaxUploadMB    int
	AllowedOrigins []string
}

// MaxUploadBytes returns the request body limit for image uploads.
func (c WebConfig) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

type PresetsConfig struct {
	Papers []PaperPreset `yaml:"papers" json:"papers"`
	Grids  []GridPreset  `yaml:"grids" json:"grids"`
}

type PaperPreset struct {
	Name     string  `yaml:"name" json:"name"`
	WidthMM  float64 `yaml:"width_mm" json:"width_mm"`
	HeightMM float64 `yaml:"height_mm" json:"height_mm"`
}

// Spec returns the preset as a layout paper size.
func (p PaperPreset) Spec() layout.PaperSpec {
	return layout.PaperSpec{WidthMM: p.WidthMM, HeightMM: p.HeightMM}
}

type GridPreset struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Columns     int    `yaml:"columns" json:"columns"`
	Rows        int    `yaml:"rows" json:"rows"`
}

// Paper looks a paper preset up by name. Case, diacritics and dashes are
// ignored.
func (p PresetsConfig) Paper(name string) (PaperPreset, bool) {
	for _, paper := range p.Papers {
		if sameName(paper.Name, name) {
			return paper, true
		}
	}
	return PaperPreset{}, false
}

// Grid looks a grid preset up by name, matched like Paper.
func (p PresetsConfig) Grid(name string) (GridPreset, bool) {
	for _, grid := range p.Grids {
		if sameName(grid.Name, name) {
			return grid, true
		}
	}
	return GridPreset{}, false
}

// Merge returns p with the entries of o added. Entries of o replace
// same-named entries of p in place; new names are appended.
func (p PresetsConfig) Merge(o PresetsConfig) PresetsConfig {
	out := PresetsConfig{
		Papers: append([]PaperPreset(nil), p.Papers...),
		Grids:  append([]GridPreset(nil), p.Grids...),
	}
	for _, paper := range o.Papers {
		if i := indexOf(out.Papers, paper.Name, func(x PaperPreset) string { return x.Name }); i >= 0 {
			out.Papers[i] = paper
		} else {
			out.Papers = append(out.Papers, paper)
		}
	}
	for _, grid := range o.Grids {
		if i := indexOf(out.Grids, grid.Name, func(x GridPreset) string { return x.Name }); i >= 0 {
			out.Grids[i] = grid
		} else {
			out.Grids = append(out.Grids, grid)
		}
	}
	return out
}

func indexOf[T any](items []T, name string, key func(T) string) int {
	for i, item := range items {
		if sameName(key(item), name) {
			return i
		}
	}
	return -1
}

// validate rejects presets that could never produce a layout.
func (p PresetsConfig) validate() error {
	for _, paper := range p.Papers {
		if paper.Name == "" {
			return errors.New("paper preset without a name")
		}
		if err := layout.CheckPaper(paper.Spec()); err != nil {
			return fmt.Errorf("paper preset %q: %w", paper.Name, err)
		}
	}
	for _, grid := range p.Grids {
		if grid.Name == "" {
			return errors.New("grid preset without a name")
		}
		if err := layout.CheckGrid(layout.GridSpec{Columns: grid.Columns, Rows: grid.Rows}); err != nil {
			return fmt.Errorf("grid preset %q: %w", grid.Name, err)
		}
	}
	return nil
}

// LoadPresetsFile reads a presets YAML file in the same shape as the
// embedded one.
func LoadPresetsFile(path string) (PresetsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PresetsConfig{}, fmt.Errorf("failed to read presets file: %w", err)
	}
	var presets PresetsConfig
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return PresetsConfig{}, fmt.Errorf("failed to parse presets file %s: %w", path, err)
	}
	if err := presets.validate(); err != nil {
		return PresetsConfig{}, fmt.Errorf("invalid presets file %s: %w", path, err)
	}
	return presets, nil
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envFloat is envInt for non-negative millimeter values. Zero is allowed.
func envFloat(key string, defaultVal float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
		return f
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := strings.TrimSpace(os.Getenv(key)); s != "" {
		return s
	}
	return defaultVal
}

// envList splits a comma-separated variable, dropping empty entries.
func envList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func Load() *Config {
	var presets PresetsConfig
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}
	if path := os.Getenv("CARDGRID_PRESETS_FILE"); path != "" {
		extra, err := LoadPresetsFile(path)
		if err != nil {
			log.Printf("WARNING: ignoring presets file: %v", err)
		} else {
			presets = presets.Merge(extra)
		}
	}

	return &Config{
		Defaults: DefaultsConfig{
			Paper:      envString("CARDGRID_PAPER", "a4"),
			Columns:    envInt("CARDGRID_COLUMNS", 3),
			Rows:       envInt("CARDGRID_ROWS", 4),
			SpacingMM:  envFloat("CARDGRID_SPACING_MM", 5),
			MarginMM:   envFloat("CARDGRID_MARGIN_MM", 10),
			Fit:        envString("CARDGRID_FIT", "fit"),
			Background: envString("CARDGRID_BACKGROUND", "#ffffff"),
			Format:     envString("CARDGRID_FORMAT", "png"),
		},
		Web: WebConfig{
			Host:           envString("WEB_HOST", "0.0.0.0"),
			Port:           envInt("WEB_PORT", 8080),
			MaxUploadMB:    envInt("WEB_MAX_UPLOAD_MB", 32),
			AllowedOrigins: envList("WEB_ALLOWED_ORIGINS"),
		},
		Presets: presets,
	}
}

// ResolvePaper turns a paper name and optional explicit size into a paper
// spec. An empty name means the configured default. For "custom", non-zero
// widthMM and heightMM override the preset's size; named presets ignore them.
func (c *Config) ResolvePaper(name string, widthMM, heightMM float64) (layout.PaperSpec, error) {
	if name == "" {
		name = c.Defaults.Paper
	}
	preset, ok := c.Presets.Paper(name)
	if !ok {
		return layout.PaperSpec{}, fmt.Errorf("%w: unknown paper %q", layout.ErrInvalidParameter, name)
	}
	paper := preset.Spec()
	if sameName(preset.Name, CustomPaper) {
		if widthMM != 0 {
			paper.WidthMM = widthMM
		}
		if heightMM != 0 {
			paper.HeightMM = heightMM
		}
	}
	if err := layout.CheckPaper(paper); err != nil {
		return layout.PaperSpec{}, err
	}
	return paper, nil
}

// DefaultGrid returns the configured default grid parameters.
func (c *Config) DefaultGrid() layout.GridSpec {
	return layout.GridSpec{
		Columns:   c.Defaults.Columns,
		Rows:      c.Defaults.Rows,
		SpacingMM: c.Defaults.SpacingMM,
		MarginMM:  c.Defaults.MarginMM,
	}
}
