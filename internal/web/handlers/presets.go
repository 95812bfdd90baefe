package handlers

import (
	"net/http"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/export"
	"github.com/kozaktomas/card-grid/internal/fit"
)

// PresetsHandler serves the paper and grid presets and the option lists
// a client needs to build a render form.
type PresetsHandler struct {
	config *config.Config
}

// NewPresetsHandler creates a new presets handler
func NewPresetsHandler(cfg *config.Config) *PresetsHandler {
	return &PresetsHandler{
		config: cfg,
	}
}

// PresetsResponse represents the presets response
type PresetsResponse struct {
	Papers   []config.PaperPreset `json:"papers"`
	Grids    []config.GridPreset  `json:"grids"`
	FitModes []fit.Mode           `json:"fit_modes"`
	Formats  []export.Format      `json:"formats"`
	Defaults DefaultsResponse     `json:"defaults"`
}

// DefaultsResponse holds the values used for omitted form fields.
type DefaultsResponse struct {
	Paper      string  `json:"paper"`
	Columns    int     `json:"columns"`
	Rows       int     `json:"rows"`
	SpacingMM  float64 `json:"spacing_mm"`
	MarginMM   float64 `json:"margin_mm"`
	Fit        string  `json:"fit"`
	Background string  `json:"background"`
	Format     string  `json:"format"`
}

// Get returns the presets
func (h *PresetsHandler) Get(w http.ResponseWriter, r *http.Request) {
	d := h.config.Defaults
	respondJSON(w, http.StatusOK, PresetsResponse{
		Papers:   h.config.Presets.Papers,
		Grids:    h.config.Presets.Grids,
		FitModes: fit.Modes,
		Formats:  export.Formats,
		Defaults: DefaultsResponse{
			Paper:      d.Paper,
			Columns:    d.Columns,
			Rows:       d.Rows,
			SpacingMM:  d.SpacingMM,
			MarginMM:   d.MarginMM,
			Fit:        d.Fit,
			Background: d.Background,
			Format:     d.Format,
		},
	})
}
