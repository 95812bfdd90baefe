package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/sheet"
)

// LayoutHandler computes sheet geometry without rendering.
type LayoutHandler struct {
	config *config.Config
}

// NewLayoutHandler creates a new layout handler
func NewLayoutHandler(cfg *config.Config) *LayoutHandler {
	return &LayoutHandler{config: cfg}
}

// LayoutRequest is the body of POST /layout. Omitted fields, or an empty
// body, use the configured defaults.
type LayoutRequest struct {
	Paper     string   `json:"paper"`
	WidthMM   float64  `json:"width_mm"`
	HeightMM  float64  `json:"height_mm"`
	Grid      string   `json:"grid"`
	Columns   *int     `json:"columns"`
	Rows      *int     `json:"rows"`
	SpacingMM *float64 `json:"spacing_mm"`
	MarginMM  *float64 `json:"margin_mm"`
}

// Compute returns the cell rectangles for the requested paper and grid.
func (h *LayoutHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req LayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, http.StatusBadRequest, errInvalidRequestBody)
		return
	}

	job, err := sheet.Resolve(h.config, sheet.Request{
		Paper:     req.Paper,
		WidthMM:   req.WidthMM,
		HeightMM:  req.HeightMM,
		Grid:      req.Grid,
		Columns:   req.Columns,
		Rows:      req.Rows,
		SpacingMM: req.SpacingMM,
		MarginMM:  req.MarginMM,
	})
	if err != nil {
		respondFailure(w, r, err)
		return
	}

	report, err := sheet.Describe(job.Paper, job.Grid)
	if err != nil {
		respondFailure(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
