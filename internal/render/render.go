// Package render paints a grid of tiled images onto a raster surface.
package render

import (
	"fmt"
	"image/color"

	"github.com/kozaktomas/card-grid/internal/fit"
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/source"
)

// Cell border style.
const (
	BorderWidth = 1.0
)

// BorderColor is the neutral outline drawn around every cell (#dddddd).
var BorderColor = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}

// DefaultBackground is used when Params.Background is nil.
var DefaultBackground = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Params is everything one render pass needs.
type Params struct {
	Paper      layout.PaperSpec
	Grid       layout.GridSpec
	Mode       fit.Mode
	Image      *source.Image
	Background color.Color
}

// ProgressFunc is called after each cell is painted.
type ProgressFunc func(done, total int)

// Option configures a Renderer.
type Option func(*Renderer)

// WithProgress reports per-cell progress.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Renderer) {
		r.progress = fn
	}
}

// Renderer paints grids. It holds no state between passes.
type Renderer struct {
	progress ProgressFunc
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render paints the grid described by p onto s and returns s.
//
// The layout is computed before s is touched, so a layout error leaves the
// surface as it was. An error after painting started leaves s undefined.
func (r *Renderer) Render(s Surface, p Params) (Surface, error) {
	if p.Image == nil || p.Image.Width <= 0 || p.Image.Height <= 0 {
		return nil, fmt.Errorf("%w: source image is missing or empty", layout.ErrInvalidParameter)
	}
	if !p.Mode.Valid() {
		return nil, fmt.Errorf("%w: unknown fit mode %s", layout.ErrInvalidParameter, p.Mode)
	}

	grid, err := layout.ComputeGrid(p.Paper, p.Grid)
	if err != nil {
		return nil, err
	}

	bg := p.Background
	if bg == nil {
		bg = DefaultBackground
	}

	width, height := grid.SurfaceSize()
	if err := s.Reset(width, height, bg); err != nil {
		return nil, fmt.Errorf("failed to reset surface: %w", err)
	}

	imageAR := p.Image.AspectRatio()
	total := len(grid.Cells)
	for i, cell := range grid.Cells {
		if err := s.FillRect(cell, bg); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if err := paintImage(s, p.Image, fit.Resolve(imageAR, cell, p.Mode)); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if err := s.StrokeRect(cell, BorderColor, BorderWidth); err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		if r.progress != nil {
			r.progress(i+1, total)
		}
	}

	return s, nil
}

// paintImage draws img at the placement. A clip is in effect only for this
// one draw and is lifted before returning, even on error.
func paintImage(s Surface, img *source.Image, p fit.Placement) error {
	if p.Clip == nil {
		return s.DrawImage(img, p.Draw)
	}
	s.PushClip(*p.Clip)
	defer s.PopClip()
	return s.DrawImage(img, p.Draw)
}
