// Package sheet runs one print job: it resolves loosely typed parameters
// against the configured defaults, renders the grid and exports the result.
package sheet

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/export"
	"github.com/kozaktomas/card-grid/internal/fit"
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/render"
	"github.com/kozaktomas/card-grid/internal/source"
)

// Request carries user-supplied job parameters. Nil and empty fields fall
// back to the configured defaults.
type Request struct {
	Paper      string
	WidthMM    float64
	HeightMM   float64
	Grid       string // grid preset name; Columns and Rows override it
	Columns    *int
	Rows       *int
	SpacingMM  *float64
	MarginMM   *float64
	Fit        string
	Background string
	Format     string
}

// Job is a fully resolved print job.
type Job struct {
	Paper      layout.PaperSpec
	Grid       layout.GridSpec
	Mode       fit.Mode
	Background color.Color
	Format     export.Format
}

// Resolve fills req from cfg's defaults and parses every field.
func Resolve(cfg *config.Config, req Request) (Job, error) {
	paper, err := cfg.ResolvePaper(req.Paper, req.WidthMM, req.HeightMM)
	if err != nil {
		return Job{}, err
	}

	grid := cfg.DefaultGrid()
	if req.Grid != "" {
		preset, ok := cfg.Presets.Grid(req.Grid)
		if !ok {
			return Job{}, fmt.Errorf("%w: unknown grid preset %q", layout.ErrInvalidParameter, req.Grid)
		}
		grid.Columns, grid.Rows = preset.Columns, preset.Rows
	}
	if req.Columns != nil {
		grid.Columns = *req.Columns
	}
	if req.Rows != nil {
		grid.Rows = *req.Rows
	}
	if req.SpacingMM != nil {
		grid.SpacingMM = *req.SpacingMM
	}
	if req.MarginMM != nil {
		grid.MarginMM = *req.MarginMM
	}
	if err := layout.CheckGrid(grid); err != nil {
		return Job{}, err
	}

	mode, err := fit.ParseMode(orDefault(req.Fit, cfg.Defaults.Fit))
	if err != nil {
		return Job{}, err
	}
	bg, err := render.ParseColor(orDefault(req.Background, cfg.Defaults.Background))
	if err != nil {
		return Job{}, err
	}
	format, err := export.ParseFormat(orDefault(req.Format, cfg.Defaults.Format))
	if err != nil {
		return Job{}, err
	}

	return Job{Paper: paper, Grid: grid, Mode: mode, Background: bg, Format: format}, nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Result summarizes a finished job.
type Result struct {
	Width   int
	Height  int
	Cells   int
	Format  export.Format
	Written int64
	Page    *export.DocumentSpec // set for PDF output
}

// Print renders src according to job and writes it to w in job.Format.
func Print(w io.Writer, src *source.Image, job Job, opts ...render.Option) (Result, error) {
	img, err := Render(src, job, opts...)
	if err != nil {
		return Result{}, err
	}
	cw := &countingWriter{w: w}
	if err := export.Export(cw, img, job.Format, job.Paper); err != nil {
		return Result{}, err
	}
	b := img.Bounds()
	res := Result{Width: b.Dx(), Height: b.Dy(), Cells: job.Grid.Count(), Format: job.Format, Written: cw.n}
	if job.Format == export.PDF {
		page := export.NewDocumentSpec(job.Paper)
		res.Page = &page
	}
	return res, nil
}

// Preview renders src and writes a PNG no larger than maxSide pixels on
// its longer side. job.Format is ignored.
func Preview(w io.Writer, src *source.Image, job Job, maxSide int) (Result, error) {
	img, err := Render(src, job)
	if err != nil {
		return Result{}, err
	}
	thumb, err := export.Thumbnail(img, maxSide)
	if err != nil {
		return Result{}, err
	}
	cw := &countingWriter{w: w}
	if err := png.Encode(cw, thumb); err != nil {
		return Result{}, fmt.Errorf("failed to encode preview: %w", err)
	}
	b := thumb.Bounds()
	return Result{Width: b.Dx(), Height: b.Dy(), Cells: job.Grid.Count(), Format: export.PNG, Written: cw.n}, nil
}

// Render paints job onto a fresh surface and returns the sheet pixels.
func Render(src *source.Image, job Job, opts ...render.Option) (image.Image, error) {
	s := render.NewGGSurface()
	defer s.Close()

	out, err := render.New(opts...).Render(s, render.Params{
		Paper:      job.Paper,
		Grid:       job.Grid,
		Mode:       job.Mode,
		Image:      src,
		Background: job.Background,
	})
	if err != nil {
		return nil, err
	}
	return out.Image(), nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
