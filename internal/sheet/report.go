package sheet

import (
	"github.com/kozaktomas/card-grid/internal/layout"
	"github.com/kozaktomas/card-grid/internal/units"
)

// LayoutReport is the computed geometry of a sheet, in pixels at units.DPI.
type LayoutReport struct {
	Paper         layout.PaperSpec           `json:"paper"`
	Grid          layout.GridSpec            `json:"grid"`
	DPI           int                        `json:"dpi"`
	Canvas        layout.Rect                `json:"canvas"`
	SurfaceWidth  int                        `json:"surface_width"`
	SurfaceHeight int                        `json:"surface_height"`
	CellWidthMM   float64                    `json:"cell_width_mm"`
	CellHeightMM  float64                    `json:"cell_height_mm"`
	CellAspect    float64                    `json:"cell_aspect"`
	Cells         []layout.Rect              `json:"cells"`
	Warnings      []layout.ValidationWarning `json:"warnings,omitempty"`
}

// Describe computes the layout for paper and grid without rendering.
func Describe(paper layout.PaperSpec, grid layout.GridSpec) (LayoutReport, error) {
	g, err := layout.ComputeGrid(paper, grid)
	if err != nil {
		return LayoutReport{}, err
	}
	w, h := g.SurfaceSize()
	cell := g.Cells[0]
	return LayoutReport{
		Paper:         paper,
		Grid:          grid,
		DPI:           units.DPI,
		Canvas:        g.Canvas,
		SurfaceWidth:  w,
		SurfaceHeight: h,
		CellWidthMM:   units.PxToMM(cell.W),
		CellHeightMM:  units.PxToMM(cell.H),
		CellAspect:    g.CellAspect(),
		Cells:         g.Cells,
		Warnings:      layout.Validate(g),
	}, nil
}
