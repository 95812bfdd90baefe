// Package layout computes the pixel geometry of a grid of cells laid out on a
// sheet of paper at 300 DPI.
package layout

import (
	"fmt"
	"math"

	"github.com/kozaktomas/card-grid/internal/units"
)

// PaperSpec is a sheet size in millimeters.
type PaperSpec struct {
	WidthMM  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM float64 `json:"height_mm" yaml:"height_mm"`
}

// Landscape reports whether the sheet is wider than it is tall.
func (p PaperSpec) Landscape() bool {
	return p.WidthMM > p.HeightMM
}

// GridSpec describes how the sheet is divided into cells.
type GridSpec struct {
	Columns   int     `json:"columns" yaml:"columns"`
	Rows      int     `json:"rows" yaml:"rows"`
	SpacingMM float64 `json:"spacing_mm" yaml:"spacing_mm"`
	MarginMM  float64 `json:"margin_mm" yaml:"margin_mm"`
}

// Count returns the number of cells in the grid.
func (g GridSpec) Count() int {
	return g.Columns * g.Rows
}

// Rect is an axis-aligned rectangle in pixels (origin top-left).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// Aspect returns width divided by height.
func (r Rect) Aspect() float64 {
	return r.W / r.H
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersect returns the overlap of r and o. The result has zero size when
// the rectangles do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Grid is the computed geometry for one render.
type Grid struct {
	Canvas  Rect   `json:"canvas"`
	Cells   []Rect `json:"cells"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`

	MarginPx  float64 `json:"margin_px"`
	SpacingPx float64 `json:"spacing_px"`
}

// Cell returns the cell at the given row and column.
func (g Grid) Cell(row, col int) Rect {
	return g.Cells[row*g.Columns+col]
}

// CellAspect returns the aspect ratio shared by every cell.
func (g Grid) CellAspect() float64 {
	if len(g.Cells) == 0 {
		return 0
	}
	return g.Cells[0].Aspect()
}

// SurfaceSize returns the whole-pixel raster size for the canvas.
// Fractional pixels are dropped.
func (g Grid) SurfaceSize() (width, height int) {
	return int(g.Canvas.W), int(g.Canvas.H)
}

// Size limits on paper and grid. A0 (841x1189 mm) fits within them.
const (
	MaxPaperSideMM   = 1200
	MaxSurfacePixels = 150_000_000
	MaxGridSide      = 100
)

// CheckPaper rejects non-positive, non-finite or oversized paper sizes.
func CheckPaper(paper PaperSpec) error {
	if !positive(paper.WidthMM) || !positive(paper.HeightMM) {
		return fmt.Errorf("%w: paper size %gx%g mm must be positive", ErrInvalidParameter, paper.WidthMM, paper.HeightMM)
	}
	if paper.WidthMM > MaxPaperSideMM || paper.HeightMM > MaxPaperSideMM {
		return fmt.Errorf("%w: paper size %gx%g mm exceeds %d mm per side", ErrInvalidParameter, paper.WidthMM, paper.HeightMM, MaxPaperSideMM)
	}
	if px := units.MMToPx(paper.WidthMM) * units.MMToPx(paper.HeightMM); px > MaxSurfacePixels {
		return fmt.Errorf("%w: paper size %gx%g mm needs %.0f pixels, limit is %d", ErrInvalidParameter, paper.WidthMM, paper.HeightMM, px, MaxSurfacePixels)
	}
	return nil
}

// CheckGrid rejects malformed or oversized grid parameters.
func CheckGrid(grid GridSpec) error {
	if grid.Columns < 1 || grid.Rows < 1 {
		return fmt.Errorf("%w: grid %dx%d needs at least one column and one row", ErrInvalidParameter, grid.Columns, grid.Rows)
	}
	if grid.Columns > MaxGridSide || grid.Rows > MaxGridSide {
		return fmt.Errorf("%w: grid %dx%d exceeds %d columns or rows", ErrInvalidParameter, grid.Columns, grid.Rows, MaxGridSide)
	}
	if !nonNegative(grid.SpacingMM) {
		return fmt.Errorf("%w: spacing %g mm must not be negative", ErrInvalidParameter, grid.SpacingMM)
	}
	if !nonNegative(grid.MarginMM) {
		return fmt.Errorf("%w: margin %g mm must not be negative", ErrInvalidParameter, grid.MarginMM)
	}
	return nil
}

// ComputeGrid lays out grid.Columns x grid.Rows equal cells on the paper.
// Cells are returned in row-major order: row 0 first, column 0 first within a row.
func ComputeGrid(paper PaperSpec, grid GridSpec) (Grid, error) {
	if err := CheckPaper(paper); err != nil {
		return Grid{}, err
	}
	if err := CheckGrid(grid); err != nil {
		return Grid{}, err
	}

	canvasW := units.MMToPx(paper.WidthMM)
	canvasH := units.MMToPx(paper.HeightMM)
	marginPx := units.MMToPx(grid.MarginMM)
	spacingPx := units.MMToPx(grid.SpacingMM)

	availableW := canvasW - 2*marginPx - float64(grid.Columns-1)*spacingPx
	availableH := canvasH - 2*marginPx - float64(grid.Rows-1)*spacingPx

	cellW := availableW / float64(grid.Columns)
	cellH := availableH / float64(grid.Rows)
	if !positive(cellW) || !positive(cellH) {
		return Grid{}, fmt.Errorf("%w: %gx%g mm paper with %g mm margin and %g mm spacing leaves %.2fx%.2f px per cell for a %dx%d grid",
			ErrLayoutInfeasible, paper.WidthMM, paper.HeightMM, grid.MarginMM, grid.SpacingMM, cellW, cellH, grid.Columns, grid.Rows)
	}

	cells := make([]Rect, 0, grid.Count())
	for row := range grid.Rows {
		for col := range grid.Columns {
			cells = append(cells, Rect{
				X: marginPx + float64(col)*(cellW+spacingPx),
				Y: marginPx + float64(row)*(cellH+spacingPx),
				W: cellW,
				H: cellH,
			})
		}
	}

	return Grid{
		Canvas:    Rect{W: canvasW, H: canvasH},
		Cells:     cells,
		Columns:   grid.Columns,
		Rows:      grid.Rows,
		MarginPx:  marginPx,
		SpacingPx: spacingPx,
	}, nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
