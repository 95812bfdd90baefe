package layout

import "fmt"

// ValidationWarning describes a geometry problem found in a computed grid.
type ValidationWarning struct {
	CellIndex int    `json:"cell_index"`
	Message   string `json:"message"`
	Severity  string `json:"severity"` // "error" or "warning"
}

const validateEps = 0.01

// Validate checks that every cell lies inside the canvas, that no two cells
// overlap and that cells keep the expected row-major order.
func Validate(g Grid) []ValidationWarning {
	var warnings []ValidationWarning

	for i, c := range g.Cells {
		if c.Empty() {
			warnings = append(warnings, ValidationWarning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell has no area (%.2fx%.2f)", c.W, c.H),
				Severity:  "error",
			})
			continue
		}
		if c.X < g.Canvas.X-validateEps || c.Y < g.Canvas.Y-validateEps {
			warnings = append(warnings, ValidationWarning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell origin (%.2f, %.2f) lies outside the canvas", c.X, c.Y),
				Severity:  "error",
			})
		}
		if c.Right() > g.Canvas.Right()+validateEps {
			warnings = append(warnings, ValidationWarning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell right edge (%.2f) extends past canvas width (%.2f)", c.Right(), g.Canvas.Right()),
				Severity:  "error",
			})
		}
		if c.Bottom() > g.Canvas.Bottom()+validateEps {
			warnings = append(warnings, ValidationWarning{
				CellIndex: i,
				Message:   fmt.Sprintf("cell bottom edge (%.2f) extends past canvas height (%.2f)", c.Bottom(), g.Canvas.Bottom()),
				Severity:  "error",
			})
		}
	}

	for i := range g.Cells {
		for j := i + 1; j < len(g.Cells); j++ {
			overlap := g.Cells[i].Intersect(g.Cells[j])
			if overlap.W > validateEps && overlap.H > validateEps {
				warnings = append(warnings, ValidationWarning{
					CellIndex: j,
					Message:   fmt.Sprintf("cell overlaps cell %d by %.2fx%.2f px", i, overlap.W, overlap.H),
					Severity:  "error",
				})
			}
		}
	}

	if g.Columns > 0 && len(g.Cells) == g.Columns*g.Rows {
		for i := 1; i < len(g.Cells); i++ {
			prev, cur := g.Cells[i-1], g.Cells[i]
			if i%g.Columns == 0 {
				if cur.Y <= prev.Y {
					warnings = append(warnings, ValidationWarning{
						CellIndex: i,
						Message:   "first cell of a row does not start below the previous row",
						Severity:  "warning",
					})
				}
			} else if cur.X <= prev.X {
				warnings = append(warnings, ValidationWarning{
					CellIndex: i,
					Message:   "cell is not to the right of its left neighbour",
					Severity:  "warning",
				})
			}
		}
	}

	return warnings
}
