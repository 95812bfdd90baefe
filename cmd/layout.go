package cmd

import (
	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/sheet"
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Show the cell geometry of a sheet",
	Long: `Layout computes the grid without rendering anything and prints the
pixel rectangle of every cell at 300 DPI, row by row.`,
	Example: `  card-grid layout --paper a4 --columns 3 --rows 4
  card-grid layout --grid 2x5 --margin 12 --json`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)

	addSheetFlags(layoutCmd)
	layoutCmd.Flags().Bool("json", false, "Output as JSON")
}

func runLayout(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	job, err := sheet.Resolve(cfg, sheetRequest(cmd))
	if err != nil {
		return err
	}
	report, err := sheet.Describe(job.Paper, job.Grid)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if mustGetBool(cmd, "json") {
		return outputJSON(out, report)
	}

	printer.Fprintf(out, "Paper:   %.1f x %.1f mm\n", report.Paper.WidthMM, report.Paper.HeightMM)
	printer.Fprintf(out, "Surface: %d x %d px at %d DPI\n", report.SurfaceWidth, report.SurfaceHeight, report.DPI)
	printer.Fprintf(out, "Grid:    %d x %d, spacing %.1f mm, margin %.1f mm\n",
		report.Grid.Columns, report.Grid.Rows, report.Grid.SpacingMM, report.Grid.MarginMM)
	printer.Fprintf(out, "Cell:    %.2f x %.2f mm (aspect %.3f)\n\n", report.CellWidthMM, report.CellHeightMM, report.CellAspect)

	printer.Fprintf(out, "%-5s %-4s %-4s %10s %10s %10s %10s\n", "CELL", "ROW", "COL", "X", "Y", "WIDTH", "HEIGHT")
	for i, c := range report.Cells {
		row, col := i/report.Grid.Columns, i%report.Grid.Columns
		printer.Fprintf(out, "%-5d %-4d %-4d %10.2f %10.2f %10.2f %10.2f\n", i, row, col, c.X, c.Y, c.W, c.H)
	}

	for _, w := range report.Warnings {
		printer.Fprintf(out, "%s: cell %d: %s\n", w.Severity, w.CellIndex, w.Message)
	}
	return nil
}
