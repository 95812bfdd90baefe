package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-grid/internal/sheet"
)

// mustGetBool gets a bool flag value or panics if the flag doesn't exist.
// This is appropriate for flags defined in init() - errors indicate programming bugs.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetInt gets an int flag value or panics if the flag doesn't exist.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetString gets a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// mustGetFloat64 gets a float64 flag value or panics if the flag doesn't exist.
func mustGetFloat64(cmd *cobra.Command, name string) float64 {
	val, err := cmd.Flags().GetFloat64(name)
	if err != nil {
		panic(fmt.Sprintf("flag error for --%s: %v", name, err))
	}
	return val
}

// addSheetFlags registers the paper and grid flags shared by render and layout.
// Defaults come from the environment, so unset flags are left to config.
func addSheetFlags(cmd *cobra.Command) {
	cmd.Flags().String("paper", "", "Paper preset (a4, letter, legal, a5, a3, custom)")
	cmd.Flags().Float64("width", 0, "Paper width in mm (custom paper only)")
	cmd.Flags().Float64("height", 0, "Paper height in mm (custom paper only)")
	cmd.Flags().String("grid", "", "Grid preset, e.g. 3x4")
	cmd.Flags().Int("columns", 0, "Number of columns")
	cmd.Flags().Int("rows", 0, "Number of rows")
	cmd.Flags().Float64("spacing", 0, "Spacing between cells in mm")
	cmd.Flags().Float64("margin", 0, "Page margin in mm")
}

// addStyleFlags registers the flags that only matter when pixels are painted.
func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().String("fit", "", "How the image fills a cell: stretch, fit (contain) or fill (cover)")
	cmd.Flags().String("background", "", "Background color as #rgb, #rrggbb or #rrggbbaa")
	cmd.Flags().String("format", "", "Output format: png, jpeg, webp or pdf")
}

// sheetRequest collects the flags the user actually set. Flags left alone
// stay unset so the configured defaults apply.
func sheetRequest(cmd *cobra.Command) sheet.Request {
	req := sheet.Request{
		Paper:    mustGetString(cmd, "paper"),
		WidthMM:  mustGetFloat64(cmd, "width"),
		HeightMM: mustGetFloat64(cmd, "height"),
		Grid:     mustGetString(cmd, "grid"),
	}
	if cmd.Flags().Changed("columns") {
		v := mustGetInt(cmd, "columns")
		req.Columns = &v
	}
	if cmd.Flags().Changed("rows") {
		v := mustGetInt(cmd, "rows")
		req.Rows = &v
	}
	if cmd.Flags().Changed("spacing") {
		v := mustGetFloat64(cmd, "spacing")
		req.SpacingMM = &v
	}
	if cmd.Flags().Changed("margin") {
		v := mustGetFloat64(cmd, "margin")
		req.MarginMM = &v
	}
	if cmd.Flags().Lookup("fit") != nil {
		req.Fit = mustGetString(cmd, "fit")
		req.Background = mustGetString(cmd, "background")
		req.Format = mustGetString(cmd, "format")
	}
	return req
}
