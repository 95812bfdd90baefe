package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/export"
	"github.com/kozaktomas/card-grid/internal/fit"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List paper sizes, grid presets and output options",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().Bool("json", false, "Output as JSON")
}

func runPresets(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	out := cmd.OutOrStdout()

	if mustGetBool(cmd, "json") {
		return outputJSON(out, cfg.Presets)
	}

	printer.Fprintf(out, "Papers:\n")
	for _, p := range cfg.Presets.Papers {
		marker := ""
		if p.Name == cfg.Defaults.Paper {
			marker = " (default)"
		}
		printer.Fprintf(out, "  %-10s %6.1f x %6.1f mm%s\n", p.Name, p.WidthMM, p.HeightMM, marker)
	}

	printer.Fprintf(out, "\nGrids:\n")
	for _, g := range cfg.Presets.Grids {
		printer.Fprintf(out, "  %-10s %2d x %-2d %s\n", g.Name, g.Columns, g.Rows, g.Description)
	}

	modes := make([]string, len(fit.Modes))
	for i, m := range fit.Modes {
		modes[i] = m.String()
	}
	formats := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		formats[i] = f.String()
	}
	printer.Fprintf(out, "\nFit modes: %s\n", strings.Join(modes, ", "))
	printer.Fprintf(out, "Formats:   %s\n", strings.Join(formats, ", "))
	return nil
}
