package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/export"
	"github.com/kozaktomas/card-grid/internal/render"
	"github.com/kozaktomas/card-grid/internal/sheet"
	"github.com/kozaktomas/card-grid/internal/source"
)

var renderCmd = &cobra.Command{
	Use:   "render IMAGE",
	Short: "Render a printable sheet from an image",
	Long: `Render tiles IMAGE into every cell of the grid and writes the sheet.

When --format is not given, the format is taken from the --output extension
and falls back to CARDGRID_FORMAT. Without --output the sheet is written to
card-grid.<ext> in the current directory.`,
	Example: `  card-grid render card.png -o sheet.pdf
  card-grid render photo.jpg --paper letter --grid 2x5 --fit fill -o cards.png
  card-grid render logo.png --paper custom --width 100 --height 150 --background "#000"`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	addSheetFlags(renderCmd)
	addStyleFlags(renderCmd)
	renderCmd.Flags().StringP("output", "o", "", "Output file (default card-grid.<ext>)")
	renderCmd.Flags().Int("preview-size", 0, "Also write a PNG preview with this longer side in pixels")
	renderCmd.Flags().Bool("no-progress", false, "Do not show the progress bar")
}

// formatFromOutput fills in req.Format from the output file extension when
// the user did not pick a format.
func formatFromOutput(req *sheet.Request, output string) {
	if req.Format != "" || output == "" {
		return
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if _, err := export.ParseFormat(ext); err == nil {
		req.Format = ext
	}
}

// previewPath derives the preview file name: sheet.pdf -> sheet.preview.png.
func previewPath(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".preview.png"
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	req := sheetRequest(cmd)
	output := mustGetString(cmd, "output")
	formatFromOutput(&req, output)

	job, err := sheet.Resolve(cfg, req)
	if err != nil {
		return err
	}
	if output == "" {
		output = job.Format.Filename()
	}
	previewSize := mustGetInt(cmd, "preview-size")
	if previewSize < 0 {
		return errors.New("--preview-size must not be negative")
	}

	src, err := source.Open(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	printer.Fprintf(out, "Loaded %s: %d x %d px (%s)\n", args[0], src.Width, src.Height, src.Format)

	var opts []render.Option
	if !mustGetBool(cmd, "no-progress") {
		bar := progressbar.NewOptions(job.Grid.Count(),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("Rendering cells"),
			progressbar.OptionShowCount(),
			progressbar.OptionSetItsString("cells"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionFullWidth(),
		)
		opts = append(opts, render.WithProgress(func(done, _ int) {
			_ = bar.Set(done)
		}))
	}

	img, err := sheet.Render(src, job, opts...)
	if err != nil {
		return err
	}
	if err := writeFile(output, func(f *os.File) error {
		return export.Export(f, img, job.Format, job.Paper)
	}); err != nil {
		return err
	}

	b := img.Bounds()
	printer.Fprintf(out, "\nWrote %s: %d x %d px, %d cells, %s fit\n",
		output, b.Dx(), b.Dy(), job.Grid.Count(), job.Mode)
	if job.Format == export.PDF {
		printer.Fprintf(out, "Page: %s\n", export.NewDocumentSpec(job.Paper))
	}

	if previewSize > 0 {
		thumb, err := export.Thumbnail(img, previewSize)
		if err != nil {
			return err
		}
		path := previewPath(output)
		if err := writeFile(path, func(f *os.File) error {
			return export.EncodeImage(f, thumb, export.PNG)
		}); err != nil {
			return err
		}
		printer.Fprintf(out, "Wrote preview %s: %d x %d px\n", path, thumb.Bounds().Dx(), thumb.Bounds().Dy())
	}
	return nil
}

// writeFile creates path, runs write and removes the file again if
// anything fails.
func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
