package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "card-grid",
	Short: "Tile one image across a printable sheet",
	Long: `Card Grid lays a single image out as a grid of identical cells on a sheet
of paper (A4, Letter, custom...) at 300 DPI and exports the sheet as PNG,
JPEG, WEBP or a single-page PDF ready for printing and cutting.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// .env file is optional, don't fail if not found
	_ = godotenv.Load()
}
