package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kozaktomas/card-grid/internal/config"
	"github.com/kozaktomas/card-grid/internal/constants"
	"github.com/kozaktomas/card-grid/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Long: `Start the Card Grid HTTP API.
Clients upload an image with the grid parameters and get back the rendered
sheet (PNG, JPEG, WEBP or PDF) or a scaled preview.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (default WEB_PORT or 8080)")
	serveCmd.Flags().String("host", "", "Host to bind to (default WEB_HOST or 0.0.0.0)")
}

// resolveServeHostPort lets flags override the WEB_HOST / WEB_PORT config.
func resolveServeHostPort(cmd *cobra.Command, cfg *config.Config) (string, int) {
	host, port := cfg.Web.Host, cfg.Web.Port
	if cmd.Flags().Changed("host") {
		host = mustGetString(cmd, "host")
	}
	if cmd.Flags().Changed("port") {
		port = mustGetInt(cmd, "port")
	}
	return host, port
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	host, port := resolveServeHostPort(cmd, cfg)

	server := web.NewServer(cfg, host, port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(ctx, constants.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Error during shutdown: %v\n", err)
		}
	}()

	fmt.Printf("Starting Card Grid API on http://%s:%d/api/v1\n", host, port)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Start(); err != nil {
		return fmt.Errorf("starting server: %w", err)
	}
	return nil
}
