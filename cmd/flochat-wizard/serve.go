package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/flochat/internal/ui"
	"github.com/muurk/flochat/internal/urls"
	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

var serveFrom string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveFrom, "from", "", "Serve a JSON configuration file instead of the defaults")
	addPreviewFlags(serveCmd)
}

// serveCmd runs the browser preview without the TUI
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser preview of a configuration",
	Long: `Start the live browser preview without the interactive wizard.

The page shows the button over the configured preview URL, and the generated
code is available at /api/code. Stop the server with Ctrl+C.`,
	Example: `  # Preview the defaults on http://127.0.0.1:4780/
  flochat-wizard serve

  # Preview a saved configuration on every interface, announced over mDNS
  flochat-wizard serve --from widget.json --host 0.0.0.0 --advertise`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := widget.Default()
	if serveFrom != "" {
		var err error
		if cfg, err = readConfig(serveFrom, cmd.InOrStdin()); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pcfg := previewConfig(cmd)
	srv, err := startPreview(ctx, pcfg, newController(wizard.WithConfig(cfg)))
	if err != nil {
		return err
	}

	p := ui.NewPrinter(cmd.OutOrStdout())
	p.PrintHeader("Preview server", appName+" serve",
		ui.Param{Key: "Address", Value: srv.URL()},
		ui.Param{Key: "Code", Value: srv.URL() + "api/code"},
		ui.Param{Key: "Advertised", Value: strconv.FormatBool(pcfg.Advertise)},
		ui.Param{Key: "Docs", Value: urls.Docs},
	)
	p.Println("  Press Ctrl+C to stop")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop preview server: %w", err)
	}

	p.PrintSuccess("Preview server stopped")
	return nil
}
