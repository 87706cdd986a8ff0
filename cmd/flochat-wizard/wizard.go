package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/flochat/internal/clipboard"
	"github.com/muurk/flochat/internal/colorpicker"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/preview"
	"github.com/muurk/flochat/internal/ui"
	"github.com/muurk/flochat/internal/wizard"
	"github.com/muurk/flochat/internal/wizard/tui"
)

// Preview server flags, shared by wizard and serve
var (
	serveFlag     bool
	previewHost   string
	previewPort   int
	advertiseFlag bool
)

func init() {
	rootCmd.AddCommand(wizardCmd)

	wizardCmd.Flags().BoolVar(&serveFlag, "serve", false, "Start the live browser preview alongside the wizard")
	addPreviewFlags(wizardCmd)
}

// addPreviewFlags registers the preview server flags on cmd
func addPreviewFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&previewHost, "host", "", "Preview server bind address (default from preferences)")
	cmd.Flags().IntVar(&previewPort, "port", -1, "Preview server port, 0 for any free port (default from preferences)")
	cmd.Flags().BoolVar(&advertiseFlag, "advertise", false, "Announce the preview server on the local network (mDNS)")
}

// previewConfig merges the preview flags over the preferences
func previewConfig(cmd *cobra.Command) *preview.Config {
	cfg := &preview.Config{
		Host:      prefs.PreviewHost,
		Port:      prefs.PreviewPort,
		Advertise: prefs.Advertise,
	}
	if previewHost != "" {
		cfg.Host = previewHost
	}
	if previewPort >= 0 {
		cfg.Port = previewPort
	}
	if cmd.Flags().Changed("advertise") {
		cfg.Advertise = advertiseFlag
	}
	return cfg
}

// newController builds a controller wired to the real clipboard and colour dialog
func newController(opts ...wizard.Option) *wizard.Controller {
	base := []wizard.Option{
		wizard.WithClipboard(clipboard.New(clipboard.WithOSC52(prefs.OSC52Fallback))),
		wizard.WithPicker(colorpicker.NewDialog()),
	}
	return wizard.NewController(append(base, opts...)...)
}

// wizardCmd launches the interactive TUI wizard
var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Launch the interactive configuration wizard",
	Long: `Launch the full-screen wizard for building a floating social button.

The wizard provides:
- Style: size, position, bottom offset, animation, toggle icon and colours
- Social Links: add, remove, reorder and edit links
- Code: the generated component or page, ready to copy

With --serve a local web page mirrors every change live, rendered over the
site you are designing for.`,
	Example: `  # Launch the wizard
  flochat-wizard wizard
  # Or simply (wizard is default):
  flochat-wizard

  # Also open a live browser preview on port 8080
  flochat-wizard wizard --serve --port 8080`,
	RunE: runWizard,
}

func runWizard(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdout) || !ui.IsTerminal(os.Stdin) {
		return errors.New("the wizard needs an interactive terminal; use 'flochat-wizard generate' for scripted output")
	}

	ctrl := newController()
	model := tui.NewAppModel(ctrl)

	serve := prefs.AutoServe
	if cmd.Flags().Changed("serve") {
		serve = serveFlag
	}

	if serve {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		srv, err := startPreview(ctx, previewConfig(cmd), ctrl)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logging.Warn("Preview server shutdown incomplete", zap.Error(err))
			}
		}()

		model = model.WithServerURL(srv.URL())
	}

	logging.Info("Wizard started")
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}

// startPreview starts a preview server for ctrl and subscribes it to changes
func startPreview(ctx context.Context, cfg *preview.Config, ctrl *wizard.Controller) (*preview.Server, error) {
	srv, err := preview.New(cfg, ctrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview server: %w", err)
	}
	if err := srv.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start preview server: %w", err)
	}
	ctrl.Subscribe(srv.Broadcast)
	return srv, nil
}
