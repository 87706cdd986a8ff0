package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/muurk/flochat/internal/discovery"
	"github.com/muurk/flochat/internal/ui"
)

var scanTimeout int

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 0, "Scan timeout in seconds (default from preferences)")
}

// scanCmd finds preview servers on the local network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find live previews on the local network",
	Long: `Scan for preview servers started with --advertise, using mDNS/DNS-SD.

Every server found is listed with its page and WebSocket addresses, so a
teammate's preview can be opened from another machine.`,
	Example: `  # Scan with the default timeout
  flochat-wizard scan

  # Longer scan for busy networks
  flochat-wizard scan --timeout 15`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	timeout := prefs.ScanDuration()
	if scanTimeout > 0 {
		timeout = time.Duration(scanTimeout) * time.Second
	}

	label := fmt.Sprintf("Scanning for preview servers (%s)...", timeout)
	services, err := ui.RunWithSpinner(cmd.Context(), cmd.ErrOrStderr(), ui.IsTerminal(os.Stderr), label,
		func(ctx context.Context) ([]*discovery.Service, error) {
			return discovery.Scan(ctx, timeout)
		})

	p := ui.NewPrinter(cmd.OutOrStdout())
	if err != nil {
		p.PrintError("Scan failed", err,
			"Check that multicast traffic is allowed on this network",
			"Try a longer --timeout",
		)
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(services) == 0 {
		p.PrintWarning("No preview servers found",
			ui.Param{Key: "Timeout", Value: timeout.String()},
			ui.Param{Key: "Hint", Value: "start one with 'serve --advertise'"},
		)
		return nil
	}

	p.PrintTable([]string{"#", "Instance", "Page", "WebSocket", "Version"}, serviceRows(services))
	return nil
}

func serviceRows(services []*discovery.Service) [][]string {
	rows := make([][]string, 0, len(services))
	for i, s := range services {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			s.Instance,
			s.URL(),
			s.WebSocketURL(),
			s.GetMetadata("version"),
		})
	}
	return rows
}
