// Flochat-wizard is a visual configuration wizard for the floating social
// button widget.
//
// It lets the user pick the button's size, position, colours, social links,
// animation and toggle icon in a full-screen terminal UI, shows a live
// preview, and produces the embed code to paste into a React project. A
// local browser preview can follow every change over a WebSocket.
//
// Usage:
//
//	flochat-wizard [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'flochat-wizard --help' for available commands.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/muurk/flochat/internal/config"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/version"
)

const appName = "flochat-wizard"

// Global flags
var (
	logLevel string
	logFile  string
)

// prefs holds the loaded preferences; flags override individual values
var prefs = config.DefaultPreferences()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Floating social button configuration wizard",
	Long: `A visual builder for the floating social button widget.

Pick the button's size, position, colour theme, social links, animation and
toggle icon, watch the live preview, and copy the generated React code into
your project.

If no command is specified, the interactive wizard will launch automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadPreferences(cmd)
		return setupLogging(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logging is off by default")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file used while the wizard owns the terminal")

	rootCmd.AddCommand(versionCmd)
}

// loadPreferences reads the preferences file. A broken file is reported
// and the defaults are used so every command keeps working.
func loadPreferences(cmd *cobra.Command) {
	registry, err := config.LoadRegistry()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: ignoring preferences: %v\n", err)
		return
	}
	prefs = registry.Preferences
}

// setupLogging picks the level (flag, then environment, then preferences)
// and the destination. The wizard logs to a file because it owns the
// terminal; every other command logs to stderr.
func setupLogging(cmd *cobra.Command) error {
	level := logLevel
	if level == "" {
		level = os.Getenv(logging.LogLevelEnvVar)
	}
	if level == "" {
		level = prefs.LogLevel
	}
	if level == "" {
		return logging.InitializeFromEnv()
	}

	if !ownsTerminal(cmd) {
		return logging.InitializeTo(level, "stderr")
	}

	path := logFile
	if path == "" {
		var err error
		if path, err = config.GetLogPath(); err != nil {
			return fmt.Errorf("failed to resolve log file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return logging.InitializeTo(level, path)
}

// ownsTerminal reports whether cmd runs the full-screen wizard
func ownsTerminal(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "wizard"
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s (commit: %s, %s)\n", appName, version.Version, version.Commit, version.Platform())
	},
}
