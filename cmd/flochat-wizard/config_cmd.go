package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/flochat/internal/config"
	"github.com/muurk/flochat/internal/ui"
)

var configForce bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file without asking")
}

// configCmd groups the preferences file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the preferences file",
	Long: `Manage the wizard's preferences file.

Preferences hold defaults for the preview server, mDNS, scanning, the
clipboard fallback and logging. Command-line flags always win. Widget
configurations are never stored.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a preferences file with the default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		force := configForce
		if _, err := os.Stat(path); err == nil && !force {
			if !ui.Confirm(cmd.InOrStdin(), cmd.ErrOrStderr(), fmt.Sprintf("%s exists. Overwrite with defaults?", path)) {
				return errors.New("aborted, preferences left unchanged")
			}
			force = true
		}

		if _, err := config.CreateDefaultConfig(force); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Preferences written", ui.Param{Key: "Path", Value: path})
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the preferences file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective preferences as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		registry, err := config.LoadFile(path)
		if err != nil {
			return err
		}

		data, err := registry.Marshal()
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s does not exist; showing defaults\n", path)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
