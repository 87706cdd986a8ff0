package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/flochat/internal/ui"
	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard/tui"
)

var presetsJSON bool

func init() {
	rootCmd.AddCommand(presetsCmd)
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "Print the presets as JSON")
}

// presetsCmd lists the colour presets
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the colour presets",
	Long: `List every colour preset with its gradient.

Use a preset ID with 'generate --color <id>', or 'custom' together with
--primary and --secondary.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if presetsJSON {
			data, err := json.MarshalIndent(widget.ColorPresets, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTable(
			[]string{"ID", "Label", "Gradient", "From", "To"},
			presetRows(),
		))
		return nil
	},
}

func presetRows() [][]string {
	rows := make([][]string, 0, len(widget.ColorPresets))
	for _, p := range widget.ColorPresets {
		rows = append(rows, []string{p.ID, p.Label, tui.GradientSwatch(p.From, p.To, 8), p.From, p.To})
	}
	return rows
}
