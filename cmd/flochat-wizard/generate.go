package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/flochat/internal/clipboard"
	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/logging"
	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

// generateOptions holds the generate command's flag values
type generateOptions struct {
	from           string
	size           string
	position       string
	bottomOffset   int
	color          string
	primary        string
	secondary      string
	hover          string
	links          []string
	noLinks        bool
	showLabels     bool
	animationStyle string
	toggleIcon     string
	brandColors    bool
	previewURL     string
	copyType       string
	sets           []string
	format         string
	copy           bool
}

var genOpts generateOptions

// Output formats
const (
	formatCode    = "code"
	formatJSON    = "json"
	formatSummary = "summary"
	formatCompact = "compact"
	formatDiff    = "diff"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	f := generateCmd.Flags()
	f.StringVar(&genOpts.from, "from", "", "Start from a JSON configuration file ('-' for stdin)")
	f.StringVar(&genOpts.size, "size", "", "Button size (sm, md, lg, xl)")
	f.StringVar(&genOpts.position, "position", "", "Corner (bottom-right, bottom-left)")
	f.IntVar(&genOpts.bottomOffset, "bottom-offset", 0, "Distance from the bottom edge in pixels (0-1000)")
	f.StringVar(&genOpts.color, "color", "", "Colour preset ID or 'custom' (see 'presets')")
	f.StringVar(&genOpts.primary, "primary", "", "Custom primary colour (#rgb or #rrggbb)")
	f.StringVar(&genOpts.secondary, "secondary", "", "Custom secondary colour")
	f.StringVar(&genOpts.hover, "hover", "", "Custom hover colour")
	f.StringArrayVar(&genOpts.links, "link", nil, "Social link as platform,url[,label] (repeatable, replaces the defaults)")
	f.BoolVar(&genOpts.noLinks, "no-links", false, "Start with no social links")
	f.BoolVar(&genOpts.showLabels, "show-labels", false, "Show link labels")
	f.StringVar(&genOpts.animationStyle, "animation", "", "Link animation (fan, stack, grid)")
	f.StringVar(&genOpts.toggleIcon, "icon", "", "Toggle icon (share, message, zap, sparkles, grid)")
	f.BoolVar(&genOpts.brandColors, "brand-colors", false, "Use each platform's brand colour for its link")
	f.StringVar(&genOpts.previewURL, "preview-url", "", "Site the preview is drawn over")
	f.StringVar(&genOpts.copyType, "type", "", "Output kind (component, page)")
	f.StringArrayVar(&genOpts.sets, "set", nil, "Set any field by name as field=value (repeatable, applied last)")
	f.StringVar(&genOpts.format, "format", formatCode, "Output format (code, json, summary, compact, diff)")
	f.BoolVar(&genOpts.copy, "copy", false, "Also copy the generated code to the clipboard")
}

// generateCmd prints generated code without the TUI
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate embed code from flags",
	Long: `Generate the floating social button code without the interactive wizard.

Every configuration field has a flag; unset flags keep their defaults (or the
values from --from). Custom colours switch the theme to 'custom'.`,
	Example: `  # Default component
  flochat-wizard generate

  # Large grid of two links on the left, as a full page
  flochat-wizard generate --size lg --position bottom-left --animation grid \
    --link github,https://github.com/me,GitHub --link email,mailto:me@example.com \
    --type page

  # Custom gradient, copied to the clipboard
  flochat-wizard generate --primary '#ff6b6b' --secondary '#ee5a24' --copy

  # Inspect a saved configuration
  flochat-wizard generate --from widget.json --format summary

  # Show what a saved configuration changes from the defaults
  flochat-wizard generate --from widget.json --format diff

  # Set fields by their JSON names
  flochat-wizard generate --set bottomOffset=40 --set toggleIcon=sparkles`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if err := checkFormat(genOpts.format); err != nil {
		return err
	}

	base := widget.Default()
	if genOpts.from != "" {
		var err error
		if base, err = readConfig(genOpts.from, cmd.InOrStdin()); err != nil {
			return fmt.Errorf("%w%s", err, hintSuffix(err))
		}
	}

	cfg, err := buildConfig(base, genOpts, cmd.Flags().Changed)
	if err != nil {
		return fmt.Errorf("%s%s", widget.GetShortErrorMessage(err), hintSuffix(err))
	}

	out, err := renderGenerated(cfg, genOpts.format)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)

	if genOpts.copy {
		code := codegen.Generate(cfg)
		if err := clipboard.New(clipboard.WithOSC52(prefs.OSC52Fallback)).WriteAll(code); err != nil {
			return fmt.Errorf("failed to copy code: %w", err)
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Code copied to clipboard")
	}
	return nil
}

func checkFormat(format string) error {
	switch format {
	case formatCode, formatJSON, formatSummary, formatCompact, formatDiff:
		return nil
	}
	return fmt.Errorf("unknown format %q (expected code, json, summary, compact or diff)", format)
}

// hintSuffix returns troubleshooting advice for configuration errors. Other
// errors (unreadable files and the like) carry no hint.
func hintSuffix(err error) string {
	switch {
	case widget.IsValidationError(err), widget.IsUnknownFieldError(err),
		widget.IsTypeMismatchError(err), widget.IsParseError(err):
		return "\n  " + strings.ReplaceAll(widget.GetTroubleshootingHint(err), "\n", "\n  ")
	}
	return ""
}

// readConfig decodes a JSON configuration from path, or from stdin for "-"
func readConfig(path string, stdin io.Reader) (widget.Config, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return widget.Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg, err := widget.Decode(data)
	if err != nil {
		return widget.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// buildConfig applies every changed flag to base through the model's update
// operations, so flag values get the same validation as wizard edits.
func buildConfig(base widget.Config, opts generateOptions, changed func(string) bool) (widget.Config, error) {
	cfg := base

	updates := []struct {
		flag  string
		field widget.Field
		value any
	}{
		{"size", widget.FieldSize, opts.size},
		{"position", widget.FieldPosition, opts.position},
		{"bottom-offset", widget.FieldBottomOffset, opts.bottomOffset},
		{"color", widget.FieldColor, opts.color},
		{"show-labels", widget.FieldShowLabels, opts.showLabels},
		{"animation", widget.FieldAnimationStyle, opts.animationStyle},
		{"icon", widget.FieldToggleIcon, opts.toggleIcon},
		{"brand-colors", widget.FieldBrandColors, opts.brandColors},
		{"preview-url", widget.FieldPreviewURL, previewURL(opts.previewURL)},
		{"type", widget.FieldCopyType, opts.copyType},
	}

	var err error
	for _, u := range updates {
		if !changed(u.flag) {
			continue
		}
		if cfg, err = cfg.Update(u.field, u.value); err != nil {
			return base, err
		}
		logging.Debug("Applied flag", zap.String("flag", u.flag), zap.Any("value", u.value))
	}

	customs := []struct {
		flag  string
		key   widget.ColorKey
		value string
	}{
		{"primary", widget.ColorPrimary, opts.primary},
		{"secondary", widget.ColorSecondary, opts.secondary},
		{"hover", widget.ColorHover, opts.hover},
	}
	anyCustom := false
	for _, c := range customs {
		if !changed(c.flag) {
			continue
		}
		if cfg, err = cfg.UpdateCustomColor(c.key, c.value); err != nil {
			return base, err
		}
		anyCustom = true
	}
	if anyCustom && !changed("color") {
		if cfg, err = cfg.Update(widget.FieldColor, widget.ColorCustom); err != nil {
			return base, err
		}
	}

	if opts.noLinks || len(opts.links) > 0 {
		links := make([]widget.SocialLink, 0, len(opts.links))
		for _, raw := range opts.links {
			link, err := parseLink(raw)
			if err != nil {
				return base, err
			}
			links = append(links, link)
		}
		if cfg, err = cfg.Update(widget.FieldSocialLinks, links); err != nil {
			return base, err
		}
	}

	for _, raw := range opts.sets {
		if cfg, err = applySet(cfg, raw); err != nil {
			return base, err
		}
	}

	return cfg, nil
}

// previewURL normalises a preview URL the way the wizard's URL bar does.
// Blank input clears the URL.
func previewURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return wizard.NormalizeURL(trimmed)
}

// applySet applies one "field=value" assignment. Field names match the JSON
// names, ignoring case and dashes.
func applySet(cfg widget.Config, raw string) (widget.Config, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return cfg, widget.NewValidationError("set", fmt.Sprintf("expected field=value, got %q", raw))
	}

	field, err := widget.ParseField(strings.TrimSpace(name))
	if err != nil {
		return cfg, err
	}
	value = strings.TrimSpace(value)
	if field == widget.FieldPreviewURL {
		value = previewURL(value)
	}

	next, err := cfg.Update(field, value)
	if err != nil {
		return cfg, err
	}
	logging.Debug("Applied assignment", zap.String("field", string(field)), zap.String("value", value))
	return next, nil
}

// parseLink parses "platform,url[,label]". The label may itself contain
// commas. A missing label defaults to the platform's display name.
func parseLink(raw string) (widget.SocialLink, error) {
	parts := strings.SplitN(raw, ",", 3)
	if len(parts) < 2 {
		return widget.SocialLink{}, widget.NewValidationError("link", fmt.Sprintf("expected platform,url[,label], got %q", raw))
	}

	platform := widget.Platform(strings.ToLower(strings.TrimSpace(parts[0])))
	if !platform.Valid() {
		return widget.SocialLink{}, widget.NewValidationError("link", fmt.Sprintf("unknown platform %q", parts[0]))
	}

	link := widget.SocialLink{
		Platform: platform,
		URL:      strings.TrimSpace(parts[1]),
		Label:    widget.PlatformLabel(platform),
	}
	if len(parts) == 3 {
		link.Label = strings.TrimSpace(parts[2])
	}
	return link, nil
}

// renderGenerated formats cfg for output
func renderGenerated(cfg widget.Config, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil
	case formatSummary:
		return cfg.FormatDetailed() + "\n", nil
	case formatCompact:
		return cfg.FormatCompact(), nil
	case formatDiff:
		return widget.FormatDiff(widget.Default(), cfg)
	default:
		return codegen.Generate(cfg), nil
	}
}
