package widget

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Summary returns a one-line summary of the configuration
func (c Config) Summary() string {
	noun := "links"
	if len(c.SocialLinks) == 1 {
		noun = "link"
	}
	return fmt.Sprintf("%d %s • %s • %s • %s", len(c.SocialLinks), noun, c.Size, c.Position, ColorLabel(c.Color))
}

// FormatLinks returns the link list, one per line
func (c Config) FormatLinks() string {
	var b strings.Builder

	b.WriteString("=== Social Links ===\n")
	if len(c.SocialLinks) == 0 {
		b.WriteString("(none)\n")
		return b.String()
	}
	for i, l := range c.SocialLinks {
		b.WriteString(fmt.Sprintf("%d. %-10s %-20s %s\n", i+1, PlatformLabel(l.Platform), l.Label, l.URL))
	}

	return b.String()
}

// FormatAppearance returns size, placement and animation settings
func (c Config) FormatAppearance() string {
	var b strings.Builder

	b.WriteString("=== Appearance ===\n")
	b.WriteString(fmt.Sprintf("Size:        %s\n", c.Size))
	b.WriteString(fmt.Sprintf("Position:    %s (%dpx from bottom)\n", c.Position, c.BottomOffset))
	b.WriteString(fmt.Sprintf("Animation:   %s\n", c.AnimationStyle))
	b.WriteString(fmt.Sprintf("Toggle Icon: %s %s\n", ToggleIconGlyph(c.ToggleIcon), c.ToggleIcon))
	b.WriteString(fmt.Sprintf("Labels:      %v\n", c.ShowLabels))

	return b.String()
}

// FormatColors returns the colour theme and, when custom, the palette
func (c Config) FormatColors() string {
	var b strings.Builder

	from, to := c.Gradient()
	b.WriteString("=== Colours ===\n")
	b.WriteString(fmt.Sprintf("Theme:        %s (%s)\n", ColorLabel(c.Color), c.Color))
	b.WriteString(fmt.Sprintf("Gradient:     %s → %s\n", from, to))
	if c.IsCustomColor() {
		b.WriteString(fmt.Sprintf("Hover:        %s\n", c.CustomColors.Hover))
	}
	b.WriteString(fmt.Sprintf("Brand Colors: %v\n", c.BrandColors))

	return b.String()
}

// FormatCompact returns a compact multi-line format suitable for terminal display
func (c Config) FormatCompact() string {
	var b strings.Builder

	from, to := c.Gradient()
	b.WriteString(fmt.Sprintf("Button:  %s, %s +%dpx\n", c.Size, c.Position, c.BottomOffset))
	b.WriteString(fmt.Sprintf("Theme:   %s (%s → %s)\n", ColorLabel(c.Color), from, to))
	b.WriteString(fmt.Sprintf("Motion:  %s, icon %s\n", c.AnimationStyle, c.ToggleIcon))

	platforms := make([]string, len(c.SocialLinks))
	for i, l := range c.SocialLinks {
		platforms[i] = PlatformLabel(l.Platform)
	}
	if len(platforms) == 0 {
		b.WriteString("Links:   (none)\n")
	} else {
		b.WriteString(fmt.Sprintf("Links:   %s\n", strings.Join(platforms, ", ")))
	}
	b.WriteString(fmt.Sprintf("Output:  %s\n", c.CopyType))

	return b.String()
}

// FormatDetailed returns a comprehensive formatted string with all configuration details
func (c Config) FormatDetailed() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("╔════════════════════════════════════════════════════════════════╗\n")
	b.WriteString("║              FLOATING SOCIAL BUTTON CONFIGURATION              ║\n")
	b.WriteString("╚════════════════════════════════════════════════════════════════╝\n")
	b.WriteString("\n")

	b.WriteString(c.FormatAppearance())
	b.WriteString("\n")
	b.WriteString(c.FormatColors())
	b.WriteString("\n")
	b.WriteString(c.FormatLinks())
	if c.PreviewURL != "" {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Preview URL: %s\n", c.PreviewURL))
	}

	return b.String()
}

// FormatDiff lists the top-level fields that differ between old and new
func FormatDiff(old, new Config) (string, error) {
	oldMap, err := fieldMap(old)
	if err != nil {
		return "", err
	}
	newMap, err := fieldMap(new)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("=== Configuration Differences ===\n")

	changed := false
	for _, f := range fields {
		key := string(f)
		if oldMap[key] != newMap[key] {
			b.WriteString(fmt.Sprintf("  %s: %s → %s\n", key, oldMap[key], newMap[key]))
			changed = true
		}
	}

	if !changed {
		b.WriteString("\n(no differences detected)\n")
	}

	return b.String(), nil
}

// fieldMap renders each top-level field as compact JSON keyed by its JSON name.
func fieldMap(c Config) (map[string]string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	raw := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to split configuration fields: %w", err)
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = string(v)
	}
	return out, nil
}

// Decode parses a JSON configuration document. Missing fields keep their
// defaults; the result is validated and the first violation is returned.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), NewParseError("invalid configuration JSON", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return Default(), errs[0]
	}
	if cfg.IsCustomColor() {
		normalized, err := normalizeCustomColors(cfg.CustomColors)
		if err != nil {
			return Default(), err
		}
		cfg.CustomColors = normalized
	}
	return cfg, nil
}
