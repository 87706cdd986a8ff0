package main

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/widget"
)

// changedSet reports the given flag names as changed
func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestParseLink(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    widget.SocialLink
		wantErr bool
	}{
		{
			name: "with label",
			raw:  "github,https://github.com/me,My GitHub",
			want: widget.SocialLink{Platform: widget.PlatformGitHub, URL: "https://github.com/me", Label: "My GitHub"},
		},
		{
			name: "default label",
			raw:  "Email, mailto:me@example.com",
			want: widget.SocialLink{Platform: widget.PlatformEmail, URL: "mailto:me@example.com", Label: "Email"},
		},
		{
			name: "label with commas",
			raw:  "phone,tel:123,Call us, anytime",
			want: widget.SocialLink{Platform: widget.PlatformPhone, URL: "tel:123", Label: "Call us, anytime"},
		},
		{name: "missing url", raw: "github", wantErr: true},
		{name: "unknown platform", raw: "myspace,https://myspace.com", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLink(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, widget.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildConfig(t *testing.T) {
	tests := []struct {
		name    string
		opts    generateOptions
		changed []string
		check   func(t *testing.T, cfg widget.Config)
		wantErr bool
	}{
		{
			name: "no flags keeps defaults",
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.Default(), cfg)
			},
		},
		{
			name:    "enum and scalar fields",
			opts:    generateOptions{size: "xl", position: "bottom-left", bottomOffset: 80, animationStyle: "grid", toggleIcon: "zap", copyType: "page", showLabels: true},
			changed: []string{"size", "position", "bottom-offset", "animation", "icon", "type", "show-labels"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.SizeXL, cfg.Size)
				assert.Equal(t, widget.PositionBottomLeft, cfg.Position)
				assert.Equal(t, 80, cfg.BottomOffset)
				assert.Equal(t, widget.AnimationGrid, cfg.AnimationStyle)
				assert.Equal(t, widget.IconZap, cfg.ToggleIcon)
				assert.Equal(t, widget.CopyPage, cfg.CopyType)
				assert.True(t, cfg.ShowLabels)
			},
		},
		{
			name:    "unchanged flags are ignored",
			opts:    generateOptions{size: "xl"},
			changed: nil,
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.SizeMedium, cfg.Size)
			},
		},
		{
			name:    "custom colour switches theme",
			opts:    generateOptions{primary: "#F00", secondary: "#00ff00"},
			changed: []string{"primary", "secondary"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.ColorCustom, cfg.Color)
				assert.Equal(t, "#ff0000", cfg.CustomColors.Primary)
				assert.Equal(t, "#00ff00", cfg.CustomColors.Secondary)
				assert.Equal(t, "#4338ca", cfg.CustomColors.Hover)
			},
		},
		{
			name:    "explicit colour wins over custom switch",
			opts:    generateOptions{color: widget.ColorPresets[1].ID, primary: "#123456"},
			changed: []string{"color", "primary"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.ColorPresets[1].ID, cfg.Color)
				assert.Equal(t, "#123456", cfg.CustomColors.Primary)
			},
		},
		{
			name:    "links replace defaults",
			opts:    generateOptions{links: []string{"youtube,https://youtube.com/@me", "whatsapp,https://wa.me/1,Chat"}},
			changed: []string{"link"},
			check: func(t *testing.T, cfg widget.Config) {
				require.Len(t, cfg.SocialLinks, 2)
				assert.Equal(t, widget.PlatformYouTube, cfg.SocialLinks[0].Platform)
				assert.Equal(t, "Chat", cfg.SocialLinks[1].Label)
			},
		},
		{
			name:    "no links",
			opts:    generateOptions{noLinks: true},
			changed: []string{"no-links"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Empty(t, cfg.SocialLinks)
			},
		},
		{
			name:    "preview url gets a scheme",
			opts:    generateOptions{previewURL: "  example.com/shop "},
			changed: []string{"preview-url"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, "https://example.com/shop", cfg.PreviewURL)
			},
		},
		{
			name:    "preview url keeps http",
			opts:    generateOptions{previewURL: "HTTP://localhost:3000"},
			changed: []string{"preview-url"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, "HTTP://localhost:3000", cfg.PreviewURL)
			},
		},
		{
			name:    "blank preview url clears it",
			opts:    generateOptions{previewURL: "   "},
			changed: []string{"preview-url"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Empty(t, cfg.PreviewURL)
			},
		},
		{
			name: "set assignments",
			opts: generateOptions{
				size: "sm",
				sets: []string{"size=xl", "bottom-offset=40", "toggleIcon = sparkles", "SHOWLABELS=true", "previewUrl=example.org"},
			},
			changed: []string{"size"},
			check: func(t *testing.T, cfg widget.Config) {
				assert.Equal(t, widget.SizeXL, cfg.Size, "--set applies after named flags")
				assert.Equal(t, 40, cfg.BottomOffset)
				assert.Equal(t, widget.IconSparkles, cfg.ToggleIcon)
				assert.True(t, cfg.ShowLabels)
				assert.Equal(t, "https://example.org", cfg.PreviewURL)
			},
		},
		{name: "set without value", opts: generateOptions{sets: []string{"size"}}, wantErr: true},
		{name: "set unknown field", opts: generateOptions{sets: []string{"shadow=1"}}, wantErr: true},
		{name: "set structured field", opts: generateOptions{sets: []string{"socialLinks=none"}}, wantErr: true},
		{name: "invalid size", opts: generateOptions{size: "huge"}, changed: []string{"size"}, wantErr: true},
		{name: "offset out of range", opts: generateOptions{bottomOffset: 5000}, changed: []string{"bottom-offset"}, wantErr: true},
		{name: "unknown colour", opts: generateOptions{color: "plaid"}, changed: []string{"color"}, wantErr: true},
		{name: "bad hex", opts: generateOptions{hover: "blue"}, changed: []string{"hover"}, wantErr: true},
		{name: "bad link", opts: generateOptions{links: []string{"nope"}}, changed: []string{"link"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := widget.Default()
			cfg, err := buildConfig(base, tt.opts, changedSet(tt.changed...))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, base, cfg, "failed build must return the base config")
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestRenderGenerated(t *testing.T) {
	cfg := widget.Default()

	code, err := renderGenerated(cfg, formatCode)
	require.NoError(t, err)
	assert.Equal(t, codegen.Generate(cfg), code)

	out, err := renderGenerated(cfg, formatJSON)
	require.NoError(t, err)
	decoded, err := widget.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, cfg, decoded)

	summary, err := renderGenerated(cfg, formatSummary)
	require.NoError(t, err)
	assert.Equal(t, cfg.FormatDetailed()+"\n", summary)

	compact, err := renderGenerated(cfg, formatCompact)
	require.NoError(t, err)
	assert.Equal(t, cfg.FormatCompact(), compact)

	diff, err := renderGenerated(cfg, formatDiff)
	require.NoError(t, err)
	assert.Contains(t, diff, "no differences")

	large, err := cfg.Update(widget.FieldSize, widget.SizeLarge)
	require.NoError(t, err)
	diff, err = renderGenerated(large, formatDiff)
	require.NoError(t, err)
	assert.Contains(t, diff, `size: "md" → "lg"`)
}

func TestHintSuffix(t *testing.T) {
	assert.Empty(t, hintSuffix(errors.New("open widget.json: no such file")))

	_, err := applySet(widget.Default(), "shadow=1")
	require.Error(t, err)
	assert.True(t, widget.IsUnknownFieldError(err))
	hint := hintSuffix(err)
	assert.True(t, strings.HasPrefix(hint, "\n  "))
	assert.Contains(t, hint, "bottomOffset")

	_, err = applySet(widget.Default(), "bottomOffset=ten")
	require.Error(t, err)
	assert.True(t, widget.IsTypeMismatchError(err))
	assert.Contains(t, hintSuffix(err), "Numbers must be whole")

	_, err = readConfig("-", strings.NewReader(`{"size":`))
	require.Error(t, err)
	assert.True(t, widget.IsParseError(err))
	assert.Contains(t, hintSuffix(err), "Check the JSON syntax")
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{formatCode, formatJSON, formatSummary, formatCompact, formatDiff} {
		assert.NoError(t, checkFormat(f))
	}
	assert.Error(t, checkFormat("yaml"))
}

func TestReadConfig_Stdin(t *testing.T) {
	cfg, err := readConfig("-", strings.NewReader(`{"size":"lg","socialLinks":[]}`))
	require.NoError(t, err)
	assert.Equal(t, widget.SizeLarge, cfg.Size)
	assert.Empty(t, cfg.SocialLinks)
	assert.Equal(t, widget.PositionBottomRight, cfg.Position, "missing fields keep defaults")

	_, err = readConfig("-", strings.NewReader(`{"size":"huge"}`))
	assert.Error(t, err)

	_, err = readConfig("/nonexistent/widget.json", nil)
	assert.Error(t, err)
}

func TestPresetRows(t *testing.T) {
	rows := presetRows()
	require.Len(t, rows, len(widget.ColorPresets))
	for i, row := range rows {
		assert.Equal(t, widget.ColorPresets[i].ID, row[0])
	}

	// The JSON listing uses the preset field names of the browser page
	data, err := json.Marshal(widget.ColorPresets[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"from":`)
}

func TestOwnsTerminal(t *testing.T) {
	root := &cobra.Command{Use: appName}
	wiz := &cobra.Command{Use: "wizard"}
	gen := &cobra.Command{Use: "generate"}
	root.AddCommand(wiz, gen)

	assert.True(t, ownsTerminal(root))
	assert.True(t, ownsTerminal(wiz))
	assert.False(t, ownsTerminal(gen))
}
