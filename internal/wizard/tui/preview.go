package tui

import (
	"net/url"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/muurk/flochat/internal/widget"
)

const (
	// offsetRowPx is how many CSS pixels of bottom offset one terminal row stands for
	offsetRowPx = 16

	// widgetMargin is the gap between the widget and the side of the page
	widgetMargin = 2

	// gridColumns is the number of link chips per row in the grid arrangement
	gridColumns = 3
)

// platformBadge is a link chip's abbreviation and brand colour
type platformBadge struct {
	Abbr  string
	Color string
}

var platformBadges = map[widget.Platform]platformBadge{
	widget.PlatformInstagram: {"IG", "#E4405F"},
	widget.PlatformTwitter:   {"X", "#1DA1F2"},
	widget.PlatformFacebook:  {"FB", "#1877F2"},
	widget.PlatformLinkedIn:  {"in", "#0A66C2"},
	widget.PlatformYouTube:   {"YT", "#FF0000"},
	widget.PlatformGitHub:    {"GH", "#333333"},
	widget.PlatformWhatsApp:  {"WA", "#25D366"},
	widget.PlatformEmail:     {"@", "#EA4335"},
	widget.PlatformPhone:     {"☎", "#34A853"},
}

var (
	skeletonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#333333"))
	chipTextStyle = lipgloss.NewStyle().Foreground(TextColor).Bold(true)
	fallbackColor = colorful.Color{R: 0.4, G: 0.4, B: 0.4}
)

// RenderPreview draws cfg as it would appear on a page: a browser frame
// with the preview URL and the floating button pinned to a bottom corner,
// its links expanded. The result is exactly width x height cells.
func RenderPreview(cfg widget.Config, width, height int) string {
	width = max(width, 24)
	height = max(height, 8)
	innerW := width - 2
	canvasH := height - 4

	rows := []string{
		fit(renderURLBar(cfg.PreviewURL), innerW),
		skeletonStyle.Render(strings.Repeat("─", innerW)),
	}
	rows = append(rows, renderCanvas(cfg, innerW, canvasH)...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Render(strings.Join(rows, "\n"))
}

func renderURLBar(previewURL string) string {
	dots := lipgloss.NewStyle().Foreground(AccentColor).Render("●") + " " +
		lipgloss.NewStyle().Foreground(WarningColor).Render("●") + " " +
		lipgloss.NewStyle().Foreground(SecondaryColor).Render("●")

	shown := previewURL
	if shown == "" {
		shown = "about:blank"
	}
	return " " + dots + "  " + SubtitleStyle.Render(shown)
}

// renderCanvas returns exactly height rows of width cells
func renderCanvas(cfg widget.Config, width, height int) []string {
	rows := make([]string, height)
	for i := range rows {
		rows[i] = fit(skeletonRow(i, width), width)
	}
	if height > 0 {
		title := "Your website"
		if host := previewHost(cfg.PreviewURL); host != "" {
			title = host
		}
		rows[0] = fit("  "+lipgloss.NewStyle().Foreground(SubtleColor).Bold(true).Render(title), width)
	}

	block := strings.Split(renderWidget(cfg), "\n")
	if len(block) > height {
		// Keep the button; drop links that do not fit
		block = block[len(block)-height:]
	}

	offsetRows := cfg.BottomOffset / offsetRowPx
	offsetRows = min(offsetRows, height-len(block))
	offsetRows = max(offsetRows, 0)

	start := height - offsetRows - len(block)
	left := cfg.Position == widget.PositionBottomLeft
	for i, line := range block {
		rows[start+i] = fit(placeLine(line, width, left), width)
	}
	return rows
}

// skeletonRow draws placeholder page content
func skeletonRow(i, width int) string {
	fractions := []float64{0, 0, 0.6, 0.85, 0.4, 0}
	f := fractions[i%len(fractions)]
	n := int(float64(width-4) * f)
	if n <= 0 {
		return ""
	}
	return "  " + skeletonStyle.Render(strings.Repeat("▆", n))
}

func previewHost(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

func placeLine(line string, width int, left bool) string {
	gap := width - widgetMargin - lipgloss.Width(line)
	if gap < 0 {
		gap = 0
	}
	if left {
		return strings.Repeat(" ", widgetMargin) + line
	}
	return strings.Repeat(" ", gap) + line
}

// fit pads or truncates s to exactly width cells
func fit(s string, width int) string {
	s = lipgloss.NewStyle().MaxWidth(width).Render(s)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// renderWidget draws the expanded link list above the toggle button
func renderWidget(cfg widget.Config) string {
	from, to := gradientColors(cfg)
	button := renderButton(cfg, from, to)

	align := lipgloss.Right
	if cfg.Position == widget.PositionBottomLeft {
		align = lipgloss.Left
	}

	links := renderLinks(cfg, from.BlendLab(to, 0.5), align)
	if links == "" {
		return button
	}
	return lipgloss.JoinVertical(align, links, "", button)
}

func gradientColors(cfg widget.Config) (colorful.Color, colorful.Color) {
	from, to := cfg.Gradient()
	return parseHex(from), parseHex(to)
}

func parseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return fallbackColor
	}
	return c
}

// buttonMetrics returns horizontal padding per side and height in rows
func buttonMetrics(size widget.Size) (padX, rows int) {
	switch size {
	case widget.SizeSmall:
		return 1, 1
	case widget.SizeLarge:
		return 3, 3
	case widget.SizeXL:
		return 4, 3
	default:
		return 2, 1
	}
}

func renderButton(cfg widget.Config, from, to colorful.Color) string {
	padX, rows := buttonMetrics(cfg.Size)
	glyph := widget.ToggleIconGlyph(cfg.ToggleIcon)
	width := lipgloss.Width(glyph) + 2*padX

	lines := make([]string, rows)
	for r := range lines {
		if r == rows/2 {
			lines[r] = gradientCells(glyph, padX, width, from, to)
		} else {
			lines[r] = gradientCells("", 0, width, from, to)
		}
	}
	return strings.Join(lines, "\n")
}

// gradientCells renders width cells shaded from→to, with text starting at
// column at
func gradientCells(text string, at, width int, from, to colorful.Color) string {
	var b strings.Builder
	tw := lipgloss.Width(text)
	for col := 0; col < width; {
		t := float64(col) / float64(max(width-1, 1))
		bg := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		if text != "" && col == at {
			b.WriteString(chipTextStyle.Background(bg).Render(text))
			col += tw
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(bg).Render(" "))
		col++
	}
	return b.String()
}

func renderLinks(cfg widget.Config, accent colorful.Color, align lipgloss.Position) string {
	if len(cfg.SocialLinks) == 0 {
		return ""
	}

	chips := make([]string, len(cfg.SocialLinks))
	for i, link := range cfg.SocialLinks {
		chips[i] = renderChip(cfg, link, accent)
	}

	switch cfg.AnimationStyle {
	case widget.AnimationGrid:
		var rows []string
		for i := 0; i < len(chips); i += gridColumns {
			end := min(i+gridColumns, len(chips))
			row := make([]string, 0, 2*(end-i))
			for j := i; j < end; j++ {
				if j > i {
					row = append(row, " ")
				}
				row = append(row, chips[j])
			}
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
		return lipgloss.JoinVertical(align, rows...)

	case widget.AnimationFan:
		// Alternate chips step inward to suggest an arc
		for i := 1; i < len(chips); i += 2 {
			if align == lipgloss.Left {
				chips[i] = "  " + chips[i]
			} else {
				chips[i] += "  "
			}
		}
	}

	return lipgloss.JoinVertical(align, chips...)
}

func renderChip(cfg widget.Config, link widget.SocialLink, accent colorful.Color) string {
	badge, ok := platformBadges[link.Platform]
	if !ok {
		badge = platformBadge{Abbr: "?", Color: "#666666"}
	}

	bg := lipgloss.Color(accent.Clamped().Hex())
	if cfg.BrandColors {
		bg = lipgloss.Color(badge.Color)
	}
	chip := chipTextStyle.Background(bg).Render(" " + badge.Abbr + " ")

	if cfg.ShowLabels && link.Label != "" {
		chip += " " + lipgloss.NewStyle().Foreground(TextColor).Render(link.Label)
	}
	return chip
}

// GradientSwatch renders width block cells shaded from one hex colour to another
func GradientSwatch(fromHex, toHex string, width int) string {
	from, to := parseHex(fromHex), parseHex(toHex)
	var b strings.Builder
	for i := 0; i < width; i++ {
		t := float64(i) / float64(max(width-1, 1))
		c := lipgloss.Color(from.BlendLab(to, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}
	return b.String()
}
