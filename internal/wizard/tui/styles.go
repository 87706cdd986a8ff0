package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flochat/internal/version"
)

// Application branding constants
const (
	AppName    = "FLOCHAT WIZARD"
	AppTagline = "Visual Builder"
	URLPrompt  = "Inspect another site: Enter URL..."
)

// Layout constants
const (
	PanelWidth    = 54 // Width of the left-hand control panel
	MinSideBySide = 96 // Narrower terminals stack the preview below the panel
)

// AppVersion returns the version and commit shown in the help screen
func AppVersion() string {
	return version.Full()
}

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	AccentColor    = lipgloss.Color("#FF8B94") // Pink
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	// Neutral colors
	TextColor       = lipgloss.Color("#FFFFFF") // White
	SubtleColor     = lipgloss.Color("#626262") // Gray
	BorderColor     = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor  = lipgloss.Color("#43BF6D") // Green (same as secondary)
	BackgroundColor = lipgloss.Color("#1A1A1A") // Dark gray
)

// Common styles
var (
	// Section heading inside a panel
	SectionStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Active tab
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// Inactive tab
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	// Selected option inside an inline option list
	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	// Unselected option inside an inline option list
	OptionStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success indicator (copied)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// Export button in the top bar
	ExportButtonStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	// Code listing
	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E2E8F0"))

	// Guide step numbers
	StepNumberStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	// Focused input style
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Blurred input style
	BlurredInputStyle = lipgloss.NewStyle().
				Foreground(SubtleColor)
)

// RenderOptions renders an inline option list with the current value highlighted:
// "sm  [md]  lg  xl"
func RenderOptions[T ~string](options []T, current T) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o == current {
			parts = append(parts, SelectedOptionStyle.Render("["+string(o)+"]"))
		} else {
			parts = append(parts, OptionStyle.Render(" "+string(o)+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderField renders a panel row as a simple line (no box), prefixed with
// "→ " when selected
func RenderField(label string, value string, selected bool) string {
	labelStyle := lipgloss.NewStyle().Width(16).Foreground(SubtleColor)
	valueStyle := lipgloss.NewStyle()

	arrow := "  "
	if selected {
		arrow = "→ "
		labelStyle = labelStyle.Foreground(HighlightColor).Bold(true)
		valueStyle = valueStyle.Bold(true)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		arrow,
		labelStyle.Render(label),
		valueStyle.Render(value),
	)
}

// RenderCheckbox renders a boolean as "[✓] On" / "[ ] Off"
func RenderCheckbox(on bool) string {
	if on {
		return SelectedOptionStyle.Render("[✓] On")
	}
	return OptionStyle.Render("[ ] Off")
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal frame:
// header (top bar), content, and a footer pinned to the bottom.
func RenderApplicationContainer(header string, content string, footerText string, terminalWidth int, terminalHeight int) string {
	footer := BuildFooterContent(footerText)

	// Create header section with bottom border
	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	// Create footer section with top border
	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	styledHeader := headerStyle.Render(header)
	styledFooter := footerStyle.Render(footer)

	// Content gets whatever height is left so the footer stays at the bottom
	contentHeight := terminalHeight - 2 - lipgloss.Height(styledHeader) - lipgloss.Height(styledFooter)
	if contentHeight < 1 {
		contentHeight = 1
	}
	styledContent := lipgloss.NewStyle().
		Width(terminalWidth - 4).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		borderStyle.Render(innerContent),
	)
}

// RenderModal centers modalContent over a dimmed full-screen background.
// Used for the help overlay.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// SafeModalWidth returns the smaller of requestedWidth and what fits the terminal
func SafeModalWidth(requestedWidth, terminalWidth int) int {
	maxWidth := terminalWidth - 4
	if maxWidth < 40 {
		maxWidth = 40
	}
	if requestedWidth < maxWidth {
		return requestedWidth
	}
	return maxWidth
}

// InlineEditorStyle returns styling for inline expanded editors
// Used when a field is being edited in place (hex colours, link fields)
func InlineEditorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.Border{
			Top:    "━",
			Bottom: "━",
			Left:   "┃",
			Right:  "┃",
		}).
		BorderForeground(PrimaryColor).
		Padding(0, 1)
}
