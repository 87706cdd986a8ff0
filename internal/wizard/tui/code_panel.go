package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

// installCopiedMsg reports the result of copying the install command
type installCopiedMsg struct {
	err error
}

// CodePanel shows the generated snippet and the integration guide
type CodePanel struct {
	Viewport viewport.Model
	Status   string
	Keys     codeKeyMap
	code     string
}

// NewCodePanel creates the code panel
func NewCodePanel() CodePanel {
	return CodePanel{
		Viewport: viewport.New(PanelWidth, 12),
		Keys:     newCodeKeyMap(),
	}
}

// Sync refreshes the viewport with code and resizes it. The scroll position
// is kept unless the snippet changed.
func (p CodePanel) Sync(code string, width, height int) CodePanel {
	p.Viewport.Width = max(20, width)
	p.Viewport.Height = max(3, height)
	if code != p.code {
		p.code = code
		p.Viewport.SetContent(CodeStyle.Render(code))
	}
	return p
}

// Update handles a key press
func (p CodePanel) Update(msg tea.KeyMsg, ctrl *wizard.Controller) (CodePanel, tea.Cmd) {
	switch {
	case key.Matches(msg, p.Keys.Switch):
		next := widget.CopyPage
		if ctrl.Config().CopyType == widget.CopyPage {
			next = widget.CopyComponent
		}
		if err := ctrl.Update(widget.FieldCopyType, next); err != nil {
			p.Status = widget.GetShortErrorMessage(err)
		}
		return p.Sync(ctrl.Code(), p.Viewport.Width, p.Viewport.Height), nil

	case key.Matches(msg, p.Keys.Install):
		p.Status = ""
		return p, copyInstallCmd(ctrl)
	}

	var cmd tea.Cmd
	p.Viewport, cmd = p.Viewport.Update(msg)
	return p, cmd
}

// HandleInstallCopied records the outcome of an install command copy
func (p CodePanel) HandleInstallCopied(msg installCopiedMsg) CodePanel {
	if msg.err != nil {
		p.Status = "Clipboard unavailable: " + msg.err.Error()
	} else {
		p.Status = "Install command copied"
	}
	return p
}

func copyInstallCmd(ctrl *wizard.Controller) tea.Cmd {
	return func() tea.Msg {
		return installCopiedMsg{err: ctrl.CopyInstallCommand()}
	}
}

// GuideHeight is the number of lines the integration guide occupies
const GuideHeight = 7

// View renders the panel
func (p CodePanel) View(cfg widget.Config) string {
	segment := lipgloss.JoinHorizontal(lipgloss.Top,
		renderSegment("Component", cfg.CopyType == widget.CopyComponent),
		renderSegment("Page", cfg.CopyType == widget.CopyPage),
	)

	code := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Render(p.Viewport.View())

	parts := []string{
		SectionStyle.Render("Embed code") + "  " + segment,
		code,
		renderGuide(),
	}
	if p.Status != "" {
		parts = append(parts, SubtitleStyle.Render(p.Status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSegment(label string, active bool) string {
	if active {
		return ActiveTabStyle.Padding(0, 1).Render(label)
	}
	return InactiveTabStyle.Padding(0, 1).Render(label)
}

func renderGuide() string {
	step := func(n, title, detail string) string {
		return StepNumberStyle.Render(n) + " " + title + "\n   " + SubtitleStyle.Render(detail)
	}
	return strings.Join([]string{
		SectionStyle.Render("Integration guide"),
		step("01", "Install the package", codegen.InstallCommand+"  (i to copy)"),
		step("02", "Paste the snippet", "Drop it into your layout or page (c to copy)"),
		step("03", "Ship it", "The button appears in the corner you picked"),
	}, "\n")
}
