package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

// linkEditField is the focused attribute while a link is being edited
type linkEditField int

const (
	editPlatform linkEditField = iota
	editURL
	editLabel
)

// SocialPanel edits the ordered list of social links
type SocialPanel struct {
	Cursor     int
	Editing    bool
	Field      linkEditField
	URLInput   textinput.Model
	LabelInput textinput.Model
	Err        string
	Keys       socialKeyMap
}

// NewSocialPanel creates the social links panel
func NewSocialPanel() SocialPanel {
	urlInput := textinput.New()
	urlInput.Placeholder = "https://"
	urlInput.Width = 36
	urlInput.Prompt = ""

	labelInput := textinput.New()
	labelInput.Placeholder = "Label"
	labelInput.Width = 36
	labelInput.Prompt = ""

	return SocialPanel{
		URLInput:   urlInput,
		LabelInput: labelInput,
		Keys:       newSocialKeyMap(),
	}
}

// Update handles a key press
func (p SocialPanel) Update(msg tea.KeyMsg, ctrl *wizard.Controller) (SocialPanel, tea.Cmd) {
	if p.Editing {
		return p.updateEditor(msg, ctrl)
	}

	links := ctrl.Config().SocialLinks

	switch {
	case key.Matches(msg, p.Keys.MoveUp):
		if p.Cursor > 0 && p.Cursor < len(links) {
			ctrl.MoveLink(p.Cursor, p.Cursor-1)
			p.Cursor--
		}
	case key.Matches(msg, p.Keys.MoveDown):
		if p.Cursor < len(links)-1 {
			ctrl.MoveLink(p.Cursor, p.Cursor+1)
			p.Cursor++
		}
	case key.Matches(msg, p.Keys.Up):
		if p.Cursor > 0 {
			p.Cursor--
		}
	case key.Matches(msg, p.Keys.Down):
		if p.Cursor < len(links)-1 {
			p.Cursor++
		}
	case key.Matches(msg, p.Keys.Add):
		ctrl.AddLink()
		p.Cursor = len(ctrl.Config().SocialLinks) - 1
		p.Err = ""
	case key.Matches(msg, p.Keys.Remove):
		if len(links) > 0 {
			ctrl.RemoveLink(p.Cursor)
			if p.Cursor >= len(links)-1 && p.Cursor > 0 {
				p.Cursor--
			}
		}
	case key.Matches(msg, p.Keys.Edit):
		if p.Cursor < len(links) {
			return p.startEditing(links[p.Cursor])
		}
	}

	return p, nil
}

func (p SocialPanel) startEditing(link widget.SocialLink) (SocialPanel, tea.Cmd) {
	p.Editing = true
	p.Field = editPlatform
	p.Err = ""
	p.URLInput.SetValue(link.URL)
	p.LabelInput.SetValue(link.Label)
	p.URLInput.Blur()
	p.LabelInput.Blur()
	return p, nil
}

func (p SocialPanel) stopEditing() SocialPanel {
	p.Editing = false
	p.URLInput.Blur()
	p.LabelInput.Blur()
	return p
}

// focus moves input focus to field
func (p SocialPanel) focus(field linkEditField) (SocialPanel, tea.Cmd) {
	p.Field = field
	p.URLInput.Blur()
	p.LabelInput.Blur()
	switch field {
	case editURL:
		p.URLInput.CursorEnd()
		return p, p.URLInput.Focus()
	case editLabel:
		p.LabelInput.CursorEnd()
		return p, p.LabelInput.Focus()
	}
	return p, nil
}

func (p SocialPanel) updateEditor(msg tea.KeyMsg, ctrl *wizard.Controller) (SocialPanel, tea.Cmd) {
	links := ctrl.Config().SocialLinks
	if p.Cursor >= len(links) {
		return p.stopEditing(), nil
	}
	link := links[p.Cursor]

	switch {
	case key.Matches(msg, p.Keys.Done):
		return p.stopEditing(), nil
	case key.Matches(msg, p.Keys.Next):
		return p.focus((p.Field + 1) % 3)
	case key.Matches(msg, p.Keys.Prev):
		return p.focus((p.Field + 2) % 3)
	}

	switch p.Field {
	case editPlatform:
		delta := 0
		switch {
		case key.Matches(msg, p.Keys.Left):
			delta = -1
		case key.Matches(msg, p.Keys.Right):
			delta = +1
		}
		if delta != 0 {
			platforms := make([]widget.Platform, 0, len(widget.PlatformOptions))
			for _, o := range widget.PlatformOptions {
				platforms = append(platforms, o.Value)
			}
			next := widget.Cycle(platforms, link.Platform, delta)
			p.setErr(ctrl.UpdateLink(p.Cursor, widget.LinkPlatform, string(next)))
		}
		return p, nil

	case editURL:
		var cmd tea.Cmd
		p.URLInput, cmd = p.URLInput.Update(msg)
		if v := p.URLInput.Value(); v != link.URL {
			p.setErr(ctrl.UpdateLink(p.Cursor, widget.LinkURL, v))
		}
		return p, cmd

	case editLabel:
		var cmd tea.Cmd
		p.LabelInput, cmd = p.LabelInput.Update(msg)
		if v := p.LabelInput.Value(); v != link.Label {
			p.setErr(ctrl.UpdateLink(p.Cursor, widget.LinkLabel, v))
		}
		return p, cmd
	}

	return p, nil
}

func (p *SocialPanel) setErr(err error) {
	if err == nil {
		p.Err = ""
		return
	}
	p.Err = widget.GetShortErrorMessage(err)
}

// View renders the panel
func (p SocialPanel) View(cfg widget.Config) string {
	links := cfg.SocialLinks
	header := SectionStyle.Render(fmt.Sprintf("Social links (%d)", len(links)))

	if len(links) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			SubtitleStyle.Render("No links yet. Press a to add one."),
		)
	}

	lines := []string{header, ""}
	for i, link := range links {
		selected := i == p.Cursor
		if selected && p.Editing {
			lines = append(lines, p.renderEditor(link))
			continue
		}
		lines = append(lines, renderLinkRow(i, link, selected))
	}

	if p.Err != "" {
		lines = append(lines, "", ErrorStyle.Render("✗ "+p.Err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLinkRow(i int, link widget.SocialLink, selected bool) string {
	label := fmt.Sprintf("%d. %s", i+1, widget.PlatformLabel(link.Platform))
	value := link.Label
	if value == "" {
		value = SubtitleStyle.Render("(no label)")
	}
	value += "  " + SubtitleStyle.Render(link.URL)
	return RenderField(label, value, selected)
}

func (p SocialPanel) renderEditor(link widget.SocialLink) string {
	fieldLabel := func(name string, f linkEditField) string {
		style := BlurredInputStyle
		if p.Field == f {
			style = FocusedInputStyle
		}
		return style.Width(10).Render(name)
	}

	platform := widget.PlatformLabel(link.Platform)
	if p.Field == editPlatform {
		platform = "◀ " + SelectedOptionStyle.Render(platform) + " ▶"
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		fieldLabel("Platform", editPlatform)+platform,
		fieldLabel("URL", editURL)+p.URLInput.View(),
		fieldLabel("Label", editLabel)+p.LabelInput.View(),
	)
	return InlineEditorStyle().Render(body)
}
