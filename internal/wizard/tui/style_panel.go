package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

// offsetStep is the bottom offset change per key press, in pixels
const offsetStep = 4

// styleRow identifies one editable row of the style panel
type styleRow int

const (
	rowSize styleRow = iota
	rowPosition
	rowOffset
	rowAnimation
	rowToggleIcon
	rowColor
	rowBrandColors
	rowShowLabels
	rowPrimary
	rowSecondary
	rowHover
	rowPick
)

// colorPickedMsg reports the end of a pick-from-screen request
type colorPickedMsg struct {
	picked bool
	err    error
}

// StylePanel edits button appearance: size, placement, motion and colours
type StylePanel struct {
	Cursor  int
	Editing bool            // Hex input has focus
	Input   textinput.Model // Hex input for the custom colour rows
	Picking bool            // Pick-from-screen dialog is open
	Err     string
	Keys    styleKeyMap
}

// NewStylePanel creates the style panel
func NewStylePanel() StylePanel {
	input := textinput.New()
	input.Placeholder = "#6366f1"
	input.CharLimit = 7
	input.Width = 10
	input.Prompt = ""

	return StylePanel{
		Input: input,
		Keys:  newStyleKeyMap(),
	}
}

// rows returns the visible rows for cfg. Custom colour rows only appear for
// the custom theme; the pick row only when a picker exists.
func styleRows(cfg widget.Config, pickAvailable bool) []styleRow {
	rows := []styleRow{
		rowSize, rowPosition, rowOffset,
		rowAnimation, rowToggleIcon,
		rowColor, rowBrandColors, rowShowLabels,
	}
	if cfg.IsCustomColor() {
		rows = append(rows, rowPrimary, rowSecondary, rowHover)
	}
	if pickAvailable {
		rows = append(rows, rowPick)
	}
	return rows
}

func (p StylePanel) current(rows []styleRow) styleRow {
	if p.Cursor >= len(rows) {
		return rows[len(rows)-1]
	}
	return rows[p.Cursor]
}

// colorKey maps a custom colour row to its key
func colorKey(r styleRow) (widget.ColorKey, bool) {
	switch r {
	case rowPrimary:
		return widget.ColorPrimary, true
	case rowSecondary:
		return widget.ColorSecondary, true
	case rowHover:
		return widget.ColorHover, true
	}
	return "", false
}

func customColorValue(cfg widget.Config, k widget.ColorKey) string {
	switch k {
	case widget.ColorPrimary:
		return cfg.CustomColors.Primary
	case widget.ColorSecondary:
		return cfg.CustomColors.Secondary
	default:
		return cfg.CustomColors.Hover
	}
}

// Update handles a key press
func (p StylePanel) Update(msg tea.KeyMsg, ctrl *wizard.Controller) (StylePanel, tea.Cmd) {
	if p.Editing {
		return p.updateEditor(msg, ctrl)
	}

	rows := styleRows(ctrl.Config(), ctrl.PickColorAvailable())
	if p.Cursor >= len(rows) {
		p.Cursor = len(rows) - 1
	}

	switch {
	case key.Matches(msg, p.Keys.Up):
		p.Cursor--
		if p.Cursor < 0 {
			p.Cursor = len(rows) - 1
		}
	case key.Matches(msg, p.Keys.Down):
		p.Cursor++
		if p.Cursor >= len(rows) {
			p.Cursor = 0
		}
	case key.Matches(msg, p.Keys.Left):
		p.adjust(ctrl, rows[p.Cursor], -1)
	case key.Matches(msg, p.Keys.Right):
		p.adjust(ctrl, rows[p.Cursor], +1)
	case key.Matches(msg, p.Keys.Select):
		return p.activate(ctrl, rows[p.Cursor])
	}

	// The row set may have shrunk (e.g. theme left custom)
	if n := len(styleRows(ctrl.Config(), ctrl.PickColorAvailable())); p.Cursor >= n {
		p.Cursor = n - 1
	}
	return p, nil
}

// adjust cycles or steps the value of row by delta
func (p *StylePanel) adjust(ctrl *wizard.Controller, row styleRow, delta int) {
	cfg := ctrl.Config()
	var err error

	switch row {
	case rowSize:
		err = ctrl.Update(widget.FieldSize, widget.Cycle(widget.Sizes, cfg.Size, delta))
	case rowPosition:
		err = ctrl.Update(widget.FieldPosition, widget.Cycle(widget.Positions, cfg.Position, delta))
	case rowOffset:
		offset := cfg.BottomOffset + delta*offsetStep
		offset = max(0, min(widget.MaxBottomOffset, offset))
		err = ctrl.Update(widget.FieldBottomOffset, offset)
	case rowAnimation:
		err = ctrl.Update(widget.FieldAnimationStyle, widget.Cycle(widget.AnimationStyles, cfg.AnimationStyle, delta))
	case rowToggleIcon:
		icons := make([]widget.ToggleIcon, 0, len(widget.ToggleIconOptions))
		for _, o := range widget.ToggleIconOptions {
			icons = append(icons, o.Value)
		}
		err = ctrl.Update(widget.FieldToggleIcon, widget.Cycle(icons, cfg.ToggleIcon, delta))
	case rowColor:
		err = ctrl.Update(widget.FieldColor, widget.Cycle(widget.ColorChoices(), cfg.Color, delta))
	case rowBrandColors:
		err = ctrl.Update(widget.FieldBrandColors, !cfg.BrandColors)
	case rowShowLabels:
		err = ctrl.Update(widget.FieldShowLabels, !cfg.ShowLabels)
	default:
		return
	}

	p.setErr(err)
}

// activate handles enter on row
func (p StylePanel) activate(ctrl *wizard.Controller, row styleRow) (StylePanel, tea.Cmd) {
	if k, ok := colorKey(row); ok {
		p.Editing = true
		p.Err = ""
		p.Input.SetValue(customColorValue(ctrl.Config(), k))
		p.Input.CursorEnd()
		return p, p.Input.Focus()
	}

	if row == rowPick {
		if p.Picking {
			return p, nil
		}
		p.Picking = true
		p.Err = ""
		return p, pickColorCmd(ctrl)
	}

	p.adjust(ctrl, row, +1)
	return p, nil
}

func (p StylePanel) updateEditor(msg tea.KeyMsg, ctrl *wizard.Controller) (StylePanel, tea.Cmd) {
	rows := styleRows(ctrl.Config(), ctrl.PickColorAvailable())
	k, _ := colorKey(p.current(rows))

	switch msg.String() {
	case "esc":
		p.Editing = false
		p.Err = ""
		p.Input.Blur()
		return p, nil

	case "enter":
		if err := ctrl.UpdateCustomColor(k, p.Input.Value()); err != nil {
			p.setErr(err)
			return p, nil
		}
		p.Editing = false
		p.Err = ""
		p.Input.Blur()
		return p, nil
	}

	var cmd tea.Cmd
	p.Input, cmd = p.Input.Update(msg)
	return p, cmd
}

// HandlePicked applies the result of a pick-from-screen request
func (p StylePanel) HandlePicked(msg colorPickedMsg) StylePanel {
	p.Picking = false
	if msg.err != nil {
		p.setErr(msg.err)
	}
	return p
}

func (p *StylePanel) setErr(err error) {
	if err == nil {
		p.Err = ""
		return
	}
	p.Err = widget.GetShortErrorMessage(err)
}

// pickColorCmd runs the picker off the UI loop
func pickColorCmd(ctrl *wizard.Controller) tea.Cmd {
	return func() tea.Msg {
		picked, err := ctrl.PickColor(context.Background())
		return colorPickedMsg{picked: picked, err: err}
	}
}

// View renders the panel
func (p StylePanel) View(cfg widget.Config, pickAvailable bool) string {
	rows := styleRows(cfg, pickAvailable)
	cursor := min(p.Cursor, len(rows)-1)

	var lines []string
	for i, row := range rows {
		switch row {
		case rowSize:
			lines = append(lines, SectionStyle.Render("Button"))
		case rowAnimation:
			lines = append(lines, "", SectionStyle.Render("Motion"))
		case rowColor:
			lines = append(lines, "", SectionStyle.Render("Theme"))
		case rowPick:
			lines = append(lines, "")
		}
		lines = append(lines, p.renderRow(cfg, row, i == cursor))
	}

	if p.Err != "" {
		lines = append(lines, "", ErrorStyle.Render("✗ "+p.Err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (p StylePanel) renderRow(cfg widget.Config, row styleRow, selected bool) string {
	switch row {
	case rowSize:
		return RenderField("Size", RenderOptions(widget.Sizes, cfg.Size), selected)
	case rowPosition:
		return RenderField("Position", RenderOptions(widget.Positions, cfg.Position), selected)
	case rowOffset:
		return RenderField("Bottom offset", fmt.Sprintf("◀ %dpx ▶", cfg.BottomOffset), selected)
	case rowAnimation:
		return RenderField("Animation", RenderOptions(widget.AnimationStyles, cfg.AnimationStyle), selected)
	case rowToggleIcon:
		return RenderField("Toggle icon", renderToggleIcon(cfg.ToggleIcon), selected)
	case rowColor:
		from, to := cfg.Gradient()
		value := GradientSwatch(from, to, 6) + " " + widget.ColorLabel(cfg.Color)
		return RenderField("Colour theme", value, selected)
	case rowBrandColors:
		return RenderField("Brand colours", RenderCheckbox(cfg.BrandColors), selected)
	case rowShowLabels:
		return RenderField("Show labels", RenderCheckbox(cfg.ShowLabels), selected)
	case rowPrimary, rowSecondary, rowHover:
		k, _ := colorKey(row)
		label := "  " + strings.ToUpper(string(k[:1])) + string(k[1:])
		if selected && p.Editing {
			return RenderField(label, InlineEditorStyle().Render(p.Input.View()), selected)
		}
		hex := customColorValue(cfg, k)
		return RenderField(label, GradientSwatch(hex, hex, 2)+" "+hex, selected)
	case rowPick:
		if p.Picking {
			return RenderField("Pick colour", SubtitleStyle.Render("waiting for picker..."), selected)
		}
		return RenderField("Pick colour", "◉ from screen", selected)
	}
	return ""
}

func renderToggleIcon(current widget.ToggleIcon) string {
	parts := make([]string, 0, len(widget.ToggleIconOptions))
	for _, o := range widget.ToggleIconOptions {
		if o.Value == current {
			parts = append(parts, SelectedOptionStyle.Render("["+o.Glyph+"]"))
		} else {
			parts = append(parts, OptionStyle.Render(" "+o.Glyph+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...) + " " + SubtitleStyle.Render(toggleIconLabel(current))
}

func toggleIconLabel(icon widget.ToggleIcon) string {
	for _, o := range widget.ToggleIconOptions {
		if o.Value == icon {
			return o.Label
		}
	}
	return string(icon)
}
