package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/flochat/internal/wizard"
)

// Tab represents the active control panel
type Tab int

const (
	TabStyle Tab = iota
	TabSocial
	TabCode
)

var tabNames = []string{"Style", "Social Links", "Code"}

// String returns the tab's display name
func (t Tab) String() string {
	if int(t) < len(tabNames) {
		return tabNames[t]
	}
	return "Unknown"
}

// Messages for async operations
type copiedMsg struct {
	token int
	err   error
}

type copiedExpiredMsg struct {
	token int
}

// AppModel is the top-level model: top bar, tabbed control panels and the
// terminal preview
type AppModel struct {
	Ctrl *wizard.Controller

	// Navigation
	Tab         Tab
	ShowingHelp bool

	// Panels
	Style    StylePanel
	Social   SocialPanel
	Code     CodePanel
	URLInput textinput.Model

	// Address of the live browser preview, when one is running
	ServerURL string
	Status    string

	// UI state
	Width  int
	Height int

	// Help
	Help help.Model
	Keys globalKeyMap
}

// NewAppModel creates the wizard model around ctrl
func NewAppModel(ctrl *wizard.Controller) AppModel {
	urlInput := textinput.New()
	urlInput.Placeholder = URLPrompt
	urlInput.Prompt = "⌕ "
	urlInput.Width = 36
	urlInput.SetValue(ctrl.Config().PreviewURL)

	return AppModel{
		Ctrl:     ctrl,
		Tab:      TabStyle,
		Style:    NewStylePanel(),
		Social:   NewSocialPanel(),
		Code:     NewCodePanel().Sync(ctrl.Code(), PanelWidth-2, 12),
		URLInput: urlInput,
		Help:     help.New(),
		Keys:     newGlobalKeyMap(),
	}
}

// WithServerURL shows the live preview address in the top bar
func (m AppModel) WithServerURL(u string) AppModel {
	m.ServerURL = u
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Editing reports whether a text field currently owns the keyboard
func (m AppModel) Editing() bool {
	return m.URLInput.Focused() || m.Style.Editing || m.Social.Editing
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width - 6

	case tea.KeyMsg:
		var model tea.Model
		model, cmd = m.handleKey(msg)
		m = model.(AppModel)

	case copiedMsg:
		if msg.err != nil {
			m.Status = "Clipboard unavailable: " + msg.err.Error()
			break
		}
		m.Status = ""
		token := msg.token
		cmd = tea.Tick(wizard.CopiedDuration, func(time.Time) tea.Msg {
			return copiedExpiredMsg{token: token}
		})

	case copiedExpiredMsg:
		m.Ctrl.ExpireCopied(msg.token)

	case colorPickedMsg:
		m.Style = m.Style.HandlePicked(msg)

	case installCopiedMsg:
		m.Code = m.Code.HandleInstallCopied(msg)

	default:
		// Cursor blink and other input internals
		switch {
		case m.URLInput.Focused():
			m.URLInput, cmd = m.URLInput.Update(msg)
		case m.Style.Editing:
			m.Style.Input, cmd = m.Style.Input.Update(msg)
		case m.Social.Editing && m.Social.Field == editURL:
			m.Social.URLInput, cmd = m.Social.URLInput.Update(msg)
		case m.Social.Editing && m.Social.Field == editLabel:
			m.Social.LabelInput, cmd = m.Social.LabelInput.Update(msg)
		}
	}

	m.Code = m.syncCode()
	return m, cmd
}

// handleKey routes a key press: help overlay, focused inputs, global keys,
// then the active panel
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.ShowingHelp {
		// Any key closes the help overlay
		m.ShowingHelp = false
		return m, nil
	}

	if m.URLInput.Focused() {
		return m.updateURLInput(msg)
	}

	var cmd tea.Cmd
	if m.Style.Editing {
		m.Style, cmd = m.Style.Update(msg, m.Ctrl)
		return m, cmd
	}
	if m.Social.Editing {
		m.Social, cmd = m.Social.Update(msg, m.Ctrl)
		return m, cmd
	}

	m.Status = ""

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Help):
		m.ShowingHelp = true
		return m, nil
	case key.Matches(msg, m.Keys.NextTab):
		m.Tab = (m.Tab + 1) % Tab(len(tabNames))
		return m, nil
	case key.Matches(msg, m.Keys.PrevTab):
		m.Tab = (m.Tab + Tab(len(tabNames)) - 1) % Tab(len(tabNames))
		return m, nil
	case key.Matches(msg, m.Keys.Style):
		m.Tab = TabStyle
		return m, nil
	case key.Matches(msg, m.Keys.Social):
		m.Tab = TabSocial
		return m, nil
	case key.Matches(msg, m.Keys.Code):
		m.Tab = TabCode
		return m, nil
	case key.Matches(msg, m.Keys.URL):
		m.URLInput.CursorEnd()
		return m, m.URLInput.Focus()
	case key.Matches(msg, m.Keys.Copy):
		return m, copyCmd(m.Ctrl)
	}

	switch m.Tab {
	case TabStyle:
		m.Style, cmd = m.Style.Update(msg, m.Ctrl)
	case TabSocial:
		m.Social, cmd = m.Social.Update(msg, m.Ctrl)
	case TabCode:
		m.Code, cmd = m.Code.Update(msg, m.Ctrl)
	}
	return m, cmd
}

func (m AppModel) updateURLInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.Ctrl.SubmitURL(m.URLInput.Value())
		m.URLInput.SetValue(m.Ctrl.Config().PreviewURL)
		m.URLInput.Blur()
		return m, nil
	case "esc":
		m.URLInput.SetValue(m.Ctrl.Config().PreviewURL)
		m.URLInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.URLInput, cmd = m.URLInput.Update(msg)
	return m, cmd
}

func copyCmd(ctrl *wizard.Controller) tea.Cmd {
	return func() tea.Msg {
		token, err := ctrl.Copy()
		return copiedMsg{token: token, err: err}
	}
}

// layout returns the content area size, the panel width and whether the
// preview sits beside the panel
func (m AppModel) layout() (contentW, contentH, panelW int, sideBySide bool) {
	// Outer border, header line + rule, footer rule + line
	contentW = max(m.Width-4, 20)
	contentH = max(m.Height-6, 6)
	sideBySide = contentW >= MinSideBySide
	panelW = contentW
	if sideBySide {
		panelW = PanelWidth
	}
	return contentW, contentH, panelW, sideBySide
}

func (m AppModel) syncCode() CodePanel {
	_, contentH, panelW, sideBySide := m.layout()
	if !sideBySide {
		contentH /= 2
	}
	// Tabs, heading, viewport border, guide, status
	h := contentH - 2 - 1 - 2 - GuideHeight - 1
	return m.Code.Sync(m.Ctrl.Code(), panelW-2, h)
}

// View renders the application
func (m AppModel) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Initializing..."
	}

	if m.ShowingHelp {
		return RenderModal(m.renderHelpModalContent(), m.Width, m.Height)
	}

	return RenderApplicationContainer(
		m.renderTopBar(),
		m.renderContent(),
		m.Help.View(m.activeHelp()),
		m.Width,
		m.Height,
	)
}

func (m AppModel) renderTopBar() string {
	width := m.Width - 6

	brand := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(AppName) +
		SubtitleStyle.Render(" • "+AppTagline)

	indicator := ExportButtonStyle.Render("⎘ Export (c)")
	if m.Ctrl.Copied() {
		indicator = SuccessStyle.Render("✓ Copied!")
	}
	right := indicator
	if m.ServerURL != "" {
		right = SubtitleStyle.Render("live "+m.ServerURL) + "  " + indicator
	}

	input := m.URLInput.View()
	gap := width - lipgloss.Width(brand) - lipgloss.Width(input) - lipgloss.Width(right)
	if gap < 2 {
		// Too narrow for everything; the URL input gives way
		gap = max(width-lipgloss.Width(brand)-lipgloss.Width(right), 1)
		return brand + strings.Repeat(" ", gap) + right
	}
	leftGap := gap / 2
	return brand + strings.Repeat(" ", leftGap) + input + strings.Repeat(" ", gap-leftGap) + right
}

func (m AppModel) renderTabs() string {
	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.Tab {
			tabs[i] = ActiveTabStyle.Render(name)
		} else {
			tabs[i] = InactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m AppModel) renderContent() string {
	contentW, contentH, panelW, sideBySide := m.layout()
	cfg := m.Ctrl.Config()

	var panel string
	switch m.Tab {
	case TabStyle:
		panel = m.Style.View(cfg, m.Ctrl.PickColorAvailable())
	case TabSocial:
		panel = m.Social.View(cfg)
	case TabCode:
		panel = m.Code.View(cfg)
	}

	top := m.renderTabs()
	if m.Status != "" {
		top += "  " + ErrorStyle.Render(m.Status)
	}
	summary := SubtitleStyle.Render(cfg.Summary())
	left := lipgloss.JoinVertical(lipgloss.Left, top, summary, "", panel)

	if sideBySide {
		left = lipgloss.NewStyle().Width(panelW).MaxHeight(contentH).Render(left)
		preview := RenderPreview(cfg, contentW-panelW-2, contentH)
		return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", preview)
	}

	half := contentH / 2
	left = lipgloss.NewStyle().Width(panelW).Height(half).MaxHeight(half).Render(left)
	return lipgloss.JoinVertical(lipgloss.Left, left, RenderPreview(cfg, contentW, contentH-half))
}

// activeHelp selects the footer bindings for the current input mode
func (m AppModel) activeHelp() help.KeyMap {
	apply := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply"))
	cancel := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	switch {
	case m.URLInput.Focused(), m.Style.Editing:
		return editingHelp{bindings: []key.Binding{apply, cancel}}
	case m.Social.Editing:
		k := m.Social.Keys
		return editingHelp{bindings: []key.Binding{k.Next, k.Prev, k.Left, k.Done}}
	}

	var panel []key.Binding
	switch m.Tab {
	case TabStyle:
		k := m.Style.Keys
		panel = []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select}
	case TabSocial:
		k := m.Social.Keys
		panel = []key.Binding{k.Add, k.Remove, k.Edit, k.MoveUp, k.MoveDown}
	case TabCode:
		k := m.Code.Keys
		panel = []key.Binding{k.Switch, k.Install, k.Up}
	}
	return tabHelp{panel: panel, global: m.Keys}
}

// renderHelpModalContent renders the help overlay
func (m AppModel) renderHelpModalContent() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)
	subtitleStyle := lipgloss.NewStyle().
		Foreground(SecondaryColor).
		Bold(true)

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("FLOCHAT WIZARD HELP"),
		SubtitleStyle.Render(AppVersion()),
		"",
		subtitleStyle.Render("Everywhere:"),
		"  tab / shift+tab   Switch panel (or 1, 2, 3)",
		"  / or u            Edit the preview URL",
		"  c                 Copy the embed code",
		"  q                 Quit",
		"",
		subtitleStyle.Render("Style:"),
		"  ↑/↓               Choose a setting",
		"  ←/→               Change it (offset moves 4px)",
		"  enter             Toggle, or edit a custom colour",
		"",
		subtitleStyle.Render("Social Links:"),
		"  a / d             Add or remove a link",
		"  shift+↑/↓         Reorder",
		"  enter             Edit platform, URL and label",
		"",
		subtitleStyle.Render("Code:"),
		"  ←/→               Component or full page",
		"  i                 Copy the install command",
		"",
		"Press any key to close this help screen",
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Padding(1, 2).
		Width(SafeModalWidth(64, m.Width)).
		Render(content)
}

// Run starts the wizard on the terminal and blocks until the user quits
func Run(m AppModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
