package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/flochat/internal/clipboard"
	"github.com/muurk/flochat/internal/codegen"
	"github.com/muurk/flochat/internal/colorpicker"
	"github.com/muurk/flochat/internal/widget"
	"github.com/muurk/flochat/internal/wizard"
)

func newTestApp(t *testing.T) (AppModel, *clipboard.Memory) {
	t.Helper()
	clip := &clipboard.Memory{}
	ctrl := wizard.NewController(
		wizard.WithClipboard(clip),
		wizard.WithPicker(&colorpicker.Static{Hex: "#FF0000"}),
	)
	updated, _ := NewAppModel(ctrl).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(AppModel), clip
}

// keyMsg builds the KeyMsg bubbletea would deliver for name
func keyMsg(name string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":      tea.KeyEnter,
		"esc":        tea.KeyEsc,
		"tab":        tea.KeyTab,
		"shift+tab":  tea.KeyShiftTab,
		"up":         tea.KeyUp,
		"down":       tea.KeyDown,
		"left":       tea.KeyLeft,
		"right":      tea.KeyRight,
		"shift+up":   tea.KeyShiftUp,
		"shift+down": tea.KeyShiftDown,
		"backspace":  tea.KeyBackspace,
	}
	if kt, ok := special[name]; ok {
		return tea.KeyMsg{Type: kt}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

// press feeds keys in order and returns the model and the last command
func press(t *testing.T, m AppModel, keys ...string) (AppModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(keyMsg(k))
		m = updated.(AppModel)
	}
	return m, cmd
}

// typeText feeds each rune of s as its own key press
func typeText(t *testing.T, m AppModel, s string) AppModel {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, string(r))
	}
	return m
}

// run executes cmd and feeds its message back into the model
func run(t *testing.T, m AppModel, cmd tea.Cmd) (AppModel, tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	updated, next := m.Update(cmd())
	return updated.(AppModel), next
}

func TestAppModel_TabNavigation(t *testing.T) {
	m, _ := newTestApp(t)

	tests := []struct {
		key  string
		want Tab
	}{
		{"tab", TabSocial},
		{"tab", TabCode},
		{"tab", TabStyle},
		{"shift+tab", TabCode},
		{"1", TabStyle},
		{"2", TabSocial},
		{"3", TabCode},
	}

	for _, tt := range tests {
		m, _ = press(t, m, tt.key)
		if m.Tab != tt.want {
			t.Errorf("after %q Tab = %v, want %v", tt.key, m.Tab, tt.want)
		}
	}
}

func TestAppModel_StylePanelAdjustsConfig(t *testing.T) {
	m, _ := newTestApp(t)

	m, _ = press(t, m, "right")
	if got := m.Ctrl.Config().Size; got != widget.SizeLarge {
		t.Errorf("Size = %v, want %v", got, widget.SizeLarge)
	}

	m, _ = press(t, m, "down", "right")
	if got := m.Ctrl.Config().Position; got != widget.PositionBottomLeft {
		t.Errorf("Position = %v, want %v", got, widget.PositionBottomLeft)
	}

	m, _ = press(t, m, "down", "right", "right", "left")
	if got := m.Ctrl.Config().BottomOffset; got != widget.DefaultBottomOffset+offsetStep {
		t.Errorf("BottomOffset = %d, want %d", got, widget.DefaultBottomOffset+offsetStep)
	}

	// Colour theme row; left from the first preset wraps to custom
	m, _ = press(t, m, "down", "down", "down", "left")
	if got := m.Ctrl.Config().Color; got != widget.ColorCustom {
		t.Errorf("Color = %v, want %v", got, widget.ColorCustom)
	}

	// Show labels toggles with enter
	m, _ = press(t, m, "down", "down", "enter")
	if !m.Ctrl.Config().ShowLabels {
		t.Error("ShowLabels = false, want true")
	}
}

func TestAppModel_StylePanelEditsCustomColour(t *testing.T) {
	m, _ := newTestApp(t)
	if err := m.Ctrl.Update(widget.FieldColor, widget.ColorCustom); err != nil {
		t.Fatalf("Update(color) error = %v", err)
	}

	// Primary is the first row after show labels
	m.Style.Cursor = 8
	m, _ = press(t, m, "enter")
	if !m.Editing() {
		t.Fatal("expected hex editor to be active")
	}

	m.Style.Input.SetValue("zzz")
	m, _ = press(t, m, "enter")
	if !m.Style.Editing || m.Style.Err == "" {
		t.Errorf("invalid hex: Editing = %v, Err = %q; want still editing with error", m.Style.Editing, m.Style.Err)
	}
	if got := m.Ctrl.Config().CustomColors.Primary; got != "#6366f1" {
		t.Errorf("Primary = %q after rejected edit, want unchanged", got)
	}

	m.Style.Input.SetValue("#0F0")
	m, _ = press(t, m, "enter")
	if m.Style.Editing {
		t.Error("editor still active after valid hex")
	}
	if got := m.Ctrl.Config().CustomColors.Primary; got != "#00ff00" {
		t.Errorf("Primary = %q, want %q", got, "#00ff00")
	}
}

func TestAppModel_PickColour(t *testing.T) {
	m, _ := newTestApp(t)

	// Up from the first row wraps to the pick row
	m, _ = press(t, m, "up")
	m, cmd := press(t, m, "enter")
	if !m.Style.Picking {
		t.Error("Picking = false while the picker runs")
	}

	m, _ = run(t, m, cmd)
	if m.Style.Picking {
		t.Error("Picking = true after result arrived")
	}

	cfg := m.Ctrl.Config()
	if cfg.Color != widget.ColorCustom || cfg.CustomColors.Primary != "#ff0000" {
		t.Errorf("after pick Color = %q, Primary = %q; want custom, #ff0000", cfg.Color, cfg.CustomColors.Primary)
	}
}

func TestAppModel_SocialPanel(t *testing.T) {
	m, _ := newTestApp(t)
	m, _ = press(t, m, "2")

	m, _ = press(t, m, "a")
	if got := len(m.Ctrl.Config().SocialLinks); got != 4 {
		t.Fatalf("links after add = %d, want 4", got)
	}
	if m.Social.Cursor != 3 {
		t.Errorf("Cursor after add = %d, want 3", m.Social.Cursor)
	}

	m, _ = press(t, m, "d")
	if got := len(m.Ctrl.Config().SocialLinks); got != 3 {
		t.Fatalf("links after remove = %d, want 3", got)
	}
	if m.Social.Cursor != 2 {
		t.Errorf("Cursor after removing last = %d, want 2", m.Social.Cursor)
	}

	// Move the LinkedIn entry to the top
	m, _ = press(t, m, "shift+up", "shift+up")
	if got := m.Ctrl.Config().SocialLinks[0].Platform; got != widget.PlatformLinkedIn {
		t.Errorf("first platform = %v, want %v", got, widget.PlatformLinkedIn)
	}
	if m.Social.Cursor != 0 {
		t.Errorf("Cursor after moves = %d, want 0", m.Social.Cursor)
	}
}

func TestAppModel_SocialPanelEditLink(t *testing.T) {
	m, _ := newTestApp(t)
	m, _ = press(t, m, "2", "enter")
	if !m.Social.Editing {
		t.Fatal("expected link editor to be active")
	}

	m, _ = press(t, m, "right")
	if got := m.Ctrl.Config().SocialLinks[0].Platform; got != widget.PlatformTwitter {
		t.Errorf("platform = %v, want %v", got, widget.PlatformTwitter)
	}

	// Keys that are global elsewhere are text while a field is focused
	m, _ = press(t, m, "tab", "tab")
	m = typeText(t, m, " q2")
	if got := m.Ctrl.Config().SocialLinks[0].Label; got != "Instagram q2" {
		t.Errorf("label = %q, want %q", got, "Instagram q2")
	}

	m, _ = press(t, m, "esc")
	if m.Social.Editing {
		t.Error("editor still active after esc")
	}
}

func TestAppModel_SocialPanelKeepsLongValues(t *testing.T) {
	label := strings.Repeat("l", 100)
	url := "https://example.com/" + strings.Repeat("p", 3000)

	cfg, err := widget.Default().UpdateLink(0, widget.LinkLabel, label)
	if err != nil {
		t.Fatal(err)
	}
	if cfg, err = cfg.UpdateLink(0, widget.LinkURL, url); err != nil {
		t.Fatal(err)
	}

	ctrl := wizard.NewController(
		wizard.WithClipboard(&clipboard.Memory{}),
		wizard.WithPicker(&colorpicker.Static{Unavailable: true}),
		wizard.WithConfig(cfg),
	)
	updated, _ := NewAppModel(ctrl).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := updated.(AppModel)

	m, _ = press(t, m, "2", "enter", "tab")
	m = typeText(t, m, "x")
	m, _ = press(t, m, "tab")
	m = typeText(t, m, "y")

	link := m.Ctrl.Config().SocialLinks[0]
	if link.URL != url+"x" {
		t.Errorf("url length = %d, want %d", len(link.URL), len(url)+1)
	}
	if link.Label != label+"y" {
		t.Errorf("label = %q, want %q", link.Label, label+"y")
	}
}

func TestAppModel_CopyIndicator(t *testing.T) {
	m, clip := newTestApp(t)

	m, cmd := press(t, m, "c")
	m, tick := run(t, m, cmd)
	if clip.Text != m.Ctrl.Code() {
		t.Error("clipboard does not hold the generated code")
	}
	if !m.Ctrl.Copied() {
		t.Fatal("Copied() = false after copy")
	}
	if tick == nil {
		t.Fatal("expected expiry tick command")
	}
	if !strings.Contains(m.View(), "Copied!") {
		t.Error("top bar does not show the copied indicator")
	}

	// Feed the expiry directly rather than waiting out the tick
	updated, _ := m.Update(copiedExpiredMsg{token: 1})
	m = updated.(AppModel)
	if m.Ctrl.Copied() {
		t.Error("Copied() = true after expiry")
	}
}

func TestAppModel_CopyFailureShowsStatus(t *testing.T) {
	m, clip := newTestApp(t)
	clip.Err = clipboard.ErrUnavailable

	m, cmd := press(t, m, "c")
	m, tick := run(t, m, cmd)
	if tick != nil {
		t.Error("unexpected expiry tick after failed copy")
	}
	if m.Ctrl.Copied() {
		t.Error("Copied() = true after failed copy")
	}
	if !strings.Contains(m.Status, "Clipboard unavailable") {
		t.Errorf("Status = %q, want clipboard message", m.Status)
	}
}

func TestAppModel_PreviewURL(t *testing.T) {
	m, _ := newTestApp(t)

	m, _ = press(t, m, "/")
	if !m.URLInput.Focused() {
		t.Fatal("URL input not focused")
	}

	m = typeText(t, m, "example.com")
	m, _ = press(t, m, "enter")
	if m.URLInput.Focused() {
		t.Error("URL input still focused after enter")
	}
	if got := m.Ctrl.Config().PreviewURL; got != "https://example.com" {
		t.Errorf("PreviewURL = %q, want %q", got, "https://example.com")
	}

	// Blank submission is ignored
	m, _ = press(t, m, "u")
	m.URLInput.SetValue("   ")
	m, _ = press(t, m, "enter")
	if got := m.Ctrl.Config().PreviewURL; got != "https://example.com" {
		t.Errorf("PreviewURL = %q after blank submit, want unchanged", got)
	}
}

func TestAppModel_CodePanel(t *testing.T) {
	m, clip := newTestApp(t)
	m, _ = press(t, m, "3", "right")
	if got := m.Ctrl.Config().CopyType; got != widget.CopyPage {
		t.Errorf("CopyType = %v, want %v", got, widget.CopyPage)
	}
	if !strings.Contains(m.Code.code, "export default function Page()") {
		t.Error("code panel does not hold page output")
	}

	m, cmd := press(t, m, "i")
	m, _ = run(t, m, cmd)
	if clip.Text != codegen.InstallCommand {
		t.Errorf("clipboard = %q, want install command", clip.Text)
	}
	if m.Code.Status != "Install command copied" {
		t.Errorf("Status = %q", m.Code.Status)
	}
}

func TestAppModel_SummaryLine(t *testing.T) {
	m, _ := newTestApp(t)
	if !strings.Contains(m.View(), m.Ctrl.Config().Summary()) {
		t.Fatalf("view does not show the summary %q", m.Ctrl.Config().Summary())
	}

	m, _ = press(t, m, "2", "a")
	want := m.Ctrl.Config().Summary()
	if !strings.HasPrefix(want, "4 links") {
		t.Fatalf("Summary() = %q after adding a link", want)
	}
	if !strings.Contains(m.View(), want) {
		t.Errorf("view does not follow the edit, want %q", want)
	}
}

func TestAppModel_HelpAndQuit(t *testing.T) {
	m, _ := newTestApp(t)

	m, _ = press(t, m, "?")
	if !m.ShowingHelp || !strings.Contains(m.View(), "FLOCHAT WIZARD HELP") {
		t.Fatal("help overlay not shown")
	}
	if !strings.Contains(m.View(), "(commit: ") {
		t.Error("help overlay does not show the build version")
	}
	m, _ = press(t, m, "x")
	if m.ShowingHelp {
		t.Error("help overlay still shown after key press")
	}

	_, cmd := press(t, m, "q")
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestAppModel_View(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"wide", 140, 45},
		{"narrow", 70, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestApp(t)
			updated, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: tt.height})
			view := updated.(AppModel).View()

			for _, want := range []string{AppName, "Style", "Social Links", "Code", "Size"} {
				if !strings.Contains(view, want) {
					t.Errorf("View() missing %q", want)
				}
			}
		})
	}

	var zero AppModel
	if got := zero.View(); got != "Initializing..." {
		t.Errorf("View() before size = %q", got)
	}
}
