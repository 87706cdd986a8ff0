package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// globalKeyMap defines key bindings available on every tab
type globalKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Style   key.Binding
	Social  key.Binding
	Code    key.Binding
	URL     key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newGlobalKeyMap() globalKeyMap {
	return globalKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Style: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "style"),
		),
		Social: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "social"),
		),
		Code: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "code"),
		),
		URL: key.NewBinding(
			key.WithKeys("/", "u"),
			key.WithHelp("/", "preview url"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy code"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// styleKeyMap defines key bindings for the style panel
type styleKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Cancel key.Binding
}

func newStyleKeyMap() styleKeyMap {
	return styleKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle/edit"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// socialKeyMap defines key bindings for the social links panel
type socialKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Add      key.Binding
	Remove   key.Binding
	Edit     key.Binding
	Left     key.Binding
	Right    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Done     key.Binding
}

func newSocialKeyMap() socialKeyMap {
	return socialKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓", "move down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "x", "delete"),
			key.WithHelp("d", "remove"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "platform"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Done: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "done"),
		),
	}
}

// codeKeyMap defines key bindings for the code panel
type codeKeyMap struct {
	Switch  key.Binding
	Install key.Binding
	Up      key.Binding
	Down    key.Binding
}

func newCodeKeyMap() codeKeyMap {
	return codeKeyMap{
		Switch: key.NewBinding(
			key.WithKeys("left", "right", "h", "l", "t"),
			key.WithHelp("←/→", "component/page"),
		),
		Install: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "copy install"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
	}
}

// tabHelp combines the active panel's bindings with the global ones for
// the footer help view
type tabHelp struct {
	panel  []key.Binding
	global globalKeyMap
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h tabHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, h.panel...), h.global.NextTab, h.global.Copy, h.global.Help, h.global.Quit)
}

// FullHelp returns keybindings for the expanded help view
func (h tabHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		h.panel,
		{h.global.NextTab, h.global.PrevTab, h.global.Style, h.global.Social, h.global.Code},
		{h.global.URL, h.global.Copy, h.global.Help, h.global.Quit},
	}
}

// editingHelp is shown while a text field owns the keyboard
type editingHelp struct {
	bindings []key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (h editingHelp) ShortHelp() []key.Binding { return h.bindings }

// FullHelp returns keybindings for the expanded help view
func (h editingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.bindings} }
