package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// keyMap defines all key bindings
type keyMap struct {
	Cycle     key.Binding
	Menu1     key.Binding
	Menu2     key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Press     key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Menu1, k.Menu2, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cycle, k.Menu1, k.Menu2},
		{k.NextFocus, k.PrevFocus, k.Press},
		{k.Theme, k.Help, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}

var keys = keyMap{
	Cycle: key.NewBinding(
		key.WithKeys("c", " "),
		key.WithHelp("c/space", "cycle layout"),
	),
	Menu1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "menu 1"),
	),
	Menu2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "menu 2"),
	),
	NextFocus: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab/→", "next button"),
	),
	PrevFocus: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab/←", "prev button"),
	),
	Press: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "press button"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
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
