package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/bestpick/cardnav/internal/cardnav"
)

// keyMap defines global key bindings used across the TUI.
type keyMap struct {
	Toggle key.Binding
	Close  key.Binding
	Help   key.Binding
	Debug  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(cardnav.TriggerKeys...),
			key.WithHelp("enter/space", "toggle menu"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "toggle help"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "animation state"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Close},
		{k.Debug, k.Help, k.Quit},
	}
}
