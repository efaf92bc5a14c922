package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the capture screen
type KeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Capture key.Binding
	Gallery key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left", "k", "up"),
			key.WithHelp("←", "prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right", "j", "down"),
			key.WithHelp("→", "next"),
		),
		Capture: key.NewBinding(
			key.WithKeys(" ", "space", "enter", "c"),
			key.WithHelp("space", "capture"),
		),
		Gallery: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gallery"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Capture, k.Gallery, k.Quit}
}
