package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings handled by the app before keys reach a pane.
type KeyMap struct {
	Quit  key.Binding
	Focus key.Binding
	Clear key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:  key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Focus: key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "switch pane")),
		Clear: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
	}
}

// ShortHelp returns the bindings shown in the status line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Focus, km.Clear, km.Quit}
}
