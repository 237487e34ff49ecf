package app

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings of the terminal editor.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Top       key.Binding
	Bottom    key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Open      key.Binding
	Focus     key.Binding
	Back      key.Binding
	Save      key.Binding
	QuickOpen key.Binding
	Preview   key.Binding
	Rescan    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j", "down")),
		Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Open:      key.NewBinding(key.WithKeys("enter", "l", "right"), key.WithHelp("enter", "open")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "explorer")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		QuickOpen: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "quick open")),
		Preview:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "preview")),
		Rescan:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rescan")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
