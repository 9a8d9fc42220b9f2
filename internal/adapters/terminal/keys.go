package terminal

import "github.com/charmbracelet/bubbles/key"

// selectorKeyMap defines the key bindings of the selection list.
type selectorKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var defaultSelectorKeys = selectorKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q", "ctrl+c"),
		key.WithHelp("esc/q", "cancel"),
	),
}

func (k selectorKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Cancel}
}
