package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	AddNode   key.Binding
	Delete    key.Binding
	Calculate key.Binding
	Export    key.Binding

	// Prompt bindings.
	Confirm key.Binding
	Cancel  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		AddNode:   key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add node")),
		Delete:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete selected")),
		Calculate: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "calculate")),
		Export:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),

		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.AddNode, km.Delete, km.Calculate, km.Export}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{km.ShortHelp(), {km.Confirm, km.Cancel}}
}

func (km KeyMap) isZero() bool {
	for _, b := range []key.Binding{km.AddNode, km.Delete, km.Calculate, km.Export, km.Confirm, km.Cancel} {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}
