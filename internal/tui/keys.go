package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	refresh key.Binding
	copy    key.Binding
	quit    key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("e")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
