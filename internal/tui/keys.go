package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	nextPage  key.Binding
	prevPage  key.Binding
	logout    key.Binding
	register  key.Binding
	copy      key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c")),
	nextPage:  key.NewBinding(key.WithKeys("ctrl+n")),
	prevPage:  key.NewBinding(key.WithKeys("ctrl+p")),
	logout:    key.NewBinding(key.WithKeys("ctrl+o")),
	register:  key.NewBinding(key.WithKeys("ctrl+r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b")),
}
