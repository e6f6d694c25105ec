package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	quit       key.Binding
	version    key.Binding
	connect    key.Binding
	disconnect key.Binding
	refresh    key.Binding
	copy       key.Binding
	copyGov    key.Binding
	copyStable key.Binding
	copyWallet key.Binding
	search     key.Binding
	payment    key.Binding
	sort       key.Binding
	listToken  key.Binding
	another    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	version:    key.NewBinding(key.WithKeys("v")),
	connect:    key.NewBinding(key.WithKeys("c")),
	disconnect: key.NewBinding(key.WithKeys("x")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	copy:       key.NewBinding(key.WithKeys("y")),
	copyGov:    key.NewBinding(key.WithKeys("p")),
	copyStable: key.NewBinding(key.WithKeys("u")),
	copyWallet: key.NewBinding(key.WithKeys("a")),
	search:     key.NewBinding(key.WithKeys("/")),
	payment:    key.NewBinding(key.WithKeys("f")),
	sort:       key.NewBinding(key.WithKeys("s")),
	listToken:  key.NewBinding(key.WithKeys("l")),
	another:    key.NewBinding(key.WithKeys("n")),
}
