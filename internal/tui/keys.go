package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit   key.Binding
	Back   key.Binding
	Select key.Binding

	// Movement
	Up   key.Binding
	Down key.Binding

	// Editor actions
	AddLine        key.Binding
	DeleteLine     key.Binding
	ToggleDiscount key.Binding
	Preview        key.Binding
	Generate       key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Back:           key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Select:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	AddLine:        key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "add line")),
	DeleteLine:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete line")),
	ToggleDiscount: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "discount")),
	Preview:        key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "preview")),
	Generate:       key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "generate PDF")),
}
