package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings for the widget. It implements
// help.KeyMap so the footer can render itself from the same source.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Increment  key.Binding
	Decrement  key.Binding
	Toggle     key.Binding
	Regenerate key.Binding
	Copy       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Increment: key.NewBinding(
			key.WithKeys("up", "+", "k"),
			key.WithHelp("↑/+", "longer"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("down", "-", "j"),
			key.WithHelp("↓/-", "shorter"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single-line hint row shown under the controls.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Regenerate, k.Copy, k.Help, k.Quit}
}

// FullHelp is shown by the expanded help bubble. The overlay rendered by
// renderHelp covers the same ground with more prose, so this stays compact.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Toggle},
		{k.Increment, k.Decrement, k.Regenerate},
		{k.Copy, k.Help, k.Quit},
	}
}
