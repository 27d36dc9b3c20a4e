package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// header controls
	Auth  key.Binding
	Todos key.Binding

	LogIn key.Binding
	Quit  key.Binding

	// todo view
	Add    key.Binding
	Focus  key.Binding
	Remove key.Binding
	Clear  key.Binding
	Undo   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Auth:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "auth")),
		Todos:  key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "todo list")),
		LogIn:  key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "log in")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch focus")),
		Remove: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
	}
}
