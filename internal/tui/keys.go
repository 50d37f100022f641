package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
	Clear  key.Binding
	Sort   key.Binding
	Order  key.Binding
	Quit   key.Binding

	// add form
	Submit key.Binding
	Cancel key.Binding
	More   key.Binding
	Fewer  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pack")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Clear:  key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear list")),
		Sort:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by")),
		Order:  key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "asc/desc")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		More:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "more")),
		Fewer:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "fewer")),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.Clear, k.Sort, k.Order}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel, k.More, k.Fewer}
}
