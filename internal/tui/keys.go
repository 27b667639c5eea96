package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Save      key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Revert    key.Binding
	Add       key.Binding
	Remove    key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Personal  key.Binding
	Officials key.Binding
	Bank      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save/update")),
		Delete:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Refresh:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		Revert:    key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "revert")),
		Add:       key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "add row")),
		Remove:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove row")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Personal:  key.NewBinding(key.WithKeys("f1", "alt+1"), key.WithHelp("f1", "personal")),
		Officials: key.NewBinding(key.WithKeys("f2", "alt+2"), key.WithHelp("f2", "officials")),
		Bank:      key.NewBinding(key.WithKeys("f3", "alt+3"), key.WithHelp("f3", "bank")),
		Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		Cancel:    key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Delete, k.Refresh, k.Revert, k.Add, k.Remove, k.Personal, k.Officials, k.Bank, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Save, k.Delete, k.Refresh, k.Revert},
		{k.Add, k.Remove, k.Up, k.Down, k.Select},
		{k.NextFocus, k.PrevFocus, k.Personal, k.Officials, k.Bank, k.Quit},
	}
}
