package view

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/messages"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Edit    key.Binding
	Export  key.Binding
	Theme   key.Binding
	Reload  key.Binding
	Logout  key.Binding
	Quit    key.Binding
	Submit  key.Binding
	Next    key.Binding
	Prev    key.Binding
	Toggle  key.Binding
	Cancel  key.Binding
	Dismiss key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", messages.HelpUp)),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", messages.HelpDown)),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", messages.HelpEdit)),
		Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", messages.HelpExport)),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", messages.HelpTheme)),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", messages.HelpReload)),
		Logout:  key.NewBinding(key.WithKeys("q"), key.WithHelp("q", messages.HelpLogout)),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", messages.HelpQuit)),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", messages.HelpSave)),
		Next:    key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", messages.HelpNext)),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "up")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", messages.HelpToggle)),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", messages.HelpCancel)),
		Dismiss: key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", messages.HelpContinue)),
	}
}

// bindings adapts a flat list of bindings to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding {
	return b
}

func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

func (k keyMap) loginHelp() bindings {
	login := k.Submit
	login.SetHelp("enter", messages.HelpLogin)
	return bindings{login, k.Quit}
}

// catalogHelp lists only the actions role can use.
func (k keyMap) catalogHelp(role auth.Role) bindings {
	out := bindings{k.Up, k.Down}
	if role.CanEdit() {
		out = append(out, k.Edit)
	}
	if role.CanExport() {
		out = append(out, k.Export)
	}
	return append(out, k.Theme, k.Reload, k.Logout, k.Quit)
}

func (k keyMap) editHelp() bindings {
	return bindings{k.Submit, k.Next, k.Toggle, k.Cancel}
}

func (k keyMap) alertHelp() bindings {
	return bindings{k.Dismiss}
}
