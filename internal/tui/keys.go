package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings of the dashboard.
type keyMap struct {
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Today    key.Binding
	Toggle   key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Accounts key.Binding
	NewAcct  key.Binding
	Export   key.Binding
	Backup   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "p"), key.WithHelp("p", "prev page")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "n"), key.WithHelp("n", "next page")),
		Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Toggle:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "week/month")),
		Edit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "log day")),
		Delete:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "clear day")),
		Accounts: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "accounts")),
		NewAcct:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "new account")),
		Export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		Backup:   key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "backup json")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the single-line hint bar at the bottom of the dashboard.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Toggle, k.Accounts, k.Export, k.Help, k.Quit}
}

// FullHelp is the expanded help shown when toggled with "?".
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PrevPage, k.NextPage, k.Today},
		{k.Edit, k.Delete, k.Toggle, k.Accounts, k.NewAcct},
		{k.Export, k.Backup, k.Help, k.Quit},
	}
}
