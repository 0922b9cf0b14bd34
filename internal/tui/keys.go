package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Open   key.Binding
	Close  key.Binding
	Today  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		Next:   key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next month")),
		Prev:   key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "prev month")),
		Open:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "show day")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Open, k.Close, k.Today, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Next, k.Prev, k.Today},
		{k.Open, k.Close, k.Reload, k.Quit},
	}
}
