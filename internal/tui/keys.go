package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up           key.Binding
	Down         key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Open         key.Binding
	Search       key.Binding
	Refresh      key.Binding
	Focus        key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		NextCategory: key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab/→", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab/←", "prev category")),
		NextPage:     key.NewBinding(key.WithKeys("n", "pgdown"), key.WithHelp("n", "next page")),
		PrevPage:     key.NewBinding(key.WithKeys("p", "pgup"), key.WithHelp("p", "previous page")),
		Open:         key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o/enter", "open in browser")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Focus:        key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle preview focus")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp satisfy help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextCategory, k.Search, k.NextPage, k.PrevPage, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus, k.Open},
		{k.NextCategory, k.PrevCategory, k.Search, k.Refresh},
		{k.NextPage, k.PrevPage, k.Help, k.Quit},
	}
}
