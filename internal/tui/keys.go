package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	InflationUp   key.Binding
	InflationDown key.Binding
	Survivor      key.Binding
	Reload        key.Binding
	Help          key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		InflationUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "inflation +0.25"),
		),
		InflationDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "inflation -0.25"),
		),
		Survivor: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "survivor 0/25/50"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload file"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.InflationUp, k.InflationDown, k.Survivor},
		{k.Reload, k.Help, k.Quit},
	}
}
