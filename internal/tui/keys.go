package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists every binding the palette screen reacts to.
type KeyMap struct {
	Left        key.Binding
	Right       key.Binding
	Section     key.Binding
	Copy        key.Binding
	CopyHex     key.Binding
	CopyRGBA    key.Binding
	Edit        key.Binding
	OpacityUp   key.Binding
	OpacityDown key.Binding
	Help        key.Binding
	Quit        key.Binding
	Confirm     key.Binding
	Cancel      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next swatch"),
		),
		Section: key.NewBinding(
			key.WithKeys("tab", "up", "down", "k", "j"),
			key.WithHelp("tab", "switch row"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter", "y", " "),
			key.WithHelp("enter/y", "copy swatch"),
		),
		CopyHex: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "copy base hex"),
		),
		CopyRGBA: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "copy rgba"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "/"),
			key.WithHelp("e", "pick color"),
		),
		OpacityUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "more opaque"),
		),
		OpacityDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "more transparent"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply color"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Copy, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Section},
		{k.Copy, k.CopyHex, k.CopyRGBA},
		{k.Edit, k.OpacityUp, k.OpacityDown},
		{k.Help, k.Quit},
	}
}
