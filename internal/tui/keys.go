package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the clock view and the note editor.
type KeyMap struct {
	// Dial.
	Next       key.Binding // Select the next hour clockwise.
	Prev       key.Binding // Select the previous hour.
	ToggleHalf key.Binding // Switch between AM (0-11) and PM (12-23).
	Now        key.Binding // Jump back to the current hour.
	Open       key.Binding // Open the editor for the selected hour.

	// Shared.
	Save key.Binding
	Quit key.Binding

	// Editor.
	Close key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "down", "j"),
		key.WithHelp("→/l", "next hour"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h", "up", "k"),
		key.WithHelp("←/h", "prev hour"),
	),
	ToggleHalf: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "am/pm"),
	),
	Now: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "now"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open note"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "secure state"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "lock node"),
	),
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleHalf, k.Open, k.Save, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.ToggleHalf, k.Now},
		{k.Open, k.Close, k.Save, k.Quit},
	}
}

// editorHelp is shown while the editor is open.
func (k KeyMap) editorHelp() []key.Binding {
	return []key.Binding{k.Close, k.Save}
}
