package viewer

import "charm.land/bubbles/v2/key"

// KeyMap holds the viewer key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Left     key.Binding
	Right    key.Binding
	Open     key.Binding
	Back     key.Binding
	Undo     key.Binding
	History  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "scroll left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "scroll right")),
		Open:     key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter", "line actions")),
		Back:     key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q", "close")),
		Undo:     key.NewBinding(key.WithKeys("ctrl+z", "u"), key.WithHelp("u", "undo")),
		History:  key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "history")),
	}
}

// Override replaces the keys of each binding whose entry in keys is
// non-empty, leaving help text intact.
func (k *KeyMap) Override(keys map[string][]string) {
	for name, b := range map[string]*key.Binding{
		"up":        &k.Up,
		"down":      &k.Down,
		"page_up":   &k.PageUp,
		"page_down": &k.PageDown,
		"left":      &k.Left,
		"right":     &k.Right,
		"open":      &k.Open,
		"back":      &k.Back,
		"undo":      &k.Undo,
		"history":   &k.History,
	} {
		if ks := keys[name]; len(ks) > 0 {
			b.SetKeys(ks...)
		}
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Undo, k.History, k.Back}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Left, k.Right},
		{k.Open, k.Undo, k.History, k.Back},
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Up.Keys()) == 0 && len(k.Down.Keys()) == 0 && len(k.Back.Keys()) == 0
}
