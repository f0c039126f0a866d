package tui

import (
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
)

type KeyMap struct {
	Quit    key.Binding
	Presets []key.Binding
}

// DefaultKeyMap binds the number keys to the dataset presets, one key per
// preset up to nine.
func DefaultKeyMap(presets []int) KeyMap {
	km := KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
	for i, n := range presets {
		if i == 9 {
			break
		}
		k := fmt.Sprint(i + 1)
		km.Presets = append(km.Presets, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, formatCount(n)),
		))
	}
	return km
}

func (k KeyMap) ShortHelp() []key.Binding {
	return append(slices.Clone(k.Presets), k.Quit)
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
