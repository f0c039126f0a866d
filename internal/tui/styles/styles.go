package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/recycle/internal/tui/util"
	"github.com/charmbracelet/x/exp/charmtone"
)

type Theme struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	BgBase   color.Color
	BgSubtle color.Color

	FgBase  color.Color
	FgMuted color.Color

	Error   color.Color
	Warning color.Color
	Info    color.Color

	// ItemAccents colour list items; an item picks one by hash.
	ItemAccents []color.Color
}

var currentTheme = NewCharmtoneTheme()

func CurrentTheme() *Theme {
	return currentTheme
}

func NewCharmtoneTheme() *Theme {
	return &Theme{
		Name: "charmtone",

		Primary:   charmtone.Charple,
		Secondary: charmtone.Dolly,
		Accent:    charmtone.Zest,

		BgBase:   charmtone.Pepper,
		BgSubtle: charmtone.Charcoal,

		FgBase:  charmtone.Ash,
		FgMuted: charmtone.Squid,

		Error:   charmtone.Sriracha,
		Warning: charmtone.Zest,
		Info:    charmtone.Malibu,

		ItemAccents: []color.Color{
			charmtone.Charple,
			charmtone.Dolly,
			charmtone.Guac,
			charmtone.Malibu,
			charmtone.Zest,
			charmtone.Bok,
		},
	}
}

func (t *Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary)
}

func (t *Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.FgMuted)
}

// Button styles a preset shortcut; active marks the preset currently loaded.
func (t *Theme) Button(active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1).Foreground(t.FgBase).Background(t.BgSubtle)
	if active {
		s = s.Foreground(t.BgBase).Background(t.Secondary)
	}
	return s
}

func (t *Theme) Status(kind util.InfoType) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.FgMuted)
	switch kind {
	case util.InfoTypeWarn:
		s = s.Foreground(t.Warning)
	case util.InfoTypeError:
		s = s.Foreground(t.Error)
	}
	return s
}

// Item renders one list entry at exactly width by height cells.
func (t *Theme) Item(text string, accent, width, height int) string {
	fg := t.FgBase
	if len(t.ItemAccents) > 0 {
		fg = t.ItemAccents[accent%len(t.ItemAccents)]
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Width(width).
		Height(height).
		MaxWidth(width).
		MaxHeight(height).
		Render(text)
}
