package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/recycle/internal/config"
	"github.com/charmbracelet/recycle/internal/tui/util"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, count int) *appModel {
	t.Helper()
	a, err := New(config.Defaults(), count)
	require.NoError(t, err)
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	return a
}

func press(a *appModel, k rune) tea.Cmd {
	_, cmd := a.Update(tea.KeyPressMsg(tea.Key{Code: k, Text: string(k)}))
	return cmd
}

func TestApp(t *testing.T) {
	t.Parallel()

	t.Run("renders the initial dataset", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, 25)
		view := ansi.Strip(a.render())

		assert.Contains(t, view, "ID : 0")
		assert.Contains(t, view, "ID : 7")
		assert.NotContains(t, view, "ID : 8")
		assert.Contains(t, view, "1 1K")
		assert.Contains(t, view, "4 1M")
		assert.Equal(t, 25, a.list.ItemsCount())
	})

	t.Run("loads a preset", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, 25)

		cmd := press(a, '2')
		require.NotNil(t, cmd)
		assert.Equal(t, 50_000, a.dataset.Len())
		assert.Equal(t, 50_000, a.list.ItemsCount())
		assert.Equal(t, 1, a.preset)

		a.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnd}))
		view := ansi.Strip(a.render())
		assert.Contains(t, view, "ID : 49999")
		assert.Contains(t, view, "ID : 49992")
		assert.Equal(t, 9, a.list.Resolution().PoolSize)
	})

	t.Run("shows a placeholder when empty", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, 0)
		assert.Contains(t, ansi.Strip(a.render()), "No items.")
	})

	t.Run("shows and clears status messages", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, 25)

		_, cmd := a.Update(util.InfoMsg{Type: util.InfoTypeWarn, Msg: "careful"})
		assert.NotNil(t, cmd)
		assert.Contains(t, ansi.Strip(a.render()), "careful")

		a.Update(util.ClearStatusMsg{})
		assert.NotContains(t, ansi.Strip(a.render()), "careful")
	})

	t.Run("quits", func(t *testing.T) {
		t.Parallel()
		a := newApp(t, 25)
		cmd := press(a, 'q')
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	})
}

func TestFormatCount(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]string{
		0:         "0",
		25:        "25",
		1_000:     "1K",
		1_500:     "1500",
		250_000:   "250K",
		1_000_000: "1M",
		3_000_000: "3M",
	} {
		assert.Equal(t, want, formatCount(n))
	}
}
