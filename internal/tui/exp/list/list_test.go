package list

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/recycle/internal/recycle"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linear() *recycle.Layout {
	return &recycle.Layout{Kind: recycle.LayoutLinear}
}

func labelBind(c *Cell, index int) {
	c.SetName(fmt.Sprintf("Item - %d", index))
	c.SetView(fmt.Sprintf("ID : %d", index))
}

func viewLines(l *List) []string {
	lines := strings.Split(ansi.Strip(l.View()), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

func newList(t *testing.T, layout func() *recycle.Layout, count int, opts ...ListOption) *List {
	t.Helper()
	l, err := New(layout, labelBind, opts...)
	require.NoError(t, err)
	l.SetItemsCount(count)
	t.Cleanup(l.Unload)
	return l
}

func TestList(t *testing.T) {
	t.Parallel()

	t.Run("should render the first items", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1))

		assert.Equal(t, []string{"ID : 0", "ID : 1", "ID : 2", "ID : 3"}, viewLines(l))
		assert.Len(t, l.Cells(), 5)
		assert.Equal(t, 5, l.Resolution().PoolSize)
	})

	t.Run("should scroll and rebind cells", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1))

		l.MoveDown(2)
		assert.Equal(t, 2, l.Offset())
		assert.Equal(t, 2, l.FirstVisible())
		assert.Equal(t, []string{"ID : 2", "ID : 3", "ID : 4", "ID : 5"}, viewLines(l))
		assert.Equal(t, "Item - 5", l.Cells()[0].Name())

		l.MoveUp(2)
		assert.Equal(t, []string{"ID : 0", "ID : 1", "ID : 2", "ID : 3"}, viewLines(l))
	})

	t.Run("should jump to either end", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1))

		l.GoToBottom()
		assert.Equal(t, 96, l.Offset())
		assert.Equal(t, []string{"ID : 96", "ID : 97", "ID : 98", "ID : 99"}, viewLines(l))

		l.GoToTop()
		assert.Equal(t, 0, l.Offset())
		assert.Equal(t, []string{"ID : 0", "ID : 1", "ID : 2", "ID : 3"}, viewLines(l))
	})

	t.Run("should not scroll past the content", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 3, WithSize(20, 4), WithItemSize(10, 1))

		l.MoveDown(10)
		assert.Equal(t, 0, l.Offset())
		assert.Equal(t, []string{"ID : 0", "ID : 1", "ID : 2", ""}, viewLines(l))
		assert.Equal(t, 3, l.ItemsCount())
	})

	t.Run("should clip cells at the edges", func(t *testing.T) {
		t.Parallel()
		bind := func(c *Cell, index int) {
			c.SetView(fmt.Sprintf("#%d top\n#%d bot", index, index))
		}
		l, err := New(linear, bind, WithSize(20, 3), WithItemSize(10, 2))
		require.NoError(t, err)
		l.SetItemsCount(10)

		l.MoveDown(1)
		assert.Equal(t, []string{"#0 bot", "#1 top", "#1 bot"}, viewLines(l))
	})

	t.Run("should lay out a horizontal list", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 50, WithSize(30, 1), WithItemSize(10, 1), WithHorizontal(true))

		assert.Equal(t, []string{"ID : 0    ID : 1    ID : 2"}, viewLines(l))
		l.MoveDown(10)
		assert.Equal(t, []string{"ID : 1    ID : 2    ID : 3"}, viewLines(l))
	})

	t.Run("should lay out a grid", func(t *testing.T) {
		t.Parallel()
		grid := func() *recycle.Layout {
			return &recycle.Layout{
				Kind:     recycle.LayoutGrid,
				CellSize: recycle.Vec2{X: 10, Y: 1},
			}
		}
		l := newList(t, grid, 10, WithSize(20, 2), WithItemSize(10, 1))

		assert.Equal(t, 2, l.Resolution().ItemsPerEntry)
		assert.Equal(t, 6, l.Resolution().PoolSize)
		assert.Equal(t, []string{"ID : 0    ID : 1", "ID : 2    ID : 3"}, viewLines(l))

		l.GoToBottom()
		assert.Equal(t, 6, l.FirstVisible())
		assert.Equal(t, []string{"ID : 6    ID : 7", "ID : 8    ID : 9"}, viewLines(l))
	})

	t.Run("should rebuild the pool on resize", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1))
		l.MoveDown(3)

		l.SetSize(20, 6)
		w, h := l.GetSize()
		assert.Equal(t, 20, w)
		assert.Equal(t, 6, h)
		assert.Len(t, l.Cells(), 7)
		assert.Equal(t, 3, l.Offset())
		assert.Equal(t, []string{"ID : 3", "ID : 4", "ID : 5", "ID : 6", "ID : 7", "ID : 8"}, viewLines(l))
	})

	t.Run("should report an invalid layout", func(t *testing.T) {
		t.Parallel()
		_, err := New(func() *recycle.Layout { return nil }, labelBind, WithSize(20, 4))
		var cfgErr *recycle.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.True(t, cfgErr.Layout)
	})

	t.Run("should call on created for every clone", func(t *testing.T) {
		t.Parallel()
		var slots []int
		l, err := New(linear, labelBind,
			WithSize(20, 2),
			WithItemSize(10, 1),
			WithOnCreated(func(_ *Cell, slot int) { slots = append(slots, slot) }),
		)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, slots)
		l.Unload()
		assert.Empty(t, l.Cells())
	})
}

func TestListUpdate(t *testing.T) {
	t.Parallel()

	t.Run("should scroll with keys", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 2))

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, 1, l.Offset())

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown, Mod: tea.ModShift}))
		assert.Equal(t, 3, l.Offset())

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyPgDown}))
		assert.Equal(t, 7, l.Offset())

		l.Update(tea.KeyPressMsg(tea.Key{Code: 'u', Text: "u"}))
		assert.Equal(t, 5, l.Offset())

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnd}))
		assert.Equal(t, 196, l.Offset())

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyHome}))
		assert.Equal(t, 0, l.Offset())
	})

	t.Run("should ignore keys when blurred", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1), WithFocus(false))
		assert.False(t, l.IsFocused())

		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, 0, l.Offset())

		l.Focus()
		l.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyDown}))
		assert.Equal(t, 1, l.Offset())
	})

	t.Run("should scroll with the mouse wheel when enabled", func(t *testing.T) {
		t.Parallel()
		l := newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1))
		l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
		assert.Equal(t, 0, l.Offset())

		l = newList(t, linear, 100, WithSize(20, 4), WithItemSize(10, 1), WithEnableMouse())
		l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
		assert.Equal(t, ViewportDefaultScrollSize, l.Offset())
		l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
		assert.Equal(t, 0, l.Offset())
	})
}
