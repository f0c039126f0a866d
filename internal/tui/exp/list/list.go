package list

import (
	"math"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/recycle/internal/recycle"
	"github.com/charmbracelet/recycle/internal/tui/util"
)

const ViewportDefaultScrollSize = 2

type confOptions struct {
	width, height         int
	itemWidth, itemHeight int
	horizontal            bool
	keyMap                KeyMap
	focused               bool
	enableMouse           bool
	onCreated             recycle.BindFunc[*Cell]
}

// List is a scrollable view over any number of items that only ever holds
// enough cells to fill its viewport.
type List struct {
	*confOptions

	layout   func() *recycle.Layout
	host     *Host
	recycler *recycle.Recycler[*Cell]
}

type ListOption func(*confOptions)

// WithSize sets the size of the list.
func WithSize(width, height int) ListOption {
	return func(l *confOptions) {
		l.width = width
		l.height = height
	}
}

// WithItemSize sets the size of every cell.
func WithItemSize(width, height int) ListOption {
	return func(l *confOptions) {
		l.itemWidth = width
		l.itemHeight = height
	}
}

// WithHorizontal makes the list scroll left to right.
func WithHorizontal(horizontal bool) ListOption {
	return func(l *confOptions) {
		l.horizontal = horizontal
	}
}

func WithKeyMap(keyMap KeyMap) ListOption {
	return func(l *confOptions) {
		l.keyMap = keyMap
	}
}

func WithFocus(focus bool) ListOption {
	return func(l *confOptions) {
		l.focused = focus
	}
}

func WithEnableMouse() ListOption {
	return func(l *confOptions) {
		l.enableMouse = true
	}
}

// WithOnCreated sets a callback run once for every cell the list creates.
func WithOnCreated(fn recycle.BindFunc[*Cell]) ListOption {
	return func(l *confOptions) {
		l.onCreated = fn
	}
}

// New creates a list. layout must return a fresh descriptor on every call;
// the list asks for one whenever it is resized. bind is called each time a
// cell starts showing another item.
func New(layout func() *recycle.Layout, bind recycle.BindFunc[*Cell], opts ...ListOption) (*List, error) {
	l := &List{
		confOptions: &confOptions{
			itemWidth:  1,
			itemHeight: 1,
			keyMap:     DefaultKeyMap(),
			focused:    true,
		},
		layout: layout,
	}
	for _, opt := range opts {
		opt(l.confOptions)
	}

	l.host = NewHost(l.width, l.height, layout(), l.horizontal)
	prototype := NewCell(l.itemWidth, l.itemHeight)
	l.host.Adopt(prototype)

	r, err := recycle.New(prototype, l.host, l.onCreated, bind)
	if err != nil {
		return nil, err
	}
	l.recycler = r
	return l, nil
}

func (l *List) Init() tea.Cmd {
	return nil
}

func (l *List) Update(msg tea.Msg) (util.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		if l.enableMouse {
			return l.handleMouseWheel(msg)
		}
		return l, nil
	case tea.KeyPressMsg:
		if !l.focused {
			return l, nil
		}
		switch {
		case key.Matches(msg, l.keyMap.Down), key.Matches(msg, l.keyMap.Right):
			return l, l.MoveDown(1)
		case key.Matches(msg, l.keyMap.Up), key.Matches(msg, l.keyMap.Left):
			return l, l.MoveUp(1)
		case key.Matches(msg, l.keyMap.DownOneItem):
			return l, l.MoveDown(l.footprint())
		case key.Matches(msg, l.keyMap.UpOneItem):
			return l, l.MoveUp(l.footprint())
		case key.Matches(msg, l.keyMap.HalfPageDown):
			return l, l.MoveDown(l.page() / 2)
		case key.Matches(msg, l.keyMap.HalfPageUp):
			return l, l.MoveUp(l.page() / 2)
		case key.Matches(msg, l.keyMap.PageDown):
			return l, l.MoveDown(l.page())
		case key.Matches(msg, l.keyMap.PageUp):
			return l, l.MoveUp(l.page())
		case key.Matches(msg, l.keyMap.End):
			return l, l.GoToBottom()
		case key.Matches(msg, l.keyMap.Home):
			return l, l.GoToTop()
		}
	}
	return l, nil
}

func (l *List) handleMouseWheel(msg tea.MouseWheelMsg) (util.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Button {
	case tea.MouseWheelDown, tea.MouseWheelRight:
		cmd = l.MoveDown(ViewportDefaultScrollSize)
	case tea.MouseWheelUp, tea.MouseWheelLeft:
		cmd = l.MoveUp(ViewportDefaultScrollSize)
	}
	return l, cmd
}

func (l *List) View() string {
	return l.host.Render()
}

// page is the viewport extent along the scroll axis.
func (l *List) page() int {
	if l.horizontal {
		return l.width
	}
	return l.height
}

func (l *List) footprint() int {
	return max(1, int(l.recycler.Resolution().Footprint))
}

// MoveDown scrolls n cells towards the end of the list.
func (l *List) MoveDown(n int) tea.Cmd {
	l.host.ScrollBy(float64(n))
	return nil
}

// MoveUp scrolls n cells towards the start of the list.
func (l *List) MoveUp(n int) tea.Cmd {
	l.host.ScrollBy(-float64(n))
	return nil
}

func (l *List) GoToTop() tea.Cmd {
	l.host.ScrollTo(0)
	return nil
}

func (l *List) GoToBottom() tea.Cmd {
	l.host.ScrollTo(l.host.MaxScroll())
	return nil
}

// SetItemsCount changes the number of items and scrolls back to the top.
func (l *List) SetItemsCount(count int) tea.Cmd {
	if err := l.recycler.SetItemsCount(count); err != nil {
		return util.ReportError(err)
	}
	return nil
}

func (l *List) ItemsCount() int {
	return l.recycler.ItemsCount()
}

// SetSize resizes the viewport. The pool is rebuilt for the new size and the
// scroll offset is kept where possible.
func (l *List) SetSize(width, height int) tea.Cmd {
	if width == l.width && height == l.height {
		return nil
	}
	l.width, l.height = width, height

	offset := l.host.Scroll()
	l.host.Resize(width, height)
	l.host.SetLayout(l.layout())
	if err := l.recycler.SetItemsCount(l.recycler.ItemsCount()); err != nil {
		return util.ReportError(err)
	}
	l.host.ScrollTo(offset)
	return nil
}

func (l *List) GetSize() (int, int) {
	return l.width, l.height
}

func (l *List) Focus() tea.Cmd {
	l.focused = true
	return nil
}

func (l *List) Blur() tea.Cmd {
	l.focused = false
	return nil
}

func (l *List) IsFocused() bool {
	return l.focused
}

func (l *List) Resolution() recycle.Resolution {
	return l.recycler.Resolution()
}

// Offset is the scroll distance from the start of the list in cells.
func (l *List) Offset() int {
	return int(l.host.Scroll())
}

// FirstVisible returns the index of the first item at least partly inside
// the viewport.
func (l *List) FirstVisible() int {
	if l.ItemsCount() == 0 {
		return 0
	}
	res := l.recycler.Resolution()
	pad := l.host.Layout().Padding.Top
	if l.horizontal {
		pad = l.host.Layout().Padding.Left
	}
	entry := int(math.Floor(max(0, l.host.Scroll()-pad) / res.Footprint))
	return min(entry*res.ItemsPerEntry, l.ItemsCount()-1)
}

// Cells returns every cell of the pool in slot order.
func (l *List) Cells() []*Cell {
	out := make([]*Cell, 0, l.recycler.Pool().Len())
	for c := range l.recycler.Pool().All() {
		out = append(out, c)
	}
	return out
}

// Unload releases every cell and stops following the scroll position.
func (l *List) Unload() {
	l.recycler.Unload()
}
