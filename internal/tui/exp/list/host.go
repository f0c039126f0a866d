package list

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/recycle/internal/recycle"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
)

// Cell is one physical list instance: a fixed-size block of terminal cells
// showing whatever item it was last bound to.
type Cell struct {
	active bool
	pos    recycle.Vec2
	size   recycle.Vec2
	name   string
	view   string
}

func NewCell(width, height int) *Cell {
	return &Cell{size: recycle.Vec2{X: float64(width), Y: float64(height)}}
}

func (c *Cell) Active() bool                 { return c.active }
func (c *Cell) SetActive(active bool)        { c.active = active }
func (c *Cell) Position() recycle.Vec2       { return c.pos }
func (c *Cell) SetPosition(pos recycle.Vec2) { c.pos = pos }
func (c *Cell) Size() recycle.Vec2           { return c.size }
func (c *Cell) View() string                 { return c.view }
func (c *Cell) SetView(view string)          { c.view = view }
func (c *Cell) Name() string                 { return c.name }
func (c *Cell) SetName(name string)          { c.name = name }
func (c *Cell) Width() int                   { return int(c.size.X) }
func (c *Cell) Height() int                  { return int(c.size.Y) }

type listener struct {
	id int
	fn func(recycle.Vec2)
}

// Host is a terminal viewport over a content container of cells. It does
// the layout and drawing the recycler leaves to its host.
type Host struct {
	width, height int
	horizontal    bool

	layout     *recycle.Layout
	fitter     bool
	autoLayout bool

	scroll  float64
	content recycle.Vec2

	children  []*Cell
	listeners []listener
	nextID    int
}

var _ recycle.Host[*Cell] = (*Host)(nil)

func NewHost(width, height int, layout *recycle.Layout, horizontal bool) *Host {
	return &Host{
		width:      width,
		height:     height,
		horizontal: horizontal,
		layout:     layout,
		fitter:     true,
	}
}

// Resize changes the viewport. Callers are expected to run SetItemsCount
// afterwards so the pool matches the new size.
func (h *Host) Resize(width, height int) {
	h.width, h.height = width, height
}

func (h *Host) SetLayout(layout *recycle.Layout) {
	h.layout = layout
}

// Adopt parents c under the content without cloning it.
func (h *Host) Adopt(c *Cell) {
	if !h.Contains(c) {
		h.children = append(h.children, c)
	}
}

func (h *Host) Contains(c *Cell) bool {
	return slices.Contains(h.children, c)
}

func (h *Host) Instantiate(prototype *Cell) *Cell {
	c := &Cell{
		active: prototype.active,
		pos:    prototype.pos,
		size:   prototype.size,
		name:   prototype.name,
		view:   prototype.view,
	}
	h.children = append(h.children, c)
	return c
}

func (h *Host) Destroy(c *Cell) {
	c.active = false
	h.children = slices.DeleteFunc(h.children, func(o *Cell) bool { return o == c })
}

func (h *Host) Children() []*Cell {
	return h.children
}

func (h *Host) Horizontal() bool { return h.horizontal }

func (h *Host) Viewport() recycle.Vec2 {
	return recycle.Vec2{X: float64(h.width), Y: float64(h.height)}
}

// ContentOffset places the content's top-left corner relative to the
// viewport centre: scrolling down raises the content, scrolling right moves
// it left.
func (h *Host) ContentOffset() recycle.Vec2 {
	off := recycle.Vec2{X: -float64(h.width) / 2, Y: float64(h.height) / 2}
	if h.horizontal {
		off.X -= h.scroll
	} else {
		off.Y += h.scroll
	}
	return off
}

func (h *Host) ContentSize() recycle.Vec2 {
	return h.content
}

func (h *Host) SetContentSize(size recycle.Vec2) {
	h.content = size
	h.scrollTo(h.scroll)
}

// ContentPivot is the top-left corner, as a normalized position.
func (h *Host) ContentPivot() recycle.Vec2 {
	return recycle.Vec2{X: 0, Y: 1}
}

func (h *Host) Layout() *recycle.Layout { return h.layout }
func (h *Host) Fitter() bool            { return h.fitter }

func (h *Host) SetAutoLayout(enabled bool) {
	h.autoLayout = enabled
}

// ForceLayout stacks the active children in order. It does nothing while
// auto layout is disabled, so the recycler's positions stick.
func (h *Host) ForceLayout() {
	if !h.autoLayout || h.layout == nil {
		return
	}

	perEntry := h.perEntry()
	var natural recycle.Vec2
	k := 0
	for _, c := range h.children {
		if !c.active {
			continue
		}
		cell, spacing := h.cellOf(c)
		entry, cross := float64(k/perEntry), float64(k%perEntry)
		p := h.layout.Padding

		var topLeft recycle.Vec2
		if h.horizontal {
			topLeft = recycle.Vec2{X: p.Left + entry*(cell.X+spacing.X), Y: p.Top + cross*(cell.Y+spacing.Y)}
		} else {
			topLeft = recycle.Vec2{X: p.Left + cross*(cell.X+spacing.X), Y: p.Top + entry*(cell.Y+spacing.Y)}
		}
		c.pos = recycle.Vec2{X: topLeft.X + cell.X/2, Y: -(topLeft.Y + cell.Y/2)}

		natural.X = max(natural.X, topLeft.X+cell.X+p.Right)
		natural.Y = max(natural.Y, topLeft.Y+cell.Y+p.Bottom)
		k++
	}

	if h.fitter {
		h.content = natural
	}
}

func (h *Host) perEntry() int {
	if h.layout.Kind != recycle.LayoutGrid {
		return 1
	}
	if h.layout.Constraint != recycle.ConstraintFlexible {
		return max(1, h.layout.ConstraintCount)
	}
	cross := h.layout.CellSize.Across(h.horizontal) + h.layout.GridSpacing.Across(h.horizontal)
	if cross <= 0 {
		return 1
	}
	return max(1, int(h.Viewport().Across(h.horizontal)/cross))
}

func (h *Host) cellOf(c *Cell) (size, spacing recycle.Vec2) {
	if h.layout.Kind == recycle.LayoutGrid {
		return h.layout.CellSize, h.layout.GridSpacing
	}
	if h.horizontal {
		spacing.X = h.layout.Spacing
	} else {
		spacing.Y = h.layout.Spacing
	}
	return c.size, spacing
}

func (h *Host) Subscribe(fn func(recycle.Vec2)) func() {
	id := h.nextID
	h.nextID++
	h.listeners = append(h.listeners, listener{id: id, fn: fn})
	return func() {
		h.listeners = slices.DeleteFunc(h.listeners, func(l listener) bool { return l.id == id })
	}
}

// Scroll is the distance scrolled from the top (or left) in cells.
func (h *Host) Scroll() float64 {
	return h.scroll
}

func (h *Host) MaxScroll() float64 {
	return max(0, h.content.Along(h.horizontal)-h.Viewport().Along(h.horizontal))
}

// Normalized returns the scroll position in [0, 1] per axis. Like most
// scroll views, vertical 1 is the top.
func (h *Host) Normalized() recycle.Vec2 {
	m := h.MaxScroll()
	if m == 0 {
		return h.ContentPivot()
	}
	if h.horizontal {
		return recycle.Vec2{X: h.scroll / m, Y: 1}
	}
	return recycle.Vec2{X: 0, Y: 1 - h.scroll/m}
}

func (h *Host) SetNormalizedPosition(v recycle.Vec2) {
	if h.horizontal {
		h.ScrollTo(v.X * h.MaxScroll())
		return
	}
	h.ScrollTo((1 - v.Y) * h.MaxScroll())
}

// ScrollBy moves the viewport delta cells along the scroll axis.
func (h *Host) ScrollBy(delta float64) {
	h.ScrollTo(h.scroll + delta)
}

// ScrollTo moves the viewport and notifies subscribers if it moved.
func (h *Host) ScrollTo(s float64) {
	if h.scrollTo(s) {
		h.notify()
	}
}

func (h *Host) scrollTo(s float64) bool {
	s = min(max(0, math.Round(s)), h.MaxScroll())
	if s == h.scroll {
		return false
	}
	h.scroll = s
	return true
}

func (h *Host) notify() {
	normalized := h.Normalized()
	for _, l := range slices.Clone(h.listeners) {
		l.fn(normalized)
	}
}

// Draw paints every active cell that intersects the viewport onto scr.
// Cells hanging over an edge are clipped.
func (h *Host) Draw(scr uv.Screen, area uv.Rectangle) {
	off := h.ContentOffset()
	for _, c := range h.children {
		if !c.active {
			continue
		}
		p := off.Add(c.pos)
		left := int(math.Round(float64(h.width)/2 + p.X - c.size.X/2))
		top := int(math.Round(float64(h.height)/2 - p.Y - c.size.Y/2))
		h.drawCell(scr, area, c, left, top)
	}
}

func (h *Host) drawCell(scr uv.Screen, area uv.Rectangle, c *Cell, left, top int) {
	x0, x1 := max(0, left), min(h.width, left+c.Width())
	if x0 >= x1 {
		return
	}
	for row, line := range strings.Split(c.view, "\n") {
		if row >= c.Height() {
			break
		}
		y := top + row
		if y < 0 || y >= h.height {
			continue
		}
		segment := ansi.Cut(line, x0-left, x1-left)
		uv.NewStyledString(segment).Draw(scr, uv.Rect(area.Min.X+x0, area.Min.Y+y, x1-x0, 1))
	}
}

// Render draws the viewport into a fresh screen buffer and returns its lines.
func (h *Host) Render() string {
	if h.width <= 0 || h.height <= 0 {
		return ""
	}
	scr := uv.NewScreenBuffer(h.width, h.height)
	h.Draw(scr, uv.Rect(0, 0, h.width, h.height))
	return strings.ReplaceAll(scr.Render(), "\r\n", "\n")
}
