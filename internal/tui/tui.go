package tui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/recycle/internal/config"
	"github.com/charmbracelet/recycle/internal/data"
	"github.com/charmbracelet/recycle/internal/tui/components/placeholder"
	"github.com/charmbracelet/recycle/internal/tui/exp/list"
	"github.com/charmbracelet/recycle/internal/tui/styles"
	"github.com/charmbracelet/recycle/internal/tui/util"
)

const (
	headerHeight = 1
	statusHeight = 1

	defaultStatusTTL = 3 * time.Second
)

var lastMouseEvent time.Time

func MouseEventFilter(m tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		// trackpad is sending too many requests
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// appModel is the demo: a header with the dataset presets, the recycling
// list and a status line.
type appModel struct {
	width, height int
	keyMap        KeyMap

	cfg     *config.Config
	dataset *data.Dataset
	list    *list.List
	empty   *placeholder.Placeholder
	help    help.Model

	status util.InfoMsg
	preset int
}

// New creates the application model with count items loaded.
func New(cfg *config.Config, count int) (*appModel, error) {
	t := styles.CurrentTheme()
	a := &appModel{
		cfg:     cfg,
		keyMap:  DefaultKeyMap(cfg.Dataset.Presets),
		dataset: data.New(),
		empty:   placeholder.Empty("No items. Pick a preset to fill the list.", t.FgMuted),
		help:    help.New(),
		preset:  -1,
	}

	l, err := list.New(
		cfg.Layout.Recycle,
		a.bind,
		list.WithItemSize(cfg.Layout.ItemWidth, cfg.Layout.ItemHeight),
		list.WithHorizontal(cfg.Layout.Horizontal()),
		list.WithEnableMouse(),
		list.WithOnCreated(func(c *list.Cell, slot int) {
			slog.Debug("Created list cell", "slot", slot, "width", c.Width(), "height", c.Height())
		}),
	)
	if err != nil {
		return nil, err
	}
	a.list = l
	a.list.SetItemsCount(a.dataset.Hydrate(count))
	return a, nil
}

// bind renders the item at index into c.
func (a *appModel) bind(c *list.Cell, index int) {
	item, ok := a.dataset.At(index)
	if !ok {
		c.SetName("")
		c.SetView("")
		return
	}
	t := styles.CurrentTheme()
	c.SetName(item.Name())
	c.SetView(t.Item(item.String(), item.Accent(len(t.ItemAccents)), c.Width(), c.Height()))
}

func (a *appModel) Init() tea.Cmd {
	return a.list.Init()
}

func (a *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.SetWidth(msg.Width)
		return a, a.list.SetSize(msg.Width, a.listHeight())
	case util.InfoMsg:
		a.status = msg
		ttl := msg.TTL
		if ttl == 0 {
			ttl = defaultStatusTTL
		}
		return a, tea.Tick(ttl, func(time.Time) tea.Msg {
			return util.ClearStatusMsg{}
		})
	case util.ClearStatusMsg:
		a.status = util.InfoMsg{}
		return a, nil
	case tea.KeyPressMsg:
		if key.Matches(msg, a.keyMap.Quit) {
			return a, tea.Quit
		}
		for i, b := range a.keyMap.Presets {
			if key.Matches(msg, b) {
				return a, a.load(i)
			}
		}
	}

	_, cmd := a.list.Update(msg)
	return a, cmd
}

// load fills the dataset with the preset at i and hands the new count to
// the list.
func (a *appModel) load(i int) tea.Cmd {
	a.preset = i
	count := a.dataset.Hydrate(a.cfg.Dataset.Presets[i])
	return tea.Batch(
		a.list.SetItemsCount(count),
		util.ReportInfo(fmt.Sprintf("%d elements created and added to the list", count)),
	)
}

func (a *appModel) listHeight() int {
	return max(0, a.height-headerHeight-statusHeight)
}

func (a *appModel) header() string {
	t := styles.CurrentTheme()
	parts := []string{t.Title().Render("recycle")}
	for i, n := range a.cfg.Dataset.Presets {
		if i == len(a.keyMap.Presets) {
			break
		}
		label := fmt.Sprintf("%d %s", i+1, formatCount(n))
		parts = append(parts, t.Button(i == a.preset).Render(label))
	}
	return lipgloss.NewStyle().MaxWidth(a.width).Render(strings.Join(parts, " "))
}

func (a *appModel) statusLine() string {
	t := styles.CurrentTheme()
	if a.status.Msg != "" {
		return t.Status(a.status.Type).MaxWidth(a.width).Render(a.status.Msg)
	}

	res := a.list.Resolution()
	info := fmt.Sprintf("%s items · first %d · pool %d",
		formatCount(a.list.ItemsCount()), a.list.FirstVisible(), res.PoolSize)
	keys := a.help.ShortHelpView(a.keyMap.ShortHelp())
	gap := a.width - lipgloss.Width(info) - lipgloss.Width(keys)
	if gap < 1 {
		return t.Muted().MaxWidth(a.width).Render(info)
	}
	return t.Muted().Render(info) + strings.Repeat(" ", gap) + keys
}

func (a *appModel) render() string {
	body := a.list.View()
	if a.list.ItemsCount() == 0 {
		body = a.empty.Render(a.width, a.listHeight())
	}
	return lipgloss.JoinVertical(lipgloss.Left, a.header(), body, a.statusLine())
}

func (a *appModel) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion
	view.BackgroundColor = styles.CurrentTheme().BgBase
	view.SetContent(a.render())
	return view
}

// formatCount renders round thousands and millions the short way.
func formatCount(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return strconv.Itoa(n/1_000_000) + "M"
	case n >= 1_000 && n%1_000 == 0:
		return strconv.Itoa(n/1_000) + "K"
	}
	return strconv.Itoa(n)
}
