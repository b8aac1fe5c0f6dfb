package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/slideover-tui/slideover/internal/config"
	"github.com/slideover-tui/slideover/internal/ui/common"
	"github.com/slideover-tui/slideover/internal/ui/demo"
	"github.com/slideover-tui/slideover/internal/ui/gesture"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
	"github.com/slideover-tui/slideover/internal/ui/slideover"
)

const statusTimeout = 2 * time.Second

type Model struct {
	container      *slideover.Container
	header         *demo.Header
	sheet          *demo.Sheet
	keys           keyMap
	animate        bool
	displayContext *render.DisplayContext
	width          int
	height         int
	lastSettle     string
	message        string
}

type statusExpiredMsg struct{}

var _ common.ImmediateModel = (*slideover.Container)(nil)

func (m *Model) Init() tea.Cmd {
	return m.container.Init()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		// Process interactions from DisplayContext first
		if m.displayContext != nil {
			if interactionMsg, handled := m.displayContext.ProcessMouseEvent(msg); handled {
				// A drag has to begin before the release that may follow right
				// behind the press, so it cannot wait for a command round trip.
				if start, ok := interactionMsg.(gesture.DragStartMsg); ok {
					return m.container.Update(start)
				}
				return func() tea.Msg { return interactionMsg }
			}
		}
		return nil
	case gesture.DragStartMsg:
		// Drags only start from a press, above. A stray start has no press
		// behind it and would never see a release.
		return nil
	case tea.MouseMotionMsg, tea.MouseReleaseMsg:
		return m.container.Update(msg)
	case tea.MouseWheelMsg:
		return nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	case demo.TappedMsg:
		return m.container.ExpandTo(msg.Panel, m.animate)
	case demo.SliderMsg:
		cmd := m.container.Update(msg)
		return tea.Batch(cmd, m.flash(fmt.Sprintf("collapsed height %d", m.sheet.CollapsedHeight())))
	case statusExpiredMsg:
		m.message = ""
		return nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil
	}
	return m.container.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		return m.container.CancelDrag()
	case key.Matches(msg, m.keys.ExpandTop):
		return m.container.ExpandTop(m.animate)
	case key.Matches(msg, m.keys.ExpandBottom):
		return m.container.ExpandBottom(m.animate)
	case key.Matches(msg, m.keys.Toggle):
		return m.container.Toggle(m.animate)
	case key.Matches(msg, m.keys.Grow):
		m.sheet.Grow()
		return m.flash(fmt.Sprintf("collapsed height %d", m.sheet.CollapsedHeight()))
	case key.Matches(msg, m.keys.Shrink):
		m.sheet.Shrink()
		return m.flash(fmt.Sprintf("collapsed height %d", m.sheet.CollapsedHeight()))
	}
	return nil
}

// flash shows message in the status line until it times out or is replaced.
func (m *Model) flash(message string) tea.Cmd {
	m.message = message
	return common.Debounce("status", statusTimeout, statusExpiredMsg{})
}

func (m *Model) onSettle(target slideover.Region, finished bool) {
	if finished {
		m.lastSettle = "settled " + target.String()
	} else {
		m.lastSettle = "interrupted"
	}
	log.Printf("settle target=%s finished=%t offset=%.0f", target, finished, m.container.Offset())
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.displayContext = render.NewDisplayContext()
	box := layout.NewBox(layout.Rect(0, 0, m.width, m.height))
	rows := box.V(layout.Fill(1), layout.Fixed(1))
	m.ViewRect(m.displayContext, rows[0])
	m.renderStatus(rows[1])

	screenBuf := uv.NewScreenBuffer(m.width, m.height)
	m.displayContext.Render(screenBuf)
	return strings.ReplaceAll(screenBuf.Render(), "\r", "")
}

// ViewRect draws the container, dimming the top panel while the card is
// being dragged over it.
func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.container.ViewRect(dl, box)
	if m.container.Dragging() {
		top, _ := m.container.Regions()
		dl.AddDim(top.R, render.ZTopPanel+1)
	}
}

func (m *Model) renderStatus(box layout.Box) {
	if box.Empty() {
		return
	}
	style := common.DefaultPalette.Get("status")
	dl := m.displayContext
	dl.AddFill(box.R, ' ', style, render.ZStatus)

	tb := dl.Text(box.R.Min.X, box.R.Min.Y, render.ZStatus).Within(box.R.Dx()).
		Styled(" "+m.container.Region().String(), common.DefaultPalette.Get("status region")).
		Styled(fmt.Sprintf("  offset %.0f", m.container.PresentedOffset()), style)
	if m.container.Dragging() {
		tb.Styled("  dragging", style)
	} else if m.container.Animating() {
		tb.Styled("  settling", style)
	} else if m.lastSettle != "" {
		tb.Styled("  "+m.lastSettle, style)
	}
	if m.message != "" {
		tb.Styled("  "+m.message, style)
	}
	for _, b := range m.keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		tb.Styled(fmt.Sprintf("  %s %s", h.Key, h.Desc), style)
	}
	tb.Done()
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() tea.View {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	v := tea.NewView(w.cachedFrame)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true
	v.WindowTitle = "slideover"
	return v
}

// NewUI builds the demo from config.Current: a header on top and a sheet with
// a drag handle as the card. opts are applied after the config, so they win.
func NewUI(opts ...slideover.Option) *Model {
	cfg := config.Current
	common.DefaultPalette.Update(cfg.UI.Colors)

	m := &Model{
		header:  demo.NewHeader(cfg.Slideover.TopCollapsedHeight),
		sheet:   demo.NewSheet(cfg.Slideover.HandleHeight),
		keys:    newKeyMap(cfg.Keys),
		animate: cfg.Slideover.Animate,
	}
	opts = append([]slideover.Option{
		slideover.WithConfig(cfg.Slideover),
		slideover.WithSettleHandler(m.onSettle),
	}, opts...)
	m.container = slideover.New(m.header, m.sheet, opts...)
	m.container.SetDragHandle(m.sheet.Handle)
	return m
}

func New(opts ...slideover.Option) tea.Model {
	return &wrapper{ui: NewUI(opts...)}
}
