package test

import (
	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

type immediateModel interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}

// Layout lays model out in a width x height box and returns the recorded
// display context, so tests can inspect draws and route mouse presses.
func Layout(model immediateModel, width, height int) *render.DisplayContext {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.NewBox(layout.Rect(0, 0, width, height)))
	return dl
}

// RenderImmediate renders an immediate model into a fixed-size buffer.
func RenderImmediate(model immediateModel, width, height int) string {
	dl := Layout(model, width, height)
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// Press builds the key press for a single printable key.
func Press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: string(r), Code: r}
}

func Click(x, y int) tea.MouseClickMsg {
	return tea.MouseClickMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func Motion(x, y int) tea.MouseMotionMsg {
	return tea.MouseMotionMsg{X: x, Y: y, Button: tea.MouseLeft}
}

func Release(x, y int) tea.MouseReleaseMsg {
	return tea.MouseReleaseMsg{X: x, Y: y, Button: tea.MouseLeft}
}
