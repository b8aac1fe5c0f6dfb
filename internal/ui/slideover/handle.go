package slideover

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/slideover-tui/slideover/internal/ui/gesture"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

// DragHandle is a surface that can start drags of the pan it is attached to.
type DragHandle interface {
	Surface
	AttachPan(p *gesture.Pan)
	DetachPan(p *gesture.Pan)
}

const grabberWidth = 8

// Handle draws a grabber bar centred in its box and, while a pan is
// attached, turns the whole box into a drag region.
type Handle struct {
	Style         lipgloss.Style
	DraggingStyle lipgloss.Style
	Glyph         string

	pan *gesture.Pan
}

func NewHandle() *Handle {
	return &Handle{
		Style:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		DraggingStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true),
		Glyph:         "━",
	}
}

func (h *Handle) AttachPan(p *gesture.Pan) {
	h.pan = p
}

func (h *Handle) DetachPan(p *gesture.Pan) {
	if h.pan == p {
		h.pan = nil
	}
}

// Interactive reports whether drags can start on the handle.
func (h *Handle) Interactive() bool {
	return h.pan != nil
}

func (h *Handle) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if box.Empty() {
		return
	}
	style := h.Style
	if h.Interactive() && h.pan.IsTouchDown() {
		style = h.DraggingStyle
	}
	width := min(box.R.Dx(), grabberWidth)
	x := box.R.Min.X + (box.R.Dx()-width)/2
	y := box.R.Min.Y + box.R.Dy()/2
	dl.AddDraw(layout.Rect(x, y, width, 1), style.Render(strings.Repeat(h.Glyph, width)), render.ZHandle)

	if h.Interactive() {
		dl.AddInteraction(box.R, gesture.DragStartMsg{Pan: h.pan}, render.InteractionDrag, render.ZHandle)
	}
}
