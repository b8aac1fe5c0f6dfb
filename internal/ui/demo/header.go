package demo

import (
	"github.com/slideover-tui/slideover/internal/ui/common"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

var headerLines = []string{
	"Drag the handle to slide the card over this panel.",
	"Release quickly to flick it to the other end.",
	"Click here to collapse the header, click the card to lower it.",
}

// Header is the top panel of the demo.
type Header struct {
	Title     string
	Lines     []string
	Collapsed int
}

func NewHeader(collapsed int) *Header {
	return &Header{
		Title:     "slideover",
		Lines:     headerLines,
		Collapsed: collapsed,
	}
}

func (h *Header) CollapsedHeight() int {
	return h.Collapsed
}

func (h *Header) ViewRect(dl *render.DisplayContext, box layout.Box) {
	style := common.DefaultPalette.Get("top")
	dl.AddFill(box.R, ' ', style, render.ZTopPanel)
	dl.AddInteraction(box.R, TappedMsg{Panel: h}, render.InteractionClick, render.ZTopPanel)

	content := box.Inset(1, 0)
	width := content.R.Dx()
	y := content.R.Min.Y
	dl.Text(content.R.Min.X, y, render.ZTopPanel).
		Within(width).
		Styled(h.Title, common.DefaultPalette.Get("top title")).
		Done()
	for i, line := range h.Lines {
		row := y + 2 + i
		if row >= content.R.Max.Y {
			break
		}
		dl.Text(content.R.Min.X, row, render.ZTopPanel).Within(width).Styled(line, style).Done()
	}
}
