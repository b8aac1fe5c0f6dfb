package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// TextBuilder lays out a single line of styled segments left to right.
type TextBuilder struct {
	dl       *DisplayContext
	segments []textSegment
	x        int
	y        int
	z        int
	maxWidth int
}

type textSegment struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
}

// Text starts a line at (x, y) on layer z.
func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{
		dl:       dl,
		x:        x,
		y:        y,
		z:        z,
		maxWidth: -1,
	}
}

// Within limits the line to width cells; overflowing segments are truncated.
func (tb *TextBuilder) Within(width int) *TextBuilder {
	tb.maxWidth = width
	return tb
}

func (tb *TextBuilder) Write(text string) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text})
	return tb
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{
		text:    text,
		style:   style,
		onClick: onClick,
	})
	return tb
}

func (tb *TextBuilder) Done() {
	x := tb.x
	left := tb.maxWidth

	for _, seg := range tb.segments {
		text := seg.text
		if left >= 0 {
			if left == 0 {
				return
			}
			text = runewidth.Truncate(text, left, "…")
		}
		width := runewidth.StringWidth(text)
		if width == 0 {
			continue
		}

		segRect := layout.Rect(x, tb.y, width, 1)
		tb.dl.AddDraw(segRect, seg.style.Render(text), tb.z)
		if seg.onClick != nil {
			tb.dl.AddInteraction(segRect, seg.onClick, InteractionClick, tb.z)
		}

		x += width
		if left >= 0 {
			left -= width
		}
	}
}
