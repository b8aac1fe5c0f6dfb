package render

import (
	"image/color"

	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/charmbracelet/x/ansi"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// Effect is a post-processing operation that modifies already-rendered cells.
type Effect interface {
	Apply(buf uv.Screen)
	GetZ() int
	GetRect() layout.Rectangle
}

// AttrEffect turns on text attributes for every cell in Rect.
type AttrEffect struct {
	Rect    layout.Rectangle
	Reverse bool
	Faint   bool
	Z       int
}

func (e AttrEffect) Apply(buf uv.Screen) {
	iterateCells(buf, e.Rect, func(cell *uv.Cell) *uv.Cell {
		c := cell.Clone()
		if e.Reverse {
			c.Style.Attrs |= uv.AttrReverse
		}
		if e.Faint {
			c.Style.Attrs |= uv.AttrFaint
		}
		return c
	})
}

func (e AttrEffect) GetZ() int                 { return e.Z }
func (e AttrEffect) GetRect() layout.Rectangle { return e.Rect }

// FillEffect paints Rect with a single styled rune, replacing whatever is there.
type FillEffect struct {
	Rect  layout.Rectangle
	Char  rune
	Style uv.Style
	Z     int
}

func (e FillEffect) Apply(buf uv.Screen) {
	cell := &uv.Cell{Content: string(e.Char), Width: 1, Style: e.Style}
	area := buf.Bounds().Intersect(e.Rect)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			buf.SetCell(x, y, cell)
		}
	}
}

func (e FillEffect) GetZ() int                 { return e.Z }
func (e FillEffect) GetRect() layout.Rectangle { return e.Rect }

// toAnsiColor keeps palette colours as palette escape codes instead of
// upgrading them to 24-bit RGB.
func toAnsiColor(c color.Color) ansi.Color {
	switch c := c.(type) {
	case ansi.BasicColor:
		return c
	case ansi.IndexedColor:
		return c
	case ansi.Color:
		return c
	}
	return nil
}

func lipglossToStyle(ls lipgloss.Style) uv.Style {
	var cs uv.Style
	if _, none := ls.GetForeground().(lipgloss.NoColor); !none {
		cs.Fg = toAnsiColor(ls.GetForeground())
	}
	if _, none := ls.GetBackground().(lipgloss.NoColor); !none {
		cs.Bg = toAnsiColor(ls.GetBackground())
	}
	if ls.GetBold() {
		cs.Attrs |= uv.AttrBold
	}
	if ls.GetFaint() {
		cs.Attrs |= uv.AttrFaint
	}
	if ls.GetReverse() {
		cs.Attrs |= uv.AttrReverse
	}
	return cs
}

// iterateCells rewrites every cell of rect that exists in buf. Placeholder
// cells of wide graphemes are skipped so the leading cell is not blanked.
func iterateCells(buf uv.Screen, rect layout.Rectangle, transform func(*uv.Cell) *uv.Cell) {
	rect = rect.Intersect(buf.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; {
			cell := buf.CellAt(x, y)
			if cell == nil || cell.Width == 0 {
				x++
				continue
			}
			if c := transform(cell); c != nil {
				buf.SetCell(x, y, c)
			}
			x += max(1, cell.Width)
		}
	}
}
