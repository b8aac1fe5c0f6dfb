package render

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// Draw paints pre-rendered content into Rect. It shares the Z ordering of
// effects, so an effect on a lower layer never touches a draw above it.
type Draw struct {
	Rect    layout.Rectangle // The area to draw in
	Content string           // Rendered ANSI string (from lipgloss, etc.)
	Z       int              // Z-index for layering (lower = back, higher = front)
}

func (d Draw) Apply(buf uv.Screen) {
	uv.NewStyledString(d.Content).Draw(buf, d.Rect)
}

func (d Draw) GetZ() int                 { return d.Z }
func (d Draw) GetRect() layout.Rectangle { return d.Rect }
