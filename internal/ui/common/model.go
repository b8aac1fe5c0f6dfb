package common

import (
	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

// ImmediateModel is a model that draws itself into a box of a shared display
// context instead of returning a string.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}
