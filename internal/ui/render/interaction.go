package render

import (
	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// InteractionType defines what kinds of input an interactive region responds to.
// Multiple types can be combined using bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionDrag
)

// InteractionOp represents an interactive region that responds to input.
type InteractionOp struct {
	Rect layout.Rectangle // The interactive area (absolute coordinates)
	Msg  tea.Msg          // Message to send
	Type InteractionType  // What kind of interaction this supports
	Z    int              // Z-index for overlapping regions (higher = priority)
}

// DragStartCarrier is implemented by messages that need the press position
// of the drag they start.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

func contains(r layout.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

// processMouseEvent expects interactions sorted by priority. Drag regions win
// over click regions, so a handle inside a clickable panel still starts a drag.
func processMouseEvent(interactions []InteractionOp, msg tea.MouseMsg) (tea.Msg, bool) {
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil, false
	}

	for _, interaction := range interactions {
		if interaction.Type&InteractionDrag == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
			continue
		}
		if carrier, ok := interaction.Msg.(DragStartCarrier); ok {
			return carrier.SetDragStart(mouse.X, mouse.Y), true
		}
		return interaction.Msg, true
	}

	for _, interaction := range interactions {
		if interaction.Type&InteractionClick == 0 || !contains(interaction.Rect, mouse.X, mouse.Y) {
			continue
		}
		return interaction.Msg, true
	}
	return nil, false
}
