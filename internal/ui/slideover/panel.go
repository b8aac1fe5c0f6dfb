package slideover

import (
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

// Region is one of the two states the card can be expanded to.
type Region int

const (
	Top Region = iota
	Bottom
)

func (r Region) String() string {
	if r == Top {
		return "top"
	}
	return "bottom"
}

// Opposite returns the other region.
func (r Region) Opposite() Region {
	if r == Top {
		return Bottom
	}
	return Top
}

// Surface is anything the layout engine can mount and draw into a box.
type Surface interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}

// Panel is a child hosted by a Container.
//
// CollapsedHeight is the number of rows the panel keeps when the card is
// expanded away from it. It is read every time the collapsed anchors are
// computed and may change between calls. It must not be negative.
//
// Panels are compared by identity, so implementations should be pointers.
type Panel interface {
	Surface
	CollapsedHeight() int
}

// MountObserver is implemented by panels that want mount bookkeeping.
type MountObserver interface {
	WillMount(r Region)
	DidMount(r Region)
	WillUnmount()
	DidUnmount()
}

// DefaultCollapsedHeight is used by EmptyPanel.
const DefaultCollapsedHeight = 5

// EmptyPanel is a placeholder panel that draws nothing.
type EmptyPanel struct{}

func (*EmptyPanel) CollapsedHeight() int { return DefaultCollapsedHeight }

func (*EmptyPanel) ViewRect(*render.DisplayContext, layout.Box) {}
