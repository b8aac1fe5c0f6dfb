package slideover

import (
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// LayoutEngine positions the two regions of a container around a single
// split offset.
type LayoutEngine interface {
	SetSplitOffset(offset float64)
	// ForceImmediateRelayout applies a pending offset change to what is
	// drawn. It does nothing when no change is pending.
	ForceImmediateRelayout()
	Mount(s Surface, r Region)
	Unmount(s Surface)
	ContainerHeight() int
}

// splitEngine is the terminal LayoutEngine. It keeps the model offset set by
// the boundary apart from the presented offset that is drawn, so an animation
// can interpolate the latter. It implements animation.Layer.
type splitEngine struct {
	box         layout.Box
	model       float64
	presented   float64
	needsLayout bool
	mounted     [2]Surface
}

func newSplitEngine() *splitEngine {
	return &splitEngine{}
}

func (e *splitEngine) SetSplitOffset(offset float64) {
	if offset == e.model {
		return
	}
	e.model = offset
	e.needsLayout = true
}

func (e *splitEngine) ForceImmediateRelayout() {
	if !e.needsLayout {
		return
	}
	e.needsLayout = false
	e.presented = e.model
}

func (e *splitEngine) Mount(s Surface, r Region) {
	e.mounted[r] = s
}

func (e *splitEngine) Unmount(s Surface) {
	for i, m := range e.mounted {
		if m == s {
			e.mounted[i] = nil
		}
	}
}

func (e *splitEngine) ContainerHeight() int {
	return e.box.R.Dy()
}

// Layout records the container box. It reports whether the size changed.
func (e *splitEngine) Layout(box layout.Box) bool {
	changed := box.R.Dx() != e.box.R.Dx() || box.R.Dy() != e.box.R.Dy()
	e.box = box
	return changed
}

// Regions returns the boxes of the top and bottom regions at the presented
// offset. The offset is clamped into the container for drawing only.
func (e *splitEngine) Regions() (top, bottom layout.Box) {
	split := layout.NewSplit(e.presented)
	return split.Apply(e.box)
}

func (e *splitEngine) surface(r Region) Surface {
	return e.mounted[r]
}

func (e *splitEngine) Target() float64 {
	return e.model
}

func (e *splitEngine) Presented() float64 {
	return e.presented
}

func (e *splitEngine) SetPresented(v float64) {
	e.presented = v
}
