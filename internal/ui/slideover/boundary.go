package slideover

import (
	"math"

	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/ui/animation"
)

// DefaultFlickVelocity is the release speed, in rows per second, above which
// a drag switches state regardless of where the boundary was released.
const DefaultFlickVelocity = 100

// Animator runs a layout mutation as an animated transition.
type Animator interface {
	Animate(p animation.Params, mutate func(), completion func(finished bool)) tea.Cmd
}

// Boundary owns the split offset between the two regions. The expanded
// state is never stored: it is derived from the offset and the midpoint of
// the two collapsed anchors.
type Boundary struct {
	FlickVelocity float64
	Spring        animation.Params
	// OnSettle is called when an expand completes.
	OnSettle func(target Region, finished bool)

	engine   LayoutEngine
	animator Animator
	panels   func(Region) Panel
	offset   float64
}

func NewBoundary(engine LayoutEngine, animator Animator, panels func(Region) Panel) *Boundary {
	return &Boundary{
		FlickVelocity: DefaultFlickVelocity,
		Spring:        animation.DefaultParams(),
		engine:        engine,
		animator:      animator,
		panels:        panels,
	}
}

// Offset is the current split offset in rows from the container top.
func (b *Boundary) Offset() float64 {
	return b.offset
}

func (b *Boundary) collapsedHeight(r Region) float64 {
	return float64(max(0, b.panels(r).CollapsedHeight()))
}

// CollapsedAnchor is the offset at which the card is expanded to r.
func (b *Boundary) CollapsedAnchor(r Region) float64 {
	if r == Top {
		return b.collapsedHeight(Top)
	}
	return float64(b.engine.ContainerHeight()) - b.collapsedHeight(Bottom)
}

// MidpointThreshold is halfway between the two anchors, rounded half away
// from zero.
func (b *Boundary) MidpointThreshold() float64 {
	return math.Round((b.CollapsedAnchor(Top) + b.CollapsedAnchor(Bottom)) / 2)
}

// CurrentRegion is Top strictly above the threshold; the threshold itself
// belongs to Bottom.
func (b *Boundary) CurrentRegion() Region {
	if b.offset < b.MidpointThreshold() {
		return Top
	}
	return Bottom
}

// Translate moves the boundary by dy rows and relays out immediately. The
// offset is not clamped, so a drag may take it past either anchor or outside
// the container until the release snaps it back.
func (b *Boundary) Translate(dy float64) {
	b.apply(b.offset + dy)
}

// Expand moves the boundary to the anchor of target. velocity is the raw
// release velocity in rows per second, or nil.
func (b *Boundary) Expand(target Region, animated bool, velocity *float64) tea.Cmd {
	dest := b.CollapsedAnchor(target)
	completion := func(finished bool) {
		if b.OnSettle != nil {
			b.OnSettle(target, finished)
		}
	}

	if !animated || b.animator == nil {
		b.apply(dest)
		completion(true)
		return nil
	}

	params := b.Spring
	params.InitialVelocity = b.initialVelocity(dest, velocity)
	return b.animator.Animate(params, func() { b.apply(dest) }, completion)
}

// SnapToNearest expands to whichever region the offset currently lies in.
func (b *Boundary) SnapToNearest(animated bool, velocity *float64) tea.Cmd {
	return b.Expand(b.CurrentRegion(), animated, velocity)
}

// reanchor moves the offset onto the anchor of the region it lies in without
// reporting a settle. Layout passes use it to follow size changes.
func (b *Boundary) reanchor() {
	b.apply(b.CollapsedAnchor(b.CurrentRegion()))
}

// EndDrag decides where a released drag settles. A fast enough release
// towards the other region wins over position; otherwise the nearest region
// is used and the velocity only shapes the animation.
func (b *Boundary) EndDrag(vy float64) tea.Cmd {
	fast := math.Abs(vy) > b.FlickVelocity
	switch region := b.CurrentRegion(); {
	case region == Top && vy > 0 && fast:
		return b.Expand(Bottom, true, &vy)
	case region == Bottom && vy < 0 && fast:
		return b.Expand(Top, true, &vy)
	default:
		return b.SnapToNearest(true, &vy)
	}
}

// initialVelocity normalises the release velocity by the distance left to
// travel, which is what the spring expects. Without a velocity or a distance
// there is nothing to normalise and the neutral value is used.
func (b *Boundary) initialVelocity(dest float64, velocity *float64) float64 {
	if velocity == nil {
		return animation.NeutralVelocity
	}
	distance := dest - b.offset
	if distance == 0 {
		return animation.NeutralVelocity
	}
	return math.Abs(*velocity / distance)
}

func (b *Boundary) apply(offset float64) {
	b.offset = offset
	b.engine.SetSplitOffset(offset)
	b.engine.ForceImmediateRelayout()
}
