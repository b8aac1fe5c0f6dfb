// Package gesture turns raw terminal mouse events into a continuous pan
// gesture: a phase, the translation since it was last reset, and the
// instantaneous velocity at any point of the drag.
package gesture

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

type Phase int

const (
	Possible Phase = iota
	Began
	Changed
	Ended
	Cancelled
)

func (p Phase) String() string {
	switch p {
	case Began:
		return "began"
	case Changed:
		return "changed"
	case Ended:
		return "ended"
	case Cancelled:
		return "cancelled"
	default:
		return "possible"
	}
}

// VelocityWindow is how far back samples are considered when estimating the
// release velocity.
const VelocityWindow = 100 * time.Millisecond

type sample struct {
	x, y int
	at   time.Time
}

// Pan tracks one drag at a time. A Pan is also the identity a drag handle
// reports in DragStartMsg, so a handle can only start drags of the Pan it is
// attached to.
type Pan struct {
	// Now is the clock used to timestamp samples.
	Now func() time.Time

	phase        Phase
	lastX, lastY int
	tx, ty       int
	samples      []sample
}

func NewPan() *Pan {
	return &Pan{Now: time.Now}
}

func (p *Pan) Phase() Phase {
	return p.phase
}

// Tracking reports whether a drag is in progress and expecting more samples.
func (p *Pan) Tracking() bool {
	return p.phase == Began || p.phase == Changed
}

// IsTouchDown is true from the press until the Ended phase has been handled.
func (p *Pan) IsTouchDown() bool {
	return p.phase == Began || p.phase == Changed || p.phase == Ended
}

// Begin starts a drag at the press position.
func (p *Pan) Begin(x, y int) {
	p.phase = Began
	p.lastX, p.lastY = x, y
	p.tx, p.ty = 0, 0
	p.samples = p.samples[:0]
	p.record(x, y)
}

// Move accumulates the translation to (x, y). It returns false when no drag
// is being tracked.
func (p *Pan) Move(x, y int) bool {
	if !p.Tracking() {
		return false
	}
	p.translate(x, y)
	p.phase = Changed
	return true
}

// End applies the final position and moves the pan to Ended.
func (p *Pan) End(x, y int) bool {
	if !p.Tracking() {
		return false
	}
	p.translate(x, y)
	p.phase = Ended
	return true
}

// Cancel abandons the drag. The accumulated translation is kept so the
// handler can inspect it, but no further samples are accepted.
func (p *Pan) Cancel() bool {
	if !p.Tracking() {
		return false
	}
	p.phase = Cancelled
	return true
}

// Reset returns a finished pan to Possible.
func (p *Pan) Reset() {
	p.phase = Possible
	p.tx, p.ty = 0, 0
	p.samples = p.samples[:0]
}

// Translation is the movement since the last SetTranslation call.
func (p *Pan) Translation() (dx, dy int) {
	return p.tx, p.ty
}

// SetTranslation overwrites the accumulated translation. Handlers reset it to
// zero after consuming a sample so every callback sees a delta.
func (p *Pan) SetTranslation(dx, dy int) {
	p.tx, p.ty = dx, dy
}

// Velocity estimates cells per second from the samples recorded within
// VelocityWindow of the latest one. A single sample means the pointer was
// still, which is zero velocity.
func (p *Pan) Velocity() (vx, vy float64) {
	if len(p.samples) < 2 {
		return 0, 0
	}
	last := p.samples[len(p.samples)-1]
	first := last
	for i := len(p.samples) - 2; i >= 0; i-- {
		if last.at.Sub(p.samples[i].at) > VelocityWindow {
			break
		}
		first = p.samples[i]
	}
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return float64(last.x-first.x) / dt, float64(last.y-first.y) / dt
}

func (p *Pan) translate(x, y int) {
	p.tx += x - p.lastX
	p.ty += y - p.lastY
	p.lastX, p.lastY = x, y
	p.record(x, y)
}

func (p *Pan) record(x, y int) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	p.samples = append(p.samples, sample{x: x, y: y, at: now()})
	// keep memory bounded on long drags
	if len(p.samples) > 64 {
		p.samples = append(p.samples[:0], p.samples[len(p.samples)-32:]...)
	}
}

// DragStartMsg is produced when a press lands on a surface the Pan is
// attached to.
type DragStartMsg struct {
	Pan *Pan
	X   int
	Y   int
}

// SetDragStart implements render.DragStartCarrier.
func (m DragStartMsg) SetDragStart(x, y int) tea.Msg {
	m.X = x
	m.Y = y
	return m
}
