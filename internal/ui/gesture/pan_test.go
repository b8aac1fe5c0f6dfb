package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestPan() (*Pan, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	p := NewPan()
	p.Now = clock.Now
	return p, clock
}

func TestPan_PhasesInOrder(t *testing.T) {
	p, _ := newTestPan()
	assert.Equal(t, Possible, p.Phase())
	assert.False(t, p.Tracking())

	p.Begin(5, 10)
	assert.Equal(t, Began, p.Phase())
	assert.True(t, p.IsTouchDown())

	require.True(t, p.Move(5, 12))
	assert.Equal(t, Changed, p.Phase())

	require.True(t, p.End(5, 13))
	assert.Equal(t, Ended, p.Phase())
	assert.False(t, p.Tracking())
	assert.True(t, p.IsTouchDown(), "ended counts as touch down until reset")

	p.Reset()
	assert.Equal(t, Possible, p.Phase())
	assert.False(t, p.IsTouchDown())
}

func TestPan_MoveWithoutBeginIsIgnored(t *testing.T) {
	p, _ := newTestPan()

	assert.False(t, p.Move(1, 1))
	assert.False(t, p.End(1, 1))
	assert.False(t, p.Cancel())
	assert.Equal(t, Possible, p.Phase())
}

func TestPan_TranslationIsDeltaAfterReset(t *testing.T) {
	p, _ := newTestPan()
	p.Begin(0, 100)

	p.Move(0, 110)
	_, dy := p.Translation()
	assert.Equal(t, 10, dy)
	p.SetTranslation(0, 0)

	p.Move(0, 105)
	_, dy = p.Translation()
	assert.Equal(t, -5, dy)

	p.Move(2, 125)
	dx, dy := p.Translation()
	assert.Equal(t, 2, dx)
	assert.Equal(t, 15, dy, "without a reset translations accumulate")
}

func TestPan_Velocity(t *testing.T) {
	p, clock := newTestPan()
	p.Begin(0, 0)

	clock.Advance(20 * time.Millisecond)
	p.Move(0, 4)
	clock.Advance(20 * time.Millisecond)
	p.Move(0, 8)

	_, vy := p.Velocity()
	assert.InDelta(t, 200, vy, 0.001)
}

func TestPan_VelocityIgnoresOldSamples(t *testing.T) {
	p, clock := newTestPan()
	p.Begin(0, 0)

	clock.Advance(10 * time.Millisecond)
	p.Move(0, 30)
	// pointer held still before release
	clock.Advance(500 * time.Millisecond)
	p.End(0, 30)

	_, vy := p.Velocity()
	assert.Zero(t, vy)
}

func TestPan_VelocityUpwards(t *testing.T) {
	p, clock := newTestPan()
	p.Begin(0, 50)
	clock.Advance(50 * time.Millisecond)
	p.End(0, 40)

	_, vy := p.Velocity()
	assert.InDelta(t, -200, vy, 0.001)
}

func TestPan_CancelKeepsPhaseUntilReset(t *testing.T) {
	p, _ := newTestPan()
	p.Begin(0, 0)
	p.Move(0, 3)

	require.True(t, p.Cancel())
	assert.Equal(t, Cancelled, p.Phase())
	assert.False(t, p.IsTouchDown())
	assert.False(t, p.Move(0, 9), "a cancelled pan accepts no samples")
}

func TestDragStartMsg_SetDragStart(t *testing.T) {
	p := NewPan()
	msg := DragStartMsg{Pan: p}.SetDragStart(3, 7)

	start, ok := msg.(DragStartMsg)
	require.True(t, ok)
	assert.Same(t, p, start.Pan)
	assert.Equal(t, 3, start.X)
	assert.Equal(t, 7, start.Y)
}
