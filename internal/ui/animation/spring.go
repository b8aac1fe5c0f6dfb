// Package animation interpolates a single presented value towards its model
// value with a damped spring, one frame tick at a time.
package animation

import (
	"math"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/harmonica"
)

const (
	DefaultDuration  = 400 * time.Millisecond
	DefaultDamping   = 0.9
	DefaultFrameRate = 60
	// NeutralVelocity is used when no meaningful initial velocity exists.
	NeutralVelocity = 1.0

	settleEpsilon = 0.01
	// settleFactor relates duration to the angular frequency of an
	// underdamped spring that settles (within ~2%) in that duration.
	settleFactor = 4.0
)

// Layer is the animated property. Target is the model value that layout
// mutations write; Presented is what gets drawn.
type Layer interface {
	Target() float64
	Presented() float64
	SetPresented(v float64)
}

// Params describe one spring transition.
type Params struct {
	Duration time.Duration
	Damping  float64
	// InitialVelocity is normalised: 1 means covering the full travel
	// distance in one second.
	InitialVelocity float64
}

func DefaultParams() Params {
	return Params{Duration: DefaultDuration, Damping: DefaultDamping, InitialVelocity: NeutralVelocity}
}

// FrameMsg advances the animation with the matching id.
type FrameMsg struct {
	id int
}

type transition struct {
	id         int
	to         float64
	pos, vel   float64
	elapsed    time.Duration
	duration   time.Duration
	spring     harmonica.Spring
	completion func(finished bool)
}

// Spring runs at most one transition at a time on a Layer. Starting a new one
// begins from the current presented value and completes the previous one with
// finished=false.
type Spring struct {
	layer   Layer
	frame   time.Duration
	nextID  int
	current *transition
}

func NewSpring(layer Layer, frameRate int) *Spring {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Spring{
		layer: layer,
		frame: time.Second / time.Duration(frameRate),
	}
}

// Running reports whether a transition is in flight.
func (s *Spring) Running() bool {
	return s.current != nil
}

// Animate applies mutate to the model and animates the presented value from
// where it was to the new target. completion is called exactly once.
func (s *Spring) Animate(p Params, mutate func(), completion func(finished bool)) tea.Cmd {
	s.finish(false)

	from := s.layer.Presented()
	mutate()
	to := s.layer.Target()
	if from == to {
		s.layer.SetPresented(to)
		if completion != nil {
			completion(true)
		}
		return nil
	}
	s.layer.SetPresented(from)

	if p.Duration <= 0 {
		p.Duration = DefaultDuration
	}
	if p.Damping <= 0 || p.Damping > 1 {
		p.Damping = DefaultDamping
	}
	omega := settleFactor / (p.Damping * p.Duration.Seconds())

	s.nextID++
	s.current = &transition{
		id:         s.nextID,
		to:         to,
		pos:        from,
		vel:        p.InitialVelocity * (to - from),
		duration:   p.Duration,
		spring:     harmonica.NewSpring(s.frame.Seconds(), omega, p.Damping),
		completion: completion,
	}
	return s.tick(s.nextID)
}

// Update advances the running transition on FrameMsg.
func (s *Spring) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || s.current == nil || frame.id != s.current.id {
		return nil
	}
	t := s.current

	// Something other than this animation moved the model (a drag, or an
	// immediate expand elsewhere). Relayout has already snapped the layer.
	if s.layer.Target() != t.to {
		s.finish(false)
		return nil
	}

	t.pos, t.vel = t.spring.Update(t.pos, t.vel, t.to)
	t.elapsed += s.frame
	settled := math.Abs(t.pos-t.to) < settleEpsilon && math.Abs(t.vel) < settleEpsilon
	if settled || t.elapsed >= t.duration {
		s.layer.SetPresented(t.to)
		s.finish(true)
		return nil
	}
	s.layer.SetPresented(t.pos)
	return s.tick(t.id)
}

func (s *Spring) finish(finished bool) {
	t := s.current
	if t == nil {
		return
	}
	s.current = nil
	if t.completion != nil {
		t.completion(finished)
	}
}

func (s *Spring) tick(id int) tea.Cmd {
	return tea.Tick(s.frame, func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// Immediate applies every animation at once. It is used when animations are
// disabled in config and by tests that do not care about frames.
type Immediate struct{}

func (Immediate) Animate(_ Params, mutate func(), completion func(finished bool)) tea.Cmd {
	mutate()
	if completion != nil {
		completion(true)
	}
	return nil
}
