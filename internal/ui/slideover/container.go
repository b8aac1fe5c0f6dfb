package slideover

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/config"
	"github.com/slideover-tui/slideover/internal/ui/animation"
	"github.com/slideover-tui/slideover/internal/ui/gesture"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
)

// Container hosts a top and a bottom panel separated by a draggable
// boundary. The bottom panel is the card: dragging its handle slides it over
// the top panel, and on release it snaps to the top or bottom state.
type Container struct {
	top      Panel
	bottom   Panel
	handle   DragHandle
	engine   *splitEngine
	boundary *Boundary
	animator Animator
	pan      *gesture.Pan
	panner   *panTranslator

	visible  bool
	onScreen bool
	appeared bool
}

type Option func(*Container)

// WithAnimator replaces the default spring animator.
func WithAnimator(a Animator) Option {
	return func(c *Container) { c.animator = a }
}

// WithFlickVelocity sets the speed, in rows per second, a release has to
// exceed to count as a flick.
func WithFlickVelocity(v float64) Option {
	return func(c *Container) { c.boundary.FlickVelocity = v }
}

func WithSpring(duration time.Duration, damping float64) Option {
	return func(c *Container) {
		c.boundary.Spring.Duration = duration
		c.boundary.Spring.Damping = damping
	}
}

// WithClock sets the clock used to time drag samples.
func WithClock(now func() time.Time) Option {
	return func(c *Container) { c.pan.Now = now }
}

func WithSettleHandler(fn func(target Region, finished bool)) Option {
	return func(c *Container) { c.boundary.OnSettle = fn }
}

// WithConfig applies the [slideover] section of the configuration.
func WithConfig(cfg config.SlideoverConfig) Option {
	return func(c *Container) {
		c.boundary.FlickVelocity = cfg.FlickVelocity
		c.boundary.Spring.Duration = cfg.Duration()
		c.boundary.Spring.Damping = cfg.SpringDamping
		if cfg.Animate {
			c.animator = animation.NewSpring(c.engine, cfg.FrameRate)
		} else {
			c.animator = animation.Immediate{}
		}
	}
}

// New creates a container hosting top and bottom. A nil panel is replaced by
// an EmptyPanel.
func New(top, bottom Panel, opts ...Option) *Container {
	c := &Container{
		top:     orEmpty(top),
		bottom:  orEmpty(bottom),
		engine:  newSplitEngine(),
		pan:     gesture.NewPan(),
		visible: true,
	}
	c.boundary = NewBoundary(c.engine, nil, c.Panel)
	c.panner = &panTranslator{boundary: c.boundary}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		c.animator = animation.NewSpring(c.engine, animation.DefaultFrameRate)
	}
	c.boundary.animator = c.animator

	c.mount(c.top, Top)
	c.mount(c.bottom, Bottom)
	c.boundary.apply(c.boundary.CollapsedAnchor(Top))
	return c
}

// NewEmpty creates a container with two empty panels.
func NewEmpty(opts ...Option) *Container {
	return New(nil, nil, opts...)
}

func orEmpty(p Panel) Panel {
	if p == nil {
		return &EmptyPanel{}
	}
	return p
}

// Panel returns the panel hosted in r.
func (c *Container) Panel(r Region) Panel {
	if r == Top {
		return c.top
	}
	return c.bottom
}

func (c *Container) Top() Panel    { return c.top }
func (c *Container) Bottom() Panel { return c.bottom }

// SetTop replaces the top panel. The split offset is left untouched.
func (c *Container) SetTop(p Panel) {
	old := c.top
	c.top = orEmpty(p)
	c.swap(old, c.top, Top)
}

// SetBottom replaces the bottom panel. The split offset is left untouched.
func (c *Container) SetBottom(p Panel) {
	old := c.bottom
	c.bottom = orEmpty(p)
	c.swap(old, c.bottom, Bottom)
}

func (c *Container) swap(old, p Panel, r Region) {
	observer, _ := old.(MountObserver)
	if observer != nil {
		observer.WillUnmount()
	}
	c.engine.Unmount(old)
	if observer != nil {
		observer.DidUnmount()
	}
	c.mount(p, r)
}

func (c *Container) mount(p Panel, r Region) {
	observer, _ := p.(MountObserver)
	if observer != nil {
		observer.WillMount(r)
	}
	c.engine.Mount(p, r)
	if observer != nil {
		observer.DidMount(r)
	}
}

// SetDragHandle moves the drag gesture from the current handle to h. A nil h
// leaves the container without a way to drag.
func (c *Container) SetDragHandle(h DragHandle) {
	if c.handle != nil {
		c.handle.DetachPan(c.pan)
	}
	c.handle = h
	if c.handle != nil {
		c.handle.AttachPan(c.pan)
	}
}

// ExpandTop moves the boundary to the top panel's collapsed anchor.
func (c *Container) ExpandTop(animated bool) tea.Cmd {
	return c.boundary.Expand(Top, animated, nil)
}

// ExpandBottom moves the boundary to the bottom panel's collapsed anchor.
func (c *Container) ExpandBottom(animated bool) tea.Cmd {
	return c.boundary.Expand(Bottom, animated, nil)
}

// ExpandTo expands to p, which must be this container's top or bottom panel.
// Any other panel is a programming error and panics.
func (c *Container) ExpandTo(p Panel, animated bool) tea.Cmd {
	switch p {
	case c.top:
		return c.ExpandTop(animated)
	case c.bottom:
		return c.ExpandBottom(animated)
	}
	panic(fmt.Sprintf("slideover: %T is not presented by this container; can expand only to the top or bottom panel", p))
}

// Toggle expands to the region opposite the current one.
func (c *Container) Toggle(animated bool) tea.Cmd {
	return c.boundary.Expand(c.boundary.CurrentRegion().Opposite(), animated, nil)
}

func (c *Container) Region() Region {
	return c.boundary.CurrentRegion()
}

func (c *Container) Offset() float64 {
	return c.boundary.Offset()
}

// PresentedOffset is the offset currently drawn, which trails Offset while
// an animation runs.
func (c *Container) PresentedOffset() float64 {
	return c.engine.Presented()
}

func (c *Container) Boundary() *Boundary {
	return c.boundary
}

// Regions returns the boxes the panels were last laid out in.
func (c *Container) Regions() (top, bottom layout.Box) {
	return c.engine.Regions()
}

// Dragging reports whether a drag is in progress.
func (c *Container) Dragging() bool {
	return c.pan.Tracking()
}

// Animating reports whether the presented offset is still catching up with
// the model.
func (c *Container) Animating() bool {
	r, ok := c.animator.(interface{ Running() bool })
	return ok && r.Running()
}

// SetVisible shows or hides the container. Becoming visible again counts as a
// new appearance, but only the first one expands to the top.
func (c *Container) SetVisible(visible bool) {
	c.visible = visible
}

// CancelDrag abandons the drag in progress, leaving the boundary where it is.
func (c *Container) CancelDrag() tea.Cmd {
	if !c.pan.Cancel() {
		return nil
	}
	cmd := c.panner.handle(c.pan)
	c.pan.Reset()
	return cmd
}

func (c *Container) Init() tea.Cmd {
	return nil
}

type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

func (c *Container) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case gesture.DragStartMsg:
		if msg.Pan != c.pan || c.handle == nil {
			return nil
		}
		c.pan.Begin(msg.X, msg.Y)
		return c.panner.handle(c.pan)
	case tea.MouseMotionMsg:
		m := msg.Mouse()
		if c.pan.Move(m.X, m.Y) {
			return c.panner.handle(c.pan)
		}
	case tea.MouseReleaseMsg:
		m := msg.Mouse()
		if c.pan.End(m.X, m.Y) {
			cmd := c.panner.handle(c.pan)
			c.pan.Reset()
			return cmd
		}
	case tea.BlurMsg:
		return c.CancelDrag()
	case animation.FrameMsg:
		if u, ok := c.animator.(updater); ok {
			return u.Update(msg)
		}
		return nil
	}

	var cmds []tea.Cmd
	for _, p := range []Panel{c.top, c.bottom} {
		if u, ok := p.(updater); ok {
			cmds = append(cmds, u.Update(msg))
		}
	}
	return tea.Batch(cmds...)
}

// ViewRect lays the container out in box and draws the mounted panels.
func (c *Container) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if !c.visible {
		c.onScreen = false
		return
	}
	c.engine.Layout(box)
	if !c.onScreen {
		c.onScreen = true
		c.willAppear()
	}
	c.didLayout()

	top, bottom := c.engine.Regions()
	if s := c.engine.surface(Top); s != nil && !top.Empty() {
		s.ViewRect(dl, top)
	}
	if s := c.engine.surface(Bottom); s != nil && !bottom.Empty() {
		s.ViewRect(dl, bottom)
	}
}

func (c *Container) willAppear() {
	if c.appeared {
		return
	}
	c.appeared = true
	c.boundary.Expand(Top, false, nil)
}

// didLayout re-anchors the boundary after every layout pass so a resize never
// leaves it at a stale absolute offset. A drag owns the boundary until it is
// handled.
func (c *Container) didLayout() {
	if c.pan.IsTouchDown() {
		return
	}
	c.boundary.reanchor()
}
