package demo

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/ui/common"
	"github.com/slideover-tui/slideover/internal/ui/layout"
	"github.com/slideover-tui/slideover/internal/ui/render"
	"github.com/slideover-tui/slideover/internal/ui/slideover"
)

const (
	MinSlider     = 3
	MaxSlider     = 12
	DefaultSlider = 5
)

var _ common.ImmediateModel = (*Sheet)(nil)

// Sheet is the bottom panel of the demo: a card with a drag handle and a
// slider that sets how much of it stays visible when it is lowered.
type Sheet struct {
	Handle       *slideover.Handle
	HandleHeight int

	slider  int
	mounted bool
	region  slideover.Region
}

func NewSheet(handleHeight int) *Sheet {
	h := slideover.NewHandle()
	h.Style = common.DefaultPalette.Get("handle")
	h.DraggingStyle = common.DefaultPalette.Get("handle dragging")
	return &Sheet{
		Handle:       h,
		HandleHeight: max(1, handleHeight),
		slider:       DefaultSlider,
	}
}

// CollapsedHeight keeps the handle and the slider rows visible.
func (s *Sheet) CollapsedHeight() int {
	return s.slider + s.HandleHeight
}

func (s *Sheet) Slider() int {
	return s.slider
}

func (s *Sheet) SetSlider(v int) {
	s.slider = max(MinSlider, min(v, MaxSlider))
}

func (s *Sheet) Grow()   { s.SetSlider(s.slider + 1) }
func (s *Sheet) Shrink() { s.SetSlider(s.slider - 1) }

// Mounted reports whether the sheet is hosted by a container, and where.
func (s *Sheet) Mounted() (slideover.Region, bool) {
	return s.region, s.mounted
}

func (s *Sheet) WillMount(slideover.Region) {}

func (s *Sheet) DidMount(r slideover.Region) {
	s.region = r
	s.mounted = true
}

func (s *Sheet) WillUnmount() {}

func (s *Sheet) DidUnmount() {
	s.mounted = false
}

func (s *Sheet) Init() tea.Cmd {
	return nil
}

func (s *Sheet) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(SliderMsg); ok {
		s.SetSlider(msg.Value)
	}
	return nil
}

func (s *Sheet) ViewRect(dl *render.DisplayContext, box layout.Box) {
	style := common.DefaultPalette.Get("bottom")
	dl.AddFill(box.R, ' ', style, render.ZBottomPanel)
	dl.AddInteraction(box.R, TappedMsg{Panel: s}, render.InteractionClick, render.ZBottomPanel)

	handleBox, body := box.CutTop(s.HandleHeight)
	s.Handle.ViewRect(dl, handleBox)

	content := body.Inset(1, 0)
	if content.Empty() {
		return
	}
	x, y, width := content.R.Min.X, content.R.Min.Y, content.R.Dx()
	dl.Text(x, y, render.ZBottomPanel).
		Within(width).
		Styled(fmt.Sprintf("Collapsed height: %d rows", s.CollapsedHeight()), style).
		Done()
	if y+1 < content.R.Max.Y {
		s.viewSlider(dl, x, y+1, width)
	}
}

// viewSlider draws the track with one clickable cell per value.
func (s *Sheet) viewSlider(dl *render.DisplayContext, x, y, width int) {
	track := common.DefaultPalette.Get("slider")
	z := render.ZBottomPanel + 1
	label := fmt.Sprintf("%2d ", MinSlider)
	tb := dl.Text(x, y, z).Within(width).Styled(label, track)
	for v := MinSlider; v <= MaxSlider; v++ {
		tb.Clickable("─", track, SliderMsg{Value: v})
	}
	tb.Styled(fmt.Sprintf(" %d", MaxSlider), track).Done()

	thumbX := x + len(label) + s.slider - MinSlider
	if thumbX < x+width {
		dl.AddReverse(layout.Rect(thumbX, y, 1, 1), z)
	}
}
