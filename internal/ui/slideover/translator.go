package slideover

import (
	tea "charm.land/bubbletea/v2"
	"github.com/slideover-tui/slideover/internal/ui/gesture"
)

// panTranslator feeds pan samples into a Boundary. Every sample is consumed
// as a delta: the pan translation is reset after it is applied.
type panTranslator struct {
	boundary *Boundary
}

func (t *panTranslator) handle(p *gesture.Pan) tea.Cmd {
	switch p.Phase() {
	case gesture.Began, gesture.Changed:
		t.move(p)
	case gesture.Ended:
		t.move(p)
		_, vy := p.Velocity()
		return t.boundary.EndDrag(vy)
	}
	// cancelled: the boundary stays where the last delta left it
	return nil
}

func (t *panTranslator) move(p *gesture.Pan) {
	_, dy := p.Translation()
	if dy != 0 {
		t.boundary.Translate(float64(dy))
	}
	p.SetTranslation(0, 0)
}
