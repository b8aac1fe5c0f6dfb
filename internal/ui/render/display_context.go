package render

import (
	"cmp"
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

// DisplayContext collects one frame: the layers to paint and the regions
// that react to the mouse. Models add to it while laying themselves out and
// the root renders it once they are done. A new frame gets a new context.
type DisplayContext struct {
	layers       []Effect
	interactions []InteractionOp
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		layers:       make([]Effect, 0, 24),
		interactions: make([]InteractionOp, 0, 8),
	}
}

// AddDraw paints content into rect on layer z.
func (dl *DisplayContext) AddDraw(rect layout.Rectangle, content string, z int) {
	dl.AddEffect(Draw{Rect: rect, Content: content, Z: z})
}

// AddFill fills a rectangle with the provided rune and style.
func (dl *DisplayContext) AddFill(rect layout.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dl.AddEffect(FillEffect{Rect: rect, Char: ch, Style: lipglossToStyle(style), Z: z})
}

func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.layers = append(dl.layers, effect)
}

// AddReverse reverses foreground/background colours in rect.
func (dl *DisplayContext) AddReverse(rect layout.Rectangle, z int) {
	dl.AddEffect(AttrEffect{Rect: rect, Reverse: true, Z: z})
}

// AddDim dims the content in rect.
func (dl *DisplayContext) AddDim(rect layout.Rectangle, z int) {
	dl.AddEffect(AttrEffect{Rect: rect, Faint: true, Z: z})
}

// AddInteraction makes rect answer presses with msg.
func (dl *DisplayContext) AddInteraction(rect layout.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	dl.interactions = append(dl.interactions, InteractionOp{Rect: rect, Msg: msg, Type: typ, Z: z})
}

// Len returns the number of layers and interactions added so far.
func (dl *DisplayContext) Len() int {
	return len(dl.layers) + len(dl.interactions)
}

// Render paints every layer into buf, lowest Z first. Layers on the same Z
// paint in the order they were added.
func (dl *DisplayContext) Render(buf uv.Screen) {
	layers := slices.Clone(dl.layers)
	slices.SortStableFunc(layers, func(a, b Effect) int {
		return cmp.Compare(a.GetZ(), b.GetZ())
	})
	for _, l := range layers {
		l.Apply(buf)
	}
}

// RenderToString renders to a new buffer and returns the final string output.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := uv.NewScreenBuffer(width, height)
	dl.Render(buf)
	return buf.Render()
}

// ProcessMouseEvent routes a mouse press through the registered interactions,
// highest Z first. Motion and release events are not routed here; they
// belong to whoever is tracking the drag that a press started.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	if _, ok := msg.(tea.MouseClickMsg); !ok {
		return nil, false
	}
	interactions := slices.Clone(dl.interactions)
	slices.SortStableFunc(interactions, func(a, b InteractionOp) int {
		return cmp.Compare(b.Z, a.Z)
	})
	return processMouseEvent(interactions, msg)
}
