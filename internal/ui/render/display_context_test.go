package render

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/slideover-tui/slideover/internal/ui/layout"
)

func TestDisplayContext_AddDraw(t *testing.T) {
	dl := NewDisplayContext()
	rect := layout.Rect(0, 0, 10, 1)

	dl.AddDraw(rect, "test", 0)

	draws := drawsOf(dl)
	if len(draws) != 1 {
		t.Fatalf("AddDraw: expected 1 draw op, got %d", len(draws))
	}
	if draws[0].Content != "test" {
		t.Errorf("AddDraw: expected content 'test', got '%s'", draws[0].Content)
	}
}

func TestDisplayContext_BasicRender(t *testing.T) {
	dl := NewDisplayContext()
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Hello", 0)

	buf := uv.NewScreenBuffer(10, 1)
	dl.Render(buf)

	output := buf.Render()
	if !strings.Contains(output, "Hello") {
		t.Errorf("Expected output to contain 'Hello', got: %s", output)
	}
}

func TestDisplayContext_LayeredRender(t *testing.T) {
	dl := NewDisplayContext()

	// Added first but on a higher layer, so it must end up on top.
	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Front", ZBottomPanel)
	dl.AddDraw(layout.Rect(0, 0, 10, 1), "Background", ZTopPanel)

	output := dl.RenderToString(10, 1)
	if !strings.HasPrefix(output, "Front") {
		t.Errorf("Expected output to start with 'Front', got: %s", output)
	}
}

func TestDisplayContext_FillSkipsEmptyRect(t *testing.T) {
	dl := NewDisplayContext()

	dl.AddFill(layout.Rect(0, 0, 0, 3), ' ', lipgloss.NewStyle(), 0)
	if dl.Len() != 0 {
		t.Errorf("expected empty fill to be dropped, got %d ops", dl.Len())
	}

	dl.AddFill(layout.Rect(0, 0, 4, 2), '.', lipgloss.NewStyle(), 0)
	output := dl.RenderToString(4, 2)
	if strings.Count(output, ".") != 8 {
		t.Errorf("expected 8 fill cells, got: %q", output)
	}
}

func TestDisplayContext_EffectsClipToBuffer(t *testing.T) {
	dl := NewDisplayContext()

	dl.AddDraw(layout.Rect(0, 0, 5, 1), "Hello", 0)
	dl.AddReverse(layout.Rect(3, 0, 20, 1), 0)
	dl.AddDim(layout.Rect(-2, -2, 4, 4), 0)

	buf := uv.NewScreenBuffer(10, 1)
	dl.Render(buf)

	if cell := buf.CellAt(4, 0); cell == nil {
		t.Error("Expected cell at (4,0) to exist")
	}
	if got := len(dl.layers) - len(drawsOf(dl)); got != 2 {
		t.Errorf("expected 2 effects, got %d", got)
	}
}

func TestEmptyDisplayContext(t *testing.T) {
	dl := NewDisplayContext()

	buf := uv.NewScreenBuffer(10, 1)
	dl.Render(buf)
	_ = buf.Render()
}

func TestDisplayContext_SameLayerKeepsOrder(t *testing.T) {
	dl := NewDisplayContext()

	dl.AddDraw(layout.Rect(0, 0, 5, 1), "First", 0)
	dl.AddDraw(layout.Rect(0, 0, 3, 1), "Two", 0)
	dl.AddInteraction(layout.Rect(0, 0, 5, 1), testClickMsg{ID: 1}, InteractionClick, 0)
	dl.AddInteraction(layout.Rect(0, 0, 5, 1), testClickMsg{ID: 2}, InteractionClick, 0)
	if dl.Len() != 4 {
		t.Errorf("Expected 4 ops, got %d", dl.Len())
	}

	if output := dl.RenderToString(5, 1); !strings.HasPrefix(output, "Twost") {
		t.Errorf("Expected the later draw on top, got: %s", output)
	}
	result, _ := dl.ProcessMouseEvent(tea.MouseClickMsg{X: 1, Y: 0, Button: tea.MouseLeft})
	if msg, ok := result.(testClickMsg); !ok || msg.ID != 1 {
		t.Errorf("expected the first region to win a tie, got %v", result)
	}
}

// drawsOf returns the draws added to dl, in insertion order.
func drawsOf(dl *DisplayContext) []Draw {
	var draws []Draw
	for _, l := range dl.layers {
		if d, ok := l.(Draw); ok {
			draws = append(draws, d)
		}
	}
	return draws
}
