package slideover

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/slideover-tui/slideover/internal/ui/gesture"
	"github.com/slideover-tui/slideover/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_DrawsCentredGrabber(t *testing.T) {
	h := NewHandle()
	output := ansi.Strip(test.RenderImmediate(h, 20, 1))

	assert.Equal(t, strings.Repeat(" ", 6)+strings.Repeat("━", 8), strings.TrimRight(output, " "))
}

func TestHandle_NarrowBoxShrinksGrabber(t *testing.T) {
	h := NewHandle()
	output := ansi.Strip(test.RenderImmediate(h, 3, 1))

	assert.Equal(t, "━━━", strings.TrimRight(output, " "))
}

func TestHandle_InteractiveOnlyWhenAttached(t *testing.T) {
	h := NewHandle()
	dl := test.Layout(h, 20, 1)
	assert.Equal(t, 1, dl.Len(), "nothing but the grabber")
	_, handled := dl.ProcessMouseEvent(test.Click(10, 0))
	assert.False(t, handled)

	pan := gesture.NewPan()
	h.AttachPan(pan)
	dl = test.Layout(h, 20, 1)
	msg, handled := dl.ProcessMouseEvent(test.Click(2, 0))
	require.True(t, handled, "the whole box starts drags, not just the grabber")
	assert.Equal(t, gesture.DragStartMsg{Pan: pan, X: 2, Y: 0}, msg)

	h.DetachPan(gesture.NewPan())
	assert.True(t, h.Interactive(), "detaching a different pan keeps the current one")
	h.DetachPan(pan)
	assert.False(t, h.Interactive())
}
