package render

// Z-indexes used by the slideover card. The bottom panel is a card sliding
// over the top panel, so it always stacks above it.
const (
	ZTopPanel    = 0
	ZBottomPanel = 10
	ZHandle      = 20
	ZStatus      = 30
)
