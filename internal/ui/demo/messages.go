package demo

import "github.com/slideover-tui/slideover/internal/ui/slideover"

// TappedMsg is sent when the body of a panel is clicked.
type TappedMsg struct {
	Panel slideover.Panel
}

// SliderMsg sets the sheet's collapsed height from a click on the track.
type SliderMsg struct {
	Value int
}
