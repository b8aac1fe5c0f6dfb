package layout

import "math"

// Split represents a horizontal boundary between a top and a bottom area.
// Offset is measured in rows from the top edge of the box being split and is
// allowed to hold any value; Apply clamps it into the box when cutting.
type Split struct {
	Offset float64
}

// NewSplit creates a new Split at the given offset.
func NewSplit(offset float64) *Split {
	return &Split{Offset: offset}
}

// Row returns the boundary row relative to the box top, rounded to the nearest
// cell and clamped to [0, height].
func (s *Split) Row(height int) int {
	row := int(math.Round(s.Offset))
	return max(0, min(row, height))
}

// Apply splits the box at the current offset.
// Returns (top, bottom) boxes.
func (s *Split) Apply(box Box) (top, bottom Box) {
	return box.CutTop(s.Row(box.R.Dy()))
}
