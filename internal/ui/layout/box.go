package layout

import uv "github.com/charmbracelet/ultraviolet"

// Rectangle is an area on screen in cell coordinates.
type Rectangle = uv.Rectangle

// Rect creates a rectangle at (x, y) with the given width and height.
func Rect(x, y, width, height int) Rectangle {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return uv.Rect(x, y, width, height)
}

// Box is a rectangle that can be cut into smaller boxes.
type Box struct {
	R Rectangle
}

func NewBox(r Rectangle) Box {
	return Box{R: r}
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.R.Dx() <= 0 || b.R.Dy() <= 0
}

// CutTop splits off the top n rows. n is clamped to the box height.
func (b Box) CutTop(n int) (top Box, rest Box) {
	h := b.R.Dy()
	n = max(0, min(n, h))
	top = NewBox(Rect(b.R.Min.X, b.R.Min.Y, b.R.Dx(), n))
	rest = NewBox(Rect(b.R.Min.X, b.R.Min.Y+n, b.R.Dx(), h-n))
	return top, rest
}

// Inset shrinks the box by dx columns on each side and dy rows on each side.
func (b Box) Inset(dx, dy int) Box {
	w := max(0, b.R.Dx()-2*dx)
	h := max(0, b.R.Dy()-2*dy)
	return NewBox(Rect(b.R.Min.X+dx, b.R.Min.Y+dy, w, h))
}

// V splits the box vertically (rows) according to specs.
func (b Box) V(specs ...Spec) []Box {
	sizes := distribute(b.R.Dy(), specs)
	boxes := make([]Box, len(sizes))
	y := b.R.Min.Y
	for i, size := range sizes {
		boxes[i] = NewBox(Rect(b.R.Min.X, y, b.R.Dx(), size))
		y += size
	}
	return boxes
}
