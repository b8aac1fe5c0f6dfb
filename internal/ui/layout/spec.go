package layout

// Spec describes how much of a dimension a box takes when a parent is split.
type Spec interface {
	spec()
}

type fixedSpec int

type fillSpec float64

func (fixedSpec) spec() {}
func (fillSpec) spec()  {}

// Fixed takes exactly n cells, or whatever is left if less.
func Fixed(n int) Spec { return fixedSpec(n) }

// Fill shares the remaining space with other fills, proportionally to weight.
func Fill(weight float64) Spec { return fillSpec(weight) }

// distribute resolves fixed specs first, in order, then hands out
// the remainder to fill specs. The last fill absorbs rounding leftovers.
func distribute(total int, specs []Spec) []int {
	sizes := make([]int, len(specs))
	remaining := max(0, total)
	var weights float64
	lastFill := -1
	for i, s := range specs {
		switch s := s.(type) {
		case fixedSpec:
			sizes[i] = max(0, min(int(s), remaining))
		case fillSpec:
			if s > 0 {
				weights += float64(s)
				lastFill = i
			}
			continue
		}
		remaining -= sizes[i]
	}
	if lastFill < 0 || remaining == 0 {
		return sizes
	}
	left := remaining
	for i, s := range specs {
		f, ok := s.(fillSpec)
		if !ok || f <= 0 {
			continue
		}
		if i == lastFill {
			sizes[i] = left
			break
		}
		sizes[i] = int(float64(remaining) * float64(f) / weights)
		left -= sizes[i]
	}
	return sizes
}
