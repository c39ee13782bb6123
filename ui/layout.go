package ui

import "github.com/hiromitsuiwata/ttop/config"

// Rect is a screen-space rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// margin is the gap between the terminal edge and the panel stack,
// applied on all four sides.
const margin = 1

// ComputeLayout splits the terminal into one rectangle per band,
// stacked top to bottom inside the margin. Fixed bands are honored
// in declaration order; the last flexible band absorbs the leftover
// height. When the terminal is too small, later bands clip to zero
// rather than pushing earlier ones off screen.
func ComputeLayout(prof config.Profile, width, height int) []Rect {
	interiorW := width - 2*margin
	if interiorW < 0 {
		interiorW = 0
	}
	interiorH := height - 2*margin
	if interiorH < 0 {
		interiorH = 0
	}

	heights := bandHeights(prof.Bands, interiorH)

	rects := make([]Rect, len(prof.Bands))
	y := margin
	for i, h := range heights {
		rects[i] = Rect{X: margin, Y: y, W: interiorW, H: h}
		y += h
	}
	return rects
}

// bandHeights allocates interior rows: each band takes
// min(requested, remaining) in order, then the last flexible band
// receives everything still unallocated. The result always sums to
// the interior height when a flexible band exists.
func bandHeights(bands []config.Band, interior int) []int {
	heights := make([]int, len(bands))
	remaining := interior

	flex := -1
	for i, b := range bands {
		if !b.Fixed {
			flex = i
		}
	}

	for i, b := range bands {
		h := b.Rows
		if h > remaining {
			h = remaining
		}
		heights[i] = h
		remaining -= h
	}
	if flex >= 0 && remaining > 0 {
		heights[flex] += remaining
	}
	return heights
}
