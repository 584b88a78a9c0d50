package array2d

import (
	"slices"

	"mad-grid/pkg/geom"
)

// Fill sets every cell of g to v.
func Fill[T any, S geom.Space](g GridMut[T, S], v T) {
	for row := range g.LinesMut() {
		for x := range row {
			row[x] = v
		}
	}
}

// FillFunc sets every cell of g to fn(index), visiting cells in row-major order.
func FillFunc[T any, S geom.Space](g GridMut[T, S], fn func(geom.Index[S]) T) {
	y := 0
	for row := range g.LinesMut() {
		for x := range row {
			row[x] = fn(geom.Pt[S](x, y))
		}
		y++
	}
}

// Copy copies the overlapping top-left region of src into dst, one row at a
// time, and returns the size of the region copied.
func Copy[T any, S geom.Space](dst GridMut[T, S], src Grid[T, S]) geom.Size[S] {
	ds, ss := dst.Size(), src.Size()
	n := geom.Sz[S](min(ds.Width, ss.Width), min(ds.Height, ss.Height))
	if n.Empty() {
		return geom.Sz[S](0, 0)
	}
	for y := 0; y < n.Height; y++ {
		from, _ := src.Line(y)
		to, _ := dst.LineMut(y)
		copy(to[:n.Width], from[:n.Width])
	}
	return n
}

// Equal reports whether a and b have the same size and elements.
func Equal[T comparable, S geom.Space](a, b Grid[T, S]) bool {
	if a.Size() != b.Size() {
		return false
	}
	for y := 0; y < a.Size().Height; y++ {
		ra, _ := a.Line(y)
		rb, _ := b.Line(y)
		if !slices.Equal(ra, rb) {
			return false
		}
	}
	return true
}

// Count returns the number of cells for which pred holds.
func Count[T any, S geom.Space](g Grid[T, S], pred func(T) bool) int {
	n := 0
	for row := range g.Lines() {
		for _, v := range row {
			if pred(v) {
				n++
			}
		}
	}
	return n
}
