package array2d

import (
	"fmt"
	"iter"
	"strings"

	"mad-grid/pkg/geom"
)

// grid is the indexing engine shared by Array2D, View and ViewMut. Row y
// starts at y*stride in the backing buffer; only the first size.Width
// elements of each row belong to the grid.
//
// Invariants: stride >= size.Width and, when size.Height > 0,
// len(buf) >= (size.Height-1)*stride + size.Width.
type grid[T any, S geom.Space, B reader[T]] struct {
	store  B
	size   geom.Size[S]
	stride int
}

// offsetOf maps i to a buffer offset without checking bounds.
func (g *grid[T, S, B]) offsetOf(i geom.Index[S]) int { return i.Y*g.stride + i.X }

func (g *grid[T, S, B]) inBounds(i geom.Index[S]) bool { return g.size.Contains(i) }

func (g *grid[T, S, B]) mustContain(i geom.Index[S]) {
	if !g.inBounds(i) {
		panic(fmt.Errorf("%w: index = %v, size = %v", ErrOutOfBounds, i, g.size))
	}
}

func (g *grid[T, S, B]) get(i geom.Index[S]) (T, bool) {
	buf := g.store.items()
	if !g.inBounds(i) {
		var zero T
		return zero, false
	}
	return buf[g.offsetOf(i)], true
}

func (g *grid[T, S, B]) at(i geom.Index[S]) T {
	buf := g.store.items()
	g.mustContain(i)
	return buf[g.offsetOf(i)]
}

// row slices line y out of buf. The slice is capacity-capped so appending to
// it can never overwrite the next row's data.
func (g *grid[T, S, B]) row(buf []T, y int) ([]T, bool) {
	if y < 0 || y >= g.size.Height {
		return nil, false
	}
	if g.size.Width == 0 {
		return buf[:0:0], true
	}
	start := y * g.stride
	end := start + g.size.Width
	return buf[start:end:end], true
}

func (g *grid[T, S, B]) line(y int) ([]T, bool) { return g.row(g.store.items(), y) }

func (g *grid[T, S, B]) lines() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := 0; y < g.size.Height; y++ {
			row, _ := g.line(y)
			if !yield(row) {
				return
			}
		}
	}
}

func (g *grid[T, S, B]) indices() iter.Seq[geom.Index[S]] {
	size := g.size
	return func(yield func(geom.Index[S]) bool) {
		for y := 0; y < size.Height; y++ {
			for x := 0; x < size.Width; x++ {
				if !yield(geom.Pt[S](x, y)) {
					return
				}
			}
		}
	}
}

// bounds normalizes r and clamps both corners to [0, size]. An inverted
// result is a caller bug and panics.
func (g *grid[T, S, B]) bounds(r IndexRange[S]) (start, end geom.Index[S]) {
	rect := r.Normalize(g.size)
	start = rect.Min.Clamp(g.size)
	end = rect.Max.Clamp(g.size)
	if !start.LessEq(end) {
		panic(fmt.Errorf("%w: %v clamps to %v-%v", ErrInvertedRange, rect, start, end))
	}
	return start, end
}

// span returns the part of buf backing [start, end). The last row stops at
// end.X rather than running on to the next full stride.
func (g *grid[T, S, B]) span(buf []T, start, end geom.Index[S]) []T {
	if start.X == end.X || start.Y == end.Y {
		return buf[:0:0]
	}
	lo := g.offsetOf(start)
	hi := (end.Y-1)*g.stride + end.X
	return buf[lo:hi:hi]
}

func (g *grid[T, S, B]) crop(r IndexRange[S]) View[T, S] {
	start, end := g.bounds(r)
	buf, t := g.store.share()
	return View[T, S]{g: grid[T, S, shared[T]]{
		store:  shared[T]{buf: g.span(buf, start, end), ticket: t},
		size:   end.Sub(start).ToSize(),
		stride: g.stride,
	}}
}

func (g *grid[T, S, B]) format(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%v]", name, g.size)
	for row := range g.lines() {
		fmt.Fprintf(&b, "\n%v", row)
	}
	return b.String()
}

// The mutating half of the engine is written as functions so it can demand
// writable storage.

func getMut[T any, S geom.Space, B writer[T]](g *grid[T, S, B], i geom.Index[S]) *T {
	buf := g.store.mutItems()
	if !g.inBounds(i) {
		return nil
	}
	return &buf[g.offsetOf(i)]
}

func set[T any, S geom.Space, B writer[T]](g *grid[T, S, B], i geom.Index[S], v T) bool {
	p := getMut(g, i)
	if p == nil {
		return false
	}
	*p = v
	return true
}

func setAt[T any, S geom.Space, B writer[T]](g *grid[T, S, B], i geom.Index[S], v T) {
	buf := g.store.mutItems()
	g.mustContain(i)
	buf[g.offsetOf(i)] = v
}

func lineMut[T any, S geom.Space, B writer[T]](g *grid[T, S, B], y int) ([]T, bool) {
	return g.row(g.store.mutItems(), y)
}

func linesMut[T any, S geom.Space, B writer[T]](g *grid[T, S, B]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for y := 0; y < g.size.Height; y++ {
			row, _ := lineMut(g, y)
			if !yield(row) {
				return
			}
		}
	}
}

func cropMut[T any, S geom.Space, B writer[T]](g *grid[T, S, B], r IndexRange[S]) ViewMut[T, S] {
	start, end := g.bounds(r)
	buf, t := g.store.claim()
	return ViewMut[T, S]{g: grid[T, S, exclusive[T]]{
		store:  exclusive[T]{buf: g.span(buf, start, end), ticket: t, sub: t.sub()},
		size:   end.Sub(start).ToSize(),
		stride: g.stride,
	}}
}
