// Package array2d provides a dense 2D array over a flat buffer, with
// zero-copy rectangular views.
//
// An Array2D owns its buffer. Crop and AsView lend read-only View values;
// CropMut and AsViewMut lend a mutable ViewMut. Views keep the root's row
// stride, so cropping a view is again zero-copy and cropping is associative.
//
// Borrows are checked at runtime. A mutable view is exclusive: claiming one
// invalidates every earlier view of the same array, and touching the array
// directly ends it. Writing to the array directly invalidates all views. A
// stale view panics with ErrStaleView on first use. A ViewMut lends to the
// views cropped from it under the same rules: a new mutable crop ends the
// earlier ones, using the parent ends its mutable children, and writing
// through the parent ends all of them. Ending a borrow ends every view
// borrowed from it.
//
// None of the types are safe for concurrent use.
package array2d

import (
	"fmt"
	"iter"

	"mad-grid/pkg/geom"
)

// Array2D is a grid that owns its row-major buffer. Create one with New,
// NewFunc or FromSlice; the zero value is not usable.
type Array2D[T any, S geom.Space] struct {
	g grid[T, S, owned[T]]
}

// New returns an array of the given size with every cell set to fill.
func New[T any, S geom.Space](size geom.Size[S], fill T) *Array2D[T, S] {
	buf := make([]T, checkedArea(size))
	for i := range buf {
		buf[i] = fill
	}
	return wrap(buf, size)
}

// NewFunc returns an array whose cells are initialised by fn. fn is called
// exactly once per coordinate in row-major order: y outer, x inner.
func NewFunc[T any, S geom.Space](size geom.Size[S], fn func(geom.Index[S]) T) *Array2D[T, S] {
	buf := make([]T, 0, checkedArea(size))
	for y := 0; y < size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			buf = append(buf, fn(geom.Pt[S](x, y)))
		}
	}
	return wrap(buf, size)
}

// FromSlice adopts items as the row-major buffer of an array. The array takes
// ownership; the caller must not use items afterwards.
func FromSlice[T any, S geom.Space](size geom.Size[S], items []T) (*Array2D[T, S], error) {
	if size.Width < 0 || size.Height < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeSize, size)
	}
	if len(items) != size.Area() {
		return nil, fmt.Errorf("%w: %d items for %v", ErrSizeMismatch, len(items), size)
	}
	return wrap(items, size), nil
}

func checkedArea[S geom.Space](size geom.Size[S]) int {
	if size.Width < 0 || size.Height < 0 {
		panic(fmt.Errorf("%w: %v", ErrNegativeSize, size))
	}
	return size.Area()
}

func wrap[T any, S geom.Space](buf []T, size geom.Size[S]) *Array2D[T, S] {
	return &Array2D[T, S]{g: grid[T, S, owned[T]]{
		store:  owned[T]{buf: buf, lease: &lease{}},
		size:   size,
		stride: size.Width,
	}}
}

// Size returns the array's extent.
func (a *Array2D[T, S]) Size() geom.Size[S] { return a.g.size }

// Stride returns the number of buffer elements per row.
func (a *Array2D[T, S]) Stride() int { return a.g.stride }

// IndexRange returns the rectangle covering every valid index.
func (a *Array2D[T, S]) IndexRange() geom.Rect[S] { return a.g.size.Rect() }

// Indices yields every valid index in row-major order.
func (a *Array2D[T, S]) Indices() iter.Seq[geom.Index[S]] { return a.g.indices() }

// Get returns the cell at i, or false if i is out of bounds.
func (a *Array2D[T, S]) Get(i geom.Index[S]) (T, bool) { return a.g.get(i) }

// At returns the cell at i and panics with ErrOutOfBounds if i is outside the array.
func (a *Array2D[T, S]) At(i geom.Index[S]) T { return a.g.at(i) }

// Line returns row y, or false if y is out of range.
func (a *Array2D[T, S]) Line(y int) ([]T, bool) { return a.g.line(y) }

// Lines yields each row in turn.
func (a *Array2D[T, S]) Lines() iter.Seq[[]T] { return a.g.lines() }

// Crop returns a read-only view of r, clamped to the array.
func (a *Array2D[T, S]) Crop(r IndexRange[S]) View[T, S] { return a.g.crop(r) }

// AsView returns a read-only view of the whole array.
func (a *Array2D[T, S]) AsView() View[T, S] { return a.g.crop(Full[S]()) }

// GetMut returns a pointer to the cell at i, or nil if i is out of bounds.
func (a *Array2D[T, S]) GetMut(i geom.Index[S]) *T { return getMut(&a.g, i) }

// Set stores v at i and reports whether i was in bounds.
func (a *Array2D[T, S]) Set(i geom.Index[S], v T) bool { return set(&a.g, i, v) }

// SetAt stores v at i and panics with ErrOutOfBounds if i is outside the array.
func (a *Array2D[T, S]) SetAt(i geom.Index[S], v T) { setAt(&a.g, i, v) }

// LineMut returns row y for writing, or false if y is out of range.
func (a *Array2D[T, S]) LineMut(y int) ([]T, bool) { return lineMut(&a.g, y) }

// LinesMut yields each row for writing.
func (a *Array2D[T, S]) LinesMut() iter.Seq[[]T] { return linesMut(&a.g) }

// CropMut returns an exclusive mutable view of r, clamped to the array.
func (a *Array2D[T, S]) CropMut(r IndexRange[S]) ViewMut[T, S] { return cropMut(&a.g, r) }

// AsViewMut returns an exclusive mutable view of the whole array.
func (a *Array2D[T, S]) AsViewMut() ViewMut[T, S] { return cropMut(&a.g, Full[S]()) }

// Clone returns a deep copy with its own buffer. Views of a are not shared
// with the copy.
func (a *Array2D[T, S]) Clone() *Array2D[T, S] {
	buf := make([]T, len(a.g.store.items()))
	copy(buf, a.g.store.buf)
	return wrap(buf, a.g.size)
}

func (a *Array2D[T, S]) String() string { return a.g.format("Array2D") }
