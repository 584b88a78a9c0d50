package array2d

import (
	"iter"

	"mad-grid/pkg/geom"
)

// View is a read-only window onto part of an array. It is cheap to copy.
// Slices returned by Line and Lines alias the array and must not be written.
type View[T any, S geom.Space] struct {
	g grid[T, S, shared[T]]
}

// Size returns the view's extent.
func (v View[T, S]) Size() geom.Size[S] { return v.g.size }

// Stride returns the row stride of the root array.
func (v View[T, S]) Stride() int { return v.g.stride }

// Live reports whether the borrow backing v is still current.
func (v View[T, S]) Live() bool { return v.g.store.live() }

func (v View[T, S]) IndexRange() geom.Rect[S]         { return v.g.size.Rect() }
func (v View[T, S]) Indices() iter.Seq[geom.Index[S]] { return v.g.indices() }
func (v View[T, S]) Get(i geom.Index[S]) (T, bool)    { return v.g.get(i) }
func (v View[T, S]) At(i geom.Index[S]) T             { return v.g.at(i) }
func (v View[T, S]) Line(y int) ([]T, bool)           { return v.g.line(y) }
func (v View[T, S]) Lines() iter.Seq[[]T]             { return v.g.lines() }

// Crop returns a sub-view of r, in v's local coordinates, clamped to v.
func (v View[T, S]) Crop(r IndexRange[S]) View[T, S] { return v.g.crop(r) }

// AsView returns v.
func (v View[T, S]) AsView() View[T, S] { return v.g.crop(Full[S]()) }

func (v View[T, S]) String() string { return v.g.format("View") }

// ViewMut is an exclusive mutable window onto part of an array.
type ViewMut[T any, S geom.Space] struct {
	g grid[T, S, exclusive[T]]
}

// Size returns the view's extent.
func (v ViewMut[T, S]) Size() geom.Size[S] { return v.g.size }

// Stride returns the row stride of the root array.
func (v ViewMut[T, S]) Stride() int { return v.g.stride }

// Live reports whether the borrow backing v is still current.
func (v ViewMut[T, S]) Live() bool { return v.g.store.live() }

func (v ViewMut[T, S]) IndexRange() geom.Rect[S]         { return v.g.size.Rect() }
func (v ViewMut[T, S]) Indices() iter.Seq[geom.Index[S]] { return v.g.indices() }
func (v ViewMut[T, S]) Get(i geom.Index[S]) (T, bool)    { return v.g.get(i) }
func (v ViewMut[T, S]) At(i geom.Index[S]) T             { return v.g.at(i) }
func (v ViewMut[T, S]) Line(y int) ([]T, bool)           { return v.g.line(y) }
func (v ViewMut[T, S]) Lines() iter.Seq[[]T]             { return v.g.lines() }

// Crop returns a read-only sub-view of r, borrowed from v. It ends any
// mutable view previously cropped from v.
func (v ViewMut[T, S]) Crop(r IndexRange[S]) View[T, S] { return v.g.crop(r) }

// AsView returns a read-only view of all of v, borrowed from v.
func (v ViewMut[T, S]) AsView() View[T, S] { return v.g.crop(Full[S]()) }

func (v ViewMut[T, S]) GetMut(i geom.Index[S]) *T       { return getMut(&v.g, i) }
func (v ViewMut[T, S]) Set(i geom.Index[S], val T) bool { return set(&v.g, i, val) }
func (v ViewMut[T, S]) SetAt(i geom.Index[S], val T)    { setAt(&v.g, i, val) }
func (v ViewMut[T, S]) LineMut(y int) ([]T, bool)       { return lineMut(&v.g, y) }
func (v ViewMut[T, S]) LinesMut() iter.Seq[[]T]         { return linesMut(&v.g) }

// CropMut returns a mutable sub-view of r, borrowed from v. It ends every
// view previously cropped from v.
func (v ViewMut[T, S]) CropMut(r IndexRange[S]) ViewMut[T, S] { return cropMut(&v.g, r) }

// AsViewMut returns a mutable view of all of v, borrowed from v.
func (v ViewMut[T, S]) AsViewMut() ViewMut[T, S] { return cropMut(&v.g, Full[S]()) }

func (v ViewMut[T, S]) String() string { return v.g.format("ViewMut") }
