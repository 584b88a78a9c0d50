package array2d

import (
	"iter"

	"mad-grid/pkg/geom"
)

// Grid is the read side shared by *Array2D, View and ViewMut.
type Grid[T any, S geom.Space] interface {
	Size() geom.Size[S]
	Get(i geom.Index[S]) (T, bool)
	At(i geom.Index[S]) T
	Line(y int) ([]T, bool)
	Lines() iter.Seq[[]T]
	Indices() iter.Seq[geom.Index[S]]
	Crop(r IndexRange[S]) View[T, S]
	AsView() View[T, S]
}

// GridMut adds write access. It is satisfied by *Array2D and ViewMut.
type GridMut[T any, S geom.Space] interface {
	Grid[T, S]
	GetMut(i geom.Index[S]) *T
	Set(i geom.Index[S], v T) bool
	SetAt(i geom.Index[S], v T)
	LineMut(y int) ([]T, bool)
	LinesMut() iter.Seq[[]T]
	CropMut(r IndexRange[S]) ViewMut[T, S]
	AsViewMut() ViewMut[T, S]
}

var (
	_ GridMut[int, geom.Unknown] = (*Array2D[int, geom.Unknown])(nil)
	_ GridMut[int, geom.Unknown] = ViewMut[int, geom.Unknown]{}
	_ Grid[int, geom.Unknown]    = View[int, geom.Unknown]{}
)
