package array2d

import (
	"math"

	"mad-grid/pkg/geom"
)

// IndexRange is any range expression over indices. Normalize converts it to
// the canonical half-open rectangle relative to a grid of the given size. It
// never clamps; crops clamp the result afterwards.
//
// A geom.Rect is an IndexRange and passes through unchanged.
type IndexRange[S geom.Space] interface {
	Normalize(size geom.Size[S]) geom.Rect[S]
}

// Span is the half-open range [Start, End).
type Span[S geom.Space] struct {
	Start, End geom.Index[S]
}

// SpanInclusive is the closed range [Start, End].
type SpanInclusive[S geom.Space] struct {
	Start, End geom.Index[S]
}

// SpanFrom runs from Start to the far corner of the grid.
type SpanFrom[S geom.Space] struct {
	Start geom.Index[S]
}

// SpanTo runs from the origin up to, but excluding, End.
type SpanTo[S geom.Space] struct {
	End geom.Index[S]
}

// SpanToInclusive runs from the origin up to and including End.
type SpanToInclusive[S geom.Space] struct {
	End geom.Index[S]
}

// SpanFull covers the whole grid.
type SpanFull[S geom.Space] struct{}

// Range returns [start, end).
func Range[S geom.Space](start, end geom.Index[S]) Span[S] {
	return Span[S]{Start: start, End: end}
}

// RangeInclusive returns [start, end].
func RangeInclusive[S geom.Space](start, end geom.Index[S]) SpanInclusive[S] {
	return SpanInclusive[S]{Start: start, End: end}
}

// From returns [start, ..).
func From[S geom.Space](start geom.Index[S]) SpanFrom[S] { return SpanFrom[S]{Start: start} }

// To returns [.., end).
func To[S geom.Space](end geom.Index[S]) SpanTo[S] { return SpanTo[S]{End: end} }

// ToInclusive returns [.., end].
func ToInclusive[S geom.Space](end geom.Index[S]) SpanToInclusive[S] {
	return SpanToInclusive[S]{End: end}
}

// Full returns [.., ..).
func Full[S geom.Space]() SpanFull[S] { return SpanFull[S]{} }

func (r Span[S]) Normalize(geom.Size[S]) geom.Rect[S] { return geom.R(r.Start, r.End) }

func (r SpanInclusive[S]) Normalize(geom.Size[S]) geom.Rect[S] {
	return geom.R(r.Start, geom.Pt[S](inclusiveEnd(r.End.X), inclusiveEnd(r.End.Y)))
}

// inclusiveEnd converts an inclusive bound to an exclusive one, saturating at
// math.MaxInt.
func inclusiveEnd(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}

func (r SpanFrom[S]) Normalize(size geom.Size[S]) geom.Rect[S] {
	return geom.R(r.Start, geom.Origin[S]().AddSize(size))
}

func (r SpanTo[S]) Normalize(geom.Size[S]) geom.Rect[S] {
	return geom.R(geom.Origin[S](), r.End)
}

func (r SpanToInclusive[S]) Normalize(size geom.Size[S]) geom.Rect[S] {
	return RangeInclusive(geom.Origin[S](), r.End).Normalize(size)
}

func (SpanFull[S]) Normalize(size geom.Size[S]) geom.Rect[S] { return size.Rect() }
