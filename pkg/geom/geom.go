// Package geom provides integer 2D primitives tagged with a coordinate space.
//
// Every type carries a space parameter S. Values from different spaces are
// distinct types, so an Index[Screen] can never be passed where an
// Index[World] is expected, and the leading zero-size field rules out explicit
// conversion between the two as well.
package geom

import "fmt"

// Space constrains coordinate space tags. Tags are usually empty structs.
type Space interface {
	comparable
}

// Unknown is the default space for callers that do not need tagging.
type Unknown struct{}

// Index is a point addressing a cell.
type Index[S Space] struct {
	_    [0]S
	X, Y int
}

// Size is a width/height extent.
type Size[S Space] struct {
	_             [0]S
	Width, Height int
}

// Vector is an offset between two indices.
type Vector[S Space] struct {
	_    [0]S
	X, Y int
}

// Rect is the half-open rectangle [Min, Max).
type Rect[S Space] struct {
	Min, Max Index[S]
}

// Pt returns the index (x, y).
func Pt[S Space](x, y int) Index[S] { return Index[S]{X: x, Y: y} }

// Sz returns the size w×h.
func Sz[S Space](w, h int) Size[S] { return Size[S]{Width: w, Height: h} }

// Vec returns the vector (x, y).
func Vec[S Space](x, y int) Vector[S] { return Vector[S]{X: x, Y: y} }

// R returns the rectangle [min, max).
func R[S Space](min, max Index[S]) Rect[S] { return Rect[S]{Min: min, Max: max} }

// RectFromSize returns the rectangle with the given origin and extent.
func RectFromSize[S Space](origin Index[S], size Size[S]) Rect[S] {
	return Rect[S]{Min: origin, Max: origin.AddSize(size)}
}

// Origin returns (0, 0).
func Origin[S Space]() Index[S] { return Index[S]{} }

// Add translates i by v.
func (i Index[S]) Add(v Vector[S]) Index[S] { return Index[S]{X: i.X + v.X, Y: i.Y + v.Y} }

// Sub returns the vector from o to i.
func (i Index[S]) Sub(o Index[S]) Vector[S] { return Vector[S]{X: i.X - o.X, Y: i.Y - o.Y} }

// AddSize returns i offset by the extent of s.
func (i Index[S]) AddSize(s Size[S]) Index[S] {
	return Index[S]{X: i.X + s.Width, Y: i.Y + s.Height}
}

// Less reports whether i is strictly less than o on both axes.
func (i Index[S]) Less(o Index[S]) bool { return i.X < o.X && i.Y < o.Y }

// LessEq reports whether i is less than or equal to o on both axes.
func (i Index[S]) LessEq(o Index[S]) bool { return i.X <= o.X && i.Y <= o.Y }

// Min returns the componentwise minimum.
func (i Index[S]) Min(o Index[S]) Index[S] { return Index[S]{X: min(i.X, o.X), Y: min(i.Y, o.Y)} }

// Max returns the componentwise maximum.
func (i Index[S]) Max(o Index[S]) Index[S] { return Index[S]{X: max(i.X, o.X), Y: max(i.Y, o.Y)} }

// Clamp limits each coordinate to [0, s] on its axis.
func (i Index[S]) Clamp(s Size[S]) Index[S] {
	return Index[S]{X: clamp(i.X, s.Width), Y: clamp(i.Y, s.Height)}
}

// In reports whether i lies inside r.
func (i Index[S]) In(r Rect[S]) bool { return r.Contains(i) }

func (i Index[S]) String() string { return fmt.Sprintf("(%d, %d)", i.X, i.Y) }

// Area returns Width*Height.
func (s Size[S]) Area() int { return s.Width * s.Height }

// Empty reports whether the size covers no cells.
func (s Size[S]) Empty() bool { return s.Width <= 0 || s.Height <= 0 }

// Contains reports whether i lies in [0, Width)×[0, Height).
func (s Size[S]) Contains(i Index[S]) bool {
	return i.X >= 0 && i.X < s.Width && i.Y >= 0 && i.Y < s.Height
}

// Rect returns the rectangle anchored at the origin.
func (s Size[S]) Rect() Rect[S] { return Rect[S]{Max: Index[S]{X: s.Width, Y: s.Height}} }

func (s Size[S]) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// Add returns v+o.
func (v Vector[S]) Add(o Vector[S]) Vector[S] { return Vector[S]{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vector[S]) Sub(o Vector[S]) Vector[S] { return Vector[S]{X: v.X - o.X, Y: v.Y - o.Y} }

// ToSize reinterprets the vector as an extent.
func (v Vector[S]) ToSize() Size[S] { return Size[S]{Width: v.X, Height: v.Y} }

// ToIndex reinterprets the vector as an offset from the origin.
func (v Vector[S]) ToIndex() Index[S] { return Index[S]{X: v.X, Y: v.Y} }

func (v Vector[S]) String() string { return fmt.Sprintf("<%d, %d>", v.X, v.Y) }

// Size returns Max-Min. It may be negative for a non-canonical rectangle.
func (r Rect[S]) Size() Size[S] { return r.Max.Sub(r.Min).ToSize() }

// Empty reports whether r contains no indices.
func (r Rect[S]) Empty() bool { return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y }

// Contains reports whether i lies in [Min, Max).
func (r Rect[S]) Contains(i Index[S]) bool {
	return r.Min.X <= i.X && i.X < r.Max.X && r.Min.Y <= i.Y && i.Y < r.Max.Y
}

// Intersect returns the largest rectangle inside both r and o. Disjoint
// rectangles yield an empty rectangle anchored at the intersection's min.
func (r Rect[S]) Intersect(o Rect[S]) Rect[S] {
	out := Rect[S]{Min: r.Min.Max(o.Min), Max: r.Max.Min(o.Max)}
	if out.Max.X < out.Min.X {
		out.Max.X = out.Min.X
	}
	if out.Max.Y < out.Min.Y {
		out.Max.Y = out.Min.Y
	}
	return out
}

// Translate moves r by v.
func (r Rect[S]) Translate(v Vector[S]) Rect[S] {
	return Rect[S]{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Normalize returns r. A Rect is already a canonical half-open range, which
// lets it be passed directly to array2d crops.
func (r Rect[S]) Normalize(Size[S]) Rect[S] { return r }

// Canon returns r with its corners swapped as needed so Min <= Max.
func (r Rect[S]) Canon() Rect[S] { return Rect[S]{Min: r.Min.Min(r.Max), Max: r.Min.Max(r.Max)} }

func (r Rect[S]) String() string { return r.Min.String() + "-" + r.Max.String() }

func clamp(n, hi int) int {
	if n < 0 {
		return 0
	}
	if n > hi {
		return hi
	}
	return n
}
