package core

import (
	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"
)

// Space tags coordinates in simulation cell space.
type Space struct{}

type (
	// Grid stores byte-sized cell values in row-major order.
	Grid = array2d.Array2D[uint8, Space]
	// View is a read-only window onto a Grid.
	View = array2d.View[uint8, Space]
	// Index addresses a cell.
	Index = geom.Index[Space]
	// Size describes the dimensions of a simulation grid.
	Size = geom.Size[Space]
)

// Pt returns the cell index (x, y).
func Pt(x, y int) Index { return geom.Pt[Space](x, y) }

// NewGrid allocates a zeroed grid with the given dimensions. Non-positive
// dimensions are raised to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return array2d.New(geom.Sz[Space](w, h), uint8(0))
}

// Wrap applies toroidal wrapping to the provided coordinates.
func Wrap(s Size, x, y int) Index {
	x = (x%s.Width + s.Width) % s.Width
	y = (y%s.Height + s.Height) % s.Height
	return Pt(x, y)
}
