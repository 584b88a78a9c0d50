package app

import (
	"mad-grid/pkg/array2d"
	"mad-grid/pkg/core"
	"mad-grid/pkg/geom"
)

// Viewport is a window of fixed size over a larger world. The window never
// leaves the world; a view larger than the world is shrunk to fit.
type Viewport struct {
	world  core.Size
	view   core.Size
	origin core.Index
}

// NewViewport returns a viewport at the world origin. A non-positive view
// dimension selects the full world extent on that axis.
func NewViewport(world core.Size, view core.Size) *Viewport {
	if view.Width <= 0 || view.Width > world.Width {
		view.Width = world.Width
	}
	if view.Height <= 0 || view.Height > world.Height {
		view.Height = world.Height
	}
	return &Viewport{world: world, view: view}
}

// Pan moves the window by (dx, dy), stopping at the world edges.
func (v *Viewport) Pan(dx, dy int) {
	v.origin = v.origin.Add(geom.Vec[core.Space](dx, dy))
	v.origin.X = max(0, min(v.origin.X, v.world.Width-v.view.Width))
	v.origin.Y = max(0, min(v.origin.Y, v.world.Height-v.view.Height))
}

// Origin returns the world index of the window's top-left cell.
func (v *Viewport) Origin() core.Index { return v.origin }

// Size returns the window extent.
func (v *Viewport) Size() core.Size { return v.view }

// Rect returns the window in world coordinates.
func (v *Viewport) Rect() geom.Rect[core.Space] { return geom.RectFromSize(v.origin, v.view) }

// Scrollable reports whether the window is smaller than the world.
func (v *Viewport) Scrollable() bool { return v.view != v.world }

// Apply crops g to the window.
func (v *Viewport) Apply(g array2d.Grid[uint8, core.Space]) core.View { return g.Crop(v.Rect()) }
