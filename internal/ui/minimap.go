package ui

import (
	"image"
	"math"

	"mad-grid/pkg/core"
	"mad-grid/pkg/geom"
)

const minimapMargin = 8

type minimap struct {
	scale float64
	// frame outlines the viewport in screen pixels.
	frame image.Rectangle
}

// minimapLayout fits world into width pixels and maps view onto it. The frame
// is at least one pixel wide on each axis.
func minimapLayout(world core.Size, view geom.Rect[core.Space], width int) (minimap, bool) {
	if world.Empty() || width <= 0 {
		return minimap{}, false
	}
	scale := float64(width) / float64(world.Width)
	at := func(v int) int { return minimapMargin + int(math.Floor(float64(v)*scale)) }
	r := image.Rect(at(view.Min.X), at(view.Min.Y), at(view.Max.X), at(view.Max.Y))
	if r.Dx() < 1 {
		r.Max.X = r.Min.X + 1
	}
	if r.Dy() < 1 {
		r.Max.Y = r.Min.Y + 1
	}
	return minimap{scale: scale, frame: r}, true
}
