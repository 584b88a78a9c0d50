package core

import "image/color"

// PaletteProvider is implemented by sims with more than two cell states.
// Entry v of the palette is the color of state v. Front ends fall back to an
// on/off rendering for sims without one.
type PaletteProvider interface {
	Palette() []color.RGBA
}
