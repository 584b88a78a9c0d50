// Package term renders simulations to a terminal with tcell.
package term

import (
	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen that drawing needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Glyph is how one cell state is shown.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Palette maps cell values to glyphs. Values past the end use the last entry.
type Palette []Glyph

// DefaultPalette covers dead, live and one decaying state.
var DefaultPalette = Palette{
	{Rune: ' ', Style: tcell.StyleDefault},
	{Rune: '█', Style: tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	{Rune: '▒', Style: tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)},
}

func (p Palette) glyph(v uint8) Glyph {
	if len(p) == 0 {
		return Glyph{Rune: ' ', Style: tcell.StyleDefault}
	}
	return p[min(int(v), len(p)-1)]
}

// Draw plots view with one rune per cell starting at the top-left of c. Cells
// that do not fit on the canvas are skipped. It returns the size drawn.
func Draw[S geom.Space](c Canvas, view array2d.Grid[uint8, S], palette Palette) geom.Size[S] {
	cw, ch := c.Size()
	size := view.Size()
	w, h := min(size.Width, cw), min(size.Height, ch)
	y := 0
	for row := range view.Lines() {
		if y >= h {
			break
		}
		for x, v := range row[:max(w, 0)] {
			g := palette.glyph(v)
			c.SetContent(x, y, g.Rune, nil, g.Style)
		}
		y++
	}
	return geom.Sz[S](max(w, 0), max(h, 0))
}

// DrawText writes s on row y from column x, clipped to the canvas width.
func DrawText(c Canvas, x, y int, s string, style tcell.Style) {
	cw, _ := c.Size()
	for _, r := range s {
		if x >= cw {
			return
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
