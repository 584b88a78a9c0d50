//go:build ebiten

package render

import (
	"image/color"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from cell data. The image follows
// the size of the grid it is given, so panning a crop of varying size works.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(max(w, 1), max(h, 1))
}

// Blit uploads binary cells into the painter image and draws it scaled onto dst.
func Blit[S geom.Space](gp *GridPainter, dst *ebiten.Image, cells array2d.Grid[uint8, S], on, off color.Color, scale int) {
	size := cells.Size()
	if size.Empty() {
		return
	}
	gp.resize(size.Width, size.Height)
	FillBinaryRGBA(gp.buf, cells, on, off)
	gp.draw(dst, scale)
}

// BlitPalette is Blit for multi-state cells, colored through palette.
func BlitPalette[S geom.Space](gp *GridPainter, dst *ebiten.Image, cells array2d.Grid[uint8, S], palette []color.RGBA, scale int) {
	size := cells.Size()
	if size.Empty() {
		return
	}
	gp.resize(size.Width, size.Height)
	FillPaletteRGBA(gp.buf, cells, palette)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	gp.img.WritePixels(gp.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
