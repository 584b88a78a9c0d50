package render

import (
	"image/color"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"
)

// FillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf. The
// output is packed at the grid's width, so a crop with a wider stride yields a
// contiguous image. buf must hold at least 4*Area bytes.
func FillBinaryRGBA[S geom.Space](buf []byte, cells array2d.Grid[uint8, S], on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	base := 0
	for row := range cells.Lines() {
		for _, c := range row {
			if c != 0 {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			} else {
				buf[base+0] = uint8(rOff >> 8)
				buf[base+1] = uint8(gOff >> 8)
				buf[base+2] = uint8(bOff >> 8)
				buf[base+3] = uint8(aOff >> 8)
			}
			base += 4
		}
	}
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. Values
// past the end of the palette use its last entry. When the palette is empty the
// buffer is cleared to transparent black.
func FillPaletteRGBA[S geom.Space](buf []byte, cells array2d.Grid[uint8, S], palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*cells.Size().Area()])
		return
	}

	last := len(palette) - 1
	base := 0
	for row := range cells.Lines() {
		for _, c := range row {
			col := palette[min(int(c), last)]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
			base += 4
		}
	}
}
