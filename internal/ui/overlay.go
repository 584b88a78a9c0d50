//go:build ebiten

package ui

import (
	"image/color"

	"mad-grid/internal/render"
	"mad-grid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws a minimap of the whole world with the visible window outlined.
// It is only useful when the window is smaller than the world.
type Overlay struct {
	sim     core.Sim
	width   int
	show    bool
	mapImg  *ebiten.Image
	mapBuf  []byte
	pixel   *ebiten.Image
	mapSize core.Size
	palette []color.RGBA
}

// NewOverlay constructs an overlay whose minimap is width pixels wide.
func NewOverlay(sim core.Sim, width int) *Overlay {
	o := &Overlay{sim: sim, width: width, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	if p, ok := sim.(core.PaletteProvider); ok {
		o.palette = p.Palette()
	}
	return o
}

// Update toggles the minimap with M.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.show = !o.show
	}
}

// Draw renders the minimap in the top-left corner of screen.
func (o *Overlay) Draw(screen *ebiten.Image, s Status) {
	if !o.show || s.Viewport.Size() == s.World {
		return
	}
	layout, ok := minimapLayout(s.World, s.Viewport, o.width)
	if !ok {
		return
	}
	if o.mapImg == nil || o.mapSize != s.World {
		o.mapImg = ebiten.NewImage(s.World.Width, s.World.Height)
		o.mapBuf = make([]byte, 4*s.World.Area())
		o.mapSize = s.World
	}
	if o.palette != nil {
		render.FillPaletteRGBA[core.Space](o.mapBuf, o.sim.Cells(), o.palette)
	} else {
		render.FillBinaryRGBA[core.Space](o.mapBuf, o.sim.Cells(), color.RGBA{R: 150, G: 150, B: 160, A: 220}, color.RGBA{R: 8, G: 8, B: 12, A: 200})
	}
	o.mapImg.WritePixels(o.mapBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(layout.scale, layout.scale)
	op.GeoM.Translate(minimapMargin, minimapMargin)
	screen.DrawImage(o.mapImg, op)

	frame := color.RGBA{R: 255, G: 200, B: 60, A: 255}
	r := layout.frame
	o.fillRect(screen, r.Min.X, r.Min.Y, r.Dx(), 1, frame)
	o.fillRect(screen, r.Min.X, r.Max.Y-1, r.Dx(), 1, frame)
	o.fillRect(screen, r.Min.X, r.Min.Y, 1, r.Dy(), frame)
	o.fillRect(screen, r.Max.X-1, r.Min.Y, 1, r.Dy(), frame)
}

func (o *Overlay) fillRect(dst *ebiten.Image, x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
