//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mad-grid/internal/render"
	"mad-grid/internal/ui"
	"mad-grid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth     = 200
	minimapWidth = 120
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color
	palette  []color.RGBA

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	session := NewSession(sim, cfg)
	view := session.Viewport().Size()
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	var palette []color.RGBA
	if p, ok := sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	return &Game{
		session:  session,
		painter:  render.NewGridPainter(view.Width, view.Height),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, minimapWidth),
		onColor:  color.White,
		offColor: color.Black,
		palette:  palette,
		scale:    scale,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) { g.session.Reset(seed) }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.session.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.session.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.session.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.pan()

	g.overlay.Update()
	g.session.Update()
	g.hud.Update(g.session.Status())
	return nil
}

func (g *Game) pan() {
	step := 1
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		step = 8
	}
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += step
	}
	if dx != 0 || dy != 0 {
		g.session.Viewport().Pan(dx, dy)
	}
}

// Draw renders the visible window, the minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.palette != nil {
		render.BlitPalette[core.Space](g.painter, screen, g.session.View(), g.palette, g.scale)
	} else {
		render.Blit[core.Space](g.painter, screen, g.session.View(), g.onColor, g.offColor, g.scale)
	}
	status := g.session.Status()
	g.overlay.Draw(screen, status)
	view := g.session.Viewport().Size()
	g.hud.Draw(screen, view.Width*g.scale, view.Height*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	view := g.session.Viewport().Size()
	return view.Width*g.scale + g.hud.Width(), view.Height * g.scale
}
