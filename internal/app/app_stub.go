//go:build !ebiten

package app

import (
	"errors"

	"mad-grid/pkg/core"
)

var errNoGUI = errors.New("app: window front end not built; rebuild with -tags ebiten or use ca-term")

// Game stands in for the ebiten front end in headless builds. Sessions,
// viewports and configuration stay usable; only the window is missing.
type Game struct{}

// New panics: there is no window to put the session, HUD and minimap in.
func New(core.Sim, *Config) *Game { panic(errNoGUI) }

// Reset does nothing without a session.
func (g *Game) Reset(int64) {}

// Update reports that no window front end was compiled in.
func (g *Game) Update() error { return errNoGUI }

// Draw accepts the screen argument of the window build and draws nothing. The
// ebiten build paints the viewport crop, the minimap and the HUD here.
func (g *Game) Draw(any) {}

// Layout reports an empty screen.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
