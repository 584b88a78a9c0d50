package app

import (
	"time"

	timing "mad-grid/internal/core"
	"mad-grid/internal/ui"
	"mad-grid/pkg/core"
)

// maxCatchUp bounds how many ticks one Update may run after a stall.
const maxCatchUp = 4

// Session owns the run state shared by the GUI and terminal front ends:
// pause, single stepping, the tick counter and the visible window.
type Session struct {
	sim      core.Sim
	viewport *Viewport
	timer    *timing.FixedStep
	seed     int64
	tick     uint64
	paused   bool
	stepOnce bool
}

// NewSession resets sim with cfg.Seed and prepares a viewport over it.
func NewSession(sim core.Sim, cfg *Config) *Session {
	return newSession(sim, cfg, time.Now)
}

func newSession(sim core.Sim, cfg *Config, now func() time.Time) *Session {
	s := &Session{
		sim:      sim,
		viewport: NewViewport(sim.Size(), core.Size{Width: cfg.ViewWidth, Height: cfg.ViewHeight}),
		timer:    timing.NewFixedStepClock(cfg.TPS, now),
	}
	s.Reset(cfg.Seed)
	return s
}

// Sim returns the running simulation.
func (s *Session) Sim() core.Sim { return s.sim }

// Viewport returns the visible window.
func (s *Session) Viewport() *Viewport { return s.viewport }

// Tick returns the number of steps since the last reset.
func (s *Session) Tick() uint64 { return s.tick }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// TogglePause flips the paused state.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the paused state.
func (s *Session) Resume() { s.paused = false }

// StepOnce queues a single step for the next Update, even while paused.
func (s *Session) StepOnce() { s.stepOnce = true }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Reset reinitializes the simulation with seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sim.Reset(seed)
	s.tick = 0
	s.stepOnce = false
}

// Update advances the simulation by the number of ticks that are due and
// returns that number. Time spent paused is discarded.
func (s *Session) Update() int {
	due := s.timer.Due(maxCatchUp)
	n := due
	if s.paused {
		n = 0
	}
	if s.stepOnce {
		n = max(n, 1)
		s.stepOnce = false
	}
	for range n {
		s.sim.Step()
		s.tick++
	}
	return n
}

// View returns the visible part of the current generation.
func (s *Session) View() core.View { return s.viewport.Apply(s.sim.Cells()) }

// Status describes the session for the HUD.
func (s *Session) Status() ui.Status {
	return ui.Status{
		Sim:      s.sim.Name(),
		Tick:     s.tick,
		Paused:   s.paused,
		World:    s.sim.Size(),
		Viewport: s.viewport.Rect(),
	}
}
