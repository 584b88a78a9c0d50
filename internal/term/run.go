package term

import (
	"context"
	"fmt"
	"time"

	"mad-grid/internal/app"
	"mad-grid/pkg/core"

	"github.com/gdamore/tcell/v2"
)

const panStep = 4

// Run drives session on screen until the user quits or ctx is done. The
// caller owns screen and must call Fini afterwards.
func Run(ctx context.Context, screen tcell.Screen, session *app.Session, palette Palette) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !apply(session, commandFor(ev.Key(), ev.Rune())) {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			session.Update()
			screen.Clear()
			frame(screen, session, palette)
			screen.Show()
		}
	}
}

// apply executes cmd and reports whether the loop should continue.
func apply(s *app.Session, cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdPause:
		s.TogglePause()
	case CmdStep:
		s.StepOnce()
	case CmdReset:
		s.Reset(s.Seed())
	case CmdPanLeft:
		s.Viewport().Pan(-panStep, 0)
	case CmdPanRight:
		s.Viewport().Pan(panStep, 0)
	case CmdPanUp:
		s.Viewport().Pan(0, -panStep)
	case CmdPanDown:
		s.Viewport().Pan(0, panStep)
	}
	return true
}

// frame draws the visible window with a status line beneath it.
func frame(c Canvas, s *app.Session, palette Palette) {
	drawn := Draw[core.Space](c, s.View(), palette)
	st := s.Status()
	state := "running"
	if st.Paused {
		state = "paused"
	}
	line := fmt.Sprintf(" %s  tick %d  %s  view %v ", st.Sim, st.Tick, state, st.Viewport)
	DrawText(c, 0, drawn.Height, line, tcell.StyleDefault.Reverse(true))
}
