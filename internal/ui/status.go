package ui

import (
	"fmt"
	"strings"

	"mad-grid/pkg/core"
	"mad-grid/pkg/geom"
)

// Status is the per-frame state shown in the HUD header.
type Status struct {
	Sim      string
	Tick     uint64
	Paused   bool
	World    core.Size
	Viewport geom.Rect[core.Space]
}

// Lines renders the status block followed by any parameters sim exposes.
func (s Status) Lines(sim core.Sim) []string {
	name := s.Sim
	if name == "" {
		name = "sim"
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	out := []string{
		strings.ToUpper(name[:1]) + name[1:],
		fmt.Sprintf("tick %d (%s)", s.Tick, state),
		fmt.Sprintf("world %v", s.World),
	}
	if s.Viewport.Size() != s.World {
		out = append(out, fmt.Sprintf("view %v", s.Viewport))
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		if params := provider.Parameters().Lines(); len(params) > 0 {
			out = append(out, "")
			out = append(out, params...)
		}
	}
	return out
}
