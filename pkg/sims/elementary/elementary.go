package elementary

import (
	"strconv"

	"mad-grid/pkg/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
// Row 0 holds the newest generation; older rows scroll downwards.
type Elementary struct {
	rule uint8
	grid *core.Grid
	tmp  []uint8
}

// New creates an automaton with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	g := core.NewGrid(w, h)
	return &Elementary{rule: rule, grid: g, tmp: make([]uint8, g.Size().Width)}
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return e.grid.Size() }

// Cells exposes the history.
func (e *Elementary) Cells() core.View { return e.grid.AsView() }

// Rule returns the Wolfram code in use.
func (e *Elementary) Rule() uint8 { return e.rule }

// Reset clears the grid and seeds the top row with a single active cell.
func (e *Elementary) Reset(seed int64) {
	for row := range e.grid.LinesMut() {
		clear(row)
	}
	e.grid.SetAt(core.Pt(e.Size().Width/2, 0), 1)
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	w, h := e.Size().Width, e.Size().Height
	top, _ := e.grid.Line(0)
	copy(e.tmp, top)
	for y := h - 1; y > 0; y-- {
		src, _ := e.grid.Line(y - 1)
		dst, _ := e.grid.LineMut(y)
		copy(dst, src)
	}
	out, _ := e.grid.LineMut(0)
	for x := 0; x < w; x++ {
		left := e.tmp[(x-1+w)%w]
		center := e.tmp[x]
		right := e.tmp[(x+1)%w]
		idx := (left << 2) | (center << 1) | right
		out[x] = (e.rule >> idx) & 1
	}
}

// Parameters reports the active rule.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	s := e.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Rule",
		Params: []core.Parameter{
			{Key: "rule", Label: "Wolfram code", Value: strconv.Itoa(int(e.rule))},
			{Key: "w", Label: "Width", Value: strconv.Itoa(s.Width)},
			{Key: "h", Label: "History", Value: strconv.Itoa(s.Height)},
		},
	}}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height, c.Rule)
	})
}
