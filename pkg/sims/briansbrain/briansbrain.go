package briansbrain

import (
	"image/color"
	"strconv"

	"mad-grid/pkg/core"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

// Config holds parameters for Brian's Brain.
type Config struct {
	Width  int
	Height int
	// Chance seeds one cell in Chance as firing on reset.
	Chance int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Chance: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, dst := range map[string]*int{"w": &c.Width, "h": &c.Height, "chance": &c.Chance} {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg Config
	cur *core.Grid
	nxt *core.Grid
}

// New creates a Brain simulation with the provided configuration.
func New(cfg Config) *Brain {
	return &Brain{
		cfg: cfg,
		cur: core.NewGrid(cfg.Width, cfg.Height),
		nxt: core.NewGrid(cfg.Width, cfg.Height),
	}
}

// Name identifies the simulation.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() core.Size { return b.cur.Size() }

// Cells exposes the current state.
func (b *Brain) Cells() core.View { return b.cur.AsView() }

// Grid exposes the current state for direct editing.
func (b *Brain) Grid() *core.Grid { return b.cur }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillChance[core.Space](rng, b.cur, b.cfg.Chance, stateOn, stateDead)
}

// Step advances the automaton by one tick.
func (b *Brain) Step() {
	size := b.cur.Size()
	w, h := size.Width, size.Height
	for y := 0; y < h; y++ {
		out, _ := b.nxt.LineMut(y)
		for x := 0; x < w; x++ {
			switch b.cur.At(core.Pt(x, y)) {
			case stateOn:
				out[x] = stateDying
			case stateDying:
				out[x] = stateDead
			default:
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if b.cur.At(core.Wrap(size, x+dx, y+dy)) == stateOn {
							neighbors++
						}
					}
				}
				if neighbors == 2 {
					out[x] = stateOn
				} else {
					out[x] = stateDead
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

var palette = []color.RGBA{
	stateDead:  {R: 0, G: 0, B: 0, A: 255},
	stateOn:    {R: 255, G: 255, B: 255, A: 255},
	stateDying: {R: 60, G: 110, B: 220, A: 255},
}

// Palette colors dying cells apart from firing ones.
func (b *Brain) Palette() []color.RGBA { return palette }

// Parameters reports the active configuration.
func (b *Brain) Parameters() core.ParameterSnapshot {
	s := b.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Board",
		Params: []core.Parameter{
			{Key: "w", Label: "Width", Value: strconv.Itoa(s.Width)},
			{Key: "h", Label: "Height", Value: strconv.Itoa(s.Height)},
			{Key: "chance", Label: "Seed chance", Value: "1/" + strconv.Itoa(b.cfg.Chance), Description: "Probability a cell starts firing"},
		},
	}}}
}

func init() {
	core.Register("briansbrain", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
