package life

import (
	"strconv"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/core"
	"mad-grid/pkg/geom"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256}
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
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cur *core.Grid
	nxt *core.Grid
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	return &Life{cur: core.NewGrid(w, h), nxt: core.NewGrid(w, h)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Cells exposes the current generation.
func (l *Life) Cells() core.View { return l.cur.AsView() }

// Grid exposes the current generation for direct editing.
func (l *Life) Grid() *core.Grid { return l.cur }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillBinary[core.Space](rng, l.cur)
}

// Clear kills every cell.
func (l *Life) Clear() {
	array2d.Fill[uint8, core.Space](l.cur, 0)
}

// Stamp copies pattern onto the board with its top-left corner at at. Parts
// of the pattern that fall off the board are dropped. It returns the size of
// the region written.
func (l *Life) Stamp(pattern array2d.Grid[uint8, core.Space], at core.Index) core.Size {
	dst := l.cur.CropMut(geom.RectFromSize(at, pattern.Size()))
	return array2d.Copy[uint8, core.Space](dst, pattern)
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	size := l.cur.Size()
	w, h := size.Width, size.Height
	for y := 0; y < h; y++ {
		up, _ := l.cur.Line((y - 1 + h) % h)
		mid, _ := l.cur.Line(y)
		down, _ := l.cur.Line((y + 1) % h)
		out, _ := l.nxt.LineMut(y)
		for x := 0; x < w; x++ {
			left := (x - 1 + w) % w
			right := (x + 1) % w
			neighbors := up[left] + up[x] + up[right] +
				mid[left] + mid[right] +
				down[left] + down[x] + down[right]
			alive := mid[x] == 1
			out[x] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				out[x] = 1
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

// Parameters reports the board configuration.
func (l *Life) Parameters() core.ParameterSnapshot {
	s := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Board",
		Params: []core.Parameter{
			{Key: "w", Label: "Width", Value: strconv.Itoa(s.Width)},
			{Key: "h", Label: "Height", Value: strconv.Itoa(s.Height)},
		},
	}}}
}

// Glider returns the standard south-east glider.
func Glider() *core.Grid {
	g, _ := array2d.FromSlice(geom.Sz[core.Space](3, 3), []uint8{
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	})
	return g
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return New(c.Width, c.Height)
	})
}
