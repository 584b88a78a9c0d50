package briansbrain

import (
	"testing"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/core"
)

func TestPairIgnitesNeighbors(t *testing.T) {
	b := New(Config{Width: 6, Height: 6, Chance: 8})
	b.Grid().SetAt(core.Pt(2, 2), stateOn)
	b.Grid().SetAt(core.Pt(3, 2), stateOn)

	b.Step()

	want := map[core.Index]uint8{
		core.Pt(2, 2): stateDying,
		core.Pt(3, 2): stateDying,
		core.Pt(2, 1): stateOn,
		core.Pt(3, 1): stateOn,
		core.Pt(2, 3): stateOn,
		core.Pt(3, 3): stateOn,
	}
	cells := b.Cells()
	for i := range cells.Indices() {
		if got := cells.At(i); got != want[i] {
			t.Fatalf("cell %v = %d, want %d\n%v", i, got, want[i], cells)
		}
	}

	b.Step()
	cells = b.Cells()
	if got := cells.At(core.Pt(2, 2)); got != stateDead {
		t.Fatalf("dying cell became %d, want dead", got)
	}
	if got := cells.At(core.Pt(2, 1)); got != stateDying {
		t.Fatalf("firing cell became %d, want dying", got)
	}
}

func TestLoneCellFades(t *testing.T) {
	b := New(Config{Width: 5, Height: 5, Chance: 8})
	b.Grid().SetAt(core.Pt(2, 2), stateOn)
	b.Step()
	b.Step()
	alive := array2d.Count[uint8, core.Space](b.Cells(), func(v uint8) bool { return v != stateDead })
	if alive != 0 {
		t.Fatalf("%d cells still active", alive)
	}
}

func TestResetUsesChance(t *testing.T) {
	b := New(Config{Width: 16, Height: 16, Chance: 1})
	b.Reset(9)
	on := array2d.Count[uint8, core.Space](b.Cells(), func(v uint8) bool { return v == stateOn })
	if on != 256 {
		t.Fatalf("chance 1 lit %d cells, want all", on)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "chance": "0"})
	if c.Width != 10 || c.Height != 256 || c.Chance != 8 {
		t.Fatalf("FromMap = %+v", c)
	}
	if len(New(c).Parameters().Lines()) != 4 {
		t.Fatal("expected a heading and three parameters")
	}
}

func TestPaletteCoversStates(t *testing.T) {
	var _ core.PaletteProvider = (*Brain)(nil)
	p := New(DefaultConfig()).Palette()
	if len(p) != 3 {
		t.Fatalf("palette has %d entries, want one per state", len(p))
	}
	if p[stateOn] == p[stateDying] || p[stateDying] == p[stateDead] {
		t.Fatalf("states share colors: %v", p)
	}
}
