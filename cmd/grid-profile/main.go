// Profiling:
// go build ./cmd/grid-profile
// ./grid-profile -mode cpu
// go tool pprof -http=":8000" ./grid-profile cpu.pprof

package main

import (
	"flag"
	"log"
	"time"

	"mad-grid/pkg/array2d"
	"mad-grid/pkg/geom"

	"github.com/pkg/profile"
)

type cell struct{}

func main() {
	mode := flag.String("mode", "cpu", "profile to record: cpu or mem")
	size := flag.Int("size", 2048, "grid edge length")
	rounds := flag.Int("rounds", 200, "crop passes over the grid")
	tile := flag.Int("tile", 64, "crop edge length")
	flag.Parse()

	opt := profile.CPUProfile
	if *mode == "mem" {
		opt = profile.MemProfileAllocs
	}
	p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook)
	start := time.Now()
	sum := run(*size, *rounds, *tile)
	p.Stop()
	log.Printf("checksum %d in %s", sum, time.Since(start).Round(time.Millisecond))
}

// run tiles a square grid with mutable crops, bumps every cell through the
// crop rows, then reads it back through read-only crops.
func run(edge, rounds, tile int) int {
	g := array2d.NewFunc(geom.Sz[cell](edge, edge), func(i geom.Index[cell]) uint32 {
		return uint32(i.X ^ i.Y)
	})
	sum := 0
	for range rounds {
		for y := 0; y < edge; y += tile {
			for x := 0; x < edge; x += tile {
				r := geom.RectFromSize(geom.Pt[cell](x, y), geom.Sz[cell](tile, tile))
				for row := range g.CropMut(r).LinesMut() {
					for i := range row {
						row[i]++
					}
				}
			}
		}
		for y := 0; y < edge; y += tile {
			for x := 0; x < edge; x += tile {
				v := g.Crop(array2d.Range(geom.Pt[cell](x, y), geom.Pt[cell](x+tile, y+tile)))
				for row := range v.Lines() {
					for _, c := range row {
						sum += int(c & 1)
					}
				}
			}
		}
	}
	return sum
}
