package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"mad-grid/internal/app"
	"mad-grid/pkg/array2d"
	"mad-grid/pkg/core"
	_ "mad-grid/pkg/sims/briansbrain"
	_ "mad-grid/pkg/sims/elementary"
	_ "mad-grid/pkg/sims/life"
)

type scenario struct {
	sim  string
	seed int64
}

func (s scenario) String() string { return fmt.Sprintf("%s/seed=%d", s.sim, s.seed) }

type scenarioResult struct {
	scenario
	initial   int
	final     int
	peak      int
	peakStep  int
	centre    int
	extinctAt int
}

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 8, "seeds per simulation")
	sims := flag.String("sims", strings.Join(core.Names(), ","), "comma separated simulations to sweep")
	params := app.Params{}
	flag.Var(params, "set", "simulation parameter as key=value (repeatable)")
	flag.Parse()

	var sets []scenario
	for _, name := range strings.Split(*sims, ",") {
		name = strings.TrimSpace(name)
		if _, ok := core.Sims()[name]; !ok {
			log.Fatalf("unknown sim %q", name)
		}
		for seed := int64(1); seed <= int64(*seeds); seed++ {
			sets = append(sets, scenario{sim: name, seed: seed})
		}
	}

	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps)\n", len(sets), *workers, *steps)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(sc, params, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
		if res.extinctAt >= 0 {
			fmt.Printf("%s died out at step %d\n", res.scenario, res.extinctAt)
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].sim != all[j].sim {
			return all[i].sim < all[j].sim
		}
		return all[i].final > all[j].final
	})
	elapsed := time.Since(start)

	fmt.Printf("\nResults (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for _, res := range all {
		fmt.Printf("%-24s initial=%d final=%d peak=%d@%d centre=%d\n",
			res.scenario, res.initial, res.final, res.peak, res.peakStep, res.centre)
	}
}

func live(v uint8) bool { return v != 0 }

func runScenario(sc scenario, params map[string]string, steps int) scenarioResult {
	sim := core.Sims()[sc.sim](params)
	sim.Reset(sc.seed)

	res := scenarioResult{scenario: sc, extinctAt: -1}
	res.initial = array2d.Count[uint8, core.Space](sim.Cells(), live)
	res.peak = res.initial
	for step := 1; step <= steps; step++ {
		sim.Step()
		n := array2d.Count[uint8, core.Space](sim.Cells(), live)
		if n > res.peak {
			res.peak, res.peakStep = n, step
		}
		if n == 0 && res.extinctAt < 0 {
			res.extinctAt = step
		}
		res.final = n
	}

	size := sim.Size()
	quarter := core.Pt(size.Width/4, size.Height/4)
	centre := sim.Cells().Crop(array2d.Range(quarter, core.Pt(size.Width-quarter.X, size.Height-quarter.Y)))
	res.centre = array2d.Count[uint8, core.Space](centre, live)
	return res
}
