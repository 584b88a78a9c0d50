package main

import "testing"

func TestRunScenarioElementary(t *testing.T) {
	res := runScenario(scenario{sim: "elementary", seed: 1}, map[string]string{"w": "16", "h": "4", "rule": "0"}, 5)
	if res.initial != 1 {
		t.Fatalf("initial = %d, want the single seed cell", res.initial)
	}
	// The seed scrolls off the bottom after one step per row.
	if res.final != 0 || res.extinctAt != 4 {
		t.Fatalf("rule 0 result %+v", res)
	}
}

func TestRunScenarioLifeCounts(t *testing.T) {
	res := runScenario(scenario{sim: "life", seed: 7}, map[string]string{"w": "32", "h": "32"}, 10)
	if res.initial == 0 || res.peak < res.final || res.centre > res.final {
		t.Fatalf("inconsistent result %+v", res)
	}
}
