//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"mad-grid/pkg/core"
	_ "mad-grid/pkg/sims/briansbrain"
	_ "mad-grid/pkg/sims/elementary"
	_ "mad-grid/pkg/sims/life"
)

func main() {
	fmt.Fprintf(os.Stderr, "ca: built without a window; rebuild with -tags ebiten to view %v\n", core.Names())
	fmt.Fprintln(os.Stderr, "ca-term runs the same sims in a terminal: go run ./cmd/ca-term")
	os.Exit(2)
}
