package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"mad-grid/internal/app"
	"mad-grid/internal/term"
	"mad-grid/pkg/core"
	_ "mad-grid/pkg/sims/briansbrain"
	_ "mad-grid/pkg/sims/elementary"
	_ "mad-grid/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.TPS = 15
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (available: %s)", cfg.Sim, strings.Join(core.Names(), ", "))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	// One row is reserved for the status line.
	w, h := screen.Size()
	if cfg.ViewWidth <= 0 || cfg.ViewWidth > w {
		cfg.ViewWidth = w
	}
	if cfg.ViewHeight <= 0 || cfg.ViewHeight > h-1 {
		cfg.ViewHeight = max(h-1, 1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := app.NewSession(factory(cfg.Params), cfg)
	err = term.Run(ctx, screen, session, term.DefaultPalette)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
