//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"weighted-ca/internal/app"
	"weighted-ca/internal/core"
	"weighted-ca/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	verbose := flag.Bool("v", false, "log every generation")
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %s)", cfg.Sim, strings.Join(core.SimNames(), ", "))
	}

	sim := factory(cfg.Overrides())
	if *verbose {
		logger := log.New(os.Stderr, "ca: ", log.LstdFlags)
		for _, k := range cfg.SetKeys() {
			logger.Printf("set %s=%s", k, cfg.Set[k])
		}
		if d, ok := sim.(*driver.Driver); ok {
			d.SetLogger(logger)
		}
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("weighted-ca: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
