//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"ising/internal/app"
	"ising/internal/ising"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := cfg.Simulation()
	sim, err := ising.New(simCfg)
	if err != nil {
		log.Fatalf("ising: %v", err)
	}

	if cfg.Headless {
		runHeadless(sim, cfg)
		return
	}

	game := app.New(sim, cfg.Scale, cfg.HUDWidth, simCfg.Seed)
	if !game.RenderingEnabled() {
		log.Printf("ising: continuing headless")
		runHeadless(sim, cfg)
		return
	}
	size := sim.Size()

	ebiten.SetWindowTitle("ising - 2D ferromagnet")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

func runHeadless(sim *ising.Simulation, cfg *app.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if _, err := app.RunHeadless(ctx, sim, cfg.Ticks, cfg.Report, nil); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
