//go:build !ebiten

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
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if !cfg.Headless {
		log.Printf("The GUI build of ising requires the ebiten build tag; running headless.")
		log.Printf("Re-run with `go run -tags ebiten ./cmd/ising` for the interactive window.")
	}

	sim, err := ising.New(cfg.Simulation())
	if err != nil {
		log.Fatalf("ising: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if _, err := app.RunHeadless(ctx, sim, cfg.Ticks, cfg.Report, nil); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
