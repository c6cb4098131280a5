package ising

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func quietLogger() *log.Logger { return log.New(io.Discard, "", 0) }

// newTestState returns a w*h state with every spin up.
func newTestState(t *testing.T, w, h int, temperature float64) *State {
	t.Helper()
	l, err := core.NewLattice(w, h)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.Temperature = temperature
	return NewState(l, NewParams(cfg), core.NewRNG(42))
}

func newTestSimulation(t *testing.T, mutate func(*Config)) *Simulation {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 12
	cfg.Seed = 7
	if mutate != nil {
		mutate(&cfg)
	}
	sim, err := New(cfg, WithLogger(quietLogger()))
	require.NoError(t, err)
	return sim
}
