package ising

import "ising/internal/core"

// State is the shared simulation context handed to every component: the spin
// lattice, the parameter block and the random source. All components of one
// State must be driven from a single goroutine.
type State struct {
	Lattice *core.Lattice
	Params  *Params
	RNG     *core.RNG
}

// NewState bundles the shared pieces. A nil RNG is replaced by a seed-zero
// generator.
func NewState(l *core.Lattice, p *Params, rng *core.RNG) *State {
	if rng == nil {
		rng = core.NewRNG(0)
	}
	return &State{Lattice: l, Params: p, RNG: rng}
}
