package ising

import "math"

// EngineStats counts work done by the engine since construction or Reset.
type EngineStats struct {
	Ticks    int
	Trials   int
	Accepted int
}

// Engine runs a fixed budget of single-spin Metropolis trials per tick.
type Engine struct {
	st    *State
	stats EngineStats
}

// NewEngine returns an engine bound to st.
func NewEngine(st *State) *Engine { return &Engine{st: st} }

// TrialsPerTick is ⌈w·h/2⌉.
func (e *Engine) TrialsPerTick() int {
	n := e.st.Lattice.Len()
	return (n + 1) / 2
}

// Advance performs one tick. Nothing happens while the parameters are paused.
func (e *Engine) Advance() {
	if e.st.Params.Paused() {
		return
	}
	size := e.st.Lattice.Size()
	trials := e.TrialsPerTick()
	rng := e.st.RNG
	for i := 0; i < trials; i++ {
		x := rng.IntN(size.W)
		y := rng.IntN(size.H)
		e.Trial(x, y)
	}
	e.stats.Ticks++
}

// Trial attempts to flip the spin at (x, y) and reports whether it flipped.
func (e *Engine) Trial(x, y int) bool {
	l := e.st.Lattice
	dE := DeltaE(l.Get(x, y), l.NeighborSum(x, y))
	e.stats.Trials++
	if !e.accept(dE) {
		return false
	}
	l.Flip(x, y)
	e.stats.Accepted++
	return true
}

func (e *Engine) accept(dE int) bool {
	if dE <= 0 {
		return true
	}
	t := e.st.Params.Temperature()
	if t == 0 {
		return false
	}
	return e.st.RNG.Float64() <= AcceptProbability(dE, t)
}

// Stats returns the accumulated counters.
func (e *Engine) Stats() EngineStats { return e.stats }

// ResetStats zeroes the counters.
func (e *Engine) ResetStats() { e.stats = EngineStats{} }

// DeltaE is the energy cost of flipping spin given the sum of its four
// neighbours.
func DeltaE(spin int8, neighborSum int) int {
	return 2 * int(spin) * neighborSum
}

// AcceptProbability is exp(-dE/T) for uphill moves. Downhill moves return 1
// and uphill moves at T == 0 return 0.
func AcceptProbability(dE int, t float64) float64 {
	if dE <= 0 {
		return 1
	}
	if t == 0 {
		return 0
	}
	return math.Exp(-float64(dE) / t)
}
