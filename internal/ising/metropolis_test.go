package ising

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func TestTrialsPerTickIsHalfTheLatticeRoundedUp(t *testing.T) {
	require.Equal(t, 8, NewEngine(newTestState(t, 4, 4, 1)).TrialsPerTick())
	require.Equal(t, 5, NewEngine(newTestState(t, 3, 3, 1)).TrialsPerTick())
	require.Equal(t, 1, NewEngine(newTestState(t, 1, 1, 1)).TrialsPerTick())
}

func TestAdvanceRunsTheTrialBudget(t *testing.T) {
	st := newTestState(t, 5, 3, 2)
	e := NewEngine(st)
	e.Advance()
	e.Advance()
	stats := e.Stats()
	require.Equal(t, 2, stats.Ticks)
	require.Equal(t, 2*e.TrialsPerTick(), stats.Trials)
	for _, s := range st.Lattice.Cells() {
		require.Contains(t, []int8{core.SpinUp, core.SpinDown}, s)
	}
}

func TestDownhillAndNeutralFlipsAlwaysAccepted(t *testing.T) {
	for _, temperature := range []float64{0, 0.5, 5} {
		st := newTestState(t, 3, 3, temperature)
		e := NewEngine(st)
		l := st.Lattice

		// Isolated up spin among down neighbours: dE = -8.
		for i := 0; i < 1000; i++ {
			l.Fill(core.SpinDown)
			l.Set(1, 1, core.SpinUp)
			require.True(t, e.Trial(1, 1), "T=%v: dE<0 must flip", temperature)
			require.Equal(t, core.SpinDown, l.Get(1, 1))
		}

		// Two neighbours each way: dE = 0.
		for i := 0; i < 1000; i++ {
			l.Fill(core.SpinUp)
			l.Set(1, 0, core.SpinDown)
			l.Set(0, 1, core.SpinDown)
			require.True(t, e.Trial(1, 1), "T=%v: dE=0 must flip", temperature)
			require.Equal(t, core.SpinDown, l.Get(1, 1))
		}
	}
}

func TestZeroTemperatureNeverAcceptsUphill(t *testing.T) {
	st := newTestState(t, 4, 4, 0)
	e := NewEngine(st)
	before := st.Lattice.Clone()

	size := st.Lattice.Size()
	for i := 0; i < 10000; i++ {
		x := st.RNG.IntN(size.W)
		y := st.RNG.IntN(size.H)
		require.False(t, e.Trial(x, y))
	}
	require.Equal(t, 0, e.Stats().Accepted)
	require.Equal(t, before.Cells(), st.Lattice.Cells())

	for i := 0; i < 100; i++ {
		e.Advance()
	}
	require.Equal(t, before.Cells(), st.Lattice.Cells(), "an aligned lattice is frozen at T=0")
}

func TestPausedEngineLeavesLatticeUntouched(t *testing.T) {
	sim := newTestSimulation(t, func(c *Config) { c.Paused = true })
	before := sim.Lattice().Clone()

	for i := 0; i < 100; i++ {
		sim.Step()
	}
	require.Equal(t, before.Cells(), sim.Lattice().Cells())
	require.Zero(t, sim.Engine().Stats().Ticks)

	sim.Params().SetPaused(false)
	sim.Step()
	require.Equal(t, 1, sim.Engine().Stats().Ticks, "resuming continues with the existing lattice")
}

func TestAcceptProbability(t *testing.T) {
	require.Equal(t, 1.0, AcceptProbability(-8, 1))
	require.Equal(t, 1.0, AcceptProbability(0, 0))
	require.Equal(t, 0.0, AcceptProbability(8, 0))
	require.InDelta(t, math.Exp(-4), AcceptProbability(4, 1), 1e-12)
	require.InDelta(t, math.Exp(-8.0/2.5), AcceptProbability(8, 2.5), 1e-12)
}

func TestDeltaE(t *testing.T) {
	require.Equal(t, 8, DeltaE(core.SpinUp, 4))
	require.Equal(t, -8, DeltaE(core.SpinDown, 4))
	require.Equal(t, 0, DeltaE(core.SpinUp, 0))
}

func TestEngineIsDeterministicForASeed(t *testing.T) {
	a := newTestSimulation(t, func(c *Config) { c.Temperature = 2.2 })
	b := newTestSimulation(t, func(c *Config) { c.Temperature = 2.2 })
	for i := 0; i < 25; i++ {
		a.Step()
		b.Step()
	}
	require.Equal(t, a.Lattice().Cells(), b.Lattice().Cells())
}

func TestLowTemperatureOrdersTheLattice(t *testing.T) {
	sim := newTestSimulation(t, func(c *Config) {
		c.Width, c.Height = 24, 24
		c.Temperature = 0.5
		c.Pattern = PatternUp
	})
	for i := 0; i < 200; i++ {
		sim.Step()
	}
	require.Greater(t, Magnetization(sim.Lattice()), 0.9)
}
