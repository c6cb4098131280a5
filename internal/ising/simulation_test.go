package ising

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":             "32",
		"h":             "-4",
		"seed":          "99",
		"init":          PatternNoise,
		"t":             "2.269",
		"radius":        "0",
		"invert":        "true",
		"paused":        "1",
		"sim_interval":  "5ms",
		"max_sim_steps": "2",
	})
	require.Equal(t, 32, cfg.Width)
	require.Equal(t, DefaultConfig().Height, cfg.Height)
	require.Equal(t, int64(99), cfg.Seed)
	require.Equal(t, PatternNoise, cfg.Pattern)
	require.Equal(t, 2.269, cfg.Temperature)
	require.Equal(t, DefaultConfig().Radius, cfg.Radius)
	require.True(t, cfg.InvertDraw)
	require.True(t, cfg.Paused)
	require.Equal(t, 5*time.Millisecond, cfg.SimInterval)
	require.Equal(t, 2, cfg.MaxSimSteps)

	require.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestSimulationSchedulerWiring(t *testing.T) {
	sim := newTestSimulation(t, func(c *Config) { c.MaxSimSteps = 0 })
	require.Equal(t, []string{TaskSim, TaskRamp}, sim.Scheduler().Names())

	sim.Tick(50 * time.Millisecond)
	require.Equal(t, 50, sim.Engine().Stats().Ticks)

	sim.AttachRenderer(&recordingBackend{}, DefaultRenderInterval)
	require.Equal(t, []string{TaskSim, TaskRamp, TaskRender}, sim.Scheduler().Names())
	sim.Tick(DefaultRenderInterval)
	require.Equal(t, 1, sim.Bridge().Frames())
}

func TestSimulationResetIsDeterministic(t *testing.T) {
	sim := newTestSimulation(t, nil)
	initial := sim.Lattice().Clone()
	sim.Step()
	sim.Reset(0)
	require.Equal(t, initial.Cells(), sim.Lattice().Cells(), "zero reuses the configured seed")
	require.Zero(t, sim.Engine().Stats().Ticks)

	sim.Reset(777)
	seeded := sim.Lattice().Clone()
	sim.Reset(777)
	require.Equal(t, seeded.Cells(), sim.Lattice().Cells())
	require.NotEqual(t, initial.Cells(), seeded.Cells())
}

func TestInjectedRNG(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 8, 8
	a, err := New(cfg, WithRNG(core.NewRNG(11)), WithLogger(quietLogger()))
	require.NoError(t, err)
	b, err := New(cfg, WithRNG(core.NewRNG(11)), WithLogger(quietLogger()))
	require.NoError(t, err)
	require.Equal(t, a.Lattice().Cells(), b.Lattice().Cells())
}

func TestControlSurfaceSetters(t *testing.T) {
	sim := newTestSimulation(t, nil)

	require.True(t, sim.SetFloatParameter(KeyTemperature, 7))
	require.Equal(t, TemperatureMax, sim.Params().Temperature())
	require.True(t, sim.SetFloatParameter(KeyTemperature, -2))
	require.Equal(t, TemperatureMin, sim.Params().Temperature())
	require.True(t, sim.SetFloatParameter(KeyTemperature, 2.2691))
	require.Equal(t, 2.27, sim.Params().Temperature())
	require.False(t, sim.SetFloatParameter(KeyRadius, 3))

	require.True(t, sim.SetIntParameter(KeyRadius, 500))
	require.Equal(t, RadiusMax, sim.Params().Radius())
	require.True(t, sim.SetIntParameter(KeyRadius, 0))
	require.Equal(t, RadiusMin, sim.Params().Radius())
	require.False(t, sim.SetIntParameter(KeyTemperature, 1))

	require.True(t, sim.SetBoolParameter(KeyPaused, true))
	require.True(t, sim.Params().Paused())
	require.True(t, sim.SetBoolParameter(KeyInvertDraw, true))
	require.True(t, sim.Params().InvertDraw())
	require.False(t, sim.SetBoolParameter(KeyTemperature, true))

	require.True(t, sim.InvokeAction(KeyCool))
	require.False(t, sim.InvokeAction(KeyHeat), "ramps are mutually exclusive")
	require.False(t, sim.InvokeAction("bogus"))
}

func TestParametersSnapshot(t *testing.T) {
	sim := newTestSimulation(t, func(c *Config) {
		c.Temperature = 1.25
		c.Pattern = PatternUp
	})
	snap := sim.Parameters()

	temp, ok := snap.Lookup(KeyTemperature)
	require.True(t, ok)
	require.Equal(t, "1.25", temp.Value)
	require.Equal(t, core.ParamTypeFloat, temp.Type)

	mag, ok := snap.Lookup("magnetization")
	require.True(t, ok)
	require.Equal(t, "1", mag.Value)

	ramp, ok := snap.Lookup("ramp")
	require.True(t, ok)
	require.Equal(t, "false", ramp.Value)

	keys := map[string]bool{}
	for _, c := range sim.ParameterControls() {
		keys[c.Key] = true
	}
	for _, k := range []string{KeyTemperature, KeyRadius, KeyInvertDraw, KeyPaused, KeyHeat, KeyCool} {
		require.True(t, keys[k], "missing control %q", k)
	}
}
