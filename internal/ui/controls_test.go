package ui

import (
	"image"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
	"ising/internal/ising"
)

func newControlledSim(t *testing.T, temperature float64) (*ising.Simulation, []controlRow, controlSink) {
	t.Helper()
	cfg := ising.DefaultConfig()
	cfg.Width, cfg.Height = 8, 6
	cfg.Temperature = temperature
	cfg.Radius = 1
	cfg.Paused = true
	sim, err := ising.New(cfg, ising.WithLogger(log.New(io.Discard, "", 0)))
	require.NoError(t, err)
	rows := newControlRows(sim.ParameterControls())
	layoutRows(rows, 220)
	refreshRows(rows, sim)
	return sim, rows, newControlSink(sim)
}

func refreshRows(rows []controlRow, sim Target) {
	snap := sim.Parameters()
	for i := range rows {
		rows[i].refresh(snap)
	}
}

func rowByKey(t *testing.T, rows []controlRow, key string) *controlRow {
	t.Helper()
	for i := range rows {
		if rows[i].control.Key == key {
			return &rows[i]
		}
	}
	t.Fatalf("no row for %q", key)
	return nil
}

func TestTemperatureRowClampsAtUpperBound(t *testing.T) {
	sim, rows, sink := newControlledSim(t, 4.95)
	row := rowByKey(t, rows, ising.KeyTemperature)
	require.Equal(t, "4.95", row.text)
	require.True(t, sink.enabled(row, 1))

	require.True(t, sink.press(row, 1))
	require.InDelta(t, 5.0, sim.Params().Temperature(), 1e-9)

	refreshRows(rows, sim)
	require.False(t, sink.enabled(row, 1), "plus is inert at the maximum")
	require.True(t, sink.enabled(row, -1))
	require.False(t, sink.press(row, 1))
}

func TestRadiusRowStepsByWholeUnits(t *testing.T) {
	sim, rows, sink := newControlledSim(t, 2)
	row := rowByKey(t, rows, ising.KeyRadius)
	require.False(t, sink.enabled(row, -1), "radius cannot drop below one")
	require.True(t, sink.press(row, 1))
	require.Equal(t, 2, sim.Params().Radius())
}

func TestToggleAndActionRows(t *testing.T) {
	sim, rows, sink := newControlledSim(t, 2)
	paused := rowByKey(t, rows, ising.KeyPaused)
	require.Equal(t, "on", paused.text)
	require.True(t, sink.press(paused, 1))
	require.False(t, sim.Params().Paused())

	require.True(t, sink.press(rowByKey(t, rows, ising.KeyCool), 1))
	require.True(t, sim.Ramp().Running())
	require.False(t, sink.press(rowByKey(t, rows, ising.KeyHeat), 1), "a second ramp is refused")
}

func TestRowWithoutValueIsDisabled(t *testing.T) {
	rows := newControlRows([]core.ParameterControl{{Key: "missing", Type: core.ParamTypeFloat, Step: 1}})
	rows[0].refresh(core.ParameterSnapshot{})
	require.False(t, rows[0].ok)
	require.Equal(t, noValue, rows[0].text)
	require.False(t, controlSink{}.enabled(&rows[0], 1))
}

func TestHitFindsButtons(t *testing.T) {
	_, rows, _ := newControlledSim(t, 2)
	center := func(r image.Rectangle) image.Point {
		return image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	}

	i, dir, ok := hit(rows, center(rows[0].plus))
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.Equal(t, 1, dir)

	i, dir, ok = hit(rows, center(rows[1].minus))
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, -1, dir)

	_, _, ok = hit(rows, image.Pt(0, 0))
	require.False(t, ok)

	toggle := rowByKey(t, rows, ising.KeyPaused)
	require.True(t, toggle.minus.Empty())
}

func TestPanelTitle(t *testing.T) {
	sim, _, _ := newControlledSim(t, 2)
	require.Equal(t, "Ising Controls", panelTitle(sim))
	require.Equal(t, "Controls", panelTitle(nil))
}
