package ising

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func TestStampRadiusOneScenario(t *testing.T) {
	st := newTestState(t, 4, 4, 1.0)
	st.Params.SetRadius(1)
	NewBrush(st).Stamp(1, 1)

	require.Equal(t, core.SpinDown, st.Lattice.Get(1, 1))
	require.Equal(t, 1, CountDown(st.Lattice))

	points := NewBridge(st.Lattice, nil, quietLogger()).Snapshot()
	require.Len(t, points, 1)
	require.Equal(t, float32(1.5), points[0].X)
	require.Equal(t, float32(1.5), points[0].Y)
}

func TestStampTruncatesPointerCoordinates(t *testing.T) {
	st := newTestState(t, 4, 4, 1.0)
	st.Params.SetRadius(1)
	b := NewBrush(st)

	b.Stamp(2.9, 1.99)
	require.Equal(t, core.SpinDown, st.Lattice.Get(2, 1))

	b.Stamp(-3.5, 2)
	require.Equal(t, core.SpinDown, st.Lattice.Get(0, 2), "negative positions clamp onto column 0")
	require.Equal(t, 2, CountDown(st.Lattice))
}

func TestStampClampsInsteadOfWrapping(t *testing.T) {
	st := newTestState(t, 10, 10, 1.0)
	st.Params.SetRadius(3)
	NewBrush(st).Stamp(0, 0)

	l := st.Lattice
	require.Equal(t, core.SpinDown, l.Get(0, 0))
	require.Equal(t, core.SpinDown, l.Get(2, 0))
	require.Equal(t, core.SpinDown, l.Get(0, 1))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x > 2 || y > 2 {
				require.Equal(t, core.SpinUp, l.Get(x, y), "cell (%d,%d) must not be painted through the edge", x, y)
			}
		}
	}
}

func TestStampFarOutsideClampsToCorner(t *testing.T) {
	st := newTestState(t, 6, 5, 1.0)
	st.Params.SetRadius(2)
	NewBrush(st).Stamp(1e12, 1e12)
	require.Equal(t, core.SpinDown, st.Lattice.Get(5, 4))
	require.Equal(t, 1, CountDown(st.Lattice))
}

func TestStampInvertDrawPaintsUp(t *testing.T) {
	st := newTestState(t, 8, 8, 1.0)
	st.Lattice.Fill(core.SpinDown)
	st.Params.SetInvertDraw(true)
	st.Params.SetRadius(2)
	NewBrush(st).Stamp(4, 4)
	require.Equal(t, core.SpinUp, st.Lattice.Get(4, 4))
	require.Equal(t, core.SpinUp, st.Lattice.Get(5, 4))
}

func TestStampIsIdempotent(t *testing.T) {
	for _, invert := range []bool{false, true} {
		st := newTestState(t, 20, 15, 1.0)
		core.FillSpins(st.RNG, st.Lattice)
		st.Params.SetRadius(5)
		st.Params.SetInvertDraw(invert)
		b := NewBrush(st)

		b.Stamp(5.7, 4.2)
		once := st.Lattice.Clone()
		b.Stamp(5.7, 4.2)
		require.Equal(t, once.Cells(), st.Lattice.Cells(), "invert=%v", invert)
		require.Equal(t, 2, b.Stamps())
	}
}

func TestStampIgnoresNaN(t *testing.T) {
	st := newTestState(t, 4, 4, 1.0)
	b := NewBrush(st)
	var zero float64
	b.Stamp(zero/zero, 1)
	require.Zero(t, CountDown(st.Lattice))
	require.Zero(t, b.Stamps())
}
