package ising

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ising/internal/core"
)

func TestObservablesAligned(t *testing.T) {
	st := newTestState(t, 6, 4, 1)
	require.Equal(t, 1.0, Magnetization(st.Lattice))
	require.Equal(t, -2.0, Energy(st.Lattice))
	require.Zero(t, CountDown(st.Lattice))
}

func TestObservablesCheckerboard(t *testing.T) {
	st := newTestState(t, 6, 4, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if (x+y)%2 == 1 {
				st.Lattice.Set(x, y, core.SpinDown)
			}
		}
	}
	require.Equal(t, 0.0, Magnetization(st.Lattice))
	require.Equal(t, 2.0, Energy(st.Lattice))
	require.Equal(t, 12, CountDown(st.Lattice))
}
