package ising

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsNotifySubscribers(t *testing.T) {
	p := NewParams(DefaultConfig())
	var got []Change
	cancel := p.Subscribe(func(c Change) { got = append(got, c) })

	p.SetTemperature(2.5)
	p.SetTemperature(2.5)
	p.SetRadius(12)
	p.SetInvertDraw(true)
	p.SetPaused(true)

	require.Len(t, got, 4, "writing an unchanged value must not notify")
	require.Equal(t, KeyTemperature, got[0].Key)
	require.Equal(t, "2.5", got[0].Value)
	require.Equal(t, KeyRadius, got[1].Key)
	require.Equal(t, "12", got[1].Value)
	require.Equal(t, KeyInvertDraw, got[2].Key)
	require.Equal(t, "true", got[2].Value)
	require.Equal(t, KeyPaused, got[3].Key)

	cancel()
	p.SetTemperature(1)
	require.Len(t, got, 4)
}

func TestParamsCancelDuringDelivery(t *testing.T) {
	p := NewParams(DefaultConfig())
	calls := 0
	var cancel func()
	cancel = p.Subscribe(func(Change) {
		calls++
		cancel()
	})
	other := 0
	p.Subscribe(func(Change) { other++ })

	p.SetPaused(true)
	p.SetPaused(false)
	require.Equal(t, 1, calls)
	require.Equal(t, 2, other)
}

func TestParamsRadiusRejectsNonPositive(t *testing.T) {
	p := NewParams(DefaultConfig())
	require.False(t, p.SetRadius(0))
	require.Equal(t, 10, p.Radius())
	require.True(t, p.SetRadius(1))
	require.Equal(t, 1, p.Radius())

	cfg := DefaultConfig()
	cfg.Radius = -3
	require.Equal(t, 1, NewParams(cfg).Radius())
}

func TestParamsTemperatureIsUnclamped(t *testing.T) {
	p := NewParams(DefaultConfig())
	p.SetTemperature(12)
	require.Equal(t, 12.0, p.Temperature())
	p.SetTemperature(-1)
	require.Equal(t, -1.0, p.Temperature())
}

func TestParamsValueUnknownKey(t *testing.T) {
	_, ok := NewParams(DefaultConfig()).Value("bogus")
	require.False(t, ok)
}
