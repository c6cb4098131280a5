package ising

import (
	"math"
	"strconv"

	"ising/internal/core"
)

// Control surface bounds.
const (
	TemperatureMin  = 0.0
	TemperatureMax  = 5.0
	TemperatureStep = 0.01
	RadiusMin       = 1
	RadiusMax       = 100
)

// Parameters reports the current parameter block and lattice observables.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	p := s.state.Params
	l := s.state.Lattice
	size := l.Size()
	groups := []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				mustValue(p, KeyTemperature),
				mustValue(p, KeyRadius),
				mustValue(p, KeyInvertDraw),
				mustValue(p, KeyPaused),
				boolParam("ramp", "Ramp running", s.ramp.Running()),
			},
		},
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				floatParam("magnetization", "Magnetization", Magnetization(l)),
				floatParam("energy", "Energy", Energy(l)),
				intParam("ticks", "Ticks", s.engine.Stats().Ticks),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD controls.
func (s *Simulation) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyTemperature, Label: "Temperature", Type: core.ParamTypeFloat, Step: 0.1, Min: TemperatureMin, Max: TemperatureMax, HasMin: true, HasMax: true},
		{Key: KeyRadius, Label: "Draw size", Type: core.ParamTypeInt, Step: 1, Min: RadiusMin, Max: RadiusMax, HasMin: true, HasMax: true},
		{Key: KeyInvertDraw, Label: "Invert draw color", Type: core.ParamTypeBool},
		{Key: KeyPaused, Label: "Pause Simulation", Type: core.ParamTypeBool},
		{Key: KeyCool, Label: "Cool", Type: core.ParamTypeAction},
		{Key: KeyHeat, Label: "Heat", Type: core.ParamTypeAction},
	}
}

// SetIntParameter updates the brush radius within the control bounds.
func (s *Simulation) SetIntParameter(key string, value int) bool {
	if key != KeyRadius {
		return false
	}
	if value < RadiusMin {
		value = RadiusMin
	}
	if value > RadiusMax {
		value = RadiusMax
	}
	return s.state.Params.SetRadius(value)
}

// SetFloatParameter updates the temperature, clamped to the control range and
// rounded to the control resolution.
func (s *Simulation) SetFloatParameter(key string, value float64) bool {
	if key != KeyTemperature {
		return false
	}
	if value < TemperatureMin {
		value = TemperatureMin
	}
	if value > TemperatureMax {
		value = TemperatureMax
	}
	s.state.Params.SetTemperature(roundTo(value, TemperatureStep))
	return true
}

// SetBoolParameter toggles invertDraw or paused.
func (s *Simulation) SetBoolParameter(key string, value bool) bool {
	switch key {
	case KeyInvertDraw:
		s.state.Params.SetInvertDraw(value)
	case KeyPaused:
		s.state.Params.SetPaused(value)
	default:
		return false
	}
	return true
}

// InvokeAction fires the heat or cool ramp.
func (s *Simulation) InvokeAction(key string) bool {
	switch key {
	case KeyHeat:
		return s.Heat()
	case KeyCool:
		return s.Cool()
	}
	return false
}

func roundTo(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	inv := math.Round(1 / step)
	return math.Round(v*inv) / inv
}

func mustValue(p *Params, key string) core.Parameter {
	v, _ := p.Value(key)
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
