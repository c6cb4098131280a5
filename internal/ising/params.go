package ising

import (
	"strconv"

	"ising/internal/core"
)

// Parameter keys shared by the HUD, the observers and FromMap.
const (
	KeyTemperature = "T"
	KeyRadius      = "radius"
	KeyInvertDraw  = "invertDraw"
	KeyPaused      = "paused"
	KeyHeat        = "heat"
	KeyCool        = "cool"
)

// Change is delivered to subscribers whenever a parameter is written.
type Change = core.Parameter

// Params is the mutable parameter block shared by the engine, the brush, the
// ramp and the control surface.
type Params struct {
	temperature float64
	radius      int
	invertDraw  bool
	paused      bool

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Change)
}

// NewParams returns a parameter block initialised from cfg.
func NewParams(cfg Config) *Params {
	radius := cfg.Radius
	if radius < 1 {
		radius = 1
	}
	return &Params{
		temperature: cfg.Temperature,
		radius:      radius,
		invertDraw:  cfg.InvertDraw,
		paused:      cfg.Paused,
	}
}

// Temperature returns T.
func (p *Params) Temperature() float64 { return p.temperature }

// Radius returns the brush radius in cells.
func (p *Params) Radius() int { return p.radius }

// InvertDraw reports whether the brush paints up spins.
func (p *Params) InvertDraw() bool { return p.invertDraw }

// Paused reports whether the Metropolis engine is halted.
func (p *Params) Paused() bool { return p.paused }

// SetTemperature stores T. The value is not clamped.
func (p *Params) SetTemperature(t float64) {
	if t == p.temperature {
		return
	}
	p.temperature = t
	p.notify(KeyTemperature)
}

// assignTemperature stores T and notifies even when the value is unchanged.
func (p *Params) assignTemperature(t float64) {
	p.temperature = t
	p.notify(KeyTemperature)
}

// SetRadius stores the brush radius. Values below one are rejected.
func (p *Params) SetRadius(r int) bool {
	if r < 1 {
		return false
	}
	if r != p.radius {
		p.radius = r
		p.notify(KeyRadius)
	}
	return true
}

// SetInvertDraw selects the spin painted by the brush.
func (p *Params) SetInvertDraw(v bool) {
	if v == p.invertDraw {
		return
	}
	p.invertDraw = v
	p.notify(KeyInvertDraw)
}

// SetPaused halts or resumes the engine.
func (p *Params) SetPaused(v bool) {
	if v == p.paused {
		return
	}
	p.paused = v
	p.notify(KeyPaused)
}

// Subscribe registers fn for change notifications. The returned function
// removes the subscription.
func (p *Params) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range p.listeners {
			if l.id == id {
				p.listeners = append(p.listeners[:i], p.listeners[i+1:]...)
				return
			}
		}
	}
}

// Value returns the current value of key as a Parameter.
func (p *Params) Value(key string) (core.Parameter, bool) {
	switch key {
	case KeyTemperature:
		return core.Parameter{Key: key, Label: "Temperature", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(p.temperature, 'f', -1, 64)}, true
	case KeyRadius:
		return core.Parameter{Key: key, Label: "Draw size", Type: core.ParamTypeInt, Value: strconv.Itoa(p.radius)}, true
	case KeyInvertDraw:
		return core.Parameter{Key: key, Label: "Invert draw color", Type: core.ParamTypeBool, Value: strconv.FormatBool(p.invertDraw)}, true
	case KeyPaused:
		return core.Parameter{Key: key, Label: "Pause Simulation", Type: core.ParamTypeBool, Value: strconv.FormatBool(p.paused)}, true
	}
	return core.Parameter{}, false
}

func (p *Params) notify(key string) {
	if len(p.listeners) == 0 {
		return
	}
	change, ok := p.Value(key)
	if !ok {
		return
	}
	// Copy so a listener may unsubscribe during delivery.
	ls := append([]listener(nil), p.listeners...)
	for _, l := range ls {
		l.fn(change)
	}
}
