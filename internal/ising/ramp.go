package ising

import (
	"math"
	"time"
)

// Direction selects which way a temperature ramp moves.
type Direction int

const (
	Cool Direction = -1
	Heat Direction = 1
)

// Ramp timing and bounds.
const (
	RampInterval           = 200 * time.Millisecond
	RampStep               = 0.1
	RampMin                = 0.5
	RampMax                = 5.0
	rampEpsilon            = 1e-9
	rampResolution float64 = 100
)

// Ramp sweeps the shared temperature linearly, one step per tick. At most one
// sweep is active at a time.
type Ramp struct {
	st      *State
	running bool
	cursor  float64
	dir     Direction
	onStop  func(final float64)
}

// NewRamp returns an idle ramp bound to st.
func NewRamp(st *State) *Ramp { return &Ramp{st: st} }

// OnStop registers a callback fired when a sweep finishes.
func (r *Ramp) OnStop(fn func(final float64)) { r.onStop = fn }

// Start begins a sweep from the current temperature. It reports false and
// does nothing when a sweep is already running or dir is not Heat or Cool.
func (r *Ramp) Start(dir Direction) bool {
	if r.running || (dir != Heat && dir != Cool) {
		return false
	}
	r.running = true
	r.dir = dir
	r.cursor = r.st.Params.Temperature()
	return true
}

// Running reports whether a sweep is in flight.
func (r *Ramp) Running() bool { return r.running }

// Direction returns the direction of the active sweep, or zero when idle.
func (r *Ramp) Direction() Direction {
	if !r.running {
		return 0
	}
	return r.dir
}

// Cursor is the temperature the next tick will apply.
func (r *Ramp) Cursor() float64 { return r.cursor }

// Advance applies the cursor to the parameters and moves it one step. The
// sweep ends as soon as the stepped cursor leaves [RampMin, RampMax], so a
// stepped value outside that range is never applied.
func (r *Ramp) Advance() {
	if !r.running {
		return
	}
	applied := r.cursor
	r.st.Params.assignTemperature(applied)
	next := r.cursor + float64(r.dir)*RampStep
	r.cursor = math.Round(next*rampResolution) / rampResolution
	if outOfRange(r.cursor) {
		r.running = false
		if r.onStop != nil {
			r.onStop(applied)
		}
	}
}

func outOfRange(t float64) bool {
	return t < RampMin-rampEpsilon || t > RampMax+rampEpsilon
}
