package core

import "time"

// DefaultMaxSteps bounds how many catch-up steps a FixedStep reports per call.
const DefaultMaxSteps = 8

// FixedStep converts elapsed time into a whole number of fixed-length ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	maxSteps    int
}

// NewFixedStep constructs a FixedStep that fires once per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{maxSteps: DefaultMaxSteps}
	fs.SetInterval(interval)
	return fs
}

// NewFixedStepTPS constructs a FixedStep targeting the given ticks per second.
func NewFixedStepTPS(tps int) *FixedStep {
	if tps <= 0 {
		tps = 60
	}
	return NewFixedStep(time.Second / time.Duration(tps))
}

// SetInterval changes the tick length. Non-positive values fall back to one
// millisecond.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = time.Millisecond
	}
	f.step = interval
}

// Interval reports the tick length.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetMaxSteps caps the number of ticks reported by a single Advance. Values
// below one disable the cap.
func (f *FixedStep) SetMaxSteps(n int) { f.maxSteps = n }

// Reset drops any accumulated time.
func (f *FixedStep) Reset() { f.accumulator = 0 }

// Advance accumulates delta and returns how many ticks are due. Time beyond the
// step cap is discarded rather than carried forward.
func (f *FixedStep) Advance(delta time.Duration) int {
	if delta > 0 {
		f.accumulator += delta
	}
	steps := int(f.accumulator / f.step)
	f.accumulator -= time.Duration(steps) * f.step
	if f.maxSteps > 0 && steps > f.maxSteps {
		steps = f.maxSteps
		f.accumulator = 0
	}
	return steps
}
