package core

import "time"

type scheduledTask struct {
	name  string
	task  Task
	clock *FixedStep
}

// Scheduler runs periodic tasks cooperatively on the caller's goroutine. Every
// due tick of every task runs to completion before the next one starts.
type Scheduler struct {
	tasks []scheduledTask
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Every registers task to run once per interval. Tasks run in registration
// order within a single Tick.
func (s *Scheduler) Every(name string, interval time.Duration, task Task) *FixedStep {
	clock := NewFixedStep(interval)
	s.tasks = append(s.tasks, scheduledTask{name: name, task: task, clock: clock})
	return clock
}

// Tick advances every task clock by delta and runs the due ticks. It returns
// the total number of task ticks executed.
func (s *Scheduler) Tick(delta time.Duration) int {
	ran := 0
	for _, t := range s.tasks {
		n := t.clock.Advance(delta)
		for i := 0; i < n; i++ {
			t.task.Advance()
		}
		ran += n
	}
	return ran
}

// Step runs a single tick of the named task immediately, ignoring its clock.
func (s *Scheduler) Step(name string) bool {
	for _, t := range s.tasks {
		if t.name == name {
			t.task.Advance()
			return true
		}
	}
	return false
}

// Clock returns the clock of the named task.
func (s *Scheduler) Clock(name string) (*FixedStep, bool) {
	for _, t := range s.tasks {
		if t.name == name {
			return t.clock, true
		}
	}
	return nil, false
}

// Names lists registered task names in registration order.
func (s *Scheduler) Names() []string {
	names := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		names[i] = t.name
	}
	return names
}
