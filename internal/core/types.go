package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Task is a unit of periodic work advanced one discrete tick at a time.
type Task interface {
	Advance()
}

// TaskFunc adapts a plain function to the Task interface.
type TaskFunc func()

// Advance calls f.
func (f TaskFunc) Advance() { f() }
