package ising

import (
	"log"

	"ising/internal/core"
	"ising/internal/render"
)

// Bridge snapshots the lattice into a point buffer and hands it to a render
// backend. It keeps no state between frames beyond buffer capacity.
type Bridge struct {
	lattice *core.Lattice
	backend render.Backend
	logger  *log.Logger

	enabled bool
	frames  int
	lastLen int
}

// NewBridge configures backend for the lattice resolution. When the backend
// rejects the resolution the failure is logged and Present becomes a no-op;
// the simulation itself is unaffected.
func NewBridge(l *core.Lattice, backend render.Backend, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	b := &Bridge{lattice: l, backend: backend, logger: logger}
	if backend == nil {
		logger.Printf("render: no backend configured, rendering disabled")
		return b
	}
	size := l.Size()
	if err := backend.SetResolution(size.W, size.H); err != nil {
		logger.Printf("render: backend init failed, rendering disabled: %v", err)
		return b
	}
	b.enabled = true
	return b
}

// Snapshot returns the cell centres of every down spin in x-major order.
func (b *Bridge) Snapshot() render.PointBuffer {
	return SnapshotLattice(b.lattice, make(render.PointBuffer, 0, b.lastLen))
}

// Present hands buf to the backend.
func (b *Bridge) Present(buf render.PointBuffer) {
	if !b.enabled {
		return
	}
	b.backend.DrawPoints(buf)
	b.lastLen = len(buf)
	b.frames++
}

// Advance renders one frame.
func (b *Bridge) Advance() {
	if !b.enabled {
		return
	}
	b.Present(b.Snapshot())
}

// Enabled reports whether the backend initialised.
func (b *Bridge) Enabled() bool { return b.enabled }

// Frames reports how many frames were presented.
func (b *Bridge) Frames() int { return b.frames }

// SnapshotLattice appends the centre of every down spin to dst, scanning x in
// the outer loop and y in the inner loop.
func SnapshotLattice(l *core.Lattice, dst render.PointBuffer) render.PointBuffer {
	size := l.Size()
	cells := l.Cells()
	for x := 0; x < size.W; x++ {
		for y := 0; y < size.H; y++ {
			if cells[y*size.W+x] == core.SpinDown {
				dst = append(dst, render.Point{X: float32(x) + 0.5, Y: float32(y) + 0.5})
			}
		}
	}
	return dst
}
