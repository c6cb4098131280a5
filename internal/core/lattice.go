package core

import (
	"errors"
	"fmt"
)

// Spin values held by every lattice cell.
const (
	SpinDown int8 = -1
	SpinUp   int8 = 1
)

// ErrInvalidSize is returned when a lattice is requested with a non-positive
// dimension.
var ErrInvalidSize = errors.New("core: lattice dimensions must be positive")

// Lattice stores a fixed-size toroidal grid of ±1 spins in row-major order.
type Lattice struct {
	w, h int
	data []int8
}

// NewLattice allocates a lattice with every spin up.
func NewLattice(w, h int) (*Lattice, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	l := &Lattice{w: w, h: h, data: make([]int8, w*h)}
	l.Fill(SpinUp)
	return l, nil
}

// Size returns the lattice dimensions.
func (l *Lattice) Size() Size { return Size{W: l.w, H: l.h} }

// Len returns the number of cells.
func (l *Lattice) Len() int { return len(l.data) }

// Cells exposes the backing slice. Callers must only store SpinUp or SpinDown.
func (l *Lattice) Cells() []int8 { return l.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (l *Lattice) Index(x, y int) int { return y*l.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (l *Lattice) Wrap(x, y int) (int, int) {
	x = (x%l.w + l.w) % l.w
	y = (y%l.h + l.h) % l.h
	return x, y
}

// Get returns the spin at (x, y) after wrapping.
func (l *Lattice) Get(x, y int) int8 {
	x, y = l.Wrap(x, y)
	return l.data[y*l.w+x]
}

// Set stores a spin at (x, y) after wrapping. Any negative value is stored as
// SpinDown and anything else as SpinUp.
func (l *Lattice) Set(x, y int, spin int8) {
	x, y = l.Wrap(x, y)
	l.data[y*l.w+x] = normalizeSpin(spin)
}

// Flip inverts the spin at (x, y) after wrapping.
func (l *Lattice) Flip(x, y int) {
	x, y = l.Wrap(x, y)
	idx := y*l.w + x
	l.data[idx] = -l.data[idx]
}

// Neighbors returns the four von Neumann neighbours of (x, y) on the torus.
// North is y-1 and south is y+1 in the top-left origin convention.
func (l *Lattice) Neighbors(x, y int) (north, south, east, west int8) {
	x, y = l.Wrap(x, y)
	up := y - 1
	if up < 0 {
		up = l.h - 1
	}
	down := y + 1
	if down >= l.h {
		down = 0
	}
	left := x - 1
	if left < 0 {
		left = l.w - 1
	}
	right := x + 1
	if right >= l.w {
		right = 0
	}
	row := y * l.w
	return l.data[up*l.w+x], l.data[down*l.w+x], l.data[row+right], l.data[row+left]
}

// NeighborSum returns the sum of the four neighbouring spins of (x, y).
func (l *Lattice) NeighborSum(x, y int) int {
	n, s, e, w := l.Neighbors(x, y)
	return int(n) + int(s) + int(e) + int(w)
}

// Fill sets every cell to spin.
func (l *Lattice) Fill(spin int8) {
	spin = normalizeSpin(spin)
	for i := range l.data {
		l.data[i] = spin
	}
}

// CopyFrom overwrites the lattice with the contents of other. Both lattices
// must share dimensions.
func (l *Lattice) CopyFrom(other *Lattice) bool {
	if other == nil || other.w != l.w || other.h != l.h {
		return false
	}
	copy(l.data, other.data)
	return true
}

// Clone returns an independent copy of the lattice.
func (l *Lattice) Clone() *Lattice {
	c := &Lattice{w: l.w, h: l.h, data: make([]int8, len(l.data))}
	copy(c.data, l.data)
	return c
}

func normalizeSpin(v int8) int8 {
	if v < 0 {
		return SpinDown
	}
	return SpinUp
}
