package ising

import "ising/internal/core"

// Magnetization returns the mean spin in [-1, 1].
func Magnetization(l *core.Lattice) float64 {
	cells := l.Cells()
	if len(cells) == 0 {
		return 0
	}
	sum := 0
	for _, s := range cells {
		sum += int(s)
	}
	return float64(sum) / float64(len(cells))
}

// Energy returns the nearest-neighbour energy per site with J = 1, counting
// each bond once through the east and south neighbours.
func Energy(l *core.Lattice) float64 {
	size := l.Size()
	n := size.W * size.H
	if n == 0 {
		return 0
	}
	sum := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			_, south, east, _ := l.Neighbors(x, y)
			s := int(l.Get(x, y))
			sum += s * (int(east) + int(south))
		}
	}
	return -float64(sum) / float64(n)
}

// CountDown returns the number of down spins.
func CountDown(l *core.Lattice) int {
	count := 0
	for _, s := range l.Cells() {
		if s == core.SpinDown {
			count++
		}
	}
	return count
}
