package app

// Gesture tracks one press-drag-release pointer interaction and decides when
// the brush should stamp. Positions are in window pixels.
type Gesture struct {
	active  bool
	lastX   int
	lastY   int
	stamped bool
}

// Press starts a gesture at (x, y). It reports whether a stamp is due.
func (g *Gesture) Press(x, y int) bool {
	g.active = true
	g.lastX, g.lastY = x, y
	g.stamped = true
	return true
}

// Move reports whether a stamp is due for a pointer now at (x, y). Moves
// outside an active gesture and moves that stay on the same pixel are ignored.
func (g *Gesture) Move(x, y int) bool {
	if !g.active {
		return false
	}
	if g.stamped && x == g.lastX && y == g.lastY {
		return false
	}
	g.lastX, g.lastY = x, y
	g.stamped = true
	return true
}

// Release ends the gesture.
func (g *Gesture) Release() {
	g.active = false
	g.stamped = false
}

// Active reports whether the pointer is held down.
func (g *Gesture) Active() bool { return g.active }

// ToLattice converts window pixels into lattice coordinates.
func ToLattice(x, y, scale int) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(x) / float64(scale), float64(y) / float64(scale)
}
