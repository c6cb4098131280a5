package ising

import (
	"math"

	"ising/internal/core"
)

// brushSweepMax is the last angle sample of the disk sweep. Samples are the
// integers 0..360 taken as radians, so the sweep winds roughly 57 turns.
const brushSweepMax = 360

// Brush paints filled disks of spins under the pointer.
type Brush struct {
	st     *State
	stamps int
}

// NewBrush returns a brush bound to st.
func NewBrush(st *State) *Brush { return &Brush{st: st} }

// Stamp paints a disk centred on the truncated pointer position. Samples that
// fall off the lattice are clamped onto the nearest edge cell rather than
// wrapped.
func (b *Brush) Stamp(posX, posY float64) {
	if math.IsNaN(posX) || math.IsNaN(posY) {
		return
	}
	l := b.st.Lattice
	size := l.Size()
	px := truncCoord(posX)
	py := truncCoord(posY)
	spin := core.SpinDown
	if b.st.Params.InvertDraw() {
		spin = core.SpinUp
	}
	cells := l.Cells()
	radius := b.st.Params.Radius()
	for r := 0; r < radius; r++ {
		fr := float64(r)
		for a := 0; a <= brushSweepMax; a++ {
			angle := float64(a)
			x := clampInt(int(math.Floor(fr*math.Cos(angle)))+px, 0, size.W-1)
			y := clampInt(int(math.Floor(fr*math.Sin(angle)))+py, 0, size.H-1)
			cells[l.Index(x, y)] = spin
		}
	}
	b.stamps++
}

// Stamps reports how many stamps have been applied.
func (b *Brush) Stamps() int { return b.stamps }

// truncCoord truncates toward zero, saturating far outside any lattice so the
// integer conversion stays defined.
func truncCoord(v float64) int {
	const limit = 1 << 30
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return int(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
