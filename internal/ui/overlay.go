//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"ising/internal/ising"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	historyCapacity = 240
	stripHeight     = 48
	stripMargin     = 8
)

// Overlay draws the brush cursor and a magnetization trace on top of the
// lattice.
type Overlay struct {
	sim   *ising.Simulation
	scale int

	showCursor  bool
	showHistory bool

	cursorX, cursorY int
	hasCursor        bool

	history *History
	values  []float64
	pixel   *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim *ising.Simulation, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showCursor: true, showHistory: true}
	o.history = NewHistory(historyCapacity)
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetCursor places the brush cursor at window coordinates (x, y).
func (o *Overlay) SetCursor(x, y int) {
	o.cursorX, o.cursorY = x, y
	o.hasCursor = true
}

// HideCursor removes the brush cursor.
func (o *Overlay) HideCursor() { o.hasCursor = false }

// Update toggles layers and samples the magnetization.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showCursor = !o.showCursor
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showHistory = !o.showHistory
	}
	o.history.Push(ising.Magnetization(o.sim.Lattice()))
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showCursor && o.hasCursor {
		radius := float32(o.sim.Params().Radius() * scale)
		col := color.RGBA{R: 200, G: 40, B: 40, A: 200}
		if o.sim.Params().InvertDraw() {
			col = color.RGBA{R: 40, G: 90, B: 200, A: 200}
		}
		vector.StrokeCircle(screen, float32(o.cursorX), float32(o.cursorY), radius, 1, col, true)
	}
	if o.showHistory {
		o.drawHistory(screen, scale)
	}
}

func (o *Overlay) drawHistory(screen *ebiten.Image, scale int) {
	size := o.sim.Size()
	width := float64(size.W*scale) - 2*stripMargin
	if width <= 0 || o.history.Len() < 2 {
		return
	}
	top := float64(size.H*scale) - stripHeight - stripMargin
	if top < 0 {
		return
	}
	o.drawRect(screen, stripMargin, top, width, stripHeight, color.RGBA{R: 16, G: 16, B: 20, A: 110})
	mid := top + stripHeight/2
	o.drawLine(screen, stripMargin, mid, stripMargin+width, mid, 1, color.RGBA{R: 120, G: 120, B: 130, A: 160})

	o.values = o.history.Values(o.values[:0])
	span := width / float64(historyCapacity-1)
	prevX, prevY := 0.0, 0.0
	for i, m := range o.values {
		x := stripMargin + float64(i)*span
		y := mid - clamp(m, -1, 1)*stripHeight/2
		if i > 0 {
			o.drawLine(screen, prevX, prevY, x, y, 1.5, color.RGBA{R: 230, G: 140, B: 40, A: 230})
		}
		prevX, prevY = x, y
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
