//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"ising/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	panelBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor     = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOffColor  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText      = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonOffText   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

// HUD renders the control panel to the right of the lattice view.
type HUD struct {
	sim    Target
	width  int
	title  string
	rows   []controlRow
	sink   controlSink
	snap   core.ParameterSnapshot
	offset int

	panel *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD builds a panel of the given width for sim.
func NewHUD(sim Target, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: panelTitle(sim), sink: newControlSink(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if p, ok := sim.(core.ParameterControlsProvider); ok {
		h.rows = newControlRows(p.ParameterControls())
		layoutRows(h.rows, width)
	}
	return h
}

// Update handles a click on the panel, then rereads the parameters so values
// changed elsewhere (ramp ticks, key bindings) show up on the same frame.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offset = panelOffsetX
	h.refresh()
	if h.width > 0 && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if i, dir, ok := hit(h.rows, image.Pt(mx-h.offset, my)); ok && mx >= h.offset {
			h.sink.press(&h.rows[i], dir)
		}
	}
	h.refresh()
}

func (h *HUD) refresh() {
	h.snap = h.sim.Parameters()
	for i := range h.rows {
		h.rows[i].refresh(h.snap)
	}
}

// Draw paints the panel at offsetX, as tall as the scaled lattice.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := h.sim.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, titleColor)
	for i := range h.rows {
		h.drawRow(&h.rows[i])
	}
	h.drawReadouts()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRow(r *controlRow) {
	face := basicfont.Face7x13
	y := r.top + labelBaseline
	switch r.control.Type {
	case core.ParamTypeAction:
		h.drawButton(r.plus, r.control.Label, h.sink.enabled(r, 1))
		return
	case core.ParamTypeBool:
		text.Draw(h.panel, r.control.Label, face, panelPadding, y, labelColor)
		h.drawButton(r.plus, r.text, h.sink.enabled(r, 1))
		return
	}
	text.Draw(h.panel, r.control.Label, face, panelPadding, y, labelColor)
	fg := labelColor
	if !r.ok {
		fg = dimColor
	}
	w := text.BoundString(face, r.text).Dx()
	text.Draw(h.panel, r.text, face, r.minus.Min.X-buttonGap-w, y, fg)
	h.drawButton(r.minus, "-", h.sink.enabled(r, -1))
	h.drawButton(r.plus, "+", h.sink.enabled(r, 1))
}

// drawReadouts lists the read-only lattice observables under the controls.
func (h *HUD) drawReadouts() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.rows)*lineHeight + labelBaseline
	for _, g := range h.snap.Groups {
		if g.Name != "Lattice" {
			continue
		}
		for _, p := range g.Params {
			v := p.Value
			if p.Type == core.ParamTypeFloat {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					v = strconv.FormatFloat(f, 'f', 3, 64)
				}
			}
			text.Draw(h.panel, fmt.Sprintf("%s: %s", p.Label, v), face, panelPadding, y, dimColor)
			y += readoutSpacing
		}
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonOffColor, buttonOffText
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
