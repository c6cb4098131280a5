//go:build ebiten

package app

import (
	"time"

	"ising/internal/ising"
	"ising/internal/render"
	"ising/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts an Ising simulation to the ebiten.Game interface.
type Game struct {
	sim     *ising.Simulation
	painter *render.PointPainter
	bridge  *ising.Bridge
	hud     *ui.HUD
	overlay *ui.Overlay
	input   *pointerInput

	scale    int
	hudWidth int
	seed     int64
	stamps   [][2]int
}

// New constructs a Game for the provided simulation.
func New(sim *ising.Simulation, scale, hudWidth int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	painter := render.NewPointPainter()
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  painter,
		bridge:   sim.AttachRenderer(painter, 0),
		hud:      ui.NewHUD(sim, hudWidth),
		overlay:  ui.NewOverlay(sim, scale),
		input:    newPointerInput(size.W * scale),
		scale:    scale,
		hudWidth: hudWidth,
		seed:     seed,
	}
}

// RenderingEnabled reports whether the point backend initialised.
func (g *Game) RenderingEnabled() bool { return g.bridge.Enabled() }

// Reset reinitializes the lattice with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	params := g.sim.Params()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		params.SetPaused(!params.Paused())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		params.SetInvertDraw(!params.InvertDraw())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.sim.Heat()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.sim.Cool()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.SetIntParameter(ising.KeyRadius, params.Radius()+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.SetIntParameter(ising.KeyRadius, params.Radius()-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update(g.viewWidth())
	g.overlay.Update()

	g.stamps = g.input.poll(g.stamps[:0])
	for _, pos := range g.stamps {
		x, y := ToLattice(pos[0], pos[1], g.scale)
		g.sim.Stamp(x, y)
	}
	if mx, my, ok := g.input.cursor(); ok {
		g.overlay.SetCursor(mx, my)
	} else {
		g.overlay.HideCursor()
	}

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = 60
	}
	g.sim.Tick(time.Second / time.Duration(tps))
	return nil
}

// Draw renders the current lattice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.bridge.Advance()
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }
