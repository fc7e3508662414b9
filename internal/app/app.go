//go:build ebiten

package app

import (
	"image/color"
	"time"

	"weighted-ca/internal/core"
	"weighted-ca/internal/render"
	"weighted-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	ctrl    controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	ticker  *core.FixedStep

	onColor   color.Color
	offColor  color.Color
	lineColor color.Color

	scale     int
	hudWidth  int
	showLines bool
	tickOnce  bool
	seed      int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, hudWidth int) *Game {
	if hudWidth < 0 {
		hudWidth = 0
	}
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	g := &Game{
		sim:       sim,
		painter:   gp,
		overlay:   ui.NewOverlay(sim),
		hud:       ui.NewHUD(sim, hudWidth),
		ticker:    core.NewFixedInterval(500 * time.Millisecond),
		onColor:   render.CellColor,
		offColor:  render.BackgroundColor,
		lineColor: render.LineColor,
		scale:     scale,
		hudWidth:  hudWidth,
		showLines: true,
		seed:      seed,
	}
	if ctrl, ok := sim.(controller); ok {
		g.ctrl = ctrl
		g.ticker.SetInterval(ctrl.TickInterval())
		g.hud.SetGenerate(g.generate)
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.ticker.Reset()
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.showLines = !g.showLines
	}
	if g.ctrl != nil {
		g.handleControllerKeys()
	}

	g.overlay.Update()
	g.hud.Update(g.sim.Size().W * g.scale)
	g.syncSize()

	if g.tickOnce {
		g.ctrl.Tick()
		g.tickOnce = false
		return nil
	}
	if g.ctrl == nil || g.ctrl.Automaton() {
		if g.ticker.ShouldStep() {
			g.sim.Step()
		}
	}
	return nil
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

func (g *Game) generate() { generate(g.ctrl, g.ticker) }

func (g *Game) handleControllerKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.generate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		toggleAutomaton(g.ctrl, g.ticker)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	for slot, key := range digitKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if rule, ok := ruleForSlot(slot); ok {
			g.ctrl.SetRule(rule)
		}
	}
}

// syncSize rebuilds the painter and window after the grid dimension changes.
func (g *Game) syncSize() {
	s := g.sim.Size()
	if w, h := g.painter.Size(); w == s.W && h == s.H {
		return
	}
	g.painter = render.NewGridPainter(s.W, s.H)
	ebiten.SetWindowSize(g.Layout(0, 0))
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.scale)
	if g.showLines && g.scale >= 3 {
		g.painter.DrawGridLines(screen, g.lineColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowSize(g.sim.Size(), g.scale, g.hudWidth, g.hud.MinHeight())
}
