//go:build ebiten

package ui

import (
	"strings"

	"weighted-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay prints the status line and, on request, the key bindings over the grid.
type Overlay struct {
	sim      core.Sim
	showHelp bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showHelp: true}
}

// Update toggles the help text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the overlay text in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var lines []string
	if p, ok := o.sim.(statusProvider); ok {
		lines = append(lines, statusLine(p))
	}
	if o.showHelp {
		lines = append(lines, helpText())
	}
	if len(lines) == 0 {
		return
	}
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 4, 4)
}
