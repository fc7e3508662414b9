//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"weighted-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

type generator interface {
	Generate()
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControlState
	provider     core.ParameterControlsProvider
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	boolSetter   core.BoolParameterSetter
	generate     func()
	generateRect image.Rectangle
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	h.provider, _ = sim.(core.ParameterControlsProvider)
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	h.boolSetter, _ = sim.(core.BoolParameterSetter)
	if gen, ok := sim.(generator); ok {
		h.generate = gen.Generate
	}
	h.syncControls()
	return h
}

// SetGenerate replaces the action run by the Generate button.
func (h *HUD) SetGenerate(fn func()) {
	if h == nil {
		return
	}
	h.generate = fn
}

// Update refreshes control values from the simulation and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.syncControls()
	if provider, ok := h.sim.(parameterProvider); ok {
		refreshValues(h.controls, provider.Parameters())
	}
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if need := h.minHeight(); height < need {
		height = need
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// MinHeight returns the panel height needed to show every control.
func (h *HUD) MinHeight() int {
	if h == nil {
		return 0
	}
	return h.minHeight()
}

func (h *HUD) minHeight() int {
	return panelHeight(h.width, len(h.controls))
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return fmt.Sprintf("%s%s Controls", strings.ToUpper(name[:1]), name[1:])
}

// syncControls rebuilds the control list when the simulation reports a new one.
func (h *HUD) syncControls() {
	if h.provider == nil {
		return
	}
	controls := h.provider.ParameterControls()
	if sameControls(h.controls, controls) {
		return
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	if h.generate != nil && pointInRect(px, my, h.generateRect) {
		h.generate()
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if state.control.Type == core.ParamTypeBool {
			if pointInRect(px, my, state.toggleRect) {
				h.toggle(state)
				return
			}
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) toggle(state *hudControlState) {
	if h.boolSetter == nil {
		return
	}
	target := !state.boolValue
	if h.boolSetter.SetBoolParameter(state.control.Key, target) {
		state.boolValue = target
		state.value = formatBool(target)
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if !canAdjust(state, direction) {
		return
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return
		}
		target := adjustInt(state.control, state.intValue, direction)
		if h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.floatValue = float64(target)
			state.value = fmt.Sprint(target)
		}
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return
		}
		target := adjustFloat(state.control, state.floatValue, direction)
		if h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		if state.control.Type == core.ParamTypeBool {
			h.drawButton(state.toggleRect, state.value, state.hasValue && h.boolSetter != nil, state.boolValue)
			continue
		}

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", canAdjust(state, -1), false)
		h.drawButton(state.plusRect, "+", canAdjust(state, 1), false)
	}
	if h.generate != nil {
		h.drawButton(h.generateRect, "Generate", true, false)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled, active bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	switch {
	case !enabled:
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	case active:
		bg = color.RGBA{R: 40, G: 70, B: 150, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
		h.controls[i].toggleRect = image.Rect(minusRect.Min.X, buttonY, plusRect.Max.X, buttonY+buttonSize)
	}
	top := controlsTop + len(h.controls)*lineHeight
	buttonY := top + (lineHeight-buttonSize)/2
	h.generateRect = image.Rect(panelPadding, buttonY, h.width-panelPadding, buttonY+buttonSize)
}
