package ui

import (
	"image"
	"math"
	"strconv"

	"weighted-ca/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)

// panelHeight is the height a HUD of the given width needs for its controls
// plus the Generate button. A hidden panel needs none.
func panelHeight(width, controls int) int {
	if width <= 0 {
		return 0
	}
	return controlsTop + (controls+1)*lineHeight + panelPadding
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	boolValue  bool
	hasValue   bool

	top        int
	minusRect  image.Rectangle
	plusRect   image.Rectangle
	toggleRect image.Rectangle
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

// adjustInt moves cur one step in direction and clamps it to the control bounds.
func adjustInt(ctrl core.ParameterControl, cur, direction int) int {
	target := cur + direction*intStep(ctrl)
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target
}

func adjustFloat(ctrl core.ParameterControl, cur float64, direction int) float64 {
	target := cur + float64(direction)*floatStep(ctrl)
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target
}

// canAdjust reports whether a step in direction would change the value.
func canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		return adjustInt(state.control, state.intValue, direction) != state.intValue
	case core.ParamTypeFloat:
		return math.Abs(adjustFloat(state.control, state.floatValue, direction)-state.floatValue) >= 1e-9
	default:
		return false
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func formatBool(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

// refreshValues copies the snapshot values into the control states.
func refreshValues(controls []hudControlState, snapshot core.ParameterSnapshot) {
	for i := range controls {
		state := &controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
		case core.ParamTypeBool:
			parsed, err := strconv.ParseBool(param.Value)
			if err != nil {
				continue
			}
			state.boolValue = parsed
			state.value = formatBool(parsed)
		default:
			continue
		}
		state.hasValue = true
	}
}

// sameControls reports whether the control list still matches the states.
func sameControls(states []hudControlState, controls []core.ParameterControl) bool {
	if len(states) != len(controls) {
		return false
	}
	for i := range controls {
		if states[i].control != controls[i] {
			return false
		}
	}
	return true
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
