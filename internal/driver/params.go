package driver

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"weighted-ca/internal/core"
)

const layerWeightPrefix = "layer_weight_"

const (
	maxIterations = 10
	maxLayers     = 5
	minSize       = 10
	maxSize       = 200
)

// Parameters returns the current tunables grouped for display.
func (d *Driver) Parameters() core.ParameterSnapshot {
	w := d.cfg.Weighted
	layers := make([]core.Parameter, 0, w.LayerCount+1)
	layers = append(layers, intParam("layers", "Layer count", w.LayerCount))
	for i, weight := range w.LayerWeights {
		layers = append(layers, floatParam(layerWeightKey(i+1), fmt.Sprintf("Layer %d weight", i+1), weight))
	}
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("n", "Size", d.grid.Len()),
				int64Param("seed", "Seed", d.cfg.Seed),
				intParam("fill", "Fill probability", d.cfg.FillProbability),
			},
		},
		{
			Name:   "Layers",
			Params: layers,
		},
		{
			Name: "Weighting",
			Params: []core.Parameter{
				intParam("iterations", "Iterations", w.Iterations),
				boolParam("prev_states", "Use prev states", w.UsePrevStates),
				boolParam("current_cell", "Use current cell", w.UseCurrentCell),
				floatParam("current_weight", "Current cell weight", w.CurrentCellWeight),
				floatParam("die", "Min weight to die", w.MinWeightToDie),
				floatParam("spawn", "Min weight to spawn", w.MinWeightToSpawn),
				boolParam("walling", "Prefer walling", w.PreferWalling),
			},
		},
		{
			Name: "Automaton",
			Params: []core.Parameter{
				boolParam("automaton", "Run automaton", d.cfg.Automaton),
				stringParam("rule", "Rule", d.cfg.Rule.String()),
				intParam("generation", "Generation", d.generation),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters. The list grows and
// shrinks with the layer count.
func (d *Driver) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "n", Label: "Grid size", Type: core.ParamTypeInt, Step: 10, Min: minSize, Max: maxSize, HasMin: true, HasMax: true},
		{Key: "fill", Label: "Fill probability", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "iterations", Label: "Num iterations", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxIterations, HasMin: true, HasMax: true},
		{Key: "layers", Label: "Layer count", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxLayers, HasMin: true, HasMax: true},
	}
	for i := 1; i <= d.cfg.Weighted.LayerCount; i++ {
		controls = append(controls, core.ParameterControl{
			Key: layerWeightKey(i), Label: fmt.Sprintf("LayerW%d", i), Type: core.ParamTypeFloat,
			Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true,
		})
	}
	return append(controls,
		core.ParameterControl{Key: "prev_states", Label: "Use prev states", Type: core.ParamTypeBool},
		core.ParameterControl{Key: "current_cell", Label: "Use curr cell", Type: core.ParamTypeBool},
		core.ParameterControl{Key: "current_weight", Label: "Curr cell weight", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		core.ParameterControl{Key: "die", Label: "Min W to die", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		core.ParameterControl{Key: "spawn", Label: "Min W to spawn", Type: core.ParamTypeFloat, Step: 0.5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		core.ParameterControl{Key: "walling", Label: "Prefer walling", Type: core.ParamTypeBool},
		core.ParameterControl{Key: "automaton", Label: "Run automaton", Type: core.ParamTypeBool},
	)
}

// SetIntParameter updates an integer parameter, clamping to the control bounds.
// Changing "n" resizes the grid, which regenerates it.
func (d *Driver) SetIntParameter(key string, value int) bool {
	ctrl, ok := d.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = int(clamp(float64(value), ctrl))
	switch key {
	case "n":
		if value != d.grid.Len() {
			return d.Resize(value) == nil
		}
	case "fill":
		d.cfg.FillProbability = value
	case "iterations":
		d.cfg.Weighted.Iterations = value
	case "layers":
		if value != d.cfg.Weighted.LayerCount {
			d.cfg.Weighted.SetLayerCount(value)
		}
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter, clamping to the control bounds.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	ctrl, ok := d.control(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	value = clamp(value, ctrl)
	if layer, ok := parseLayerWeightKey(key); ok {
		d.cfg.Weighted.LayerWeights[layer-1] = value
		return true
	}
	switch key {
	case "current_weight":
		d.cfg.Weighted.CurrentCellWeight = value
	case "die":
		d.cfg.Weighted.MinWeightToDie = value
	case "spawn":
		d.cfg.Weighted.MinWeightToSpawn = value
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a checkbox parameter.
func (d *Driver) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "prev_states":
		d.cfg.Weighted.UsePrevStates = value
	case "current_cell":
		d.cfg.Weighted.UseCurrentCell = value
	case "walling":
		d.cfg.Weighted.PreferWalling = value
	case "automaton":
		d.cfg.Automaton = value
	default:
		return false
	}
	return true
}

func (d *Driver) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, ctrl := range d.ParameterControls() {
		if ctrl.Key == key && ctrl.Type == typ {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func clamp(v float64, ctrl core.ParameterControl) float64 {
	if ctrl.HasMin && v < ctrl.Min {
		v = ctrl.Min
	}
	if ctrl.HasMax && v > ctrl.Max {
		v = ctrl.Max
	}
	return v
}

func layerWeightKey(layer int) string {
	return layerWeightPrefix + strconv.Itoa(layer)
}

func parseLayerWeightKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, layerWeightPrefix)
	if !ok {
		return 0, false
	}
	layer, err := strconv.Atoi(rest)
	if err != nil || layer < 1 {
		return 0, false
	}
	return layer, true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
