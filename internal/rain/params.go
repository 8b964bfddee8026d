package rain

import (
	"strconv"

	"neon-rain/internal/core"
)

// Parameters implements core.ParameterControlsProvider.
func (r *Renderer) Parameters() core.ParameterSnapshot {
	cfg := r.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Theme",
			Params: []core.Parameter{
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: formatFloat(cfg.Density)},
				{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Value: formatFloat(cfg.Speed)},
				{Key: "opacity", Label: "Opacity", Type: core.ParamTypeFloat, Value: formatFloat(cfg.Opacity)},
				{Key: "color", Label: "Color", Type: core.ParamTypeString, Value: cfg.PrimaryColor},
			},
		},
		{
			Name: "Surface",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: r.state.String()},
				{Key: "columns", Label: "Columns", Type: core.ParamTypeString, Value: strconv.Itoa(len(r.drops))},
			},
		},
	}}
}

// ParameterControls implements core.ParameterControlsProvider.
func (r *Renderer) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true},
		{Key: "opacity", Label: "Opacity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

var parameterVars = map[string]string{
	"density": VarDensity,
	"speed":   VarSpeed,
	"opacity": VarOpacity,
}

// SetFloatParameter writes the styling variable behind key and reloads the
// configuration, the same path SetVariant takes.
func (r *Renderer) SetFloatParameter(key string, value float64) bool {
	name, ok := parameterVars[key]
	if !ok || r.vars == nil {
		return false
	}
	r.vars.Set(name, formatFloat(value))
	r.readConfig()
	return true
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', 4, 64) }
