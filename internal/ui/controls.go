// Package ui draws the ebiten HUD and debug overlay for the rain window.
// The panel logic in this file has no ebiten dependency.
package ui

import (
	"image"
	"math"
	"strconv"

	"neon-rain/internal/core"
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 14
)

type controlState struct {
	control core.ParameterControl
	value   string

	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// controlPanel tracks HUD controls and applies +/- clicks to the source.
type controlPanel struct {
	source   core.ParameterControlsProvider
	setter   core.FloatParameterSetter
	width    int
	controls []controlState
}

func newControlPanel(source core.ParameterControlsProvider, width int) *controlPanel {
	p := &controlPanel{source: source, width: width}
	if setter, ok := source.(core.FloatParameterSetter); ok {
		p.setter = setter
	}
	for _, ctrl := range source.ParameterControls() {
		p.controls = append(p.controls, controlState{control: ctrl, value: "--"})
	}
	p.layout()
	return p
}

func (p *controlPanel) layout() {
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = top
		p.controls[i].minusRect = minusRect
		p.controls[i].plusRect = plusRect
	}
}

// height is the panel height needed for all controls.
func (p *controlPanel) height() int {
	return controlsTop + len(p.controls)*lineHeight + panelPadding
}

func (p *controlPanel) refresh() {
	values := map[string]string{}
	for _, group := range p.source.Parameters().Groups {
		for _, param := range group.Params {
			values[param.Key] = param.Value
		}
	}
	for i := range p.controls {
		state := &p.controls[i]
		raw, ok := values[state.control.Key]
		parsed, err := strconv.ParseFloat(raw, 64)
		if !ok || err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

// click handles a press at panel-local coordinates and reports whether it
// hit a button.
func (p *controlPanel) click(x, y int) bool {
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			p.adjust(state, -1)
			return true
		}
		if pointInRect(x, y, state.plusRect) {
			p.adjust(state, 1)
			return true
		}
	}
	return false
}

func (p *controlPanel) adjust(state *controlState, direction int) {
	if p.setter == nil || direction == 0 || state.control.Type != core.ParamTypeFloat {
		return
	}
	target := state.floatValue + float64(direction)*stepOf(state.control)
	if state.control.HasMin && target < state.control.Min {
		target = state.control.Min
	}
	if state.control.HasMax && target > state.control.Max {
		target = state.control.Max
	}
	if math.Abs(target-state.floatValue) < 1e-9 {
		return
	}
	if p.setter.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (p *controlPanel) canAdjust(state *controlState, direction int) bool {
	if p.setter == nil || !state.hasValue || state.control.Type != core.ParamTypeFloat {
		return false
	}
	target := state.floatValue + float64(direction)*stepOf(state.control)
	if state.control.HasMin && direction < 0 && target < state.control.Min-1e-9 {
		return state.floatValue > state.control.Min+1e-9
	}
	if state.control.HasMax && direction > 0 && target > state.control.Max+1e-9 {
		return state.floatValue < state.control.Max-1e-9
	}
	return true
}

func stepOf(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := stepOf(ctrl)
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

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
