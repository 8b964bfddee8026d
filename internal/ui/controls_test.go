package ui

import (
	"strings"
	"testing"
	"time"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"
)

type fakeParams struct {
	values map[string]float64
	sets   int
}

func (f *fakeParams) Parameters() core.ParameterSnapshot {
	var params []core.Parameter
	for key, v := range f.values {
		params = append(params, core.Parameter{Key: key, Type: core.ParamTypeFloat, Value: formatFloat(core.ParameterControl{Step: 0.0001}, v)})
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "Theme", Params: params}}}
}

func (f *fakeParams) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0.01, Max: 1, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 5, HasMin: true, HasMax: true},
		{Key: "missing", Label: "Missing", Type: core.ParamTypeFloat, Step: 1},
	}
}

func (f *fakeParams) SetFloatParameter(key string, value float64) bool {
	if _, ok := f.values[key]; !ok {
		return false
	}
	f.values[key] = value
	f.sets++
	return true
}

func TestControlPanelAdjustsWithinBounds(t *testing.T) {
	src := &fakeParams{values: map[string]float64{"density": 0.02, "speed": 1}}
	p := newControlPanel(src, 220)
	p.refresh()

	density := &p.controls[0]
	if !density.hasValue || density.value != "0.02" {
		t.Fatalf("unexpected density state %+v", density)
	}
	if p.controls[2].hasValue {
		t.Fatal("control without a parameter should have no value")
	}

	if !p.click(density.plusRect.Min.X+1, density.plusRect.Min.Y+1) {
		t.Fatal("expected plus button hit")
	}
	if got := src.values["density"]; got < 0.0299 || got > 0.0301 {
		t.Fatalf("expected density 0.03, got %f", got)
	}

	// Two presses down clamp at the minimum.
	p.click(density.minusRect.Min.X+1, density.minusRect.Min.Y+1)
	p.click(density.minusRect.Min.X+1, density.minusRect.Min.Y+1)
	p.click(density.minusRect.Min.X+1, density.minusRect.Min.Y+1)
	if got := src.values["density"]; got != 0.01 {
		t.Fatalf("expected clamp at 0.01, got %f", got)
	}
	if p.canAdjust(density, -1) {
		t.Fatal("minus should be disabled at the minimum")
	}
	if !p.canAdjust(density, 1) {
		t.Fatal("plus should stay enabled")
	}

	if p.click(0, 0) {
		t.Fatal("click outside buttons should not register")
	}
}

func TestControlPanelLayout(t *testing.T) {
	p := newControlPanel(&fakeParams{values: map[string]float64{}}, 200)
	for i, c := range p.controls {
		if c.plusRect.Max.X != 200-panelPadding {
			t.Fatalf("control %d plus button not right-aligned: %v", i, c.plusRect)
		}
		if c.minusRect.Max.X > c.plusRect.Min.X {
			t.Fatalf("control %d buttons overlap", i)
		}
	}
	if p.height() <= controlsTop {
		t.Fatal("panel height should cover the controls")
	}
}

type fakeStats struct{ stats rain.Stats }

func (f fakeStats) State() rain.State             { return rain.StateRunning }
func (f fakeStats) Columns() int                  { return 91 }
func (f fakeStats) Stats() rain.Stats             { return f.stats }
func (f fakeStats) TargetInterval() time.Duration { return 50 * time.Millisecond }
func (f fakeStats) Config() rain.Config           { return rain.DefaultConfig() }

func TestStatsLines(t *testing.T) {
	lines := statsLines(fakeStats{})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "running") || !strings.Contains(lines[0], "91") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "target 20.0/s") || !strings.Contains(lines[1], "measured --") {
		t.Fatalf("unexpected timing line %q", lines[1])
	}
}
