package rain

import (
	"image/color"
	"slices"
	"testing"

	"neon-rain/internal/style"
)

func TestReadConfigDefaults(t *testing.T) {
	cfg, rejected := ReadConfig(style.NewVars())
	if cfg != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if len(rejected) != 0 {
		t.Fatalf("empty store should not reject anything: %v", rejected)
	}
	if cfg.Density != 0.03 || cfg.Speed != 1 || cfg.Opacity != 0.18 || cfg.PrimaryColor != "#00ff41" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestReadConfigOverrides(t *testing.T) {
	vars := style.NewVars()
	vars.Apply(map[string]string{
		VarDensity: " 0.07 ",
		VarSpeed:   "1.5",
		VarOpacity: "0.4",
		VarPrimary: "#ff3333",
	})
	cfg, rejected := ReadConfig(vars)
	if len(rejected) != 0 {
		t.Fatalf("unexpected rejections %v", rejected)
	}
	want := Config{Density: 0.07, Speed: 1.5, Opacity: 0.4, PrimaryColor: "#ff3333"}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestReadConfigMalformedFallsBack(t *testing.T) {
	vars := style.NewVars()
	vars.Apply(map[string]string{
		VarDensity: "lots",
		VarSpeed:   "0",
		VarOpacity: "NaN",
	})
	cfg, rejected := ReadConfig(vars)
	def := DefaultConfig()
	if cfg.Density != def.Density || cfg.Speed != def.Speed || cfg.Opacity != def.Opacity {
		t.Fatalf("malformed values should fall back, got %+v", cfg)
	}
	slices.Sort(rejected)
	want := []string{VarDensity, VarOpacity, VarSpeed}
	if !slices.Equal(rejected, want) {
		t.Fatalf("expected rejected %v, got %v", want, rejected)
	}

	vars.Set(VarSpeed, "-2")
	vars.Set(VarDensity, "Inf")
	cfg, _ = ReadConfig(vars)
	if cfg.Speed != def.Speed || cfg.Density != def.Density {
		t.Fatalf("negative speed and infinite density should fall back, got %+v", cfg)
	}
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#00d4ff")
	if !ok || c != (color.NRGBA{R: 0, G: 0xd4, B: 0xff, A: 255}) {
		t.Fatalf("unexpected color %v ok=%v", c, ok)
	}
	c, ok = ParseColor("#f30")
	if !ok || c != (color.NRGBA{R: 0xff, G: 0x33, B: 0, A: 255}) {
		t.Fatalf("short hex: %v ok=%v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Fatal("named colors are not supported")
	}
}

func TestInvalidPrimaryDrawsDefault(t *testing.T) {
	hs := newHarness(140, 140, map[string]string{VarPrimary: "rgb(1,2,3)"})
	hs.r.Init("")
	if hs.r.Config().PrimaryColor != "rgb(1,2,3)" {
		t.Fatal("config should keep the raw color string")
	}
	hs.step()
	def, _ := ParseColor(DefaultConfig().PrimaryColor)
	for _, call := range hs.surface.canvas.texts {
		if call.shadow != def {
			t.Fatalf("expected default glow, got %v", call.shadow)
		}
	}
}

func TestVariants(t *testing.T) {
	want := []string{"neon", "neon-amber", "neon-blue", "neon-red"}
	if got := Variants(); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for name, hex := range map[string]string{
		"neon": "#00ff41", "neon-blue": "#00d4ff", "neon-amber": "#ffcc00", "neon-red": "#ff3333",
	} {
		if got, ok := VariantColor(name); !ok || got != hex {
			t.Fatalf("%s: expected %s, got %s", name, hex, got)
		}
	}
}
