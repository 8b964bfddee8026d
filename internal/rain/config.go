package rain

import (
	"image/color"
	"math"
	"sort"
	"strconv"

	"neon-rain/internal/core"

	"github.com/lucasb-eyer/go-colorful"
)

// Styling variables read by the renderer.
const (
	VarDensity = "--matrix-density"
	VarSpeed   = "--matrix-speed"
	VarOpacity = "--matrix-opacity"
	VarPrimary = "--neon-primary"
)

// Config holds the values read from the styling-variable store.
type Config struct {
	// Density is the chance per qualifying frame that a drop below the
	// bottom edge restarts at the top.
	Density float64
	// Speed multiplies the base update rate.
	Speed float64
	// Opacity is for the host compositing the surface; the renderer itself
	// never applies it.
	Opacity      float64
	PrimaryColor string
}

// DefaultConfig returns the fallback configuration.
func DefaultConfig() Config {
	return Config{
		Density:      0.03,
		Speed:        1.0,
		Opacity:      0.18,
		PrimaryColor: "#00ff41",
	}
}

// ReadConfig loads the configuration from vars. Empty or unusable numeric
// values fall back to the defaults; the names of the variables that fell back
// despite being set are returned.
func ReadConfig(vars core.VarStore) (Config, []string) {
	c := DefaultConfig()
	if vars == nil {
		return c, nil
	}
	var rejected []string
	if v := vars.Get(VarDensity); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && isFinite(parsed) {
			c.Density = parsed
		} else {
			rejected = append(rejected, VarDensity)
		}
	}
	if v := vars.Get(VarSpeed); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && isFinite(parsed) && parsed > 0 {
			c.Speed = parsed
		} else {
			rejected = append(rejected, VarSpeed)
		}
	}
	if v := vars.Get(VarOpacity); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && isFinite(parsed) {
			c.Opacity = parsed
		} else {
			rejected = append(rejected, VarOpacity)
		}
	}
	if v := vars.Get(VarPrimary); v != "" {
		c.PrimaryColor = v
	}
	return c, rejected
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// ParseColor converts a "#rgb" or "#rrggbb" string to a color.
func ParseColor(s string) (color.NRGBA, bool) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}

var variants = map[string]string{
	"neon":       "#00ff41",
	"neon-blue":  "#00d4ff",
	"neon-amber": "#ffcc00",
	"neon-red":   "#ff3333",
}

// VariantColor returns the primary color of a named variant.
func VariantColor(name string) (string, bool) {
	c, ok := variants[name]
	return c, ok
}

// Variants lists the recognized variant names, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
