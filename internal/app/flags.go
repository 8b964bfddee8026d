package app

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"
	"neon-rain/internal/style"
)

// ReduceMotionEnv maps to the reduced-motion media preference.
const ReduceMotionEnv = "NEON_RAIN_REDUCE_MOTION"

// Config represents the command-line parameters shared by the rain commands.
type Config struct {
	SurfaceID    string
	Theme        string
	Vars         VarFlags
	Variant      string
	ReduceMotion bool
	Seed         int64
	TPS          int
	Width        int
	Height       int
}

// NewConfig returns a Config populated with defaults; the reduced-motion
// default comes from the environment.
func NewConfig() *Config {
	return &Config{
		SurfaceID:    rain.DefaultSurfaceID,
		Vars:         VarFlags{},
		ReduceMotion: envBool(os.Getenv(ReduceMotionEnv)),
		TPS:          60,
		Width:        1280,
		Height:       720,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.SurfaceID, "surface", c.SurfaceID, "surface identifier to draw on")
	fs.StringVar(&c.Theme, "theme", c.Theme, "stylesheet with --matrix-* / --neon-primary custom properties")
	fs.Var(c.Vars, "var", "styling variable override name=value (repeatable); numbers must be plain, \"2px\" falls back to the default")
	fs.StringVar(&c.Variant, "variant", c.Variant, "color variant: "+strings.Join(rain.Variants(), ", "))
	fs.BoolVar(&c.ReduceMotion, "reduce-motion", c.ReduceMotion, "honor a reduced-motion preference (default from $"+ReduceMotionEnv+")")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "host frames per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial surface width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial surface height in pixels")
}

// Styles builds the variable store: theme file first, then -var overrides.
func (c *Config) Styles() (*style.Vars, error) {
	vars := style.NewVars()
	if c.Theme != "" {
		if err := vars.LoadFile(c.Theme); err != nil {
			return nil, err
		}
	}
	vars.Apply(c.Vars)
	return vars, nil
}

// Deps assembles the renderer dependencies that do not come from a host.
func (c *Config) Deps(logger *log.Logger) (rain.Deps, error) {
	vars, err := c.Styles()
	if err != nil {
		return rain.Deps{}, err
	}
	return rain.Deps{Vars: vars, Rand: core.NewRNG(c.Seed), Logger: logger}, nil
}

// VarFlags collects repeated -var name=value flags.
type VarFlags map[string]string

// String implements flag.Value.
func (v VarFlags) String() string {
	pairs := make([]string, 0, len(v))
	for name, value := range v {
		pairs = append(pairs, name+"="+value)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

// Set implements flag.Value.
func (v VarFlags) Set(s string) error {
	name, value, err := style.ParseAssignment(s)
	if err != nil {
		return err
	}
	v[name] = value
	return nil
}

func envBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

// Usage prints the variant list after the flag defaults.
func Usage(fs *flag.FlagSet) func() {
	return func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nStyling variables: %s, %s, %s, %s\n", rain.VarDensity, rain.VarSpeed, rain.VarOpacity, rain.VarPrimary)
	}
}
