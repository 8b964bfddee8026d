// Package rain draws the animated digital-rain effect onto a host surface.
//
// A Renderer owns the per-column drop state, the configuration read from the
// styling-variable store, and the frame callback. Every host capability it
// needs is injected through Deps; all calls must come from the host's single
// frame-loop goroutine.
package rain

import (
	"image/color"
	"log"
	"os"
	"time"

	"neon-rain/internal/core"
)

// DefaultSurfaceID is the surface identifier used when Init receives "".
const DefaultSurfaceID = "matrix-rain"

const (
	// GlyphSize is the column width and font size in pixels.
	GlyphSize = 14
	// BaseRate is the update rate, per second, at speed 1.
	BaseRate = 20

	dropStep   = 0.5
	leadCutoff = 0.85
	leadBlur   = 8
	trailBlur  = 4
)

var (
	fadeColor = color.NRGBA{A: 13} // rgba(0, 0, 0, 0.05)
	leadColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// State is the lifecycle stage of a Renderer.
type State int

const (
	StateUninitialized State = iota
	StateRunning
	StateStopped
	// StateInactive means Init found no surface, no 2D context, or a
	// reduced-motion preference. No frame loop runs.
	StateInactive
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateInactive:
		return "inactive"
	default:
		return "uninitialized"
	}
}

// Deps are the host capabilities a Renderer draws on.
type Deps struct {
	Document  core.Document
	Window    core.Window
	Scheduler core.Scheduler
	Vars      core.VarStore

	// Rand defaults to a clock-seeded generator.
	Rand *core.RNG
	// Logger defaults to a stderr logger prefixed "rain: ".
	Logger *log.Logger
}

// Stats summarizes the qualifying frames drawn since Init.
type Stats struct {
	Frames       int
	LastInterval time.Duration
	first, last  time.Duration
}

// MeanInterval is the average spacing between qualifying frames.
func (s Stats) MeanInterval() time.Duration {
	if s.Frames < 2 {
		return 0
	}
	return (s.last - s.first) / time.Duration(s.Frames-1)
}

func (s *Stats) record(ts time.Duration) {
	if s.Frames == 0 {
		s.first = ts
	} else {
		s.LastInterval = ts - s.last
	}
	s.last = ts
	s.Frames++
}

// Renderer is a single rain effect bound to one surface.
type Renderer struct {
	doc   core.Document
	win   core.Window
	sched core.Scheduler
	vars  core.VarStore
	rng   *core.RNG
	log   *log.Logger

	state   State
	surface core.Surface
	canvas  core.Canvas
	size    core.Size

	cfg      Config
	primary  color.Color
	throttle *core.FrameThrottle
	drops    []float64

	frameID   core.FrameID
	resizeID  core.ListenerID
	listening bool
	stats     Stats
}

// New constructs a Renderer. It does nothing until Init.
func New(deps Deps) *Renderer {
	r := &Renderer{
		doc:      deps.Document,
		win:      deps.Window,
		sched:    deps.Scheduler,
		vars:     deps.Vars,
		rng:      deps.Rand,
		log:      deps.Logger,
		throttle: core.NewFrameThrottle(BaseRate),
	}
	if r.rng == nil {
		r.rng = core.NewRNG(0)
	}
	if r.log == nil {
		r.log = log.New(os.Stderr, "rain: ", log.LstdFlags)
	}
	r.applyConfig(DefaultConfig())
	return r
}

// Init binds the renderer to the surface with the given identifier and starts
// the frame loop. A missing surface or a reduced-motion preference leaves the
// renderer inactive; neither is reported as an error.
func (r *Renderer) Init(surfaceID string) {
	if surfaceID == "" {
		surfaceID = DefaultSurfaceID
	}
	if r.state == StateRunning {
		r.log.Printf("already running on %q, ignoring init for %q", r.surface.ID(), surfaceID)
		return
	}
	s, ok := r.doc.SurfaceByID(surfaceID)
	if !ok || s == nil {
		r.log.Printf("warning: surface not found: %s", surfaceID)
		r.state = StateInactive
		return
	}
	if r.win.ReducedMotion() {
		s.Hide()
		r.state = StateInactive
		r.log.Printf("reduced motion preferred, surface %s hidden", surfaceID)
		return
	}
	canvas := s.Context2D()
	if canvas == nil {
		r.log.Printf("warning: surface %s has no 2D context", surfaceID)
		r.state = StateInactive
		return
	}

	r.surface = s
	r.canvas = canvas
	r.readConfig()
	r.resize()
	r.resizeID = r.win.AddResizeListener(r.onResize)
	r.listening = true

	r.throttle.Reset()
	r.stats = Stats{}
	r.frameID = r.sched.RequestFrame(r.frame)
	r.state = StateRunning
	r.log.Printf("initialized: density=%g speed=%g", r.cfg.Density, r.cfg.Speed)
}

// Destroy stops the frame loop, removes the resize listener registered by
// Init, and clears the surface.
func (r *Renderer) Destroy() {
	if r.frameID != 0 {
		r.sched.CancelFrame(r.frameID)
		r.frameID = 0
	}
	if r.listening {
		r.win.RemoveResizeListener(r.resizeID)
		r.listening = false
	}
	if r.canvas != nil {
		r.canvas.ClearRect(0, 0, float64(r.size.W), float64(r.size.H))
	}
	if r.state == StateRunning {
		r.state = StateStopped
	}
}

// SetVariant switches the primary color to a named variant and reloads the
// configuration. Unknown names are ignored.
func (r *Renderer) SetVariant(name string) {
	c, ok := VariantColor(name)
	if !ok || r.vars == nil {
		return
	}
	r.vars.Set(VarPrimary, c)
	r.readConfig()
}

// State reports the lifecycle stage.
func (r *Renderer) State() State { return r.state }

// Config returns the configuration currently in effect.
func (r *Renderer) Config() Config { return r.cfg }

// Columns returns the current column count.
func (r *Renderer) Columns() int { return len(r.drops) }

// Drops returns a copy of the per-column drop rows.
func (r *Renderer) Drops() []float64 { return append([]float64(nil), r.drops...) }

// Stats reports qualifying-frame timing since the last Init.
func (r *Renderer) Stats() Stats { return r.stats }

// TargetInterval is the minimum spacing between qualifying frames.
func (r *Renderer) TargetInterval() time.Duration { return r.throttle.Interval() }

func (r *Renderer) readConfig() {
	cfg, rejected := ReadConfig(r.vars)
	for _, name := range rejected {
		r.log.Printf("warning: %s=%q is not a usable number, using default", name, r.vars.Get(name))
	}
	r.applyConfig(cfg)
}

func (r *Renderer) applyConfig(cfg Config) {
	r.cfg = cfg
	r.throttle.SetRate(BaseRate * cfg.Speed)
	if c, ok := ParseColor(cfg.PrimaryColor); ok {
		r.primary = c
		return
	}
	def, _ := ParseColor(DefaultConfig().PrimaryColor)
	r.primary = def
	r.log.Printf("warning: %s=%q is not a hex color, drawing with %s", VarPrimary, cfg.PrimaryColor, DefaultConfig().PrimaryColor)
}

func (r *Renderer) onResize() {
	r.readConfig()
	r.resize()
}

// resize matches the surface to the viewport and discards all drop state.
func (r *Renderer) resize() {
	r.size = r.win.Viewport()
	r.surface.SetSize(r.size)

	cols := r.size.W / GlyphSize
	if cols < 0 {
		cols = 0
	}
	rows := float64(r.size.H) / GlyphSize
	r.drops = make([]float64, cols)
	for i := range r.drops {
		if r.rng.Float64() > 0.5 {
			r.drops[i] = r.rng.Float64() * -rows
		} else {
			r.drops[i] = 1
		}
	}
}

func (r *Renderer) frame(ts time.Duration) {
	r.frameID = r.sched.RequestFrame(r.frame)
	if !r.throttle.Accept(ts) {
		return
	}
	r.stats.record(ts)
	r.draw()
}

func (r *Renderer) draw() {
	c := r.canvas
	height := float64(r.size.H)
	c.FillRect(0, 0, float64(r.size.W), height, fadeColor)
	c.SetFont(GlyphSize)

	for i := range r.drops {
		glyph := Alphabet[r.rng.IntN(len(Alphabet))]
		x := float64(i * GlyphSize)
		y := r.drops[i] * GlyphSize

		// Re-rolled every frame, so leads flicker along the column.
		lead := r.drops[i] > 1 && r.rng.Float64() > leadCutoff
		fill, blur := r.primary, float64(trailBlur)
		if lead {
			fill, blur = leadColor, leadBlur
		}
		c.SetShadow(r.primary, blur)
		c.FillText(string(glyph), x, y, fill)

		if y > height && r.rng.Float64() > 1-r.cfg.Density {
			r.drops[i] = 0
		}
		r.drops[i] += dropStep
	}
}
