package app

import (
	"image"
	"image/color"
	"log"
	"time"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"
	"neon-rain/internal/render"

	xdraw "golang.org/x/image/draw"
)

// Snapshot runs the renderer headless for the given number of host frames at
// cfg.TPS and returns the surface flattened over black at the configured
// opacity, scaled by scale.
func Snapshot(cfg *Config, frames int, scale float64, logger *log.Logger) (*image.RGBA, *rain.Renderer, error) {
	deps, err := cfg.Deps(logger)
	if err != nil {
		return nil, nil, err
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}
	page := core.NewPage(size)
	page.SetReducedMotion(cfg.ReduceMotion)
	surface := render.NewSurface(cfg.SurfaceID, size, nil)
	page.AddSurface(surface)
	queue := &core.FrameQueue{}

	deps.Document = page
	deps.Window = page
	deps.Scheduler = queue
	r := rain.New(deps)
	if cfg.Variant != "" {
		r.SetVariant(cfg.Variant)
	}
	rain.AutoStart(page, r, cfg.SurfaceID)
	page.MarkReady()

	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	step := time.Second / time.Duration(tps)
	for i := 1; i <= frames; i++ {
		queue.Run(time.Duration(i) * step)
	}

	out := surface.Flatten(color.Black, r.Config().Opacity)
	if scale > 0 && scale != 1 {
		b := out.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, int(float64(b.Dx())*scale), int(float64(b.Dy())*scale)))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), out, b, xdraw.Src, nil)
		out = scaled
	}
	return out, r, nil
}
