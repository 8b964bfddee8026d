//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"
	"neon-rain/internal/render"
	"neon-rain/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var variantKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4}

// Game hosts a rain renderer in an ebiten window. The window is the page:
// its size is the viewport, the first Layout call is the ready signal, and
// each Update is one host frame.
type Game struct {
	page    *core.Page
	queue   *core.FrameQueue
	surface *render.Surface
	rain    *rain.Renderer
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay

	surfaceID string
	start     time.Time
}

// New constructs a Game from the command-line configuration.
func New(cfg *Config, logger *log.Logger) (*Game, error) {
	deps, err := cfg.Deps(logger)
	if err != nil {
		return nil, err
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}

	g := &Game{
		page:      core.NewPage(size),
		queue:     &core.FrameQueue{},
		surface:   render.NewSurface(cfg.SurfaceID, size, nil),
		painter:   render.NewPainter(),
		surfaceID: cfg.SurfaceID,
		start:     time.Now(),
	}
	g.page.SetReducedMotion(cfg.ReduceMotion)
	g.page.AddSurface(g.surface)

	deps.Document = g.page
	deps.Window = g.page
	deps.Scheduler = g.queue
	g.rain = rain.New(deps)
	if cfg.Variant != "" {
		g.rain.SetVariant(cfg.Variant)
	}
	g.hud = ui.NewHUD(g.rain, 220)
	g.overlay = ui.NewOverlay(g.rain)

	rain.AutoStart(g.page, g.rain, cfg.SurfaceID)
	return g, nil
}

// Update handles input and runs one host frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.rain.Destroy()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.rain.Destroy()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.rain.Init(g.surfaceID)
	}
	for i, name := range rain.Variants() {
		if i < len(variantKeys) && inpututil.IsKeyJustPressed(variantKeys[i]) {
			g.rain.SetVariant(name)
		}
	}

	g.hud.Update()
	g.overlay.Update()

	g.queue.Run(time.Since(g.start))
	return nil
}

// Draw composites the surface at the configured opacity.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if !g.surface.Hidden() {
		g.painter.Blit(screen, g.surface.Image(), g.rain.Config().Opacity)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout tracks the window size as the page viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.page.Resize(core.Size{W: outsideWidth, H: outsideHeight})
	g.page.MarkReady()
	return outsideWidth, outsideHeight
}
