package term

import (
	"context"
	"fmt"
	"time"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"

	"github.com/gdamore/tcell/v2"
)

// frameInterval paces the host frame loop (~60 Hz); the renderer throttles
// itself below that.
const frameInterval = 16 * time.Millisecond

// Host drives a rain renderer on a tcell screen.
type Host struct {
	screen  tcell.Screen
	page    *core.Page
	queue   *core.FrameQueue
	surface *Surface
	rain    *rain.Renderer
	start   time.Time
}

// NewHost prepares a host around an initialized screen. deps.Document,
// deps.Window and deps.Scheduler are filled in by the host.
func NewHost(screen tcell.Screen, surfaceID string, reducedMotion bool, deps rain.Deps) *Host {
	if surfaceID == "" {
		surfaceID = rain.DefaultSurfaceID
	}
	h := &Host{
		screen:  screen,
		page:    core.NewPage(viewportOf(screen)),
		queue:   &core.FrameQueue{},
		surface: NewSurface(surfaceID),
	}
	h.page.SetReducedMotion(reducedMotion)
	h.page.AddSurface(h.surface)

	deps.Document = h.page
	deps.Window = h.page
	deps.Scheduler = h.queue
	h.rain = rain.New(deps)
	return h
}

// Renderer exposes the hosted renderer.
func (h *Host) Renderer() *rain.Renderer { return h.rain }

// Page exposes the host page.
func (h *Host) Page() *core.Page { return h.page }

// Start schedules the renderer and signals that the page is ready.
func (h *Host) Start(surfaceID string) {
	h.start = time.Now()
	rain.AutoStart(h.page, h.rain, surfaceID)
	h.page.MarkReady()
}

// Run starts the renderer and loops until ctx is done or the user quits.
func (h *Host) Run(ctx context.Context, surfaceID string) error {
	h.Start(surfaceID)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.rain.Destroy()
			return ctx.Err()
		case ev := <-events:
			if !h.handleEvent(ev) {
				h.rain.Destroy()
				return nil
			}
		case <-ticker.C:
			h.Tick(time.Since(h.start))
		}
	}
}

// Tick runs one host frame and presents it.
func (h *Host) Tick(ts time.Duration) {
	h.queue.Run(ts)
	if h.surface.Hidden() {
		h.screen.Clear()
	} else {
		h.surface.Grid().Flush(h.screen, h.rain.Config().Opacity)
	}
	h.screen.Show()
}

func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			return h.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		h.screen.Sync()
		h.page.Resize(viewportOf(h.screen))
	}
	return true
}

func (h *Host) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'd':
		h.rain.Destroy()
	case 'i':
		h.rain.Init(h.surface.ID())
	default:
		variants := rain.Variants()
		if idx := int(r - '1'); idx >= 0 && idx < len(variants) {
			h.rain.SetVariant(variants[idx])
		}
	}
	return true
}

func viewportOf(screen tcell.Screen) core.Size {
	cols, rows := screen.Size()
	return core.Size{W: cols * CellPx, H: rows * CellPx}
}

// OpenScreen creates and initializes the terminal screen.
func OpenScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()
	return screen, nil
}
