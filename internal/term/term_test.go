package term

import (
	"image/color"
	"io"
	"log"
	"testing"
	"time"

	"neon-rain/internal/core"
	"neon-rain/internal/rain"
	"neon-rain/internal/style"

	"github.com/gdamore/tcell/v2"
)

func TestGridFillTextPlacesGlyphAboveBaseline(t *testing.T) {
	g := NewGrid(4, 4)
	g.SetFont(CellPx)
	g.SetShadow(color.White, 8)
	g.FillText("ｱ", 2*CellPx, 1.5*CellPx, color.NRGBA{G: 255, A: 255})

	cl := g.at(2, 1)
	if cl.r != 'ｱ' {
		t.Fatalf("expected glyph at (2,1), got %q", cl.r)
	}
	if !cl.glow {
		t.Fatal("strong glow should mark the cell bold")
	}
	if g.at(2, 0).r != 0 {
		t.Fatal("glyph spilled into the row above")
	}

	// Off-grid positions are dropped.
	g.FillText("A", 0, -3*CellPx, color.White)
	g.FillText("A", 10*CellPx, CellPx, color.White)
}

func TestGridFadeAndClear(t *testing.T) {
	g := NewGrid(2, 1)
	g.FillText("A", 0, CellPx, color.NRGBA{G: 255, A: 255})
	g.FillText("B", CellPx, CellPx, color.NRGBA{G: 255, A: 255})

	g.FillRect(0, 0, 2*CellPx, CellPx, color.NRGBA{A: 128})
	if fg := g.at(0, 0).fg; fg.G > 0.51 || fg.G < 0.49 {
		t.Fatalf("expected half intensity, got %v", fg)
	}

	for i := 0; i < 10; i++ {
		g.FillRect(0, 0, CellPx, CellPx, color.NRGBA{A: 128})
	}
	if g.at(0, 0).r != 0 {
		t.Fatal("fully faded cell should be blank")
	}
	if g.at(1, 0).r != 'B' {
		t.Fatal("fade touched a cell outside the rect")
	}

	g.ClearRect(0, 0, 2*CellPx, CellPx)
	if g.at(1, 0).r != 0 {
		t.Fatal("clear left a glyph behind")
	}
}

func TestSurfaceMapsPixelsToCells(t *testing.T) {
	s := NewSurface("matrix-rain")
	s.SetSize(core.Size{W: 80 * CellPx, H: 24*CellPx + 5})
	cols, rows := s.Grid().Size()
	if cols != 80 || rows != 24 {
		t.Fatalf("expected 80x24 cells, got %dx%d", cols, rows)
	}
	if s.Size() != (core.Size{W: 80 * CellPx, H: 24 * CellPx}) {
		t.Fatalf("unexpected size %+v", s.Size())
	}
}

func newTestHost(t *testing.T, reduced bool) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(20, 10)

	h := NewHost(screen, "", reduced, rain.Deps{
		Vars:   style.NewVars(),
		Rand:   core.NewRNG(3),
		Logger: log.New(io.Discard, "", 0),
	})
	return h, screen
}

func TestHostRunsRenderer(t *testing.T) {
	h, _ := newTestHost(t, false)
	h.Start("")
	if h.Renderer().State() != rain.StateRunning {
		t.Fatalf("expected running, got %v", h.Renderer().State())
	}
	if got := h.Renderer().Columns(); got != 20 {
		t.Fatalf("expected one column per terminal cell, got %d", got)
	}

	for ts := 50 * time.Millisecond; ts <= 500*time.Millisecond; ts += 50 * time.Millisecond {
		h.Tick(ts)
	}
	glyphs := 0
	for _, cl := range h.surface.Grid().cells {
		if cl.r != 0 {
			glyphs++
		}
	}
	if glyphs == 0 {
		t.Fatal("expected glyphs on the grid")
	}
}

func TestHostResizeAndKeys(t *testing.T) {
	h, screen := newTestHost(t, false)
	h.Start("")

	screen.SetSize(30, 12)
	h.handleEvent(tcell.NewEventResize(30, 12))
	if got := h.Renderer().Columns(); got != 30 {
		t.Fatalf("expected 30 columns after resize, got %d", got)
	}

	h.handleRune('3')
	if got := h.Renderer().Config().PrimaryColor; got != "#00d4ff" {
		t.Fatalf("expected neon-blue, got %s", got)
	}
	h.handleRune('d')
	if h.Renderer().State() != rain.StateStopped {
		t.Fatal("d should destroy the renderer")
	}
	if h.Page().ResizeListeners() != 0 {
		t.Fatal("destroy should drop the resize listener")
	}
	h.handleRune('i')
	if h.Renderer().State() != rain.StateRunning {
		t.Fatal("i should restart the renderer")
	}
	if h.handleRune('q') {
		t.Fatal("q should quit")
	}
}

func TestHostReducedMotion(t *testing.T) {
	h, _ := newTestHost(t, true)
	h.Start("")
	if !h.surface.Hidden() {
		t.Fatal("surface should be hidden")
	}
	if h.queue.Pending() != 0 {
		t.Fatal("no frame should be scheduled")
	}
	h.Tick(time.Second)
}
