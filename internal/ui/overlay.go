//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay shows frame-timing diagnostics in the bottom-left corner. F
// toggles it.
type Overlay struct {
	source  statsSource
	visible bool
	lines   []string
}

// NewOverlay constructs an overlay reading from source.
func NewOverlay(source statsSource) *Overlay {
	return &Overlay{source: source}
}

// Update toggles the overlay and refreshes its text.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		o.visible = !o.visible
	}
	if o.visible {
		o.lines = statsLines(o.source)
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	face := basicfont.Face7x13
	y := screen.Bounds().Dy() - panelPadding - (len(o.lines)-1)*16
	for _, line := range o.lines {
		text.Draw(screen, line, face, panelPadding, y, color.RGBA{R: 200, G: 255, B: 200, A: 255})
		y += 16
	}
}
