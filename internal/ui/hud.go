//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"neon-rain/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a toggleable parameter panel in the top-right corner. Button
// presses write through the source's FloatParameterSetter.
type HUD struct {
	panel   *controlPanel
	visible bool
	offsetX int

	img   *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD for source with the given panel width.
func NewHUD(source core.ParameterControlsProvider, width int) *HUD {
	if width <= 0 {
		width = 220
	}
	h := &HUD{panel: newControlPanel(source, width)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Update toggles the panel with H and handles button clicks.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	h.panel.refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	h.panel.click(mx-h.offsetX, my)
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible {
		return
	}
	width, height := h.panel.width, h.panel.height()
	if h.img == nil || h.img.Bounds().Dy() != height {
		h.img = ebiten.NewImage(width, height)
	}
	h.img.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()

	h.offsetX = screen.Bounds().Dx() - width
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.img, op)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	text.Draw(h.img, "Rain Controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.panel.controls {
		state := &h.panel.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.img, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.img, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", h.panel.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.panel.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.img.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.img, label, face, x, y, fg)
}
