//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads an offscreen raster into an ebiten image and draws it.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter returns a painter; its image is allocated on the first Blit.
func NewPainter() *Painter { return &Painter{} }

// Blit uploads src and draws it onto dst at the given opacity.
func (p *Painter) Blit(dst *ebiten.Image, src *image.RGBA, opacity float64) {
	b := src.Bounds()
	if b.Empty() {
		return
	}
	if p.img == nil || p.w != b.Dx() || p.h != b.Dy() {
		if p.img != nil {
			p.img.Dispose()
		}
		p.w, p.h = b.Dx(), b.Dy()
		p.img = ebiten.NewImage(p.w, p.h)
	}
	p.img.WritePixels(src.Pix)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(clamp01(opacity)))
	dst.DrawImage(p.img, op)
}
