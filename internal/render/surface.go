package render

import (
	"image"
	"image/color"

	"neon-rain/internal/core"

	xdraw "golang.org/x/image/draw"
)

// Surface is an offscreen core.Surface backed by an image.RGBA. Resizing
// discards the contents, like resizing an HTML canvas.
type Surface struct {
	id     string
	canvas *Raster
	hidden bool
}

// NewSurface allocates a transparent surface of the given size.
func NewSurface(id string, size core.Size, fonts *FontCache) *Surface {
	return &Surface{id: id, canvas: NewRaster(newImage(size), fonts)}
}

// ID implements core.Surface.
func (s *Surface) ID() string { return s.id }

// Size implements core.Surface.
func (s *Surface) Size() core.Size {
	b := s.canvas.img.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// SetSize implements core.Surface.
func (s *Surface) SetSize(size core.Size) {
	s.canvas.img = newImage(size)
}

// Context2D implements core.Surface.
func (s *Surface) Context2D() core.Canvas { return s.canvas }

// Hide implements core.Surface.
func (s *Surface) Hide() { s.hidden = true }

// Hidden reports whether the surface was hidden.
func (s *Surface) Hidden() bool { return s.hidden }

// Image returns the current backing image.
func (s *Surface) Image() *image.RGBA { return s.canvas.img }

// Flatten composites the surface at the given opacity over an opaque
// background and returns the result.
func (s *Surface) Flatten(bg color.Color, opacity float64) *image.RGBA {
	src := s.canvas.img
	out := image.NewRGBA(src.Bounds())
	xdraw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, xdraw.Src)
	if s.hidden {
		return out
	}
	mask := image.NewUniform(color.Alpha{A: uint8(clamp01(opacity)*255 + 0.5)})
	xdraw.DrawMask(out, out.Bounds(), src, src.Bounds().Min, mask, image.Point{}, xdraw.Over)
	return out
}

func newImage(size core.Size) *image.RGBA {
	w, h := size.W, size.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
