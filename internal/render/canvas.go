package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Raster is a core.Canvas drawing into an image.RGBA with x/image fonts.
type Raster struct {
	img *image.RGBA

	fonts  *FontCache
	face   font.Face
	shadow color.Color
	blur   float64
	glow   map[float64][]glowStamp
}

// NewRaster returns a canvas drawing into img.
func NewRaster(img *image.RGBA, fonts *FontCache) *Raster {
	if fonts == nil {
		fonts = NewFontCache()
	}
	return &Raster{img: img, fonts: fonts, face: fonts.Face(14), glow: map[float64][]glowStamp{}}
}

// Image returns the backing image.
func (c *Raster) Image() *image.RGBA { return c.img }

// FillRect composites col over the rectangle.
func (c *Raster) FillRect(x, y, w, h float64, col color.Color) {
	xdraw.Draw(c.img, rectFromFloat(x, y, w, h), image.NewUniform(col), image.Point{}, xdraw.Over)
}

// ClearRect makes the rectangle transparent.
func (c *Raster) ClearRect(x, y, w, h float64) {
	xdraw.Draw(c.img, rectFromFloat(x, y, w, h), image.Transparent, image.Point{}, xdraw.Src)
}

// SetFont selects the monospace face at px pixels.
func (c *Raster) SetFont(px float64) { c.face = c.fonts.Face(px) }

// SetShadow sets the glow for subsequent FillText calls. A zero blur or a
// nil color disables it.
func (c *Raster) SetShadow(col color.Color, blur float64) {
	c.shadow, c.blur = col, blur
}

// FillText draws s with its baseline at (x, y), glow first.
func (c *Raster) FillText(s string, x, y float64, col color.Color) {
	if c.shadow != nil && c.blur > 0 {
		stamps, ok := c.glow[c.blur]
		if !ok {
			stamps = glowStamps(c.blur)
			c.glow[c.blur] = stamps
		}
		for _, g := range stamps {
			c.drawString(s, x+g.dx, y+g.dy, withAlpha(c.shadow, g.alpha))
		}
	}
	c.drawString(s, x, y, col)
}

func (c *Raster) drawString(s string, x, y float64, col color.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

type glowStamp struct {
	dx, dy float64
	alpha  float64
}

// glowStamps approximates a blurred shadow as rings of faint copies around
// the glyph. The ring radius grows with blur; opacity falls off per ring.
func glowStamps(blur float64) []glowStamp {
	rings := int(math.Round(blur / 4))
	if rings < 1 {
		rings = 1
	}
	var stamps []glowStamp
	for ring := rings; ring >= 1; ring-- {
		alpha := 0.3 / float64(ring)
		for k := 0; k < 8; k++ {
			a := float64(k) * math.Pi / 4
			stamps = append(stamps, glowStamp{
				dx:    math.Round(math.Cos(a) * float64(ring)),
				dy:    math.Round(math.Sin(a) * float64(ring)),
				alpha: alpha,
			})
		}
	}
	return stamps
}

func withAlpha(c color.Color, alpha float64) color.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(math.Round(float64(n.A) * alpha))
	return n
}

// FontCache shares monospace faces between canvases, keyed by pixel size.
type FontCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontCache parses Go Mono. If that fails every face is basicfont 7x13.
func NewFontCache() *FontCache {
	fc := &FontCache{faces: map[float64]font.Face{}}
	if f, err := opentype.Parse(gomono.TTF); err == nil {
		fc.font = f
	}
	return fc
}

// Face returns the face for px, creating it on first use.
func (fc *FontCache) Face(px float64) font.Face {
	if face, ok := fc.faces[px]; ok {
		return face
	}
	var face font.Face = basicfont.Face7x13
	if fc.font != nil {
		// At 72 DPI one point is one pixel.
		f, err := opentype.NewFace(fc.font, &opentype.FaceOptions{Size: px, DPI: 72, Hinting: font.HintingFull})
		if err == nil {
			face = f
		}
	}
	fc.faces[px] = face
	return face
}
