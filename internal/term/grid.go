// Package term hosts the rain renderer in a terminal through tcell. Each
// terminal cell stands for one glyph cell of the pixel canvas, so the
// renderer sees a viewport of cols*14 by rows*14 pixels.
package term

import (
	"image/color"
	"math"

	"neon-rain/internal/core"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// CellPx is the pixel size a terminal cell stands for.
const CellPx = 14

// cells dimmer than this are blank.
const minIntensity = 0.04

type cell struct {
	r    rune
	fg   colorful.Color
	glow bool
}

// Grid is a core.Canvas over terminal cells. Glyphs overwrite their cell;
// FillRect blends every covered cell's color towards the fill color.
type Grid struct {
	cols, rows int
	cells      []cell
	cellPx     float64
	blur       float64
}

// NewGrid allocates an empty grid.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cellPx: CellPx}
	g.Resize(cols, rows)
	return g
}

// Resize reallocates the grid, discarding its contents.
func (g *Grid) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	g.cols, g.rows = cols, rows
	g.cells = make([]cell, cols*rows)
}

// Size returns the grid dimensions in cells.
func (g *Grid) Size() (int, int) { return g.cols, g.rows }

// FillRect implements core.Canvas.
func (g *Grid) FillRect(x, y, w, h float64, c color.Color) {
	fill, alpha := toColorful(c)
	if alpha == 0 {
		return
	}
	g.each(x, y, w, h, func(cl *cell) {
		if cl.r == 0 {
			return
		}
		cl.fg = cl.fg.BlendRgb(fill, alpha)
		if luminance(cl.fg) < minIntensity {
			*cl = cell{}
		}
	})
}

// ClearRect implements core.Canvas.
func (g *Grid) ClearRect(x, y, w, h float64) {
	g.each(x, y, w, h, func(cl *cell) { *cl = cell{} })
}

// SetFont implements core.Canvas; the size maps pixels to cells.
func (g *Grid) SetFont(px float64) {
	if px > 0 {
		g.cellPx = px
	}
}

// SetShadow implements core.Canvas. Terminals cannot blur, so strong glows
// render bold.
func (g *Grid) SetShadow(_ color.Color, blur float64) { g.blur = blur }

// FillText implements core.Canvas. (x, y) is the baseline origin, so the
// glyph occupies the cell above y.
func (g *Grid) FillText(s string, x, y float64, c color.Color) {
	col := int(math.Floor(x / g.cellPx))
	row := int(math.Ceil(y/g.cellPx)) - 1
	fg, _ := toColorful(c)
	for _, r := range s {
		if cl := g.at(col, row); cl != nil {
			*cl = cell{r: r, fg: fg, glow: g.blur >= 8}
		}
		col++
	}
}

// Flush writes the grid to screen at the given opacity. Low opacity renders
// dim.
func (g *Grid) Flush(screen tcell.Screen, opacity float64) {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	dim := opacity < 0.5
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			cl := g.cells[row*g.cols+col]
			if cl.r == 0 {
				screen.SetContent(col, row, ' ', nil, base)
				continue
			}
			r, gr, b := cl.fg.Clamped().RGB255()
			st := base.Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b))).Bold(cl.glow).Dim(dim)
			screen.SetContent(col, row, cl.r, nil, st)
		}
	}
}

func (g *Grid) at(col, row int) *cell {
	if col < 0 || row < 0 || col >= g.cols || row >= g.rows {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

func (g *Grid) each(x, y, w, h float64, fn func(*cell)) {
	c0 := int(math.Floor(x / g.cellPx))
	r0 := int(math.Floor(y / g.cellPx))
	c1 := int(math.Ceil((x + w) / g.cellPx))
	r1 := int(math.Ceil((y + h) / g.cellPx))
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			if cl := g.at(col, row); cl != nil {
				fn(cl)
			}
		}
	}
}

func toColorful(c color.Color) (colorful.Color, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}, float64(n.A) / 255
}

func luminance(c colorful.Color) float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// Surface is a core.Surface over a Grid.
type Surface struct {
	id     string
	grid   *Grid
	hidden bool
}

// NewSurface returns a surface with an empty grid.
func NewSurface(id string) *Surface {
	return &Surface{id: id, grid: NewGrid(0, 0)}
}

// ID implements core.Surface.
func (s *Surface) ID() string { return s.id }

// Size implements core.Surface.
func (s *Surface) Size() core.Size {
	return core.Size{W: s.grid.cols * CellPx, H: s.grid.rows * CellPx}
}

// SetSize implements core.Surface.
func (s *Surface) SetSize(size core.Size) { s.grid.Resize(size.W/CellPx, size.H/CellPx) }

// Context2D implements core.Surface.
func (s *Surface) Context2D() core.Canvas { return s.grid }

// Hide implements core.Surface.
func (s *Surface) Hide() { s.hidden = true }

// Hidden reports whether the surface was hidden.
func (s *Surface) Hidden() bool { return s.hidden }

// Grid returns the backing grid.
func (s *Surface) Grid() *Grid { return s.grid }
