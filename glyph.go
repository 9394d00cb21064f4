package rasterx

import "golang.org/x/image/math/fixed"

// Glyph is the per-glyph contract a font rasterizer hands to Canvas: an
// 8-bit coverage bitmap plus the metrics needed to place and advance it.
// Glyph production (hinting, outline rasterization, font parsing) is a
// caller concern; Canvas only knows how to blend the bitmap as alpha
// coverage.
type Glyph struct {
	Bitmap []byte // pitch*Rows coverage bytes, one per pixel, row-major
	Pitch  int    // bytes per row; Pitch >= Width
	Left   int    // bitmap-left offset from the pen origin, in pixels
	Top    int    // bitmap-top offset from the pen origin, in pixels
	Width  int    // visible columns
	Rows   int    // visible rows

	// Advance is the pen displacement to the next glyph, in 26.6 fixed point.
	AdvanceX, AdvanceY fixed.Int26_6
}

// BlendGlyph composites g's coverage bitmap onto the canvas at pen, treating
// each byte as an alpha coverage value for col. pen is the glyph origin in
// 26.6 fixed point; g.Left/g.Top offset the bitmap from it.
func (c *Canvas) BlendGlyph(g *Glyph, pen fixed.Point26_6, col Color) {
	originX := pen.X.Round() + g.Left
	originY := pen.Y.Round() - g.Top

	rgba := toRGBA8(col)
	for row := 0; row < g.Rows; row++ {
		y := originY + row
		if y < 0 || y >= c.height {
			continue
		}
		src := g.Bitmap[row*g.Pitch : row*g.Pitch+g.Width]

		x0, x1 := 0, g.Width
		if originX < 0 {
			x0 = -originX
		}
		if originX+x1 > c.width {
			x1 = c.width - originX
		}
		if x0 >= x1 {
			continue
		}
		c.pix.BlendSolidHspan(originX+x0, y, x1-x0, rgba, src[x0:x1])
	}
}
