package color

import (
	"rasterx/internal/basics"
)

// Apply 16-bit gamma (RGB only) to an RGBA16 pixel in-place.
func ApplyGammaDir16[CS ColorSpace, LUT lut16Like](px *RGBA16[CS], lut LUT) {
	px.R = lut.Dir(basics.Int8u(px.R >> 8))
	px.G = lut.Dir(basics.Int8u(px.G >> 8))
	px.B = lut.Dir(basics.Int8u(px.B >> 8))
}

func ApplyGammaInv16[CS ColorSpace, LUT lut16Like](px *RGBA16[CS], lut LUT) {
	r8 := lut.Inv(px.R)
	g8 := lut.Inv(px.G)
	b8 := lut.Inv(px.B)
	px.R = basics.Int16u(r8)<<8 | basics.Int16u(r8)
	px.G = basics.Int16u(g8)<<8 | basics.Int16u(g8)
	px.B = basics.Int16u(b8)<<8 | basics.Int16u(b8)
}

// Helper for method receivers:
func (c *RGBA16[CS]) ApplyGammaDir(lut lut16Like) { ApplyGammaDir16(c, lut) }
func (c *RGBA16[CS]) ApplyGammaInv(lut lut16Like) { ApplyGammaInv16(c, lut) }
