package rasterx

import (
	"rasterx/internal/color"
)

// Color is RGBA8: straight-alpha 8-bit components in the canvas's working
// (linear) color space. It is the color type every Fill*/Stroke*/BlendGlyph
// call takes.
type Color struct {
	R, G, B, A uint8
}

// NewColor builds a Color from straight-alpha RGBA8 components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB builds RGB8: RGBA8 with an implicit alpha of 255.
func NewColorRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NewColorRGBA8 builds a Color from the internal RGBA8 value type.
func NewColorRGBA8(c color.RGBA8[color.Linear]) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) internal() color.RGBA8[color.Linear] {
	return color.RGBA8[color.Linear]{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ConvertToRGBA expands the color to floating-point components (0.0-1.0).
func (c Color) ConvertToRGBA() color.RGBA {
	return c.internal().ConvertToRGBA()
}

// Premultiply returns the RGBA8-pre variant of c: RGB components scaled by
// alpha, alpha unchanged.
func (c Color) Premultiply() Color {
	rgba8 := c.internal()
	rgba8.Premultiply()
	return Color{R: rgba8.R, G: rgba8.G, B: rgba8.B, A: rgba8.A}
}

// Demultiply reverses Premultiply, recovering straight alpha from an
// RGBA8-pre value.
func (c Color) Demultiply() Color {
	rgba8 := c.internal()
	rgba8.Demultiply()
	return Color{R: rgba8.R, G: rgba8.G, B: rgba8.B, A: rgba8.A}
}

// SRGBColor is sRGBA8: components stored in sRGB display gamma rather than
// the canvas's linear working space. Use ToColor to bring one onto the
// canvas; there is no implicit conversion, matching the wire contract's
// "converted on access" wording.
type SRGBColor struct {
	R, G, B, A uint8
}

// NewSRGBColor builds an sRGBA8 value from gamma-encoded components.
func NewSRGBColor(r, g, b, a uint8) SRGBColor {
	return SRGBColor{R: r, G: g, B: b, A: a}
}

// ToColor converts sRGB-gamma components to the canvas's linear Color space.
func (c SRGBColor) ToColor() Color {
	lin := color.ConvertToLinear(color.RGBA8[color.SRGB]{R: c.R, G: c.G, B: c.B, A: c.A})
	return Color{R: lin.R, G: lin.G, B: lin.B, A: lin.A}
}

// FromColor converts a linear Color to sRGB-gamma components.
func FromColor(c Color) SRGBColor {
	srgb := color.ConvertToSRGBFromLinear(c.internal())
	return SRGBColor{R: srgb.R, G: srgb.G, B: srgb.B, A: srgb.A}
}

// GrayColor is Gray8: an 8-bit luminance value with alpha.
type GrayColor struct {
	V, A uint8
}

// NewGrayColor builds a Gray8 value.
func NewGrayColor(v, a uint8) GrayColor {
	return GrayColor{V: v, A: a}
}

// ToColor expands the grayscale value to an equal-luminance RGBA8 Color.
func (g GrayColor) ToColor() Color {
	gray := color.Gray8[color.Linear]{V: g.V, A: g.A}
	rgba8 := gray.ConvertToRGBA8()
	return Color{R: rgba8.R, G: rgba8.G, B: rgba8.B, A: rgba8.A}
}

// RGBA32Color is RGBA32: one float32 component per channel, used as a
// high-precision blending intermediate rather than for canvas storage.
type RGBA32Color struct {
	R, G, B, A float32
}

// NewRGBA32Color builds an RGBA32 value.
func NewRGBA32Color(r, g, b, a float32) RGBA32Color {
	return RGBA32Color{R: r, G: g, B: b, A: a}
}

// ToColor rounds the float components down to RGBA8 for canvas storage.
func (c RGBA32Color) ToColor() Color {
	f := color.RGBA32[color.Linear]{R: c.R, G: c.G, B: c.B, A: c.A}.ConvertToRGBA()
	return Color{
		R: uint8(f.R*255 + 0.5),
		G: uint8(f.G*255 + 0.5),
		B: uint8(f.B*255 + 0.5),
		A: uint8(f.A*255 + 0.5),
	}
}

var Transparent = NewColor(0, 0, 0, 0)
