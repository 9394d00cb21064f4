package rasterx

import (
	"rasterx/internal/basics"
	"rasterx/internal/color"
	"rasterx/internal/pixfmt"
	"rasterx/internal/rasterizer"
	"rasterx/internal/renderer/outline"
)

// outlineColor is the color type the AA outline renderer blends with; it
// matches the pixel format Canvas already uses for fills and strokes.
type outlineColor = color.RGBA8[color.Linear]

// outlineBaseAdapter lets the outline renderer blend spans directly into
// Canvas's own pixel buffer, so outline and fill/stroke rendering share one
// destination.
type outlineBaseAdapter struct {
	pix *pixfmt.PixFmtRGBA32[color.Linear]
}

func (a outlineBaseAdapter) Width() int  { return a.pix.Width() }
func (a outlineBaseAdapter) Height() int { return a.pix.Height() }

func (a outlineBaseAdapter) BlendSolidHSpan(x, y, length int, c outlineColor, covers []basics.CoverType) {
	a.pix.BlendSolidHspan(x, y, length, c, covers)
}

func (a outlineBaseAdapter) BlendSolidVSpan(x, y, length int, c outlineColor, covers []basics.CoverType) {
	a.pix.BlendSolidVspan(x, y, length, c, covers)
}

type outlineRenderer = outline.RendererOutlineAA[outlineBaseAdapter, outlineColor]

type outlineRasterizer = rasterizer.RasterizerOutlineAA[*outlineRenderer, outlineColor]

// OutlineJoin selects how StrokeOutlinePath joins consecutive segments. It
// covers the dedicated outline renderer's narrower join set (no bevel or
// inner-miter handling, unlike Stroke's polygon-offset joins).
type OutlineJoin int

const (
	OutlineJoinMiter OutlineJoin = iota
	OutlineJoinRound
	OutlineJoinNone
)

func (j OutlineJoin) toRasterizer() rasterizer.OutlineAAJoin {
	switch j {
	case OutlineJoinRound:
		return rasterizer.OutlineRoundJoin
	case OutlineJoinNone:
		return rasterizer.OutlineNoJoin
	default:
		return rasterizer.OutlineMiterJoin
	}
}

// StrokeOutlinePath draws path with the anti-aliased outline renderer: each
// segment is swept directly into coverage spans, rather than first being
// converted to a filled stroke polygon (as StrokePath does). This is the
// cheaper, lower-fidelity line-drawing path; width is constant along the
// whole path and caps are either round or square, not the full Stroke cap
// set.
func (c *Canvas) StrokeOutlinePath(p *Path, width float64, join OutlineJoin, roundCap bool, col Color) {
	profile := outline.NewLineProfileAA()
	profile.Width(width)

	ren := outline.NewRendererOutlineAA[outlineBaseAdapter, outlineColor](
		outlineBaseAdapter{pix: c.pix}, profile)
	ren.Color(toRGBA8(col))

	ras := rasterizer.NewRasterizerOutlineAA[*outlineRenderer, outlineColor](ren)
	ras.SetRoundCap(roundCap)
	ras.SetLineJoin(join.toRasterizer())
	ras.AddPath(rasterVertexAdapter{src: p.vertexSource()}, 0)
}
