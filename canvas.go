package rasterx

import (
	"rasterx/internal/basics"
	"rasterx/internal/buffer"
	"rasterx/internal/color"
	"rasterx/internal/conv"
	"rasterx/internal/pixfmt"
	"rasterx/internal/rasterizer"
	"rasterx/internal/scanline"
)

// vertexSource is the minimal shape every pipeline stage (Path, ConvStroke,
// ConvDash, ConvTransform) exposes; it matches conv.VertexSource.
type vertexSource interface {
	Rewind(pathID uint)
	Vertex() (x, y float64, cmd basics.PathCommand)
}

// rasterVertexAdapter adapts a conv.VertexSource-shaped stage to
// rasterizer.VertexSource's pointer-output, uint32 shape.
type rasterVertexAdapter struct {
	src vertexSource
}

func (a rasterVertexAdapter) Rewind(pathID uint32) {
	a.src.Rewind(uint(pathID))
}

func (a rasterVertexAdapter) Vertex(x, y *float64) uint32 {
	vx, vy, cmd := a.src.Vertex()
	*x, *y = vx, vy
	return uint32(cmd)
}

// scanlineAdapter adapts *scanline.ScanlineU8 (uint-typed covers) to
// rasterizer.ScanlineInterface (uint32-typed covers).
type scanlineAdapter struct {
	sl *scanline.ScanlineU8
}

func (a scanlineAdapter) ResetSpans()                         { a.sl.ResetSpans() }
func (a scanlineAdapter) AddCell(x int, cover uint32)         { a.sl.AddCell(x, uint(cover)) }
func (a scanlineAdapter) AddSpan(x, length int, cover uint32) { a.sl.AddSpan(x, length, uint(cover)) }
func (a scanlineAdapter) Finalize(y int)                      { a.sl.Finalize(y) }
func (a scanlineAdapter) NumSpans() int                       { return a.sl.NumSpans() }

type rasterizerClip = rasterizer.RasterizerSlClip[int, rasterizer.RasConvInt]

type rasterizerAA = rasterizer.RasterizerScanlineAA[int, rasterizer.RasConvInt, *rasterizerClip]

// Canvas is a fixed-size RGBA8 raster target. It owns the cell rasterizer,
// the scanline accumulator and the pixel buffer, and is the only type that
// turns a Path into pixels.
type Canvas struct {
	width, height int
	rbuf          *buffer.RenderingBufferU8
	pix           *pixfmt.PixFmtRGBA32[color.Linear]
	ras           *rasterizerAA
	sl            *scanline.ScanlineU8
}

// NewCanvas allocates a width x height RGBA8 canvas, cleared to transparent
// black.
func NewCanvas(width, height int) *Canvas {
	rbuf := buffer.NewRenderingBufferU8WithData(
		make([]basics.Int8u, width*height*4), width, height, width*4)

	c := &Canvas{
		width:  width,
		height: height,
		rbuf:   rbuf,
		pix:    pixfmt.NewPixFmtRGBA32Linear(rbuf),
		ras:    rasterizer.NewRasterizerScanlineAA[int, rasterizer.RasConvInt, *rasterizerClip](rasterizer.RasConvInt{}, rasterizer.NewRasterizerSlClip[int, rasterizer.RasConvInt](rasterizer.RasConvInt{})),
		sl:     scanline.NewScanlineU8(),
	}
	return c
}

// Width reports the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height reports the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Clear fills the entire canvas with col.
func (c *Canvas) Clear(col Color) {
	c.pix.Clear(toRGBA8(col))
}

// SetClipBox restricts every subsequent Fill*/Stroke* call to the rectangle
// (x1,y1)-(x2,y2), in canvas pixel coordinates. Geometry outside the box is
// clipped exactly, not merely scissored at the pixel buffer's own edges.
func (c *Canvas) SetClipBox(x1, y1, x2, y2 float64) {
	c.ras.ClipBox(x1, y1, x2, y2)
}

// ResetClipBox removes any clip rectangle set by SetClipBox; subsequent
// calls render unclipped again.
func (c *Canvas) ResetClipBox() {
	c.ras.ResetClipping()
}

// Pixels returns the raw interleaved RGBA8 buffer backing the canvas, with
// stride width*4 bytes. The slice aliases the canvas's storage.
func (c *Canvas) Pixels() []byte {
	return c.rbuf.Buf()
}

func toRGBA8(col Color) color.RGBA8[color.Linear] {
	return color.NewRGBA8[color.Linear](col.R, col.G, col.B, col.A)
}

// FillPath rasterizes path's interior under rule and blends col over the
// canvas.
func (c *Canvas) FillPath(p *Path, col Color, rule FillRule) {
	c.fill(rasterVertexAdapter{src: p.vertexSource()}, col, rule)
}

// FillTransformedPath applies m to path's vertices before filling.
func (c *Canvas) FillTransformedPath(p *Path, m Matrix, col Color, rule FillRule) {
	xf := conv.NewConvTransform(p.vertexSource(), m.t)
	c.fill(rasterVertexAdapter{src: xf}, col, rule)
}

// StrokePath converts path to an outline polygon using s and fills it with
// col.
func (c *Canvas) StrokePath(p *Path, s *Stroke, col Color) {
	c.fill(rasterVertexAdapter{src: c.strokeSource(p, s)}, col, FillNonZero)
}

// StrokeTransformedPath strokes path with s, then applies m to the resulting
// outline before filling.
func (c *Canvas) StrokeTransformedPath(p *Path, s *Stroke, m Matrix, col Color) {
	xf := conv.NewConvTransform(c.strokeSource(p, s), m.t)
	c.fill(rasterVertexAdapter{src: xf}, col, FillNonZero)
}

// strokeSource builds the ConvDash -> ConvStroke pipeline described by s,
// rooted at p.
func (c *Canvas) strokeSource(p *Path, s *Stroke) vertexSource {
	var upstream vertexSource = p.vertexSource()

	if len(s.Dashes) > 0 {
		dash := conv.NewConvDash(upstream)
		for _, d := range s.Dashes {
			dash.AddDash(d.DashLen, d.GapLen)
		}
		dash.DashStart(s.DashStart)
		if s.Shorten != 0 {
			dash.Shorten(s.Shorten)
		}
		upstream = dash
	}

	stroke := conv.NewConvStroke(upstream)
	stroke.SetWidth(s.Width)
	stroke.SetLineCap(s.LineCap.toBasics())
	stroke.SetLineJoin(s.LineJoin.toBasics())
	stroke.SetInnerJoin(s.InnerJoin.toBasics())
	stroke.SetMiterLimit(s.MiterLimit)
	stroke.SetInnerMiterLimit(s.InnerMiterLimit)
	if s.ApproximateScale > 0 {
		stroke.SetApproximationScale(s.ApproximateScale)
	}
	if len(s.Dashes) == 0 && s.Shorten != 0 {
		stroke.SetShorten(s.Shorten)
	}
	return stroke
}

// fill drives the rasterizer/scanline/pixfmt pipeline for one shape: add the
// path, sort cells, sweep scanlines and blend each span's coverage.
func (c *Canvas) fill(vs rasterizer.VertexSource, col Color, rule FillRule) {
	c.ras.Reset()
	c.ras.FillingRule(rule.toBasics())
	c.ras.AddPath(vs, 0)

	if !c.ras.RewindScanlines() {
		return
	}

	c.sl.Reset(c.ras.MinX(), c.ras.MaxX())
	rgba := toRGBA8(col)
	adapter := scanlineAdapter{sl: c.sl}

	for c.ras.SweepScanline(adapter) {
		y := c.sl.Y()
		for _, span := range c.sl.Spans() {
			c.pix.BlendSolidHspan(int(span.X), y, int(span.Len), rgba, span.Covers)
		}
	}
}
