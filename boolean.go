package rasterx

import (
	"rasterx/internal/basics"
	"rasterx/internal/color"
	"rasterx/internal/rasterizer"
	rscanline "rasterx/internal/renderer/scanline"
	"rasterx/internal/scanline"
)

// CombineOp selects how two shapes' coverage is merged in FillPathsCombined.
type CombineOp int

const (
	CombineUnion CombineOp = iota
	CombineIntersect
	CombineSubtract
	CombineXor
)

// booleanScanlineAdapter adapts *scanline.ScanlineU8 to
// internal/scanline.BooleanScanlineInterface, the shape expected by the
// boolean algebra package's shape-combining functions.
type booleanScanlineAdapter struct {
	sl *scanline.ScanlineU8
}

func (a booleanScanlineAdapter) Y() int        { return a.sl.Y() }
func (a booleanScanlineAdapter) NumSpans() int { return a.sl.NumSpans() }
func (a booleanScanlineAdapter) ResetSpans()   { a.sl.ResetSpans() }

func (a booleanScanlineAdapter) AddCell(x int, cover uint) { a.sl.AddCell(x, cover) }

func (a booleanScanlineAdapter) AddCells(x, length int, covers []basics.Int8u) {
	a.sl.AddCells(x, length, covers)
}

func (a booleanScanlineAdapter) AddSpan(x, length int, cover basics.Int8u) {
	a.sl.AddSpan(x, length, uint(cover))
}

func (a booleanScanlineAdapter) Finalize(y int) { a.sl.Finalize(y) }

func (a booleanScanlineAdapter) Begin() rscanline.ScanlineIterator {
	return &combineSpanIterator{spans: a.sl.Spans()}
}

// combineSpanIterator walks the spans already produced by a booleanScanlineAdapter.
type combineSpanIterator struct {
	spans []scanline.Span
	idx   int
}

func (it *combineSpanIterator) GetSpan() rscanline.SpanData {
	s := it.spans[it.idx]
	return rscanline.SpanData{X: int(s.X), Len: int(s.Len), Covers: s.Covers}
}

func (it *combineSpanIterator) Next() bool {
	it.idx++
	return it.idx < len(it.spans)
}

// rasterizerShapeAdapter adapts *rasterizerAA to
// internal/scanline.RasterizerInterface.
type rasterizerShapeAdapter struct {
	ras *rasterizerAA
}

func (a rasterizerShapeAdapter) RewindScanlines() bool { return a.ras.RewindScanlines() }
func (a rasterizerShapeAdapter) MinX() int             { return a.ras.MinX() }
func (a rasterizerShapeAdapter) MinY() int             { return a.ras.MinY() }
func (a rasterizerShapeAdapter) MaxX() int             { return a.ras.MaxX() }
func (a rasterizerShapeAdapter) MaxY() int             { return a.ras.MaxY() }

func (a rasterizerShapeAdapter) SweepScanline(sl scanline.BooleanScanlineInterface) bool {
	ba := sl.(booleanScanlineAdapter)
	return a.ras.SweepScanline(scanlineAdapter{sl: ba.sl})
}

// combineRenderer blends each combined span directly onto the canvas.
type combineRenderer struct {
	c   *Canvas
	col color.RGBA8Linear
}

func (r *combineRenderer) Prepare() {}

func (r *combineRenderer) Render(sl scanline.BooleanScanlineInterface) {
	ba := sl.(booleanScanlineAdapter)
	y := ba.sl.Y()
	for _, span := range ba.sl.Spans() {
		r.c.pix.BlendSolidHspan(int(span.X), y, int(span.Len), r.col, span.Covers)
	}
}

// newShapeRasterizer builds an independent rasterizer filled from vs under
// rule, for use as one operand of a boolean combine.
func newShapeRasterizer(vs vertexSource, rule FillRule) *rasterizerAA {
	ras := rasterizer.NewRasterizerScanlineAA[int, rasterizer.RasConvInt, *rasterizerClip](
		rasterizer.RasConvInt{}, rasterizer.NewRasterizerSlClip[int, rasterizer.RasConvInt](rasterizer.RasConvInt{}))
	ras.FillingRule(rule.toBasics())
	ras.AddPath(rasterVertexAdapter{src: vs}, 0)
	ras.RewindScanlines()
	return ras
}

// FillPathsCombined rasterizes a and b independently under their own fill
// rules, combines their coverage with op, and blends the result onto the
// canvas with col. Unlike FillPath, it does not honor SetClipBox.
func (c *Canvas) FillPathsCombined(a *Path, aRule FillRule, b *Path, bRule FillRule, op CombineOp, col Color) {
	ras1 := newShapeRasterizer(a.vertexSource(), aRule)
	ras2 := newShapeRasterizer(b.vertexSource(), bRule)

	u8sl1 := scanline.NewScanlineU8()
	u8sl2 := scanline.NewScanlineU8()
	u8sl := scanline.NewScanlineU8()
	u8sl1.Reset(ras1.MinX(), ras1.MaxX())
	u8sl2.Reset(ras2.MinX(), ras2.MaxX())
	u8sl.Reset(basics.IMin(ras1.MinX(), ras2.MinX()), basics.IMax(ras1.MaxX(), ras2.MaxX()))

	sg1 := rasterizerShapeAdapter{ras: ras1}
	sg2 := rasterizerShapeAdapter{ras: ras2}
	sl1 := booleanScanlineAdapter{sl: u8sl1}
	sl2 := booleanScanlineAdapter{sl: u8sl2}
	sl := booleanScanlineAdapter{sl: u8sl}
	ren := &combineRenderer{c: c, col: toRGBA8(col)}

	switch op {
	case CombineIntersect:
		scanline.IntersectShapesAA(sg1, sg2, sl1, sl2, sl, ren)
	case CombineSubtract:
		scanline.SubtractShapesAA(sg1, sg2, sl1, sl2, sl, ren)
	case CombineXor:
		scanline.XorShapesAA(sg1, sg2, sl1, sl2, sl, ren)
	default:
		scanline.UniteShapesAA(sg1, sg2, sl1, sl2, sl, ren)
	}
}
