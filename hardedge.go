package rasterx

import (
	"rasterx/internal/scanline"
)

// binScanlineAdapter adapts *scanline.ScanlineBin (no coverage, uint-typed
// calls ignored) to rasterizer.ScanlineInterface (uint32-typed covers).
type binScanlineAdapter struct {
	sl *scanline.ScanlineBin
}

func (a binScanlineAdapter) ResetSpans()                         { a.sl.ResetSpans() }
func (a binScanlineAdapter) AddCell(x int, cover uint32)         { a.sl.AddCell(x, uint(cover)) }
func (a binScanlineAdapter) AddSpan(x, length int, cover uint32) { a.sl.AddSpan(x, length, uint(cover)) }
func (a binScanlineAdapter) Finalize(y int)                      { a.sl.Finalize(y) }
func (a binScanlineAdapter) NumSpans() int                       { return a.sl.NumSpans() }

// FillPathHardEdge rasterizes p under the non-zero winding rule like
// FillPath, but discards anti-aliasing: every pixel a span touches is
// painted at full coverage, none partially. Cheaper than FillPath when a
// shape's edges don't need smoothing, e.g. pixel-art fills or mask
// generation.
func (c *Canvas) FillPathHardEdge(p *Path, col Color) {
	ras := newShapeRasterizer(p.vertexSource(), FillNonZero)

	sl := scanline.NewScanlineBin()
	sl.Reset(ras.MinX(), ras.MaxX())
	adapter := binScanlineAdapter{sl: sl}
	rgba := toRGBA8(col)

	for ras.SweepScanline(adapter) {
		y := sl.Y()
		for _, span := range sl.Spans() {
			c.pix.BlendHline(int(span.X), y, int(span.Len), rgba, 255)
		}
	}
}
