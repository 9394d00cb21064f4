package rasterx

import (
	"rasterx/internal/basics"
	"rasterx/internal/scanline"
)

// CachedFill holds the anti-aliased coverage produced by rasterizing a path
// once, so it can be blended onto a canvas repeatedly without re-running the
// rasterizer. Useful when the same shape is painted many times (e.g. a
// repeated glyph or icon) at the same position.
type CachedFill struct {
	storage *scanline.ScanlineStorageAA[basics.Int8u]
}

// storageScanlineAdapter adapts *scanline.ScanlineU8 to the
// internal/scanline.ScanlineInterface shape ScanlineStorageAA needs, both to
// capture coverage (Render) and to replay it (SweepScanline).
type storageScanlineAdapter struct {
	sl *scanline.ScanlineU8
}

func (a storageScanlineAdapter) Y() int        { return a.sl.Y() }
func (a storageScanlineAdapter) NumSpans() int { return a.sl.NumSpans() }
func (a storageScanlineAdapter) ResetSpans()   { a.sl.ResetSpans() }

func (a storageScanlineAdapter) AddSpan(x, length int, cover basics.Int8u) {
	a.sl.AddSpan(x, length, uint(cover))
}

func (a storageScanlineAdapter) AddCells(x, length int, covers []basics.Int8u) {
	a.sl.AddCells(x, length, covers)
}

func (a storageScanlineAdapter) Finalize(y int) { a.sl.Finalize(y) }

func (a storageScanlineAdapter) Begin() scanline.ScanlineIterator {
	return &storageSpanIterator{spans: a.sl.Spans()}
}

type storageSpanIterator struct {
	spans []scanline.Span
	idx   int
}

func (it *storageSpanIterator) GetSpan() scanline.SpanInfo {
	s := it.spans[it.idx]
	return scanline.SpanInfo{X: int(s.X), Len: int(s.Len), Covers: s.Covers}
}

func (it *storageSpanIterator) Next() bool {
	it.idx++
	return it.idx < len(it.spans)
}

// Prerasterize rasterizes p under rule once and returns the resulting
// coverage as a CachedFill.
func (c *Canvas) Prerasterize(p *Path, rule FillRule) *CachedFill {
	ras := newShapeRasterizer(p.vertexSource(), rule)
	sl := scanline.NewScanlineU8()
	sl.Reset(ras.MinX(), ras.MaxX())

	storage := scanline.NewScanlineStorageAA[basics.Int8u]()
	storage.Prepare()
	capture := storageScanlineAdapter{sl: sl}
	for ras.SweepScanline(scanlineAdapter{sl: sl}) {
		storage.Render(capture)
	}
	return &CachedFill{storage: storage}
}

// FillCached blends a previously rasterized shape onto the canvas with col,
// without re-running the rasterizer.
func (c *Canvas) FillCached(cached *CachedFill, col Color) {
	if !cached.storage.RewindScanlines() {
		return
	}

	out := scanline.NewScanlineU8()
	out.Reset(cached.storage.MinX(), cached.storage.MaxX())
	adapter := storageScanlineAdapter{sl: out}
	rgba := toRGBA8(col)

	for cached.storage.SweepScanline(adapter) {
		y := out.Y()
		for _, span := range out.Spans() {
			c.pix.BlendSolidHspan(int(span.X), y, int(span.Len), rgba, span.Covers)
		}
	}
}
