// Package rasterx is a 2D vector graphics library built around a sub-pixel
// accurate, anti-aliased scanline polygon rasterizer and a separate
// anti-aliased line outline renderer.
package rasterx

import (
	"rasterx/internal/basics"
	"rasterx/internal/path"
)

// FillRule selects how overlapping and self-intersecting path regions are
// resolved into filled pixels.
type FillRule int

const (
	// FillNonZero fills any region whose winding count is non-zero.
	FillNonZero FillRule = iota
	// FillEvenOdd fills regions crossed an odd number of times.
	FillEvenOdd
)

func (r FillRule) toBasics() basics.FillingRule {
	if r == FillEvenOdd {
		return basics.FillEvenOdd
	}
	return basics.FillNonZero
}

// Path is an ordered sequence of move/line/close commands describing one or
// more subpaths. It is the single geometry input accepted by Canvas; there
// is no curve primitive, matching the line-segment-only core this library
// wraps.
type Path struct {
	storage *path.PathStorage
}

// NewPath returns an empty path ready to accept MoveTo/LineTo commands.
func NewPath() *Path {
	return &Path{storage: path.NewPathStorage()}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	p.storage.MoveTo(x, y)
	return p
}

// LineTo appends a straight segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	p.storage.LineTo(x, y)
	return p
}

// MoveRel is MoveTo relative to the current point.
func (p *Path) MoveRel(dx, dy float64) *Path {
	p.storage.MoveRel(dx, dy)
	return p
}

// LineRel is LineTo relative to the current point.
func (p *Path) LineRel(dx, dy float64) *Path {
	p.storage.LineRel(dx, dy)
	return p
}

// HLineTo appends a horizontal segment to the given X at the current Y.
func (p *Path) HLineTo(x float64) *Path {
	p.storage.HLineTo(x)
	return p
}

// VLineTo appends a vertical segment to the given Y at the current X.
func (p *Path) VLineTo(y float64) *Path {
	p.storage.VLineTo(y)
	return p
}

// ClosePolygon closes the current subpath back to its MoveTo point.
func (p *Path) ClosePolygon() *Path {
	p.storage.ClosePolygon(basics.PathFlagsClose)
	return p
}

// Rect appends a closed rectangular subpath.
func (p *Path) Rect(x1, y1, x2, y2 float64) *Path {
	p.MoveTo(x1, y1)
	p.LineTo(x2, y1)
	p.LineTo(x2, y2)
	p.LineTo(x1, y2)
	return p.ClosePolygon()
}

// RemoveAll clears the path, keeping allocated storage for reuse.
func (p *Path) RemoveAll() {
	p.storage.RemoveAll()
}

// TotalVertices reports how many vertices have been recorded.
func (p *Path) TotalVertices() uint {
	return p.storage.TotalVertices()
}

// vertexSource adapts a *Path into the conv package's VertexSource shape
// (Rewind/Vertex), the common currency between conv stages and Canvas.
func (p *Path) vertexSource() *path.PathStorageVertexSourceAdapter {
	return path.NewPathStorageVertexSourceAdapter(p.storage)
}
