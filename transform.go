package rasterx

import "rasterx/internal/transform"

// Matrix is an affine 2x3 transform: (x,y) -> (sx*x + shx*y + tx, shy*x + sy*y + ty).
// Translate/Scale/Rotate/Multiply append their operation to the end of the
// chain: each call's effect is applied to the point AFTER everything already
// in the matrix, matching the convention of the underlying transform package.
type Matrix struct {
	t *transform.TransAffine
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{t: transform.NewTransAffine()}
}

// Translation returns a pure translation transform.
func Translation(x, y float64) Matrix {
	return Matrix{t: transform.NewTransAffineFromValues(1, 0, 0, 1, x, y)}
}

// Scaling returns a pure uniform-scale transform.
func Scaling(s float64) Matrix {
	m := Identity()
	m.t.Scale(s)
	return m
}

// Rotation returns a pure rotation transform, angle in radians.
func Rotation(angle float64) Matrix {
	m := Identity()
	m.t.Rotate(angle)
	return m
}

// Translate appends a translation to m, applied after m's existing contents.
func (m Matrix) Translate(x, y float64) Matrix {
	m.t.Translate(x, y)
	return m
}

// Scale appends a uniform scale.
func (m Matrix) Scale(s float64) Matrix {
	m.t.Scale(s)
	return m
}

// Rotate appends a rotation in radians.
func (m Matrix) Rotate(angle float64) Matrix {
	m.t.Rotate(angle)
	return m
}

// Multiply appends m2 to m: a point is transformed by m first, then by m2.
func (m Matrix) Multiply(m2 Matrix) Matrix {
	m.t.Multiply(m2.t)
	return m
}

// Transform maps a point through the matrix.
func (m Matrix) Transform(x, y float64) (float64, float64) {
	m.t.Transform(&x, &y)
	return x, y
}

// Invert returns the inverse transform. Panics if m is singular (determinant
// within 1e-14 of zero): a degenerate transform has no inverse, and silently
// handing back garbage (or the identity) would corrupt whatever coordinate
// space the caller maps into next.
func (m Matrix) Invert() Matrix {
	if !m.t.IsValid(1e-14) {
		panic("rasterx: Invert of singular matrix")
	}
	inv := m.t.Copy()
	inv.Invert()
	return Matrix{t: inv}
}

// IsIdentity reports whether m is the identity transform within epsilon.
func (m Matrix) IsIdentity(epsilon float64) bool {
	return m.t.IsIdentity(epsilon)
}
