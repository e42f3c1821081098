package svgcoord

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D is an affine transform, with the coefficients
// of the SVG transform `matrix(a b c d e f)`:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the neutral transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// NewTranslation returns the translation by the vector v.
func NewTranslation(v Point) Matrix2D {
	return Matrix2D{1, 0, 0, 1, v.X, v.Y}
}

// Mult returns a * b, that is the transform applying b, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate appends a translation to a.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale appends a scaling to a.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate appends a rotation of theta radians to a.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// SkewX appends a horizontal shear of theta radians to a.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY appends a vertical shear of theta radians to a.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Transform applies m to the point (x1, y1).
func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = x1*m.A + y1*m.C + m.E
	y2 = x1*m.B + y1*m.D + m.F
	return
}

// TransformPoint applies m to p.
func (m Matrix2D) TransformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// TFixed transforms a fixed.Point26_6 by the matrix
func (m Matrix2D) TFixed(a fixed.Point26_6) (b fixed.Point26_6) {
	b.X = fixed.Int26_6((float64(a.X)*m.A + float64(a.Y)*m.C) + m.E*64)
	b.Y = fixed.Int26_6((float64(a.X)*m.B + float64(a.Y)*m.D) + m.F*64)
	return
}

// Invert returns the inverse of m, and false if m is not invertible.
func (m Matrix2D) Invert() (Matrix2D, bool) {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity, false
	}
	return Matrix2D{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}, true
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix2D) IsIdentity() bool { return m == Identity }

// IsTranslation reports whether m only translates.
func (m Matrix2D) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// Equal compares the coefficients of m and o up to eps.
func (m Matrix2D) Equal(o Matrix2D, eps float64) bool {
	return math.Abs(m.A-o.A) <= eps && math.Abs(m.B-o.B) <= eps &&
		math.Abs(m.C-o.C) <= eps && math.Abs(m.D-o.D) <= eps &&
		math.Abs(m.E-o.E) <= eps && math.Abs(m.F-o.F) <= eps
}
