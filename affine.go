package vecpath

import (
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, tx, ty), then the resulting
// transformation represents this augmented matrix:
//
//	| a c tx |
//	| b d ty |
//	| 0 0  1 |
//
// A point (x, y) is thus mapped to (a*x + c*y + tx, b*x + d*y + ty). The idea
// is that (A * B) * v == A * (B * v).
type Affine struct {
	// We represent Affine as a struct instead of an array because structs
	// benefit from SROA.

	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y, about the origin.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// ScaleAbout creates an affine transform scaling by (x, y) about origin.
// The origin is a fixed point of the transform.
func ScaleAbout(x, y float64, origin Point) Affine {
	o := Vec2(origin)
	return Translate(o.Negate()).ThenScale(x, y).ThenTranslate(o)
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing a rotation of deg degrees
// about the origin.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y. Thus, in a Y-down coordinate
// system (as is common for graphics), it is a clockwise rotation, and
// in Y-up (traditional for math), it is anti-clockwise.
func Rotate(deg float64) Affine {
	sin, cos := math.Sincos(Radians(deg))
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateAbout creates an affine transform representing a rotation of deg
// degrees about center.
//
// See [Rotate] for more info.
func RotateAbout(deg float64, center Point) Affine {
	c := Vec2(center)
	return Translate(c.Negate()).ThenRotate(deg).ThenTranslate(c)
}

// Merge composes the transforms, starting from [Identity]. The result maps
// a point through the last transform first:
//
//	Merge(A, B).Apply(p) == A.Apply(B.Apply(p))
//
// Merge() returns Identity.
func Merge(affs ...Affine) Affine {
	out := Identity
	for _, aff := range affs {
		out = out.Mul(aff)
	}
	return out
}

// Coefficients returns the the coefficients of the transform.
func (aff Affine) Coefficients() [6]float64 {
	return [6]float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

// NewAffine creates a new affine transformation from an array of coefficients.
// Alternatively, you can initialize the fields of [Affine] manually.
func NewAffine(n [6]float64) Affine {
	return Affine{n[0], n[1], n[2], n[3], n[4], n[5]}
}

// Mul returns the product aff * o, the transform that applies o first and
// aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Apply maps pt through the transform. It is equivalent to pt.Transform(aff).
func (aff Affine) Apply(pt Point) Point {
	return pt.Transform(aff)
}

// ThenRotate creates aff followed by a rotation of deg degrees.
//
// Equivalent to "Rotate(deg) * aff"
func (aff Affine) ThenRotate(deg float64) Affine {
	return Rotate(deg).Mul(aff)
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// PreTranslate creates a translation of v followed by aff.
//
// Equivalent to "aff * Translate(v)"
func (aff Affine) PreTranslate(v Vec2) Affine {
	return aff.Mul(Translate(v))
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert computes the inverse transform.
//
// Produces NaN values when the determinant is zero.
func (aff Affine) Invert() Affine {
	invDet := 1 / aff.Determinant()
	return Affine{
		+invDet * aff.N3,
		-invDet * aff.N1,
		-invDet * aff.N2,
		+invDet * aff.N0,
		+invDet * (aff.N2*aff.N5 - aff.N3*aff.N4),
		+invDet * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns the translation component of this affine transformation.
func (aff Affine) Translation() Vec2 {
	return Vec2{
		X: aff.N4,
		Y: aff.N5,
	}
}

func (aff Affine) IsInf() bool {
	return math.IsInf(aff.N0, 0) ||
		math.IsInf(aff.N1, 0) ||
		math.IsInf(aff.N2, 0) ||
		math.IsInf(aff.N3, 0) ||
		math.IsInf(aff.N4, 0) ||
		math.IsInf(aff.N5, 0)
}

func (aff Affine) IsNaN() bool {
	return math.IsNaN(aff.N0) ||
		math.IsNaN(aff.N1) ||
		math.IsNaN(aff.N2) ||
		math.IsNaN(aff.N3) ||
		math.IsNaN(aff.N4) ||
		math.IsNaN(aff.N5)
}
