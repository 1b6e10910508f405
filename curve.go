package vecpath

import (
	"fmt"
	"math"
)

// linearityTolerance is the maximum distance of a control point from the
// chord for [Curve.IsLinear] to consider the curve straight.
const linearityTolerance = 1e-4

// Curve is one segment of a path: a cubic Bézier between two anchors,
// together with its precomputed first and second derivatives.
//
// The control polygon always has four points, even for straight segments,
// whose handles simply coincide with their endpoints. Curves are immutable.
type Curve struct {
	bez    CubicBez
	degree int
	// d1 is the hodograph of bez, d2 its derivative.
	d1 QuadBez
	d2 Line
}

// NewCurve returns the segment from a1 to a2. A missing handle is replaced by
// the point of its anchor.
func NewCurve(a1, a2 Anchor) Curve {
	return NewCurveFromCubic(CubicBez{
		a1.point,
		a1.handleOut.or(a1.point),
		a2.handleIn.or(a2.point),
		a2.point,
	})
}

// NewCurveFromCubic returns the segment described by the control points of c.
func NewCurveFromCubic(c CubicBez) Curve {
	d1 := c.Differentiate()
	cv := Curve{
		bez: c,
		d1:  d1,
		d2:  d1.Differentiate(),
	}
	switch {
	case c.P0 == c.P1 && c.P1 == c.P2 && c.P2 == c.P3:
		cv.degree = 0
	case c.P0 == c.P1 && c.P2 == c.P3:
		cv.degree = 1
	default:
		cv.degree = 3
	}
	return cv
}

// Cubic returns the curve's control polygon.
func (c Curve) Cubic() CubicBez { return c.bez }

func (c Curve) Start() Point { return c.bez.P0 }
func (c Curve) End() Point   { return c.bez.P3 }

// Degree returns the effective degree of the control polygon: 0 if all
// control points coincide, 1 if both handles sit on their endpoints, and 3
// otherwise.
func (c Curve) Degree() int { return c.degree }

func (c Curve) String() string {
	return fmt.Sprintf("Curve(%s, %s, %s, %s)", c.bez.P0, c.bez.P1, c.bez.P2, c.bez.P3)
}

// Eval returns the point at t ∈ [0, 1].
//
// The endpoints are returned exactly for t = 0 and t = 1. Curves of degree 1
// are interpolated linearly, so that t is proportional to arc length.
func (c Curve) Eval(t float64) Point {
	if t == 0 {
		return c.bez.P0
	}
	if t == 1 {
		return c.bez.P3
	}
	switch c.degree {
	case 0:
		return c.bez.P0
	case 1:
		return c.bez.P0.Lerp(c.bez.P3, t)
	default:
		return c.bez.Eval(t)
	}
}

// Deriv returns the first derivative at t, consistent with [Curve.Eval].
// It is the zero vector for curves of degree 0.
func (c Curve) Deriv(t float64) Vec2 {
	switch c.degree {
	case 0:
		return Vec2{}
	case 1:
		return c.bez.P3.Sub(c.bez.P0)
	default:
		return Vec2(c.d1.Eval(t))
	}
}

// deriv2 returns the second derivative at t.
func (c Curve) deriv2(t float64) Vec2 {
	if c.degree < 3 {
		return Vec2{}
	}
	return Vec2(c.d2.Eval(t))
}

// Tangent returns the unit tangent at t. The result is NaN where the
// derivative vanishes, for example everywhere on a zero-length curve.
func (c Curve) Tangent(t float64) Vec2 {
	return c.Deriv(t).Normalize()
}

// Normal returns the tangent at t rotated by 90°.
func (c Curve) Normal(t float64) Vec2 {
	return c.Tangent(t).Perp()
}

// curvature returns the signed curvature and radius of curvature at t. Both
// are 0 where either is undefined.
func (c Curve) curvature(t float64) (k, r float64) {
	d := c.Deriv(t)
	dd := c.deriv2(t)
	num := d.Cross(dd)
	dnm := math.Pow(d.Hypot2(), 1.5)
	if num == 0 || dnm == 0 {
		return 0, 0
	}
	return num / dnm, dnm / num
}

// Curvature returns the signed curvature at t, or 0 for straight or
// degenerate curves.
func (c Curve) Curvature(t float64) float64 {
	k, _ := c.curvature(t)
	return k
}

// Radius returns the signed radius of curvature at t, which is the inverse
// of [Curve.Curvature]. Where the curvature is 0, so is the radius.
func (c Curve) Radius(t float64) float64 {
	_, r := c.curvature(t)
	return r
}

// IsLinear reports whether all control points lie within 1e-4 of the
// chord from the first to the last point.
func (c Curve) IsLinear() bool {
	a := c.bez.align()
	for _, p := range [...]Point{a.P0, a.P1, a.P2, a.P3} {
		if math.Abs(p.Y) > linearityTolerance {
			return false
		}
	}
	return true
}

// Arclen returns the arc length of the curve, computed with 24-point
// Legendre-Gauss quadrature over the speed |Deriv(t)|.
func (c Curve) Arclen() float64 {
	var sum float64
	for _, coeff := range gaussLegendreCoeffs24Half {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (c.Deriv(0.5+0.5*xi).Hypot() + c.Deriv(0.5-0.5*xi).Hypot())
	}
	return 0.5 * sum
}

// ClearHandles returns the straight curve between the same endpoints.
func (c Curve) ClearHandles() Curve {
	return NewCurve(NewAnchor(c.bez.P0), NewAnchor(c.bez.P3))
}

func (c Curve) Transform(aff Affine) Curve {
	return NewCurveFromCubic(c.bez.Transform(aff))
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Only the non-negative abscissae are listed; the rule is symmetric.

var gaussLegendreCoeffs24Half = [...][2]float64{
	{0.1279381953467522, 0.0640568928626056},
	{0.1258374563468283, 0.1911188674736163},
	{0.1216704729278034, 0.3150426796961634},
	{0.1155056680537256, 0.4337935076260451},
	{0.1074442701159656, 0.5454214713888396},
	{0.0976186521041139, 0.6480936519369755},
	{0.0861901615319533, 0.7401241915785544},
	{0.0733464814110803, 0.8200019859739029},
	{0.0592985849154368, 0.8864155270044011},
	{0.0442774388174198, 0.9382745520027328},
	{0.0285313886289337, 0.9747285559713095},
	{0.0123412297999872, 0.9951872199970213},
}
