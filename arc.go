package vecpath

import (
	"iter"
	"math"
)

// Arc is an elliptical arc. Angles are in degrees.
type Arc struct {
	Center Point
	Radii  Vec2
	// StartAngle and SweepAngle are measured in the ellipse's own frame,
	// before rotation by XRotation. A positive sweep goes from the positive
	// x axis towards the positive y axis.
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

// Commands approximates the arc with cubic Béziers, so that no point is
// further than tolerance from the true arc. The sequence starts with a
// MoveTo to the start of the arc. A tolerance of 0 or less selects
// [DefaultArcTolerance].
func (a Arc) Commands(tolerance float64) iter.Seq[Command] {
	if tolerance <= 0 {
		tolerance = DefaultArcTolerance
	}
	return func(yield func(Command) bool) {
		rot := Radians(a.XRotation)
		sweep := Radians(a.SweepAngle)
		angle0 := Radians(a.StartAngle)

		p0 := sampleEllipse(a.Radii, rot, angle0)
		if !yield(MoveTo(a.Center.Translate(p0))) {
			return
		}

		scaledError := max(math.Abs(a.Radii.X), math.Abs(a.Radii.Y)) / tolerance
		// Number of subdivisions per ellipse based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(sweep) * (1.0 / (2.0 * math.Pi)))
		angleStep := sweep / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, rot, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, rot, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, rot, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CurveTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				break
			}
		}
	}
}

// Start returns the arc's first point.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, Radians(a.XRotation), Radians(a.StartAngle)))
}

// End returns the arc's last point.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, Radians(a.XRotation), Radians(a.StartAngle+a.SweepAngle)))
}

// Perimeter returns the length of the arc's Bézier approximation at the
// given tolerance. See [Arc.Commands] for the meaning of tolerance.
func (a Arc) Perimeter(tolerance float64) float64 {
	var sum float64
	var last Point
	for cmd := range a.Commands(tolerance) {
		if cmd.Kind == CurveToKind {
			sum += NewCurveFromCubic(CubicBez{last, cmd.P0, cmd.P1, cmd.P2}).Arclen()
		}
		last, _ = cmd.EndPoint()
	}
	return sum
}

func (a Arc) Translate(v Vec2) Arc {
	a.Center = a.Center.Translate(v)
	return a
}

// sampleEllipse returns the point at angle on the ellipse with the given
// radii, rotated by xRotation. Angles are in radians.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}

// ArcFromEndpoints converts an SVG-style elliptical arc, going from p0 to p1,
// to its center parametrization.
//
// Radii that are too small to span the endpoints are scaled up uniformly
// until they do. ok is false if the arc degenerates to a straight line, which
// is the case when either radius is zero, and when p0 == p1, in which case
// the arc is omitted altogether.
func ArcFromEndpoints(p0, p1 Point, radii Vec2, xRotation float64, largeArc, sweep bool) (arc Arc, ok bool) {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)
	if rx == 0 || ry == 0 || p0 == p1 {
		return Arc{}, false
	}

	sinφ, cosφ := math.Sincos(Radians(xRotation))

	// Midpoint between the endpoints, in the ellipse's unrotated frame.
	hx := (p0.X - p1.X) / 2
	hy := (p0.Y - p1.Y) / 2
	pxp := cosφ*hx + sinφ*hy
	pyp := -sinφ*hx + cosφ*hy

	λ := (pxp*pxp)/(rx*rx) + (pyp*pyp)/(ry*ry)
	if λ > 1 {
		sqrtλ := math.Sqrt(λ)
		rx *= sqrtλ
		ry *= sqrtλ
	}

	rxsq, rysq := rx*rx, ry*ry
	pxpsq, pypsq := pxp*pxp, pyp*pyp

	radicand := rxsq*rysq - rxsq*pypsq - rysq*pxpsq
	if radicand < 0 {
		radicand = 0
	} else {
		radicand = math.Sqrt(radicand / (rxsq*pypsq + rysq*pxpsq))
	}
	if largeArc == sweep {
		radicand = -radicand
	}

	cxp := radicand * rx / ry * pyp
	cyp := radicand * -ry / rx * pxp

	center := Point{
		X: cosφ*cxp - sinφ*cyp + (p0.X+p1.X)/2,
		Y: sinφ*cxp + cosφ*cyp + (p0.Y+p1.Y)/2,
	}

	u := Vec((pxp-cxp)/rx, (pyp-cyp)/ry)
	v := Vec((-pxp-cxp)/rx, (-pyp-cyp)/ry)
	θ1 := vectorAngle(Vec(1, 0), u)
	dθ := vectorAngle(u, v)
	if !sweep && dθ > 0 {
		dθ -= 2 * math.Pi
	}
	if sweep && dθ < 0 {
		dθ += 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radii:      Vec(rx, ry),
		StartAngle: Degrees(θ1),
		SweepAngle: Degrees(dθ),
		XRotation:  xRotation,
	}, true
}

// vectorAngle returns the signed angle in radians from u to v, both of
// which must be unit vectors.
func vectorAngle(u, v Vec2) float64 {
	a := math.Acos(min(max(u.Dot(v), -1), 1))
	if u.Cross(v) < 0 {
		return -a
	}
	return a
}
