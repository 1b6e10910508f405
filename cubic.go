package vecpath

// CubicBez is a cubic Bézier segment, described by its four control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the cubic at t using the Bernstein form.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the hodograph of the cubic: the quadratic whose
// control points are 3·(P[i+1]−P[i]).
func (c CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(c.P1.Sub(c.P0).Mul(3)),
		Point(c.P2.Sub(c.P1).Mul(3)),
		Point(c.P3.Sub(c.P2).Mul(3)),
	}
}

func (c CubicBez) Transform(aff Affine) CubicBez {
	return CubicBez{
		P0: c.P0.Transform(aff),
		P1: c.P1.Transform(aff),
		P2: c.P2.Transform(aff),
		P3: c.P3.Transform(aff),
	}
}

// align rotates and translates the control polygon so that the chord from
// P0 to P3 lies on the positive x axis, starting at the origin.
func (c CubicBez) align() CubicBez {
	th := -c.P3.Sub(c.P0).Rotation()
	return c.Transform(Translate(Vec2(c.P0).Negate()).ThenRotate(th))
}
