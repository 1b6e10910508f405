package vecpath

// QuadBez is a quadratic Bézier segment.
//
// Quadratics appear as the derivative of cubic Béziers and in SVG path data,
// where they are raised to cubics.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Raise raises the order by 1.
//
// Returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Differentiate returns the derivative of the quadratic, which is a line.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}
