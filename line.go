package vecpath

// Line represents a line segment.
//
// Lines serve as the second derivative of cubic Béziers.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}
