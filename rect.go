package vecpath

import (
	"fmt"
)

// Rect is an axis-aligned rectangle, described by two opposing corners.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{x: %g, y: %g, width: %g, height: %g}", r.X0, r.Y0, r.Width(), r.Height())
}

// Origin returns the origin of the rectangle.
//
// This is the top left corner in a y-down space and with
// non-negative width and height.
func (r Rect) Origin() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// UnionPoint computes the union of a rectangle with a point.
//
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
//
// Results are valid only if width and height are non-negative.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// RoundedRectRadii holds the corner radii of a rounded rectangle, in the
// order used by CSS border-radius.
type RoundedRectRadii struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadii returns radii with all four corners set to r.
func UniformRadii(r float64) RoundedRectRadii {
	return RoundedRectRadii{r, r, r, r}
}
