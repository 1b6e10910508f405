package vecpath

import (
	"fmt"
	"math"
)

// Vec2 is a two-dimensional vector. It is a value type; none of its methods
// modify the receiver.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float64, float64) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Distance returns the euclidean distance between the tips of v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Hypot()
}

// Rotation returns the angle in degrees between the vector and ⟨1, 0⟩ in the
// positive y direction. This is atan2(y, x), converted to degrees.
func (v Vec2) Rotation() float64 {
	return Degrees(math.Atan2(v.Y, v.X))
}

// AngleTo returns the unsigned angle in degrees between v and o.
//
// The cosine is clamped to [-1, 1] so that rounding errors for (anti)parallel
// vectors don't produce NaN. The result is NaN if either vector is zero.
func (v Vec2) AngleTo(o Vec2) float64 {
	cos := v.Dot(o) / (v.Hypot() * o.Hypot())
	return Degrees(math.Acos(min(max(cos, -1), 1)))
}

// Rotate rotates the vector about the origin by deg degrees.
//
// A positive angle rotates the positive X direction into positive Y.
func (v Vec2) Rotate(deg float64) Vec2 {
	sin, cos := math.Sincos(Radians(deg))
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Div(v.Hypot())
}

// Limit returns v scaled down to a magnitude of at most max. Vectors that
// are already short enough are returned unchanged.
func (v Vec2) Limit(max float64) Vec2 {
	if v.Hypot2() > max*max {
		return v.Normalize().Mul(max)
	}
	return v
}

// IsZero reports whether both x and y are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

// Perp returns v rotated by 90°, i.e. ⟨-y, x⟩.
func (v Vec2) Perp() Vec2 {
	return Vec2{
		X: -v.Y,
		Y: v.X,
	}
}
