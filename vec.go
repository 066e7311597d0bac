package kynex

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Vec2 is a 2D vector of single-precision components.
//
// The same type is used for every vector role in the engine: positions,
// velocities, forces, normals and offsets from a body's center of mass.
// Vec2 is a plain value; all methods return new values and never mutate
// the receiver.
type Vec2 struct {
	X, Y float32
}

// Frequently used vectors.
var (
	Zero  = Vec2{}
	UnitX = Vec2{X: 1}
	UnitY = Vec2{Y: 1}
)

// V2 is a convenience function to create a Vec2.
// Any float32 is accepted, including NaN and infinities.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
func (v Vec2) Div(s float32) Vec2 {
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Neg returns the negation of the vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product v.X*w.X + v.Y*w.Y.
//
// Each product is rounded to float32 before the sum, so the result is the
// same on every architecture: the explicit conversions stop the compiler
// from fusing the multiply and add. NaN and infinities propagate per
// IEEE-754.
//
// A negative dot product between a normal and a relative velocity means
// the two objects are moving toward each other.
func (v Vec2) Dot(w Vec2) float32 {
	return float32(v.X*w.X) + float32(v.Y*w.Y)
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
// It uses the same unfused evaluation as Dot.
func (v Vec2) Cross(w Vec2) float32 {
	return float32(v.X*w.Y) - float32(v.Y*w.X)
}

// LengthSq returns the squared length of the vector.
// This is cheaper than Length when you only need to compare magnitudes.
func (v Vec2) LengthSq() float32 {
	return v.Dot(v)
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.LengthSq())
}

// Distance returns the distance between two points.
func (v Vec2) Distance(w Vec2) float32 {
	return w.Sub(v).Length()
}

// Normalize returns a unit vector in the same direction.
// Returns the zero vector if the length is not positive (including NaN).
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if !(l > 0) {
		return Zero
	}
	return v.Div(l)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// ClampLength returns v scaled down to length maxLen if it is longer,
// otherwise v unchanged. Used to cap runaway velocities.
func (v Vec2) ClampLength(maxLen float32) Vec2 {
	l2 := v.LengthSq()
	if l2 > maxLen*maxLen {
		return v.Mul(maxLen / math32.Sqrt(l2))
	}
	return v
}

// Lerp performs linear interpolation between two vectors.
// t=0 returns v, t=1 returns w, intermediate values interpolate.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
	}
}

// IsZero returns true if the vector is the zero vector.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y)
}

// Approx returns true if two vectors are approximately equal within epsilon.
func (v Vec2) Approx(w Vec2, epsilon float32) bool {
	return math32.Abs(v.X-w.X) < epsilon && math32.Abs(v.Y-w.Y) < epsilon
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("Vec2(%g, %g)", v.X, v.Y)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
