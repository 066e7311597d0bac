package kynex

import (
	"math"

	"cogentcore.org/core/math32"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/fixed"
)

// F32 converts v to an x/image float32 vector.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Vec2FromF32 converts an x/image float32 vector to a Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}

// Math32 converts v to a cogentcore math32 vector.
func (v Vec2) Math32() math32.Vector2 {
	return math32.Vector2{X: v.X, Y: v.Y}
}

// Vec2FromMath32 converts a cogentcore math32 vector to a Vec2.
func Vec2FromMath32(v math32.Vector2) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Fixed converts v to a 26.6 fixed-point point, rounding each component
// to the nearest 1/64. Components outside the 26.6 range or non-finite
// produce unspecified values.
func (v Vec2) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v.Y) * 64)),
	}
}

// Vec2FromFixed converts a 26.6 fixed-point point to a Vec2.
func Vec2FromFixed(p fixed.Point26_6) Vec2 {
	return Vec2{X: float32(p.X) / 64, Y: float32(p.Y) / 64}
}

// Aff3 returns the transform as an x/image affine matrix in row-major
// order:
//
//	| c  -s  px |
//	| s   c  py |
func (xf Transform) Aff3() f32.Aff3 {
	return f32.Aff3{
		xf.Q.C, -xf.Q.S, xf.P.X,
		xf.Q.S, xf.Q.C, xf.P.Y,
	}
}

// TransformFromAff3 extracts the rigid part of an affine matrix. Any scale
// or shear in m is discarded by renormalizing its first column.
func TransformFromAff3(m f32.Aff3) Transform {
	q := Vec2{X: m[0], Y: m[3]}.Normalize()
	if q.IsZero() {
		q = UnitX
	}
	return Transform{
		P: Vec2{X: m[2], Y: m[5]},
		Q: Rot{S: q.Y, C: q.X},
	}
}
