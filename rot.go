package kynex

import "cogentcore.org/core/math32"

// Rot is a 2D rotation stored as its sine and cosine, so rotating a vector
// costs four multiplies and no trigonometry.
type Rot struct {
	S, C float32
}

// IdentityRot returns the zero rotation.
func IdentityRot() Rot {
	return Rot{S: 0, C: 1}
}

// RotFromAngle creates a rotation from an angle in radians.
func RotFromAngle(angle float32) Rot {
	return Rot{S: math32.Sin(angle), C: math32.Cos(angle)}
}

// Angle returns the rotation angle in radians, in (-pi, pi].
func (q Rot) Angle() float32 {
	return math32.Atan2(q.S, q.C)
}

// Rotate rotates v by q. Equivalent to multiplying by
//
//	| c  -s |
//	| s   c |
func (q Rot) Rotate(v Vec2) Vec2 {
	return Vec2{
		X: float32(q.C*v.X) - float32(q.S*v.Y),
		Y: float32(q.S*v.X) + float32(q.C*v.Y),
	}
}

// InvRotate rotates v by the inverse of q (the transposed matrix).
func (q Rot) InvRotate(v Vec2) Vec2 {
	return Vec2{
		X: float32(q.C*v.X) + float32(q.S*v.Y),
		Y: float32(-q.S*v.X) + float32(q.C*v.Y),
	}
}

// Mul composes two rotations. Rotating by q.Mul(r) equals rotating by r
// and then by q.
func (q Rot) Mul(r Rot) Rot {
	return Rot{
		S: float32(q.S*r.C) + float32(q.C*r.S),
		C: float32(q.C*r.C) - float32(q.S*r.S),
	}
}
