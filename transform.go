package kynex

// Transform is a rigid transform: a rotation followed by a translation.
// It moves shape geometry from body-local space to world space.
type Transform struct {
	P Vec2 // translation
	Q Rot  // rotation
}

// IdentityTransform returns the transform that leaves every point in place.
func IdentityTransform() Transform {
	return Transform{Q: IdentityRot()}
}

// NewTransform creates a transform from a position and an angle in radians.
func NewTransform(p Vec2, angle float32) Transform {
	return Transform{P: p, Q: RotFromAngle(angle)}
}

// Apply maps a local point to world space: Q.Rotate(v) + P.
func (xf Transform) Apply(v Vec2) Vec2 {
	return xf.Q.Rotate(v).Add(xf.P)
}

// ApplyInv maps a world point to local space: Q.InvRotate(v - P).
func (xf Transform) ApplyInv(v Vec2) Vec2 {
	return xf.Q.InvRotate(v.Sub(xf.P))
}
