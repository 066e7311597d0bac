package kynex

// In 2D, angular velocity is a scalar, so the rigid-body relation
// velocity_at_point = v + w x r needs mixed scalar/vector cross products.

// CrossSV returns the cross product of scalar s with vector v (s x v).
// With s an angular velocity and v an offset from the center of mass,
// the result is the tangential velocity at that offset.
func CrossSV(s float32, v Vec2) Vec2 {
	return Vec2{X: -s * v.Y, Y: s * v.X}
}

// CrossVS returns the cross product of vector v with scalar s (v x s).
func CrossVS(v Vec2, s float32) Vec2 {
	return Vec2{X: s * v.Y, Y: -s * v.X}
}
