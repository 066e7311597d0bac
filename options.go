package kynex

// BodyOption configures a Body during creation.
//
// Example:
//
//	ball := kynex.NewDynamicBody(kynex.Circle(0.5), 1, kynex.V2(0, 2),
//	    kynex.WithMaterial(kynex.Material{Restitution: 0.9, Friction: 0.1}),
//	    kynex.WithVelocity(kynex.V2(3, 0)))
type BodyOption func(*bodyOptions)

// bodyOptions holds optional configuration for Body creation.
type bodyOptions struct {
	material Material
	angle    float32
	velocity Vec2
	angular  float32
}

// defaultBodyOptions returns the default body options.
func defaultBodyOptions() bodyOptions {
	return bodyOptions{
		material: DefaultMaterial(),
	}
}

// WithMaterial sets the surface material of the body.
func WithMaterial(m Material) BodyOption {
	return func(o *bodyOptions) {
		o.material = m
	}
}

// WithAngle sets the initial rotation angle in radians.
func WithAngle(angle float32) BodyOption {
	return func(o *bodyOptions) {
		o.angle = angle
	}
}

// WithVelocity sets the initial linear velocity.
// Ignored for static bodies.
func WithVelocity(v Vec2) BodyOption {
	return func(o *bodyOptions) {
		o.velocity = v
	}
}

// WithAngularVelocity sets the initial angular velocity in radians per second.
// Ignored for static bodies.
func WithAngularVelocity(w float32) BodyOption {
	return func(o *bodyOptions) {
		o.angular = w
	}
}
