package kynex

import "fmt"

// Body is the state of a rigid body.
//
// Static bodies have zero mass properties (infinite mass) and ignore
// applied forces. Dynamic bodies derive their inertia from their shape.
type Body struct {
	// Pose.
	P Vec2    // position
	A float32 // rotation angle in radians

	// Velocities.
	V Vec2    // linear velocity
	W float32 // angular velocity

	// Accumulators, cleared by ClearForces.
	F Vec2    // force
	T float32 // torque

	// Mass properties. A zero inverse means immovable along that axis.
	M, InvM float32
	I, InvI float32

	Material Material
	Shape    Shape
	Static   bool
}

// NewDynamicBody creates a movable body of the given mass centered at
// position.
//
// A mass that is not positive is accepted and treated as infinite: the
// body gets zero mass and zero inverse mass.
func NewDynamicBody(shape Shape, mass float32, position Vec2, opts ...BodyOption) Body {
	o := defaultBodyOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var m, invM float32
	if mass > 0 {
		m, invM = mass, 1/mass
	} else {
		Logger().Warn("kynex: non-positive body mass, treating as infinite",
			"mass", mass, "shape", shape.String())
	}

	i := shape.Inertia(m)
	var invI float32
	if i > 0 {
		invI = 1 / i
	}

	Logger().Debug("kynex: dynamic body",
		"shape", shape.String(), "mass", m, "inertia", i)

	return Body{
		P:        position,
		A:        o.angle,
		V:        o.velocity,
		W:        o.angular,
		M:        m,
		InvM:     invM,
		I:        i,
		InvI:     invI,
		Material: o.material,
		Shape:    shape,
	}
}

// NewStaticBody creates an immovable body centered at position.
func NewStaticBody(shape Shape, position Vec2, opts ...BodyOption) Body {
	o := defaultBodyOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Body{
		P:        position,
		A:        o.angle,
		Material: o.material,
		Shape:    shape,
		Static:   true,
	}
}

// ApplyForce adds force to the force accumulator. No-op on static bodies.
func (b *Body) ApplyForce(force Vec2) {
	if b.Static {
		return
	}
	b.F = b.F.Add(force)
}

// ApplyTorque adds torque to the torque accumulator. No-op on static bodies.
func (b *Body) ApplyTorque(torque float32) {
	if b.Static {
		return
	}
	b.T += torque
}

// ApplyForceAt applies force at a world-space point, accumulating both
// the force and the torque it produces about the center of mass.
func (b *Body) ApplyForceAt(force, point Vec2) {
	if b.Static {
		return
	}
	b.F = b.F.Add(force)
	b.T += point.Sub(b.P).Cross(force)
}

// ClearForces zeroes the force and torque accumulators.
func (b *Body) ClearForces() {
	b.F = Zero
	b.T = 0
}

// VelocityAt returns the velocity of the body at a world-space point:
// V + W x r, where r is the offset of point from the center of mass.
func (b *Body) VelocityAt(point Vec2) Vec2 {
	return b.V.Add(CrossSV(b.W, point.Sub(b.P)))
}

// Transform returns the pose of the body.
func (b *Body) Transform() Transform {
	return NewTransform(b.P, b.A)
}

// Bounds returns the world-space bounding box of the body.
func (b *Body) Bounds() Aabb {
	return b.Shape.Bounds(b.Transform())
}

// Validate reports whether the body state is usable: every pose, velocity
// and accumulator component must be finite, and the material must be valid.
func (b *Body) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"position", b.P.IsFinite()},
		{"angle", isFinite(b.A)},
		{"velocity", b.V.IsFinite()},
		{"angular velocity", isFinite(b.W)},
		{"force", b.F.IsFinite()},
		{"torque", isFinite(b.T)},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("body %s: %w", c.name, ErrNonFinite)
		}
	}
	if err := b.Material.Validate(); err != nil {
		return fmt.Errorf("body: %w", err)
	}
	return nil
}
