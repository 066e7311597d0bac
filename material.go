package kynex

import "fmt"

// Material holds the surface response coefficients of a body.
type Material struct {
	Restitution float32 // bounce, 0 (none) to 1 (perfectly elastic)
	Friction    float32 // Coulomb friction coefficient
}

// DefaultMaterial returns the material assigned to bodies that do not
// specify one.
func DefaultMaterial() Material {
	return Material{Restitution: 0.2, Friction: 0.6}
}

// Validate reports whether the coefficients are usable. Restitution must
// be in [0, 1] and friction must be finite and non-negative.
func (m Material) Validate() error {
	if !isFinite(m.Restitution) || m.Restitution < 0 || m.Restitution > 1 {
		return fmt.Errorf("%w: restitution %g not in [0, 1]", ErrInvalidMaterial, m.Restitution)
	}
	if !isFinite(m.Friction) || m.Friction < 0 {
		return fmt.Errorf("%w: friction %g must be finite and non-negative", ErrInvalidMaterial, m.Friction)
	}
	return nil
}
