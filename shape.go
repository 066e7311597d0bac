package kynex

import (
	"fmt"
	"math"

	"cogentcore.org/core/math32"
)

// ShapeKind identifies the geometry of a Shape.
type ShapeKind uint8

const (
	// ShapeCircle is a circle centered on the body origin.
	ShapeCircle ShapeKind = iota
	// ShapeBox is a rectangle centered on the body origin, described by
	// its half extents.
	ShapeBox
)

// String returns the shape kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "Circle"
	case ShapeBox:
		return "Box"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// Shape is the collision geometry of a body in body-local space.
// Only the fields relevant to Kind are meaningful.
type Shape struct {
	Kind        ShapeKind
	Radius      float32 // ShapeCircle
	HalfExtents Vec2    // ShapeBox
}

// Circle returns a circle shape of radius r.
func Circle(r float32) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Box returns a box shape with half extents hx and hy.
func Box(hx, hy float32) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: Vec2{X: hx, Y: hy}}
}

// Area returns the area of the shape.
func (s Shape) Area() float32 {
	switch s.Kind {
	case ShapeCircle:
		return math.Pi * s.Radius * s.Radius
	case ShapeBox:
		return 4 * s.HalfExtents.X * s.HalfExtents.Y
	default:
		return 0
	}
}

// Inertia returns the moment of inertia about the shape center for the
// given mass:
//
//	circle: 1/2 m r^2
//	box:    1/12 m (w^2 + h^2), w = 2hx, h = 2hy
func (s Shape) Inertia(mass float32) float32 {
	switch s.Kind {
	case ShapeCircle:
		return 0.5 * mass * s.Radius * s.Radius
	case ShapeBox:
		w := 2 * s.HalfExtents.X
		h := 2 * s.HalfExtents.Y
		return (1.0 / 12.0) * mass * (w*w + h*h)
	default:
		return 0
	}
}

// Bounds returns the world-space axis-aligned bounding box of the shape
// placed by xf.
func (s Shape) Bounds(xf Transform) Aabb {
	var ext Vec2
	switch s.Kind {
	case ShapeCircle:
		ext = Vec2{X: s.Radius, Y: s.Radius}
	case ShapeBox:
		c := math32.Abs(xf.Q.C)
		sn := math32.Abs(xf.Q.S)
		hx, hy := s.HalfExtents.X, s.HalfExtents.Y
		ext = Vec2{X: c*hx + sn*hy, Y: sn*hx + c*hy}
	}
	return Aabb{Min: xf.P.Sub(ext), Max: xf.P.Add(ext)}
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	switch s.Kind {
	case ShapeCircle:
		return fmt.Sprintf("Circle(r=%g)", s.Radius)
	case ShapeBox:
		return fmt.Sprintf("Box(hx=%g, hy=%g)", s.HalfExtents.X, s.HalfExtents.Y)
	default:
		return s.Kind.String()
	}
}
