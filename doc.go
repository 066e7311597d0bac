// Package kynex provides the math and rigid-body data foundation of a 2D
// physics engine.
//
// # Overview
//
// Everything in the engine is built on [Vec2], a pair of float32 values.
// The same type represents positions, velocities, forces, normals and
// offsets from a body's center of mass; its meaning comes from the call
// site.
//
//	a := kynex.V2(3, 4)
//	a.Dot(a)    // 25
//	a.Length()  // 5
//	a.Perp()    // Vec2(-4, 3)
//
// # Floating point
//
// All arithmetic is single precision. [Vec2.Dot] and [Vec2.Cross] round
// each product before summing, so results do not depend on whether the
// target architecture has fused multiply-add. Non-finite components are
// accepted everywhere and propagate per IEEE-754; use [Vec2.IsFinite] or
// [Body.Validate] to check.
//
// # Architecture
//
// The package is organized into:
//   - Vectors: Vec2, CrossSV, CrossVS
//   - Rotations and poses: Rot, Transform
//   - Geometry: Shape, Aabb
//   - Bodies: Body, Material, BodyOption
//   - Interop with golang.org/x/image/math (f32, fixed) and
//     cogentcore.org/core/math32
//
// # Coordinate System
//
//   - X increases right
//   - Y increases up
//   - Angles in radians, 0 is right, increases counter-clockwise
//
// # Logging
//
// kynex is silent by default. See [SetLogger].
package kynex

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
