package kynex

// Aabb is an axis-aligned bounding box.
type Aabb struct {
	Min, Max Vec2
}

// Overlaps reports whether two boxes intersect. Touching edges count.
func (a Aabb) Overlaps(b Aabb) bool {
	return a.Min.X <= b.Max.X &&
		a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y &&
		a.Max.Y >= b.Min.Y
}

// Contains reports whether p lies inside the box or on its boundary.
func (a Aabb) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y
}

// Union returns the smallest box containing both a and b.
func (a Aabb) Union(b Aabb) Aabb {
	return Aabb{
		Min: Vec2{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y)},
		Max: Vec2{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y)},
	}
}

// Center returns the center of the box.
func (a Aabb) Center() Vec2 {
	return a.Min.Add(a.Max).Mul(0.5)
}

// Extents returns the half size of the box.
func (a Aabb) Extents() Vec2 {
	return a.Max.Sub(a.Min).Mul(0.5)
}
