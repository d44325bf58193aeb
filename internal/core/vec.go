package core

import "math"

// Vec3 is a point or direction in world space.
// X runs along the track (negative = behind the player), Y is lateral and
// Z is height above the ground.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vec3{x, y, z}.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Len returns the Euclidean length.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// Dist returns |a - b|.
func (a Vec3) Dist(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Mid returns the midpoint of a and b.
func (a Vec3) Mid(b Vec3) Vec3 {
	return Vec3{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Normalize returns the unit vector in the direction of a.
// The zero vector is returned unchanged.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return a
	}
	return a.Scale(1 / l)
}

// Transform is the flat per-object record the host exposes for every
// object: position, facing direction and uniform scale. Hierarchy, if any,
// is the host's business.
type Transform struct {
	Pos    Vec3
	Facing Vec3 // Unit direction the object's forward axis points at
	Scale  float64
}

// NewTransform returns a unit-scale transform at pos facing +X.
func NewTransform(pos Vec3) Transform {
	return Transform{Pos: pos, Facing: Vec3{X: 1}, Scale: 1}
}

// LookAt returns a transform positioned at pos and facing target.
// When pos == target the facing falls back to +X.
func LookAt(pos, target Vec3) Transform {
	dir := target.Sub(pos).Normalize()
	if dir == (Vec3{}) {
		dir = Vec3{X: 1}
	}
	return Transform{Pos: pos, Facing: dir, Scale: 1}
}
