package core

import "math"

// Vec3 represents a 3D vector or point
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewVec3FromTo creates the vector going from source to destination
func NewVec3FromTo(source, destination Vec3) Vec3 {
	return destination.Subtract(source)
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Distance returns the distance between two points
func (v Vec3) Distance(other Vec3) float64 {
	return other.Subtract(v).Length()
}

// Normalize returns a unit vector in the same direction.
// Normalizing a zero-length vector is a contract violation and panics:
// it always indicates a bug upstream, never bad scene data.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		panic("core: cannot normalize a zero-length vector")
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the reflection of the vector off a surface with normal n.
// Computes v - 2*(v·n)*n; n must be unit length.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
