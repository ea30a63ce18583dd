package geometry

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// Sphere represents a sphere defined by its center and radius
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray) (*HitRecord, bool) {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	// Try the closer intersection point first
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if !ray.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !ray.Contains(root) {
			return nil, false
		}
	}

	hit := &HitRecord{
		T:     root,
		Point: ray.At(root),
	}
	outwardNormal := hit.Point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// SurfaceMapping maps a point on the sphere to spherical (u, v) coordinates
func (s *Sphere) SurfaceMapping(point core.Vec3) (float64, float64) {
	unit := point.Subtract(s.Center).Normalize()
	u := 0.5 + math.Atan2(unit.Z, unit.X)/(2*math.Pi)
	v := 0.5 - math.Asin(clampUnit(unit.Y))/math.Pi
	return u, v
}

// clampUnit guards Asin against values that drift just outside [-1, 1]
func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
