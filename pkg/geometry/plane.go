package geometry

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// infinitePlaneCheckerWidth is the world-space period used to wrap an
// infinite plane's surface into repeatable [0,1] texture cells.
const infinitePlaneCheckerWidth = 50.0

// InfinitePlane represents an unbounded plane defined by a point and a normal
type InfinitePlane struct {
	Center core.Vec3
	Normal core.Vec3 // unit length
	uVec   core.Vec3
	vVec   core.Vec3
}

// NewInfinitePlane creates a new infinite plane. The plane's local texture
// axes are derived by rotating the canonical up-facing plane onto the normal.
func NewInfinitePlane(center, normal core.Vec3) *InfinitePlane {
	rot := core.RotationBetween(core.NewVec3(0, 1, 0), normal)
	return &InfinitePlane{
		Center: center,
		Normal: normal.Normalize(),
		uVec:   rot.MultiplyVec3(core.NewVec3(1, 0, 0)),
		vVec:   rot.MultiplyVec3(core.NewVec3(0, 0, 1)),
	}
}

// Hit tests if a ray intersects with the plane
func (p *InfinitePlane) Hit(ray core.Ray) (*HitRecord, bool) {
	t, ok := planeIntersection(ray, p.Center, p.Normal)
	if !ok {
		return nil, false
	}
	hit := &HitRecord{
		T:     t,
		Point: ray.At(t),
	}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// SurfaceMapping wraps world-space coordinates along the plane's local axes
// into periodic [0,1] texture cells
func (p *InfinitePlane) SurfaceMapping(point core.Vec3) (float64, float64) {
	local := point.Subtract(p.Center)
	u := positiveFraction(local.Dot(p.uVec) / infinitePlaneCheckerWidth)
	v := positiveFraction(local.Dot(p.vVec) / infinitePlaneCheckerWidth)
	return u, v
}

// Plane represents a finite square plane centered on a point
type Plane struct {
	Center core.Vec3
	Normal core.Vec3 // unit length
	Width  float64
	uVec   core.Vec3
	vVec   core.Vec3
}

// NewPlane creates a new finite square plane of the given edge width
func NewPlane(center, normal core.Vec3, width float64) *Plane {
	rot := core.RotationBetween(core.NewVec3(0, 1, 0), normal)
	return &Plane{
		Center: center,
		Normal: normal.Normalize(),
		Width:  width,
		uVec:   rot.MultiplyVec3(core.NewVec3(1, 0, 0)),
		vVec:   rot.MultiplyVec3(core.NewVec3(0, 0, 1)),
	}
}

// Hit tests if a ray intersects with the square's surface
func (p *Plane) Hit(ray core.Ray) (*HitRecord, bool) {
	t, ok := planeIntersection(ray, p.Center, p.Normal)
	if !ok {
		return nil, false
	}
	point := ray.At(t)
	if _, _, inside := p.localCoords(point); !inside {
		return nil, false
	}
	hit := &HitRecord{
		T:     t,
		Point: point,
	}
	hit.SetFaceNormal(ray, p.Normal)
	return hit, true
}

// SurfaceMapping maps the square's surface onto [0,1]x[0,1]
func (p *Plane) SurfaceMapping(point core.Vec3) (float64, float64) {
	x, y, _ := p.localCoords(point)
	halfWidth := p.Width / 2
	return (x + halfWidth) / p.Width, (y + halfWidth) / p.Width
}

// localCoords projects a point onto the square's local axes and reports
// whether it falls inside the square
func (p *Plane) localCoords(point core.Vec3) (x, y float64, inside bool) {
	local := point.Subtract(p.Center)
	x = local.Dot(p.uVec)
	y = local.Dot(p.vVec)
	halfWidth := p.Width / 2
	inside = x >= -halfWidth && x <= halfWidth && y >= -halfWidth && y <= halfWidth
	return x, y, inside
}

// planeIntersection computes the parametric distance at which a ray crosses
// the plane through `center` with unit normal `normal`
func planeIntersection(ray core.Ray, center, normal core.Vec3) (float64, bool) {
	denominator := ray.Direction.Dot(normal)
	// Parallel rays never cross the plane
	if math.Abs(denominator) < 1e-8 {
		return 0, false
	}
	t := center.Subtract(ray.Origin).Dot(normal) / denominator
	if !ray.Contains(t) {
		return 0, false
	}
	return t, true
}

// positiveFraction returns the fractional part of v shifted into [0, 1)
func positiveFraction(v float64) float64 {
	frac := v - math.Floor(v)
	return frac
}
