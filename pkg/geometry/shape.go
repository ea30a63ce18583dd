package geometry

import "github.com/vhiribarren/raytracer-go/pkg/core"

// HitRecord contains information about a ray-shape intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, oriented against the ray
	T         float64   // Parametric distance along the ray
	FrontFace bool      // Whether the ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}

// Shape is the interface for geometry that rays can hit
type Shape interface {
	// Hit returns the nearest intersection within the ray's interval
	Hit(ray core.Ray) (*HitRecord, bool)
	// SurfaceMapping maps a surface point to (u, v) texture coordinates in [0,1]
	SurfaceMapping(point core.Vec3) (u, v float64)
}
