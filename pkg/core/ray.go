package core

import "math"

// HitEpsilon is the minimum parametric distance for secondary rays. Offsetting
// TMin keeps a reflection, refraction or shadow ray from re-intersecting the
// surface it just left.
const HitEpsilon = 1e-9

// Ray represents a ray with an origin, a unit direction, and the parametric
// interval [TMin, TMax] in which intersections are valid. Rays are immutable
// once constructed.
type Ray struct {
	Origin    Vec3
	Direction Vec3 // always unit length
	TMin      float64
	TMax      float64
}

// NewRay creates a primary ray with an unbounded interval.
// The direction is normalized.
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      0,
		TMax:      math.Inf(1),
	}
}

// NewRayFromTo creates a primary ray going from source toward destination
func NewRayFromTo(source, destination Vec3) Ray {
	return NewRay(source, destination.Subtract(source))
}

// NewSecondaryRay creates a ray cast from a surface point. TMin starts at
// HitEpsilon so the ray cannot hit the surface it originates from.
func NewSecondaryRay(origin, direction Vec3) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
		TMin:      HitEpsilon,
		TMax:      math.Inf(1),
	}
}

// NewShadowRay creates a secondary ray from a surface point toward a light
// source, capped at the light's distance so objects behind the light do not
// count as occluders.
func NewShadowRay(origin, lightSource Vec3) Ray {
	toLight := lightSource.Subtract(origin)
	return Ray{
		Origin:    origin,
		Direction: toLight.Normalize(),
		TMin:      HitEpsilon,
		TMax:      toLight.Length(),
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Contains reports whether t falls inside the ray's valid interval
func (r Ray) Contains(t float64) bool {
	return t >= r.TMin && t <= r.TMax
}
