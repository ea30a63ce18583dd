package lights

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// Light is the interface for scene light sources. Lights never occlude
// themselves; shadowing is the shading pipeline's job.
type Light interface {
	// Source returns the light's position
	Source() core.Vec3
	// ColorAt returns the light's emission as perceived from a surface point
	ColorAt(point core.Vec3) core.Color
}

// PointLight emits its color uniformly in every direction
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a white point light
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{Position: position, Color: core.White}
}

// NewPointLightWithColor creates a point light with the given emission color
func NewPointLightWithColor(position core.Vec3, color core.Color) *PointLight {
	return &PointLight{Position: position, Color: color}
}

// Source returns the light's position
func (l *PointLight) Source() core.Vec3 {
	return l.Position
}

// ColorAt returns the emission color regardless of direction
func (l *PointLight) ColorAt(_ core.Vec3) core.Color {
	return l.Color
}

// SpotLight emits within a cone: full strength inside the inner angle,
// nothing outside the outer angle, and a linear falloff in between.
type SpotLight struct {
	Position   core.Vec3
	Direction  core.Vec3 // unit length
	Color      core.Color
	InnerAngle float64 // radians
	OuterAngle float64 // radians
}

// NewSpotLight creates a white spot light; cone angles are in degrees
func NewSpotLight(position, direction core.Vec3, innerAngleDegrees, outerAngleDegrees float64) *SpotLight {
	return NewSpotLightWithColor(position, direction, innerAngleDegrees, outerAngleDegrees, core.White)
}

// NewSpotLightWithColor creates a spot light with the given emission color;
// cone angles are in degrees
func NewSpotLightWithColor(position, direction core.Vec3, innerAngleDegrees, outerAngleDegrees float64, color core.Color) *SpotLight {
	return &SpotLight{
		Position:   position,
		Direction:  direction.Normalize(),
		Color:      color,
		InnerAngle: innerAngleDegrees * math.Pi / 180,
		OuterAngle: outerAngleDegrees * math.Pi / 180,
	}
}

// Source returns the light's position
func (l *SpotLight) Source() core.Vec3 {
	return l.Position
}

// ColorAt attenuates the emission by the angle between the cone axis and the
// direction toward the lit point
func (l *SpotLight) ColorAt(point core.Vec3) core.Color {
	toPoint := point.Subtract(l.Position).Normalize()
	angle := math.Acos(clampUnit(l.Direction.Dot(toPoint)))
	switch {
	case angle <= l.InnerAngle:
		return l.Color
	case angle >= l.OuterAngle:
		return core.Black
	default:
		luminosity := 1 - (angle-l.InnerAngle)/(l.OuterAngle-l.InnerAngle)
		return l.Color.Multiply(luminosity)
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
