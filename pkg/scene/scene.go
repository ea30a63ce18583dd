package scene

import (
	"fmt"

	"github.com/vhiribarren/raytracer-go/pkg/core"
	"github.com/vhiribarren/raytracer-go/pkg/geometry"
	"github.com/vhiribarren/raytracer-go/pkg/lights"
)

// Config holds the scene-wide rendering parameters
type Config struct {
	WorldColor           core.Color // Background color for rays that miss everything
	WorldRefractiveIndex float64    // Refractive index of the surrounding medium
	AmbientLight         *core.Color
	MaxRecursionDepth    int // Bound on reflection/refraction recursion
}

// DefaultConfig returns the scene defaults: black background, vacuum-like
// medium, a faint gray ambient light and two recursion levels
func DefaultConfig() Config {
	ambient := core.NewColor(0.2, 0.2, 0.2)
	return Config{
		WorldColor:           core.Black,
		WorldRefractiveIndex: 1.0,
		AmbientLight:         &ambient,
		MaxRecursionDepth:    2,
	}
}

// Scene owns the ordered object collection, the lights, the camera and the
// scene-wide configuration. Once assembled it is immutable and safe to share
// read-only across rendering workers.
type Scene struct {
	Camera  Camera
	Lights  []lights.Light
	Objects []Object
	Config  Config
}

// ValidationError reports a scene element whose parameters violate a
// construction invariant. Description identifies the offending element.
type ValidationError struct {
	Description string
	Reason      string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scene: invalid element %q: %s", e.Description, e.Reason)
}

// Validate checks every construction invariant and fails fast on the first
// violation, before any rendering work starts.
func (s *Scene) Validate() error {
	if s.Camera == nil {
		return &ValidationError{Description: "camera", Reason: "scene has no camera"}
	}
	if len(s.Lights) == 0 {
		return &ValidationError{Description: "lights", Reason: "scene has no light"}
	}
	if s.Config.WorldRefractiveIndex <= 0 {
		return &ValidationError{
			Description: "world",
			Reason:      fmt.Sprintf("refractive index must be > 0, got %v", s.Config.WorldRefractiveIndex),
		}
	}
	if s.Config.MaxRecursionDepth < 0 {
		return &ValidationError{
			Description: "world",
			Reason:      fmt.Sprintf("max recursion depth must be >= 0, got %d", s.Config.MaxRecursionDepth),
		}
	}
	for i := range s.Objects {
		if err := validateObject(&s.Objects[i]); err != nil {
			return err
		}
	}
	for i, light := range s.Lights {
		if err := validateLight(i, light); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(obj *Object) error {
	if obj.Shape == nil {
		return &ValidationError{Description: obj.Description, Reason: "object has no shape"}
	}
	if obj.Texture == nil {
		return &ValidationError{Description: obj.Description, Reason: "object has no texture"}
	}
	switch shape := obj.Shape.(type) {
	case *geometry.Sphere:
		if shape.Radius <= 0 {
			return &ValidationError{
				Description: obj.Description,
				Reason:      fmt.Sprintf("sphere radius must be > 0, got %v", shape.Radius),
			}
		}
	case *geometry.Plane:
		if shape.Width <= 0 {
			return &ValidationError{
				Description: obj.Description,
				Reason:      fmt.Sprintf("plane width must be > 0, got %v", shape.Width),
			}
		}
	}
	if mirror := obj.Effects.Mirror; mirror != nil {
		if mirror.Coeff < 0 || mirror.Coeff > 1 {
			return &ValidationError{
				Description: obj.Description,
				Reason:      fmt.Sprintf("mirror coefficient must be in [0, 1], got %v", mirror.Coeff),
			}
		}
	}
	if transparency := obj.Effects.Transparency; transparency != nil {
		if transparency.RefractiveIndex <= 0 {
			return &ValidationError{
				Description: obj.Description,
				Reason:      fmt.Sprintf("refractive index must be > 0, got %v", transparency.RefractiveIndex),
			}
		}
	}
	return nil
}

func validateLight(index int, light lights.Light) error {
	spot, ok := light.(*lights.SpotLight)
	if !ok {
		return nil
	}
	if spot.OuterAngle < spot.InnerAngle {
		return &ValidationError{
			Description: fmt.Sprintf("light #%d", index),
			Reason:      "spot light outer angle must not be smaller than its inner angle",
		}
	}
	return nil
}
