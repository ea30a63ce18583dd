package scene

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
	"github.com/vhiribarren/raytracer-go/pkg/geometry"
	"github.com/vhiribarren/raytracer-go/pkg/lights"
	"github.com/vhiribarren/raytracer-go/pkg/texture"
)

// NewShowcaseScene builds the classic demo scene: a checkered sphere, a
// mirror sphere, two glass spheres and a mirrored checker floor, lit by a
// white and a red point light.
func NewShowcaseScene() *Scene {
	camera := NewPerspectiveCamera(
		core.NewVec3(0, 10, -10),
		core.NewVec3(0, 0, 30),
		32, 18,
		math.Pi/8,
	)

	objects := []Object{
		{
			Shape:       geometry.NewSphere(core.NewVec3(0, 0, 0), 5),
			Texture:     texture.NewCheckerPattern(),
			Effects:     Effects{Phong: NewDefaultPhong()},
			Description: "checkered sphere",
		},
		{
			Shape:   geometry.NewSphere(core.NewVec3(-10, 3, 10), 8),
			Texture: texture.NewPlainColor(core.Red),
			Effects: Effects{
				Phong:  NewDefaultPhong(),
				Mirror: &Mirror{Coeff: 1.0},
			},
			Description: "red mirror sphere",
		},
		{
			Shape:   geometry.NewSphere(core.NewVec3(10, 3, 10), 8),
			Texture: texture.NewPlainColor(core.Green),
			Effects: Effects{
				Phong:        NewDefaultPhong(),
				Transparency: NewTransparency(1.3),
			},
			Description: "green glass sphere",
		},
		{
			Shape:   geometry.NewSphere(core.NewVec3(0, 10, 35), 15),
			Texture: texture.NewPlainColor(core.NewColor(1, 1, 0)),
			Effects: Effects{
				Phong:        NewDefaultPhong(),
				Transparency: NewTransparency(1.3),
			},
			Description: "yellow glass sphere",
		},
		{
			Shape:       geometry.NewInfinitePlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0)),
			Texture:     texture.NewCheckerPattern(),
			Effects:     Effects{Mirror: &Mirror{Coeff: 0.8}},
			Description: "checkered floor",
		},
	}

	ambient := core.NewColor(0, 0, 0.2)
	config := DefaultConfig()
	config.AmbientLight = &ambient

	return &Scene{
		Camera: camera,
		Lights: []lights.Light{
			lights.NewPointLightWithColor(core.NewVec3(50, 100, -50), core.NewColor(0.8, 0.8, 0.8)),
			lights.NewPointLightWithColor(core.NewVec3(-50, 20, -20), core.NewColor(0.8, 0, 0)),
		},
		Objects: objects,
		Config:  config,
	}
}

// NewSpotlitScene builds a smaller scene lit by a single spot light, with a
// finite square floor. Good for checking cone falloff and hard shadows.
func NewSpotlitScene() *Scene {
	camera := NewPerspectiveCamera(
		core.NewVec3(0, 6, -15),
		core.NewVec3(0, 0, 10),
		32, 18,
		math.Pi/7,
	)

	objects := []Object{
		{
			Shape:       geometry.NewSphere(core.NewVec3(-4, 0, 10), 4),
			Texture:     texture.NewPlainColor(core.Blue),
			Effects:     Effects{Phong: NewDefaultPhong()},
			Description: "blue sphere",
		},
		{
			Shape:       geometry.NewSphere(core.NewVec3(5, -1, 14), 3),
			Texture:     texture.NewCheckerPattern(),
			Effects:     Effects{Phong: NewDefaultPhong()},
			Description: "checkered sphere",
		},
		{
			Shape:       geometry.NewPlane(core.NewVec3(0, -4, 12), core.NewVec3(0, 1, 0), 60),
			Texture:     texture.NewCheckerPattern(),
			Effects:     Effects{},
			Description: "square floor",
		},
	}

	return &Scene{
		Camera: camera,
		Lights: []lights.Light{
			lights.NewSpotLight(core.NewVec3(0, 30, 0), core.NewVec3(0, -1, 0.3), 15, 35),
		},
		Objects: objects,
		Config:  DefaultConfig(),
	}
}
