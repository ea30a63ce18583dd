package scene

import (
	"github.com/vhiribarren/raytracer-go/pkg/core"
	"github.com/vhiribarren/raytracer-go/pkg/geometry"
	"github.com/vhiribarren/raytracer-go/pkg/texture"
)

// Object is a renderable scene element: a shape, the texture painted on it,
// its optical effects, and a human-readable description used in diagnostics.
type Object struct {
	Shape       geometry.Shape
	Texture     texture.Texture
	Effects     Effects
	Description string
}

// ColorAt returns the object's base color at a surface point, resolved
// through the shape's surface mapping
func (o *Object) ColorAt(point core.Vec3) core.Color {
	u, v := o.Shape.SurfaceMapping(point)
	return o.Texture.ColorAt(u, v)
}
