package renderer

import (
	"math"
	"math/rand"

	"github.com/vhiribarren/raytracer-go/pkg/core"
	"github.com/vhiribarren/raytracer-go/pkg/geometry"
	"github.com/vhiribarren/raytracer-go/pkg/scene"
)

// Hit pairs an intersection record with the object that was hit
type Hit struct {
	Record geometry.HitRecord
	Object *scene.Object
}

// FindClosestHit scans the objects in declaration order and returns the
// nearest intersection inside the ray's interval. A strict distance
// comparison keeps the first object on exact ties.
func FindClosestHit(ray core.Ray, objects []scene.Object) (*Hit, bool) {
	var closest *Hit
	for i := range objects {
		record, ok := objects[i].Shape.Hit(ray)
		if !ok {
			continue
		}
		if closest == nil || record.T < closest.Record.T {
			closest = &Hit{Record: *record, Object: &objects[i]}
		}
	}
	return closest, closest != nil
}

// Raytracer shades rays against a scene. It holds only read-only scene data
// and is safe to share across workers.
type Raytracer struct {
	scene *scene.Scene
}

// NewRaytracer creates a raytracer for the given scene
func NewRaytracer(sc *scene.Scene) *Raytracer {
	return &Raytracer{scene: sc}
}

// RenderPixel computes the final color of pixel (x, y) on a width x height
// canvas, averaging one shaded ray per sample offset. The rng drives jittered
// sampling only; the center strategy never reads it.
func (r *Raytracer) RenderPixel(x, y, width, height int, strategy SamplingStrategy, rng *rand.Rand) core.Color {
	offsets := strategy.PixelOffsets(rng)
	accum := core.Black
	for _, offset := range offsets {
		canvasX := (float64(x) + offset.Dx) / float64(width)
		canvasY := (float64(y) + offset.Dy) / float64(height)
		ray := r.scene.Camera.GenerateRay(canvasX, canvasY)
		accum = accum.Add(r.ColorForRay(ray, r.scene.Config.MaxRecursionDepth))
	}
	return accum.Multiply(1.0 / float64(len(offsets))).Clamp()
}

// ColorForRay shades a ray recursively. depth counts down; at or below zero
// the recursion base case is black, which bounds both the recursion and the
// worst-case work per primary ray.
func (r *Raytracer) ColorForRay(ray core.Ray, depth int) core.Color {
	if depth <= 0 {
		return core.Black
	}

	hit, ok := FindClosestHit(ray, r.scene.Objects)
	if !ok {
		return r.scene.Config.WorldColor
	}

	result := r.localIllumination(ray, hit)

	effects := hit.Object.Effects
	if effects.Mirror != nil {
		reflected := core.NewSecondaryRay(hit.Record.Point, ray.Direction.Reflect(hit.Record.Normal))
		result = result.Add(r.ColorForRay(reflected, depth-1).Multiply(effects.Mirror.Coeff))
	}
	if effects.Transparency != nil {
		transmitted := r.transmittedRay(ray, hit, effects.Transparency)
		result = result.Add(r.ColorForRay(transmitted, depth-1).Multiply(effects.Transparency.Alpha))
	}

	return result
}

// localIllumination computes the Phong-style local term: ambient plus, for
// each light with an unoccluded path to the point, a diffuse term and an
// optional specular highlight.
func (r *Raytracer) localIllumination(ray core.Ray, hit *Hit) core.Color {
	base := hit.Object.ColorAt(hit.Record.Point)
	normal := hit.Record.Normal

	result := core.Black
	if ambient := r.scene.Config.AmbientLight; ambient != nil {
		result = base.MultiplyColor(*ambient)
	}

	for _, light := range r.scene.Lights {
		shadowRay := core.NewShadowRay(hit.Record.Point, light.Source())
		if r.occluded(shadowRay) {
			continue
		}
		lightColor := light.ColorAt(hit.Record.Point)
		toLight := shadowRay.Direction

		diffuse := normal.Dot(toLight)
		if diffuse > 0 {
			result = result.Add(base.MultiplyColor(lightColor).Multiply(diffuse))
		}

		if phong := hit.Object.Effects.Phong; phong != nil {
			alignment := ray.Direction.Reflect(normal).Dot(toLight)
			if alignment > 0 {
				specular := math.Pow(alignment, float64(phong.Shininess)) * phong.SpecularCoeff
				result = result.Add(lightColor.Multiply(specular))
			}
		}
	}

	return result
}

// occluded reports whether any object blocks the shadow ray before it reaches
// the light. Transparent objects block like opaque ones; shadows ignore
// transmission.
func (r *Raytracer) occluded(shadowRay core.Ray) bool {
	_, ok := FindClosestHit(shadowRay, r.scene.Objects)
	return ok
}

// transmittedRay bends a ray through a transparent surface following Snell's
// law. The front-face flag selects the entering or exiting index ratio; past
// the critical angle the refracted ray does not exist and the reflected ray
// substitutes for it.
func (r *Raytracer) transmittedRay(ray core.Ray, hit *Hit, transparency *scene.Transparency) core.Ray {
	var ratio float64
	if hit.Record.FrontFace {
		ratio = r.scene.Config.WorldRefractiveIndex / transparency.RefractiveIndex
	} else {
		ratio = transparency.RefractiveIndex / r.scene.Config.WorldRefractiveIndex
	}

	normal := hit.Record.Normal // oriented against the incident ray
	cosIncident := -ray.Direction.Dot(normal)
	sin2Transmitted := ratio * ratio * (1 - cosIncident*cosIncident)
	if sin2Transmitted > 1 {
		// Total internal reflection
		return core.NewSecondaryRay(hit.Record.Point, ray.Direction.Reflect(normal))
	}

	cosTransmitted := math.Sqrt(1 - sin2Transmitted)
	direction := ray.Direction.Multiply(ratio).
		Add(normal.Multiply(ratio*cosIncident - cosTransmitted))
	return core.NewSecondaryRay(hit.Record.Point, direction)
}
