package geometry

import (
	"math"
	"testing"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

const tolerance = 1e-9

func TestSphere_HitDistanceMatchesFormula(t *testing.T) {
	// A ray from (0,0,-2r) toward the center of a sphere of radius r at the
	// origin must hit the surface at distance exactly r.
	radii := []float64{0.5, 1.0, 5.0, 100.0}

	for _, r := range radii {
		sphere := NewSphere(core.NewVec3(0, 0, 0), r)
		ray := core.NewRayFromTo(core.NewVec3(0, 0, -2*r), core.NewVec3(0, 0, 0))

		hit, ok := sphere.Hit(ray)
		if !ok {
			t.Fatalf("radius %v: expected a hit", r)
		}
		if math.Abs(hit.T-r) > tolerance {
			t.Errorf("radius %v: expected hit distance %v, got %v", r, r, hit.T)
		}
		expectedPoint := core.NewVec3(0, 0, -r)
		if hit.Point.Subtract(expectedPoint).Length() > tolerance {
			t.Errorf("radius %v: expected hit point %v, got %v", r, expectedPoint, hit.Point)
		}
	}
}

func TestSphere_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)
	ray := core.NewRay(core.NewVec3(2, 0, -2), core.NewVec3(0, 0, 1))

	if _, ok := sphere.Hit(ray); ok {
		t.Error("Expected no hit for a ray passing beside the sphere")
	}
}

func TestSphere_NormalOpposesRay(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)

	// From outside: normal faces back toward the ray origin
	outside := core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, 1))
	hit, ok := sphere.Hit(outside)
	if !ok {
		t.Fatal("Expected a hit from outside")
	}
	if !hit.FrontFace || hit.Normal.Dot(outside.Direction) >= 0 {
		t.Errorf("Expected front-face normal opposing the ray, got %v", hit.Normal)
	}

	// From inside: the outward normal is flipped so it still opposes the ray
	inside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	hit, ok = sphere.Hit(inside)
	if !ok {
		t.Fatal("Expected a hit from inside")
	}
	if hit.FrontFace || hit.Normal.Dot(inside.Direction) >= 0 {
		t.Errorf("Expected flipped back-face normal opposing the ray, got %v", hit.Normal)
	}
}

func TestSphere_RespectsRayInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)

	// A shadow ray capped before the sphere must not report a hit
	capped := core.NewShadowRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -3))
	if _, ok := sphere.Hit(capped); ok {
		t.Error("Expected no hit beyond the ray's TMax")
	}

	// A secondary ray starting on the surface skips the near intersection
	secondary := core.NewSecondaryRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	hit, ok := sphere.Hit(secondary)
	if !ok {
		t.Fatal("Expected the far intersection to remain visible")
	}
	if math.Abs(hit.T-2) > 1e-6 {
		t.Errorf("Expected far hit at distance 2, got %v", hit.T)
	}
}

func TestSphere_SurfaceMapping(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1)

	// The north pole maps to v=0, the south pole to v=1
	_, v := sphere.SurfaceMapping(core.NewVec3(0, 1, 0))
	if math.Abs(v) > tolerance {
		t.Errorf("North pole: expected v=0, got %v", v)
	}
	_, v = sphere.SurfaceMapping(core.NewVec3(0, -1, 0))
	if math.Abs(v-1) > tolerance {
		t.Errorf("South pole: expected v=1, got %v", v)
	}

	// Equator points stay within [0,1] on both axes
	u, v := sphere.SurfaceMapping(core.NewVec3(1, 0, 0))
	if u < 0 || u > 1 || math.Abs(v-0.5) > tolerance {
		t.Errorf("Equator: expected u in [0,1] and v=0.5, got (%v, %v)", u, v)
	}
}
