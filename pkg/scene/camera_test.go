package scene

import (
	"math"
	"testing"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

const cameraTolerance = 1e-9

func vecClose(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < cameraTolerance &&
		math.Abs(a.Y-b.Y) < cameraTolerance &&
		math.Abs(a.Z-b.Z) < cameraTolerance
}

func TestPerspectiveCameraCenterRay(t *testing.T) {
	cam := NewPerspectiveCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 16, 9, math.Pi/8)
	ray := cam.GenerateRay(0.5, 0.5)
	if !vecClose(ray.Direction, core.NewVec3(0, 0, 1)) {
		t.Errorf("center ray direction = %v, want +z", ray.Direction)
	}
	// The eye sits behind the screen at height/(2*tan(angle)).
	wantDistance := 9.0 / (2 * math.Tan(math.Pi/8))
	if got := ray.Origin.Distance(core.NewVec3(0, 0, 0)); math.Abs(got-wantDistance) > cameraTolerance {
		t.Errorf("eye distance = %v, want %v", got, wantDistance)
	}
	if ray.Origin.Z >= 0 {
		t.Errorf("eye Z = %v, want behind screen", ray.Origin.Z)
	}
}

func TestPerspectiveCameraCorners(t *testing.T) {
	cam := NewPerspectiveCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 2, 2, math.Pi/4)
	tests := []struct {
		name             string
		canvasX, canvasY float64
		screenPoint      core.Vec3
	}{
		{"top left", 0, 0, core.NewVec3(-1, 1, 0)},
		{"top right", 1, 0, core.NewVec3(1, 1, 0)},
		{"bottom left", 0, 1, core.NewVec3(-1, -1, 0)},
		{"bottom right", 1, 1, core.NewVec3(1, -1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := cam.GenerateRay(tt.canvasX, tt.canvasY)
			want := tt.screenPoint.Subtract(ray.Origin).Normalize()
			if !vecClose(ray.Direction, want) {
				t.Errorf("direction = %v, want through %v", ray.Direction, tt.screenPoint)
			}
		})
	}
}

func TestPerspectiveCameraRaysDiverge(t *testing.T) {
	cam := NewPerspectiveCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 16, 9, math.Pi/8)
	left := cam.GenerateRay(0, 0.5)
	right := cam.GenerateRay(1, 0.5)
	if !vecClose(left.Origin, right.Origin) {
		t.Errorf("perspective rays share an eye, got %v and %v", left.Origin, right.Origin)
	}
	if vecClose(left.Direction, right.Direction) {
		t.Error("perspective rays through distinct canvas points must diverge")
	}
}

func TestOrthogonalCameraRaysParallel(t *testing.T) {
	cam := NewOrthogonalCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 16, 9)
	a := cam.GenerateRay(0.1, 0.2)
	b := cam.GenerateRay(0.9, 0.8)
	if !vecClose(a.Direction, b.Direction) {
		t.Errorf("orthogonal rays must be parallel, got %v and %v", a.Direction, b.Direction)
	}
	if vecClose(a.Origin, b.Origin) {
		t.Error("orthogonal rays through distinct canvas points must have distinct origins")
	}
	if !vecClose(a.Direction, core.NewVec3(0, 0, 1)) {
		t.Errorf("direction = %v, want +z", a.Direction)
	}
}

func TestCameraSizeRatio(t *testing.T) {
	persp := NewPerspectiveCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 32, 18, math.Pi/8)
	if got := persp.SizeRatio(); math.Abs(got-32.0/18.0) > cameraTolerance {
		t.Errorf("perspective SizeRatio = %v, want %v", got, 32.0/18.0)
	}
	ortho := NewOrthogonalCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 10), 4, 2)
	if got := ortho.SizeRatio(); math.Abs(got-2.0) > cameraTolerance {
		t.Errorf("orthogonal SizeRatio = %v, want 2", got)
	}
}

func TestTiltedCameraLooksAtTarget(t *testing.T) {
	screenCenter := core.NewVec3(0, 10, -10)
	lookAt := core.NewVec3(0, 0, 30)
	cam := NewPerspectiveCamera(screenCenter, lookAt, 32, 18, math.Pi/8)
	ray := cam.GenerateRay(0.5, 0.5)
	want := lookAt.Subtract(screenCenter).Normalize()
	if !vecClose(ray.Direction, want) {
		t.Errorf("center ray direction = %v, want %v", ray.Direction, want)
	}
}
