package scene

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// Camera generates primary rays for canvas coordinates in [0, 1]. Cameras
// are built once from scene configuration and are read-only while rendering.
type Camera interface {
	// GenerateRay produces the primary ray through canvas point (x, y),
	// where (0, 0) is the top-left corner and (1, 1) the bottom-right
	GenerateRay(canvasX, canvasY float64) core.Ray
	// SizeRatio returns the width/height ratio of the camera screen
	SizeRatio() float64
}

// PerspectiveCamera projects rays from a single eye point through a screen
// rectangle in world space
type PerspectiveCamera struct {
	eye          core.Vec3
	screenCenter core.Vec3
	width        float64
	height       float64
	axisX        core.Vec3
	axisY        core.Vec3
}

// NewPerspectiveCamera creates a perspective camera. The screen rectangle of
// size width x height sits at screenCenter facing lookAt; the eye sits behind
// the screen at the distance implied by the vertical field-of-view angle
// (radians).
func NewPerspectiveCamera(screenCenter, lookAt core.Vec3, width, height, angle float64) *PerspectiveCamera {
	eyeDirection := lookAt.Subtract(screenCenter).Normalize()
	rot := core.RotationBetween(core.NewVec3(0, 0, 1), eyeDirection)
	eyeDistance := height / (2 * math.Tan(angle))
	eye := screenCenter.Subtract(eyeDirection.Multiply(eyeDistance))
	axisY := rot.MultiplyVec3(core.NewVec3(0, 1, 0)).Normalize()
	axisZ := screenCenter.Subtract(eye).Normalize()
	axisX := axisY.Cross(axisZ)
	return &PerspectiveCamera{
		eye:          eye,
		screenCenter: screenCenter,
		width:        width,
		height:       height,
		axisX:        axisX,
		axisY:        axisY,
	}
}

// GenerateRay emits a ray from the eye through the canvas point on the screen
func (c *PerspectiveCamera) GenerateRay(canvasX, canvasY float64) core.Ray {
	destination := c.screenCenter.
		Subtract(c.axisX.Multiply(c.width / 2)).
		Add(c.axisY.Multiply(c.height / 2)).
		Add(c.axisX.Multiply(canvasX * c.width)).
		Subtract(c.axisY.Multiply(canvasY * c.height))
	return core.NewRayFromTo(c.eye, destination)
}

// SizeRatio returns the screen's width/height ratio
func (c *PerspectiveCamera) SizeRatio() float64 {
	return c.width / c.height
}

// OrthogonalCamera emits parallel rays perpendicular to its screen
type OrthogonalCamera struct {
	screenCenter core.Vec3
	width        float64
	height       float64
	axisX        core.Vec3
	axisY        core.Vec3
	axisZ        core.Vec3
}

// NewOrthogonalCamera creates an orthogonal camera whose screen of size
// width x height sits at eye facing lookAt
func NewOrthogonalCamera(eye, lookAt core.Vec3, width, height float64) *OrthogonalCamera {
	axisZ := lookAt.Subtract(eye).Normalize()
	rot := core.RotationBetween(core.NewVec3(0, 0, 1), axisZ)
	axisY := rot.MultiplyVec3(core.NewVec3(0, 1, 0))
	axisX := axisY.Cross(axisZ)
	return &OrthogonalCamera{
		screenCenter: eye,
		width:        width,
		height:       height,
		axisX:        axisX,
		axisY:        axisY,
		axisZ:        axisZ,
	}
}

// GenerateRay emits a ray from the canvas point, parallel to the view axis
func (c *OrthogonalCamera) GenerateRay(canvasX, canvasY float64) core.Ray {
	source := c.screenCenter.
		Subtract(c.axisX.Multiply(c.width / 2)).
		Add(c.axisY.Multiply(c.height / 2)).
		Add(c.axisX.Multiply(canvasX * c.width)).
		Subtract(c.axisY.Multiply(canvasY * c.height))
	return core.NewRay(source, c.axisZ)
}

// SizeRatio returns the screen's width/height ratio
func (c *OrthogonalCamera) SizeRatio() float64 {
	return c.width / c.height
}
