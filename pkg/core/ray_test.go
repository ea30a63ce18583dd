package core

import (
	"math"
	"testing"
)

func TestRay_DirectionIsNormalized(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(10, 10, 10))
	if got := ray.Direction.Length(); math.Abs(got-1.0) > tolerance {
		t.Errorf("Expected unit direction, got length %v", got)
	}

	ray = NewRayFromTo(NewVec3(1, 1, 1), NewVec3(5, 5, 5))
	if got := ray.Direction.Length(); math.Abs(got-1.0) > tolerance {
		t.Errorf("Expected unit direction, got length %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 0, 2))
	if got := ray.At(3); !vecEquals(got, NewVec3(1, 0, 3)) {
		t.Errorf("Expected (1,0,3), got %v", got)
	}
}

func TestRay_Intervals(t *testing.T) {
	primary := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	if primary.TMin != 0 || !math.IsInf(primary.TMax, 1) {
		t.Errorf("Primary ray interval should be [0, +Inf), got [%v, %v]", primary.TMin, primary.TMax)
	}

	secondary := NewSecondaryRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1))
	if secondary.TMin != HitEpsilon {
		t.Errorf("Secondary ray TMin should be HitEpsilon, got %v", secondary.TMin)
	}
	if secondary.Contains(HitEpsilon / 2) {
		t.Error("Secondary ray should reject hits closer than HitEpsilon")
	}

	shadow := NewShadowRay(NewVec3(0, 0, 0), NewVec3(0, 0, 5))
	if math.Abs(shadow.TMax-5) > tolerance {
		t.Errorf("Shadow ray should be capped at the light distance, got TMax %v", shadow.TMax)
	}
	if shadow.Contains(6) {
		t.Error("Shadow ray should reject hits beyond the light")
	}
}

func TestColor_Clamp(t *testing.T) {
	c := NewColor(1.5, -0.2, 0.5)
	clamped := c.Clamp()
	if clamped.R != 1 || clamped.G != 0 || clamped.B != 0.5 {
		t.Errorf("Expected (1, 0, 0.5), got %v", clamped)
	}
}

func TestColor_RGBA(t *testing.T) {
	rgba := NewColor(1, 0.5, 2.0).RGBA()
	if rgba.R != 255 || rgba.B != 255 || rgba.A != 255 {
		t.Errorf("Expected saturated R/B and opaque alpha, got %v", rgba)
	}
	half := 0.5
	if rgba.G != uint8(255*half) {
		t.Errorf("Expected G=%d, got %d", uint8(255*half), rgba.G)
	}
}

func TestColor_Operations(t *testing.T) {
	a := NewColor(0.2, 0.4, 0.6)
	b := NewColor(0.1, 0.1, 0.1)

	sum := a.Add(b)
	if math.Abs(sum.R-0.3) > tolerance || math.Abs(sum.G-0.5) > tolerance || math.Abs(sum.B-0.7) > tolerance {
		t.Errorf("Add: got %v", sum)
	}

	prod := a.MultiplyColor(NewColor(0.5, 0.5, 0.5))
	if math.Abs(prod.R-0.1) > tolerance || math.Abs(prod.G-0.2) > tolerance || math.Abs(prod.B-0.3) > tolerance {
		t.Errorf("MultiplyColor: got %v", prod)
	}
}
