package renderer

import (
	"math/rand"
	"testing"
)

func TestCenterSamplingOffsets(t *testing.T) {
	strategy := NewCenterSampling()
	offsets := strategy.PixelOffsets(nil)
	if len(offsets) != 1 {
		t.Fatalf("center strategy returned %d offsets, want 1", len(offsets))
	}
	if offsets[0].Dx != 0.5 || offsets[0].Dy != 0.5 {
		t.Errorf("center offset = %v, want (0.5, 0.5)", offsets[0])
	}
	if strategy.SampleCount() != 1 {
		t.Errorf("SampleCount = %d, want 1", strategy.SampleCount())
	}
}

func TestRandomSamplingOffsets(t *testing.T) {
	strategy := NewRandomSampling(8)
	offsets := strategy.PixelOffsets(rand.New(rand.NewSource(1)))
	if len(offsets) != 8 {
		t.Fatalf("random strategy returned %d offsets, want 8", len(offsets))
	}
	for i, offset := range offsets {
		if offset.Dx < 0 || offset.Dx >= 1 || offset.Dy < 0 || offset.Dy >= 1 {
			t.Errorf("offset %d = %v, want inside [0, 1)", i, offset)
		}
	}
}

func TestRandomSamplingReproducible(t *testing.T) {
	strategy := NewRandomSampling(4)
	a := strategy.PixelOffsets(rand.New(rand.NewSource(99)))
	b := strategy.PixelOffsets(rand.New(rand.NewSource(99)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("offset %d differs under the same seed: %v vs %v", i, a[i], b[i])
		}
	}
}
