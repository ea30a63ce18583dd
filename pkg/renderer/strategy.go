package renderer

import "math/rand"

// SampleOffset is a sample position inside a pixel, with Dx and Dy in [0, 1)
type SampleOffset struct {
	Dx float64
	Dy float64
}

// SamplingStrategy decides where inside each pixel the primary rays go
type SamplingStrategy interface {
	// PixelOffsets returns the sample positions for one pixel. Strategies
	// that do not jitter must ignore the rng so that renders without
	// randomness are reproducible byte for byte.
	PixelOffsets(rng *rand.Rand) []SampleOffset
	// SampleCount returns the number of rays traced per pixel
	SampleCount() int
}

// CenterSampling traces a single ray through the pixel center. Fully
// deterministic, no anti-aliasing.
type CenterSampling struct{}

// NewCenterSampling creates the one-ray-per-pixel strategy
func NewCenterSampling() *CenterSampling {
	return &CenterSampling{}
}

// PixelOffsets returns the pixel center
func (s *CenterSampling) PixelOffsets(_ *rand.Rand) []SampleOffset {
	return []SampleOffset{{Dx: 0.5, Dy: 0.5}}
}

// SampleCount returns 1
func (s *CenterSampling) SampleCount() int { return 1 }

// RandomSampling traces Samples jittered rays per pixel and averages them.
// Jitter positions come from the rng handed to PixelOffsets, so seeding the
// rng per pixel makes the whole render reproducible.
type RandomSampling struct {
	Samples int
}

// NewRandomSampling creates a jittered strategy with n samples per pixel
func NewRandomSampling(n int) *RandomSampling {
	return &RandomSampling{Samples: n}
}

// PixelOffsets returns Samples uniform positions inside the pixel
func (s *RandomSampling) PixelOffsets(rng *rand.Rand) []SampleOffset {
	offsets := make([]SampleOffset, s.Samples)
	for i := range offsets {
		offsets[i] = SampleOffset{Dx: rng.Float64(), Dy: rng.Float64()}
	}
	return offsets
}

// SampleCount returns the configured samples per pixel
func (s *RandomSampling) SampleCount() int { return s.Samples }
