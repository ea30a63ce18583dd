package renderer

import "time"

// RenderStats contains statistics about a completed or cancelled render
type RenderStats struct {
	TotalPixels     int           // Number of pixels actually rendered
	PrimaryRays     int           // Primary rays traced (pixels * samples)
	SamplesPerPixel int           // Samples per pixel from the strategy
	Workers         int           // Worker goroutines used (1 for sequential)
	Duration        time.Duration // Wall-clock render time
}
