package core

import "image/color"

// Color represents an RGB color with float64 channels. Channels are free to
// exceed 1.0 while light contributions accumulate; they are clamped once when
// converted for the 8-bit output buffer.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{scalar * c.R, scalar * c.G, scalar * c.B}
}

// MultiplyColor returns the channel-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns the color with every channel clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
	}
}

// RGBA converts the color to an 8-bit RGBA value, clamping channels first
func (c Color) RGBA() color.RGBA {
	clamped := c.Clamp()
	return color.RGBA{
		R: uint8(255 * clamped.R),
		G: uint8(255 * clamped.G),
		B: uint8(255 * clamped.B),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
