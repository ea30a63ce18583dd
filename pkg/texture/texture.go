package texture

import (
	"math"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// Texture maps (u, v) surface coordinates to a base color
type Texture interface {
	ColorAt(u, v float64) core.Color
}

// PlainColor is a uniform texture
type PlainColor struct {
	Color core.Color
}

// NewPlainColor creates a uniform texture with the given color
func NewPlainColor(color core.Color) *PlainColor {
	return &PlainColor{Color: color}
}

// ColorAt returns the same color everywhere
func (t *PlainColor) ColorAt(_, _ float64) core.Color {
	return t.Color
}

// CheckerPattern alternates two colors over a grid of Count x Count cells.
// Cell selection is the parity of the floored cell coordinates, a pure
// function of the surface mapping; no image sampling is involved.
type CheckerPattern struct {
	Primary   core.Color
	Secondary core.Color
	Count     float64
}

// NewCheckerPattern creates a checker texture with the classic near-white and
// near-black defaults of a 10x10 grid
func NewCheckerPattern() *CheckerPattern {
	return &CheckerPattern{
		Primary:   core.NewColor(0.95, 0.95, 0.95),
		Secondary: core.NewColor(0.05, 0.05, 0.05),
		Count:     10,
	}
}

// ColorAt selects the cell color by parity of the floored coordinates
func (t *CheckerPattern) ColorAt(u, v float64) core.Color {
	selection := int(math.Floor(u*t.Count)+math.Floor(v*t.Count)) % 2
	if selection < 0 {
		selection += 2
	}
	if selection == 1 {
		return t.Secondary
	}
	return t.Primary
}
