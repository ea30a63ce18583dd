package renderer

import (
	"image"

	"github.com/vhiribarren/raytracer-go/pkg/core"
)

// FrameBuffer is the render target: a width*height RGBA pixel array stored
// row-major, top row first. It is the only mutable structure shared during a
// render; concurrent writers must touch disjoint pixels.
type FrameBuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFrameBuffer creates a frame buffer with every pixel set to opaque black
func NewFrameBuffer(width, height int) *FrameBuffer {
	pix := make([]uint8, width*height*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xff
	}
	return &FrameBuffer{width: width, height: height, pix: pix}
}

// Width returns the buffer width in pixels
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *FrameBuffer) Height() int { return fb.height }

// SetColor writes a color at (x, y), clamping channels to [0, 1] first
func (fb *FrameBuffer) SetColor(x, y int, color core.Color) {
	rgba := color.RGBA()
	offset := (y*fb.width + x) * 4
	fb.pix[offset] = rgba.R
	fb.pix[offset+1] = rgba.G
	fb.pix[offset+2] = rgba.B
	fb.pix[offset+3] = rgba.A
}

// Pix exposes the underlying RGBA byte slice for direct blitting. The layout
// matches image.RGBA and ebiten's WritePixels.
func (fb *FrameBuffer) Pix() []uint8 {
	return fb.pix
}

// Snapshot returns a copy of the current pixel data, safe to read while
// rendering continues into the buffer
func (fb *FrameBuffer) Snapshot() []uint8 {
	out := make([]uint8, len(fb.pix))
	copy(out, fb.pix)
	return out
}

// ToImage wraps the buffer in an image.RGBA sharing the same pixel data
func (fb *FrameBuffer) ToImage() *image.RGBA {
	return &image.RGBA{
		Pix:    fb.pix,
		Stride: fb.width * 4,
		Rect:   image.Rect(0, 0, fb.width, fb.height),
	}
}
