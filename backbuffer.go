// backbuffer.go - off-screen RAM image composed each frame and presented

package main

import "unsafe"

// Backbuffer is a contiguous row-major ARGB pixel buffer the size of the
// screen. Present pushes it to a FramebufferOutput; Clear fills it in one
// linear pass.
type Backbuffer struct {
	Width, Height int
	pixels        []Color
}

// NewBackbuffer allocates a backbuffer of the given dimensions, initialized
// to opaque black.
func NewBackbuffer(width, height int) *Backbuffer {
	b := &Backbuffer{Width: width, Height: height, pixels: make([]Color, width*height)}
	b.Clear(ColorOpaqueBlack)
	return b
}

// Pixels returns the backing pixel slice in row-major order.
func (b *Backbuffer) Pixels() []Color {
	return b.pixels
}

// Clear fills the entire buffer with color.
func (b *Backbuffer) Clear(color Color) {
	for i := range b.pixels {
		b.pixels[i] = color
	}
}

// Resize reallocates the buffer for a new screen size, clearing it.
func (b *Backbuffer) Resize(width, height int) {
	b.Width, b.Height = width, height
	b.pixels = make([]Color, width*height)
	b.Clear(ColorOpaqueBlack)
}

// Bytes views the pixel buffer as a contiguous little-endian byte slice
// suitable for FramebufferOutput.Present, assuming platform stride equals
// width*4. This aliases the backing array; it does not copy.
func (b *Backbuffer) Bytes() []byte {
	if len(b.pixels) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.pixels[0])), len(b.pixels)*4)
}

// Present pushes the buffer's bytes to out.
func (b *Backbuffer) Present(out FramebufferOutput) error {
	return out.Present(b.Bytes())
}
