package main

import "testing"

func makeBuf(w, h int, c Color) []Color {
	buf := make([]Color, w*h)
	for i := range buf {
		buf[i] = c
	}
	return buf
}

func TestBlitOpaqueIdentity(t *testing.T) {
	const w, h = 4, 4
	buf := make([]Color, w*h)
	for i := range buf {
		buf[i] = Color(i + 1)
	}
	cpy := make([]Color, len(buf))
	copy(cpy, buf)
	BlitOpaque(buf, w, h, cpy, w, h, NewRect(0, 0, w, h), Point{0, 0})
	for i := range buf {
		if buf[i] != cpy[i] {
			t.Fatalf("identity blit changed pixel %d: got %v want %v", i, buf[i], cpy[i])
		}
	}
}

func TestBlitOpaqueClipsPartialSource(t *testing.T) {
	const sw, sh = 4, 4
	src := makeBuf(sw, sh, Color(0xFFFFFFFF))
	const dw, dh = 4, 4
	dst := makeBuf(dw, dh, Color(0xFF000000))

	// source rect partly outside the source bounds
	BlitOpaque(dst, dw, dh, src, sw, sh, NewRect(2, 2, 10, 10), Point{0, 0})

	// only a 2x2 region should have copied
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			want := Color(0xFF000000)
			if x < 2 && y < 2 {
				want = 0xFFFFFFFF
			}
			if got := dst[y*dw+x]; got != want {
				t.Fatalf("at (%d,%d) got %08x want %08x", x, y, uint32(got), uint32(want))
			}
		}
	}
}

func TestBlitOpaqueOffscreenIsNoop(t *testing.T) {
	src := makeBuf(2, 2, 0xFFFFFFFF)
	dst := makeBuf(4, 4, 0xFF000000)
	orig := make([]Color, len(dst))
	copy(orig, dst)
	BlitOpaque(dst, 4, 4, src, 2, 2, NewRect(0, 0, 2, 2), Point{100, 100})
	for i := range dst {
		if dst[i] != orig[i] {
			t.Fatalf("offscreen blit must be a no-op")
		}
	}
}

func TestBlitAlphaZeroSkipped(t *testing.T) {
	src := makeBuf(1, 1, RGBA(0, 10, 10, 10))
	dst := makeBuf(1, 1, RGBA(0xFF, 1, 2, 3))
	orig := dst[0]
	BlitAlpha(dst, 1, 1, src, 1, 1, NewRect(0, 0, 1, 1), Point{0, 0})
	if dst[0] != orig {
		t.Fatalf("zero-alpha source must not modify dst")
	}
}

func TestBlitAlphaFullReplacesDst(t *testing.T) {
	src := makeBuf(1, 1, RGBA(0xFF, 200, 200, 200))
	dst := makeBuf(1, 1, RGBA(0xFF, 1, 2, 3))
	BlitAlpha(dst, 1, 1, src, 1, 1, NewRect(0, 0, 1, 1), Point{0, 0})
	if dst[0] != src[0] {
		t.Fatalf("full-alpha source must replace dst")
	}
}

func TestFillAndStroke(t *testing.T) {
	const w, h = 10, 10
	dst := makeBuf(w, h, ColorOpaqueBlack)
	Fill(dst, w, h, NewRect(2, 2, 4, 4), RGBA(0xFF, 10, 10, 10))
	Stroke(dst, w, h, NewRect(2, 2, 4, 4), 1, RGBA(0xFF, 20, 20, 20))

	if dst[2*w+2] != RGBA(0xFF, 20, 20, 20) {
		t.Fatalf("corner should be stroked")
	}
	if dst[3*w+3] != RGBA(0xFF, 10, 10, 10) {
		t.Fatalf("interior should be filled, not stroked")
	}
}

func TestScaledBlitDoublesDimensions(t *testing.T) {
	src := []Color{
		RGBA(0xFF, 1, 0, 0), RGBA(0xFF, 2, 0, 0),
		RGBA(0xFF, 3, 0, 0), RGBA(0xFF, 4, 0, 0),
	}
	dst := make([]Color, 16)
	ScaledBlit(dst, 4, 4, src, 2, 2, NewRect(0, 0, 2, 2), NewRect(0, 0, 4, 4))
	if dst[0] != src[0] {
		t.Fatalf("top-left of scaled output should sample top-left of source")
	}
	if dst[3*4+3] != src[3] {
		t.Fatalf("bottom-right of scaled output should sample bottom-right of source, got %08x", uint32(dst[15]))
	}
}

func TestPutPixelOutOfBoundsNoop(t *testing.T) {
	dst := makeBuf(2, 2, 0)
	PutPixel(dst, 2, 2, -1, -1, 0xFFFFFFFF)
	PutPixel(dst, 2, 2, 2, 2, 0xFFFFFFFF)
	for _, p := range dst {
		if p != 0 {
			t.Fatalf("out of bounds PutPixel must not write")
		}
	}
}
