// blit.go - clipped pixel-level copy operations shared by the render engine
//
// Every entry point clips both source and destination to their buffer
// bounds before touching memory; out-of-bounds rects are not rejected,
// they are shrunk to their in-bounds intersection (a fully out-of-bounds
// rect degenerates to a no-op). None of these allocate.

package main

import "sync"

// stripHeight bounds per-goroutine work for the parallel blit path, mirroring
// the teacher's own strip-parallel frame blend.
const stripHeight = 60

// clipBlit reduces a blit's source rect, source origin and destination point
// to the region that is actually in-bounds on both buffers. It returns
// ok=false if nothing survives clipping.
func clipBlit(dstW, dstH, srcW, srcH int, srcRect Rect, dstPt Point) (Rect, Point, bool) {
	sr, ok := srcRect.ClipToScreen(srcW, srcH)
	if !ok || sr.IsEmpty() {
		return Rect{}, Point{}, false
	}

	// Shift the destination point by however much the source rect moved
	// during clipping, so the two stay aligned.
	dstPt.X += sr.X - srcRect.X
	dstPt.Y += sr.Y - srcRect.Y

	dr := NewRect(dstPt.X, dstPt.Y, sr.Width, sr.Height)
	dr2, ok := dr.ClipToScreen(dstW, dstH)
	if !ok || dr2.IsEmpty() {
		return Rect{}, Point{}, false
	}

	// Shrink the source rect by whatever the destination clip removed.
	sr.X += dr2.X - dr.X
	sr.Y += dr2.Y - dr.Y
	sr.Width = dr2.Width
	sr.Height = dr2.Height

	return sr, Point{X: dr2.X, Y: dr2.Y}, true
}

// BlitOpaque copies srcRect from src onto dst at dstPt with a linear row
// copy per scanline; no blending, no allocation.
func BlitOpaque(dst []Color, dstW, dstH int, src []Color, srcW, srcH int, srcRect Rect, dstPt Point) {
	sr, dp, ok := clipBlit(dstW, dstH, srcW, srcH, srcRect, dstPt)
	if !ok {
		return
	}
	for row := 0; row < sr.Height; row++ {
		srcOff := (sr.Y+row)*srcW + sr.X
		dstOff := (dp.Y+row)*dstW + dp.X
		copy(dst[dstOff:dstOff+sr.Width], src[srcOff:srcOff+sr.Width])
	}
}

// BlitAlpha composites srcRect over dst at dstPt using source-over alpha
// blending, per the per-pixel rule in Blend.
func BlitAlpha(dst []Color, dstW, dstH int, src []Color, srcW, srcH int, srcRect Rect, dstPt Point) {
	sr, dp, ok := clipBlit(dstW, dstH, srcW, srcH, srcRect, dstPt)
	if !ok {
		return
	}
	blitAlphaStrip(dst, dstW, src, srcW, sr, dp, 0, sr.Height)
}

// BlitAlphaParallel is BlitAlpha split across goroutines by horizontal strip,
// useful for full-screen composites where the per-row work is large enough
// to amortize goroutine overhead. Grounded on the teacher's per-strip
// sync.WaitGroup fan-out for frame blending.
func BlitAlphaParallel(dst []Color, dstW, dstH int, src []Color, srcW, srcH int, srcRect Rect, dstPt Point) {
	sr, dp, ok := clipBlit(dstW, dstH, srcW, srcH, srcRect, dstPt)
	if !ok {
		return
	}
	if sr.Height <= stripHeight {
		blitAlphaStrip(dst, dstW, src, srcW, sr, dp, 0, sr.Height)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < sr.Height; start += stripHeight {
		end := min(start+stripHeight, sr.Height)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			blitAlphaStrip(dst, dstW, src, srcW, sr, dp, start, end)
		}(start, end)
	}
	wg.Wait()
}

func blitAlphaStrip(dst []Color, dstW int, src []Color, srcW int, sr Rect, dp Point, rowStart, rowEnd int) {
	for row := rowStart; row < rowEnd; row++ {
		srcOff := (sr.Y+row)*srcW + sr.X
		dstOff := (dp.Y+row)*dstW + dp.X
		for x := 0; x < sr.Width; x++ {
			sp := src[srcOff+x]
			if sp.A() == 0 {
				continue
			}
			dst[dstOff+x] = Blend(dst[dstOff+x], sp)
		}
	}
}

// Fill paints rect solidly with color, clipped to the destination bounds.
func Fill(dst []Color, dstW, dstH int, rect Rect, color Color) {
	r, ok := rect.ClipToScreen(dstW, dstH)
	if !ok {
		return
	}
	for row := 0; row < r.Height; row++ {
		off := (r.Y+row)*dstW + r.X
		line := dst[off : off+r.Width]
		for i := range line {
			line[i] = color
		}
	}
}

// Stroke paints an n-pixel border around rect's edge using four Fill calls.
func Stroke(dst []Color, dstW, dstH int, rect Rect, n int, color Color) {
	if n <= 0 || rect.IsEmpty() {
		return
	}
	Fill(dst, dstW, dstH, NewRect(rect.X, rect.Y, rect.Width, n), color)
	Fill(dst, dstW, dstH, NewRect(rect.X, rect.Bottom()-n, rect.Width, n), color)
	Fill(dst, dstW, dstH, NewRect(rect.X, rect.Y, n, rect.Height), color)
	Fill(dst, dstW, dstH, NewRect(rect.Right()-n, rect.Y, n, rect.Height), color)
}

// Shadow alpha-blits a solid color rect, used for the drop shadow cast by
// windows with HasShadow set.
func Shadow(dst []Color, dstW, dstH int, rect Rect, color Color) {
	r, ok := rect.ClipToScreen(dstW, dstH)
	if !ok {
		return
	}
	for row := 0; row < r.Height; row++ {
		off := (r.Y+row)*dstW + r.X
		line := dst[off : off+r.Width]
		for i := range line {
			line[i] = Blend(line[i], color)
		}
	}
}

// GradientVertical fills rect with a top-to-bottom linear interpolation
// between top and bottom.
func GradientVertical(dst []Color, dstW, dstH int, rect Rect, top, bottom Color) {
	r, ok := rect.ClipToScreen(dstW, dstH)
	if !ok {
		return
	}
	for row := 0; row < r.Height; row++ {
		srcY := r.Y + row - rect.Y
		var t8 uint8
		if rect.Height > 1 {
			t8 = uint8(srcY * 255 / (rect.Height - 1))
		}
		c := Lerp(top, bottom, t8)
		off := (r.Y+row)*dstW + r.X
		line := dst[off : off+r.Width]
		for i := range line {
			line[i] = c
		}
	}
}

// ScaledBlit nearest-neighbor scales srcRect into dstRect. Sampling follows
// src = srcRect.origin + floor(dstOffset * srcRect.dim / dstRect.dim).
func ScaledBlit(dst []Color, dstW, dstH int, src []Color, srcW, srcH int, srcRect, dstRect Rect) {
	sr, ok := srcRect.ClipToScreen(srcW, srcH)
	if !ok || sr.IsEmpty() || dstRect.IsEmpty() {
		return
	}
	dr, ok := dstRect.ClipToScreen(dstW, dstH)
	if !ok || dr.IsEmpty() {
		return
	}
	for dy := 0; dy < dr.Height; dy++ {
		dstOffsetY := dr.Y + dy - dstRect.Y
		sy := sr.Y + dstOffsetY*sr.Height/dstRect.Height
		if sy >= sr.Bottom() {
			sy = sr.Bottom() - 1
		}
		dstOff := (dr.Y+dy)*dstW + dr.X
		srcRow := sy * srcW
		for dx := 0; dx < dr.Width; dx++ {
			dstOffsetX := dr.X + dx - dstRect.X
			sx := sr.X + dstOffsetX*sr.Width/dstRect.Width
			if sx >= sr.Right() {
				sx = sr.Right() - 1
			}
			dst[dstOff+dx] = src[srcRow+sx]
		}
	}
}

// PutPixel writes a single opaque pixel, skipping out-of-bounds coordinates.
func PutPixel(dst []Color, dstW, dstH, x, y int, color Color) {
	if x < 0 || y < 0 || x >= dstW || y >= dstH {
		return
	}
	dst[y*dstW+x] = color
}

// BlendPixel alpha-composites a single pixel, skipping out-of-bounds and
// fully-transparent writes.
func BlendPixel(dst []Color, dstW, dstH, x, y int, color Color) {
	if x < 0 || y < 0 || x >= dstW || y >= dstH || color.A() == 0 {
		return
	}
	off := y*dstW + x
	dst[off] = Blend(dst[off], color)
}
