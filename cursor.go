// cursor.go - the fixed 12x19 two-color cursor bitmap, composited last

package main

const (
	cursorWidth  = 12
	cursorHeight = 19
)

// cursorPixel classifies one cell of the bitmap.
type cursorPixel byte

const (
	cursorTransparent cursorPixel = iota
	cursorOutline
	cursorFill
)

// cursorBitmap is the classic arrow pointer: an outline ring with a solid
// fill, hotspot at the top-left pixel (0,0). Row-major, cursorHeight rows of
// cursorWidth cells.
var cursorBitmap = [cursorHeight][cursorWidth]cursorPixel{
	{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 1, 0, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 1, 0, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0, 0},
	{1, 2, 2, 2, 2, 2, 2, 2, 2, 1, 0, 0},
	{1, 2, 2, 2, 2, 2, 1, 1, 1, 1, 1, 0},
	{1, 2, 2, 1, 2, 2, 1, 0, 0, 0, 0, 0},
	{1, 2, 1, 0, 1, 2, 2, 1, 0, 0, 0, 0},
	{1, 1, 0, 0, 1, 2, 2, 1, 0, 0, 0, 0},
	{1, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 1, 2, 2, 1, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
}

const (
	cursorOutlineColor Color = 0xFF000000
	cursorFillColor    Color = 0xFFFFFFFF
)

// cursorRect returns the screen-space footprint of the cursor bitmap at
// pos, used to damage its old and new position on every move.
func cursorRect(pos Point) Rect {
	return NewRect(pos.X, pos.Y, cursorWidth, cursorHeight)
}

// paintCursor overlays the cursor bitmap at pos using opaque per-pixel
// writes: outline cells first, then fill cells, transparent cells skipped.
// This is always the last thing composited each frame (spec.md §4.G step 4).
func paintCursor(dst []Color, dstW, dstH int, pos Point) {
	for pass := cursorOutline; pass <= cursorFill; pass++ {
		color := cursorOutlineColor
		if pass == cursorFill {
			color = cursorFillColor
		}
		for y := 0; y < cursorHeight; y++ {
			for x := 0; x < cursorWidth; x++ {
				if cursorBitmap[y][x] != pass {
					continue
				}
				PutPixel(dst, dstW, dstH, pos.X+x, pos.Y+y, color)
			}
		}
	}
}
