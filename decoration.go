// decoration.go - titlebar, border and button chrome painted over a window

package main

import (
	"image"
	stdcolor "image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Decoration geometry constants, all in window-local coordinates. These are
// shared verbatim between the render pipeline (painting) and the input
// dispatcher (hit-testing) so the two can never disagree about where a
// button sits — the single Open Question spec.md §9 flags about "who owns
// the top 24px" is resolved here: the compositor owns this strip, and
// client pixels still fill the window's full shm underneath it.
const (
	titleBarHeight = 24
	borderWidth    = 1
	buttonSize     = 20
	buttonTopInset = 2
	buttonRightGap = 2
	buttonInnerGap = 4

	titleTextLeftPad  = 6
	titleTextBaseline = 16
)

// TitleBarRect returns the titlebar strip in window-local coordinates.
func TitleBarRect(size Size) Rect {
	return NewRect(0, 0, size.Width, titleBarHeight)
}

// CloseButtonRect returns the close button's hit/paint rect, window-local.
func CloseButtonRect(size Size) Rect {
	right := size.Width - buttonRightGap
	return NewRect(right-buttonSize, buttonTopInset, buttonSize, buttonSize)
}

// MinimizeButtonRect returns the minimize button's hit/paint rect,
// window-local, sitting immediately left of the close button.
func MinimizeButtonRect(size Size) Rect {
	c := CloseButtonRect(size)
	return NewRect(c.X-buttonInnerGap-buttonSize, buttonTopInset, buttonSize, buttonSize)
}

const (
	colorTitleBar     Color = 0xFF3A3F4B
	colorTitleBarText Color = 0xFFE0E0E0
	colorBorder       Color = 0xFF1C1E24
	colorCloseButton  Color = 0xFFC0392B
	colorMinimizeBtn  Color = 0xFF4A5568
)

// PaintDecorations draws the titlebar, 1px border and the close/minimize
// buttons for win directly into dst at win's screen position. Callers must
// only invoke this for windows where win.HasDecorations() is true and whose
// layer is not Background; those two checks are the caller's (render
// engine's) responsibility, not this function's.
func PaintDecorations(dst []Color, dstW, dstH int, win *Window) {
	rect := win.Rect()
	size := win.Size

	title := TitleBarRect(size).Offset(rect.X, rect.Y)
	Fill(dst, dstW, dstH, title, colorTitleBar)

	Stroke(dst, dstW, dstH, rect, borderWidth, colorBorder)

	closeR := CloseButtonRect(size).Offset(rect.X, rect.Y)
	Fill(dst, dstW, dstH, closeR, colorCloseButton)

	minR := MinimizeButtonRect(size).Offset(rect.X, rect.Y)
	Fill(dst, dstW, dstH, minR, colorMinimizeBtn)

	if win.Title != "" {
		renderTitleText(dst, dstW, dstH, title, win.Title)
	}
}

// renderTitleText draws win's title into the titlebar strip using a fixed
// bitmap font, clipped to the space left of the minimize button. Glyphs are
// rasterized into a scratch RGBA image (basicfont has no direct Color
// renderer) and composited pixel-by-pixel onto dst, skipping fully
// transparent background pixels the glyph mask didn't touch.
func renderTitleText(dst []Color, dstW, dstH int, titleBar Rect, text string) {
	maxX := MinimizeButtonRect(Size{Width: titleBar.Width, Height: titleBar.Height}).X - titleTextLeftPad
	if maxX <= titleTextLeftPad {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, titleBar.Width, titleBar.Height))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(stdcolor.RGBA{R: colorTitleBarText.R(), G: colorTitleBarText.G(), B: colorTitleBarText.B(), A: colorTitleBarText.A()}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(titleTextLeftPad), Y: fixed.I(titleTextBaseline)},
	}
	drawer.DrawString(text)

	for y := 0; y < titleBar.Height; y++ {
		for x := titleTextLeftPad; x < maxX && x < titleBar.Width; x++ {
			p := img.RGBAAt(x, y)
			if p.A == 0 {
				continue
			}
			BlendPixel(dst, dstW, dstH, titleBar.X+x, titleBar.Y+y, RGBA(p.A, p.R, p.G, p.B))
		}
	}
}

// decorationTarget is what hitTestDecoration reports for a window-local
// point. hitTestDecoration returns decorationNone for every point outside
// the titlebar strip; points below it are ordinary client content and are
// not its concern.
type decorationTarget int

const (
	decorationNone decorationTarget = iota
	decorationClose
	decorationMinimize
	decorationTitleBarDrag
)

func hitTestDecoration(size Size, localX, localY int) decorationTarget {
	if !TitleBarRect(size).ContainsPoint(localX, localY) {
		return decorationNone
	}
	if CloseButtonRect(size).ContainsPoint(localX, localY) {
		return decorationClose
	}
	if MinimizeButtonRect(size).ContainsPoint(localX, localY) {
		return decorationMinimize
	}
	return decorationTitleBarDrag
}
