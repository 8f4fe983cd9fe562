package main

import "testing"

func TestHitTestDecorationBelowTitleBarIsNone(t *testing.T) {
	size := Size{200, 150}
	if got := hitTestDecoration(size, 50, titleBarHeight+1); got != decorationNone {
		t.Fatalf("a point below the titlebar must not hit any decoration, got %v", got)
	}
}

func TestHitTestDecorationCloseButton(t *testing.T) {
	size := Size{200, 150}
	r := CloseButtonRect(size)
	if got := hitTestDecoration(size, r.X+1, r.Y+1); got != decorationClose {
		t.Fatalf("a point inside the close button rect must hit decorationClose, got %v", got)
	}
}

func TestHitTestDecorationMinimizeButton(t *testing.T) {
	size := Size{200, 150}
	r := MinimizeButtonRect(size)
	if got := hitTestDecoration(size, r.X+1, r.Y+1); got != decorationMinimize {
		t.Fatalf("a point inside the minimize button rect must hit decorationMinimize, got %v", got)
	}
}

func TestHitTestDecorationTitleBarElsewhereIsDrag(t *testing.T) {
	size := Size{200, 150}
	if got := hitTestDecoration(size, 10, 5); got != decorationTitleBarDrag {
		t.Fatalf("a titlebar point outside both buttons must hit decorationTitleBarDrag, got %v", got)
	}
}

func TestDecorationButtonsDoNotOverlap(t *testing.T) {
	size := Size{200, 150}
	close := CloseButtonRect(size)
	minimize := MinimizeButtonRect(size)
	if close.Intersects(minimize) {
		t.Fatalf("close and minimize button rects must not overlap: close=%+v minimize=%+v", close, minimize)
	}
}

func TestDecorationButtonsStayWithinTitleBar(t *testing.T) {
	size := Size{200, 150}
	bar := TitleBarRect(size)
	for _, r := range []Rect{CloseButtonRect(size), MinimizeButtonRect(size)} {
		if !bar.Contains(r) {
			t.Fatalf("button rect %+v must be fully contained within the titlebar %+v", r, bar)
		}
	}
}

func TestPaintDecorationsDoesNotPanicOnSmallWindow(t *testing.T) {
	shm := newFakeShm(10, 10)
	win := NewWindow(1, Point{0, 0}, Size{10, 10}, shm, LayerNormal, "tiny")
	dst := make([]Color, 10*10)
	PaintDecorations(dst, 10, 10, win) // must not panic even when the window is smaller than the button row
}

func TestPaintDecorationsRendersTitleText(t *testing.T) {
	shm := newFakeShm(200, 100)
	win := NewWindow(1, Point{0, 0}, Size{200, 100}, shm, LayerNormal, "Editor")
	dst := make([]Color, 200*100)
	PaintDecorations(dst, 200, 100, win)

	painted := false
	// Start below the 1px top border so only title text can differ here.
	for y := borderWidth; y < titleBarHeight; y++ {
		for x := titleTextLeftPad; x < 80; x++ {
			if dst[y*200+x] != colorTitleBar {
				painted = true
			}
		}
	}
	if !painted {
		t.Fatalf("expected the title text to paint at least one pixel different from the titlebar background")
	}
}
