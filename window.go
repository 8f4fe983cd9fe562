// window.go - a live drawable owned by the compositor on behalf of one client

package main

// WindowID uniquely identifies a window. 0 is reserved as invalid.
type WindowID uint32

// WindowState is the coarse lifecycle state of a window.
type WindowState int

const (
	WindowNormal WindowState = iota
	WindowMinimized
	WindowMaximized
)

// WindowFlags are the bit flags a client may request at CREATE_WINDOW time.
type WindowFlags uint32

const (
	FlagTransparent WindowFlags = 1 << iota
	FlagHasShadow
	FlagBorderless
	FlagOverlay
	FlagBackground
)

// PixelMemory is the shared-memory-backed pixel view a window owns. It is
// satisfied by *SharedMemory (platform_shm.go); tests satisfy it with a
// plain slice-backed fake.
type PixelMemory interface {
	Pixels() []Color
	Close() error
}

// Window is a compositor-managed record binding a client, a pixel surface,
// a rect, a state and a layer.
type Window struct {
	ID    WindowID
	Pos   Point
	Size  Size
	shm   PixelMemory
	Layer LayerType
	State WindowState
	Flags WindowFlags
	Title string

	HasContent bool
	Opacity    uint8

	restoreRect *Rect

	// shmSize is the shm's pixel dimensions as allocated at create time.
	// It never changes for the life of the shm (§4.D: "width·height is
	// immutable while the shm exists"), even though Size itself changes
	// under maximize/restore. SourceSize reports this for blit clipping.
	shmSize Size
}

// NewWindow constructs a window record. shm must already be sized exactly
// size.Width*size.Height*4 bytes; the caller (CREATE_WINDOW handler) is
// responsible for that invariant.
func NewWindow(id WindowID, pos Point, size Size, shm PixelMemory, layer LayerType, title string) *Window {
	return &Window{
		ID:      id,
		Pos:     pos,
		Size:    size,
		shm:     shm,
		shmSize: size,
		Layer:   layer,
		State:   WindowNormal,
		Title:   title,
		Opacity: 255,
	}
}

// SourceSize returns the shm's immutable pixel dimensions, used as the
// source buffer bounds when blitting this window's content. It may differ
// from Size after Maximize, since maximize changes the window's screen
// footprint without reallocating its shm.
func (w *Window) SourceSize() Size {
	return w.shmSize
}

// Rect returns the window's current screen-space rectangle.
func (w *Window) Rect() Rect {
	return NewRect(w.Pos.X, w.Pos.Y, w.Size.Width, w.Size.Height)
}

// IsVisible reports whether the window should be composited: it must have
// received at least one commit and must not be minimized.
func (w *Window) IsVisible() bool {
	return w.HasContent && w.State != WindowMinimized
}

// IsTransparent reports whether the window must be alpha-blitted rather
// than opaque-blitted.
func (w *Window) IsTransparent() bool {
	return w.Flags&FlagTransparent != 0 || w.Opacity < 255
}

// HasDecorations reports whether the compositor should paint a titlebar
// and border for this window.
func (w *Window) HasDecorations() bool {
	return w.Flags&FlagBorderless == 0
}

// Pixels returns the window's shm pixel view, width*height words,
// row-major. The compositor reads this with no lock; the client may be
// writing concurrently. Tearing inside one window for one frame is
// accepted. Structural safety holds because the slice length never
// changes while the shm exists.
func (w *Window) Pixels() []Color {
	return w.shm.Pixels()
}

// Close releases the window's shared memory.
func (w *Window) Close() error {
	return w.shm.Close()
}

// MoveTo sets the window's absolute position.
func (w *Window) MoveTo(x, y int) {
	w.Pos = Point{X: x, Y: y}
}

// MoveBy translates the window's position by (dx, dy).
func (w *Window) MoveBy(dx, dy int) {
	w.Pos.X += dx
	w.Pos.Y += dy
}

// Resize sets the window's logical screen-space size. It does not touch the
// shm or shmSize; SourceSize keeps reporting the shm's original dimensions
// regardless of how Size changes.
func (w *Window) Resize(width, height int) {
	w.Size = Size{Width: width, Height: height}
}

// SetLayer assigns the window's layer tag. Moving it between the layer
// manager's lists is the caller's responsibility (RenderEngine.SetWindowLayer).
func (w *Window) SetLayer(l LayerType) {
	w.Layer = l
}

// SetHasContent latches the first-commit flag. Returns true on the 0->1
// transition, so callers can damage exactly once.
func (w *Window) SetHasContent() (justBecameVisible bool) {
	if w.HasContent {
		return false
	}
	w.HasContent = true
	return true
}

// Minimize snapshots the current rect into the restore rect, and marks the
// window minimized.
func (w *Window) Minimize() {
	r := w.Rect()
	w.restoreRect = &r
	w.State = WindowMinimized
}

// Restore reinstates the window's pre-minimize/maximize geometry if one was
// saved, and marks it Normal.
func (w *Window) Restore() {
	if w.restoreRect != nil {
		w.Pos = Point{X: w.restoreRect.X, Y: w.restoreRect.Y}
		w.Size = Size{Width: w.restoreRect.Width, Height: w.restoreRect.Height}
		w.restoreRect = nil
	}
	w.State = WindowNormal
}

// Maximize snapshots the current rect into the restore rect and grows the
// window to fill screen.
func (w *Window) Maximize(screen Size) {
	r := w.Rect()
	w.restoreRect = &r
	w.Pos = Point{X: 0, Y: 0}
	w.Size = screen
	w.State = WindowMaximized
}
