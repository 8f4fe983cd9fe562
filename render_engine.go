// render_engine.go - scene owner and the per-frame composition pipeline
//
// Grounded on video_compositor.go's VideoCompositor: a single owner holding
// the backbuffer plus every live source, running one refresh per tick. The
// sources here are windows across seven fixed layers instead of N
// independent video chips, and there is exactly one owner (no per-source
// goroutine racing), so the scanline-aware / CompositorManageable machinery
// the teacher needed for copper effects has no counterpart.

package main

import "fmt"

// shadowOffset and shadowExpand are the drop-shadow parameters
// for HasShadow windows (spec.md §4.G step 3).
const (
	shadowOffset = 4
	shadowExpand = 8
)

// RenderEngine owns the backbuffer, every window, the layer stacking order,
// the damage set, the cursor and the current focus. It is the single scene
// graph the rest of the compositor mutates.
type RenderEngine struct {
	Display DisplayConfig

	backbuffer *Backbuffer
	layers     *LayerManager
	damage     *DamageTracker
	windows    map[WindowID]*Window

	nextID WindowID
	frame  uint64

	focus WindowID // 0 means no focus

	cursor        Point
	cursorVisible bool
}

// NewRenderEngine constructs an empty scene sized to display.
func NewRenderEngine(display DisplayConfig) *RenderEngine {
	return &RenderEngine{
		Display:       display,
		backbuffer:    NewBackbuffer(display.Width, display.Height),
		layers:        NewLayerManager(),
		damage:        NewDamageTracker(display.Width, display.Height),
		windows:       make(map[WindowID]*Window),
		cursor:        Point{X: 100, Y: 100},
		cursorVisible: true,
	}
}

// CreateWindow allocates a new id, inserts win into the engine and its
// layer, and damages its rect. size must be nonzero in both dimensions;
// the shm itself is already sized by the caller (CREATE_WINDOW handler).
func (e *RenderEngine) CreateWindow(size Size, shm PixelMemory, layer LayerType, title string) (WindowID, error) {
	if size.Width <= 0 || size.Height <= 0 {
		return 0, newErr(Resource, "create_window", "zero-sized window", nil)
	}
	e.nextID++
	id := e.nextID
	w := NewWindow(id, Point{}, size, shm, layer, title)
	e.windows[id] = w
	e.layers.AddWindow(layer, id)
	e.damage.Add(w.Rect())
	return id, nil
}

// DestroyWindow damages the window's rect, removes it from its layer and
// from the scene, and clears focus if it was focused. Unknown ids are a
// silent no-op (spec.md §7 NotFound).
func (e *RenderEngine) DestroyWindow(id WindowID) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	e.damage.Add(w.Rect())
	e.layers.RemoveWindow(id)
	delete(e.windows, id)
	if e.focus == id {
		e.focus = 0
	}
}

// Window looks up a window by id.
func (e *RenderEngine) Window(id WindowID) (*Window, bool) {
	w, ok := e.windows[id]
	return w, ok
}

// MoveWindow damages the window's old and new rects and updates its
// position. No-op for an unknown id.
func (e *RenderEngine) MoveWindow(id WindowID, x, y int) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	e.damage.Add(w.Rect())
	w.MoveTo(x, y)
	e.damage.Add(w.Rect())
}

// BringToFront raises id within its own layer and damages its rect.
func (e *RenderEngine) BringToFront(id WindowID) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	e.layers.BringToFront(w.Layer, id)
	e.damage.Add(w.Rect())
}

// SetWindowLayer moves id from its current layer to newLayer and damages
// its rect.
func (e *RenderEngine) SetWindowLayer(id WindowID, newLayer LayerType) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	e.layers.MoveWindow(id, w.Layer, newLayer)
	w.SetLayer(newLayer)
	e.damage.Add(w.Rect())
}

// MarkWindowHasContent latches the first-commit flag and damages the rect
// only on the 0->1 transition (spec.md §4.G).
func (e *RenderEngine) MarkWindowHasContent(id WindowID) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	if w.SetHasContent() {
		e.damage.Add(w.Rect())
	}
}

// MarkDamage damages id's current rect. No-op for an unknown id.
func (e *RenderEngine) MarkDamage(id WindowID) {
	w, ok := e.windows[id]
	if !ok {
		return
	}
	e.damage.Add(w.Rect())
}

// FullScreenDamage forces a full repaint next frame.
func (e *RenderEngine) FullScreenDamage() {
	e.damage.Full()
}

// WindowAtPoint returns the topmost visible window whose rect contains
// (x, y), iterating Cursor->Lock->Overlay->Panel->Top->Normal->Background.
// Background-layer windows are eligible.
func (e *RenderEngine) WindowAtPoint(x, y int) (WindowID, bool) {
	for _, id := range e.layers.TopToBottom() {
		w := e.windows[id]
		if w == nil {
			continue
		}
		if w.IsVisible() && w.Rect().ContainsPoint(x, y) {
			return id, true
		}
	}
	return 0, false
}

// Focus returns the currently focused window id, or (0, false).
func (e *RenderEngine) Focus() (WindowID, bool) {
	if e.focus == 0 {
		return 0, false
	}
	return e.focus, true
}

// SetFocus changes focus, damaging both the old and new focused rects if
// the value actually changed. Passing 0 clears focus.
func (e *RenderEngine) SetFocus(id WindowID) {
	if e.focus == id {
		return
	}
	if old, ok := e.windows[e.focus]; ok {
		e.damage.Add(old.Rect())
	}
	e.focus = id
	if w, ok := e.windows[id]; ok {
		e.damage.Add(w.Rect())
	}
}

// SetCursor updates the cursor's screen position, damaging both the old
// and new cursor rects when it actually moves. Render calls this every
// tick regardless of whether the pointer moved, so without the no-op
// guard a stationary cursor would damage (and so repaint) every frame;
// with it, a moving cursor still reaches the screen even though it's the
// only thing that changed (the cursor overlay is otherwise invisible to
// the damage set, spec.md §4.G step 4).
func (e *RenderEngine) SetCursor(x, y int) {
	next := Point{X: x, Y: y}
	if next == e.cursor {
		return
	}
	e.damage.Add(cursorRect(e.cursor))
	e.cursor = next
	e.damage.Add(cursorRect(next))
}

// ScreenSize returns the current screen dimensions.
func (e *RenderEngine) ScreenSize() Size {
	return Size{Width: e.backbuffer.Width, Height: e.backbuffer.Height}
}

// Frame returns the current frame counter, used by input_dispatch.go's
// double-click window and by compositorctl's DUMP_SCENE reply.
func (e *RenderEngine) Frame() uint64 {
	return e.frame
}

// Render executes one frame of the pipeline (spec.md §4.G): clear, paint
// every visible window bottom-to-top (shadow, pixels, focus border), the
// cursor overlay, present, clear damage. If nothing is damaged the frame is
// skipped entirely. Otherwise composition is clipped to the bounding box of
// the damage set (the stronger of the two options spec.md §9 permits,
// rather than the reference's unconditional every-frame repaint): the
// backdrop fill is restricted to that bound, and any window whose rect
// doesn't intersect it is skipped outright. A window that does intersect is
// still blitted in full — its own blit only ever touches its own rect, so
// this remains correct, just not maximally minimal. Every scene mutation
// whose visible footprint exceeds its own rect (drag, minimize, restore,
// layer change) already calls FullScreenDamage to compensate.
func (e *RenderEngine) Render(out FramebufferOutput, mouseX, mouseY int) error {
	e.SetCursor(mouseX, mouseY)
	e.frame++

	if !e.damage.HasDamage() {
		return nil
	}

	dst := e.backbuffer.Pixels()
	dstW, dstH := e.backbuffer.Width, e.backbuffer.Height

	bound := damageBound(e.damage, dstW, dstH)
	Fill(dst, dstW, dstH, bound, ColorOpaqueBlack)

	for _, id := range e.layers.BottomToTop() {
		w := e.windows[id]
		if w == nil || !w.IsVisible() || !w.Rect().Intersects(bound) {
			continue
		}
		e.paintWindow(dst, dstW, dstH, w)
	}

	if e.cursorVisible {
		paintCursor(dst, dstW, dstH, e.cursor)
	}

	if err := e.backbuffer.Present(out); err != nil {
		return newErr(PlatformFatal, "render", "present failed", err)
	}

	e.damage.Clear()
	return nil
}

func (e *RenderEngine) paintWindow(dst []Color, dstW, dstH int, w *Window) {
	rect := w.Rect()

	if w.Flags&FlagHasShadow != 0 {
		shadowRect := rect.Offset(shadowOffset, shadowOffset).Expand(shadowExpand)
		Shadow(dst, dstW, dstH, shadowRect, ColorShadow)
	}

	src := w.Pixels()
	srcSize := w.SourceSize()
	srcRect := NewRect(0, 0, srcSize.Width, srcSize.Height)

	if w.IsTransparent() {
		BlitAlpha(dst, dstW, dstH, src, srcSize.Width, srcSize.Height, srcRect, rect.Offset(0, 0).toPoint())
	} else if rect.Width == srcSize.Width && rect.Height == srcSize.Height {
		BlitOpaque(dst, dstW, dstH, src, srcSize.Width, srcSize.Height, srcRect, rect.toPoint())
	} else {
		// Maximize grows the screen footprint without reallocating the
		// shm (SourceSize stays pinned); scale the source to fit.
		ScaledBlit(dst, dstW, dstH, src, srcSize.Width, srcSize.Height, srcRect, rect)
	}

	if w.Layer != LayerBackground && w.HasDecorations() {
		PaintDecorations(dst, dstW, dstH, w)
	}

	focused, ok := e.Focus()
	if ok && focused == w.ID && w.HasDecorations() {
		Stroke(dst, dstW, dstH, rect, 2, ColorAccent)
	}
}

func (r Rect) toPoint() Point { return Point{X: r.X, Y: r.Y} }

// damageBound returns the union of every tracked damage rect, or the full
// screen when the full-screen flag is set or the set is otherwise empty.
func damageBound(d *DamageTracker, screenW, screenH int) Rect {
	rects := d.Rects()
	if d.IsFullScreen() || len(rects) == 0 {
		return NewRect(0, 0, screenW, screenH)
	}
	bound := rects[0]
	for _, r := range rects[1:] {
		bound = bound.Union(r)
	}
	return bound
}

// String renders a one-line scene summary, used by compositorctl's
// DUMP_SCENE reply.
func (e *RenderEngine) String() string {
	focus, ok := e.Focus()
	focusStr := "none"
	if ok {
		focusStr = fmt.Sprintf("%d", focus)
	}
	return fmt.Sprintf("frame=%d windows=%d focus=%s damage=%d full=%v",
		e.frame, len(e.windows), focusStr, len(e.damage.Rects()), e.damage.IsFullScreen())
}
