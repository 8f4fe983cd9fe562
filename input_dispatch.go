// input_dispatch.go - focus, drag and click-state machine
//
// Grounded on video_backend_ebiten.go's handleKeyboardInput /
// inpututil.IsKeyJustPressed edge-trigger idiom, generalized from "just
// pressed this key" to "the primary mouse button just transitioned
// 0->1/1->0" — the same just-this-tick-changed pattern, applied to a
// button bitmask instead of a key set.

package main

// doubleClickWindowFrames is how many frames apart two title-bar clicks on
// the same window must land within to count as a double-click (spec.md
// §4.H).
const doubleClickWindowFrames = 30

const primaryButtonMask uint32 = 1

// dragState describes an in-progress titlebar drag: the window being moved
// and the pointer's offset from the window's origin at drag start.
type dragState struct {
	active   bool
	windowID WindowID
	offsetX  int
	offsetY  int
}

// clickState remembers the last title-bar click, for double-click detection.
type clickState struct {
	windowID WindowID
	frame    uint64
	valid    bool
}

// ClientSender is how the input dispatcher reaches clients and the
// taskbar without owning the client registry itself (server_handlers.go
// owns that bookkeeping).
type ClientSender interface {
	SendToWindow(id WindowID, msg EventInputMsg)
	NotifyTaskbar(event LifecycleEvent, id WindowID, title string)
}

// InputDispatcher turns INPUT_UPDATE messages into scene mutations and
// client-directed events. It starts with no focus, no drag, empty click
// state, mouse at (100, 100), previous buttons 0 (spec.md §4.H).
type InputDispatcher struct {
	engine *RenderEngine
	sender ClientSender

	mouseX, mouseY int
	prevButtons    uint32

	drag  dragState
	click clickState
}

// NewInputDispatcher wires a dispatcher to the scene it mutates and the
// sender it reaches clients through.
func NewInputDispatcher(engine *RenderEngine, sender ClientSender) *InputDispatcher {
	return &InputDispatcher{engine: engine, sender: sender, mouseX: 100, mouseY: 100}
}

// CursorPos returns the dispatcher's last-known mouse position, used by the
// server loop to drive each frame's cursor overlay.
func (d *InputDispatcher) CursorPos() (int, int) {
	return d.mouseX, d.mouseY
}

// HandleInput dispatches one INPUT_UPDATE payload to the key or mouse path.
func (d *InputDispatcher) HandleInput(msg InputUpdateMsg) {
	switch InputEventType(msg.EventType) {
	case InputEventKey:
		d.handleKey(msg)
	case InputEventMouse:
		d.handleMouse(msg)
	}
}

// handleKey emits KEY_DOWN/KEY_UP to the focused window, dropping silently
// if nothing is focused.
func (d *InputDispatcher) handleKey(msg InputUpdateMsg) {
	focus, ok := d.engine.Focus()
	if !ok {
		return
	}
	event := EventKeyUp
	if msg.KeyPressed != 0 {
		event = EventKeyDown
	}
	d.sender.SendToWindow(focus, EventInputMsg{
		EventType: uint32(event),
		Param1:    int32(msg.KeyCode),
	})
}

// handleMouse runs the five-step mouse pipeline from spec.md §4.H.
func (d *InputDispatcher) handleMouse(msg InputUpdateMsg) {
	d.mouseX, d.mouseY = int(msg.MouseX), int(msg.MouseY)
	buttons := msg.MouseButtons

	justPressed := buttons&primaryButtonMask != 0 && d.prevButtons&primaryButtonMask == 0
	justReleased := buttons&primaryButtonMask == 0 && d.prevButtons&primaryButtonMask != 0
	held := buttons&primaryButtonMask != 0

	if justPressed {
		d.onPrimaryDown()
	}

	if d.drag.active {
		d.applyDrag()
		if !held {
			d.drag = dragState{}
		}
	}

	if justReleased {
		if focus, ok := d.engine.Focus(); ok {
			d.sender.SendToWindow(focus, EventInputMsg{EventType: uint32(EventMouseUp)})
		}
		d.drag = dragState{}
	}

	d.prevButtons = buttons
}

func (d *InputDispatcher) onPrimaryDown() {
	id, ok := d.engine.WindowAtPoint(d.mouseX, d.mouseY)
	if !ok {
		return
	}
	win, ok := d.engine.Window(id)
	if !ok {
		return
	}

	if focus, hasFocus := d.engine.Focus(); !hasFocus || focus != id {
		d.engine.SetFocus(id)
		d.sender.NotifyTaskbar(LifecycleFocused, id, win.Title)
		if win.Layer == LayerNormal {
			d.engine.BringToFront(id)
		}
	}

	localX, localY := d.mouseX-win.Pos.X, d.mouseY-win.Pos.Y
	d.sender.SendToWindow(id, EventInputMsg{
		EventType: uint32(EventMouseDown),
		Param1:    int32(localX),
		Param2:    int32(localY),
	})

	if win.Layer == LayerBackground || !win.HasDecorations() {
		return
	}

	switch hitTestDecoration(win.Size, localX, localY) {
	case decorationClose:
		d.engine.DestroyWindow(id)
		d.sender.NotifyTaskbar(LifecycleDestroyed, id, win.Title)
	case decorationMinimize:
		win.Minimize()
		d.engine.MarkDamage(id)
		d.engine.FullScreenDamage()
		d.sender.NotifyTaskbar(LifecycleMinimized, id, win.Title)
	case decorationTitleBarDrag:
		if d.click.valid && d.click.windowID == id && d.engine.Frame()-d.click.frame < doubleClickWindowFrames {
			d.toggleMaximize(id, win)
			d.click = clickState{}
		} else {
			d.drag = dragState{active: true, windowID: id, offsetX: localX, offsetY: localY}
			d.click = clickState{windowID: id, frame: d.engine.Frame(), valid: true}
		}
	}
}

func (d *InputDispatcher) toggleMaximize(id WindowID, win *Window) {
	if win.State == WindowMaximized {
		win.Restore()
		d.sender.NotifyTaskbar(LifecycleRestored, id, win.Title)
	} else {
		win.Maximize(d.engine.ScreenSize())
	}
	d.engine.MarkDamage(id)
	d.engine.FullScreenDamage()
}

func (d *InputDispatcher) applyDrag() {
	if _, ok := d.engine.Window(d.drag.windowID); !ok {
		d.drag = dragState{}
		return
	}
	d.engine.MoveWindow(d.drag.windowID, d.mouseX-d.drag.offsetX, d.mouseY-d.drag.offsetY)
	d.engine.FullScreenDamage()
}
