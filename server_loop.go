// server_loop.go - bind, drain, render, throttle
//
// Grounded on video_chip.go's/video_compositor.go's refreshLoop, but traded
// the teacher's time.Ticker-driven fixed-rate goroutine for the plain
// drain-then-render-then-sleep loop spec.md §4.J specifies: within one
// frame every pending inbox message is processed, in arrival order, before
// the render call runs (spec.md §5's ordering guarantee), which a ticker
// that fires independently of inbox state cannot give you.

package main

import "time"

// frameInterval is the server loop's frame-pacing sleep (spec.md §4.J).
const frameInterval = 16 * time.Millisecond

// ServerLoop binds the inbox port and drives Server+RenderEngine+
// FramebufferOutput until told to stop or a PlatformFatal error escapes a
// render call.
type ServerLoop struct {
	server  *Server
	engine  *RenderEngine
	display FramebufferOutput
	inbox   Port

	running bool
}

// NewServerLoop wires a loop around an already-bound inbox port, ready to
// run; Stop is the only way to make it report done.
func NewServerLoop(server *Server, engine *RenderEngine, display FramebufferOutput, inbox Port) *ServerLoop {
	return &ServerLoop{server: server, engine: engine, display: display, inbox: inbox, running: true}
}

// Run drains the inbox, renders, and sleeps once per iteration until Stop
// is called or a render call returns a PlatformFatal error, which Run
// propagates to its caller (the process then exits, per spec.md §7).
func (l *ServerLoop) Run() error {
	for {
		done, err := l.Tick()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Tick runs exactly one iteration of the loop body: drain, render, sleep.
// done is true once Stop has been called, in which case Tick does no work at
// all. Exposed separately from Run so a caller that needs to interleave
// other non-blocking polling (compositord's debug server) within the same
// single-threaded cadence can do so without a second goroutine.
func (l *ServerLoop) Tick() (done bool, err error) {
	if !l.running {
		return true, nil
	}

	l.drainInbox()
	l.drainPolledInput()

	mx, my := l.server.CursorPos()
	if err := l.engine.Render(l.display, mx, my); err != nil {
		return false, err
	}

	PlatformSleep(frameInterval)
	return !l.running, nil
}

// Stop asks Run/Tick to report done after the current iteration.
func (l *ServerLoop) Stop() {
	l.running = false
}

// drainInbox processes every message currently queued, in arrival order,
// before returning — Recv(0) is non-blocking, so an empty inbox returns
// immediately rather than parking the loop (spec.md §5).
func (l *ServerLoop) drainInbox() {
	for {
		msg, err := l.inbox.Recv(0)
		if err != nil {
			return
		}
		l.server.HandleMessage(msg)
	}
}

// drainPolledInput picks up whatever a window-toolkit backend (the Ebiten
// display) queued on its own goroutine since the last tick and applies it
// here, on the loop's goroutine — the only place engine state is ever
// mutated (spec.md §5). Backends with no InputSource (headless) are a
// no-op.
func (l *ServerLoop) drainPolledInput() {
	src, ok := l.display.(InputSource)
	if !ok {
		return
	}
	for _, msg := range src.DrainInput() {
		l.server.HandleInput(msg)
	}
}
