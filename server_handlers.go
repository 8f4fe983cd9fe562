// server_handlers.go - opcode dispatch, client registry, taskbar bridge
//
// Grounded on runtime_ipc.go's handleConn: decode, validate, act, reply
// (or not). Reworked from one stream connection per request into one shared
// inbox port carrying independent datagrams, each opcode routed to its own
// handler, matching the tagged-variant-sum-type dispatch spec.md §9 asks
// for rather than a callback table.

package main

import (
	"fmt"
	"time"
)

// replyRetryAttempts and replyRetryInterval are CREATE_WINDOW's reply-port
// connect budget (spec.md §4.I): up to 10 attempts, 10ms apart.
const (
	replyRetryAttempts = 10
	replyRetryInterval = 10 * time.Millisecond
)

// Logger is the minimal sink server handlers use to report dropped
// malformed messages and other non-fatal conditions (spec.md §7).
type Logger interface {
	Logf(format string, args ...any)
}

type stdLogger struct{}

func (stdLogger) Logf(format string, args ...any) { fmt.Printf(format+"\n", args...) }

// Server owns the engine, the input dispatcher, the client registry and the
// taskbar bridge — everything the wire protocol touches.
type Server struct {
	engine     *RenderEngine
	dispatcher *InputDispatcher
	log        Logger

	clients     map[WindowID]Port
	taskbarPort Port
}

// NewServer wires a Server around an already-constructed engine.
func NewServer(engine *RenderEngine, log Logger) *Server {
	if log == nil {
		log = stdLogger{}
	}
	s := &Server{engine: engine, log: log, clients: make(map[WindowID]Port)}
	s.dispatcher = NewInputDispatcher(engine, s)
	return s
}

// SendToWindow implements ClientSender: best-effort, non-blocking send to a
// window's registered reply port. A send failure (client gone) is not
// fatal; the window stays drawable until explicitly destroyed (spec.md §7).
func (s *Server) SendToWindow(id WindowID, msg EventInputMsg) {
	port, ok := s.clients[id]
	if !ok {
		return
	}
	buf, err := EncodeEventInput(msg)
	if err != nil {
		return
	}
	if err := port.Send(buf); err != nil {
		s.log.Logf("server: send to window %d failed: %v", id, err)
	}
}

// NotifyTaskbar implements ClientSender: emits a lifecycle event if a
// taskbar is currently registered.
func (s *Server) NotifyTaskbar(event LifecycleEvent, id WindowID, title string) {
	if s.taskbarPort == nil {
		return
	}
	buf, err := EncodeLifecycleEvent(EventWindowLifecycleMsg{
		EventType: uint32(event),
		WindowID:  uint32(id),
		Title:     packTitle(title),
	})
	if err != nil {
		return
	}
	if err := s.taskbarPort.Send(buf); err != nil {
		s.log.Logf("server: taskbar notify failed: %v", err)
	}
}

// CursorPos returns the input dispatcher's last-known mouse position.
func (s *Server) CursorPos() (int, int) {
	return s.dispatcher.CursorPos()
}

// HandleInput forwards one input event to the dispatch path an
// INPUT_UPDATE datagram would take. Called from the server loop's own
// goroutine only — once for each datagram decoded off the inbox, and once
// for each event drained from a window-toolkit backend's InputSource
// queue (spec.md §5: the engine is mutated from a single goroutine).
func (s *Server) HandleInput(msg InputUpdateMsg) {
	s.dispatcher.HandleInput(msg)
}

// HandleMessage decodes and routes one inbound datagram. Decode failures
// (short message, unknown opcode, bad field) are logged and dropped
// (ClientMalformed); nothing else ever escapes a handler.
func (s *Server) HandleMessage(raw []byte) {
	op, body, err := DecodeRequest(raw)
	if err != nil {
		s.log.Logf("server: dropping malformed message: %v", err)
		return
	}

	switch op {
	case OpCreateWindow:
		s.handleCreateWindow(body.(CreateWindowMsg))
	case OpDestroyWindow:
		s.handleDestroyWindow(WindowID(body.(WindowIDMsg).WindowID))
	case OpCommitBuffer:
		s.handleCommitBuffer(WindowID(body.(WindowIDMsg).WindowID))
	case OpMinimizeWindow:
		s.handleMinimize(WindowID(body.(WindowIDMsg).WindowID))
	case OpRestoreWindow:
		s.handleRestore(WindowID(body.(WindowIDMsg).WindowID))
	case OpRegisterTaskbar:
		s.handleRegisterTaskbar(body.(RegisterTaskbarMsg))
	case OpInputUpdate:
		s.dispatcher.HandleInput(body.(InputUpdateMsg))
	}
}

// layerForCreate decides a new window's stacking layer from its flags and
// requested position (spec.md §4.I step 3).
func layerForCreate(flags WindowFlags, y int32) LayerType {
	switch {
	case flags&FlagOverlay != 0:
		return LayerOverlay
	case flags&FlagBackground != 0:
		return LayerBackground
	case flags&FlagBorderless != 0 && y == 0:
		return LayerPanel
	default:
		return LayerNormal
	}
}

// handleCreateWindow implements spec.md §4.I's CREATE_WINDOW handler end to
// end: allocate shm, paint it opaque black, pick a layer, create the
// window, connect to the client's reply port (with the 10x10ms retry
// budget), reply WINDOW_CREATED, and notify the taskbar. Any failure before
// the reply rolls the window back and sends nothing (spec.md §7: Resource
// and ClientUnreachable both mean "the request is dropped, no state is
// mutated / the window creation is rolled back").
func (s *Server) handleCreateWindow(msg CreateWindowMsg) {
	width, height := int(msg.Width), int(msg.Height)
	if width <= 0 || height <= 0 {
		s.log.Logf("server: create_window: invalid size %dx%d", width, height)
		return
	}

	byteSize := width * height * 4
	shm, err := CreateSharedMemory(byteSize)
	if err != nil {
		s.log.Logf("server: create_window: shm allocation failed: %v", err)
		return
	}
	Fill(shm.Pixels(), width, height, NewRect(0, 0, width, height), ColorOpaqueBlack)

	flags := WindowFlags(msg.Flags)
	layer := layerForCreate(flags, msg.Y)
	title := unpackString(msg.Title[:])

	id, err := s.engine.CreateWindow(Size{Width: width, Height: height}, shm, layer, title)
	if err != nil {
		shm.Close()
		s.log.Logf("server: create_window: %v", err)
		return
	}
	win, _ := s.engine.Window(id)
	win.Flags = flags
	s.engine.MoveWindow(id, int(msg.X), int(msg.Y))
	prevFocus, _ := s.engine.Focus()
	if layer != LayerBackground {
		s.engine.SetFocus(id)
	}
	rollback := func() {
		s.engine.DestroyWindow(id)
		s.engine.SetFocus(prevFocus)
		shm.Close()
	}

	replyName := unpackString(msg.ReplyPort[:])
	port, err := ConnectPortRetry(replyName, replyRetryAttempts, replyRetryInterval)
	if err != nil {
		// ClientUnreachable: roll back, emit no lifecycle event.
		rollback()
		s.log.Logf("server: create_window: client unreachable: %v", err)
		return
	}

	reply, err := EncodeWindowCreated(WindowCreatedMsg{
		WindowID:   uint32(id),
		ShmHandle:  uint64(shm.Handle()),
		BufferSize: uint32(byteSize),
	})
	if err != nil {
		rollback()
		port.Close()
		return
	}
	if err := port.Send(reply); err != nil {
		rollback()
		port.Close()
		s.log.Logf("server: create_window: reply send failed: %v", err)
		return
	}

	s.clients[id] = port
	s.NotifyTaskbar(LifecycleCreated, id, title)
}

// handleDestroyWindow drops the client-registry entry, emits DESTROYED,
// destroys the window in the engine and forces a full repaint.
func (s *Server) handleDestroyWindow(id WindowID) {
	win, ok := s.engine.Window(id)
	if !ok {
		return // NotFound: idempotent
	}
	title := win.Title
	if port, ok := s.clients[id]; ok {
		port.Close()
		delete(s.clients, id)
	}
	s.engine.DestroyWindow(id)
	s.engine.FullScreenDamage()
	s.NotifyTaskbar(LifecycleDestroyed, id, title)
}

// handleCommitBuffer latches has_content and damages the window on every
// commit, not just the first one — a client that redraws its shm and
// re-commits after the initial frame must still reach the screen.
func (s *Server) handleCommitBuffer(id WindowID) {
	s.engine.MarkWindowHasContent(id)
	s.engine.MarkDamage(id)
}

// handleMinimize updates state, emits MINIMIZED, and forces a full repaint.
func (s *Server) handleMinimize(id WindowID) {
	win, ok := s.engine.Window(id)
	if !ok {
		return
	}
	win.Minimize()
	s.engine.MarkDamage(id)
	s.engine.FullScreenDamage()
	s.NotifyTaskbar(LifecycleMinimized, id, win.Title)
}

// handleRestore updates state, takes focus, raises within its layer, emits
// RESTORED, and forces a full repaint.
func (s *Server) handleRestore(id WindowID) {
	win, ok := s.engine.Window(id)
	if !ok {
		return
	}
	win.Restore()
	s.engine.SetFocus(id)
	s.engine.BringToFront(id)
	s.engine.MarkDamage(id)
	s.engine.FullScreenDamage()
	s.NotifyTaskbar(LifecycleRestored, id, win.Title)
}

// handleRegisterTaskbar connects to the listener port, replacing any
// previous registration (spec.md §4.I: "later registrations replace").
func (s *Server) handleRegisterTaskbar(msg RegisterTaskbarMsg) {
	name := unpackString(msg.ListenerPort[:])
	port, err := ConnectPort(name)
	if err != nil {
		s.log.Logf("server: register_taskbar: %v", err)
		return
	}
	if s.taskbarPort != nil {
		s.taskbarPort.Close()
	}
	s.taskbarPort = port
}
