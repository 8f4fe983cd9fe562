package main

import (
	"testing"
	"time"
)

func TestServerLoopTickDrainsInboxBeforeRendering(t *testing.T) {
	engine := newTestEngine(100, 100)
	srv := NewServer(engine, &recordingLogger{})
	out := &fakeFramebuffer{config: DisplayConfig{Width: 100, Height: 100}}

	inboxName := "compositor-test-loop-" + t.Name()
	inbox, err := CreatePort(inboxName)
	if err != nil {
		t.Fatalf("CreatePort: %v", err)
	}
	defer inbox.Close()

	replyName := inboxName + "-reply"
	replyPort, err := CreatePort(replyName)
	if err != nil {
		t.Fatalf("CreatePort: %v", err)
	}
	defer replyPort.Close()

	client, err := ConnectPort(inboxName)
	if err != nil {
		t.Fatalf("ConnectPort: %v", err)
	}
	defer client.Close()

	req := CreateWindowMsg{Width: 10, Height: 10, ReplyPort: packPort(replyName)}
	buf, _ := encodeMessage(OpCreateWindow, req)
	if err := client.Send(buf); err != nil {
		t.Fatalf("Send: %v", err)
	}

	loop := NewServerLoop(srv, engine, out, inbox)
	done, err := loop.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if done {
		t.Fatalf("Tick should not report done before Stop is called")
	}

	if _, err := replyPort.Recv(200 * time.Millisecond); err != nil {
		t.Fatalf("the queued CREATE_WINDOW should have been drained and replied to within one tick: %v", err)
	}
	if out.frameCount == 0 {
		t.Fatalf("Tick should have rendered at least one frame (initial full-screen damage)")
	}
}

// fakePolledDisplay is a FramebufferOutput that also implements
// InputSource, standing in for the Ebiten backend's queued-input seam
// without needing a real window toolkit running.
type fakePolledDisplay struct {
	fakeFramebuffer
	queued []InputUpdateMsg
}

func (f *fakePolledDisplay) DrainInput() []InputUpdateMsg {
	out := f.queued
	f.queued = nil
	return out
}

func TestServerLoopTickDrainsPolledInputOnLoopGoroutine(t *testing.T) {
	engine := newTestEngine(200, 200)
	srv := NewServer(engine, &recordingLogger{})
	id, err := engine.CreateWindow(Size{100, 100}, newFakeShm(100, 100), LayerNormal, "win")
	if err != nil {
		t.Fatalf("CreateWindow: %v", err)
	}
	engine.MoveWindow(id, 0, 0)
	engine.MarkWindowHasContent(id)

	out := &fakePolledDisplay{
		fakeFramebuffer: fakeFramebuffer{config: DisplayConfig{Width: 200, Height: 200}},
		queued: []InputUpdateMsg{
			{EventType: uint32(InputEventMouse), MouseX: 50, MouseY: 50, MouseButtons: primaryButtonMask},
		},
	}

	inboxName := "compositor-test-polled-" + t.Name()
	inbox, err := CreatePort(inboxName)
	if err != nil {
		t.Fatalf("CreatePort: %v", err)
	}
	defer inbox.Close()

	loop := NewServerLoop(srv, engine, out, inbox)
	if _, err := loop.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if focus, ok := engine.Focus(); !ok || focus != id {
		t.Fatalf("a queued click drained from the display's InputSource should have focused the window")
	}
}

func TestServerLoopStopReportsDone(t *testing.T) {
	engine := newTestEngine(50, 50)
	srv := NewServer(engine, &recordingLogger{})
	out := &fakeFramebuffer{config: DisplayConfig{Width: 50, Height: 50}}

	inboxName := "compositor-test-stop-" + t.Name()
	inbox, err := CreatePort(inboxName)
	if err != nil {
		t.Fatalf("CreatePort: %v", err)
	}
	defer inbox.Close()

	loop := NewServerLoop(srv, engine, out, inbox)
	loop.Stop()
	done, err := loop.Tick()
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !done {
		t.Fatalf("Tick should report done after Stop")
	}
}
