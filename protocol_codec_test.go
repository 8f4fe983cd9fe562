package main

import "testing"

func TestDecodeRequestTooShortIsMalformed(t *testing.T) {
	if _, _, err := DecodeRequest([]byte{1, 2}); err == nil {
		t.Fatalf("a message shorter than the opcode word must be rejected")
	}
}

func TestDecodeRequestUnknownOpcodeIsMalformed(t *testing.T) {
	buf, err := encodeMessage(Opcode(9999), struct{ X uint32 }{1})
	if err != nil {
		t.Fatalf("encodeMessage: %v", err)
	}
	if _, _, err := DecodeRequest(buf); err == nil {
		t.Fatalf("an unknown opcode must be rejected")
	}
}

func TestCreateWindowRoundTrip(t *testing.T) {
	want := CreateWindowMsg{
		Width: 320, Height: 240, X: 5, Y: 10,
		Flags:     uint32(FlagTransparent),
		Title:     packTitle("demo"),
		ReplyPort: packPort("demo-reply"),
	}
	buf, err := encodeMessage(OpCreateWindow, want)
	if err != nil {
		t.Fatalf("encodeMessage: %v", err)
	}

	op, body, err := DecodeRequest(buf)
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	if op != OpCreateWindow {
		t.Fatalf("opcode = %v, want OpCreateWindow", op)
	}
	got := body.(CreateWindowMsg)
	if got.Width != want.Width || got.Height != want.Height || got.X != want.X || got.Y != want.Y {
		t.Fatalf("geometry mismatch: got %+v, want %+v", got, want)
	}
	if unpackString(got.Title[:]) != "demo" {
		t.Fatalf("title = %q, want %q", unpackString(got.Title[:]), "demo")
	}
	if unpackString(got.ReplyPort[:]) != "demo-reply" {
		t.Fatalf("reply port = %q, want %q", unpackString(got.ReplyPort[:]), "demo-reply")
	}
}

func TestWindowIDMessagesRoundTrip(t *testing.T) {
	for _, op := range []Opcode{OpDestroyWindow, OpCommitBuffer, OpMinimizeWindow, OpRestoreWindow} {
		buf, err := encodeMessage(op, WindowIDMsg{WindowID: 42})
		if err != nil {
			t.Fatalf("encodeMessage(%v): %v", op, err)
		}
		gotOp, body, err := DecodeRequest(buf)
		if err != nil {
			t.Fatalf("DecodeRequest(%v): %v", op, err)
		}
		if gotOp != op {
			t.Fatalf("opcode round-trip mismatch: got %v, want %v", gotOp, op)
		}
		if body.(WindowIDMsg).WindowID != 42 {
			t.Fatalf("window id mismatch for opcode %v", op)
		}
	}
}

func TestInputUpdateUsesFullInt32Coordinates(t *testing.T) {
	msg := InputUpdateMsg{
		EventType:    uint32(InputEventMouse),
		MouseX:       -5,
		MouseY:       -1,
		MouseButtons: 1,
	}
	buf, err := encodeMessage(OpInputUpdate, msg)
	if err != nil {
		t.Fatalf("encodeMessage: %v", err)
	}
	_, body, err := DecodeRequest(buf)
	if err != nil {
		t.Fatalf("DecodeRequest: %v", err)
	}
	got := body.(InputUpdateMsg)
	if got.MouseX != -5 || got.MouseY != -1 {
		t.Fatalf("negative mouse coordinates must survive the wire untouched, got (%d, %d)", got.MouseX, got.MouseY)
	}
}

func TestEncodeWindowCreatedRoundTrip(t *testing.T) {
	buf, err := EncodeWindowCreated(WindowCreatedMsg{WindowID: 7, ShmHandle: 99, BufferSize: 1024})
	if err != nil {
		t.Fatalf("EncodeWindowCreated: %v", err)
	}
	op, err := decodeOpcode(buf)
	if err != nil {
		t.Fatalf("decodeOpcode: %v", err)
	}
	if op != OpWindowCreated {
		t.Fatalf("opcode = %v, want OpWindowCreated", op)
	}
	var got WindowCreatedMsg
	if err := decodeBody(buf[opcodeSize:], &got); err != nil {
		t.Fatalf("decodeBody: %v", err)
	}
	if got.WindowID != 7 || got.ShmHandle != 99 || got.BufferSize != 1024 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestPackTitleTruncatesAndNulTerminates(t *testing.T) {
	long := make([]byte, titleFieldSize*2)
	for i := range long {
		long[i] = 'x'
	}
	packed := packTitle(string(long))
	got := unpackString(packed[:])
	if len(got) != titleFieldSize-1 {
		t.Fatalf("packed title length = %d, want %d", len(got), titleFieldSize-1)
	}
}
