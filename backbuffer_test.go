package main

import "testing"

func TestBackbufferClear(t *testing.T) {
	b := NewBackbuffer(4, 4)
	b.Clear(RGBA(0xFF, 1, 2, 3))
	for _, p := range b.Pixels() {
		if p != RGBA(0xFF, 1, 2, 3) {
			t.Fatalf("clear did not set every pixel, got %08x", uint32(p))
		}
	}
}

func TestBackbufferBytesLength(t *testing.T) {
	b := NewBackbuffer(3, 2)
	if got, want := len(b.Bytes()), 3*2*4; got != want {
		t.Fatalf("byte view length = %d, want %d", got, want)
	}
}

func TestBackbufferResize(t *testing.T) {
	b := NewBackbuffer(2, 2)
	b.Resize(5, 5)
	if b.Width != 5 || b.Height != 5 || len(b.Pixels()) != 25 {
		t.Fatalf("resize did not reallocate correctly")
	}
}
