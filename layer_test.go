package main

import (
	"reflect"
	"testing"
)

func TestLayerManagerSingleLayerMembership(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerNormal, 1)
	if !m.Contains(LayerNormal, 1) {
		t.Fatalf("window should be present in the layer it was added to")
	}
	if m.Contains(LayerTop, 1) {
		t.Fatalf("window should not appear in an unrelated layer")
	}
}

func TestLayerManagerMoveWindow(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerNormal, 1)
	m.MoveWindow(1, LayerNormal, LayerTop)
	if m.Contains(LayerNormal, 1) {
		t.Fatalf("window must leave its old layer")
	}
	if !m.Contains(LayerTop, 1) {
		t.Fatalf("window must appear in its new layer")
	}
}

func TestLayerManagerBringToFront(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerNormal, 1)
	m.AddWindow(LayerNormal, 2)
	m.BringToFront(LayerNormal, 1)
	if got, want := m.Get(LayerNormal), []WindowID{2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLayerManagerSendToBack(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerNormal, 1)
	m.AddWindow(LayerNormal, 2)
	m.SendToBack(LayerNormal, 2)
	if got, want := m.Get(LayerNormal), []WindowID{2, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLayerManagerDrawOrder(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerCursor, 100)
	m.AddWindow(LayerBackground, 1)
	m.AddWindow(LayerNormal, 2)

	bottomToTop := m.BottomToTop()
	want := []WindowID{1, 2, 100}
	if !reflect.DeepEqual(bottomToTop, want) {
		t.Fatalf("bottom-to-top got %v want %v", bottomToTop, want)
	}

	topToBottom := m.TopToBottom()
	wantRev := []WindowID{100, 2, 1}
	if !reflect.DeepEqual(topToBottom, wantRev) {
		t.Fatalf("top-to-bottom got %v want %v", topToBottom, wantRev)
	}
}

func TestLayerManagerRemoveWindow(t *testing.T) {
	m := NewLayerManager()
	m.AddWindow(LayerTop, 5)
	m.RemoveWindow(5)
	if m.Contains(LayerTop, 5) {
		t.Fatalf("window should be gone after RemoveWindow")
	}
}
