// layer.go - the seven fixed stacking layers

package main

// LayerType identifies one of the seven fixed stacking bands. Storage is a
// fixed-length array indexed by this type, not a map, since the layer set
// never changes at runtime.
type LayerType int

const (
	LayerBackground LayerType = iota
	LayerNormal
	LayerTop
	LayerPanel
	LayerOverlay
	LayerLock
	LayerCursor
	numLayers
)

func (l LayerType) String() string {
	switch l {
	case LayerBackground:
		return "Background"
	case LayerNormal:
		return "Normal"
	case LayerTop:
		return "Top"
	case LayerPanel:
		return "Panel"
	case LayerOverlay:
		return "Overlay"
	case LayerLock:
		return "Lock"
	case LayerCursor:
		return "Cursor"
	default:
		return "Unknown"
	}
}

// LayerManager owns the seven ordered window-id lists and answers draw-order
// queries across all of them.
type LayerManager struct {
	layers [numLayers][]WindowID
}

// NewLayerManager returns an empty layer manager.
func NewLayerManager() *LayerManager {
	return &LayerManager{}
}

// Get returns the window ids in layer l, bottom-to-top within the layer.
func (m *LayerManager) Get(l LayerType) []WindowID {
	return m.layers[l]
}

// AddWindow appends id to layer l if not already present.
func (m *LayerManager) AddWindow(l LayerType, id WindowID) {
	if m.Contains(l, id) {
		return
	}
	m.layers[l] = append(m.layers[l], id)
}

// Contains reports whether id is present in layer l.
func (m *LayerManager) Contains(l LayerType, id WindowID) bool {
	for _, w := range m.layers[l] {
		if w == id {
			return true
		}
	}
	return false
}

// RemoveWindow removes id from whichever layer holds it, if any.
func (m *LayerManager) RemoveWindow(id WindowID) {
	for l := LayerType(0); l < numLayers; l++ {
		m.layers[l] = removeID(m.layers[l], id)
	}
}

func removeID(list []WindowID, id WindowID) []WindowID {
	for i, w := range list {
		if w == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// MoveWindow removes id from layer `from` and appends it to layer `to`. A
// no-op if id is not present in `from`.
func (m *LayerManager) MoveWindow(id WindowID, from, to LayerType) {
	if !m.Contains(from, id) {
		return
	}
	m.layers[from] = removeID(m.layers[from], id)
	m.layers[to] = append(m.layers[to], id)
}

// BringToFront removes id from layer l and re-appends it, placing it above
// every other window in that layer.
func (m *LayerManager) BringToFront(l LayerType, id WindowID) {
	if !m.Contains(l, id) {
		return
	}
	m.layers[l] = removeID(m.layers[l], id)
	m.layers[l] = append(m.layers[l], id)
}

// SendToBack removes id from layer l and re-inserts it at the front,
// placing it below every other window in that layer.
func (m *LayerManager) SendToBack(l LayerType, id WindowID) {
	if !m.Contains(l, id) {
		return
	}
	m.layers[l] = removeID(m.layers[l], id)
	m.layers[l] = append([]WindowID{id}, m.layers[l]...)
}

// layerDrawOrder is the constant bottom-to-top layer iteration order.
var layerDrawOrder = [numLayers]LayerType{
	LayerBackground, LayerNormal, LayerTop, LayerPanel, LayerOverlay, LayerLock, LayerCursor,
}

// BottomToTop yields every window id across all layers in draw order
// (painted first to painted last).
func (m *LayerManager) BottomToTop() []WindowID {
	out := make([]WindowID, 0, 16)
	for _, l := range layerDrawOrder {
		out = append(out, m.layers[l]...)
	}
	return out
}

// TopToBottom yields every window id across all layers in reverse draw
// order, used for hit-testing (topmost window wins).
func (m *LayerManager) TopToBottom() []WindowID {
	all := m.BottomToTop()
	out := make([]WindowID, len(all))
	for i, id := range all {
		out[len(all)-1-i] = id
	}
	return out
}
