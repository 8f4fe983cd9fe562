// damage.go - coalesced dirty-rectangle tracking

package main

// maxDamageRects bounds the damage set's size before it collapses to a
// single bounding box.
const maxDamageRects = 16

// DamageTracker accumulates the screen regions that need redrawing this
// frame: an unordered set of rects, clipped to screen, plus a full-screen
// escape hatch.
type DamageTracker struct {
	screenW, screenH int
	rects            []Rect
	full             bool
}

// NewDamageTracker returns a tracker that starts with the full-screen flag
// set, so the first frame paints everything.
func NewDamageTracker(screenW, screenH int) *DamageTracker {
	d := &DamageTracker{screenW: screenW, screenH: screenH}
	d.Full()
	return d
}

// Add clips rect to the screen and merges it into the damage set. An empty
// or fully off-screen rect is a no-op. A rect that intersects an existing
// entry is unioned into that entry rather than appended. If the set would
// grow past maxDamageRects, it collapses to a single bounding box.
func (d *DamageTracker) Add(rect Rect) {
	r, ok := rect.ClipToScreen(d.screenW, d.screenH)
	if !ok {
		return
	}
	for i, existing := range d.rects {
		if existing.Intersects(r) {
			d.rects[i] = existing.Union(r)
			return
		}
	}
	d.rects = append(d.rects, r)
	if len(d.rects) > maxDamageRects {
		d.collapse()
	}
}

func (d *DamageTracker) collapse() {
	bound := d.rects[0]
	for _, r := range d.rects[1:] {
		bound = bound.Union(r)
	}
	d.rects = []Rect{bound}
}

// Full sets the screen-wide rect and the full-screen flag.
func (d *DamageTracker) Full() {
	d.full = true
	d.rects = []Rect{NewRect(0, 0, d.screenW, d.screenH)}
}

// Resize updates the tracked screen dimensions and marks the whole screen
// dirty, since every previously-tracked rect may now be stale.
func (d *DamageTracker) Resize(screenW, screenH int) {
	d.screenW, d.screenH = screenW, screenH
	d.Full()
}

// Clear drops every tracked rect and clears the full-screen flag.
func (d *DamageTracker) Clear() {
	d.rects = nil
	d.full = false
}

// HasDamage reports whether there is anything to repaint this frame.
func (d *DamageTracker) HasDamage() bool {
	return d.full || len(d.rects) > 0
}

// IsFullScreen reports whether the full-screen escape hatch is set.
func (d *DamageTracker) IsFullScreen() bool {
	return d.full
}

// Rects returns the current damage rectangles. When IsFullScreen is true
// this is the single screen-sized rect.
func (d *DamageTracker) Rects() []Rect {
	return d.rects
}
