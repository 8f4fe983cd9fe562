package main

import "testing"

func TestRectIntersectionDisjoint(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(20, 20, 10, 10)
	if _, ok := r1.Intersection(r2); ok {
		t.Fatalf("expected disjoint rects to have no intersection")
	}
}

func TestRectUnionSelf(t *testing.T) {
	r := NewRect(5, 5, 10, 10)
	if u := r.Union(r); u != r {
		t.Fatalf("union of a rect with itself should be itself, got %+v", u)
	}
}

func TestRectUnionContainsBoth(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(5, 5, 10, 10)
	u := r1.Union(r2)
	if !u.Contains(r1) || !u.Contains(r2) {
		t.Fatalf("union %+v must contain both inputs", u)
	}
}

func TestRectIntersectionExact(t *testing.T) {
	r1 := NewRect(0, 0, 10, 10)
	r2 := NewRect(5, 5, 10, 10)
	got, ok := r1.Intersection(r2)
	if !ok {
		t.Fatalf("expected overlap")
	}
	want := NewRect(5, 5, 5, 5)
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestRectContainsPointBoundary(t *testing.T) {
	r := NewRect(0, 0, 4, 4)
	if r.ContainsPoint(4, 0) || r.ContainsPoint(0, 4) {
		t.Fatalf("half-open rect must exclude right/bottom edges")
	}
	if !r.ContainsPoint(0, 0) || !r.ContainsPoint(3, 3) {
		t.Fatalf("rect must include its origin and inner corner")
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{Width: 0, Height: 5}).IsEmpty() {
		t.Fatalf("zero-width rect should be empty")
	}
	if (Rect{Width: 5, Height: 5}).IsEmpty() {
		t.Fatalf("5x5 rect should not be empty")
	}
}

func TestRectExpandOffset(t *testing.T) {
	r := NewRect(10, 10, 4, 4)
	e := r.Expand(2)
	if e != NewRect(8, 8, 8, 8) {
		t.Fatalf("expand(2) got %+v", e)
	}
	o := r.Offset(-10, -10)
	if o != NewRect(0, 0, 4, 4) {
		t.Fatalf("offset got %+v", o)
	}
}

func TestRectClipToScreen(t *testing.T) {
	r := NewRect(-5, -5, 10, 10)
	clipped, ok := r.ClipToScreen(8, 8)
	if !ok {
		t.Fatalf("expected partial overlap with screen")
	}
	if clipped != NewRect(0, 0, 5, 5) {
		t.Fatalf("got %+v", clipped)
	}
}
