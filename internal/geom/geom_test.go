package geom

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	inside := []Point{{2, 3}, {5, 3}, {5, 4}, {3, 4}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Fatalf("expected %v inside %v", p, r)
		}
	}
	outside := []Point{{1, 3}, {6, 3}, {2, 2}, {2, 5}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Fatalf("expected %v outside %v", p, r)
		}
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	r := Rect{X: 10, Y: 4, W: 8, H: 3}
	local := Point{X: 2, Y: 1}
	screen := r.ToScreen(local)
	if screen != (Point{X: 12, Y: 5}) {
		t.Fatalf("unexpected screen point %v", screen)
	}
	if back := r.ToLocal(screen); back != local {
		t.Fatalf("round trip mismatch: %v", back)
	}
}

func TestClampKeepsRectOnScreen(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 80, H: 24}
	popup := Rect{X: 75, Y: 20, W: 12, H: 8}
	clamped := popup.Clamp(screen)
	if clamped.X+clamped.W > 80 || clamped.Y+clamped.H > 24 {
		t.Fatalf("rect still off screen: %+v", clamped)
	}
	if clamped.X < 0 || clamped.Y < 0 {
		t.Fatalf("rect pushed past origin: %+v", clamped)
	}
}

func TestClampShrinksOversizedRect(t *testing.T) {
	screen := Rect{X: 0, Y: 0, W: 20, H: 5}
	huge := Rect{X: 0, Y: 0, W: 40, H: 10}
	clamped := huge.Clamp(screen)
	if clamped.W != 20 || clamped.H != 5 {
		t.Fatalf("expected rect shrunk to screen, got %+v", clamped)
	}
}
