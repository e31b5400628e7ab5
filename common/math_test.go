package common

import "testing"

func TestRectContainsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	cases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"inside", V(25, 30), true},
		{"top-left corner", V(10, 20), true},
		{"bottom-right corner", V(40, 60), true},
		{"left of", V(9.99, 30), false},
		{"below", V(25, 60.01), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := r.Contains(c.p); got != c.want {
				t.Fatalf("Contains(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Fatalf("overlapping rects should intersect")
	}
	// Touching edges do not overlap.
	if r.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}) {
		t.Fatalf("edge-adjacent rects should not intersect")
	}
}

func TestFloorNegative(t *testing.T) {
	x, y := V(-0.5, 63.9).Floor(32)
	if x != -1 || y != 1 {
		t.Fatalf("Floor = (%d, %d), want (-1, 1)", x, y)
	}
}

func TestInsetAndClamp(t *testing.T) {
	if got := (Rect{X: 0, Y: 0, Width: 10, Height: 6}).Inset(1); got != (Rect{X: 1, Y: 1, Width: 8, Height: 4}) {
		t.Fatalf("Inset = %v", got)
	}
	if Clamp(-1, 0, 5) != 0 || Clamp(7, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Fatalf("Clamp out of range")
	}
}
