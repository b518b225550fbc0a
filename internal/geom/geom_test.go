package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func vecAlmostEqual(a, b Vec) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestVecOps(t *testing.T) {
	a := Vec{X: 3, Y: 4}
	b := Vec{X: 1, Y: -2}

	if got := a.Add(b); !vecAlmostEqual(got, Vec{X: 4, Y: 2}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !vecAlmostEqual(got, Vec{X: 2, Y: 6}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); !vecAlmostEqual(got, Vec{X: 6, Y: 8}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); !almostEqual(got, -5) {
		t.Errorf("Dot = %f", got)
	}
	if got := a.Len(); !almostEqual(got, 5) {
		t.Errorf("Len = %f", got)
	}
}

func TestVecNormalized(t *testing.T) {
	v := Vec{X: 0, Y: -7}
	n := v.Normalized()
	if !vecAlmostEqual(n, Vec{X: 0, Y: -1}) {
		t.Errorf("Normalized = %+v", n)
	}

	// Zero vector has no direction
	if got := (Vec{}).Normalized(); !vecAlmostEqual(got, Vec{}) {
		t.Errorf("Normalized zero = %+v", got)
	}
}

func TestVecClampLen(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec
		lo, hi  float64
		wantLen float64
	}{
		{"within range", Vec{X: 3, Y: 4}, 1, 10, 5},
		{"too slow", Vec{X: 0.3, Y: 0.4}, 1, 10, 1},
		{"too fast", Vec{X: 30, Y: 40}, 1, 10, 10},
		{"zero stays zero", Vec{}, 1, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.ClampLen(tc.lo, tc.hi)
			if !almostEqual(got.Len(), tc.wantLen) {
				t.Errorf("ClampLen len = %f, want %f", got.Len(), tc.wantLen)
			}
			// Direction must be preserved for non-zero vectors
			if tc.v.Len() > 0 {
				if !vecAlmostEqual(got.Normalized(), tc.v.Normalized()) {
					t.Errorf("ClampLen changed direction: %+v", got)
				}
			}
		})
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		v, n Vec
		want Vec
	}{
		{"off top wall", Vec{X: 0, Y: -5}, Vec{X: 0, Y: 1}, Vec{X: 0, Y: 5}},
		{"off left wall", Vec{X: -3, Y: 2}, Vec{X: 1, Y: 0}, Vec{X: 3, Y: 2}},
		{"off bottom of brick", Vec{X: 2, Y: -4}, Vec{X: 0, Y: 1}, Vec{X: 2, Y: 4}},
		{"diagonal off vertical", Vec{X: 1, Y: 1}, Vec{X: -1, Y: 0}, Vec{X: -1, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Reflect(tc.v, tc.n)
			if !vecAlmostEqual(got, tc.want) {
				t.Errorf("Reflect(%+v, %+v) = %+v, want %+v", tc.v, tc.n, got, tc.want)
			}
			// Reflection must conserve speed
			if !almostEqual(got.Len(), tc.v.Len()) {
				t.Errorf("Reflect changed speed: %f -> %f", tc.v.Len(), got.Len())
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Left() != 2 || r.Right() != 12 || r.Top() != 3 || r.Bottom() != 7 {
		t.Errorf("edges = %f %f %f %f", r.Left(), r.Right(), r.Top(), r.Bottom())
	}
	if c := r.Center(); !vecAlmostEqual(c, Vec{X: 7, Y: 5}) {
		t.Errorf("Center = %+v", c)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Vec
		want bool
	}{
		{"inside", Vec{X: 5, Y: 5}, true},
		{"top-left corner", Vec{X: 0, Y: 0}, true},
		{"right edge exclusive", Vec{X: 10, Y: 5}, false},
		{"outside", Vec{X: -1, Y: 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%+v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestCircleRectContact(t *testing.T) {
	brick := NewRect(10, 10, 6, 2)

	tests := []struct {
		name       string
		center     Vec
		radius     float64
		wantHit    bool
		wantNormal Vec
	}{
		{"no overlap", Vec{X: 0, Y: 0}, 1, false, Vec{}},
		{"from above", Vec{X: 13, Y: 9.5}, 1, true, Vec{Y: -1}},
		{"from below", Vec{X: 13, Y: 12.5}, 1, true, Vec{Y: 1}},
		{"from left", Vec{X: 9.2, Y: 11}, 1, true, Vec{X: -1}},
		{"from right", Vec{X: 16.8, Y: 11}, 1, true, Vec{X: 1}},
		{"just touching above", Vec{X: 13, Y: 9}, 1, true, Vec{Y: -1}},
		{"clearly outside corner", Vec{X: 8, Y: 8}, 1, false, Vec{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, ok := CircleRectContact(tc.center, tc.radius, brick)
			if ok != tc.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tc.wantHit)
			}
			if ok && !vecAlmostEqual(c.Normal, tc.wantNormal) {
				t.Errorf("normal = %+v, want %+v", c.Normal, tc.wantNormal)
			}
			if ok && c.Depth < 0 {
				t.Errorf("negative depth %f", c.Depth)
			}
		})
	}
}

func TestCircleRectContactCornerTieBreak(t *testing.T) {
	// Circle placed so horizontal and vertical penetrations are exactly
	// equal: the vertical normal must win.
	r := NewRect(10, 10, 10, 10)
	center := Vec{X: 9.5, Y: 9.5}
	radius := 1.0

	c, ok := CircleRectContact(center, radius, r)
	if !ok {
		t.Fatal("expected contact")
	}
	if c.Normal.Y == 0 {
		t.Errorf("corner tie should resolve vertically, got %+v", c.Normal)
	}
}

func TestCircleRectContactCornerDeeperAxis(t *testing.T) {
	// Deeper vertical penetration than horizontal: vertical normal.
	r := NewRect(10, 10, 10, 10)
	c, ok := CircleRectContact(Vec{X: 9.9, Y: 9.2}, 1.0, r)
	if !ok {
		t.Fatal("expected contact")
	}
	if !vecAlmostEqual(c.Normal, Vec{Y: -1}) {
		t.Errorf("normal = %+v, want vertical", c.Normal)
	}

	// Deeper horizontal penetration: horizontal normal.
	c, ok = CircleRectContact(Vec{X: 9.2, Y: 9.9}, 1.0, r)
	if !ok {
		t.Fatal("expected contact")
	}
	if !vecAlmostEqual(c.Normal, Vec{X: -1}) {
		t.Errorf("normal = %+v, want horizontal", c.Normal)
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.want {
			t.Errorf("ClampF(%f, %f, %f) = %f, want %f", tc.val, tc.lo, tc.hi, got, tc.want)
		}
	}
}
