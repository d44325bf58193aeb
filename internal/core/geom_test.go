package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestWrapF(t *testing.T) {
	tests := []struct {
		x, m, expected float64
	}{
		{0.5, 2, 0.5},
		{2.5, 2, 0.5},
		{-0.5, 2, 1.5},
		{4, 2, 0},
	}

	for _, tc := range tests {
		if got := WrapF(tc.x, tc.m); !near(got, tc.expected) {
			t.Errorf("WrapF(%v, %v) = %v, expected %v", tc.x, tc.m, got, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Errorf("Lerp(2, 4, 0.25) = %v, expected 2.5", got)
	}
}

func TestVecOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(3, 2, 1)

	if got := a.Add(b); got != V3(4, 4, 4) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V3(-2, 0, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mid(b); got != V3(2, 2, 2) {
		t.Errorf("Mid = %v", got)
	}
	if got := V3(3, 0, 4).Len(); got != 5 {
		t.Errorf("Len = %v, expected 5", got)
	}
	if got := V3(0, 0, 0).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, expected zero", got)
	}
}

func TestLookAt(t *testing.T) {
	tr := LookAt(V3(0, 0, 1), V3(0, 0, 3))
	if tr.Facing != V3(0, 0, 1) {
		t.Errorf("Facing = %v, expected +Z", tr.Facing)
	}
	if tr.Scale != 1 {
		t.Errorf("Scale = %v, expected 1", tr.Scale)
	}

	same := LookAt(V3(1, 1, 1), V3(1, 1, 1))
	if same.Facing != V3(1, 0, 0) {
		t.Errorf("degenerate LookAt facing = %v, expected +X", same.Facing)
	}
}

func TestClockAdvance(t *testing.T) {
	c := Clock{}.Advance(0.5).Advance(0.25)
	if c.Elapsed != 0.75 || c.Delta != 0.25 {
		t.Errorf("Clock = %+v, expected {0.75 0.25}", c)
	}
}
