// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	tests := []struct {
		a, b, want Rect
	}{
		{Rc(0, 0, 10, 10), Rc(5, 5, 10, 10), Rc(0, 0, 15, 15)},
		{Rc(0, 0, 10, 10), Rc(20, 0, 5, 5), Rc(0, 0, 25, 10)},
		{Rc(-5, -5, 5, 5), Rc(0, 0, 5, 5), Rc(-5, -5, 10, 10)},
	}
	for _, tc := range tests {
		if got := tc.a.Union(tc.b); got != tc.want {
			t.Errorf("%v.Union(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if got := tc.b.Union(tc.a); got != tc.want {
			t.Errorf("%v.Union(%v) = %v, want %v", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestRectInset(t *testing.T) {
	r := Rc(0, 0, 100, 50)
	if got, want := r.Inset(10), Rc(10, 10, 80, 30); got != want {
		t.Errorf("Inset(10) = %v, want %v", got, want)
	}
	// Insets beyond the size clamp at zero around the center.
	if got, want := r.Inset(40), Rc(40, 25, 20, 0); got != want {
		t.Errorf("Inset(40) = %v, want %v", got, want)
	}
}

func TestSizeUnion(t *testing.T) {
	if got, want := Sz(10, 40).Union(Sz(30, 20)), Sz(30, 40); got != want {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

func TestSizeValid(t *testing.T) {
	nan := 0.0
	nan /= nan
	tests := []struct {
		sz   Size
		want bool
	}{
		{Sz(0, 0), true},
		{Sz(10, 20), true},
		{Sz(-1, 0), false},
		{Sz(nan, 0), false},
		{Sz(math.Inf(1), 0), false},
	}
	for _, tc := range tests {
		if got := tc.sz.Valid(); got != tc.want {
			t.Errorf("%v.Valid() = %v, want %v", tc.sz, got, tc.want)
		}
	}
}

func TestUnitPointIn(t *testing.T) {
	r := Rc(10, 20, 100, 50)
	tests := []struct {
		u    UnitPoint
		want Point
	}{
		{TopLeading, Pt(10, 20)},
		{Center, Pt(60, 45)},
		{BottomTrailing, Pt(110, 70)},
		{Trailing, Pt(110, 45)},
	}
	for _, tc := range tests {
		if got := tc.u.In(r); got != tc.want {
			t.Errorf("%v.In(%v) = %v, want %v", tc.u, r, got, tc.want)
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rc(0, 0, 10, 10)
	if !r.Contains(Pt(0, 0)) || !r.Contains(Pt(9.9, 9.9)) {
		t.Error("Contains should include the min edge")
	}
	if r.Contains(Pt(10, 10)) {
		t.Error("Contains should exclude the max edge")
	}
}
