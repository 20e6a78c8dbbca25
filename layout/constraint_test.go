// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"testing"

	"plankui.org/geom"
)

func TestLimitZeroValue(t *testing.T) {
	var l Limit
	if _, ok := l.Bound(); ok {
		t.Error("zero Limit should be unconstrained")
	}
	if l.IsExact() {
		t.Error("zero Limit should not be exact")
	}
	if !l.Fits(1e12) {
		t.Error("unconstrained should fit any non-negative value")
	}
	if l.Fits(-1) {
		t.Error("no limit fits a negative value")
	}
}

func TestLimitClamp(t *testing.T) {
	tests := []struct {
		l       Limit
		v, want float64
	}{
		{Exact(50), 10, 50},
		{Exact(50), 100, 50},
		{AtMost(50), 10, 10},
		{AtMost(50), 100, 50},
		{AtMost(50), -5, 0},
		{Unconstrained, 100, 100},
		{Unconstrained, -5, 0},
	}
	for _, tc := range tests {
		if got := tc.l.Clamp(tc.v); got != tc.want {
			t.Errorf("%v.Clamp(%g) = %g, want %g", tc.l, tc.v, got, tc.want)
		}
	}
}

func TestLimitFits(t *testing.T) {
	tests := []struct {
		l    Limit
		v    float64
		want bool
	}{
		{Exact(50), 50, true},
		{Exact(50), 49, false},
		{AtMost(50), 50, true},
		{AtMost(50), 50.5, false},
		{AtMost(50), 0, true},
	}
	for _, tc := range tests {
		if got := tc.l.Fits(tc.v); got != tc.want {
			t.Errorf("%v.Fits(%g) = %v, want %v", tc.l, tc.v, got, tc.want)
		}
	}
}

func TestLimitInset(t *testing.T) {
	if got, want := AtMost(50).Inset(20), AtMost(30); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got, want := AtMost(10).Inset(20), AtMost(0); got != want {
		t.Errorf("Inset should clamp at zero, got %v, want %v", got, want)
	}
	if got, want := Exact(50).Inset(20), Exact(30); got != want {
		t.Errorf("Inset = %v, want %v", got, want)
	}
	if got := Unconstrained.Inset(20); got != Unconstrained {
		t.Errorf("unconstrained Inset = %v, want Unconstrained", got)
	}
}

func TestLimitInvalidBoundPanics(t *testing.T) {
	for _, f := range []func(){
		func() { Exact(-1) },
		func() { AtMost(-1) },
		func() { Exact(math.Inf(1)) },
		func() { AtMost(math.NaN()) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Error("expected panic for invalid bound")
				}
			}()
			f()
		}()
	}
}

func TestConstraintAxes(t *testing.T) {
	cs := Constraint{Width: Exact(100), Height: AtMost(50)}
	if got := cs.On(Horizontal); got != Exact(100) {
		t.Errorf("On(Horizontal) = %v", got)
	}
	if got := cs.On(Vertical); got != AtMost(50) {
		t.Errorf("On(Vertical) = %v", got)
	}
	swapped := cs.With(Vertical, Exact(25))
	if swapped.Width != Exact(100) || swapped.Height != Exact(25) {
		t.Errorf("With(Vertical) = %v", swapped)
	}
}

func TestConstraintClamp(t *testing.T) {
	cs := Constraint{Width: Exact(100), Height: AtMost(50)}
	if got, want := cs.Clamp(geom.Sz(20, 80)), geom.Sz(100, 50); got != want {
		t.Errorf("Clamp = %v, want %v", got, want)
	}
}

func TestConstraintInset(t *testing.T) {
	cs := Constraint{Width: AtMost(100)}.Inset(30, 30)
	if cs.Width != AtMost(70) {
		t.Errorf("inset width = %v, want AtMost(70)", cs.Width)
	}
	if cs.Height != Unconstrained {
		t.Errorf("inset height = %v, want Unconstrained", cs.Height)
	}
}

func TestLoosen(t *testing.T) {
	if got := loosen(Exact(50)); got != AtMost(50) {
		t.Errorf("loosen(Exact) = %v, want AtMost(50)", got)
	}
	if got := loosen(AtMost(50)); got != AtMost(50) {
		t.Errorf("loosen(AtMost) = %v, want AtMost(50)", got)
	}
	if got := loosen(Unconstrained); got != Unconstrained {
		t.Errorf("loosen(Unconstrained) = %v", got)
	}
}
