// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"
	"testing"

	"plankui.org/geom"
)

// rigid is a test measurable reporting a natural size regardless of
// the constraint.
type rigid struct {
	w, h float64
}

func (r rigid) Measure(cs Constraint) geom.Size {
	return geom.Sz(r.w, r.h)
}

// shrinkable reports a natural width but folds to the width bound,
// growing taller to compensate, like wrapping text.
type shrinkable struct {
	natural, h float64
}

func (s shrinkable) Measure(cs Constraint) geom.Size {
	if b, ok := cs.Width.Bound(); ok && b < s.natural {
		lines := math.Ceil(s.natural / math.Max(b, 1))
		return geom.Sz(b, s.h*lines)
	}
	return geom.Sz(s.natural, s.h)
}

func item(m Measurable, t any) Item {
	return Item{Traits: t, content: m}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestStackNaturalPacking(t *testing.T) {
	s := Stack{Axis: Horizontal, MinimumSpacing: 10}
	items := []Item{
		item(rigid{50, 50}, Fixed),
		item(rigid{50, 50}, Fixed),
		item(rigid{50, 50}, Fixed),
	}
	cs := Constraint{Width: AtMost(1000), Height: AtMost(100)}

	if got, want := s.Measure(cs, items), geom.Sz(170, 50); got != want {
		t.Fatalf("Measure = %v, want %v", got, want)
	}
	frames := s.Place(geom.Sz(170, 50), items)
	wantX := []float64{0, 60, 120}
	for i, f := range frames {
		if !approx(f.Origin.X, wantX[i]) || !approx(f.Size.Width, 50) {
			t.Errorf("frame %d = %v, want x=%g w=50", i, f, wantX[i])
		}
	}
}

func TestStackOverflowCondenseUniformly(t *testing.T) {
	s := Stack{Axis: Horizontal, MinimumSpacing: 10, Overflow: CondenseUniformly}
	items := []Item{
		item(rigid{50, 50}, Fixed),
		item(rigid{50, 50}, Fixed),
		item(rigid{50, 50}, Fixed),
	}
	frames := s.Place(geom.Sz(100, 50), items)

	var sum float64
	for i, f := range frames {
		if !approx(f.Size.Width, 50-70.0/3) {
			t.Errorf("frame %d width = %g, want %g", i, f.Size.Width, 50-70.0/3)
		}
		if f.Size.Width < 0 {
			t.Errorf("frame %d has negative width", i)
		}
		sum += f.Size.Width
	}
	// Sum invariant: magnitudes plus spacing fill the target.
	if !approx(sum+2*10, 100) {
		t.Errorf("sum + spacing = %g, want 100", sum+2*10)
	}
}

func TestStackOverflowCondenseProportionally(t *testing.T) {
	s := Stack{Axis: Horizontal, Overflow: CondenseProportionally}
	items := []Item{
		item(rigid{100, 10}, Flexible),
		item(rigid{300, 10}, Flexible),
	}
	frames := s.Place(geom.Sz(200, 10), items)

	// A 200 point shortfall split 1:3 by basis share.
	if !approx(frames[0].Size.Width, 50) || !approx(frames[1].Size.Width, 150) {
		t.Errorf("widths = %g, %g, want 50, 150", frames[0].Size.Width, frames[1].Size.Width)
	}
	if !approx(frames[0].Size.Width+frames[1].Size.Width, 200) {
		t.Error("overflow sum invariant violated")
	}
}

func TestStackUnderflowSpaceEvenly(t *testing.T) {
	s := Stack{Axis: Horizontal, Underflow: SpaceEvenly}
	items := []Item{
		item(rigid{50, 20}, Flexible),
		item(rigid{50, 20}, Flexible),
	}
	frames := s.Place(geom.Sz(200, 20), items)

	if !approx(frames[0].Origin.X, 0) || !approx(frames[1].Origin.X, 150) {
		t.Errorf("origins = %g, %g, want 0, 150", frames[0].Origin.X, frames[1].Origin.X)
	}
	for i, f := range frames {
		if !approx(f.Size.Width, 50) {
			t.Errorf("frame %d width changed to %g under SpaceEvenly", i, f.Size.Width)
		}
	}
}

func TestStackUnderflowGrow(t *testing.T) {
	for _, mode := range []Underflow{GrowProportionally, GrowUniformly} {
		s := Stack{Axis: Horizontal, Underflow: mode}
		items := []Item{
			item(rigid{30, 20}, StackTraits{GrowPriority: 1, ShrinkPriority: 1}),
			item(rigid{90, 20}, StackTraits{GrowPriority: 1, ShrinkPriority: 1}),
		}
		frames := s.Place(geom.Sz(240, 20), items)

		var sum float64
		for _, f := range frames {
			sum += f.Size.Width
		}
		if !approx(sum, 240) {
			t.Errorf("%v: grow sum = %g, want 240", mode, sum)
		}
		switch mode {
		case GrowProportionally:
			// 120 extra split 30:90.
			if !approx(frames[0].Size.Width, 60) || !approx(frames[1].Size.Width, 180) {
				t.Errorf("proportional widths = %g, %g, want 60, 180",
					frames[0].Size.Width, frames[1].Size.Width)
			}
		case GrowUniformly:
			if !approx(frames[0].Size.Width, 90) || !approx(frames[1].Size.Width, 150) {
				t.Errorf("uniform widths = %g, %g, want 90, 150",
					frames[0].Size.Width, frames[1].Size.Width)
			}
		}
	}
}

func TestStackJustify(t *testing.T) {
	tests := []struct {
		mode  Underflow
		first float64
	}{
		{JustifyStart, 0},
		{JustifyCenter, 45},
		{JustifyEnd, 90},
	}
	for _, tc := range tests {
		s := Stack{Axis: Horizontal, MinimumSpacing: 10, Underflow: tc.mode}
		items := []Item{
			item(rigid{50, 20}, Flexible),
			item(rigid{50, 20}, Flexible),
		}
		frames := s.Place(geom.Sz(200, 20), items)
		if !approx(frames[0].Origin.X, tc.first) {
			t.Errorf("%v: first origin = %g, want %g", tc.mode, frames[0].Origin.X, tc.first)
		}
		if !approx(frames[1].Origin.X-frames[0].Max().X, 10) {
			t.Errorf("%v: spacing = %g, want 10", tc.mode, frames[1].Origin.X-frames[0].Max().X)
		}
	}
}

func TestStackVertical(t *testing.T) {
	s := Stack{Axis: Vertical, MinimumSpacing: 5}
	items := []Item{
		item(rigid{20, 30}, Fixed),
		item(rigid{40, 30}, Fixed),
	}
	if got, want := s.Measure(Constraint{}, items), geom.Sz(40, 65); got != want {
		t.Fatalf("Measure = %v, want %v", got, want)
	}
	frames := s.Place(geom.Sz(40, 65), items)
	if !approx(frames[1].Origin.Y, 35) {
		t.Errorf("second child y = %g, want 35", frames[1].Origin.Y)
	}
}

func TestStackFillAlignment(t *testing.T) {
	s := Stack{Axis: Horizontal, Alignment: Fill}
	items := []Item{
		item(rigid{50, 20}, Fixed),
		item(rigid{50, 40}, Fixed),
	}
	frames := s.Place(geom.Sz(100, 60), items)
	for i, f := range frames {
		if !approx(f.Size.Height, 60) || !approx(f.Origin.Y, 0) {
			t.Errorf("frame %d = %v, want full height 60", i, f)
		}
	}
}

func TestStackCrossAlignment(t *testing.T) {
	tests := []struct {
		align Alignment
		// y origins for children of height 20 and 40 in a 40 tall
		// container.
		want []float64
	}{
		{Leading, []float64{0, 0}},
		{Center, []float64{10, 0}},
		{Trailing, []float64{20, 0}},
	}
	for _, tc := range tests {
		s := Stack{Axis: Horizontal, Alignment: tc.align}
		items := []Item{
			item(rigid{50, 20}, Fixed),
			item(rigid{50, 40}, Fixed),
		}
		frames := s.Place(geom.Sz(100, 40), items)
		for i, f := range frames {
			if !approx(f.Origin.Y, tc.want[i]) {
				t.Errorf("%v: frame %d y = %g, want %g", tc.align, i, f.Origin.Y, tc.want[i])
			}
			if approx(f.Size.Height, 40) && i == 0 {
				t.Errorf("%v: frame %d stretched without Fill", tc.align, i)
			}
		}
	}
}

func TestStackAlignmentGuides(t *testing.T) {
	// Two children aligned on a guide 5 points into the first and
	// 30 into the second: the guide line settles at 30.
	s := Stack{Axis: Horizontal, Alignment: Leading}
	items := []Item{
		item(rigid{50, 20}, StackTraits{Guide: func(cross float64) float64 { return 5 }}),
		item(rigid{50, 40}, StackTraits{Guide: func(cross float64) float64 { return 30 }}),
	}
	frames := s.Place(geom.Sz(100, 60), items)
	if !approx(frames[0].Origin.Y+5, frames[1].Origin.Y+30) {
		t.Errorf("guides not aligned: %g vs %g", frames[0].Origin.Y+5, frames[1].Origin.Y+30)
	}
	if !approx(frames[1].Origin.Y, 0) {
		t.Errorf("second child y = %g, want 0", frames[1].Origin.Y)
	}
}

func TestStackZeroPriorityFallback(t *testing.T) {
	// All shrink priorities zero: condense falls back to uniform
	// distribution instead of dividing by zero.
	s := Stack{Axis: Horizontal, Overflow: CondenseProportionally}
	items := []Item{
		item(rigid{60, 10}, Fixed),
		item(rigid{60, 10}, Fixed),
	}
	frames := s.Place(geom.Sz(100, 10), items)
	if !approx(frames[0].Size.Width, 50) || !approx(frames[1].Size.Width, 50) {
		t.Errorf("widths = %g, %g, want 50, 50", frames[0].Size.Width, frames[1].Size.Width)
	}
}

func TestStackZeroChildren(t *testing.T) {
	s := Stack{Axis: Horizontal}
	if got := s.Measure(Constraint{Width: AtMost(100), Height: AtMost(100)}, nil); !got.IsZero() {
		t.Errorf("Measure with no children = %v, want zero", got)
	}
	if frames := s.Place(geom.Sz(100, 100), nil); len(frames) != 0 {
		t.Errorf("Place with no children produced %d frames", len(frames))
	}
}

func TestStackFixedBeforeFlexible(t *testing.T) {
	// The flexible child is measured against the leftover after
	// the fixed child and spacing, and shrinks into it.
	s := Stack{Axis: Horizontal, MinimumSpacing: 10}
	items := []Item{
		item(rigid{80, 10}, Fixed),
		item(shrinkable{natural: 200, h: 10}, Flexible),
	}
	frames := s.Place(geom.Sz(200, 20), items)
	if !approx(frames[0].Size.Width, 80) {
		t.Errorf("fixed width = %g, want 80", frames[0].Size.Width)
	}
	if !approx(frames[1].Size.Width, 110) {
		t.Errorf("flexible width = %g, want leftover 110", frames[1].Size.Width)
	}
}

func TestStackMonotonicity(t *testing.T) {
	// Growing the target never shrinks the fixed child and never
	// yields negative flexible magnitudes.
	prevFlex := -1.0
	for target := 50.0; target <= 400; target += 25 {
		s := Stack{Axis: Horizontal, Underflow: GrowProportionally}
		items := []Item{
			item(rigid{50, 10}, Fixed),
			item(rigid{100, 10}, Flexible),
		}
		frames := s.Place(geom.Sz(target, 10), items)
		if frames[1].Size.Width < 0 {
			t.Fatalf("target %g: negative flexible width", target)
		}
		if frames[1].Size.Width < prevFlex {
			t.Fatalf("target %g: flexible width shrank from %g to %g",
				target, prevFlex, frames[1].Size.Width)
		}
		prevFlex = frames[1].Size.Width
	}
}

func TestStackNegativePriorityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("negative priority did not panic")
		}
	}()
	s := Stack{Axis: Horizontal}
	s.Place(geom.Sz(100, 10), []Item{
		item(rigid{10, 10}, StackTraits{GrowPriority: -1}),
	})
}
