// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"plankui.org/geom"
)

// A Limit is the acceptable range for a measurement along a single
// axis. It is one of three kinds: an exact value, an inclusive upper
// bound, or unconstrained. The zero value is unconstrained.
//
// An unconstrained Limit carries no numeric bound. It is never
// infinity: asking an unconstrained Limit for its bound is a
// programming error, guarded by the two-value Bound accessor.
type Limit struct {
	mode  limitMode
	bound float64
}

type limitMode uint8

const (
	unconstrained limitMode = iota
	exact
	atMost
)

// Unconstrained is the Limit that permits any size.
var Unconstrained = Limit{}

// Exact returns the Limit satisfied only by v. A negative or
// non-finite v panics.
func Exact(v float64) Limit {
	checkBound(v)
	return Limit{mode: exact, bound: v}
}

// AtMost returns the Limit permitting sizes up to max, inclusive. A
// negative or non-finite max panics.
func AtMost(max float64) Limit {
	checkBound(max)
	return Limit{mode: atMost, bound: max}
}

// IsExact reports whether l permits exactly one value.
func (l Limit) IsExact() bool {
	return l.mode == exact
}

// Bound returns the upper bound of l. The second return value is
// false for an unconstrained Limit, in which case the bound is
// meaningless.
func (l Limit) Bound() (float64, bool) {
	if l.mode == unconstrained {
		return 0, false
	}
	return l.bound, true
}

// Clamp constrains v to the range permitted by l. An exact Limit
// returns its value regardless of v.
func (l Limit) Clamp(v float64) float64 {
	switch l.mode {
	case exact:
		return l.bound
	case atMost:
		if v > l.bound {
			return l.bound
		}
	}
	if v < 0 {
		return 0
	}
	return v
}

// Fits reports whether v satisfies l.
func (l Limit) Fits(v float64) bool {
	if v < 0 {
		return false
	}
	switch l.mode {
	case exact:
		return v == l.bound
	case atMost:
		return v <= l.bound
	}
	return true
}

// Inset returns l reduced by d, clamped at zero. An unconstrained
// Limit is unchanged.
func (l Limit) Inset(d float64) Limit {
	if l.mode == unconstrained {
		return l
	}
	b := l.bound - d
	if b < 0 {
		b = 0
	}
	return Limit{mode: l.mode, bound: b}
}

func (l Limit) String() string {
	switch l.mode {
	case exact:
		return fmt.Sprintf("Exact(%g)", l.bound)
	case atMost:
		return fmt.Sprintf("AtMost(%g)", l.bound)
	default:
		return "Unconstrained"
	}
}

// A Constraint is the measurement input handed to an element: an
// independent Limit per axis. The zero value is unconstrained on
// both axes.
type Constraint struct {
	Width, Height Limit
}

// Exactly returns the Constraint satisfied only by sz.
func Exactly(sz geom.Size) Constraint {
	return Constraint{Width: Exact(sz.Width), Height: Exact(sz.Height)}
}

// Bounded returns the Constraint permitting sizes up to sz on both
// axes.
func Bounded(sz geom.Size) Constraint {
	return Constraint{Width: AtMost(sz.Width), Height: AtMost(sz.Height)}
}

// On returns the Limit along the given axis.
func (c Constraint) On(a Axis) Limit {
	if a == Horizontal {
		return c.Width
	}
	return c.Height
}

// With returns c with the Limit along the given axis replaced. The
// other axis passes through unchanged.
func (c Constraint) With(a Axis, l Limit) Constraint {
	if a == Horizontal {
		c.Width = l
	} else {
		c.Height = l
	}
	return c
}

// Inset returns c reduced by w horizontally and h vertically,
// clamping at zero.
func (c Constraint) Inset(w, h float64) Constraint {
	c.Width = c.Width.Inset(w)
	c.Height = c.Height.Inset(h)
	return c
}

// Clamp constrains sz to the ranges permitted by c.
func (c Constraint) Clamp(sz geom.Size) geom.Size {
	return geom.Size{
		Width:  c.Width.Clamp(sz.Width),
		Height: c.Height.Clamp(sz.Height),
	}
}

func (c Constraint) String() string {
	return fmt.Sprintf("%v×%v", c.Width, c.Height)
}

// loosen converts an exact Limit to the equivalent upper bound, so
// children measured inside a fixed-size container report natural
// sizes instead of being forced to the container's size.
func loosen(l Limit) Limit {
	if b, ok := l.Bound(); ok {
		return AtMost(b)
	}
	return Unconstrained
}

func checkBound(v float64) {
	if v < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		panic(fmt.Sprintf("layout: invalid constraint bound %g", v))
	}
}
