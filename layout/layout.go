// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a declarative, constraint based layout
engine. Elements compose into a tree; measuring and laying out the
tree produces a frame per element for an underlying renderer.

Layout proceeds in two phases. During measurement a parent hands a
child a Constraint, a permitted size range per axis, and the child
answers with its natural size. During placement the parent knows its
exact size and assigns each child a frame. Containers delegate both
phases to a Layout implementation such as Stack, Flow or GridRow.

Measurement is memoized per node and constraint for the duration of
one engine invocation, so a parent may probe a child under several
candidate constraints without re-measuring its subtree.
*/
package layout

import (
	"plankui.org/geom"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Alignment positions an item within available space along one axis.
type Alignment uint8

const (
	// Fill stretches the item over the available space.
	Fill Alignment = iota
	// Leading aligns the item to the leading (top or left) edge.
	Leading
	// Center centers the item.
	Center
	// Trailing aligns the item to the trailing (bottom or right) edge.
	Trailing
)

// Measurable is the capability every layoutable node provides:
// given a constraint, return a natural size. Measure must be a pure
// function of the node's content and the constraint within one
// engine invocation, and must return a finite, non-negative size.
// It may be called zero, one or many times per invocation.
type Measurable interface {
	Measure(cs Constraint) geom.Size
}

// MeasureFunc adapts a function to the Measurable interface.
type MeasureFunc func(cs Constraint) geom.Size

func (f MeasureFunc) Measure(cs Constraint) geom.Size {
	return f(cs)
}

// An Item is a container child as presented to a Layout: the traits
// the container attached to it and a measurable proxy for its
// content. The proxy measures through the engine's cache.
type Item struct {
	// Traits is the layout specific metadata for the item. Each
	// Layout implementation defines its own traits type and falls
	// back to its default for any other value, so unrelated layouts
	// cannot collide.
	Traits any

	content Measurable
}

// Measure the item's content under cs.
func (it Item) Measure(cs Constraint) geom.Size {
	return it.content.Measure(cs)
}

// A Layout computes sizes and frames for the children of a
// container element.
type Layout interface {
	// Measure returns the container's natural size under cs, given
	// its items.
	Measure(cs Constraint, items []Item) geom.Size
	// Place computes one frame per item, in the container's
	// coordinate space, for a container of the given exact size.
	Place(size geom.Size, items []Item) []geom.Rect
}

// A WrapLayout sizes and places the single child of a wrapper
// element. A nil WrapLayout makes the child fill the wrapper's
// bounds.
type WrapLayout interface {
	// Measure returns the wrapper's natural size under cs.
	Measure(cs Constraint, child Measurable) geom.Size
	// Place computes the child's frame within a wrapper of the
	// given exact size.
	Place(size geom.Size, child Measurable) geom.Rect
}

func axisMain(a Axis, sz geom.Size) float64 {
	if a == Horizontal {
		return sz.Width
	}
	return sz.Height
}

func axisCross(a Axis, sz geom.Size) float64 {
	if a == Horizontal {
		return sz.Height
	}
	return sz.Width
}

func axisSize(a Axis, main, cross float64) geom.Size {
	if a == Horizontal {
		return geom.Size{Width: main, Height: cross}
	}
	return geom.Size{Width: cross, Height: main}
}

func axisRect(a Axis, main, cross segment) geom.Rect {
	if a == Horizontal {
		return geom.Rc(main.origin, cross.origin, main.magnitude, cross.magnitude)
	}
	return geom.Rc(cross.origin, main.origin, cross.magnitude, main.magnitude)
}

func (a Axis) cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (al Alignment) String() string {
	switch al {
	case Fill:
		return "Fill"
	case Leading:
		return "Leading"
	case Center:
		return "Center"
	case Trailing:
		return "Trailing"
	default:
		panic("unreachable")
	}
}

// A segment is a one dimensional placement along an axis. It never
// escapes the package.
type segment struct {
	origin, magnitude float64
}

func (s segment) end() float64 {
	return s.origin + s.magnitude
}
