// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"plankui.org/geom"
)

// Sized overrides the constraint its single child is measured
// under. An Unconstrained rule leaves the inherited limit in
// place. The child fills the wrapper's bounds.
type Sized struct {
	Width, Height Limit
	Child         Element
}

// FixedSize returns a wrapper measuring exactly sz regardless of
// the child's natural size.
func FixedSize(sz geom.Size, child Element) *Sized {
	return &Sized{Width: Exact(sz.Width), Height: Exact(sz.Height), Child: child}
}

func (s *Sized) Content() Content {
	return WrapContent(sizedLayout{width: s.Width, height: s.Height}, s.Child)
}

type sizedLayout struct {
	width, height Limit
}

func (l sizedLayout) apply(cs Constraint) Constraint {
	if l.width != Unconstrained {
		cs.Width = l.width
	}
	if l.height != Unconstrained {
		cs.Height = l.height
	}
	return cs
}

func (l sizedLayout) Measure(cs Constraint, child Measurable) geom.Size {
	cs = l.apply(cs)
	return cs.Clamp(child.Measure(cs))
}

func (l sizedLayout) Place(size geom.Size, child Measurable) geom.Rect {
	return geom.Rect{Size: size}
}

// Spacer is a leaf element occupying a fixed size. It reports its
// size regardless of the constraint; containers negotiate the
// difference.
type Spacer struct {
	Size geom.Size
}

func (s Spacer) Content() Content {
	return LeafContent(MeasureFunc(func(Constraint) geom.Size {
		return s.Size
	}))
}
