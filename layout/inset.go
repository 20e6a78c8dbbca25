// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"plankui.org/geom"
)

// Inset adds space around a single child. The child's constraint
// shrinks by the insets, clamping at zero when the insets consume
// the whole available space.
type Inset struct {
	Top, Right, Bottom, Left float64
	Child                    Element
}

// UniformInset returns an Inset with the same inset applied to all
// edges.
func UniformInset(v float64, child Element) *Inset {
	return &Inset{Top: v, Right: v, Bottom: v, Left: v, Child: child}
}

func (in *Inset) Content() Content {
	return WrapContent(insetLayout{
		top: in.Top, right: in.Right, bottom: in.Bottom, left: in.Left,
	}, in.Child)
}

type insetLayout struct {
	top, right, bottom, left float64
}

func (l insetLayout) Measure(cs Constraint, child Measurable) geom.Size {
	sz := child.Measure(cs.Inset(l.left+l.right, l.top+l.bottom))
	return geom.Size{
		Width:  sz.Width + l.left + l.right,
		Height: sz.Height + l.top + l.bottom,
	}
}

func (l insetLayout) Place(size geom.Size, child Measurable) geom.Rect {
	w := size.Width - l.left - l.right
	h := size.Height - l.top - l.bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return geom.Rc(l.left, l.top, w, h)
}
