// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"plankui.org/geom"
)

// Aligned positions its single child within the container's bounds
// by a fractional anchor. The wrapper's natural size is the
// child's; when the wrapper is assigned a larger frame the child
// floats to the anchor.
type Aligned struct {
	Anchor geom.UnitPoint
	Child  Element
}

// Centered returns an Aligned wrapper anchoring the child at the
// center.
func Centered(child Element) *Aligned {
	return &Aligned{Anchor: geom.Center, Child: child}
}

func (a *Aligned) Content() Content {
	return WrapContent(alignLayout{anchor: a.Anchor}, a.Child)
}

type alignLayout struct {
	anchor geom.UnitPoint
}

func (l alignLayout) Measure(cs Constraint, child Measurable) geom.Size {
	return child.Measure(Constraint{
		Width:  loosen(cs.Width),
		Height: loosen(cs.Height),
	})
}

func (l alignLayout) Place(size geom.Size, child Measurable) geom.Rect {
	sz := child.Measure(Bounded(size))
	return geom.Rect{
		Origin: geom.Pt(
			l.anchor.X*(size.Width-sz.Width),
			l.anchor.Y*(size.Height-sz.Height),
		),
		Size: sz,
	}
}
