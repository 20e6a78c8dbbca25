// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"plankui.org/geom"
)

// Overlay stacks children on top of each other in declaration
// order. Its natural size is the union of the children's natural
// sizes; every child fills the overlay's bounds.
type Overlay struct {
	children []Child
}

// Add appends a child above the previously added children.
func (o *Overlay) Add(e Element) {
	o.children = append(o.children, Child{Element: e})
}

func (o *Overlay) Content() Content {
	return ContainerContent(overlayLayout{}, o.children)
}

type overlayLayout struct{}

func (overlayLayout) Measure(cs Constraint, items []Item) geom.Size {
	var sz geom.Size
	for _, it := range items {
		sz = sz.Union(it.Measure(cs))
	}
	return sz
}

func (overlayLayout) Place(size geom.Size, items []Item) []geom.Rect {
	frames := make([]geom.Rect, len(items))
	for i := range frames {
		frames[i] = geom.Rect{Size: size}
	}
	return frames
}
