// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"plankui.org/geom"
)

// Attributes are the resolved placement of one element: its frame,
// an optional transform applied around the frame's center, and the
// presentation values a renderer consumes.
type Attributes struct {
	// Frame is the element's rectangle in its parent's coordinate
	// space.
	Frame geom.Rect
	// Transform is applied around the center of Frame.
	Transform geom.Affine2D
	// Alpha is the element's opacity in [0, 1].
	Alpha float64
	// Hidden removes the element and its subtree from presentation
	// without affecting layout.
	Hidden bool
	// Interactive reports whether the element receives input.
	Interactive bool
}

// MakeAttributes returns the default attributes for the given
// frame: identity transform, fully opaque, visible and interactive.
func MakeAttributes(frame geom.Rect) Attributes {
	return Attributes{
		Frame:       frame,
		Alpha:       1,
		Interactive: true,
	}
}

// Within expresses a, given in parent's coordinate space, in the
// space parent itself is expressed in. The child's center is mapped
// through the parent's transform around the parent's center, frames
// translate by the parent's origin, transforms concatenate, alphas
// multiply and hidden flags accumulate. Composition is associative,
// so deeply nested frames resolve identically regardless of
// traversal order.
func (a Attributes) Within(parent Attributes) Attributes {
	r := a

	pc := geom.Pt(parent.Frame.Size.Width/2, parent.Frame.Size.Height/2)
	c := geom.Pt(
		a.Frame.Origin.X+a.Frame.Size.Width/2,
		a.Frame.Origin.Y+a.Frame.Size.Height/2,
	)
	c = parent.Transform.Transform(c.Sub(pc)).Add(pc).Add(parent.Frame.Origin)
	r.Frame.Origin = c.Sub(geom.Pt(a.Frame.Size.Width/2, a.Frame.Size.Height/2))

	r.Transform = parent.Transform.Mul(a.Transform)
	r.Alpha = a.Alpha * parent.Alpha
	r.Hidden = a.Hidden || parent.Hidden
	r.Interactive = a.Interactive && parent.Interactive
	return r
}

// Validate panics if any attribute is non-finite or the frame size
// is negative. Invalid attributes indicate a bug in element
// composition; clamping them silently would hide it.
func (a Attributes) Validate() {
	if !a.Frame.Origin.Finite() {
		panic(fmt.Sprintf("layout: non-finite frame origin %v", a.Frame.Origin))
	}
	if !a.Frame.Size.Valid() {
		panic(fmt.Sprintf("layout: invalid frame size %v", a.Frame.Size))
	}
	if !a.Transform.Finite() {
		panic(fmt.Sprintf("layout: non-finite transform %v", a.Transform))
	}
	if math.IsInf(a.Alpha, 0) || math.IsNaN(a.Alpha) {
		panic(fmt.Sprintf("layout: non-finite alpha %g", a.Alpha))
	}
}
