// SPDX-License-Identifier: Unlicense OR MIT

/*
Package frameviz renders resolved layout trees for inspection: as
a raster image with one labeled box per element, or as an indented
textual dump. It is a development aid, not a production renderer.
*/
package frameviz

import (
	"fmt"
	"reflect"
	"strings"

	"plankui.org/geom"
	"plankui.org/layout"
)

// A Line is one element of the flattened tree dump.
type Line struct {
	Depth int
	Name  string
	Frame geom.Rect
	// Hidden mirrors the resolved attribute so callers can style
	// suppressed elements differently.
	Hidden bool
}

// Lines flattens the resolved tree into dump lines, one per
// element, in depth first order with root space frames.
func Lines(root layout.Node) []Line {
	var lines []Line
	root.Walk(func(p layout.Placement) {
		lines = append(lines, Line{
			Depth:  p.Depth,
			Name:   ElementName(p.Element),
			Frame:  p.Attributes.Frame,
			Hidden: p.Attributes.Hidden,
		})
	})
	return lines
}

// Tree returns the plain text dump of the resolved tree.
func Tree(root layout.Node) string {
	var b strings.Builder
	for _, l := range Lines(root) {
		fmt.Fprintf(&b, "%s%s %v\n", strings.Repeat("  ", l.Depth), l.Name, l.Frame)
	}
	return b.String()
}

// ElementName returns a short display name for an element: its
// type name without package path or pointer marker.
func ElementName(e layout.Element) string {
	if n, ok := e.(interface{ LayoutName() string }); ok {
		return n.LayoutName()
	}
	t := reflect.TypeOf(e)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
