// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layoutdoc decodes TOML layout documents into element
trees. A document declares a canvas and a root node; nodes nest
through children arrays:

	[canvas]
	width = 320
	height = 200

	[root]
	kind = "row"
	spacing = 10

	[[root.children]]
	kind = "box"
	width = 50
	height = 50
*/
package layoutdoc

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"plankui.org/geom"
	"plankui.org/layout"
	"plankui.org/unit"
)

// Doc is a decoded layout document.
type Doc struct {
	Canvas Canvas `toml:"canvas"`
	Root   Node   `toml:"root"`
}

// Canvas is the frame the root element is laid out in.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Scale is the device pixel scale used when rendering; zero
	// means one pixel per point.
	Scale float64 `toml:"scale"`
}

// Node is one element declaration. Which fields apply depends on
// Kind; trait fields (grow, shrink, weight, absolute) describe the
// node in its parent's layout.
type Node struct {
	Kind string `toml:"kind"`

	Spacing       float64 `toml:"spacing"`
	LineSpacing   float64 `toml:"line_spacing"`
	Alignment     string  `toml:"alignment"`
	LineAlignment string  `toml:"line_alignment"`
	Underflow     string  `toml:"underflow"`
	Overflow      string  `toml:"overflow"`

	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Inset  float64 `toml:"inset"`
	Anchor string  `toml:"anchor"`

	Grow     *float64 `toml:"grow"`
	Shrink   *float64 `toml:"shrink"`
	Weight   float64  `toml:"weight"`
	Absolute *float64 `toml:"absolute"`

	Children []Node `toml:"children"`
}

// Parse decodes a TOML layout document.
func Parse(data []byte) (*Doc, error) {
	var d Doc
	if err := toml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("layoutdoc: decode: %w", err)
	}
	if d.Canvas.Width <= 0 || d.Canvas.Height <= 0 {
		return nil, fmt.Errorf("layoutdoc: canvas must have positive width and height, got %gx%g",
			d.Canvas.Width, d.Canvas.Height)
	}
	return &d, nil
}

// Frame returns the canvas rectangle.
func (d *Doc) Frame() geom.Rect {
	return geom.Rc(0, 0, d.Canvas.Width, d.Canvas.Height)
}

// Metric returns the canvas device metric.
func (d *Doc) Metric() unit.Metric {
	return unit.Metric{Scale: d.Canvas.Scale}
}

// Build converts the document's node tree into an element tree.
func (d *Doc) Build() (layout.Element, error) {
	return buildNode(d.Root, "root")
}

func buildNode(n Node, path string) (layout.Element, error) {
	switch n.Kind {
	case "row":
		row := &layout.Row{
			Spacing:           n.Spacing,
			Underflow:         underflow(n.Underflow),
			Overflow:          overflow(n.Overflow),
			VerticalAlignment: alignment(n.Alignment),
		}
		for i, c := range n.Children {
			child, err := buildNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			row.AddWith(stackTraits(c), child)
		}
		return row, nil

	case "column":
		col := &layout.Column{
			Spacing:             n.Spacing,
			Underflow:           underflow(n.Underflow),
			Overflow:            overflow(n.Overflow),
			HorizontalAlignment: alignment(n.Alignment),
		}
		for i, c := range n.Children {
			child, err := buildNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			col.AddWith(stackTraits(c), child)
		}
		return col, nil

	case "flow":
		flow := &layout.Container{Layout: layout.Flow{
			LineAlignment: alignment(n.LineAlignment),
			ItemAlignment: alignment(n.Alignment),
			ItemSpacing:   n.Spacing,
			LineSpacing:   n.LineSpacing,
		}}
		for i, c := range n.Children {
			child, err := buildNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			var t layout.FlowTraits
			if c.Grow != nil {
				t.GrowPriority = *c.Grow
			}
			flow.AddWith(t, child)
		}
		return flow, nil

	case "grid":
		grid := &layout.Container{Layout: layout.GridRow{
			Spacing:           n.Spacing,
			VerticalAlignment: alignment(n.Alignment),
		}}
		for i, c := range n.Children {
			child, err := buildNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			var t layout.GridRowTraits
			switch {
			case c.Absolute != nil:
				t.Width = layout.AbsoluteWidth(*c.Absolute)
			case c.Weight > 0:
				t.Width = layout.ProportionalWidth(c.Weight)
			}
			grid.AddWith(t, child)
		}
		return grid, nil

	case "overlay":
		overlay := &layout.Overlay{}
		for i, c := range n.Children {
			child, err := buildNode(c, childPath(path, i))
			if err != nil {
				return nil, err
			}
			overlay.Add(child)
		}
		return overlay, nil

	case "inset":
		child, err := soleChild(n, path)
		if err != nil {
			return nil, err
		}
		return layout.UniformInset(n.Inset, child), nil

	case "aligned":
		child, err := soleChild(n, path)
		if err != nil {
			return nil, err
		}
		a, err := anchor(n.Anchor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return &layout.Aligned{Anchor: a, Child: child}, nil

	case "sized":
		child, err := soleChild(n, path)
		if err != nil {
			return nil, err
		}
		s := &layout.Sized{Child: child}
		if n.Width > 0 {
			s.Width = layout.Exact(n.Width)
		}
		if n.Height > 0 {
			s.Height = layout.Exact(n.Height)
		}
		return s, nil

	case "box", "spacer":
		return layout.Spacer{Size: geom.Sz(n.Width, n.Height)}, nil

	case "":
		return nil, fmt.Errorf("layoutdoc: %s: missing kind", path)
	default:
		return nil, fmt.Errorf("layoutdoc: %s: unknown kind %q", path, n.Kind)
	}
}

func soleChild(n Node, path string) (layout.Element, error) {
	if len(n.Children) != 1 {
		return nil, fmt.Errorf("layoutdoc: %s: kind %q requires exactly one child, got %d",
			path, n.Kind, len(n.Children))
	}
	return buildNode(n.Children[0], childPath(path, 0))
}

func childPath(path string, i int) string {
	return fmt.Sprintf("%s.children[%d]", path, i)
}

func stackTraits(n Node) layout.StackTraits {
	if n.Grow == nil && n.Shrink == nil {
		return layout.Flexible
	}
	var t layout.StackTraits
	if n.Grow != nil {
		t.GrowPriority = *n.Grow
	}
	if n.Shrink != nil {
		t.ShrinkPriority = *n.Shrink
	}
	return t
}

func alignment(s string) layout.Alignment {
	switch s {
	case "leading", "top", "left":
		return layout.Leading
	case "center":
		return layout.Center
	case "trailing", "bottom", "right":
		return layout.Trailing
	default:
		return layout.Fill
	}
}

func underflow(s string) layout.Underflow {
	switch s {
	case "grow-proportionally":
		return layout.GrowProportionally
	case "grow-uniformly":
		return layout.GrowUniformly
	case "justify-start":
		return layout.JustifyStart
	case "justify-center":
		return layout.JustifyCenter
	case "justify-end":
		return layout.JustifyEnd
	default:
		return layout.SpaceEvenly
	}
}

func overflow(s string) layout.Overflow {
	switch s {
	case "condense-uniformly":
		return layout.CondenseUniformly
	default:
		return layout.CondenseProportionally
	}
}

func anchor(s string) (geom.UnitPoint, error) {
	switch s {
	case "top-leading":
		return geom.TopLeading, nil
	case "top":
		return geom.Top, nil
	case "top-trailing":
		return geom.TopTrailing, nil
	case "leading":
		return geom.Leading, nil
	case "center", "":
		return geom.Center, nil
	case "trailing":
		return geom.Trailing, nil
	case "bottom-leading":
		return geom.BottomLeading, nil
	case "bottom":
		return geom.Bottom, nil
	case "bottom-trailing":
		return geom.BottomTrailing, nil
	default:
		return geom.UnitPoint{}, fmt.Errorf("unknown anchor %q", s)
	}
}
