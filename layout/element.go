// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"plankui.org/geom"
)

// Element is a node in a declarative layout tree. An element's
// content describes how it sizes itself and arranges its children;
// what it looks like is the concern of whatever renderer consumes
// the resolved frames.
type Element interface {
	Content() Content
}

// Content is the layout description of an element: a measurable
// leaf, a wrapper around a single child, or a container of several
// children arranged by a Layout.
type Content struct {
	storage storage
}

// A Child pairs a container child with the traits its container
// attached to it.
type Child struct {
	Traits  any
	Element Element
}

// LeafContent returns content for an element with no children whose
// size is computed by m.
func LeafContent(m Measurable) Content {
	return Content{storage: leafStorage{m: m}}
}

// WrapContent returns content for an element with a single child
// sized and placed by l. A nil l sizes the wrapper to the child and
// makes the child fill the wrapper's bounds.
func WrapContent(l WrapLayout, child Element) Content {
	return Content{storage: wrapStorage{layout: l, child: child}}
}

// ContainerContent returns content for an element whose children
// are arranged by l.
func ContainerContent(l Layout, children []Child) Content {
	return Content{storage: containerStorage{layout: l, children: children}}
}

// Container is a generic container element pairing a Layout with a
// list of children. Most callers use the Row, Column or Overlay
// conveniences instead.
type Container struct {
	Layout   Layout
	children []Child
}

// Add appends a child with no traits; the container's layout will
// apply its defaults.
func (c *Container) Add(e Element) {
	c.AddWith(nil, e)
}

// AddWith appends a child carrying the given layout traits.
func (c *Container) AddWith(traits any, e Element) {
	c.children = append(c.children, Child{Traits: traits, Element: e})
}

func (c *Container) Content() Content {
	return ContainerContent(c.Layout, c.children)
}

// A Node is the resolved layout of one element: its attributes in
// its parent's coordinate space and the resolved nodes of its
// children.
type Node struct {
	Element    Element
	Attributes Attributes
	Children   []Node
}

// A Placement couples an element with its attributes composed into
// the root coordinate space.
type Placement struct {
	Element    Element
	Attributes Attributes
	Depth      int
}

// Measure returns the natural size of the element tree rooted at e
// under cs. The measurement cache lives for this call only.
func Measure(e Element, cs Constraint) geom.Size {
	return measureRoot(e.Content(), cs, newCache())
}

// LayoutTree lays out the element tree rooted at e within frame and
// returns the resolved node tree. The measurement cache lives for
// this call only; lay out again after changing the tree.
func LayoutTree(e Element, frame geom.Rect) Node {
	attrs := MakeAttributes(frame)
	attrs.Validate()
	return Node{
		Element:    e,
		Attributes: attrs,
		Children:   e.Content().storage.perform(frame.Size, newCache()),
	}
}

// Walk visits n and every descendant depth first, handing fn each
// element's attributes composed into the root coordinate space.
func (n Node) Walk(fn func(p Placement)) {
	n.walk(fn, n.Attributes, 0)
}

// Placements returns the flattened, root space placements of n and
// every descendant in depth first order.
func (n Node) Placements() []Placement {
	var ps []Placement
	n.Walk(func(p Placement) {
		ps = append(ps, p)
	})
	return ps
}

func (n Node) walk(fn func(p Placement), attrs Attributes, depth int) {
	attrs.Validate()
	fn(Placement{Element: n.Element, Attributes: attrs, Depth: depth})
	for _, child := range n.Children {
		child.walk(fn, child.Attributes.Within(attrs), depth+1)
	}
}

// storage is the closed set of content variants.
type storage interface {
	// measure computes the element's size under cs. Child subtrees
	// measure through subcaches of c.
	measure(cs Constraint, c *cache) geom.Size
	// perform resolves child nodes for an element of the given
	// exact size.
	perform(size geom.Size, c *cache) []Node
}

type leafStorage struct {
	m Measurable
}

func (s leafStorage) measure(cs Constraint, c *cache) geom.Size {
	if s.m == nil {
		return geom.Size{}
	}
	return s.m.Measure(cs)
}

func (s leafStorage) perform(size geom.Size, c *cache) []Node {
	return nil
}

type wrapStorage struct {
	layout WrapLayout
	child  Element
}

func (s wrapStorage) measure(cs Constraint, c *cache) geom.Size {
	proxy := childProxy(s.child, c.sub(0))
	if s.layout == nil {
		return proxy.Measure(cs)
	}
	return s.layout.Measure(cs, proxy)
}

func (s wrapStorage) perform(size geom.Size, c *cache) []Node {
	sub := c.sub(0)
	frame := geom.Rect{Size: size}
	if s.layout != nil {
		frame = s.layout.Place(size, childProxy(s.child, sub))
	}
	return []Node{resolve(s.child, frame, sub)}
}

type containerStorage struct {
	layout   Layout
	children []Child
}

func (s containerStorage) measure(cs Constraint, c *cache) geom.Size {
	return s.layout.Measure(cs, s.items(c))
}

func (s containerStorage) perform(size geom.Size, c *cache) []Node {
	frames := s.layout.Place(size, s.items(c))
	if len(frames) != len(s.children) {
		panic(fmt.Sprintf("layout: %T placed %d frames for %d children", s.layout, len(frames), len(s.children)))
	}
	nodes := make([]Node, len(s.children))
	for i, child := range s.children {
		nodes[i] = resolve(child.Element, frames[i], c.sub(i))
	}
	return nodes
}

func (s containerStorage) items(c *cache) []Item {
	items := make([]Item, len(s.children))
	for i, child := range s.children {
		items[i] = Item{
			Traits:  child.Traits,
			content: childProxy(child.Element, c.sub(i)),
		}
	}
	return items
}

// resolve builds the node for an element assigned the given frame
// in its parent's space.
func resolve(e Element, frame geom.Rect, c *cache) Node {
	attrs := MakeAttributes(frame)
	attrs.Validate()
	return Node{
		Element:    e,
		Attributes: attrs,
		Children:   e.Content().storage.perform(frame.Size, c),
	}
}

// childProxy returns the measurable a parent layout sees for one
// child: the child's content measured through the child's cache.
func childProxy(e Element, c *cache) Measurable {
	content := e.Content()
	return MeasureFunc(func(cs Constraint) geom.Size {
		return c.measure(cs, func(cs Constraint) geom.Size {
			return content.storage.measure(cs, c)
		})
	})
}

func measureRoot(content Content, cs Constraint, c *cache) geom.Size {
	return c.measure(cs, func(cs Constraint) geom.Size {
		return content.storage.measure(cs, c)
	})
}
