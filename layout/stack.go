// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"plankui.org/geom"
)

// Stack is the one dimensional flex algorithm shared by horizontal
// and vertical containers. Children are measured along the stack
// axis, leftover or missing space is distributed according to the
// children's grow and shrink priorities, and the cross axis is
// resolved by alignment.
type Stack struct {
	// Axis is the stack direction.
	Axis Axis
	// MinimumSpacing is inserted between adjacent items, never
	// before the first or after the last.
	MinimumSpacing float64
	// Underflow selects how extra space is used when the children's
	// natural sizes fall short of an exact target.
	Underflow Underflow
	// Overflow selects how children are condensed when their
	// natural sizes exceed the available space.
	Overflow Overflow
	// Alignment positions children along the cross axis.
	Alignment Alignment
}

// Underflow is a Stack's distribution mode for extra axis space.
type Underflow uint8

const (
	// SpaceEvenly keeps natural sizes and widens the spacing
	// between items to consume the extra space.
	SpaceEvenly Underflow = iota
	// GrowProportionally distributes extra space weighted by each
	// child's grow priority scaled by its share of the total basis.
	GrowProportionally
	// GrowUniformly distributes extra space weighted by grow
	// priority alone.
	GrowUniformly
	// JustifyStart packs children at the start, leaving the extra
	// space at the end.
	JustifyStart
	// JustifyCenter packs children centered in the available space.
	JustifyCenter
	// JustifyEnd packs children at the end.
	JustifyEnd
)

// Overflow is a Stack's condensing mode for missing axis space.
type Overflow uint8

const (
	// CondenseProportionally removes space weighted by each child's
	// shrink priority scaled by its share of the total basis.
	CondenseProportionally Overflow = iota
	// CondenseUniformly removes space weighted by shrink priority
	// alone.
	CondenseUniformly
)

// StackTraits is the per child metadata a Stack reads. A child
// whose traits are absent or of another type defaults to grow and
// shrink priority 1.
type StackTraits struct {
	// GrowPriority weights the child's share of extra space. Zero
	// means the child never grows. Must be non-negative.
	GrowPriority float64
	// ShrinkPriority weights the child's share of removed space.
	// Zero means the child never shrinks. Must be non-negative.
	ShrinkPriority float64
	// Guide overrides the child's cross axis alignment guide: given
	// the child's measured cross extent, it returns the coordinate
	// within that extent to align with the other children's guides.
	// Nil uses the anchor implied by the stack's Alignment.
	Guide func(cross float64) float64
}

// Fixed are the traits of a child that neither grows nor shrinks.
var Fixed = StackTraits{}

// Flexible are the default traits: the child both grows and
// shrinks with priority 1.
var Flexible = StackTraits{GrowPriority: 1, ShrinkPriority: 1}

// Measure implements Layout. The stack's natural axis extent is the
// sum of its children's basis sizes plus spacing, condensed if the
// constraint bounds it; the cross extent is the union of the
// aligned children.
func (s Stack) Measure(cs Constraint, items []Item) geom.Size {
	if len(items) == 0 {
		return geom.Size{}
	}
	main, cross := s.solve(cs, items)
	var mainEnd, crossEnd float64
	for i := range main {
		if e := main[i].end(); e > mainEnd {
			mainEnd = e
		}
		if e := cross[i].end(); e > crossEnd {
			crossEnd = e
		}
	}
	return axisSize(s.Axis,
		cs.On(s.Axis).Clamp(mainEnd),
		cs.On(s.Axis.cross()).Clamp(crossEnd),
	)
}

// Place implements Layout.
func (s Stack) Place(size geom.Size, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	main, cross := s.solve(Exactly(size), items)
	frames := make([]geom.Rect, len(items))
	for i := range frames {
		frames[i] = axisRect(s.Axis, main[i], cross[i])
	}
	return frames
}

func (s Stack) solve(cs Constraint, items []Item) (main, cross []segment) {
	traits := make([]StackTraits, len(items))
	for i := range items {
		traits[i] = stackTraits(items[i])
	}
	basis := s.measureBasis(cs, items, traits)
	main = s.distribute(cs, basis, traits)
	cross = s.alignCross(cs, items, traits, main)
	return main, cross
}

// measureBasis computes each child's natural axis size. Fixed
// children (zero grow and shrink) measure first against the full
// axis bound; flexible children then share whatever the fixed
// children and the spacing left over, each measured against that
// same leftover bound rather than a pre-divided share.
func (s Stack) measureBasis(cs Constraint, items []Item, traits []StackTraits) []float64 {
	mainLimit := loosen(cs.On(s.Axis))
	childCS := cs.
		With(s.Axis, mainLimit).
		With(s.Axis.cross(), loosen(cs.On(s.Axis.cross())))

	basis := make([]float64, len(items))
	var fixedSum float64
	for i, it := range items {
		if traits[i].GrowPriority == 0 && traits[i].ShrinkPriority == 0 {
			basis[i] = axisMain(s.Axis, it.Measure(childCS))
			fixedSum += basis[i]
		}
	}

	flexCS := childCS
	if bound, ok := mainLimit.Bound(); ok {
		remaining := bound - fixedSum - s.MinimumSpacing*float64(len(items)-1)
		if remaining < 0 {
			remaining = 0
		}
		flexCS = childCS.With(s.Axis, AtMost(remaining))
	}
	for i, it := range items {
		if traits[i].GrowPriority != 0 || traits[i].ShrinkPriority != 0 {
			basis[i] = axisMain(s.Axis, it.Measure(flexCS))
		}
	}
	return basis
}

// distribute resolves the axis segments: natural packing when the
// basis fits a non-exact bound, condensing on overflow and the
// configured underflow mode otherwise.
func (s Stack) distribute(cs Constraint, basis []float64, traits []StackTraits) []segment {
	n := len(basis)
	mags := make([]float64, n)
	var total float64
	for i, b := range basis {
		mags[i] = b
		total += b
	}
	totalSpacing := s.MinimumSpacing * float64(n-1)

	mainLimit := cs.On(s.Axis)
	var target float64
	switch bound, ok := mainLimit.Bound(); {
	case mainLimit.IsExact():
		target = bound
	case ok && total+totalSpacing > bound:
		// Natural sizes overflow an AtMost bound; condense to it.
		target = bound
	default:
		// Unconstrained, or the children fit naturally: no
		// stretching, pack with minimum spacing.
		return pack(mags, 0, s.MinimumSpacing)
	}

	extra := target - total - totalSpacing
	switch {
	case extra < 0:
		weights := condenseWeights(s.Overflow, traits, mags, total)
		for i := range mags {
			mags[i] += weights[i] * extra
			if mags[i] < 0 {
				mags[i] = 0
			}
		}
		return pack(mags, 0, s.MinimumSpacing)
	case extra == 0:
		return pack(mags, 0, s.MinimumSpacing)
	}

	switch s.Underflow {
	case GrowProportionally, GrowUniformly:
		weights := growWeights(s.Underflow, traits, mags, total)
		for i := range mags {
			mags[i] += weights[i] * extra
			if mags[i] < 0 {
				mags[i] = 0
			}
		}
		return pack(mags, 0, s.MinimumSpacing)
	case SpaceEvenly:
		if n > 1 {
			return pack(mags, 0, (target-total)/float64(n-1))
		}
		return pack(mags, 0, s.MinimumSpacing)
	case JustifyStart:
		return pack(mags, 0, s.MinimumSpacing)
	case JustifyCenter:
		return pack(mags, extra/2, s.MinimumSpacing)
	case JustifyEnd:
		return pack(mags, extra, s.MinimumSpacing)
	default:
		panic("unreachable")
	}
}

// alignCross measures each child's cross extent at its allocated
// axis size and resolves the cross segments by alignment.
func (s Stack) alignCross(cs Constraint, items []Item, traits []StackTraits, main []segment) []segment {
	crossAxis := s.Axis.cross()
	crossLimit := cs.On(crossAxis)
	n := len(items)

	sizes := make([]float64, n)
	for i, it := range items {
		ccs := cs.
			With(s.Axis, AtMost(main[i].magnitude)).
			With(crossAxis, loosen(crossLimit))
		sizes[i] = axisCross(s.Axis, it.Measure(ccs))
	}

	segs := make([]segment, n)
	if s.Alignment == Fill {
		var maxCross float64
		for _, c := range sizes {
			if c > maxCross {
				maxCross = c
			}
		}
		avail := crossLimit.Clamp(maxCross)
		for i := range segs {
			segs[i] = segment{origin: 0, magnitude: avail}
		}
		return segs
	}

	// Guide based alignment: each child contributes a guide value
	// within its own extent. The union of the guide-relative
	// extents forms a normalized bound which is aligned as a whole;
	// each child then sits at the common guide line minus its own
	// guide value.
	anchor := s.Alignment.anchor()
	guides := make([]float64, n)
	maxGuide := guideValue(traits[0], anchor, sizes[0])
	maxRest := sizes[0] - maxGuide
	guides[0] = maxGuide
	for i := 1; i < n; i++ {
		g := guideValue(traits[i], anchor, sizes[i])
		guides[i] = g
		if g > maxGuide {
			maxGuide = g
		}
		if rest := sizes[i] - g; rest > maxRest {
			maxRest = rest
		}
	}
	extent := maxGuide + maxRest
	avail := crossLimit.Clamp(extent)
	line := anchor*(avail-extent) + maxGuide
	for i := range segs {
		segs[i] = segment{origin: line - guides[i], magnitude: sizes[i]}
	}
	return segs
}

// pack lays segments head to tail starting at first with the given
// spacing between them.
func pack(mags []float64, first, spacing float64) []segment {
	segs := make([]segment, len(mags))
	origin := first
	for i, m := range mags {
		segs[i] = segment{origin: origin, magnitude: m}
		origin += m + spacing
	}
	return segs
}

// condenseWeights returns the normalized shrink weight per child.
// A zero weight total falls back to uniform distribution.
func condenseWeights(mode Overflow, traits []StackTraits, mags []float64, total float64) []float64 {
	w := make([]float64, len(mags))
	var sum float64
	for i, t := range traits {
		share := 1.0
		if mode == CondenseProportionally && total > 0 {
			share = mags[i] / total
		}
		w[i] = share * t.ShrinkPriority
		sum += w[i]
	}
	normalize(w, sum)
	return w
}

// growWeights returns the normalized grow weight per child.
func growWeights(mode Underflow, traits []StackTraits, mags []float64, total float64) []float64 {
	w := make([]float64, len(mags))
	var sum float64
	for i, t := range traits {
		share := 1.0
		if mode == GrowProportionally && total > 0 {
			share = mags[i] / total
		}
		w[i] = share * t.GrowPriority
		sum += w[i]
	}
	normalize(w, sum)
	return w
}

func normalize(w []float64, sum float64) {
	if sum == 0 {
		for i := range w {
			w[i] = 1 / float64(len(w))
		}
		return
	}
	for i := range w {
		w[i] /= sum
	}
}

func guideValue(t StackTraits, anchor, cross float64) float64 {
	if t.Guide != nil {
		return t.Guide(cross)
	}
	return anchor * cross
}

// anchor maps a cross alignment to its fractional anchor. Fill has
// no anchor and never reaches here.
func (al Alignment) anchor() float64 {
	switch al {
	case Leading:
		return 0
	case Center:
		return 0.5
	case Trailing:
		return 1
	default:
		panic("unreachable")
	}
}

func stackTraits(it Item) StackTraits {
	t, ok := it.Traits.(StackTraits)
	if !ok {
		return Flexible
	}
	if t.GrowPriority < 0 || t.ShrinkPriority < 0 {
		panic(fmt.Sprintf("layout: negative stack priority %+v", t))
	}
	return t
}

// Row is a container element that arranges its children
// horizontally with a Stack.
type Row struct {
	// Spacing is the minimum spacing between adjacent children.
	Spacing float64
	// Underflow and Overflow select the Stack distribution modes.
	Underflow Underflow
	Overflow  Overflow
	// VerticalAlignment positions children along the cross axis.
	VerticalAlignment Alignment

	children []Child
}

// Add appends a flexible child.
func (r *Row) Add(e Element) {
	r.AddWith(Flexible, e)
}

// AddFixed appends a child that keeps its natural width.
func (r *Row) AddFixed(e Element) {
	r.AddWith(Fixed, e)
}

// AddWith appends a child with explicit stack traits.
func (r *Row) AddWith(t StackTraits, e Element) {
	r.children = append(r.children, Child{Traits: t, Element: e})
}

func (r *Row) Content() Content {
	return ContainerContent(Stack{
		Axis:           Horizontal,
		MinimumSpacing: r.Spacing,
		Underflow:      r.Underflow,
		Overflow:       r.Overflow,
		Alignment:      r.VerticalAlignment,
	}, r.children)
}

// Column is a container element that arranges its children
// vertically with a Stack.
type Column struct {
	// Spacing is the minimum spacing between adjacent children.
	Spacing float64
	// Underflow and Overflow select the Stack distribution modes.
	Underflow Underflow
	Overflow  Overflow
	// HorizontalAlignment positions children along the cross axis.
	HorizontalAlignment Alignment

	children []Child
}

// Add appends a flexible child.
func (c *Column) Add(e Element) {
	c.AddWith(Flexible, e)
}

// AddFixed appends a child that keeps its natural height.
func (c *Column) AddFixed(e Element) {
	c.AddWith(Fixed, e)
}

// AddWith appends a child with explicit stack traits.
func (c *Column) AddWith(t StackTraits, e Element) {
	c.children = append(c.children, Child{Traits: t, Element: e})
}

func (c *Column) Content() Content {
	return ContainerContent(Stack{
		Axis:           Vertical,
		MinimumSpacing: c.Spacing,
		Underflow:      c.Underflow,
		Overflow:       c.Overflow,
		Alignment:      c.HorizontalAlignment,
	}, c.children)
}

func (u Underflow) String() string {
	switch u {
	case SpaceEvenly:
		return "SpaceEvenly"
	case GrowProportionally:
		return "GrowProportionally"
	case GrowUniformly:
		return "GrowUniformly"
	case JustifyStart:
		return "JustifyStart"
	case JustifyCenter:
		return "JustifyCenter"
	case JustifyEnd:
		return "JustifyEnd"
	default:
		panic("unreachable")
	}
}

func (o Overflow) String() string {
	switch o {
	case CondenseProportionally:
		return "CondenseProportionally"
	case CondenseUniformly:
		return "CondenseUniformly"
	default:
		panic("unreachable")
	}
}
