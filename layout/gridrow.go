// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"plankui.org/geom"
)

// GridRow lays out children in a single horizontal row whose
// columns are either absolutely sized or split the remaining width
// proportionally by weight.
type GridRow struct {
	// Spacing is the horizontal spacing between columns.
	Spacing float64
	// VerticalAlignment positions each child within the row
	// height. Fill stretches the child to the row height.
	VerticalAlignment Alignment
}

// GridWidth is the sizing rule for one grid row column: a fixed
// number of points or a proportional weight. The zero value
// defaults to proportional weight 1.
type GridWidth struct {
	mode  gridWidthMode
	value float64
}

type gridWidthMode uint8

const (
	gridDefault gridWidthMode = iota
	gridAbsolute
	gridProportional
)

// AbsoluteWidth returns the rule for a column of exactly pts
// points. A negative or non-finite pts panics.
func AbsoluteWidth(pts float64) GridWidth {
	checkBound(pts)
	return GridWidth{mode: gridAbsolute, value: pts}
}

// ProportionalWidth returns the rule for a column taking weight
// shares of the width remaining after absolute columns and
// spacing. A non-positive or non-finite weight panics: zero and
// negative weights indicate a bug in element composition.
func ProportionalWidth(weight float64) GridWidth {
	if !(weight > 0) {
		panic(fmt.Sprintf("layout: non-positive grid weight %g", weight))
	}
	checkBound(weight)
	return GridWidth{mode: gridProportional, value: weight}
}

func (w GridWidth) isProportional() bool {
	return w.mode != gridAbsolute
}

// weight returns the proportional weight, substituting the default.
func (w GridWidth) weight() float64 {
	if w.mode == gridDefault {
		return 1
	}
	return w.value
}

// GridRowTraits is the per child metadata a GridRow reads. A child
// whose traits are absent or of another type defaults to
// proportional weight 1.
type GridRowTraits struct {
	Width GridWidth
}

// Measure implements Layout. The row's width is the sum of the
// resolved column widths plus spacing; its height is the tallest
// child.
func (g GridRow) Measure(cs Constraint, items []Item) geom.Size {
	if len(items) == 0 {
		return geom.Size{}
	}
	widths, heights := g.columns(cs, items)
	var w, h float64
	for i := range widths {
		w += widths[i]
		if heights[i] > h {
			h = heights[i]
		}
	}
	w += g.Spacing * float64(len(widths)-1)
	return geom.Size{Width: w, Height: cs.Height.Clamp(h)}
}

// Place implements Layout.
func (g GridRow) Place(size geom.Size, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	widths, heights := g.columns(Exactly(size), items)
	frames := make([]geom.Rect, len(items))
	var x float64
	for i := range items {
		y, h := 0.0, heights[i]
		switch g.VerticalAlignment {
		case Fill:
			h = size.Height
		case Center:
			y = (size.Height - h) / 2
		case Trailing:
			y = size.Height - h
		}
		frames[i] = geom.Rc(x, y, widths[i], h)
		x += widths[i] + g.Spacing
	}
	return frames
}

// columns resolves the width and measured height of every column.
// Absolute columns measure first at their fixed widths. With a
// bounded row width the proportional columns then split the
// non-negative remainder by weight; with an unbounded width they
// are measured unconstrained and scaled so every column gets at
// least its natural width while preserving the weight ratios.
func (g GridRow) columns(cs Constraint, items []Item) (widths, heights []float64) {
	n := len(items)
	widths = make([]float64, n)
	heights = make([]float64, n)
	rules := make([]GridWidth, n)
	heightLimit := loosen(cs.Height)

	var absSum, weightSum float64
	proportionals := 0
	for i, it := range items {
		rules[i] = gridRowTraits(it).Width
		if rules[i].isProportional() {
			weightSum += rules[i].weight()
			proportionals++
			continue
		}
		widths[i] = rules[i].value
		sz := items[i].Measure(Constraint{Width: AtMost(widths[i]), Height: heightLimit})
		heights[i] = sz.Height
		absSum += widths[i]
	}
	if proportionals == 0 {
		return widths, heights
	}

	if bound, ok := cs.Width.Bound(); ok {
		available := bound - absSum - g.Spacing*float64(n-1)
		if available < 0 {
			available = 0
		}
		for i := range items {
			if !rules[i].isProportional() {
				continue
			}
			widths[i] = available * rules[i].weight() / weightSum
			sz := items[i].Measure(Constraint{Width: Exact(widths[i]), Height: heightLimit})
			heights[i] = sz.Height
		}
		return widths, heights
	}

	// Unbounded width: find the scale at which the neediest column
	// still fits its natural size.
	var scale float64
	for i := range items {
		if !rules[i].isProportional() {
			continue
		}
		natural := items[i].Measure(Constraint{Height: heightLimit})
		if s := natural.Width / rules[i].weight(); s > scale {
			scale = s
		}
	}
	for i := range items {
		if !rules[i].isProportional() {
			continue
		}
		widths[i] = scale * rules[i].weight()
		sz := items[i].Measure(Constraint{Width: Exact(widths[i]), Height: heightLimit})
		heights[i] = sz.Height
	}
	return widths, heights
}

func gridRowTraits(it Item) GridRowTraits {
	t, _ := it.Traits.(GridRowTraits)
	return t
}
