// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"plankui.org/geom"
)

// Flow lays out children in horizontal lines, wrapping to a new
// line whenever the next child does not fit the available width. A
// line always contains at least one child, so a child wider than
// the available width occupies a line of its own.
type Flow struct {
	// LineAlignment positions each line's children within the
	// available width: Leading, Center or Trailing. Fill behaves
	// like Leading; lines are widened by growing children instead,
	// see FlowTraits.
	LineAlignment Alignment
	// ItemAlignment positions each child vertically within its
	// line: Fill stretches to the line height.
	ItemAlignment Alignment
	// ItemSpacing is the horizontal spacing between children in a
	// line.
	ItemSpacing float64
	// LineSpacing is the vertical spacing between lines.
	LineSpacing float64
}

// FlowTraits is the per child metadata a Flow reads. A child whose
// traits are absent or of another type never grows.
type FlowTraits struct {
	// GrowPriority lets the child absorb leftover line width,
	// proportionally to its priority scaled by its measured width.
	// When any child in a line grows, the line's alignment offset
	// is zero and the leftover is consumed by the growers instead.
	// Must be non-negative.
	GrowPriority float64
}

// Measure implements Layout. The flow's size is the bounding box
// of all placed frames.
func (f Flow) Measure(cs Constraint, items []Item) geom.Size {
	if len(items) == 0 {
		return geom.Size{}
	}
	var sz geom.Size
	for _, frame := range f.frames(cs, items) {
		max := frame.Max()
		if max.X > sz.Width {
			sz.Width = max.X
		}
		if max.Y > sz.Height {
			sz.Height = max.Y
		}
	}
	return sz
}

// Place implements Layout.
func (f Flow) Place(size geom.Size, items []Item) []geom.Rect {
	if len(items) == 0 {
		return nil
	}
	return f.frames(Exactly(size), items)
}

// A line is the row accumulator of the greedy packing loop.
type line struct {
	first, count int
	width        float64
	height       float64
}

func (f Flow) frames(cs Constraint, items []Item) []geom.Rect {
	// Children are measured independently against the full
	// available constraint, not against the line's remaining width.
	childCS := Constraint{
		Width:  loosen(cs.Width),
		Height: loosen(cs.Height),
	}
	sizes := make([]geom.Size, len(items))
	for i, it := range items {
		sizes[i] = it.Measure(childCS)
	}

	bound, bounded := cs.Width.Bound()
	frames := make([]geom.Rect, len(items))
	var y float64
	cur := line{}
	for i, sz := range sizes {
		if cur.count > 0 {
			next := cur.width + f.ItemSpacing + sz.Width
			if bounded && next > bound {
				f.closeLine(cur, y, bound, bounded, items, sizes, frames)
				y += cur.height + f.LineSpacing
				cur = line{first: i}
			}
		}
		if cur.count > 0 {
			cur.width += f.ItemSpacing
		}
		cur.width += sz.Width
		if sz.Height > cur.height {
			cur.height = sz.Height
		}
		cur.count++
	}
	f.closeLine(cur, y, bound, bounded, items, sizes, frames)
	return frames
}

// closeLine resolves the frames of one finished line.
func (f Flow) closeLine(l line, y, bound float64, bounded bool, items []Item, sizes []geom.Size, frames []geom.Rect) {
	end := l.first + l.count
	widths := make([]float64, l.count)
	var growSum float64
	for i := l.first; i < end; i++ {
		widths[i-l.first] = sizes[i].Width
		growSum += flowTraits(items[i]).GrowPriority * sizes[i].Width
	}

	var offset float64
	if bounded {
		leftover := bound - l.width
		switch {
		case leftover <= 0:
			// Either the line is full or it holds a single
			// oversized child; nothing to distribute.
		case growSum > 0:
			// Growing children absorb the leftover; no alignment
			// offset applies.
			for i := l.first; i < end; i++ {
				w := flowTraits(items[i]).GrowPriority * sizes[i].Width
				widths[i-l.first] += leftover * w / growSum
			}
		default:
			switch f.LineAlignment {
			case Center:
				offset = leftover / 2
			case Trailing:
				offset = leftover
			}
		}
	}

	x := offset
	for i := l.first; i < end; i++ {
		w := widths[i-l.first]
		iy, ih := y, sizes[i].Height
		switch f.ItemAlignment {
		case Fill:
			ih = l.height
		case Center:
			iy += (l.height - ih) / 2
		case Trailing:
			iy += l.height - ih
		}
		frames[i] = geom.Rc(x, iy, w, ih)
		x += w + f.ItemSpacing
	}
}

func flowTraits(it Item) FlowTraits {
	t, ok := it.Traits.(FlowTraits)
	if !ok {
		return FlowTraits{}
	}
	if t.GrowPriority < 0 {
		panic(fmt.Sprintf("layout: negative flow priority %+v", t))
	}
	return t
}
