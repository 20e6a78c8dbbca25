// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom provides the float64 geometry used by the layout
engine: points, sizes, rectangles, fractional anchors and affine
transforms.

The coordinate space has the origin in the top left corner with
the axes extending right and down.
*/
package geom

import (
	"fmt"
	"math"
)

// A Point is a two dimensional point.
type Point struct {
	X, Y float64
}

// A Size is a width and height pair. Sizes produced by a completed
// measurement are always finite and non-negative.
type Size struct {
	Width, Height float64
}

// A Rect is an axis aligned rectangle described by its top left
// origin and its size.
type Rect struct {
	Origin Point
	Size   Size
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sz returns the size (w, h).
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

// Rc returns the rectangle with origin (x, y) and size (w, h).
func Rc(x, y, w, h float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Add returns the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Finite reports whether both coordinates are finite numbers.
func (p Point) Finite() bool {
	return finite(p.X) && finite(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Valid reports whether both dimensions are finite and non-negative.
func (s Size) Valid() bool {
	return finite(s.Width) && finite(s.Height) && s.Width >= 0 && s.Height >= 0
}

// Union returns the size covering both s and s2.
func (s Size) Union(s2 Size) Size {
	if s2.Width > s.Width {
		s.Width = s2.Width
	}
	if s2.Height > s.Height {
		s.Height = s2.Height
	}
	return s
}

// Add returns s grown by s2 in both dimensions.
func (s Size) Add(s2 Size) Size {
	return Size{Width: s.Width + s2.Width, Height: s.Height + s2.Height}
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Min returns r's top left corner.
func (r Rect) Min() Point {
	return r.Origin
}

// Max returns r's bottom right corner.
func (r Rect) Max() Point {
	return Point{X: r.Origin.X + r.Size.Width, Y: r.Origin.Y + r.Size.Height}
}

// Dx returns r's width.
func (r Rect) Dx() float64 {
	return r.Size.Width
}

// Dy returns r's height.
func (r Rect) Dy() float64 {
	return r.Size.Height
}

// Add offsets r with the vector p.
func (r Rect) Add(p Point) Rect {
	r.Origin = r.Origin.Add(p)
	return r
}

// Union returns the smallest rectangle covering both r and s. A
// rectangle with zero size does not extend the union beyond its
// origin.
func (r Rect) Union(s Rect) Rect {
	min := Point{X: math.Min(r.Origin.X, s.Origin.X), Y: math.Min(r.Origin.Y, s.Origin.Y)}
	rmax, smax := r.Max(), s.Max()
	max := Point{X: math.Max(rmax.X, smax.X), Y: math.Max(rmax.Y, smax.Y)}
	return Rect{Origin: min, Size: Size{Width: max.X - min.X, Height: max.Y - min.Y}}
}

// Inset returns r shrunk by d on every edge. The size clamps at
// zero; the origin never moves past the center.
func (r Rect) Inset(d float64) Rect {
	w := r.Size.Width - 2*d
	h := r.Size.Height - 2*d
	if w < 0 {
		d = r.Size.Width / 2
		w = 0
	}
	r.Origin.X += d
	if h < 0 {
		d = r.Size.Height / 2
		h = 0
	}
	r.Origin.Y += d
	r.Size = Size{Width: w, Height: h}
	return r
}

// Contains reports whether p lies within r.
func (r Rect) Contains(p Point) bool {
	max := r.Max()
	return p.X >= r.Origin.X && p.X < max.X && p.Y >= r.Origin.Y && p.Y < max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("%v+%v", r.Origin, r.Size)
}

// A UnitPoint is a fractional anchor within a rectangle, where
// (0, 0) is the top leading corner and (1, 1) the bottom trailing
// corner.
type UnitPoint struct {
	X, Y float64
}

// Predefined anchors.
var (
	TopLeading     = UnitPoint{0, 0}
	Top            = UnitPoint{0.5, 0}
	TopTrailing    = UnitPoint{1, 0}
	Leading        = UnitPoint{0, 0.5}
	Center         = UnitPoint{0.5, 0.5}
	Trailing       = UnitPoint{1, 0.5}
	BottomLeading  = UnitPoint{0, 1}
	Bottom         = UnitPoint{0.5, 1}
	BottomTrailing = UnitPoint{1, 1}
)

// In resolves the anchor to a point within r.
func (u UnitPoint) In(r Rect) Point {
	return Point{
		X: r.Origin.X + u.X*r.Size.Width,
		Y: r.Origin.Y + u.Y*r.Size.Height,
	}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
