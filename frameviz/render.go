// SPDX-License-Identifier: Unlicense OR MIT

package frameviz

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"plankui.org/layout"
	"plankui.org/unit"
)

// Options configure Render.
type Options struct {
	// Metric snaps frames to the pixel grid and scales the output.
	// The zero value renders at one pixel per point.
	Metric unit.Metric
	// Background fills the canvas. Nil means white.
	Background color.Color
	// Labels draws each element's name inside its box.
	Labels bool
}

// Depth cycled box fills, translucent so nested boxes stay
// distinguishable.
var palette = []color.NRGBA{
	{R: 0x42, G: 0x85, B: 0xf4, A: 0x30},
	{R: 0xea, G: 0x43, B: 0x35, A: 0x30},
	{R: 0xfb, G: 0xbc, B: 0x05, A: 0x30},
	{R: 0x34, G: 0xa8, B: 0x53, A: 0x30},
}

var outline = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// Render rasterizes the resolved tree: one translucent, outlined
// box per visible element, optionally labeled with the element's
// type name.
func Render(root layout.Node, opts Options) *image.RGBA {
	m := opts.Metric
	rootFrame := m.Snap(root.Attributes.Frame)
	max := rootFrame.Max()
	dst := image.NewRGBA(image.Rect(0, 0, m.Px(max.X), m.Px(max.Y)))

	bg := opts.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(outline),
		Face: basicfont.Face7x13,
	}
	root.Walk(func(p layout.Placement) {
		if p.Attributes.Hidden {
			return
		}
		f := m.Snap(p.Attributes.Frame)
		fmax := f.Max()
		r := image.Rect(m.Px(f.Origin.X), m.Px(f.Origin.Y), m.Px(fmax.X), m.Px(fmax.Y))

		fill := palette[p.Depth%len(palette)]
		fill.A = uint8(float64(fill.A) * clamp01(p.Attributes.Alpha))
		draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Over)
		strokeRect(dst, r)

		if opts.Labels {
			drawer.Dot = fixed.P(r.Min.X+3, r.Min.Y+basicfont.Face7x13.Ascent+2)
			drawer.DrawString(ElementName(p.Element))
		}
	})
	return dst
}

func strokeRect(dst *image.RGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetRGBA(x, r.Min.Y, rgba(outline))
		dst.SetRGBA(x, r.Max.Y-1, rgba(outline))
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetRGBA(r.Min.X, y, rgba(outline))
		dst.SetRGBA(r.Max.X-1, y, rgba(outline))
	}
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
