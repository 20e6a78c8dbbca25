// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit converts the layout engine's continuous coordinates to
device pixels.

The engine computes frames in device independent points. Snapping
those frames to the pixel grid of a concrete display is a
presentation concern applied after layout; it is deliberately not
part of the engine so layout results stay resolution independent.
*/
package unit

import (
	"math"

	"plankui.org/geom"
)

// Metric converts points to pixels for one display.
type Metric struct {
	// Scale is the number of device pixels per point. A typical
	// high density display has Scale 2 or 3.
	Scale float64
}

// Px converts a point value to a whole number of device pixels,
// rounding half away from zero.
func (m Metric) Px(v float64) int {
	return int(math.Round(v * m.scale()))
}

// Pt converts a pixel count back to points.
func (m Metric) Pt(px int) float64 {
	return float64(px) / m.scale()
}

// Snap rounds r to the device pixel grid: the edges move to the
// nearest pixel boundary, so adjacent snapped frames stay adjacent.
func (m Metric) Snap(r geom.Rect) geom.Rect {
	s := m.scale()
	x0 := math.Round(r.Origin.X * s)
	y0 := math.Round(r.Origin.Y * s)
	x1 := math.Round((r.Origin.X + r.Size.Width) * s)
	y1 := math.Round((r.Origin.Y + r.Size.Height) * s)
	return geom.Rect{
		Origin: geom.Pt(x0/s, y0/s),
		Size:   geom.Sz((x1-x0)/s, (y1-y0)/s),
	}
}

func (m Metric) scale() float64 {
	if m.Scale <= 0 {
		return 1
	}
	return m.Scale
}
