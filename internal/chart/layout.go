/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package chart models the scatterplot view of a point list: where the plot
// area sits inside a widget, the fixed axis ticks, hover lookup, and rendering
// to an image through go-chart.
package chart

import (
	"math"

	"drawscatter/internal/scatter"
)

// Margins around the plot area, leaving room for tick labels on the left and bottom.
type Margins struct {
	Top, Right, Bottom, Left float32
}

// DefaultMargins leaves 20 units around the plot plus space for axis labels.
var DefaultMargins = Margins{Top: 20, Right: 20, Bottom: 40, Left: 50}

// TickStep is the distance between grid lines in data units.
const TickStep = 100

// Layout maps the fixed data domain [0, CanvasSize] on both axes into a pixel box.
type Layout struct {
	Plot    Rect
	toPix   affine
	toData  affine
	hasArea bool
}

// NewLayout computes the plot rectangle for a widget of the given size.
func NewLayout(width, height float32, m Margins) Layout {
	plot := Rect{X: m.Left, Y: m.Top, W: width - m.Left - m.Right, H: height - m.Top - m.Bottom}
	if plot.W < 0 {
		plot.W = 0
	}
	if plot.H < 0 {
		plot.H = 0
	}
	const d = float32(scatter.CanvasSize)
	toPix := affine{sx: plot.W / d, sy: -plot.H / d, tx: plot.X, ty: plot.Y + plot.H}
	return Layout{
		Plot:    plot,
		toPix:   toPix,
		toData:  toPix.invert(),
		hasArea: plot.W > 0 && plot.H > 0,
	}
}

// ToScreen converts data coordinates (Y up) to widget pixels (Y down).
func (l Layout) ToScreen(x, y float64) Pt {
	return l.toPix.apply(Pt{X: float32(x), Y: float32(y)})
}

// ToData converts a widget position back to data coordinates. ok is false when
// the position lies outside the plot area.
func (l Layout) ToData(p Pt) (x, y float64, ok bool) {
	if !l.hasArea || !l.Plot.Contains(p) {
		return 0, 0, false
	}
	d := l.toData.apply(p)
	return float64(d.X), float64(d.Y), true
}

// Ticks returns the grid positions shared by both axes.
func Ticks() []float64 {
	n := scatter.CanvasSize/TickStep + 1
	out := make([]float64, 0, n)
	for v := 0; v <= scatter.CanvasSize; v += TickStep {
		out = append(out, float64(v))
	}
	return out
}

// Nearest returns the index of the point closest to (x, y) in data space.
// Ties resolve to the earliest captured point.
func Nearest(points []scatter.Point, x, y float64) (int, bool) {
	best := -1
	bestD := math.Inf(1)
	for i, p := range points {
		dx, dy := p.X-x, p.Y-y
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD = i, d
		}
	}
	return best, best >= 0
}

// Tooltip is the hover text for a point.
func Tooltip(p scatter.Point) string {
	return "x: " + scatter.FormatCoord(p.X) + ", y: " + scatter.FormatCoord(p.Y)
}
