//go:build fyne

/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"drawscatter/internal/chart"
	"drawscatter/internal/scatter"
)

var (
	chartGridColor   = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	chartAxisColor   = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	chartCursorColor = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}
	tooltipBG        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xf0}
)

const (
	dashLen      = 3
	tooltipPad   = 6
	tickTextSize = 11
)

// ChartView is the live scatterplot. Its scene is rebuilt from the Board on
// every change, so it never holds state of its own besides the hover position.
type ChartView struct {
	widget.BaseWidget

	board    *scatter.Board
	hover    fyne.Position
	hovering bool
}

var _ desktop.Hoverable = (*ChartView)(nil)

func NewChartView(board *scatter.Board) *ChartView {
	v := &ChartView{board: board}
	v.ExtendBaseWidget(v)
	board.OnChange(v.Refresh)
	return v
}

func (v *ChartView) MouseIn(e *desktop.MouseEvent)    { v.setHover(e.Position) }
func (v *ChartView) MouseMoved(e *desktop.MouseEvent) { v.setHover(e.Position) }
func (v *ChartView) MouseOut() {
	v.hovering = false
	v.Refresh()
}

func (v *ChartView) setHover(p fyne.Position) {
	v.hover = p
	v.hovering = true
	v.Refresh()
}

func (v *ChartView) layout(size fyne.Size) chart.Layout {
	return chart.NewLayout(size.Width, size.Height, chart.DefaultMargins)
}

// Hovered returns the point nearest to the cursor while it is over the plot area.
func (v *ChartView) Hovered() (scatter.Point, bool) {
	if !v.hovering {
		return scatter.Point{}, false
	}
	x, y, ok := v.layout(v.Size()).ToData(chart.Pt{X: v.hover.X, Y: v.hover.Y})
	if !ok {
		return scatter.Point{}, false
	}
	pts := v.board.Points()
	i, ok := chart.Nearest(pts, x, y)
	if !ok {
		return scatter.Point{}, false
	}
	return pts[i], true
}

func (v *ChartView) CreateRenderer() fyne.WidgetRenderer {
	r := &chartViewRenderer{v: v}
	r.rebuild(v.Size())
	return r
}

type chartViewRenderer struct {
	v       *ChartView
	objects []fyne.CanvasObject
	dots    int // number of point circles in objects, for tests
}

func (r *chartViewRenderer) Destroy()                     {}
func (r *chartViewRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *chartViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(scatter.CanvasSize, scatter.CanvasSize)
}
func (r *chartViewRenderer) Layout(size fyne.Size) { r.rebuild(size) }
func (r *chartViewRenderer) Refresh()              { r.rebuild(r.v.Size()); canvas.Refresh(r.v) }

func (r *chartViewRenderer) rebuild(size fyne.Size) {
	l := r.v.layout(size)
	plot := l.Plot
	objs := make([]fyne.CanvasObject, 0, 32)

	bg := canvas.NewRectangle(color.White)
	bg.Resize(size)
	objs = append(objs, bg)

	// Grid and tick labels; the first tick doubles as the axis line.
	for _, t := range chart.Ticks() {
		label := scatter.FormatCoord(t)
		vx := l.ToScreen(t, 0)
		hy := l.ToScreen(0, t)

		vl := newLine(chartGridColor, vx.X, plot.Y, vx.X, plot.Y+plot.H)
		hl := newLine(chartGridColor, plot.X, hy.Y, plot.X+plot.W, hy.Y)
		if t == 0 {
			vl.StrokeColor = chartAxisColor
			hl.StrokeColor = chartAxisColor
		}
		objs = append(objs, vl, hl)

		xt := newTickText(label)
		xs := xt.MinSize()
		xt.Move(fyne.NewPos(vx.X-xs.Width/2, plot.Y+plot.H+4))
		yt := newTickText(label)
		ys := yt.MinSize()
		yt.Move(fyne.NewPos(plot.X-ys.Width-6, hy.Y-ys.Height/2))
		objs = append(objs, xt, yt)
	}

	pts := r.v.board.Points()
	for _, p := range pts {
		c := l.ToScreen(p.X, p.Y)
		dot := canvas.NewCircle(p.Color.RGBA())
		dot.Move(fyne.NewPos(c.X-scatter.PointRadius, c.Y-scatter.PointRadius))
		dot.Resize(fyne.NewSize(2*scatter.PointRadius, 2*scatter.PointRadius))
		objs = append(objs, dot)
	}
	r.dots = len(pts)

	if p, ok := r.v.Hovered(); ok {
		objs = append(objs, r.cursor(l, p)...)
	}
	r.objects = objs
}

// cursor draws a dashed crosshair through the hovered point and its tooltip.
func (r *chartViewRenderer) cursor(l chart.Layout, p scatter.Point) []fyne.CanvasObject {
	plot := l.Plot
	c := l.ToScreen(p.X, p.Y)
	out := dashedLine(chartCursorColor, c.X, plot.Y, c.X, plot.Y+plot.H)
	out = append(out, dashedLine(chartCursorColor, plot.X, c.Y, plot.X+plot.W, c.Y)...)

	ring := canvas.NewCircle(color.Transparent)
	ring.StrokeColor = p.Color.RGBA()
	ring.StrokeWidth = 1.5
	ring.Move(fyne.NewPos(c.X-2*scatter.PointRadius, c.Y-2*scatter.PointRadius))
	ring.Resize(fyne.NewSize(4*scatter.PointRadius, 4*scatter.PointRadius))

	text := canvas.NewText(chart.Tooltip(p), color.Black)
	text.TextSize = 12
	ts := text.MinSize()
	box := fyne.NewSize(ts.Width+2*tooltipPad, ts.Height+2*tooltipPad)
	pos := fyne.NewPos(c.X+8, c.Y-box.Height-8)
	// Keep the tooltip inside the widget.
	if pos.X+box.Width > plot.X+plot.W {
		pos.X = c.X - box.Width - 8
	}
	if pos.Y < 0 {
		pos.Y = c.Y + 8
	}
	bg := canvas.NewRectangle(tooltipBG)
	bg.StrokeColor = chartGridColor
	bg.StrokeWidth = 1
	bg.Move(pos)
	bg.Resize(box)
	text.Move(pos.Add(fyne.NewPos(tooltipPad, tooltipPad)))
	return append(out, ring, bg, text)
}

func newLine(c color.Color, x1, y1, x2, y2 float32) *canvas.Line {
	ln := canvas.NewLine(c)
	ln.StrokeWidth = 1
	ln.Position1 = fyne.NewPos(x1, y1)
	ln.Position2 = fyne.NewPos(x2, y2)
	return ln
}

// dashedLine splits an axis-aligned segment into 3px dashes with 3px gaps.
func dashedLine(c color.Color, x1, y1, x2, y2 float32) []fyne.CanvasObject {
	var out []fyne.CanvasObject
	if x1 == x2 {
		for y := y1; y < y2; y += 2 * dashLen {
			out = append(out, newLine(c, x1, y, x1, min(y+dashLen, y2)))
		}
		return out
	}
	for x := x1; x < x2; x += 2 * dashLen {
		out = append(out, newLine(c, x, y1, min(x+dashLen, x2), y1))
	}
	return out
}

func newTickText(s string) *canvas.Text {
	t := canvas.NewText(s, chartAxisColor)
	t.TextSize = tickTextSize
	return t
}
