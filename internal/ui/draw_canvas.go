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
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"drawscatter/internal/raster"
	"drawscatter/internal/scatter"
)

var borderColor = color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xff}

// DrawCanvas is the 400x400 freehand capture surface. Pointer gestures are
// forwarded to the Board; the bitmap repaints whenever the Board changes.
type DrawCanvas struct {
	widget.BaseWidget

	board    *scatter.Board
	renderer *raster.Renderer
	surface  *image.RGBA // nil until the widget is first rendered
	img      *canvas.Image
}

var (
	_ desktop.Mouseable = (*DrawCanvas)(nil)
	_ desktop.Hoverable = (*DrawCanvas)(nil)
	_ fyne.Draggable    = (*DrawCanvas)(nil)
)

func NewDrawCanvas(board *scatter.Board) *DrawCanvas {
	d := &DrawCanvas{board: board}
	d.renderer = raster.New(func() *image.RGBA { return d.surface })
	board.OnChange(d.repaint)
	d.ExtendBaseWidget(d)
	return d
}

// Surface returns the current bitmap, or nil before the first render.
func (d *DrawCanvas) Surface() *image.RGBA { return d.surface }

func (d *DrawCanvas) repaint() {
	if !d.renderer.Redraw(d.board.Points()) {
		return
	}
	if d.img != nil {
		d.img.Refresh()
	}
}

func (d *DrawCanvas) CreateRenderer() fyne.WidgetRenderer {
	d.surface = raster.NewSurface()
	d.img = canvas.NewImageFromImage(d.surface)
	d.img.FillMode = canvas.ImageFillOriginal
	d.img.ScaleMode = canvas.ImageScalePixels
	d.renderer.Redraw(d.board.Points())

	bg := canvas.NewRectangle(color.White)
	frame := canvas.NewRectangle(color.Transparent)
	frame.StrokeColor = borderColor
	frame.StrokeWidth = 1
	return &drawCanvasRenderer{d: d, bg: bg, frame: frame, objects: []fyne.CanvasObject{bg, d.img, frame}}
}

func (d *DrawCanvas) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	d.board.PointerDown(float64(e.Position.X), float64(e.Position.Y))
}

func (d *DrawCanvas) MouseUp(*desktop.MouseEvent) { d.board.PointerUp() }

// Dragged delivers moves while the button is held.
func (d *DrawCanvas) Dragged(e *fyne.DragEvent) {
	d.board.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

// DragEnd can replace MouseUp when the button is released after a drag.
func (d *DrawCanvas) DragEnd() { d.board.PointerUp() }

func (d *DrawCanvas) MouseIn(*desktop.MouseEvent) {}

func (d *DrawCanvas) MouseMoved(e *desktop.MouseEvent) {
	d.board.PointerMove(float64(e.Position.X), float64(e.Position.Y))
}

func (d *DrawCanvas) MouseOut() { d.board.PointerLeave() }

type drawCanvasRenderer struct {
	d         *DrawCanvas
	bg, frame *canvas.Rectangle
	objects   []fyne.CanvasObject
}

func (r *drawCanvasRenderer) Destroy()                     {}
func (r *drawCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *drawCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(scatter.CanvasSize, scatter.CanvasSize)
}
func (r *drawCanvasRenderer) Refresh() { r.Layout(r.d.Size()); canvas.Refresh(r.d) }

// Layout pins the bitmap to the top-left so widget coordinates equal pixel coordinates.
func (r *drawCanvasRenderer) Layout(fyne.Size) {
	sz := fyne.NewSize(scatter.CanvasSize, scatter.CanvasSize)
	for _, o := range r.objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(sz)
	}
}
