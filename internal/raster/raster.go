/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package raster paints a point list onto the fixed-size bitmap shown as the
// drawing surface. Every redraw is a full repaint from the list.
package raster

import (
	"image"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"

	"drawscatter/internal/scatter"
)

// SurfaceFunc looks up the bitmap to paint into. It may return nil while the
// surface is not available yet.
type SurfaceFunc func() *image.RGBA

// Renderer repaints a surface from a point list.
type Renderer struct {
	surface SurfaceFunc
}

// New returns a renderer painting into whatever surface returns at redraw time.
func New(surface SurfaceFunc) *Renderer {
	return &Renderer{surface: surface}
}

// NewSurface allocates a transparent CanvasSize x CanvasSize bitmap.
func NewSurface() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, scatter.CanvasSize, scatter.CanvasSize))
}

// Redraw clears the surface and paints every point. It returns false and does
// nothing when no surface is available.
func (r *Renderer) Redraw(points []scatter.Point) bool {
	if r == nil || r.surface == nil {
		return false
	}
	img := r.surface()
	if img == nil {
		return false
	}
	Paint(img, points)
	return true
}

// Paint clears img and fills one circle of PointRadius per point at its pixel position.
func Paint(img *image.RGBA, points []scatter.Point) {
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	if len(points) == 0 {
		return
	}
	gc := draw2dimg.NewGraphicContext(img)
	const rad = float64(scatter.PointRadius)
	for _, p := range points {
		x, y := p.Pixel()
		gc.SetFillColor(p.Color.RGBA())
		gc.BeginPath()
		gc.MoveTo(x+rad, y)
		gc.ArcTo(x, y, rad, rad, 0, 2*math.Pi)
		gc.Close()
		gc.Fill()
	}
}

// Snapshot returns a freshly painted copy, independent of any live surface.
func Snapshot(points []scatter.Point) *image.RGBA {
	img := NewSurface()
	Paint(img, points)
	return img
}
