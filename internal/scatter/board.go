/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scatter

// State is the capture state of a Board.
type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	if s == Drawing {
		return "drawing"
	}
	return "idle"
}

// Board holds the mutable state of one drawing widget: the ordered point list,
// the color applied to new points and the drawing flag.
//
// A Board is not safe for concurrent use; all calls are expected to come from
// the UI event thread.
type Board struct {
	points    []Point
	color     Color
	drawing   bool
	listeners []func()
}

// NewBoard returns an empty board with Blue selected.
func NewBoard() *Board {
	return &Board{color: Blue}
}

// OnChange registers fn to be called after every change of the point list.
func (b *Board) OnChange(fn func()) {
	if fn != nil {
		b.listeners = append(b.listeners, fn)
	}
}

func (b *Board) changed() {
	for _, fn := range b.listeners {
		fn()
	}
}

// PointerDown starts a stroke and captures the first sample.
// Positions are in pixel space (Y down); positions outside the canvas are ignored.
func (b *Board) PointerDown(px, py float64) {
	if !InCanvas(px, py) {
		return
	}
	b.drawing = true
	b.add(px, py)
}

// PointerMove captures one sample per call while a stroke is in progress.
// A move outside the canvas counts as the pointer leaving it.
func (b *Board) PointerMove(px, py float64) {
	if !b.drawing {
		return
	}
	if !InCanvas(px, py) {
		b.drawing = false
		return
	}
	b.add(px, py)
}

// PointerUp ends the stroke without capturing.
func (b *Board) PointerUp() { b.drawing = false }

// PointerLeave ends the stroke when the pointer leaves the canvas.
func (b *Board) PointerLeave() { b.drawing = false }

func (b *Board) add(px, py float64) {
	b.points = append(b.points, FromPixel(px, py, b.color))
	b.changed()
}

// SetColor selects the color for subsequently captured points.
func (b *Board) SetColor(c Color) {
	if c.Valid() {
		b.color = c
	}
}

// Color returns the color applied to new points.
func (b *Board) Color() Color { return b.color }

// Reset clears every point.
func (b *Board) Reset() {
	b.points = nil
	b.changed()
}

// Replace swaps the whole list for pts, e.g. after loading a file.
func (b *Board) Replace(pts []Point) {
	b.points = append([]Point(nil), pts...)
	b.changed()
}

// Points returns a copy of the list in capture order.
func (b *Board) Points() []Point {
	out := make([]Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Board) Len() int { return len(b.points) }

func (b *Board) Drawing() bool { return b.drawing }

func (b *Board) State() State {
	if b.drawing {
		return Drawing
	}
	return Idle
}
