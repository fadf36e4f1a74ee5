/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package scatter

// This file defines the data model for a drawing session: colored points in a fixed
// logical canvas space whose origin is the bottom-left corner (Y grows upwards).

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

const (
	// CanvasSize is the edge length of the square logical canvas.
	CanvasSize = 400
	// PointRadius is the radius of a rendered point in logical units.
	PointRadius = 3
)

// Color tags a point. The zero value is Blue.
type Color int

const (
	Blue Color = iota
	Red
	Green
)

// Colors lists the selectable colors in display order.
var Colors = []Color{Blue, Red, Green}

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "color(" + strconv.Itoa(int(c)) + ")"
	}
}

// Label is the capitalized name shown in the UI.
func (c Color) Label() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// RGBA returns the fill used by both renderers. These match the CSS named colors.
func (c Color) RGBA() color.RGBA {
	switch c {
	case Red:
		return color.RGBA{R: 255, A: 255}
	case Green:
		return color.RGBA{G: 128, A: 255}
	default:
		return color.RGBA{B: 255, A: 255}
	}
}

// Valid reports whether c is one of the three known colors.
func (c Color) Valid() bool { return c >= Blue && c <= Green }

// ParseColor accepts "blue", "red" or "green" (case-insensitive).
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	}
	return Blue, fmt.Errorf("unknown color %q", s)
}

// Point is a single captured sample in logical coordinates.
type Point struct {
	X     float64
	Y     float64
	Color Color
}

// FromPixel converts a pixel position (Y down) into a logical point (Y up).
func FromPixel(px, py float64, c Color) Point {
	return Point{X: px, Y: CanvasSize - py, Color: c}
}

// Pixel returns the pixel position the point is drawn at (Y down).
func (p Point) Pixel() (float64, float64) {
	return p.X, CanvasSize - p.Y
}

// InCanvas reports whether a pixel position lies within the canvas region.
func InCanvas(px, py float64) bool {
	return px >= 0 && px <= CanvasSize && py >= 0 && py <= CanvasSize
}

// FormatCoord prints a coordinate in its shortest natural decimal form (10, 12.5, 0.1).
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
