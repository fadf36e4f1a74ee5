/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

// Geometry used to place the scatterplot inside a widget. Values are float32 to
// line up with the UI toolkit.

// Pt is a 2D point.
type Pt struct{ X, Y float32 }

// Rect is an axis-aligned rectangle defined by its min corner and size.
type Rect struct {
	X, Y float32
	W, H float32
}

func (r Rect) Contains(p Pt) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// affine is a 2D transform without rotation or shear:
// x' = sx*x + tx, y' = sy*y + ty.
type affine struct{ sx, sy, tx, ty float32 }

func (m affine) apply(p Pt) Pt {
	return Pt{X: m.sx*p.X + m.tx, Y: m.sy*p.Y + m.ty}
}

// invert returns the inverse transform; a zero scale yields the identity.
func (m affine) invert() affine {
	if m.sx == 0 || m.sy == 0 {
		return affine{sx: 1, sy: 1}
	}
	return affine{sx: 1 / m.sx, sy: 1 / m.sy, tx: -m.tx / m.sx, ty: -m.ty / m.sy}
}
