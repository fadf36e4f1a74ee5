/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"drawscatter/internal/raster"
	"drawscatter/internal/scatter"
)

// PNGOptions controls canvas snapshot export.
//   - Background: fill behind the transparent canvas; white when nil.
//   - Border: draw a 1px gray frame like the on-screen canvas.
//   - Caption: optional text line printed in a strip below the canvas.
type PNGOptions struct {
	Background color.Color
	Border     bool
	Caption    string
}

const captionHeight = 20

// ComposeCanvas builds the snapshot image described by opt.
func ComposeCanvas(points []scatter.Point, opt PNGOptions) *image.RGBA {
	size := scatter.CanvasSize
	h := size
	if opt.Caption != "" {
		h += captionHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, size, h))
	bg := opt.Background
	if bg == nil {
		bg = color.White
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 0, size, size), raster.Snapshot(points), image.Point{}, draw.Over)

	if opt.Border {
		strokeRect(img, 0, 0, size-1, size-1, color.RGBA{R: 209, G: 213, B: 219, A: 255})
	}
	if opt.Caption != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(color.Black),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(4, size+14),
		}
		d.DrawString(opt.Caption)
	}
	return img
}

// ExportCanvasPNG writes the raster view of points to path.
func ExportCanvasPNG(path string, points []scatter.Point, opt PNGOptions) error {
	return WritePNG(path, ComposeCanvas(points, opt))
}

// WritePNG encodes img to path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close png: %w", err)
	}
	return nil
}

// strokeRect draws a 1px axis-aligned rectangle border inclusive of endpoints.
func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.SetRGBA(x, y0, col)
		img.SetRGBA(x, y1, col)
	}
	for y := y0; y <= y1; y++ {
		img.SetRGBA(x0, y, col)
		img.SetRGBA(x1, y, col)
	}
}
