/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"drawscatter/internal/scatter"
)

// Format selects the go-chart output backend.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

var gridColor = drawing.Color{R: 204, G: 204, B: 204, A: 255}

// dotStyle renders points only, no connecting line.
func dotStyle(c scatter.Color) gochart.Style {
	rgba := c.RGBA()
	col := drawing.Color{R: rgba.R, G: rgba.G, B: rgba.B, A: rgba.A}
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    scatter.PointRadius,
		DotColor:    col,
	}
}

func ticks() []gochart.Tick {
	vals := Ticks()
	out := make([]gochart.Tick, 0, len(vals))
	for _, v := range vals {
		out = append(out, gochart.Tick{Value: v, Label: scatter.FormatCoord(v)})
	}
	return out
}

// Build assembles the go-chart definition: one dot series per color, both
// axes fixed to [0, CanvasSize] with a major grid.
func Build(points []scatter.Point, width, height int) gochart.Chart {
	series := []gochart.Series{
		// Visible but draws nothing: go-chart refuses to render without a
		// visible series, and an empty board must still export.
		gochart.ContinuousSeries{
			Name:    "frame",
			XValues: []float64{0, scatter.CanvasSize},
			YValues: []float64{0, scatter.CanvasSize},
			Style:   gochart.Style{StrokeWidth: gochart.Disabled},
		},
	}
	for _, c := range scatter.Colors {
		var xs, ys []float64
		for _, p := range points {
			if p.Color == c {
				xs = append(xs, p.X)
				ys = append(ys, p.Y)
			}
		}
		if len(xs) == 0 {
			continue
		}
		series = append(series, gochart.ContinuousSeries{Name: c.String(), XValues: xs, YValues: ys, Style: dotStyle(c)})
	}

	grid := gochart.Style{StrokeColor: gridColor, StrokeWidth: 1}
	return gochart.Chart{
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 20, Right: 20, Bottom: 20, Left: 20}},
		XAxis: gochart.XAxis{
			Name:           "x",
			Range:          &gochart.ContinuousRange{Min: 0, Max: scatter.CanvasSize},
			Ticks:          ticks(),
			GridMajorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           "y",
			Range:          &gochart.ContinuousRange{Min: 0, Max: scatter.CanvasSize},
			Ticks:          ticks(),
			GridMajorStyle: grid,
		},
		Series: series,
	}
}

// RenderTo writes the chart in the requested format.
func RenderTo(w io.Writer, format Format, points []scatter.Point, width, height int) error {
	provider := gochart.PNG
	switch format {
	case PNG, "":
	case SVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("unsupported chart format %q", format)
	}
	ch := Build(points, width, height)
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// Render draws the chart into an image.
func Render(points []scatter.Point, width, height int) (image.Image, error) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, PNG, points, width, height); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}
