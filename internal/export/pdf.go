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
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"drawscatter/internal/chart"
	"drawscatter/internal/scatter"
	"drawscatter/internal/version"
)

// PDFOptions controls the PDF report. Units are points (pt).
//
// Page origin is top-left; the plot keeps data units 1:1 so a 400x400 canvas
// occupies 400x400pt with its origin at the bottom-left of the frame.
type PDFOptions struct {
	Title string // defaults to "Scatterplot Data"
	Grid  bool
	// Now is stamped into the footer; zero means time.Now().
	Now time.Time
}

const (
	pdfPageW   = 595.0 // A4
	pdfPageH   = 842.0
	pdfPlotX   = 97.5 // centered horizontally
	pdfPlotY   = 120.0
	pdfGridRGB = 204
)

// ExportPDF writes a one-page report of points to outPath.
func ExportPDF(outPath string, points []scatter.Point, opt PDFOptions) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}
	if err := buildPDF(points, opt).OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// WritePDF streams the report to w.
func WritePDF(w io.Writer, points []scatter.Point, opt PDFOptions) error {
	if err := buildPDF(points, opt).Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildPDF(points []scatter.Point, opt PDFOptions) *gofpdf.Fpdf {
	title := opt.Title
	if title == "" {
		title = "Scatterplot Data"
	}
	now := opt.Now
	if now.IsZero() {
		now = time.Now()
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pdfPageW, Ht: pdfPageH},
	})
	pdf.SetTitle(title, false)
	pdf.SetCreator("drawscatter "+version.String(), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(pdfPlotX, 80, title)

	const size = float64(scatter.CanvasSize)
	toPage := func(x, y float64) (float64, float64) {
		return pdfPlotX + x, pdfPlotY + (size - y)
	}

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetLineWidth(0.5)
	for _, v := range chart.Ticks() {
		if opt.Grid {
			pdf.SetDrawColor(pdfGridRGB, pdfGridRGB, pdfGridRGB)
			x0, y0 := toPage(v, 0)
			x1, y1 := toPage(v, size)
			pdf.Line(x0, y0, x1, y1)
			x0, y0 = toPage(0, v)
			x1, y1 = toPage(size, v)
			pdf.Line(x0, y0, x1, y1)
		}
		label := scatter.FormatCoord(v)
		lx, ly := toPage(v, 0)
		pdf.Text(lx-pdf.GetStringWidth(label)/2, ly+12, label)
		lx, ly = toPage(0, v)
		pdf.Text(lx-pdf.GetStringWidth(label)-4, ly+3, label)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.Rect(pdfPlotX, pdfPlotY, size, size, "D")

	for _, p := range points {
		c := p.Color.RGBA()
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		x, y := toPage(p.X, p.Y)
		pdf.Circle(x, y, scatter.PointRadius, "F")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(pdfPlotX, pdfPlotY+size+40, fmt.Sprintf("%d points, exported %s", len(points), now.Format("2006-01-02 15:04")))
	return pdf
}
