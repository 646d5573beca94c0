/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"bordercalc/internal/domain"
)

// PDF layout constants, inches. The page is sized to the easel plus margins
// so the diagram stays at true scale when printed at 100%.
const (
	pdfMargin = 0.75
	pdfHeader = 0.6
	pdfFooter = 0.9
)

// WritePDF renders the placement diagram as a single-page PDF at outPath.
// Built-in Helvetica keeps the text vector without font embedding.
func WritePDF(calc domain.Calculation, outPath string, opt Options) error {
	d := Build(calc, opt)
	if d.Easel.W <= 0 || d.Easel.H <= 0 {
		return fmt.Errorf("diagram has no easel area")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	pageW := d.Easel.W + 2*pdfMargin
	pageH := d.Easel.H + 2*pdfMargin + pdfHeader + pdfFooter

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "in",
		Size:    gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	pdf.SetTitle("Print border placement", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(pdfMargin, pdfMargin, d.Title)

	ox := pdfMargin
	oy := pdfMargin + pdfHeader

	// Easel slot
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.02)
	pdf.Rect(ox+d.Easel.X, oy+d.Easel.Y, d.Easel.W, d.Easel.H, "D")

	// Paper
	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.01)
	pdf.Rect(ox+d.Paper.X, oy+d.Paper.Y, d.Paper.W, d.Paper.H, "D")

	// Print area
	pdf.SetFillColor(225, 225, 225)
	pdf.Rect(ox+d.Print.X, oy+d.Print.Y, d.Print.W, d.Print.H, "FD")

	if d.ShowBlades {
		// Blade positions as dashed lines across the easel.
		pdf.SetDrawColor(180, 40, 40)
		pdf.SetDashPattern([]float64{0.08, 0.06}, 0)
		pdf.Line(ox+d.Print.X, oy, ox+d.Print.X, oy+d.Easel.H)
		pdf.Line(ox+d.Print.X+d.Print.W, oy, ox+d.Print.X+d.Print.W, oy+d.Easel.H)
		pdf.Line(ox, oy+d.Print.Y, ox+d.Easel.W, oy+d.Print.Y)
		pdf.Line(ox, oy+d.Print.Y+d.Print.H, ox+d.Easel.W, oy+d.Print.Y+d.Print.H)
		pdf.SetDashPattern([]float64{}, 0)
	}

	// Blade readings near their edges.
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	cx := ox + d.Print.X + d.Print.W/2
	cy := oy + d.Print.Y + d.Print.H/2
	pdf.Text(ox+d.Print.X+0.05, cy, d.LeftLabel)
	pdf.Text(ox+d.Print.X+d.Print.W-0.55, cy, d.RightLabel)
	pdf.Text(cx-0.25, oy+d.Print.Y+0.18, d.TopLabel)
	pdf.Text(cx-0.25, oy+d.Print.Y+d.Print.H-0.08, d.BottomLabel)

	// Warnings under the diagram.
	y := oy + d.Easel.H + 0.3
	pdf.SetFont("Helvetica", "I", 9)
	for _, w := range d.Warnings {
		pdf.Text(ox, y, w)
		y += 0.2
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
