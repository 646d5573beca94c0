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
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"bordercalc/internal/domain"
)

// svgPad is the margin around the easel, inches.
const svgPad = 0.5

// WriteSVG renders the placement diagram as an SVG file. The coordinate
// system is inches via the viewBox; width/height attributes are pixels
// derived from the DPI option.
func WriteSVG(calc domain.Calculation, outPath string, opt Options) error {
	d := Build(calc, opt)
	if d.Easel.W <= 0 || d.Easel.H <= 0 {
		return fmt.Errorf("diagram has no easel area")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure out dir: %w", err)
	}

	docW := d.Easel.W + 2*svgPad
	docH := d.Easel.H + 2*svgPad + 0.6
	pxW := int(math.Round(docW * float64(opt.dpi())))
	pxH := int(math.Round(docH * float64(opt.dpi())))

	var buf bytes.Buffer
	var werr error
	wf := func(format string, args ...any) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(&buf, format, args...)
	}

	wf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	wf("<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" width=\"%dpx\" height=\"%dpx\" viewBox=\"0 0 %g %g\">\n", pxW, pxH, docW, docH)
	wf("  <rect x=\"0\" y=\"0\" width=\"%g\" height=\"%g\" fill=\"#ffffff\"/>\n", docW, docH)

	ox, oy := svgPad, svgPad+0.4
	wf("  <text x=\"%g\" y=\"%g\" font-family=\"Helvetica, Arial, sans-serif\" font-size=\"0.22\" fill=\"#000\">%s</text>\n", ox, svgPad+0.1, escText(d.Title))

	wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"#000\" stroke-width=\"0.02\"/>\n",
		ox+d.Easel.X, oy+d.Easel.Y, d.Easel.W, d.Easel.H)
	wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"none\" stroke=\"#787878\" stroke-width=\"0.01\"/>\n",
		ox+d.Paper.X, oy+d.Paper.Y, d.Paper.W, d.Paper.H)
	wf("  <rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" fill=\"#e1e1e1\" stroke=\"#000\" stroke-width=\"0.01\"/>\n",
		ox+d.Print.X, oy+d.Print.Y, d.Print.W, d.Print.H)

	if d.ShowBlades {
		blade := "stroke=\"#b42828\" stroke-width=\"0.015\" stroke-dasharray=\"0.08,0.06\""
		wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" %s/>\n", ox+d.Print.X, oy, ox+d.Print.X, oy+d.Easel.H, blade)
		wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" %s/>\n", ox+d.Print.X+d.Print.W, oy, ox+d.Print.X+d.Print.W, oy+d.Easel.H, blade)
		wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" %s/>\n", ox, oy+d.Print.Y, ox+d.Easel.W, oy+d.Print.Y, blade)
		wf("  <line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" %s/>\n", ox, oy+d.Print.Y+d.Print.H, ox+d.Easel.W, oy+d.Print.Y+d.Print.H, blade)
	}

	label := func(x, y float64, s string) {
		wf("  <text x=\"%g\" y=\"%g\" font-family=\"Helvetica, Arial, sans-serif\" font-size=\"0.18\" fill=\"#000\">%s</text>\n", x, y, escText(s))
	}
	cx := ox + d.Print.X + d.Print.W/2
	cy := oy + d.Print.Y + d.Print.H/2
	label(ox+d.Print.X+0.05, cy, d.LeftLabel)
	label(ox+d.Print.X+d.Print.W-0.55, cy, d.RightLabel)
	label(cx-0.25, oy+d.Print.Y+0.2, d.TopLabel)
	label(cx-0.25, oy+d.Print.Y+d.Print.H-0.08, d.BottomLabel)

	y := oy + d.Easel.H + 0.3
	for _, w := range d.Warnings {
		label(ox, y, w)
		y += 0.22
	}

	wf("</svg>\n")
	if werr != nil {
		return fmt.Errorf("build svg: %w", werr)
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}

func escText(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; ch {
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		case '&':
			out = append(out, "&amp;"...)
		default:
			out = append(out, ch)
		}
	}
	return string(out)
}
