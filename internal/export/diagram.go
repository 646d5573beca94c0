/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export renders a finished Calculation as a placement diagram that
// can be pinned up next to the enlarger: easel slot, paper, print area and
// the four blade readings. PDF, SVG and PNG outputs share one layout.
package export

import (
	"fmt"

	"bordercalc/internal/domain"
)

// Rect is an axis-aligned rectangle in diagram coordinates (inches, origin
// at the top-left corner of the easel slot).
type Rect struct {
	X, Y, W, H float64
}

// Diagram is the device-independent layout of one calculation.
type Diagram struct {
	Easel Rect
	Paper Rect
	Print Rect

	// Blade label texts, pre-formatted to hundredths of an inch.
	LeftLabel   string
	RightLabel  string
	TopLabel    string
	BottomLabel string

	Title    string
	Warnings []string

	// ShowBlades mirrors the input toggle.
	ShowBlades bool

	Calc domain.Calculation
}

// Options controls rendering of a diagram.
type Options struct {
	// DPI for raster output; <= 0 means 150.
	DPI int
	// Title overrides the default heading.
	Title string
}

func (o Options) dpi() int {
	if o.DPI <= 0 {
		return 150
	}
	return o.DPI
}

// Build lays out a calculation. Paper sits centered in the easel slot; the
// print rectangle is placed by its left and top borders.
func Build(calc domain.Calculation, opt Options) Diagram {
	d := Diagram{
		Easel: Rect{W: calc.EaselWidth, H: calc.EaselHeight},
		Calc:  calc,
	}
	d.Paper = Rect{
		X: (calc.EaselWidth - calc.PaperWidth) / 2,
		Y: (calc.EaselHeight - calc.PaperHeight) / 2,
		W: calc.PaperWidth,
		H: calc.PaperHeight,
	}
	d.Print = Rect{
		X: d.Paper.X + calc.LeftBorder,
		Y: d.Paper.Y + calc.TopBorder,
		W: calc.PrintWidth,
		H: calc.PrintHeight,
	}

	d.LeftLabel = fmt.Sprintf("L %.2f", calc.BladeReadingLeft)
	d.RightLabel = fmt.Sprintf("R %.2f", calc.BladeReadingRight)
	d.TopLabel = fmt.Sprintf("T %.2f", calc.BladeReadingTop)
	d.BottomLabel = fmt.Sprintf("B %.2f", calc.BladeReadingBottom)

	d.Title = opt.Title
	if d.Title == "" {
		d.Title = fmt.Sprintf("%gx%g in paper, %.2fx%.2f in print — easel %s",
			calc.PaperWidth, calc.PaperHeight, calc.PrintWidth, calc.PrintHeight, calc.EaselLabel)
	}
	d.Warnings = calc.Warnings
	d.ShowBlades = calc.ShowBlades
	return d
}
