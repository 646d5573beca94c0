/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package border

import "bordercalc/internal/domain"

// CustomID selects user-supplied dimensions instead of a catalog entry.
const CustomID = "custom"

// CatalogPaper is a standard darkroom paper size, stored portrait
// (width <= height).
type CatalogPaper struct {
	ID   string
	Size domain.PaperSize
}

// PaperSizes lists the stock paper sizes offered by the calculator.
var PaperSizes = []CatalogPaper{
	{ID: "4x5", Size: domain.PaperSize{Width: 4, Height: 5}},
	{ID: "4x6", Size: domain.PaperSize{Width: 4, Height: 6}},
	{ID: "5x7", Size: domain.PaperSize{Width: 5, Height: 7}},
	{ID: "8x10", Size: domain.PaperSize{Width: 8, Height: 10}},
	{ID: "11x14", Size: domain.PaperSize{Width: 11, Height: 14}},
	{ID: "16x20", Size: domain.PaperSize{Width: 16, Height: 20}},
	{ID: "20x24", Size: domain.PaperSize{Width: 20, Height: 24}},
}

// CatalogRatio is a common negative or print aspect ratio.
type CatalogRatio struct {
	ID    string
	Label string
	Ratio domain.AspectRatio
}

// AspectRatios lists the stock aspect ratios offered by the calculator.
var AspectRatios = []CatalogRatio{
	{ID: "3:2", Label: "35mm full frame", Ratio: domain.AspectRatio{Width: 3, Height: 2}},
	{ID: "6:4.5", Label: "6x4.5 medium format", Ratio: domain.AspectRatio{Width: 6, Height: 4.5}},
	{ID: "1:1", Label: "6x6 square", Ratio: domain.AspectRatio{Width: 1, Height: 1}},
	{ID: "7:6", Label: "6x7 medium format", Ratio: domain.AspectRatio{Width: 7, Height: 6}},
	{ID: "4:5", Label: "4x5 large format", Ratio: domain.AspectRatio{Width: 4, Height: 5}},
	{ID: "7:5", Label: "5x7 paper", Ratio: domain.AspectRatio{Width: 7, Height: 5}},
	{ID: "65:24", Label: "XPan panoramic", Ratio: domain.AspectRatio{Width: 65, Height: 24}},
}

// defaultPaper stands in when the state names no usable paper size.
var defaultPaper = domain.PaperSize{Width: 8, Height: 10}

// Dimensions is the resolved geometry a computation starts from: oriented
// paper dimensions and an oriented, possibly flipped aspect ratio.
type Dimensions struct {
	PaperWidth  float64
	PaperHeight float64
	RatioWidth  float64
	RatioHeight float64
}

// ResolveDimensions turns the raw selection in a State into concrete paper
// dimensions and an aspect ratio. Unknown ids and non-positive custom values
// degrade to the 8x10 default rather than failing. IsLandscape orients the
// paper; the ratio is taken as stored and IsRatioFlipped swaps its axes.
func ResolveDimensions(st domain.State) Dimensions {
	paper := lookupPaper(st)
	pw, ph := orient(paper.Width, paper.Height, st.IsLandscape)

	ratio := lookupRatio(st)
	if ratio.Width <= 0 || ratio.Height <= 0 {
		// Degenerate ratio: the print fills the available box.
		ratio = domain.AspectRatio{Width: pw, Height: ph}
	}
	rw, rh := ratio.Width, ratio.Height
	if st.IsRatioFlipped {
		rw, rh = rh, rw
	}

	return Dimensions{PaperWidth: pw, PaperHeight: ph, RatioWidth: rw, RatioHeight: rh}
}

func lookupPaper(st domain.State) domain.PaperSize {
	if st.PaperSizeID == CustomID {
		if st.CustomPaperWidth > 0 && st.CustomPaperHeight > 0 {
			return domain.PaperSize{Width: st.CustomPaperWidth, Height: st.CustomPaperHeight}
		}
		return defaultPaper
	}
	for _, p := range PaperSizes {
		if p.ID == st.PaperSizeID {
			return p.Size
		}
	}
	return defaultPaper
}

func lookupRatio(st domain.State) domain.AspectRatio {
	if st.AspectRatioID == CustomID {
		return domain.AspectRatio{Width: st.CustomRatioWidth, Height: st.CustomRatioHeight}
	}
	for _, r := range AspectRatios {
		if r.ID == st.AspectRatioID {
			return r.Ratio
		}
	}
	return domain.AspectRatio{}
}

// orient swaps w and h as needed so that landscape means w >= h.
func orient(w, h float64, isLandscape bool) (float64, float64) {
	if isLandscape == (w >= h) {
		return w, h
	}
	return h, w
}
