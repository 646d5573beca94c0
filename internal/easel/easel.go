/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package easel models the fixed lineup of standard enlarging easels and the
// selection of the smallest easel that can hold a given sheet of paper.
package easel

import (
	"fmt"
	"math"
)

// Size is one easel slot, inches. Catalog entries are stored in canonical
// portrait orientation (width <= height); fitting considers both axes.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width times height.
func (s Size) Area() float64 { return s.Width * s.Height }

// Label returns a human-readable size such as "11x14 in".
func (s Size) Label() string {
	return fmt.Sprintf("%gx%g in", s.Width, s.Height)
}

// Catalog is the standard darkroom easel lineup, ordered by area ascending.
// The fit scan relies on this ordering to return the smallest usable easel.
var Catalog = []Size{
	{Width: 5, Height: 7},
	{Width: 8, Height: 10},
	{Width: 11, Height: 14},
	{Width: 16, Height: 20},
	{Width: 20, Height: 24},
}

// Fit is the outcome of matching a sheet of paper against the catalog.
type Fit struct {
	// Slot is the chosen easel opening, oriented to match the paper: Slot
	// width corresponds to the paper width axis. For paper no catalog easel
	// can hold, Slot equals the paper itself.
	Slot Size

	// Easel is the catalog entry in canonical orientation; zero when no
	// catalog easel fits.
	Easel Size

	// IsNonStandard is true unless the paper exactly matches a catalog
	// easel in either axis order. Fitting inside a larger easel still
	// counts as non-standard.
	IsNonStandard bool
}

// SelectEasel returns the smallest catalog easel that can hold the paper, in
// either axis assignment, or a paper-sized fallback slot when none can.
// Paper dimensions are expected to be already oriented (landscape or
// portrait); the reported slot preserves that orientation.
func SelectEasel(paperWidth, paperHeight float64) Fit {
	for _, e := range Catalog {
		direct := paperWidth <= e.Width && paperHeight <= e.Height
		transposed := paperWidth <= e.Height && paperHeight <= e.Width

		if !direct && !transposed {
			continue
		}

		slot := Size{Width: e.Width, Height: e.Height}
		// Prefer the assignment that matches the paper's orientation so
		// the slot is never silently transposed relative to the paper.
		if landscape(paperWidth, paperHeight) == landscape(e.Width, e.Height) {
			if !direct {
				slot = Size{Width: e.Height, Height: e.Width}
			}
		} else if transposed {
			slot = Size{Width: e.Height, Height: e.Width}
		}

		return Fit{
			Slot:          slot,
			Easel:         e,
			IsNonStandard: !exactMatch(paperWidth, paperHeight, e),
		}
	}

	// Larger than the largest easel: the paper is its own slot.
	return Fit{
		Slot:          Size{Width: paperWidth, Height: paperHeight},
		IsNonStandard: true,
	}
}

func landscape(w, h float64) bool { return w > h }

func exactMatch(w, h float64, e Size) bool {
	return (eq(w, e.Width) && eq(h, e.Height)) || (eq(w, e.Height) && eq(h, e.Width))
}

// eq compares inches with a tolerance well below manufacturing precision.
func eq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
