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

import (
	"fmt"
	"math"
)

// PrintSize returns the largest print that fits the available box while
// preserving the width:height ratio. At least one axis is filled exactly.
// Non-positive inputs yield a zero-size print instead of NaN.
func PrintSize(availWidth, availHeight, ratioWidth, ratioHeight float64) (printWidth, printHeight float64) {
	if availWidth <= 0 || availHeight <= 0 || ratioWidth <= 0 || ratioHeight <= 0 {
		return 0, 0
	}
	target := ratioWidth / ratioHeight
	if availWidth/availHeight > target {
		// Height binds.
		return availHeight * target, availHeight
	}
	// Width binds.
	return availWidth, availWidth / target
}

// Offsets is the result of clamping a requested off-center adjustment.
type Offsets struct {
	Horizontal float64
	Vertical   float64

	// Clamped is true when either axis was reduced.
	Clamped bool

	// Warning describes which axis ran out of space; empty when no
	// clamping happened.
	Warning string
}

// ClampOffsets bounds the requested offsets so the print stays on the paper.
// With ignoreMinBorder the print may ride up to the paper edge; otherwise the
// minimum border is preserved on every side. Axes clamp independently.
func ClampOffsets(paperWidth, paperHeight, printWidth, printHeight, minBorder float64,
	requestedH, requestedV float64, ignoreMinBorder bool) Offsets {

	maxH := maxOffset(paperWidth, printWidth, minBorder, ignoreMinBorder)
	maxV := maxOffset(paperHeight, printHeight, minBorder, ignoreMinBorder)

	h := clamp(requestedH, maxH)
	v := clamp(requestedV, maxV)

	o := Offsets{Horizontal: h, Vertical: v}
	var parts []string
	if h != requestedH {
		parts = append(parts, fmt.Sprintf("horizontal offset exceeds available space, limited to ±%.2f in", maxH))
	}
	if v != requestedV {
		parts = append(parts, fmt.Sprintf("vertical offset exceeds available space, limited to ±%.2f in", maxV))
	}
	if len(parts) > 0 {
		o.Clamped = true
		o.Warning = join(parts)
	}
	return o
}

func maxOffset(paperDim, printDim, minBorder float64, ignoreMinBorder bool) float64 {
	half := (paperDim - printDim) / 2
	if !ignoreMinBorder {
		half -= minBorder
	}
	if half < 0 {
		return 0
	}
	return half
}

func clamp(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}

func join(parts []string) string {
	s := parts[0]
	for _, p := range parts[1:] {
		s += "; " + p
	}
	return s
}

// Borders are the four border widths around the print, inches.
type Borders struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// ComputeBorders converts print size and clamped offsets into the four
// border widths. A positive horizontal offset shifts the print toward the
// left edge; a positive vertical offset shifts it toward the top.
func ComputeBorders(paperWidth, paperHeight, printWidth, printHeight, offsetH, offsetV float64) Borders {
	baseH := (paperWidth - printWidth) / 2
	baseV := (paperHeight - printHeight) / 2
	return Borders{
		Left:   baseH - offsetH,
		Right:  baseH + offsetH,
		Top:    baseV - offsetV,
		Bottom: baseV + offsetV,
	}
}

// Percent expresses part as a percentage of whole, 0 when whole is 0.
func Percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * part / whole
}

// quarterDistance is how far x sits from the nearest quarter-inch multiple.
func quarterDistance(x float64) float64 {
	rem := math.Mod(math.Abs(x), quarterInch)
	return math.Min(rem, quarterInch-rem)
}

const quarterInch = 0.25
