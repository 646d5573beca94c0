/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package border computes the placement of a print on photographic paper and
// the blade readings needed to set an enlarging easel. The whole pipeline is
// pure: identical States produce identical Calculations, no I/O, no shared
// state, safe for concurrent use.
package border

import (
	"fmt"
	"math"

	"bordercalc/internal/domain"
	"bordercalc/internal/easel"
)

const (
	// minPrintableSpan is the smallest printable extent left on the short
	// paper axis when an oversized minimum border gets clamped.
	minPrintableSpan = 0.5

	// maxPreviewDim bounds the preview box, in UI units.
	maxPreviewDim = 400.0
)

// Warning texts reused by the CLI and diagram exports.
const (
	bladeWarningText = "blade reading below zero: this easel has no markings below zero; position the paper in the slot fully to one side and measure from that edge"
	paperWarningText = "no standard easel matches this paper size; position the paper flush against one side of the easel and treat that edge as zero"
)

// Compute runs the full pipeline over one input snapshot and returns a fresh
// Calculation. It never fails: malformed numeric input degrades to a
// best-effort result with warnings attached.
func Compute(st domain.State) domain.Calculation {
	dims := ResolveDimensions(st)
	pw, ph := dims.PaperWidth, dims.PaperHeight

	calc := domain.Calculation{
		PaperWidth:  pw,
		PaperHeight: ph,
		ShowBlades:  st.ShowBlades,
	}

	// Clamp the minimum border before it can eat the whole sheet.
	mb := st.MinBorder
	if mb < 0 {
		mb = 0
		calc.MinBorderWarning = "minimum border cannot be negative; using 0"
	}
	if maxBorder := (math.Min(pw, ph) - minPrintableSpan) / 2; mb > maxBorder {
		if maxBorder < 0 {
			maxBorder = 0
		}
		mb = maxBorder
		calc.MinBorderWarning = fmt.Sprintf("minimum border leaves no printable area; reduced to %.2f in", mb)
	}
	calc.MinBorder = mb

	printW, printH := PrintSize(pw-2*mb, ph-2*mb, dims.RatioWidth, dims.RatioHeight)
	calc.PrintWidth = printW
	calc.PrintHeight = printH
	calc.PrintWidthPercent = Percent(printW, pw)
	calc.PrintHeightPercent = Percent(printH, ph)

	var reqH, reqV float64
	if st.EnableOffset {
		reqH, reqV = st.HorizontalOffset, st.VerticalOffset
	}
	off := ClampOffsets(pw, ph, printW, printH, mb, reqH, reqV, st.IgnoreMinBorder)
	calc.HorizontalOffset = off.Horizontal
	calc.VerticalOffset = off.Vertical
	calc.OffsetWarning = off.Warning
	if off.Clamped && !st.IgnoreMinBorder && calc.MinBorderWarning == "" {
		calc.MinBorderWarning = "requested offsets conflict with the minimum border and were reduced"
	}

	b := ComputeBorders(pw, ph, printW, printH, off.Horizontal, off.Vertical)
	calc.LeftBorder = b.Left
	calc.RightBorder = b.Right
	calc.TopBorder = b.Top
	calc.BottomBorder = b.Bottom
	calc.LeftBorderPercent = Percent(b.Left, pw)
	calc.RightBorderPercent = Percent(b.Right, pw)
	calc.TopBorderPercent = Percent(b.Top, ph)
	calc.BottomBorderPercent = Percent(b.Bottom, ph)

	fit := easel.SelectEasel(pw, ph)
	calc.EaselWidth = fit.Slot.Width
	calc.EaselHeight = fit.Slot.Height
	calc.IsNonStandardPaperSize = fit.IsNonStandard
	if fit.Easel != (easel.Size{}) {
		calc.EaselLabel = fit.Easel.Label()
	} else {
		calc.EaselLabel = fmt.Sprintf("none (%gx%g in paper)", pw, ph)
	}
	if fit.IsNonStandard {
		calc.PaperSizeWarning = paperWarningText
	}

	r := BladeReadings(b, fit.Slot, pw, ph)
	calc.BladeReadingLeft = r.Left
	calc.BladeReadingRight = r.Right
	calc.BladeReadingTop = r.Top
	calc.BladeReadingBottom = r.Bottom
	calc.BladeWarning = r.Warning

	calc.BladeThickness = easel.BladeThickness(pw, ph)

	if pw > 0 && ph > 0 {
		calc.PreviewScale = math.Min(maxPreviewDim/pw, maxPreviewDim/ph)
		calc.PreviewWidth = pw * calc.PreviewScale
		calc.PreviewHeight = ph * calc.PreviewScale
	}

	for _, w := range []string{calc.MinBorderWarning, calc.OffsetWarning, calc.BladeWarning, calc.PaperSizeWarning} {
		if w != "" {
			calc.Warnings = append(calc.Warnings, w)
		}
	}
	return calc
}
