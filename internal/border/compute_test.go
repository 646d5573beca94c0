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
	"reflect"
	"testing"

	"bordercalc/internal/domain"
	"bordercalc/internal/easel"
)

func TestComputeEndToEnd8x10ThreeTwo(t *testing.T) {
	c := Compute(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2", MinBorder: 0.5})

	// Available 7x9, 3:2 is width-bound: print 7 x 4.667.
	if !approx(c.PrintWidth, 7) || !approx(c.PrintHeight, 7.0/1.5) {
		t.Fatalf("print = %gx%g, want 7x%g", c.PrintWidth, c.PrintHeight, 7.0/1.5)
	}
	if !approx(c.LeftBorder, 0.5) || !approx(c.RightBorder, 0.5) {
		t.Fatalf("left/right = %g/%g, want 0.5", c.LeftBorder, c.RightBorder)
	}
	want := (10 - 7.0/1.5) / 2
	if !approx(c.TopBorder, want) || !approx(c.BottomBorder, want) {
		t.Fatalf("top/bottom = %g/%g, want %g", c.TopBorder, c.BottomBorder, want)
	}

	// 8x10 is a standard easel: no paper shift, readings equal borders.
	if c.IsNonStandardPaperSize {
		t.Fatalf("8x10 should be standard: %+v", c)
	}
	if !approx(c.BladeReadingLeft, c.LeftBorder) || !approx(c.BladeReadingTop, c.TopBorder) {
		t.Fatalf("readings should equal borders on a standard easel: %+v", c)
	}
	if len(c.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", c.Warnings)
	}
}

func TestComputeLandscapeStandardPaper(t *testing.T) {
	c := Compute(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2", MinBorder: 0.5, IsLandscape: true})
	if c.PaperWidth != 10 || c.PaperHeight != 8 {
		t.Fatalf("paper = %gx%g, want 10x8", c.PaperWidth, c.PaperHeight)
	}
	if c.IsNonStandardPaperSize {
		t.Fatalf("landscape 10x8 matches the 8x10 easel transposed")
	}
	if c.EaselWidth != 10 || c.EaselHeight != 8 {
		t.Fatalf("easel slot should follow paper orientation, got %gx%g", c.EaselWidth, c.EaselHeight)
	}
	for _, r := range []float64{c.BladeReadingLeft, c.BladeReadingRight, c.BladeReadingTop, c.BladeReadingBottom} {
		if r < 0 {
			t.Fatalf("unexpected negative reading: %+v", c)
		}
	}
}

func TestComputeOversizePaperFallsBack(t *testing.T) {
	c := Compute(domain.State{
		PaperSizeID: CustomID, CustomPaperWidth: 30, CustomPaperHeight: 40,
		AspectRatioID: "3:2", MinBorder: 1,
	})
	if !c.IsNonStandardPaperSize {
		t.Fatalf("30x40 must be non-standard")
	}
	if c.EaselWidth != 30 || c.EaselHeight != 40 {
		t.Fatalf("easel should fall back to paper dims, got %gx%g", c.EaselWidth, c.EaselHeight)
	}
	if c.PaperSizeWarning == "" {
		t.Fatalf("expected paper size warning")
	}
}

func TestComputePrintNeverExceedsPaper(t *testing.T) {
	papers := []string{"4x5", "5x7", "8x10", "11x14", "16x20", "20x24"}
	ratios := []string{"3:2", "1:1", "65:24", "4:5", "7:6"}
	borders := []float64{0, 0.25, 0.5, 1, 2}
	for _, p := range papers {
		for _, r := range ratios {
			for _, mb := range borders {
				for _, landscape := range []bool{false, true} {
					c := Compute(domain.State{PaperSizeID: p, AspectRatioID: r, MinBorder: mb, IsLandscape: landscape})
					if c.PrintWidth > c.PaperWidth+eps || c.PrintHeight > c.PaperHeight+eps {
						t.Fatalf("print %gx%g exceeds paper %gx%g (%s %s %g)",
							c.PrintWidth, c.PrintHeight, c.PaperWidth, c.PaperHeight, p, r, mb)
					}
				}
			}
		}
	}
}

func TestComputeOffsetClampConflictWarnings(t *testing.T) {
	c := Compute(domain.State{
		PaperSizeID: "8x10", AspectRatioID: "1:1", MinBorder: 0.5,
		EnableOffset: true, HorizontalOffset: 0.25, VerticalOffset: 0.5,
	})
	// Print is 7x7; horizontal slack is all border, so any offset clamps.
	if c.HorizontalOffset != 0 {
		t.Fatalf("horizontal offset should clamp to 0, got %g", c.HorizontalOffset)
	}
	if c.VerticalOffset != 0.5 {
		t.Fatalf("vertical offset should pass, got %g", c.VerticalOffset)
	}
	if c.OffsetWarning == "" || c.MinBorderWarning == "" {
		t.Fatalf("expected offset and min-border warnings, got %+v", c)
	}
	if !approx(c.TopBorder, 1.0) || !approx(c.BottomBorder, 2.0) {
		t.Fatalf("top/bottom = %g/%g, want 1/2", c.TopBorder, c.BottomBorder)
	}
}

func TestComputeIgnoreMinBorderAllowsEdge(t *testing.T) {
	c := Compute(domain.State{
		PaperSizeID: "8x10", AspectRatioID: "1:1", MinBorder: 0.5,
		EnableOffset: true, HorizontalOffset: 0.5, IgnoreMinBorder: true,
	})
	if c.HorizontalOffset != 0.5 {
		t.Fatalf("offset to paper edge should pass with IgnoreMinBorder, got %g", c.HorizontalOffset)
	}
	if !approx(c.LeftBorder, 0) || !approx(c.RightBorder, 1) {
		t.Fatalf("left/right = %g/%g, want 0/1", c.LeftBorder, c.RightBorder)
	}
	if c.OffsetWarning != "" {
		t.Fatalf("unexpected offset warning: %q", c.OffsetWarning)
	}
}

func TestComputeOffsetsIgnoredWhenDisabled(t *testing.T) {
	c := Compute(domain.State{
		PaperSizeID: "8x10", AspectRatioID: "1:1", MinBorder: 0.5,
		HorizontalOffset: 2, VerticalOffset: 2,
	})
	if c.HorizontalOffset != 0 || c.VerticalOffset != 0 {
		t.Fatalf("offsets must be ignored unless enabled: %+v", c)
	}
	if c.OffsetWarning != "" {
		t.Fatalf("disabled offsets should not warn: %q", c.OffsetWarning)
	}
}

func TestComputeClampsOversizeMinBorder(t *testing.T) {
	c := Compute(domain.State{PaperSizeID: "8x10", AspectRatioID: "1:1", MinBorder: 5})
	if c.MinBorder >= 4 {
		t.Fatalf("min border should be reduced below half the short axis, got %g", c.MinBorder)
	}
	if c.MinBorderWarning == "" {
		t.Fatalf("expected min border warning")
	}
	if c.PrintWidth <= 0 || c.PrintHeight <= 0 {
		t.Fatalf("clamped border must leave printable area: %+v", c)
	}
}

func TestComputeNegativeMinBorderClampsToZero(t *testing.T) {
	c := Compute(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2", MinBorder: -1})
	if c.MinBorder != 0 {
		t.Fatalf("negative border should clamp to 0, got %g", c.MinBorder)
	}
	if c.MinBorderWarning == "" {
		t.Fatalf("expected warning for negative border")
	}
}

func TestComputeBladeThicknessScales(t *testing.T) {
	small := Compute(domain.State{PaperSizeID: "4x5", AspectRatioID: "3:2", MinBorder: 0.25})
	large := Compute(domain.State{PaperSizeID: "20x24", AspectRatioID: "3:2", MinBorder: 0.5})
	if small.BladeThickness != 2*easel.BaseBladeThickness {
		t.Fatalf("4x5 thickness = %d, want cap %d", small.BladeThickness, 2*easel.BaseBladeThickness)
	}
	if large.BladeThickness != easel.BaseBladeThickness {
		t.Fatalf("20x24 thickness = %d, want base %d", large.BladeThickness, easel.BaseBladeThickness)
	}
}

func TestComputePreviewFitsBox(t *testing.T) {
	c := Compute(domain.State{PaperSizeID: "16x20", AspectRatioID: "3:2", MinBorder: 0.5})
	if c.PreviewWidth > 400+eps || c.PreviewHeight > 400+eps {
		t.Fatalf("preview %gx%g exceeds 400 box", c.PreviewWidth, c.PreviewHeight)
	}
	if !approx(c.PreviewWidth/c.PreviewHeight, c.PaperWidth/c.PaperHeight) {
		t.Fatalf("preview aspect drifted: %+v", c)
	}
}

func TestComputeDeterministic(t *testing.T) {
	st := domain.State{
		PaperSizeID: "11x14", AspectRatioID: "65:24", MinBorder: 0.75,
		EnableOffset: true, HorizontalOffset: 0.3, VerticalOffset: -0.2,
	}
	a := Compute(st)
	b := Compute(st)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical states produced different calculations:\n%+v\n%+v", a, b)
	}
}
