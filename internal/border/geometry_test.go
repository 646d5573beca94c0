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
	"math"
	"testing"

	"bordercalc/internal/easel"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestPrintSizeWidthBound(t *testing.T) {
	// 7x9 available, 3:2 target: 7/9 < 1.5, width binds.
	w, h := PrintSize(7, 9, 3, 2)
	if !approx(w, 7) || !approx(h, 7.0/1.5) {
		t.Fatalf("got %gx%g, want 7x%g", w, h, 7.0/1.5)
	}
}

func TestPrintSizeHeightBound(t *testing.T) {
	// 9x7 available, 2:3 target: 9/7 > 0.667, height binds.
	w, h := PrintSize(9, 7, 2, 3)
	if !approx(h, 7) || !approx(w, 7*2.0/3.0) {
		t.Fatalf("got %gx%g, want %gx7", w, h, 7*2.0/3.0)
	}
}

func TestPrintSizePreservesRatio(t *testing.T) {
	ratios := [][2]float64{{3, 2}, {1, 1}, {65, 24}, {4, 5}}
	boxes := [][2]float64{{7, 9}, {9, 7}, {3, 19}, {10, 10}}
	for _, r := range ratios {
		for _, b := range boxes {
			w, h := PrintSize(b[0], b[1], r[0], r[1])
			if w > b[0]+eps || h > b[1]+eps {
				t.Fatalf("print %gx%g exceeds box %gx%g", w, h, b[0], b[1])
			}
			if !approx(w/h, r[0]/r[1]) {
				t.Fatalf("ratio %g:%g not preserved in box %v: got %gx%g", r[0], r[1], b, w, h)
			}
		}
	}
}

func TestPrintSizeDefendsDegenerateInput(t *testing.T) {
	cases := [][4]float64{
		{0, 9, 3, 2},
		{7, -1, 3, 2},
		{7, 9, 0, 2},
		{7, 9, 3, 0},
	}
	for _, c := range cases {
		if w, h := PrintSize(c[0], c[1], c[2], c[3]); w != 0 || h != 0 {
			t.Fatalf("PrintSize(%v) = %gx%g, want zero size", c, w, h)
		}
	}
}

func TestClampOffsetsNoOpWithinBounds(t *testing.T) {
	// 8x10 paper, 7x7 print, border 0.5: maxV = 1.5-0.5 = 1.
	o := ClampOffsets(8, 10, 7, 7, 0.5, 0, 0.75, false)
	if o.Clamped || o.Warning != "" {
		t.Fatalf("expected no clamping, got %+v", o)
	}
	if o.Vertical != 0.75 {
		t.Fatalf("vertical offset changed: %g", o.Vertical)
	}
}

func TestClampOffsetsClampsPerAxis(t *testing.T) {
	// maxH = 0.5-0.5 = 0, maxV = 1.5-0.5 = 1.
	o := ClampOffsets(8, 10, 7, 7, 0.5, 0.25, 2, false)
	if !o.Clamped || o.Warning == "" {
		t.Fatalf("expected clamping with warning, got %+v", o)
	}
	if o.Horizontal != 0 {
		t.Fatalf("horizontal should clamp to 0, got %g", o.Horizontal)
	}
	if o.Vertical != 1 {
		t.Fatalf("vertical should clamp to 1, got %g", o.Vertical)
	}
}

func TestClampOffsetsIgnoreMinBorderExtendsToEdge(t *testing.T) {
	o := ClampOffsets(8, 10, 7, 7, 0.5, 0.25, 0, true)
	if o.Clamped {
		t.Fatalf("offset within paper edge should pass, got %+v", o)
	}
	if o.Horizontal != 0.25 {
		t.Fatalf("horizontal = %g, want 0.25", o.Horizontal)
	}
	// Past the edge still clamps.
	o = ClampOffsets(8, 10, 7, 7, 0.5, 0.75, 0, true)
	if o.Horizontal != 0.5 || !o.Clamped {
		t.Fatalf("expected clamp at paper edge 0.5, got %+v", o)
	}
}

func TestClampOffsetsNegativeRequests(t *testing.T) {
	o := ClampOffsets(8, 10, 7, 7, 0.5, 0, -2, false)
	if o.Vertical != -1 {
		t.Fatalf("negative vertical should clamp to -1, got %g", o.Vertical)
	}
}

func TestComputeBordersCentered(t *testing.T) {
	b := ComputeBorders(8, 10, 7, 7.0/1.5, 0, 0)
	if !approx(b.Left, 0.5) || !approx(b.Right, 0.5) {
		t.Fatalf("left/right = %g/%g, want 0.5/0.5", b.Left, b.Right)
	}
	want := (10 - 7.0/1.5) / 2
	if !approx(b.Top, want) || !approx(b.Bottom, want) {
		t.Fatalf("top/bottom = %g/%g, want %g", b.Top, b.Bottom, want)
	}
}

func TestComputeBordersOffsetAsymmetry(t *testing.T) {
	b := ComputeBorders(8, 10, 6, 6, 0.25, -0.5)
	if !approx(b.Left, 0.75) || !approx(b.Right, 1.25) {
		t.Fatalf("left/right = %g/%g, want 0.75/1.25", b.Left, b.Right)
	}
	if !approx(b.Top, 2.5) || !approx(b.Bottom, 1.5) {
		t.Fatalf("top/bottom = %g/%g, want 2.5/1.5", b.Top, b.Bottom)
	}
	// Opposite edges absorb each other: totals stay constant.
	if !approx(b.Left+b.Right, 2) || !approx(b.Top+b.Bottom, 4) {
		t.Fatalf("border sums changed: %+v", b)
	}
}

func TestPercentZeroGuard(t *testing.T) {
	if Percent(1, 0) != 0 {
		t.Fatalf("Percent with zero whole must return 0")
	}
	if !approx(Percent(2, 8), 25) {
		t.Fatalf("Percent(2,8) = %g, want 25", Percent(2, 8))
	}
}

func TestBladeReadingsCenteredPaperShift(t *testing.T) {
	// 6x9 paper centered in an 8x10 slot: shift (1, 0.5).
	b := Borders{Left: 0.5, Right: 0.5, Top: 1, Bottom: 1}
	r := BladeReadings(b, easel.Size{Width: 8, Height: 10}, 6, 9)
	if !approx(r.Left, 1.5) || !approx(r.Right, 1.5) {
		t.Fatalf("left/right readings = %g/%g, want 1.5", r.Left, r.Right)
	}
	if !approx(r.Top, 1.5) || !approx(r.Bottom, 1.5) {
		t.Fatalf("top/bottom readings = %g/%g, want 1.5", r.Top, r.Bottom)
	}
	if r.Warning != "" {
		t.Fatalf("unexpected warning: %q", r.Warning)
	}
}

func TestBladeReadingsNegativeWarns(t *testing.T) {
	b := Borders{Left: -0.25, Right: 1.25, Top: 1, Bottom: 1}
	r := BladeReadings(b, easel.Size{Width: 8, Height: 10}, 8, 10)
	if r.Warning == "" {
		t.Fatalf("negative reading must produce guidance, got none")
	}
	if !approx(r.Left, -0.25) {
		t.Fatalf("left reading = %g, want -0.25", r.Left)
	}
}
