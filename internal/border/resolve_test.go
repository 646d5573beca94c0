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
	"testing"

	"bordercalc/internal/domain"
)

func TestResolveCatalogPaperPortrait(t *testing.T) {
	d := ResolveDimensions(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2"})
	if d.PaperWidth != 8 || d.PaperHeight != 10 {
		t.Fatalf("paper = %gx%g, want 8x10", d.PaperWidth, d.PaperHeight)
	}
	if d.RatioWidth != 3 || d.RatioHeight != 2 {
		t.Fatalf("ratio = %g:%g, want 3:2", d.RatioWidth, d.RatioHeight)
	}
}

func TestResolveLandscapeSwapsPaper(t *testing.T) {
	d := ResolveDimensions(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2", IsLandscape: true})
	if d.PaperWidth != 10 || d.PaperHeight != 8 {
		t.Fatalf("landscape paper = %gx%g, want 10x8", d.PaperWidth, d.PaperHeight)
	}
}

func TestResolveRatioFlip(t *testing.T) {
	d := ResolveDimensions(domain.State{PaperSizeID: "8x10", AspectRatioID: "3:2", IsRatioFlipped: true})
	if d.RatioWidth != 2 || d.RatioHeight != 3 {
		t.Fatalf("flipped ratio = %g:%g, want 2:3", d.RatioWidth, d.RatioHeight)
	}
}

func TestResolveCustomPaper(t *testing.T) {
	d := ResolveDimensions(domain.State{
		PaperSizeID: CustomID, CustomPaperWidth: 9.5, CustomPaperHeight: 12,
		AspectRatioID: "1:1",
	})
	if d.PaperWidth != 9.5 || d.PaperHeight != 12 {
		t.Fatalf("custom paper = %gx%g, want 9.5x12", d.PaperWidth, d.PaperHeight)
	}
}

func TestResolveInvalidCustomPaperFallsBack(t *testing.T) {
	d := ResolveDimensions(domain.State{
		PaperSizeID: CustomID, CustomPaperWidth: 0, CustomPaperHeight: -3,
		AspectRatioID: "3:2",
	})
	if d.PaperWidth != 8 || d.PaperHeight != 10 {
		t.Fatalf("invalid custom paper should fall back to 8x10, got %gx%g", d.PaperWidth, d.PaperHeight)
	}
}

func TestResolveUnknownIDsFallBack(t *testing.T) {
	d := ResolveDimensions(domain.State{PaperSizeID: "bogus", AspectRatioID: "nope"})
	if d.PaperWidth != 8 || d.PaperHeight != 10 {
		t.Fatalf("unknown paper id should fall back to 8x10, got %gx%g", d.PaperWidth, d.PaperHeight)
	}
	// Unknown ratio degrades to the paper's own shape.
	if d.RatioWidth != 8 || d.RatioHeight != 10 {
		t.Fatalf("unknown ratio should fall back to paper shape, got %g:%g", d.RatioWidth, d.RatioHeight)
	}
}

func TestResolveZeroCustomRatioFallsBackToPaperShape(t *testing.T) {
	d := ResolveDimensions(domain.State{
		PaperSizeID: "5x7", AspectRatioID: CustomID,
		CustomRatioWidth: 0, CustomRatioHeight: 2,
	})
	if d.RatioWidth != 5 || d.RatioHeight != 7 {
		t.Fatalf("zero ratio component should fall back to paper shape, got %g:%g", d.RatioWidth, d.RatioHeight)
	}
}
