/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

// This file defines the data model of the print-border calculator.
// All linear values are inches; the engine performs no unit conversion.

// PaperSize is a sheet of photographic paper, width by height.
type PaperSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns width times height.
func (p PaperSize) Area() float64 { return p.Width * p.Height }

// AspectRatio is the width:height ratio of the projected image.
type AspectRatio struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// State is the full input snapshot for one computation. A State is
// caller-owned and immutable per call; the engine keeps no history.
type State struct {
	// PaperSizeID selects a catalog paper size, or "custom".
	PaperSizeID       string  `json:"paperSize"`
	CustomPaperWidth  float64 `json:"customPaperWidth,omitempty"`
	CustomPaperHeight float64 `json:"customPaperHeight,omitempty"`

	// AspectRatioID selects a catalog aspect ratio, or "custom".
	AspectRatioID     string  `json:"aspectRatio"`
	CustomRatioWidth  float64 `json:"customRatioWidth,omitempty"`
	CustomRatioHeight float64 `json:"customRatioHeight,omitempty"`

	// MinBorder is the minimum border on every edge, inches.
	MinBorder float64 `json:"minBorder"`

	// Off-center adjustment. Offsets are ignored unless EnableOffset is set.
	EnableOffset     bool    `json:"enableOffset,omitempty"`
	HorizontalOffset float64 `json:"horizontalOffset,omitempty"`
	VerticalOffset   float64 `json:"verticalOffset,omitempty"`

	// IgnoreMinBorder lets offsets push the print all the way to the paper
	// edge instead of stopping at MinBorder.
	IgnoreMinBorder bool `json:"ignoreMinBorder,omitempty"`

	IsLandscape    bool `json:"isLandscape,omitempty"`
	IsRatioFlipped bool `json:"isRatioFlipped,omitempty"`

	// ShowBlades toggles blade indicators in previews and diagrams.
	ShowBlades bool `json:"showBlades,omitempty"`
}

// Calculation is the complete result of one computation. It is a value type
// with no identity; every input change produces a fresh Calculation.
type Calculation struct {
	PaperWidth  float64 `json:"paperWidth"`
	PaperHeight float64 `json:"paperHeight"`

	PrintWidth         float64 `json:"printWidth"`
	PrintHeight        float64 `json:"printHeight"`
	PrintWidthPercent  float64 `json:"printWidthPercent"`
	PrintHeightPercent float64 `json:"printHeightPercent"`

	LeftBorder   float64 `json:"leftBorder"`
	RightBorder  float64 `json:"rightBorder"`
	TopBorder    float64 `json:"topBorder"`
	BottomBorder float64 `json:"bottomBorder"`

	LeftBorderPercent   float64 `json:"leftBorderPercent"`
	RightBorderPercent  float64 `json:"rightBorderPercent"`
	TopBorderPercent    float64 `json:"topBorderPercent"`
	BottomBorderPercent float64 `json:"bottomBorderPercent"`

	// Blade readings are ruler positions on the easel, inches.
	BladeReadingLeft   float64 `json:"bladeReadingLeft"`
	BladeReadingRight  float64 `json:"bladeReadingRight"`
	BladeReadingTop    float64 `json:"bladeReadingTop"`
	BladeReadingBottom float64 `json:"bladeReadingBottom"`

	// BladeThickness is the indicator thickness for preview rendering,
	// scaled by paper area.
	BladeThickness int `json:"bladeThickness"`

	// EaselWidth/Height are the chosen easel slot dimensions, oriented to
	// match the paper. EaselLabel is a human-readable description.
	EaselWidth             float64 `json:"easelWidth"`
	EaselHeight            float64 `json:"easelHeight"`
	EaselLabel             string  `json:"easelLabel"`
	IsNonStandardPaperSize bool    `json:"isNonStandardPaperSize"`

	// Offsets actually applied, after clamping.
	HorizontalOffset float64 `json:"horizontalOffset"`
	VerticalOffset   float64 `json:"verticalOffset"`

	// MinBorder actually honored, after clamping.
	MinBorder float64 `json:"minBorder"`

	// Preview dimensions for scaled on-screen rendering.
	PreviewScale  float64 `json:"previewScale"`
	PreviewWidth  float64 `json:"previewWidth"`
	PreviewHeight float64 `json:"previewHeight"`

	ShowBlades bool `json:"showBlades"`

	// Advisory warnings; empty string means "none". None of these block
	// the computation.
	OffsetWarning    string `json:"offsetWarning,omitempty"`
	BladeWarning     string `json:"bladeWarning,omitempty"`
	MinBorderWarning string `json:"minBorderWarning,omitempty"`
	PaperSizeWarning string `json:"paperSizeWarning,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}
