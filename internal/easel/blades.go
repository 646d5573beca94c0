/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package easel

import "math"

// Blade indicator thickness scaling. Preview blades are drawn thicker for
// small paper so they stay visible, scaled by paper area relative to the
// largest standard easel.
const (
	// BaseBladeThickness is the indicator thickness at the reference size.
	BaseBladeThickness = 15

	// Reference sheet for scale = 1.
	referenceBladeWidth  = 20.0
	referenceBladeHeight = 24.0

	// maxBladeScale caps the thickness for tiny paper; there is no lower
	// clamp, large paper legitimately gets thin indicators.
	maxBladeScale = 2.0
)

// BladeThickness returns the preview blade indicator thickness for the given
// paper size. Non-positive dimensions return the unscaled base thickness.
func BladeThickness(paperWidth, paperHeight float64) int {
	if paperWidth <= 0 || paperHeight <= 0 {
		return BaseBladeThickness
	}
	scale := (referenceBladeWidth * referenceBladeHeight) / (paperWidth * paperHeight)
	if scale > maxBladeScale {
		scale = maxBladeScale
	}
	return int(math.Round(BaseBladeThickness * scale))
}
