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

import "bordercalc/internal/easel"

// Readings are the four easel blade positions, inches on the easel ruler.
type Readings struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64

	// Warning is set when any reading falls below zero; easel rulers have
	// no markings there.
	Warning string
}

// BladeReadings re-origins the border geometry against the easel slot. Paper
// smaller than its slot sits centered, shifting every reading by half the
// size difference on that axis ("paper shift").
func BladeReadings(b Borders, slot easel.Size, paperWidth, paperHeight float64) Readings {
	shiftX := (slot.Width - paperWidth) / 2
	shiftY := (slot.Height - paperHeight) / 2
	r := Readings{
		Left:   b.Left + shiftX,
		Right:  b.Right + shiftX,
		Top:    b.Top + shiftY,
		Bottom: b.Bottom + shiftY,
	}
	if r.Left < 0 || r.Right < 0 || r.Top < 0 || r.Bottom < 0 {
		r.Warning = bladeWarningText
	}
	return r
}
