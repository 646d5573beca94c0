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

import "math"

// SearchOptions bounds the optimal-border search. The zero value is replaced
// by the defaults below.
type SearchOptions struct {
	// Step between candidate borders, inches.
	Step float64
	// Window scanned on each side of the starting border, inches.
	Window float64
}

// DefaultSearchOptions scans ±0.5 in around the start in 0.25 in steps.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Step: 0.25, Window: 0.5}
}

func (o SearchOptions) normalized() SearchOptions {
	if o.Step <= 0 {
		o.Step = 0.25
	}
	if o.Window <= 0 {
		o.Window = 0.5
	}
	return o
}

// OptimalMinBorder nudges the starting minimum border toward a value whose
// centered left/top borders land near quarter-inch multiples, which are easy
// to mark with a ruler. The search is a bounded scan; it returns the start
// unchanged when the ratio is degenerate or any candidate would leave no
// printable area.
func OptimalMinBorder(paperWidth, paperHeight, ratioWidth, ratioHeight, start float64, opts SearchOptions) float64 {
	if ratioWidth <= 0 || ratioHeight <= 0 {
		return start
	}
	opts = opts.normalized()

	steps := int(math.Round(opts.Window / opts.Step))
	if steps < 1 {
		steps = 1
	}

	var candidates []float64
	// Nearest-first ordering makes the start win ties.
	for k := 0; k <= steps; k++ {
		for _, sign := range []float64{1, -1} {
			if k == 0 && sign < 0 {
				continue
			}
			b := start + sign*float64(k)*opts.Step
			if b < 0 {
				continue
			}
			candidates = append(candidates, b)
		}
	}

	for _, b := range candidates {
		if paperWidth-2*b <= 0 || paperHeight-2*b <= 0 {
			return start
		}
	}

	best := start
	bestScore := math.Inf(1)
	for _, b := range candidates {
		pw, ph := PrintSize(paperWidth-2*b, paperHeight-2*b, ratioWidth, ratioHeight)
		left := (paperWidth - pw) / 2
		top := (paperHeight - ph) / 2
		score := quarterDistance(left) + quarterDistance(top)
		if score < bestScore {
			bestScore = score
			best = b
		}
	}
	return best
}
