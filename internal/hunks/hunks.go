// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hunks selects the parts of a transcript that are displayed when only changes are of
// interest, the same way a unified diff shows changed lines together with a few lines of context.
package hunks

// Hunk is a range of segments [Start, End) with at least one changed segment.
type Hunk struct {
	Start, End int
	Changed    int // Number of changed segments in the hunk.
}

// Find groups the changed segments into hunks. Each hunk includes up to context unchanged
// segments before and after its changes; hunks with overlapping or adjacent context are merged.
//
// If context < 0, a single hunk with all segments is returned, even if nothing changed.
func Find(changed []bool, context int) []Hunk {
	n := len(changed)
	if n == 0 {
		return nil
	}
	if context < 0 {
		h := Hunk{Start: 0, End: n}
		for _, c := range changed {
			if c {
				h.Changed++
			}
		}
		return []Hunk{h}
	}

	var hunks []Hunk
	start := -1   // start of the current hunk
	nchanged := 0 // number of changed segments in the current hunk
	run := 0      // number of consecutive unchanged segments
	for i, c := range changed {
		if c {
			run = 0

			// If we're not inside a hunk, start a new one or, if the context windows overlap,
			// continue with the previous hunk.
			if start < 0 {
				start, nchanged = max(0, i-context), 0
				if len(hunks) > 0 && hunks[len(hunks)-1].End >= start {
					h := hunks[len(hunks)-1]
					start, nchanged = h.Start, h.Changed
					hunks = hunks[:len(hunks)-1]
				}
			}
			nchanged++
		} else {
			run++
		}
		// Finish the hunk once it has enough trailing context.
		if start >= 0 && (run >= context || i == n-1) {
			hunks = append(hunks, Hunk{start, i + 1, nchanged})
			start = -1
		}
	}
	return hunks
}
