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

// Package transcriptdiff compares a verbatim transcript segment with a cleaned up version of it
// word by word.
//
// The main functions are [Compute], which classifies every word and punctuation run as unchanged,
// deleted or inserted, and [Group], which merges those tokens into runs suitable for display.
// [FilterSelection] removes deleted text from a selection made over a rendered diff, so that
// struck-through words are never copied or moved around as if they were part of the transcript.
//
// Words are compared case-insensitively and aligned using a longest common subsequence. The
// alignment is deterministic: the same pair of inputs always produces the same tokens.
//
// Performance: [Compute] takes O(N·M) time and space for N raw and M cleaned tokens. It's meant for
// transcript segments, not whole documents. Inputs above a configurable size (see [MaxCells]) are
// aligned with the Myers algorithm instead.
//
// Note: For rendering the tokens in a terminal, please see [znkr.io/transcriptdiff/render].
//
// [znkr.io/transcriptdiff/render]: https://pkg.go.dev/znkr.io/transcriptdiff/render
package transcriptdiff
