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

package transcriptdiff

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"znkr.io/transcriptdiff/internal/tokenize"
)

// View is the text of a token sequence as it's displayed, together with the location of every
// token in it.
type View struct {
	Text  string
	Spans []Span
}

// Span locates a token in [View.Text].
type Span struct {
	Start, End int // Byte offsets, Text[Start:End] is the token text.
	Type       Type
}

// NewView lays out tokens for display. Tokens are written one after the other; a separating space
// that belongs to no span is written between two tokens if the first doesn't end in whitespace
// and the second starts with neither whitespace nor punctuation. This keeps deleted words, which
// carry no whitespace of their own, apart from their neighbors.
func NewView(tokens []Token) View {
	var b strings.Builder
	spans := make([]Span, 0, len(tokens))
	prev := ""
	for _, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		if needsSeparator(prev, tok.Text) {
			b.WriteByte(' ')
		}
		start := b.Len()
		b.WriteString(tok.Text)
		spans = append(spans, Span{start, b.Len(), tok.Type})
		prev = tok.Text
	}
	return View{Text: b.String(), Spans: spans}
}

func needsSeparator(prev, next string) bool {
	if prev == "" {
		return false
	}
	if r, _ := utf8.DecodeLastRuneInString(prev); unicode.IsSpace(r) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(next)
	return !unicode.IsSpace(r) && !tokenize.IsPunct(r)
}

// Selection describes text a user highlighted in a rendered segment.
type Selection struct {
	Text       string // The selected text as displayed.
	Start, End int    // Byte range of the selection in the View the diff was displayed with.
}

// NewSelection returns the selection of text[start:end]. The range is ordered, clamped to text and
// widened to rune boundaries, so any pair of offsets is accepted.
func NewSelection(text string, start, end int) Selection {
	start, end = clampRange(text, start, end)
	return Selection{Text: text[start:end], Start: start, End: end}
}

// FilterSelection returns the text of sel that's eligible to be copied or moved to another segment,
// with whitespace normalized.
//
// If showDiff is false or the segment is reverted (i.e. it's displayed as plain raw text), the
// whole selected text is returned. Otherwise, sel's range is located in v and every part of it that
// overlaps a deleted token is dropped; deleted text is a record of what was removed and never live
// content.
//
// The second result is false if nothing remains. Callers must treat this as "no selection".
func FilterSelection(v View, sel Selection, showDiff, isReverted bool) (string, bool) {
	if !showDiff || isReverted {
		s := Normalize(sel.Text)
		return s, s != ""
	}

	start, end := clampRange(v.Text, sel.Start, sel.End)
	var b strings.Builder
	pos := start // start of the text not yet written
	for _, sp := range v.Spans {
		if sp.End <= start || sp.Type != Deleted {
			continue
		}
		if sp.Start >= end {
			break
		}
		if s := max(sp.Start, start); s > pos {
			b.WriteString(v.Text[pos:s])
		}
		pos = max(pos, min(sp.End, end))
	}
	if pos < end {
		b.WriteString(v.Text[pos:end])
	}
	s := Normalize(b.String())
	return s, s != ""
}

// clampRange limits [start, end) to text, orders it and widens it to rune boundaries.
func clampRange(text string, start, end int) (int, int) {
	if start > end {
		start, end = end, start
	}
	start = min(max(start, 0), len(text))
	end = min(max(end, 0), len(text))
	for start > 0 && start < len(text) && !utf8.RuneStart(text[start]) {
		start--
	}
	for end < len(text) && !utf8.RuneStart(text[end]) {
		end++
	}
	return start, end
}

// Normalize collapses all runs of whitespace in s into a single space and removes leading and
// trailing whitespace.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
