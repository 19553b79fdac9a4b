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
	"unicode"
	"unicode/utf8"

	"znkr.io/transcriptdiff/internal/tokenize"
)

// Group merges consecutive tokens of the same type into runs.
//
// When a word or punctuation run is appended to a run, a single space is put in between unless the
// run already ends in whitespace or the appended text starts with punctuation. Punctuation attaches
// to the preceding word as it does in the transcript, so a removed "um" followed by a removed ","
// reads "um," and not "um ,".
//
// Unchanged whitespace between two runs of deleted (or two runs of inserted) tokens becomes part of
// that run, so that a removed phrase like "um, so" is displayed as one run instead of two.
//
// Group is idempotent, tokens with empty text are dropped.
func Group(tokens []Token) []Token {
	var out []Token
	for i, tok := range tokens {
		if tok.Text == "" {
			continue
		}
		if len(out) == 0 {
			out = append(out, tok)
			continue
		}
		last := &out[len(out)-1]
		switch {
		case tok.Type == last.Type:
			last.Text = appendPiece(last.Text, tok.Text)
		case tok.Type == Unchanged && last.Type != Unchanged && tokenize.IsSpace(tok.Text) && nextType(tokens[i+1:]) == last.Type:
			last.Text += tok.Text
		default:
			out = append(out, tok)
		}
	}
	return out
}

func appendPiece(run, piece string) string {
	if tokenize.IsSpace(piece) {
		return run + piece
	}
	if last, _ := utf8.DecodeLastRuneInString(run); unicode.IsSpace(last) {
		return run + piece
	}
	if first, _ := utf8.DecodeRuneInString(piece); tokenize.IsPunct(first) {
		return run + piece
	}
	return run + " " + piece
}

// nextType returns the type of the first token in tokens that isn't whitespace, or -1 if there is
// none.
func nextType(tokens []Token) Type {
	for _, tok := range tokens {
		if tok.Text != "" && !tokenize.IsSpace(tok.Text) {
			return tok.Type
		}
	}
	return -1
}
