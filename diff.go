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
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/internal/lcs"
	"znkr.io/transcriptdiff/internal/tokenize"
)

// Type describes how a token changed between the raw and the cleaned text.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Type -linecomment
type Type int

const (
	Unchanged Type = iota // unchanged
	Deleted               // deleted
	Inserted              // inserted
)

// Token is a classified piece of text.
//
//   - For Unchanged, Text is taken from the cleaned text and matches a raw token case-insensitively.
//   - For Deleted, Text is a raw token without a counterpart in the cleaned text.
//   - For Inserted, Text is a cleaned token without a counterpart in the raw text.
type Token struct {
	Text string
	Type Type
}

// Compute compares raw and cleaned word by word and returns a token for every word and
// punctuation run of both texts.
//
// Unchanged and inserted tokens appear in the order of the cleaned text, together with its
// whitespace. Deleted tokens appear at the position they were skipped in the raw text; raw
// whitespace is not part of the output. Consequently:
//
//   - Joining the text of all unchanged and inserted tokens reproduces cleaned up to leading and
//     trailing whitespace.
//   - The words of all deleted and unchanged tokens are the words of raw, up to case.
//
// If raw and cleaned are both empty, the output has length zero.
//
// The following option is supported: [MaxCells]
func Compute(raw, cleaned string, opts ...Option) []Token {
	cfg := config.FromOptions(opts, config.MaxCells)

	rawWords := tokenize.Words(tokenize.Tokenize(raw))
	cleanedTokens := tokenize.Tokenize(cleaned)
	common := lcs.Common(rawWords, tokenize.Words(cleanedTokens), cfg)

	out := make([]Token, 0, len(rawWords)+len(cleanedTokens))
	r, c := 0, 0 // next unconsumed raw word and common token
	for _, tok := range cleanedTokens {
		switch {
		case tok.Kind == tokenize.Space:
			out = append(out, Token{tok.Text, Unchanged})

		case c < len(common) && lcs.Equal(tok.Text, common[c]):
			// The common tokens are a subsequence of the raw words, which means that the match
			// exists and that everything in front of it was removed.
			for r < len(rawWords) && !lcs.Equal(rawWords[r], tok.Text) {
				out = append(out, Token{rawWords[r], Deleted})
				r++
			}
			out = append(out, Token{tok.Text, Unchanged})
			r++
			c++

		default:
			out = append(out, Token{tok.Text, Inserted})
		}
	}
	for ; r < len(rawWords); r++ {
		out = append(out, Token{rawWords[r], Deleted})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
