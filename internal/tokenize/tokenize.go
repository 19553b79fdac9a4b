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

// Package tokenize splits transcript text into word, punctuation and whitespace runs.
package tokenize

import "unicode"

// Kind classifies a token.
type Kind uint8

const (
	Word  Kind = iota + 1 // Letters, numbers, combining marks and apostrophes.
	Punct                 // One of . , ! ? ; :
	Space                 // Unicode whitespace.
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Punct:
		return "punct"
	case Space:
		return "space"
	default:
		return "invalid"
	}
}

// Token is a maximal run of runes of the same kind. Start and End are byte offsets into the
// tokenized string, Text == s[Start:End].
type Token struct {
	Text       string
	Kind       Kind
	Start, End int
}

// Tokenize splits s into tokens. Runes that are neither word, punctuation nor whitespace runes are
// dropped; they end the current run without producing a token of their own.
func Tokenize(s string) []Token {
	var tokens []Token
	start, cur := 0, Kind(0)
	flush := func(end int) {
		if cur != 0 && end > start {
			tokens = append(tokens, Token{Text: s[start:end], Kind: cur, Start: start, End: end})
		}
	}
	for i, r := range s {
		k := classify(r)
		if k == cur {
			continue
		}
		flush(i)
		start, cur = i, k
	}
	flush(len(s))
	return tokens
}

func classify(r rune) Kind {
	switch {
	case r == '\'' || r == '’':
		return Word
	case unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r):
		return Word
	case r == '.' || r == ',' || r == '!' || r == '?' || r == ';' || r == ':':
		return Punct
	case unicode.IsSpace(r):
		return Space
	default:
		return 0
	}
}

// Words returns the text of all tokens that aren't whitespace.
func Words(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != Space {
			out = append(out, t.Text)
		}
	}
	return out
}

// IsSpace reports whether s is non-empty and consists only of whitespace.
func IsSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsPunct reports whether r is one of the punctuation runes that form Punct tokens.
func IsPunct(r rune) bool {
	return classify(r) == Punct
}
