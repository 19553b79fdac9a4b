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

package tokenize

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Token
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "words",
			in:   "hello world",
			want: []Token{
				{"hello", Word, 0, 5},
				{" ", Space, 5, 6},
				{"world", Word, 6, 11},
			},
		},
		{
			name: "punctuation-run",
			in:   "wait...what?!",
			want: []Token{
				{"wait", Word, 0, 4},
				{"...", Punct, 4, 7},
				{"what", Word, 7, 11},
				{"?!", Punct, 11, 13},
			},
		},
		{
			name: "whitespace-run",
			in:   "a \t\n b",
			want: []Token{
				{"a", Word, 0, 1},
				{" \t\n ", Space, 1, 5},
				{"b", Word, 5, 6},
			},
		},
		{
			name: "apostrophes",
			in:   "don't rock’n’roll",
			want: []Token{
				{"don't", Word, 0, 5},
				{" ", Space, 5, 6},
				{"rock’n’roll", Word, 6, 21},
			},
		},
		{
			name: "accents",
			in:   "Čez že naïve",
			want: []Token{
				{"Čez", Word, 0, 4},
				{" ", Space, 4, 5},
				{"že", Word, 5, 8},
				{" ", Space, 8, 9},
				{"naïve", Word, 9, 15},
			},
		},
		{
			name: "combining-mark",
			in:   "cafe\u0301 ok",
			want: []Token{
				{"cafe\u0301", Word, 0, 6},
				{" ", Space, 6, 7},
				{"ok", Word, 7, 9},
			},
		},
		{
			name: "digits",
			in:   "3.5 kg",
			want: []Token{
				{"3", Word, 0, 1},
				{".", Punct, 1, 2},
				{"5", Word, 2, 3},
				{" ", Space, 3, 4},
				{"kg", Word, 4, 6},
			},
		},
		{
			name: "dropped-symbols",
			in:   "well-known (maybe)",
			want: []Token{
				{"well", Word, 0, 4},
				{"known", Word, 5, 10},
				{" ", Space, 10, 11},
				{"maybe", Word, 12, 17},
			},
		},
		{
			name: "symbols-only",
			in:   "--- ***",
			want: []Token{
				{" ", Space, 3, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) result is different [-want,+got]:\n%s", tt.in, diff)
			}
			for _, tok := range got {
				if tok.Text != tt.in[tok.Start:tok.End] {
					t.Errorf("Tokenize(%q): token %q doesn't match input at [%d:%d]", tt.in, tok.Text, tok.Start, tok.End)
				}
			}
		})
	}
}

func TestTokenizeCoversKnownRunes(t *testing.T) {
	in := "Um, so I went to the store, and uh... it was closed!"
	var b strings.Builder
	for _, tok := range Tokenize(in) {
		b.WriteString(tok.Text)
	}
	if got := b.String(); got != in {
		t.Errorf("concatenated tokens = %q, want %q", got, in)
	}
}

func TestWords(t *testing.T) {
	got := Words(Tokenize(" hello,  world "))
	want := []string{"hello", ",", "world"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Words(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestIsSpace(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"", false},
		{" ", true},
		{"\t\n", true},
		{" a ", false},
		{".", false},
	} {
		if got := IsSpace(tt.in); got != tt.want {
			t.Errorf("IsSpace(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
