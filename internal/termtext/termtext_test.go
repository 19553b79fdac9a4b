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

package termtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	red   = "\033[31m"
	reset = "\033[0m"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, 0, Width(""))
	assert.Equal(t, 11, Width("hello world"))
	assert.Equal(t, 4, Width("世界"))
	assert.Equal(t, 4, Width("cafe\u0301"))
	assert.Equal(t, 2, Width("\033[9;31mum\033[0m"))
	assert.Equal(t, 5, Width(red+"a"+reset+"bcd"+red+"e"+reset))
	assert.Equal(t, 2, Width("ok\x1bc"))
	assert.Equal(t, 0, Width("\x1b[31"), "unterminated sequence")
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "世   ", Pad("世", 5))
	assert.Equal(t, red+"ab"+reset+"   ", Pad(red+"ab"+reset, 5))
	assert.Equal(t, "abcdef", Pad("abcdef", 5))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name   string
		pieces []Piece
		width  int
		want   []string
	}{
		{
			name:   "empty",
			pieces: nil,
			width:  10,
			want:   nil,
		},
		{
			name:   "no-limit",
			pieces: []Piece{{Text: "hello world"}},
			width:  0,
			want:   []string{"hello world"},
		},
		{
			name:   "fits",
			pieces: []Piece{{Text: "hello world"}},
			width:  11,
			want:   []string{"hello world"},
		},
		{
			name:   "break-at-space",
			pieces: []Piece{{Text: "hello world"}},
			width:  5,
			want:   []string{"hello", "world"},
		},
		{
			name:   "styled",
			pieces: []Piece{{Text: "hello "}, {Text: "world", Style: red}},
			width:  20,
			want:   []string{"hello " + red + "world" + reset},
		},
		{
			name:   "style-on-every-line",
			pieces: []Piece{{Text: "um uh er", Style: red}},
			width:  5,
			want:   []string{red + "um uh" + reset, red + "er" + reset},
		},
		{
			name:   "same-style-merged",
			pieces: []Piece{{Text: "a", Style: red}, {Text: " b", Style: red}},
			width:  0,
			want:   []string{red + "a b" + reset},
		},
		{
			name:   "long-word",
			pieces: []Piece{{Text: "abcdefgh"}},
			width:  3,
			want:   []string{"abc", "def", "gh"},
		},
		{
			name:   "long-word-after-word",
			pieces: []Piece{{Text: "a bcdef"}},
			width:  3,
			want:   []string{"a", "bcd", "ef"},
		},
		{
			name:   "wide-graphemes",
			pieces: []Piece{{Text: "世界世"}},
			width:  5,
			want:   []string{"世界", "世"},
		},
		{
			name:   "combining-marks-stay-together",
			pieces: []Piece{{Text: "e\u0301e\u0301e\u0301"}},
			width:  2,
			want:   []string{"e\u0301e\u0301", "e\u0301"},
		},
		{
			name:   "newlines",
			pieces: []Piece{{Text: "a\nb\n\nc"}},
			width:  10,
			want:   []string{"a", "b", "", "c"},
		},
		{
			name:   "leading-whitespace",
			pieces: []Piece{{Text: "  a"}},
			width:  10,
			want:   []string{"  a"},
		},
		{
			name:   "trailing-whitespace",
			pieces: []Piece{{Text: "a  "}},
			width:  10,
			want:   []string{"a"},
		},
		{
			name:   "tabs",
			pieces: []Piece{{Text: "a\tb"}},
			width:  10,
			want:   []string{"a b"},
		},
		{
			name:   "no-whitespace-at-line-start",
			pieces: []Piece{{Text: "aaa   bbb"}},
			width:  4,
			want:   []string{"aaa", "bbb"},
		},
		{
			name:   "leading-whitespace-too-wide",
			pieces: []Piece{{Text: "      ab"}},
			width:  4,
			want:   []string{"ab"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.pieces, tt.width)
			require.Equal(t, tt.want, got)
			if tt.width > 0 {
				for _, l := range got {
					assert.LessOrEqual(t, Width(l), tt.width, "line %q", l)
				}
			}
		})
	}
}
