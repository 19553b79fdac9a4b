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

// Package render displays the result of [transcriptdiff.Compute] in a terminal.
//
// Deleted and inserted runs are styled with ANSI escape sequences by default. The styles can be
// changed with [Colors], or replaced by textual markers with [Plain].
package render

import (
	"strings"

	"znkr.io/transcriptdiff"
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/internal/termtext"
)

const (
	defaultWidth = 80
	separator    = " │ "
)

// Inline renders tokens as running text, the way a reader would see the cleaned transcript with
// the removed words still in place. Tokens are grouped with [transcriptdiff.Group] first.
//
// The following options are supported: [Width], [Plain], [Colors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Inline(tokens []transcriptdiff.Token, opts ...transcriptdiff.Option) string {
	cfg := config.FromOptions(opts, config.Width|config.Plain|config.Colors)
	return strings.Join(termtext.Wrap(pieces(tokens, cfg), cfg.Width), "\n")
}

// SideBySide renders raw in a left column and the diff in a right column. Both columns are wrapped
// to the same width and the returned lines are aligned on the column separator. Without [Width],
// the output is 80 cells wide.
//
// The following options are supported: [Width], [Plain], [Colors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func SideBySide(raw string, tokens []transcriptdiff.Token, opts ...transcriptdiff.Option) []string {
	cfg := config.FromOptions(opts, config.Width|config.Plain|config.Colors)
	width := cfg.Width
	if width <= 0 {
		width = defaultWidth
	}
	col := max((width-termtext.Width(separator))/2, 1)

	left := termtext.Wrap([]termtext.Piece{{Text: raw}}, col)
	right := termtext.Wrap(pieces(tokens, cfg), col)
	out := make([]string, max(len(left), len(right)))
	for i := range out {
		var l, r string
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		out[i] = termtext.Pad(l, col) + separator + r
	}
	return out
}

// pieces lays out tokens the same way [transcriptdiff.NewView] does, so that a selection made in
// the rendered text can be mapped back with [transcriptdiff.FilterSelection].
func pieces(tokens []transcriptdiff.Token, cfg config.Config) []termtext.Piece {
	v := transcriptdiff.NewView(transcriptdiff.Group(tokens))
	out := make([]termtext.Piece, 0, 2*len(v.Spans))
	pos := 0
	for _, sp := range v.Spans {
		if pos < sp.Start {
			out = append(out, termtext.Piece{Text: v.Text[pos:sp.Start]})
		}
		text := v.Text[sp.Start:sp.End]
		switch {
		case cfg.Plain && sp.Type == transcriptdiff.Deleted:
			out = append(out, termtext.Piece{Text: "[-" + text + "-]"})
		case cfg.Plain && sp.Type == transcriptdiff.Inserted:
			out = append(out, termtext.Piece{Text: "{+" + text + "+}"})
		case cfg.Plain:
			out = append(out, termtext.Piece{Text: text})
		default:
			out = append(out, termtext.Piece{Text: text, Style: style(cfg.Colors, sp.Type)})
		}
		pos = sp.End
	}
	return out
}

func style(cc config.ColorConfig, t transcriptdiff.Type) string {
	switch t {
	case transcriptdiff.Unchanged:
		return cc.Unchanged
	case transcriptdiff.Deleted:
		return cc.Deleted
	case transcriptdiff.Inserted:
		return cc.Inserted
	default:
		panic("never reached")
	}
}
