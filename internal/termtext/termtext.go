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

// Package termtext measures and wraps text for display in a terminal with a monospace font.
package termtext

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
	"znkr.io/transcriptdiff/internal/config"
)

var cond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true
	return c
}()

// Width returns the number of terminal cells s occupies. ANSI escape sequences don't occupy any.
func Width(s string) int {
	width := 0
	start := 0 // start of the current run of printable text
	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			i++
			continue
		}
		if start < i {
			width += cond.StringWidth(s[start:i])
		}
		i += escapeLength(s[i:])
		start = i
	}
	if start < len(s) {
		width += cond.StringWidth(s[start:])
	}
	return width
}

// escapeLength returns the length of the escape sequence s starts with. Only CSI sequences
// (e.g. SGR) are recognized, any other escape is treated as a two byte sequence.
func escapeLength(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	if s[1] != '[' {
		return 2
	}
	for i := 2; i < len(s); i++ {
		if s[i] >= 0x40 && s[i] <= 0x7e {
			return i + 1
		}
	}
	return len(s)
}

// Pad appends spaces to s until it's width cells wide.
func Pad(s string, width int) string {
	if n := width - Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Piece is text displayed with a single style.
type Piece struct {
	Text  string
	Style string // SGR escape sequence, empty for unstyled text
}

// Wrap lays out pieces in lines of at most width cells. Lines break at whitespace; a word that
// doesn't fit on a line of its own is broken between grapheme clusters. Newlines in the text always
// start a new line, whitespace at the end of a line is dropped, and all other whitespace is
// displayed as one space per rune.
//
// Every line is self-contained: styles are started and reset on the line they're used in. If width
// is <= 0, lines are only broken at newlines.
func Wrap(pieces []Piece, width int) []string {
	w := wrapper{width: width}
	for _, p := range pieces {
		for seg := range segments(p.Text) {
			switch r, _ := utf8.DecodeRuneInString(seg); {
			case r == '\n':
				w.newline()
			case unicode.IsSpace(r):
				w.space(utf8.RuneCountInString(seg), p.Style)
			default:
				w.word(seg, p.Style)
			}
		}
	}
	return w.finish()
}

// segments yields newlines one at a time, runs of other whitespace, and runs of everything else.
func segments(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(s) > 0 {
			r, size := utf8.DecodeRuneInString(s)
			n := size
			if r != '\n' {
				space := unicode.IsSpace(r)
				for n < len(s) {
					r, size := utf8.DecodeRuneInString(s[n:])
					if r == '\n' || unicode.IsSpace(r) != space {
						break
					}
					n += size
				}
			}
			if !yield(s[:n]) {
				return
			}
			s = s[n:]
		}
	}
}

type wrapper struct {
	width int
	lines []string
	cur   line
	// Whitespace is held back until the next word shows whether it's needed.
	pending      []Piece
	pendingWidth int
}

func (w *wrapper) newline() {
	w.lines = append(w.lines, w.cur.String())
	w.cur = line{}
	w.pending, w.pendingWidth = nil, 0
}

func (w *wrapper) space(n int, style string) {
	w.pending = append(w.pending, Piece{strings.Repeat(" ", n), style})
	w.pendingWidth += n
}

func (w *wrapper) word(s, style string) {
	ws := Width(s)
	if w.width > 0 && w.cur.width+w.pendingWidth+ws > w.width {
		if w.cur.width > 0 {
			w.newline()
		} else {
			w.pending, w.pendingWidth = nil, 0
		}
	}
	for _, p := range w.pending {
		w.cur.add(p.Text, p.Style, len(p.Text))
	}
	w.pending, w.pendingWidth = nil, 0

	if w.width <= 0 || w.cur.width+ws <= w.width {
		w.cur.add(s, style, ws)
		return
	}
	gr := graphemes.FromString(s)
	for gr.Next() {
		g := gr.Value()
		gw := Width(g)
		if w.cur.width > 0 && w.cur.width+gw > w.width {
			w.newline()
		}
		w.cur.add(g, style, gw)
	}
}

func (w *wrapper) finish() []string {
	if len(w.cur.pieces) > 0 {
		w.lines = append(w.lines, w.cur.String())
	}
	return w.lines
}

type line struct {
	pieces []Piece
	width  int
}

func (l *line) add(text, style string, width int) {
	if n := len(l.pieces); n > 0 && l.pieces[n-1].Style == style {
		l.pieces[n-1].Text += text
	} else {
		l.pieces = append(l.pieces, Piece{text, style})
	}
	l.width += width
}

func (l line) String() string {
	var b strings.Builder
	for _, p := range l.pieces {
		if p.Style == "" {
			b.WriteString(p.Text)
			continue
		}
		b.WriteString(p.Style)
		b.WriteString(p.Text)
		b.WriteString(config.Reset)
	}
	return b.String()
}
