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

// Package lcs computes the case-insensitive longest common subsequence of two token sequences.
//
// The classic dynamic programming table is used: dp[i][j] is the length of the LCS of x[:i] and
// y[:j]. The subsequence is reconstructed by walking back from dp[m][n]. Several subsequences of
// maximal length can exist when tokens repeat (filler words do that a lot), so the walk needs a
// fixed policy for ties: when dp[i-1][j] == dp[i][j-1], the walk always steps in y (the cleaned
// side), i.e. the current token of y is considered unmatched. Existing transcripts render
// differently if this policy changes.
package lcs

import (
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/internal/debuglog"
)

// Common returns the longest common subsequence of x and y. Tokens are compared by their lower
// case form, the returned entries are taken from y.
//
// If the table for x and y would have more than cfg.MaxCells cells, a common subsequence is
// computed using the Myers algorithm instead. It's usually the longest one too, but the tie
// policy described in the package documentation doesn't apply.
func Common(x, y []string, cfg config.Config) []string {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	kx, ky := keys(x), keys(y)
	if cfg.MaxCells > 0 && (len(x)+1)*(len(y)+1) > cfg.MaxCells {
		debuglog.Printf("lcs: %dx%d tokens exceed %d cells, using myers fallback", len(x), len(y), cfg.MaxCells)
		return myers(kx, ky, y)
	}
	return table(kx, ky, y)
}

// Equal reports whether a and b are the same token for the purpose of alignment.
func Equal(a, b string) bool {
	return a == b || strings.ToLower(a) == strings.ToLower(b)
}

func keys(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.ToLower(t)
	}
	return out
}

func table(kx, ky, y []string) []string {
	m, n := len(kx), len(ky)

	// A single backing array keeps the table in one allocation.
	w := n + 1
	dp := make([]int32, (m+1)*w)
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case kx[i-1] == ky[j-1]:
				dp[i*w+j] = dp[(i-1)*w+j-1] + 1
			case dp[(i-1)*w+j] >= dp[i*w+j-1]:
				dp[i*w+j] = dp[(i-1)*w+j]
			default:
				dp[i*w+j] = dp[i*w+j-1]
			}
		}
	}

	out := make([]string, dp[m*w+n])
	k := len(out)
	for i, j := m, n; i > 0 && j > 0; {
		switch {
		case kx[i-1] == ky[j-1]:
			k--
			out[k] = y[j-1]
			i--
			j--
		case dp[(i-1)*w+j] > dp[i*w+j-1]:
			i--
		default:
			j-- // ties consume from y
		}
	}
	return out
}

// myers maps every distinct key to a rune, so that diffmatchpatch can diff the token sequences
// like strings, and decodes the equal runs back to tokens of y.
func myers(kx, ky, y []string) []string {
	ids := make(map[string]rune)
	encode := func(keys []string) []rune {
		out := make([]rune, len(keys))
		for i, k := range keys {
			r, ok := ids[k]
			if !ok {
				r = indexToRune(len(ids))
				ids[k] = r
			}
			out[i] = r
		}
		return out
	}
	rx, ry := encode(kx), encode(ky)

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	var out []string
	j := 0 // position in y
	for _, d := range dmp.DiffMainRunes(rx, ry, false) {
		n := utf8.RuneCountInString(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			out = append(out, y[j:j+n]...)
			j += n
		case diffmatchpatch.DiffInsert:
			j += n
		}
	}
	return out
}

// indexToRune maps i to a valid rune, skipping the surrogate range which doesn't survive the
// conversion to string.
func indexToRune(i int) rune {
	const surrogateMin, surrogateMax = 0xd800, 0xdfff
	if i >= surrogateMin {
		i += surrogateMax - surrogateMin + 1
	}
	return rune(i)
}
