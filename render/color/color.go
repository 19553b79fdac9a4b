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

// Package color configures the terminal styles used by [znkr.io/transcriptdiff/render].
//
// Styles are given as SGR parameters, e.g. Deleted(9, 31) renders deleted text struck through in
// red. Calling a function without parameters removes the style.
package color

import (
	"fmt"
	"strings"

	"znkr.io/transcriptdiff/internal/config"
)

// A Option makes it possible to configure custom colors in render.Colors.
type Option func(*config.ColorConfig)

// Unchanged styles text that's the same in the raw and the cleaned transcript.
func Unchanged(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Unchanged = code
	}
}

// Deleted styles text that was removed from the raw transcript.
func Deleted(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Deleted = code
	}
}

// Inserted styles text that was added to the cleaned transcript.
func Inserted(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Inserted = code
	}
}

func format(params []int) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
