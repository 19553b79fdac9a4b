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

package render

import (
	"znkr.io/transcriptdiff"
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/render/color"
)

// Width limits the rendered output to n terminal cells per line. For [SideBySide] this is the
// width of both columns together, including the separator between them.
func Width(n int) transcriptdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = n
		return config.Width
	}
}

// Plain renders without ANSI escape sequences. Deleted runs are written as [-...-] and inserted
// runs as {+...+}, the same markers git uses for word diffs.
func Plain() transcriptdiff.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Plain = true
		return config.Plain
	}
}

// Colors changes the styles used for each token type. It has no effect in combination with
// [Plain].
func Colors(opts ...color.Option) transcriptdiff.Option {
	return func(cfg *config.Config) config.Flag {
		for _, opt := range opts {
			opt(&cfg.Colors)
		}
		return config.Colors
	}
}
