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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// transcriptdiff.Option.
package config

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// MaxCells limits the size of the LCS table. Inputs that need a larger table are aligned with
	// a linear-space fallback. A value <= 0 disables the limit.
	MaxCells int

	// Width is the total number of terminal cells available for rendering. Zero means no limit
	// for inline rendering and a default width for side-by-side rendering.
	Width int

	// If set, render uses textual markers instead of ANSI escape sequences.
	Plain bool

	// Colors used for ANSI rendering.
	Colors ColorConfig
}

// ColorConfig holds the SGR escape sequences used for each token type. An empty sequence leaves
// the text unstyled.
type ColorConfig struct {
	Unchanged string
	Deleted   string
	Inserted  string
}

// Default is the default configuration.
var Default = Config{
	MaxCells: 1 << 20,
	Width:    0,
	Plain:    false,
	Colors: ColorConfig{
		Unchanged: "",
		Deleted:   "\033[9;31m",  // strikethrough, red
		Inserted:  "\033[30;42m", // black on green
	},
}

// Reset ends any styling started with a ColorConfig sequence.
const Reset = "\033[0m"

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	MaxCells Flag = 1 << iota
	Width
	Plain
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case MaxCells:
		return "transcriptdiff.MaxCells"
	case Width:
		return "render.Width"
	case Plain:
		return "render.Plain"
	case Colors:
		return "render.Colors"
	default:
		panic("never reached")
	}
}
