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

package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"znkr.io/transcriptdiff"
	"znkr.io/transcriptdiff/internal/config"
	"znkr.io/transcriptdiff/render"
	"znkr.io/transcriptdiff/render/color"
)

const all = config.MaxCells | config.Width | config.Plain | config.Colors

func TestFromOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []config.Option
		want func(*config.Config)
	}{
		{
			name: "default",
			opts: nil,
			want: func(*config.Config) {},
		},
		{
			name: "max-cells",
			opts: []config.Option{
				transcriptdiff.MaxCells(10),
			},
			want: func(cfg *config.Config) { cfg.MaxCells = 10 },
		},
		{
			name: "width-plain",
			opts: []config.Option{
				render.Width(40),
				render.Plain(),
			},
			want: func(cfg *config.Config) {
				cfg.Width = 40
				cfg.Plain = true
			},
		},
		{
			name: "width-override",
			opts: []config.Option{
				render.Width(40),
				transcriptdiff.MaxCells(10),
				render.Width(20),
			},
			want: func(cfg *config.Config) {
				cfg.Width = 20
				cfg.MaxCells = 10
			},
		},
		{
			name: "colors",
			opts: []config.Option{
				render.Colors(color.Deleted(31), color.Inserted(1, 32)),
			},
			want: func(cfg *config.Config) {
				cfg.Colors = config.ColorConfig{
					Unchanged: "",
					Deleted:   "\033[31m",
					Inserted:  "\033[1;32m",
				}
			},
		},
		{
			name: "colors-removed",
			opts: []config.Option{
				render.Colors(color.Deleted()),
				render.Colors(color.Unchanged(2)),
			},
			want: func(cfg *config.Config) {
				cfg.Colors = config.ColorConfig{
					Unchanged: "\033[2m",
					Deleted:   "",
					Inserted:  config.Default.Colors.Inserted,
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := config.Default
			tt.want(&want)
			got := config.FromOptions(tt.opts, all)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("FromOptions(...) result are different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestFromOptionsNotAllowed(t *testing.T) {
	tests := []struct {
		name    string
		opt     config.Option
		allowed config.Flag
		want    string
	}{
		{"max-cells", transcriptdiff.MaxCells(1), config.Width | config.Plain | config.Colors, "Option transcriptdiff.MaxCells not allowed here"},
		{"width", render.Width(1), config.MaxCells, "Option render.Width not allowed here"},
		{"plain", render.Plain(), config.MaxCells, "Option render.Plain not allowed here"},
		{"colors", render.Colors(), config.MaxCells, "Option render.Colors not allowed here"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r != tt.want {
					t.Errorf("FromOptions(...) panicked with %v, want %q", r, tt.want)
				}
			}()
			config.FromOptions([]config.Option{tt.opt}, tt.allowed)
		})
	}
}
