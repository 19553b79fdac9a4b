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

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"znkr.io/transcriptdiff"
	"znkr.io/transcriptdiff/render"
	"znkr.io/transcriptdiff/render/color"
)

const defaultConfigRelPath = "transcriptdiff/config.yaml"

const (
	flagNameView     = "view"
	flagNameWidth    = "width"
	flagNameColor    = "color"
	flagNameContext  = "context"
	flagNameMaxCells = "max-cells"
)

// fileConfig holds the settings that can be stored in the config file. Nil fields are unset.
type fileConfig struct {
	View     *string      `yaml:"view"`
	Width    *int         `yaml:"width"`
	Color    *string      `yaml:"color"`
	Context  *int         `yaml:"context"`
	MaxCells *int         `yaml:"max-cells"`
	Colors   *colorConfig `yaml:"colors"`
}

// colorConfig holds SGR parameters for each token type. An empty list removes the style.
type colorConfig struct {
	Unchanged []int `yaml:"unchanged"`
	Deleted   []int `yaml:"deleted"`
	Inserted  []int `yaml:"inserted"`
}

func configPath(configHome, explicitPath string, noConfig bool) (path string, required bool) {
	switch {
	case noConfig:
		return "", false
	case explicitPath != "":
		return explicitPath, true
	default:
		return filepath.Join(configHome, defaultConfigRelPath), false
	}
}

func loadConfig(configHome, explicitPath string, noConfig bool) (fileConfig, error) {
	path, required := configPath(configHome, explicitPath, noConfig)
	if path == "" {
		return fileConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("read config %q: %w", path, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var cfg fileConfig
	if err := decoder.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.View != nil {
		if err := validateView(*cfg.View); err != nil {
			return fileConfig{}, fmt.Errorf("invalid config value for key %q in %q: %w", flagNameView, path, err)
		}
	}
	if cfg.Color != nil {
		if err := validateColor(*cfg.Color); err != nil {
			return fileConfig{}, fmt.Errorf("invalid config value for key %q in %q: %w", flagNameColor, path, err)
		}
	}
	return cfg, nil
}

// apply overwrites every value in f that wasn't set explicitly on the command line with the value
// from the config file.
func (cfg fileConfig) apply(f *flags, explicitlySet map[string]bool) {
	if cfg.View != nil && !explicitlySet[flagNameView] {
		f.view = *cfg.View
	}
	if cfg.Width != nil && !explicitlySet[flagNameWidth] {
		f.width = *cfg.Width
	}
	if cfg.Color != nil && !explicitlySet[flagNameColor] {
		f.color = *cfg.Color
	}
	if cfg.Context != nil && !explicitlySet[flagNameContext] {
		f.context = *cfg.Context
	}
	if cfg.MaxCells != nil && !explicitlySet[flagNameMaxCells] {
		f.maxCells = *cfg.MaxCells
	}
}

// colors returns the render option for the styles in the config file, or nil if there are none.
func (cfg fileConfig) colors() transcriptdiff.Option {
	if cfg.Colors == nil {
		return nil
	}
	var opts []color.Option
	if cfg.Colors.Unchanged != nil {
		opts = append(opts, color.Unchanged(cfg.Colors.Unchanged...))
	}
	if cfg.Colors.Deleted != nil {
		opts = append(opts, color.Deleted(cfg.Colors.Deleted...))
	}
	if cfg.Colors.Inserted != nil {
		opts = append(opts, color.Inserted(cfg.Colors.Inserted...))
	}
	return render.Colors(opts...)
}

func validateView(v string) error {
	switch v {
	case "inline", "split", "unified":
		return nil
	default:
		return fmt.Errorf("unknown view %q, want inline, split or unified", v)
	}
}

func validateColor(v string) error {
	switch v {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("unknown color mode %q, want auto, always or never", v)
	}
}
