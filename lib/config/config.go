// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the environment variable [Load] reads.
const EnvironmentVariable = "MEMPOOLVIEW_CONFIG"

// Bounds for Viewer.ListWidthPercent.
const (
	MinListWidthPercent = 20
	MaxListWidthPercent = 80
)

// Config is the mempoolview configuration.
type Config struct {
	// File is the default input path when --file is not given.
	File string `yaml:"file" json:"file"`

	// XorKeyAlignment selects how the obfuscation key lines up with
	// the payload: "stream" or "file".
	XorKeyAlignment string `yaml:"xor_key_alignment" json:"xor_key_alignment"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	Decode DecodeConfig `yaml:"decode" json:"decode"`
	Viewer ViewerConfig `yaml:"viewer" json:"viewer"`
}

// DecodeConfig holds defaults for the decode command.
type DecodeConfig struct {
	// Limit is how many entries decode prints. Zero prints none.
	Limit int `yaml:"limit" json:"limit"`

	// Compact prints one line per entry.
	Compact bool `yaml:"compact" json:"compact"`
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	// ListWidthPercent is the share of the terminal width given to the
	// transaction list.
	ListWidthPercent int `yaml:"list_width_percent" json:"list_width_percent"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		File:            "mempool.dat",
		XorKeyAlignment: "stream",
		LogLevel:        "warn",
		Decode: DecodeConfig{
			Limit: 10,
		},
		Viewer: ViewerConfig{
			ListWidthPercent: 30,
		},
	}
}

// Load reads the file named by MEMPOOLVIEW_CONFIG. When the variable is
// unset or empty it returns [Default]. The boolean reports whether a
// file was read.
func Load() (*Config, bool, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), false, nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", EnvironmentVariable, err)
	}
	return cfg, true, nil
}

// LoadFile reads the configuration at path over the defaults and
// validates the result. Fields absent from the file keep their default
// values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported extension %q (want .yaml, .yml, .json, or .jsonc)",
			path, filepath.Ext(path))
	}
	return nil
}

// Validate checks every field and joins the failures. Each message
// starts with the offending field's key.
func (c *Config) Validate() error {
	var errs []error

	if c.File == "" {
		errs = append(errs, fmt.Errorf("file must not be empty"))
	}

	alignments := []string{"stream", "file"}
	if !contains(alignments, c.XorKeyAlignment) {
		errs = append(errs, fmt.Errorf("xor_key_alignment must be one of %v, got %q", alignments, c.XorKeyAlignment))
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !contains(levels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of %v, got %q", levels, c.LogLevel))
	}

	if c.Decode.Limit < 0 {
		errs = append(errs, fmt.Errorf("decode.limit must not be negative, got %d", c.Decode.Limit))
	}

	if c.Viewer.ListWidthPercent < MinListWidthPercent || c.Viewer.ListWidthPercent > MaxListWidthPercent {
		errs = append(errs, fmt.Errorf("viewer.list_width_percent must be between %d and %d, got %d",
			MinListWidthPercent, MaxListWidthPercent, c.Viewer.ListWidthPercent))
	}

	return errors.Join(errs...)
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
