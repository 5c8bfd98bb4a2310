// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package config loads application configuration from YAML, falling back
// to built-in defaults when no file is present or the file is unreadable.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings
	Defaults struct {
		Format       string `yaml:"format"`
		Verbose      bool   `yaml:"verbose"`
		NoColor      bool   `yaml:"no_color"`
		WindowMonths int    `yaml:"window_months"`
	} `yaml:"defaults"`

	// Per-ruleset checklist options. Checks that appear only in some
	// revisions of a certificate layout are gated here instead of being
	// hardcoded.
	Rulesets struct {
		Formation struct {
			RequireEntityID        bool `yaml:"require_entity_id"`
			RequireRegisteredAgent bool `yaml:"require_registered_agent"`
		} `yaml:"formation"`
	} `yaml:"rulesets"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Defaults.Format = "text"
	cfg.Defaults.WindowMonths = 6
	return cfg
}

// FindConfigFile looks for a config file in standard locations and returns
// the first that exists, or "" when none does.
func FindConfigFile() string {
	candidates := []string{
		".certscan.yaml",
		".certscan.yml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".certscan.yaml"),
			filepath.Join(home, ".config", "certscan", "config.yaml"),
		)
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// LoadConfig loads configuration from the given path. An empty path returns
// the defaults. Unknown YAML keys are an error so typos surface instead of
// silently applying defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if cfg.Defaults.Format == "" {
		cfg.Defaults.Format = "text"
	}
	if cfg.Defaults.WindowMonths <= 0 {
		cfg.Defaults.WindowMonths = 6
	}
	return cfg, nil
}

// LoadConfigOrDefault loads configuration, falling back to the defaults on
// any error.
func LoadConfigOrDefault(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\nUsing default configuration\n", err)
		return DefaultConfig()
	}
	return cfg
}
