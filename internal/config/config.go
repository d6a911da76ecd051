// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package config handles poshconv service configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// ConfigFileName is the name of the poshconv configuration file.
const ConfigFileName = "poshconv.yaml"

// Defaults applied for fields left empty in the config file.
const (
	DefaultListen    = ":8080"
	DefaultMappings  = "command_mappings.json"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config represents the poshconv.yaml service configuration file.
type Config struct {
	Version   int    `yaml:"version"`
	Listen    string `yaml:"listen,omitempty"`
	Mappings  string `yaml:"mappings,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`
}

// Default returns a Config with all default values applied.
func Default() *Config {
	cfg := &Config{Version: CurrentConfigVersion}
	cfg.applyDefaults()
	return cfg
}

// Load reads a Config from a file path and applies defaults for any
// fields the file leaves unset.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Mappings == "" {
		c.Mappings = DefaultMappings
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	return nil
}
