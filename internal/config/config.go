// Package config handles reading tada.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "tada.yaml"

// Config is the top-level structure for tada.yaml.
type Config struct {
	Theme        string      `yaml:"theme"`
	RequireLogin bool        `yaml:"require_login"`
	TrackPointer bool        `yaml:"track_pointer"`
	Log          LogConfig   `yaml:"log"`
	Probe        ProbeConfig `yaml:"probe"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	File  string `yaml:"file"`  // empty disables logging
	Level string `yaml:"level"` // debug | info | warn | error
}

// ProbeConfig controls the directory request made when the todo view opens.
type ProbeConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	TimeoutMs  int    `yaml:"timeout_ms"`
	MaxRetries int    `yaml:"max_retries"`
}

// Timeout returns TimeoutMs as a duration.
func (p ProbeConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutMs) * time.Millisecond
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Theme:        "classic",
		RequireLogin: false,
		TrackPointer: true,
		Log: LogConfig{
			File:  "tada.log",
			Level: "info",
		},
		Probe: ProbeConfig{
			Enabled:    true,
			Endpoint:   "https://reqres.in/api/users?page=2",
			TimeoutMs:  5000,
			MaxRetries: 0,
		},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
