// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds defaults read from a configuration file.
// Zero values mean "not set"; command-line flags always take precedence.
//
// Example YAML:
//
//	method: 2
//	file: /home/me/.bashrc
//	target: freebsd
type Config struct {
	// Method is the alias method (1, 2 or 3). Other values are reported
	// and ignored by the caller.
	Method int `json:"method,omitempty" yaml:"method,omitempty"`
	// File is the alias file to scan for existing declarations.
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Target is the platform name used for popular aliases.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`
}

// detectConfigFormat determines the configuration file format based on file extension.
// Anything that is not .yaml or .yml is treated as JSON.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads configuration from a JSON or YAML file.
//
// An empty configPath returns an empty Config. Unlike the alias file, a
// config file that was named explicitly must exist.
func Load(configPath string) (*Config, error) {
	config := &Config{}
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
		return nil, err
	}

	config.File = strings.TrimSpace(config.File)
	config.Target = strings.TrimSpace(config.Target)
	return config, nil
}
