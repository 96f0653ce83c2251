// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"reqsift/internal/paths"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	// Default settings
	Defaults struct {
		Format              string  `yaml:"format"`
		ConfidenceThreshold float64 `yaml:"confidence_threshold"`
		Language            string  `yaml:"language"`         // forced language code, empty = detect
		DefaultLanguage     string  `yaml:"default_language"` // detection fallback
		MinSentenceWords    int     `yaml:"min_sentence_words"`
		MaxSentenceWords    int     `yaml:"max_sentence_words"`
		SamplePages         int     `yaml:"sample_pages"`
		Verbose             bool    `yaml:"verbose"`
		Debug               bool    `yaml:"debug"`
		NoColor             bool    `yaml:"no_color"`
		ShowTokens          bool    `yaml:"show_tokens"`
	} `yaml:"defaults"`

	// ProfilesFile points at the language profiles resource.
	// Empty uses the default location under the config directory.
	ProfilesFile string `yaml:"profiles_file"`
}

// LoadConfig loads configuration from the specified file path
func LoadConfig(configPath string) (*Config, error) {
	// Default configuration
	config := &Config{}
	config.Defaults.Format = "text"
	config.Defaults.ConfidenceThreshold = 0.40
	config.Defaults.Language = ""
	config.Defaults.DefaultLanguage = "en"
	config.Defaults.MinSentenceWords = 5
	config.Defaults.MaxSentenceWords = 100
	config.Defaults.SamplePages = 3

	// If no config file specified, return default config
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return config, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config file: %w", err)
	}

	return config, nil
}

// LoadConfigOrDefault loads the config file, falling back to defaults on
// any error. It never returns nil.
func LoadConfigOrDefault(configPath string) *Config {
	config, err := LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		config, _ = LoadConfig("")
	}
	return config
}

// FindConfigFile looks for a config file in standard locations
func FindConfigFile() string {
	candidates := []string{
		".reqsift.yaml",
		".reqsift.yml",
		paths.GetConfigFile(),
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
