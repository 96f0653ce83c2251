// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\") failed: %v", err)
	}

	if cfg.Defaults.Format != "text" {
		t.Errorf("default format = %q, want text", cfg.Defaults.Format)
	}
	if cfg.Defaults.ConfidenceThreshold != 0.40 {
		t.Errorf("default threshold = %v, want 0.40", cfg.Defaults.ConfidenceThreshold)
	}
	if cfg.Defaults.DefaultLanguage != "en" {
		t.Errorf("default language = %q, want en", cfg.Defaults.DefaultLanguage)
	}
	if cfg.Defaults.MinSentenceWords != 5 || cfg.Defaults.MaxSentenceWords != 100 {
		t.Errorf("sentence bounds = %d..%d, want 5..100",
			cfg.Defaults.MinSentenceWords, cfg.Defaults.MaxSentenceWords)
	}
	if cfg.Defaults.SamplePages != 3 {
		t.Errorf("sample pages = %d, want 3", cfg.Defaults.SamplePages)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `defaults:
  format: json
  confidence_threshold: 0.6
  language: de
  verbose: true
profiles_file: /tmp/profiles.yaml
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Defaults.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Defaults.Format)
	}
	if cfg.Defaults.ConfidenceThreshold != 0.6 {
		t.Errorf("threshold = %v, want 0.6", cfg.Defaults.ConfidenceThreshold)
	}
	if cfg.Defaults.Language != "de" {
		t.Errorf("language = %q, want de", cfg.Defaults.Language)
	}
	if !cfg.Defaults.Verbose {
		t.Error("verbose should be true")
	}
	if cfg.ProfilesFile != "/tmp/profiles.yaml" {
		t.Errorf("profiles file = %q", cfg.ProfilesFile)
	}
	// Unset values keep their defaults.
	if cfg.Defaults.MinSentenceWords != 5 {
		t.Errorf("min words = %d, want default 5", cfg.Defaults.MinSentenceWords)
	}
}

func TestLoadConfigMissingFileReturnsError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
	if cfg == nil || cfg.Defaults.Format != "text" {
		t.Error("defaults should still be returned alongside the error")
	}
}

func TestLoadConfigOrDefaultNeverNil(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if cfg == nil {
		t.Fatal("LoadConfigOrDefault returned nil")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("format = %q, want text", cfg.Defaults.Format)
	}
}
