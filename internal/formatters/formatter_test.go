// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"

	"reqsift/internal/requirement"
)

type stubFormatter struct{ name string }

func (s *stubFormatter) Format([]requirement.Record, requirement.DetectionResult, FormatterOptions) (string, error) {
	return "ok", nil
}
func (s *stubFormatter) Name() string          { return s.name }
func (s *stubFormatter) Description() string   { return "stub" }
func (s *stubFormatter) FileExtension() string { return ".stub" }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFormatter{name: "stub"})

	if _, exists := r.Get("stub"); !exists {
		t.Error("registered formatter not found")
	}
	if _, exists := r.Get("missing"); exists {
		t.Error("unregistered formatter should not be found")
	}
	if names := r.List(); len(names) != 1 || names[0] != "stub" {
		t.Errorf("List() = %v", names)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	_, err := Export("no-such-format", nil, requirement.DetectionResult{}, FormatterOptions{})
	if err == nil {
		t.Fatal("expected an error for an unknown format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestFilterByConfidence(t *testing.T) {
	records := []requirement.Record{
		{Label: "a", Confidence: 0.9},
		{Label: "b", Confidence: 0.45},
		{Label: "c", Confidence: 0.2},
	}

	filtered := FilterByConfidence(records, FormatterOptions{MinDisplay: 0.5})
	if len(filtered) != 1 || filtered[0].Label != "a" {
		t.Errorf("filtered = %v", filtered)
	}

	// Zero threshold keeps everything.
	if got := FilterByConfidence(records, FormatterOptions{}); len(got) != 3 {
		t.Errorf("expected all records with no display threshold, got %d", len(got))
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{0.95, "HIGH"},
		{0.75, "HIGH"},
		{0.74, "MEDIUM"},
		{0.5, "MEDIUM"},
		{0.49, "LOW"},
		{0, "LOW"},
	}
	for _, tt := range tests {
		if got := ConfidenceLevel(tt.confidence); got != tt.want {
			t.Errorf("ConfidenceLevel(%v) = %q, want %q", tt.confidence, got, tt.want)
		}
	}
}
