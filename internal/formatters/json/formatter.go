// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"reqsift/internal/formatters"
	"reqsift/internal/requirement"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// output is the JSON document shape.
type output struct {
	Detection    requirement.DetectionResult `json:"detection"`
	RecordCount  int                         `json:"record_count"`
	Requirements []requirement.Record        `json:"requirements"`
}

func (f *Formatter) Format(records []requirement.Record, detection requirement.DetectionResult, options formatters.FormatterOptions) (string, error) {
	records = formatters.FilterByConfidence(records, options)

	doc := output{
		Detection:    detection,
		RecordCount:  len(records),
		Requirements: records,
	}
	if doc.Requirements == nil {
		doc.Requirements = []requirement.Record{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
