// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"reqsift/internal/formatters"
	"reqsift/internal/requirement"

	yamlv3 "gopkg.in/yaml.v3"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML output for configuration pipelines"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

// output is the YAML document shape.
type output struct {
	Detection    requirement.DetectionResult `yaml:"detection"`
	RecordCount  int                         `yaml:"record_count"`
	Requirements []requirement.Record        `yaml:"requirements"`
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

	data, err := yamlv3.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
