// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"fmt"
	"strings"

	"reqsift/internal/requirement"
)

// FormatterOptions defines configuration options for formatters
type FormatterOptions struct {
	Verbose    bool    // Whether to display detailed information
	NoColor    bool    // Whether to disable colored output
	ShowTokens bool    // Whether to include the raw token list
	Quiet      bool    // Whether to suppress summary banners
	MinDisplay float64 // Hide records below this confidence (display only)
}

// Formatter interface defines methods that all output formatters must implement
type Formatter interface {
	// Format renders the requirement records of one document
	Format(records []requirement.Record, detection requirement.DetectionResult, options FormatterOptions) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text", "csv")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// Export renders records with the named formatter.
func Export(format string, records []requirement.Record, detection requirement.DetectionResult, options FormatterOptions) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		availableFormats := List()
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(availableFormats, ", "))
	}
	return formatter.Format(records, detection, options)
}

// FilterByConfidence drops records below the display threshold.
func FilterByConfidence(records []requirement.Record, options FormatterOptions) []requirement.Record {
	if options.MinDisplay <= 0 {
		return records
	}
	var filtered []requirement.Record
	for _, record := range records {
		if record.Confidence >= options.MinDisplay {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// ConfidenceLevel buckets a confidence score for display: HIGH at or above
// 0.75, MEDIUM at or above 0.5, LOW below.
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.75:
		return "HIGH"
	case confidence >= 0.5:
		return "MEDIUM"
	default:
		return "LOW"
	}
}
