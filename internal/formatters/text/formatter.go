// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"reqsift/internal/formatters"
	"reqsift/internal/requirement"

	"github.com/fatih/color"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":   color.New(color.FgGreen),
			"yellow":  color.New(color.FgYellow),
			"red":     color.New(color.FgRed),
			"cyan":    color.New(color.FgCyan),
			"magenta": color.New(color.FgMagenta),
			"white":   color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(records []requirement.Record, detection requirement.DetectionResult, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	records = formatters.FilterByConfidence(records, options)
	if len(records) == 0 {
		return "No requirements found.", nil
	}

	var builder strings.Builder

	if !options.Quiet {
		header := fmt.Sprintf("Detected language: %s (confidence %.2f)", detection.Language, detection.Confidence)
		if detection.LowConfidence {
			header += " [low confidence]"
		}
		builder.WriteString(f.colors["cyan"].Sprint(header))
		builder.WriteString("\n\n")
	}

	for _, record := range records {
		if options.Verbose {
			f.appendDetailedRecord(&builder, record, options)
		} else {
			f.appendSummaryLine(&builder, record)
		}
	}

	if !options.Quiet {
		builder.WriteString("\n")
		builder.WriteString(f.colors["white"].Sprintf("Total: %d requirement(s)", len(records)))
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// appendSummaryLine prints a single-line summary for one record
func (f *Formatter) appendSummaryLine(builder *strings.Builder, record requirement.Record) {
	level := formatters.ConfidenceLevel(record.Confidence)
	levelColor := f.levelColor(level)

	builder.WriteString(fmt.Sprintf("[%s] ", levelColor.Sprintf("%-6s", level)))
	builder.WriteString(f.colors["white"].Sprint(record.Label))
	builder.WriteString(fmt.Sprintf(" p.%d %s/%s (%.2f): %s\n",
		record.Page, f.priorityColor(record.Priority).Sprint(string(record.Priority)),
		record.Category, record.Confidence, record.Description))
}

// appendDetailedRecord prints the full field set for one record
func (f *Formatter) appendDetailedRecord(builder *strings.Builder, record requirement.Record, options formatters.FormatterOptions) {
	builder.WriteString(f.colors["white"].Sprint(record.Label))
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("  Description: %s\n", record.Description))
	builder.WriteString(fmt.Sprintf("  Page:        %d\n", record.Page))
	builder.WriteString(fmt.Sprintf("  Keyword:     %s\n", record.Keyword))
	builder.WriteString(fmt.Sprintf("  Language:    %s\n", record.Language))
	builder.WriteString(fmt.Sprintf("  Confidence:  %.2f (%s)\n", record.Confidence, formatters.ConfidenceLevel(record.Confidence)))
	builder.WriteString(fmt.Sprintf("  Priority:    %s\n", f.priorityColor(record.Priority).Sprint(string(record.Priority))))
	builder.WriteString(fmt.Sprintf("  Category:    %s\n", record.Category))
	if options.ShowTokens {
		builder.WriteString(fmt.Sprintf("  Tokens:      %s\n", strings.Join(record.RawTokens, " ")))
	}
	builder.WriteString("\n")
}

// levelColor maps a confidence level to its display color
func (f *Formatter) levelColor(level string) *color.Color {
	switch level {
	case "HIGH":
		return f.colors["green"]
	case "MEDIUM":
		return f.colors["yellow"]
	default:
		return f.colors["red"]
	}
}

// priorityColor maps a priority tier to its display color
func (f *Formatter) priorityColor(priority requirement.Priority) *color.Color {
	switch priority {
	case requirement.PrioritySecurity:
		return f.colors["magenta"]
	case requirement.PriorityHigh:
		return f.colors["red"]
	case requirement.PriorityMedium:
		return f.colors["yellow"]
	default:
		return f.colors["green"]
	}
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
