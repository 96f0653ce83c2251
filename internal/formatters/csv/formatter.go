// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"fmt"
	"strings"

	"reqsift/internal/formatters"
	"reqsift/internal/requirement"
)

// Formatter implements CSV output formatting. The column set matches what
// compliance-matrix spreadsheets expect: label, description, page, keyword,
// language, confidence, priority, category, raw tokens.
type Formatter struct{}

// NewFormatter creates a new CSV formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "csv"
}

func (f *Formatter) Description() string {
	return "Comma-separated values for spreadsheet import"
}

func (f *Formatter) FileExtension() string {
	return ".csv"
}

func (f *Formatter) Format(records []requirement.Record, detection requirement.DetectionResult, options formatters.FormatterOptions) (string, error) {
	records = formatters.FilterByConfidence(records, options)

	headers := []string{
		"Label", "Description", "Page", "Keyword", "Language",
		"Confidence", "Priority", "Category",
	}
	if options.ShowTokens || options.Verbose {
		headers = append(headers, "Raw Tokens")
	}

	csvRows := []string{strings.Join(headers, ",")}

	for _, record := range records {
		row := []string{
			f.escapeCSVField(record.Label),
			f.escapeCSVField(record.Description),
			fmt.Sprintf("%d", record.Page),
			f.escapeCSVField(record.Keyword),
			f.escapeCSVField(record.Language),
			fmt.Sprintf("%.2f", record.Confidence),
			f.escapeCSVField(string(record.Priority)),
			f.escapeCSVField(string(record.Category)),
		}
		if options.ShowTokens || options.Verbose {
			row = append(row, f.escapeCSVField(strings.Join(record.RawTokens, " ")))
		}
		csvRows = append(csvRows, strings.Join(row, ","))
	}

	return strings.Join(csvRows, "\n"), nil
}

// escapeCSVField properly escapes a field for CSV format and prevents CSV injection
func (f *Formatter) escapeCSVField(field string) string {
	// Prevent CSV injection by sanitizing formula characters
	field = f.sanitizeFormulaInjection(field)

	// If field contains comma, quote, or newline, wrap in quotes and escape internal quotes
	if strings.Contains(field, ",") || strings.Contains(field, "\"") || strings.Contains(field, "\n") || strings.Contains(field, "\r") {
		escaped := strings.ReplaceAll(field, "\"", "\"\"")
		return fmt.Sprintf("\"%s\"", escaped)
	}
	return field
}

// sanitizeFormulaInjection prevents CSV injection attacks by sanitizing formula characters
func (f *Formatter) sanitizeFormulaInjection(field string) string {
	if len(field) == 0 {
		return field
	}

	firstChar := field[0]
	if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' {
		// Prefix with single quote to neutralize formula execution
		return "'" + field
	}

	return field
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
