// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"strings"
	"testing"
)

func TestNormalizeJoinsHyphenatedWords(t *testing.T) {
	input := "The require-\nment applies to all sub-\n  systems."
	got := Normalize(input)

	if !strings.Contains(got, "requirement") {
		t.Errorf("expected hyphenated word joined, got %q", got)
	}
	if !strings.Contains(got, "subsystems") {
		t.Errorf("expected hyphenation across indented line joined, got %q", got)
	}
}

func TestNormalizeStripsPageArtifacts(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"bare number", "42"},
		{"page n", "Page 42"},
		{"n of m", "12 of 34"},
		{"german footer", "Seite 7 von 20"},
		{"french footer", "page 3 sur 10"},
		{"dash framed", "- 12 -"},
		{"slash form", "3 / 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "The system shall operate.\n" + tt.line + "\nIt must log all events."
			got := Normalize(input)
			if strings.Contains(got, strings.TrimSpace(tt.line)) {
				t.Errorf("footer line %q survived normalization: %q", tt.line, got)
			}
			if !strings.Contains(got, "shall operate") || !strings.Contains(got, "log all events") {
				t.Errorf("prose lines were lost: %q", got)
			}
		})
	}
}

func TestNormalizeReplacesTypographicPunctuation(t *testing.T) {
	input := "The system shall use “secure” channels – always…"
	got := Normalize(input)

	if strings.ContainsRune(got, ' ') {
		t.Errorf("no-break space survived: %q", got)
	}
	if !strings.Contains(got, `"secure"`) {
		t.Errorf("smart quotes not converted: %q", got)
	}
	if !strings.Contains(got, "- always...") {
		t.Errorf("dash and ellipsis not converted: %q", got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	input := "The  system\t\tshall   work.\r\n\r\n\r\n\r\nNext paragraph."
	got := Normalize(input)

	if strings.Contains(got, "  ") {
		t.Errorf("space run survived: %q", got)
	}
	if !strings.Contains(got, "The system shall work.") {
		t.Errorf("unexpected collapse result: %q", got)
	}
	// A run of blank lines becomes exactly one blank line.
	if !strings.Contains(got, "work.\n\nNext") {
		t.Errorf("paragraph break not preserved: %q", got)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty output for empty input, got %q", got)
	}
	if got := Normalize("\n\n\n"); got != "" {
		t.Errorf("expected empty output for blank input, got %q", got)
	}
}

func TestNormalizeNeverPanicsOnGarbage(t *testing.T) {
	inputs := []string{
		string([]byte{0x00, 0xff, 0xfe, 0x01}),
		strings.Repeat("\xc3\x28", 100), // invalid UTF-8
		"\uFEFFleading bom",
	}
	for _, input := range inputs {
		// Must not panic; result content is best-effort.
		_ = Normalize(input)
	}
}
