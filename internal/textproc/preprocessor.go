// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package textproc normalizes raw page text extracted from specification
// documents. Extraction tends to leave artifacts behind: words hyphenated
// across line breaks, page-number footer lines, typographic punctuation and
// irregular whitespace. Normalize repairs these in a fixed order so that
// sentence segmentation downstream sees clean prose.
package textproc

import (
	"regexp"
	"strings"
)

var (
	// A word split across a line break: "require-\nment" -> "requirement".
	hyphenBreakRe = regexp.MustCompile(`(\p{L})-[ \t]*\r?\n[ \t]*(\p{L})`)

	// Page-number and footer lines: "12", "Page 12", "12 of 34", "- 12 -",
	// plus the of/von/de/di/sur connectives seen in multilingual footers.
	pageNumberRe = regexp.MustCompile(`(?i)^\s*(?:page|seite|página|pagina)?\s*\d+\s*(?:(?:of|von|de|di|sur|/)\s*\d+)?\s*$`)
	pageDashRe   = regexp.MustCompile(`^\s*[-–—]\s*\d+\s*[-–—]\s*$`)

	// Runs of spaces and tabs within a line.
	spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)

	// Three or more newlines collapse to one paragraph break.
	paraRunRe = regexp.MustCompile(`\n{3,}`)
)

// unicodeReplacer maps typographic punctuation and exotic spaces to ASCII.
var unicodeReplacer = strings.NewReplacer(
	" ", " ", // no-break space
	" ", " ", // narrow no-break space
	" ", " ", // thin space
	" ", " ", // en space
	" ", " ", // em space
	"​", "", // zero-width space
	"­", "", // soft hyphen
	"–", "-", // en dash
	"—", "-", // em dash
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"‚", "'", // single low quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"„", `"`, // double low quote
	"…", "...", // ellipsis
	"\uFEFF", "", // BOM
)

// Normalize cleans raw page text. It is a pure function and never fails:
// any input, including binary garbage, returns a string. If an internal
// step panics the original input is returned unchanged.
func Normalize(text string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = text
		}
	}()

	if text == "" {
		return ""
	}

	out = joinHyphenation(text)
	out = stripPageArtifacts(out)
	out = unicodeReplacer.Replace(out)
	out = collapseWhitespace(out)
	out = dropEmptyLines(out)
	return out
}

// joinHyphenation repairs words hyphenated across line breaks.
func joinHyphenation(text string) string {
	return hyphenBreakRe.ReplaceAllString(text, "$1$2")
}

// stripPageArtifacts removes lines that are only page numbers or footers.
func stripPageArtifacts(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if pageNumberRe.MatchString(line) || pageDashRe.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// collapseWhitespace trims lines and collapses runs of spaces and tabs.
func collapseWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	return strings.Join(lines, "\n")
}

// dropEmptyLines removes blank lines but preserves paragraph breaks:
// a run of blank lines becomes exactly one blank line.
func dropEmptyLines(text string) string {
	text = paraRunRe.ReplaceAllString(text, "\n\n")
	return strings.Trim(text, "\n")
}
