// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package textproc

import (
	"regexp"
	"strings"
	"unicode"
)

// wordRe matches word-boundary tokens: runs of letters or digits, allowing
// internal apostrophes and hyphens ("shouldn't", "fail-safe"). Substrings
// are never tokens on their own, so "Marshall" yields the single token
// "marshall" and can never satisfy the keyword "shall".
var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+(?:['’-][\p{L}\p{N}]+)*`)

// Tokenize splits text into lower-cased word-boundary tokens.
func Tokenize(text string) []string {
	words := wordRe.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}

// IsNumericToken reports whether a token consists solely of digits
// (and digit separators), i.e. likely tabular data rather than prose.
func IsNumericToken(token string) bool {
	if token == "" {
		return false
	}
	hasDigit := false
	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case r == '.' || r == ',' || r == '-':
			// separators inside figures: 1,000 / 3.14 / 2024-01
		default:
			return false
		}
	}
	return hasDigit
}
