// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package scorer computes the heuristic confidence score for a requirement
// candidate. The score starts at 1.0 and is shaped by multiplicative
// factors; the factor weights live in one table so the heuristic stays
// auditable and tunable.
package scorer

import (
	"strings"
	"unicode"

	"reqsift/internal/matcher"
	"reqsift/internal/patterns"
	"reqsift/internal/requirement"
	"reqsift/internal/textproc"
)

// Weight table. Each factor multiplies the running score.
const (
	// Length factors by word count band.
	lengthIdealFactor    = 1.0 // 8-50 words: well-formed requirement prose
	lengthMarginalFactor = 0.7 // 5-7 or 51-80 words: fragment or long clause
	lengthPoorFactor     = 0.3 // 81-100 words: likely a mis-segmented block

	// Boosts.
	keywordDensityFactor = 1.2 // two or more distinct requirement keywords
	patternFactor        = 1.3 // structural pattern match

	// Penalties.
	headingFactor        = 0.5 // all-caps or very short: heading, not a requirement
	numericDensityFactor = 0.6 // >30% numeric tokens: tabular data

	// Band boundaries and thresholds feeding the factors above.
	idealMinWords      = 8
	idealMaxWords      = 50
	marginalMaxWords   = 80
	headingMaxWords    = 4
	numericTokenCutoff = 0.30
)

// DefaultThreshold is the canonical acceptance threshold: candidates
// scoring below it are dropped.
const DefaultThreshold = 0.40

// Scorer evaluates candidates against the weight table.
type Scorer struct {
	patterns *patterns.Matcher
}

// New creates a scorer using the given structural pattern matcher.
func New(p *patterns.Matcher) *Scorer {
	return &Scorer{patterns: p}
}

// Score computes the confidence for a candidate in [0.0, 1.0]. keywords is
// the lowered keyword set of the candidate's language profile.
func (s *Scorer) Score(c *requirement.Candidate, keywords map[string]bool) float64 {
	score := lengthFactor(len(c.Tokens))

	if matcher.DistinctKeywords(c.Tokens, keywords) >= 2 {
		score *= keywordDensityFactor
	}
	if s.patterns.MatchesAny(c.Text, c.Language) {
		score *= patternFactor
	}
	if looksLikeHeading(c.Text, len(c.Tokens)) {
		score *= headingFactor
	}
	if numericDensity(c.Tokens) > numericTokenCutoff {
		score *= numericDensityFactor
	}

	return clamp(score)
}

// lengthFactor bands the word count.
func lengthFactor(words int) float64 {
	switch {
	case words >= idealMinWords && words <= idealMaxWords:
		return lengthIdealFactor
	case words > idealMaxWords && words <= marginalMaxWords:
		return lengthMarginalFactor
	case words < idealMinWords:
		return lengthMarginalFactor
	default:
		return lengthPoorFactor
	}
}

// looksLikeHeading flags sentences that are entirely upper-case or too
// short to be a requirement statement.
func looksLikeHeading(text string, words int) bool {
	if words <= headingMaxWords {
		return true
	}

	hasLetter := false
	for _, r := range text {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter && text == strings.ToUpper(text)
}

// numericDensity is the fraction of tokens that are purely numeric.
func numericDensity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	numeric := 0
	for _, t := range tokens {
		if textproc.IsNumericToken(t) {
			numeric++
		}
	}
	return float64(numeric) / float64(len(tokens))
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
