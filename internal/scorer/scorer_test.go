// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package scorer

import (
	"math"
	"testing"

	"reqsift/internal/patterns"
	"reqsift/internal/profiles"
	"reqsift/internal/requirement"
	"reqsift/internal/textproc"
)

var englishKeywords = map[string]bool{
	"shall": true, "must": true, "should": true, "require": true,
	"required": true, "mandatory": true, "ensure": true,
}

func newCandidate(text string) *requirement.Candidate {
	return &requirement.Candidate{
		Text:     text,
		Tokens:   textproc.Tokenize(text),
		Language: "en",
	}
}

func approx(t *testing.T, got, want float64, context string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s: score = %v, want %v", context, got, want)
	}
}

func TestScoreShortSentenceWithPattern(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	// 5 words is below the ideal band (0.7) but the modal pattern boosts
	// it (1.3): 0.7 * 1.3 = 0.91.
	c := newCandidate("The system shall record events")
	approx(t, s.Score(c, englishKeywords), 0.91, "short sentence with pattern")
}

func TestScoreClampsAtOne(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	// Ideal length, two or more distinct keywords, pattern match:
	// 1.0 * 1.2 * 1.3 clamps to 1.0.
	c := newCandidate("The system shall ensure that operators must confirm every change")
	approx(t, s.Score(c, englishKeywords), 1.0, "stacked boosts")
}

func TestScorePenalizesHeadings(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	// 4 words: marginal length (0.7) times heading penalty (0.5).
	c := newCandidate("OVERVIEW OF SYSTEM REQUIREMENTS")
	approx(t, s.Score(c, englishKeywords), 0.35, "short heading")

	// More than 4 words but entirely upper-case is still a heading.
	c = newCandidate("THE SYSTEM CONFIGURATION PARAMETERS TABLE OVERVIEW")
	approx(t, s.Score(c, englishKeywords), 0.35, "all-caps heading")
}

func TestScorePenalizesNumericTables(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	// 13 tokens (ideal band), 10 of them numeric: 1.0 * 0.6.
	c := newCandidate("Values 10 20 30 40 50 60 70 80 90 100 are listed")
	approx(t, s.Score(c, englishKeywords), 0.6, "numeric table row")
}

func TestScoreLengthBands(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	tests := []struct {
		name  string
		words int
		want  float64
	}{
		{"ideal band", 10, lengthIdealFactor},
		{"long clause", 60, lengthMarginalFactor},
		{"mis-segmented block", 90, lengthPoorFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := make([]string, tt.words)
			for i := range tokens {
				tokens[i] = "word"
			}
			c := &requirement.Candidate{
				Text:     "this sentence is lower case prose",
				Tokens:   tokens,
				Language: "en",
			}
			approx(t, s.Score(c, englishKeywords), tt.want, tt.name)
		})
	}
}

func TestScoreStaysInRange(t *testing.T) {
	s := New(patterns.New("en", profiles.DefaultPatternDefs()))

	inputs := []string{
		"The system shall record events",
		"OVERVIEW",
		"Values 1 2 3 4 5 must comply with at least 10 standards",
		"The subsystem shall ensure operators must comply with at least 3 mandatory audits",
	}
	for _, text := range inputs {
		got := s.Score(newCandidate(text), englishKeywords)
		if got < 0 || got > 1 {
			t.Errorf("score out of range for %q: %v", text, got)
		}
	}
}
