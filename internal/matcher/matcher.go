// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package matcher turns segmented sentences into requirement candidates.
// A sentence must pass length validation and contain at least one exact,
// word-boundary keyword match from the active language profile. Matching
// is token-exact: "Marshall" never matches the keyword "shall".
package matcher

import (
	"reqsift/internal/requirement"
)

// Default sentence length bounds, in words. Shorter sentences are headings
// or fragments; longer ones are whole-paragraph mis-segmentations that
// would otherwise become spurious page-spanning requirements.
const (
	MinSentenceWords = 5
	MaxSentenceWords = 100
)

// Verdict explains why a sentence was or was not accepted as a candidate.
type Verdict int

const (
	Accepted Verdict = iota
	RejectedTooShort
	RejectedTooLong
	RejectedNoKeyword
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "accepted"
	case RejectedTooShort:
		return "too_short"
	case RejectedTooLong:
		return "too_long"
	case RejectedNoKeyword:
		return "no_keyword"
	default:
		return "unknown"
	}
}

// Filter validates sentence length and performs exact keyword matching.
type Filter struct {
	MinWords int
	MaxWords int
}

// NewFilter creates a filter with the default length bounds.
func NewFilter() *Filter {
	return &Filter{
		MinWords: MinSentenceWords,
		MaxWords: MaxSentenceWords,
	}
}

// Examine checks one segmented sentence against the active keyword set.
// tokens must already be lower-cased word-boundary tokens; keywords is the
// lowered keyword lookup set from the language profile. On acceptance the
// returned candidate records the first keyword matched in token order.
func (f *Filter) Examine(text string, tokens []string, page int, lang string, keywords map[string]bool) (*requirement.Candidate, Verdict) {
	if len(tokens) < f.MinWords {
		return nil, RejectedTooShort
	}
	if len(tokens) > f.MaxWords {
		return nil, RejectedTooLong
	}

	keyword, ok := MatchKeyword(tokens, keywords)
	if !ok {
		return nil, RejectedNoKeyword
	}

	return &requirement.Candidate{
		Text:           text,
		Page:           page,
		Tokens:         tokens,
		MatchedKeyword: keyword,
		Language:       lang,
	}, Accepted
}

// MatchKeyword returns the first token that exactly equals a profile
// keyword. No substring matching is performed.
func MatchKeyword(tokens []string, keywords map[string]bool) (string, bool) {
	for _, t := range tokens {
		if keywords[t] {
			return t, true
		}
	}
	return "", false
}

// DistinctKeywords counts the distinct profile keywords present in the
// token list, used by the scorer's keyword-density factor.
func DistinctKeywords(tokens []string, keywords map[string]bool) int {
	seen := make(map[string]bool)
	for _, t := range tokens {
		if keywords[t] && !seen[t] {
			seen[t] = true
		}
	}
	return len(seen)
}
