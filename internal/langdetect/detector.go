// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package langdetect identifies the natural language of document text
// without any network or model dependency. Special character frequency,
// common-word overlap, requirement-keyword overlap and character-trigram
// overlap are combined on a fixed 100-point scale.
// Detection is deterministic: identical input yields identical output.
package langdetect

import (
	"sort"
	"strings"
	"unicode"

	"reqsift/internal/profiles"
	"reqsift/internal/requirement"
	"reqsift/internal/textproc"
)

// Weighting of the four sub-scores on a 100-point scale.
const (
	weightSpecialChars = 30
	weightCommonWords  = 40
	weightKeywords     = 20
	weightTrigrams     = 10
)

const (
	// maxSampleChars caps the text considered; the opening of a document
	// is plenty and keeps detection cost flat.
	maxSampleChars = 5000

	// minSampleChars below which detection is unreliable: the result is
	// flagged low-confidence and the confidence is capped.
	minSampleChars    = 60
	shortSampleCap    = 0.25
	acceptanceScore   = 0.50
	commonWordTarget  = 10 // distinct common-word hits for a full sub-score
	keywordHitTarget  = 8  // distinct keyword hits for a full sub-score
	specialCharFactor = 50 // scales special-char frequency to [0,1]
)

// Detector identifies a document's language from a text sample.
type Detector struct {
	defaultLanguage string
	languages       []string
	keywords        map[string]map[string]bool
	signals         map[string]profiles.DetectionSignals
}

// New creates a detector over the given supported languages. keywordsByLang
// supplies each language's requirement keywords and signalsByLang its static
// detection evidence, both typically loaded once from the profile store.
func New(defaultLanguage string, keywordsByLang map[string][]string, signalsByLang map[string]profiles.DetectionSignals) *Detector {
	languages := make([]string, 0, len(signalsByLang))
	for code := range signalsByLang {
		languages = append(languages, code)
	}
	// Sorted order keeps score iteration deterministic.
	sort.Strings(languages)

	keywords := make(map[string]map[string]bool, len(keywordsByLang))
	for code, list := range keywordsByLang {
		set := make(map[string]bool, len(list))
		for _, kw := range list {
			set[strings.ToLower(kw)] = true
		}
		keywords[code] = set
	}

	return &Detector{
		defaultLanguage: defaultLanguage,
		languages:       languages,
		keywords:        keywords,
		signals:         signalsByLang,
	}
}

// Detect scores the sample against every supported language and returns the
// best match. It never fails: when no language reaches the acceptance
// threshold the configured default language is returned flagged
// low-confidence.
func (d *Detector) Detect(sample string) requirement.DetectionResult {
	runes := []rune(sample)
	if len(runes) > maxSampleChars {
		runes = runes[:maxSampleChars]
		sample = string(runes)
	}

	lowered := strings.ToLower(sample)
	tokens := textproc.Tokenize(lowered)
	tokenSet := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		tokenSet[t] = true
	}

	bestLang := d.defaultLanguage
	bestScore := 0.0
	for _, code := range d.languages {
		score := d.score(code, lowered, runes, tokenSet)
		if score > bestScore {
			bestScore = score
			bestLang = code
		}
	}

	if len(runes) < minSampleChars {
		confidence := bestScore
		if confidence > shortSampleCap {
			confidence = shortSampleCap
		}
		return requirement.DetectionResult{
			Language:      bestLang,
			Confidence:    confidence,
			LowConfidence: true,
		}
	}

	if bestScore < acceptanceScore {
		return requirement.DetectionResult{
			Language:      d.defaultLanguage,
			Confidence:    bestScore,
			LowConfidence: true,
		}
	}

	return requirement.DetectionResult{
		Language:   bestLang,
		Confidence: bestScore,
	}
}

// score computes the weighted composite score for one language, in [0,1].
func (d *Detector) score(code, lowered string, runes []rune, tokenSet map[string]bool) float64 {
	sig := d.signals[code]

	points := float64(weightSpecialChars)*specialCharScore(sig.SpecialChars, runes) +
		float64(weightCommonWords)*overlapScore(sig.CommonWords, tokenSet, commonWordTarget) +
		float64(weightKeywords)*keywordScore(d.keywords[code], tokenSet) +
		float64(weightTrigrams)*trigramScore(sig.Trigrams, lowered)

	return points / 100.0
}

// specialCharScore scales the frequency of language-specific letters.
// A couple of occurrences per hundred letters is treated as full evidence.
func specialCharScore(special string, runes []rune) float64 {
	if special == "" {
		return 0
	}

	letters, hits := 0, 0
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if strings.ContainsRune(special, unicode.ToLower(r)) {
			hits++
		}
	}
	if letters == 0 {
		return 0
	}

	score := float64(hits) / float64(letters) * specialCharFactor
	if score > 1 {
		score = 1
	}
	return score
}

// overlapScore counts distinct list entries present in the token set,
// saturating at target hits.
func overlapScore(words []string, tokenSet map[string]bool, target int) float64 {
	hits := 0
	for _, w := range words {
		if tokenSet[w] {
			hits++
		}
	}
	score := float64(hits) / float64(target)
	if score > 1 {
		score = 1
	}
	return score
}

// keywordScore counts distinct requirement keywords present in the sample.
func keywordScore(keywords map[string]bool, tokenSet map[string]bool) float64 {
	if len(keywords) == 0 {
		return 0
	}

	hits := 0
	for kw := range keywords {
		if tokenSet[kw] {
			hits++
		}
	}
	score := float64(hits) / float64(keywordHitTarget)
	if score > 1 {
		score = 1
	}
	return score
}

// trigramScore measures how many of the language's frequent character
// triples occur in the sample.
func trigramScore(trigrams []string, lowered string) float64 {
	if len(trigrams) == 0 {
		return 0
	}

	hits := 0
	for _, tg := range trigrams {
		if strings.Contains(lowered, tg) {
			hits++
		}
	}
	return float64(hits) / float64(len(trigrams))
}
