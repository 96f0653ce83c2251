// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package patterns detects structural requirement phrasing with
// language-specific regular expressions. The pattern tables live in the
// language profiles resource and are compiled once at startup, so adding
// a language touches only the resource file.
package patterns

import (
	"regexp"

	"reqsift/internal/profiles"
)

// Group names a structural pattern family.
type Group string

const (
	GroupModal       Group = "modal"
	GroupSubjectVerb Group = "subject_verb"
	GroupCapability  Group = "capability"
	GroupCompliance  Group = "compliance"
	GroupNecessity   Group = "necessity"
	GroupQuantified  Group = "quantified"
)

type compiledPattern struct {
	group Group
	re    *regexp.Regexp
}

// Matcher evaluates the structural patterns for a language. Patterns are
// compiled once at construction; Matcher is safe for concurrent use.
type Matcher struct {
	compiled        map[string][]compiledPattern
	defaultLanguage string
}

// New compiles the given per-language pattern tables, typically the profile
// store's. The store validates expressions at load time; entries that still
// fail to compile are dropped.
func New(defaultLanguage string, defs map[string][]profiles.PatternDef) *Matcher {
	compiled := make(map[string][]compiledPattern, len(defs))
	for lang, list := range defs {
		patterns := make([]compiledPattern, 0, len(list))
		for _, def := range list {
			re, err := regexp.Compile(def.Expr)
			if err != nil {
				continue
			}
			patterns = append(patterns, compiledPattern{
				group: Group(def.Group),
				re:    re,
			})
		}
		compiled[lang] = patterns
	}
	return &Matcher{
		compiled:        compiled,
		defaultLanguage: defaultLanguage,
	}
}

// patternsFor returns the pattern list for a language, falling back to the
// default language's list for unsupported codes.
func (m *Matcher) patternsFor(lang string) []compiledPattern {
	if list, ok := m.compiled[lang]; ok {
		return list
	}
	return m.compiled[m.defaultLanguage]
}

// MatchesAny reports whether the sentence matches any structural pattern
// of the language.
func (m *Matcher) MatchesAny(sentence, lang string) bool {
	for _, p := range m.patternsFor(lang) {
		if p.re.MatchString(sentence) {
			return true
		}
	}
	return false
}

// MatchingGroups returns the pattern groups the sentence matches, in table
// order, at most once per group.
func (m *Matcher) MatchingGroups(sentence, lang string) []Group {
	var groups []Group
	seen := make(map[Group]bool)
	for _, p := range m.patternsFor(lang) {
		if seen[p.group] {
			continue
		}
		if p.re.MatchString(sentence) {
			seen[p.group] = true
			groups = append(groups, p.group)
		}
	}
	return groups
}
