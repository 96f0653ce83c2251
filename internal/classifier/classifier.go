// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classifier assigns a priority tier and a category to a
// requirement candidate. Security keywords override every other tier;
// otherwise the highest matching tier wins. Categories are tallied from
// keyword tables and structural pattern groups, with Functional as the
// default on no match or a tie.
package classifier

import (
	"regexp"
	"strings"
	"sync"

	"reqsift/internal/patterns"
	"reqsift/internal/profiles"
	"reqsift/internal/requirement"
)

// categoryKeywords maps each category to the keyword table used for the
// tally. The tables mix English terms with their German, French, Spanish
// and Italian counterparts so one table serves all supported languages.
var categoryKeywords = map[requirement.Category][]string{
	requirement.CategoryFunctional: {
		"function", "functional", "feature", "provide", "perform", "operate",
		"funktion", "bereitstellen", "fonction", "fournir", "función",
		"proporcionar", "funzione", "fornire",
	},
	requirement.CategorySafety: {
		"safety", "hazard", "failure", "fail-safe", "emergency", "accident",
		"sicherheitskritisch", "gefahr", "notfall", "sécurité-innocuité",
		"danger", "urgence", "peligro", "emergencia", "pericolo", "emergenza",
	},
	requirement.CategoryPerformance: {
		"performance", "latency", "throughput", "response", "speed",
		"capacity", "load", "seconds", "milliseconds", "leistung",
		"antwortzeit", "durchsatz", "rendement", "débit", "rendimiento",
		"capacidad", "prestazioni", "capacità",
	},
	requirement.CategorySecurity: {
		"security", "encryption", "authentication", "authorization",
		"password", "confidential", "integrity", "vulnerability", "access",
		"sicherheit", "verschlüsselung", "passwort", "sécurité",
		"chiffrement", "seguridad", "cifrado", "sicurezza", "crittografia",
	},
	requirement.CategoryInterface: {
		"interface", "api", "protocol", "connector", "display", "screen",
		"user", "usability", "schnittstelle", "anzeige", "protocole",
		"affichage", "interfaz", "pantalla", "interfaccia", "schermo",
	},
	requirement.CategoryData: {
		"data", "database", "storage", "record", "archive", "backup",
		"retention", "daten", "datenbank", "speicherung", "données",
		"stockage", "datos", "almacenamiento", "dati", "archiviazione",
	},
	requirement.CategoryCompliance: {
		"comply", "compliance", "standard", "regulation", "law", "directive",
		"certified", "audit", "konform", "norm", "vorschrift", "conforme",
		"norme", "règlement", "cumplimiento", "normativa", "conformità",
		"regolamento",
	},
	requirement.CategoryDocumentation: {
		"document", "documentation", "manual", "guide", "report",
		"deliverable", "dokumentation", "handbuch", "bericht",
		"documentation", "manuel", "rapport", "documentación", "informe",
		"documentazione", "manuale", "rapporto",
	},
	requirement.CategoryTesting: {
		"test", "testing", "verify", "verification", "validate",
		"validation", "inspection", "prüfung", "verifizierung", "essai",
		"vérification", "prueba", "verificación", "collaudo", "verifica",
	},
}

// groupCategories maps structural pattern groups to the category whose
// tally they reinforce.
var groupCategories = map[patterns.Group]requirement.Category{
	patterns.GroupCompliance: requirement.CategoryCompliance,
	patterns.GroupQuantified: requirement.CategoryPerformance,
	patterns.GroupCapability: requirement.CategoryFunctional,
}

// Classifier assigns priority and category from profile keyword tiers and
// pattern-group tallies.
type Classifier struct {
	profiles *profiles.Store
	patterns *patterns.Matcher
}

// New creates a classifier over the given profile store and pattern matcher.
func New(store *profiles.Store, p *patterns.Matcher) *Classifier {
	return &Classifier{profiles: store, patterns: p}
}

// Priority assigns the tier for a candidate. Security keywords override
// everything; otherwise high is checked before medium, so the highest
// matching tier wins. No tier keyword at all defaults to low.
func (c *Classifier) Priority(cand *requirement.Candidate) requirement.Priority {
	security := c.profiles.SecuritySet(cand.Language)
	if matchesTier(cand, security) {
		return requirement.PrioritySecurity
	}

	high, medium, _ := c.profiles.PrioritySets(cand.Language)
	if matchesTier(cand, high) {
		return requirement.PriorityHigh
	}
	if matchesTier(cand, medium) {
		return requirement.PriorityMedium
	}
	return requirement.PriorityLow
}

// matchesTier checks the candidate's tokens against a tier keyword set.
// Multi-word tier entries ("mot de passe") are matched as word-bounded
// phrases against the sentence text.
func matchesTier(cand *requirement.Candidate, tier map[string]bool) bool {
	if len(tier) == 0 {
		return false
	}

	for _, t := range cand.Tokens {
		if tier[t] {
			return true
		}
	}

	var lowered string
	for kw := range tier {
		if !strings.Contains(kw, " ") {
			continue
		}
		if lowered == "" {
			lowered = strings.ToLower(cand.Text)
		}
		if containsPhrase(lowered, kw) {
			return true
		}
	}
	return false
}

// phraseRegexps caches the compiled word-bounded matcher per phrase. The
// phrase set is small and fixed per profile, so the cache never grows past it.
var phraseRegexps sync.Map

func phraseRegexp(phrase string) *regexp.Regexp {
	if cached, ok := phraseRegexps.Load(phrase); ok {
		return cached.(*regexp.Regexp)
	}
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(phrase) + `\b`)
	cached, _ := phraseRegexps.LoadOrStore(phrase, re)
	return cached.(*regexp.Regexp)
}

func containsPhrase(lowered, phrase string) bool {
	return phraseRegexp(phrase).MatchString(lowered)
}

// Categorize tallies keyword and pattern-group matches across the nine
// categories and returns the highest. No match, or a tie for the highest
// tally, yields Functional.
func (c *Classifier) Categorize(cand *requirement.Candidate) requirement.Category {
	tokenSet := make(map[string]bool, len(cand.Tokens))
	for _, t := range cand.Tokens {
		tokenSet[t] = true
	}

	tallies := make(map[requirement.Category]int, len(categoryKeywords))
	for category, words := range categoryKeywords {
		for _, w := range words {
			if tokenSet[w] {
				tallies[category]++
			}
		}
	}

	for _, group := range c.patterns.MatchingGroups(cand.Text, cand.Language) {
		if category, ok := groupCategories[group]; ok {
			tallies[category]++
		}
	}

	best := requirement.CategoryFunctional
	bestTally := 0
	tied := false
	for _, category := range requirement.Categories {
		tally := tallies[category]
		if tally > bestTally {
			best = category
			bestTally = tally
			tied = false
		} else if tally == bestTally && tally > 0 {
			tied = true
		}
	}

	if bestTally == 0 || tied {
		return requirement.CategoryFunctional
	}
	return best
}
