// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classifier

import (
	"path/filepath"
	"testing"

	"reqsift/internal/observability"
	"reqsift/internal/patterns"
	"reqsift/internal/profiles"
	"reqsift/internal/requirement"
	"reqsift/internal/textproc"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	observer := observability.NewStandardObserver(observability.ObservabilityOff, nil)
	store := profiles.NewStore(filepath.Join(t.TempDir(), "profiles.yaml"), observer)
	return New(store, patterns.New("en", profiles.DefaultPatternDefs()))
}

func candidate(text, lang string) *requirement.Candidate {
	return &requirement.Candidate{
		Text:     text,
		Tokens:   textproc.Tokenize(text),
		Language: lang,
	}
}

func TestPrioritySecurityOverridesEverything(t *testing.T) {
	c := newTestClassifier(t)

	// "must" is a high-tier keyword but "password" forces the security tier.
	got := c.Priority(candidate("The system must store the password securely", "en"))
	if got != requirement.PrioritySecurity {
		t.Errorf("priority = %q, want security", got)
	}
}

func TestPriorityHighestTierWins(t *testing.T) {
	c := newTestClassifier(t)

	// Both "must" (high) and "should" (medium) appear; high wins.
	got := c.Priority(candidate("The service must log errors and should alert operators", "en"))
	if got != requirement.PriorityHigh {
		t.Errorf("priority = %q, want high", got)
	}
}

func TestPriorityMedium(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Priority(candidate("The service should retry failed transfers", "en"))
	if got != requirement.PriorityMedium {
		t.Errorf("priority = %q, want medium", got)
	}
}

func TestPriorityDefaultsToLow(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Priority(candidate("The display uses a dark theme by default", "en"))
	if got != requirement.PriorityLow {
		t.Errorf("priority = %q, want low", got)
	}
}

func TestPriorityMatchesMultiwordSecurityPhrase(t *testing.T) {
	c := newTestClassifier(t)

	// French "mot de passe" only exists as a phrase, never as one token.
	got := c.Priority(candidate("Le mot de passe doit rester secret", "fr"))
	if got != requirement.PrioritySecurity {
		t.Errorf("priority = %q, want security for phrase match", got)
	}
}

func TestCategorizeSecurity(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Categorize(candidate("The system must use encryption and authentication for security access", "en"))
	if got != requirement.CategorySecurity {
		t.Errorf("category = %q, want security", got)
	}
}

func TestCategorizePerformanceViaQuantifiedPattern(t *testing.T) {
	c := newTestClassifier(t)

	// "latency" tallies performance; the quantified pattern reinforces it.
	got := c.Categorize(candidate("The gateway latency must stay below a maximum of 200 milliseconds", "en"))
	if got != requirement.CategoryPerformance {
		t.Errorf("category = %q, want performance", got)
	}
}

func TestCategorizeTieFallsBackToFunctional(t *testing.T) {
	c := newTestClassifier(t)

	// One security word and one performance word with nothing to break the tie.
	got := c.Categorize(candidate("It handles encryption latency gracefully", "en"))
	if got != requirement.CategoryFunctional {
		t.Errorf("category = %q, want functional on a tie", got)
	}
}

func TestCategorizeNoMatchDefaultsToFunctional(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Categorize(candidate("Nothing about known themes appears here", "en"))
	if got != requirement.CategoryFunctional {
		t.Errorf("category = %q, want functional", got)
	}
}

func TestCategorizeGermanDataRequirement(t *testing.T) {
	c := newTestClassifier(t)

	got := c.Categorize(candidate("Das System muss alle Daten in der Datenbank speichern", "de"))
	if got != requirement.CategoryData {
		t.Errorf("category = %q, want data", got)
	}
}

func TestPhraseRegexpCachesCompiledMatcher(t *testing.T) {
	first := phraseRegexp("mot de passe")
	second := phraseRegexp("mot de passe")
	if first != second {
		t.Error("expected the cached matcher to be reused")
	}
	if !first.MatchString("le mot de passe doit rester secret") {
		t.Error("phrase not matched")
	}
	if first.MatchString("un motif de passe") {
		t.Error("matched across word boundaries")
	}
}
