// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package patterns

import (
	"reflect"
	"testing"

	"reqsift/internal/profiles"
)

func TestMatchesAny(t *testing.T) {
	m := New("en", profiles.DefaultPatternDefs())

	tests := []struct {
		name     string
		sentence string
		lang     string
		want     bool
	}{
		{"en modal", "The system shall respond quickly", "en", true},
		{"en negated modal", "The system must not expose internal state", "en", true},
		{"en capability", "The operator is capable of overriding the limit", "en", true},
		{"en compliance", "The device conforms to ISO 26262", "en", true},
		{"en quantified", "The buffer holds at least 64 entries", "en", true},
		{"en plain prose", "This chapter describes the architecture", "en", false},
		{"de modal", "Das System muss alle Daten speichern", "de", true},
		{"fr modal", "Le système doit garantir la disponibilité", "fr", true},
		{"es modal", "El sistema debe registrar los eventos", "es", true},
		{"it modal", "Il sistema deve registrare gli eventi", "it", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.MatchesAny(tt.sentence, tt.lang); got != tt.want {
				t.Errorf("MatchesAny(%q, %q) = %v, want %v", tt.sentence, tt.lang, got, tt.want)
			}
		})
	}
}

func TestMatchingGroupsOrderAndDedup(t *testing.T) {
	m := New("en", profiles.DefaultPatternDefs())

	// Matches modal, subject-verb and quantified; groups come back in table
	// order with no duplicates.
	sentence := "The system shall store at least 100 records"
	got := m.MatchingGroups(sentence, "en")
	want := []Group{GroupModal, GroupSubjectVerb, GroupQuantified}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchingGroups(%q) = %v, want %v", sentence, got, want)
	}
}

func TestUnknownLanguageFallsBackToDefault(t *testing.T) {
	m := New("en", profiles.DefaultPatternDefs())

	if !m.MatchesAny("The system shall respond", "xx") {
		t.Error("unsupported language should fall back to the default pattern table")
	}
}

func TestNoMatchReturnsNoGroups(t *testing.T) {
	m := New("en", profiles.DefaultPatternDefs())

	if groups := m.MatchingGroups("a quiet descriptive paragraph", "en"); len(groups) != 0 {
		t.Errorf("expected no groups, got %v", groups)
	}
}
