// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"testing"

	"reqsift/internal/profiles"
)

func mustModel(t *testing.T, lang string) *Model {
	t.Helper()
	m, ok := newModel("sentence-"+lang+"-v1", lang, profiles.DefaultProfiles()[lang].Abbreviations)
	if !ok {
		t.Fatalf("no model data for %q", lang)
	}
	return m
}

func sentenceTexts(sentences []Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func TestSplitBasicSentences(t *testing.T) {
	m := mustModel(t, "en")

	got := m.Split("The system shall log events. The operator must review them.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), sentenceTexts(got))
	}
	if got[0].Text != "The system shall log events." {
		t.Errorf("first sentence = %q", got[0].Text)
	}
	if got[1].Text != "The operator must review them." {
		t.Errorf("second sentence = %q", got[1].Text)
	}
}

func TestSplitDoesNotBreakAbbreviations(t *testing.T) {
	m := mustModel(t, "en")

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"abbreviation", "See fig. 3 for details. The system shall comply.", 2},
		{"decimal number", "The delay is 3.14 seconds at most. Retries are forbidden.", 2},
		{"initial", "J. Smith approved the design. It was final.", 2},
		{"etc mid-sentence", "Inputs include voltage, current, etc. and must be validated.", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Split(tt.input)
			if len(got) != tt.want {
				t.Errorf("expected %d sentences, got %d: %v", tt.want, len(got), sentenceTexts(got))
			}
		})
	}
}

func TestSplitGermanAbbreviations(t *testing.T) {
	m := mustModel(t, "de")

	got := m.Split("Die Werte sind ca. 40 Prozent höher. Das System muss dies melden.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), sentenceTexts(got))
	}
}

func TestSplitParagraphBoundary(t *testing.T) {
	m := mustModel(t, "en")

	got := m.Split("First fragment without terminator\n\nSecond paragraph here")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences across the blank line, got %d: %v", len(got), sentenceTexts(got))
	}
}

func TestSplitExclamationAndQuestion(t *testing.T) {
	m := mustModel(t, "en")

	got := m.Split("Never bypass the interlock! Is the channel encrypted? The audit says yes.")
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %v", len(got), sentenceTexts(got))
	}
}

func TestSplitOffsetsMatchSource(t *testing.T) {
	m := mustModel(t, "en")

	text := "The system shall log events. See fig. 3 for details.\n\nThe operator must review them!"
	for _, s := range m.Split(text) {
		if s.Start < 0 || s.End > len(text) || s.Start >= s.End {
			t.Fatalf("bad offsets [%d,%d) for %q", s.Start, s.End, s.Text)
		}
		if text[s.Start:s.End] != s.Text {
			t.Errorf("offsets [%d,%d) yield %q, want %q", s.Start, s.End, text[s.Start:s.End], s.Text)
		}
	}
}

func TestSplitTokenizesSentences(t *testing.T) {
	m := mustModel(t, "en")

	got := m.Split("The System SHALL respond.")
	if len(got) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(got))
	}
	want := []string{"the", "system", "shall", "respond"}
	if len(got[0].Tokens) != len(want) {
		t.Fatalf("tokens = %v, want %v", got[0].Tokens, want)
	}
	for i, tok := range want {
		if got[0].Tokens[i] != tok {
			t.Errorf("token %d = %q, want %q", i, got[0].Tokens[i], tok)
		}
	}
}

func TestSplitEmptyText(t *testing.T) {
	m := mustModel(t, "en")

	if got := m.Split(""); len(got) != 0 {
		t.Errorf("expected no sentences for empty text, got %d", len(got))
	}
	if got := m.Split("   \n\n  "); len(got) != 0 {
		t.Errorf("expected no sentences for blank text, got %d", len(got))
	}
}

func TestNewModelWithoutAbbreviationData(t *testing.T) {
	if _, ok := newModel("sentence-xx-v1", "xx", nil); ok {
		t.Error("expected no model without abbreviation data")
	}
}
