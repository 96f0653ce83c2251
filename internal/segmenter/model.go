// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package segmenter

import (
	"strings"
	"unicode"

	"reqsift/internal/textproc"
)

// Sentence is one segmented sentence span with its token list.
type Sentence struct {
	Text   string
	Tokens []string
	Start  int // byte offset into the source text
	End    int
}

// Model is a loaded sentence-boundary model for one language: the boundary
// rules plus the language's non-breaking abbreviation set. Models are
// immutable after construction and safe for concurrent use.
type Model struct {
	ID            string
	Language      string
	abbreviations map[string]bool
}

// newModel constructs the sentence model for a language from the profile's
// non-breaking abbreviation list (lowercase, no trailing period). It reports
// false when the language has no boundary data.
func newModel(id, language string, abbreviations []string) (*Model, bool) {
	if len(abbreviations) == 0 {
		return nil, false
	}

	set := make(map[string]bool, len(abbreviations))
	for _, a := range abbreviations {
		set[strings.ToLower(a)] = true
	}

	return &Model{
		ID:            id,
		Language:      language,
		abbreviations: set,
	}, true
}

// Split segments text into sentences. A sentence ends at '.', '!' or '?'
// when the terminator is not part of an abbreviation, an initial or a
// number, and is followed by whitespace and an uppercase letter, a digit,
// or the end of input. Newlines separating paragraphs also end sentences.
func (m *Model) Split(text string) []Sentence {
	var sentences []Sentence
	runes := []rune(text)

	start := 0 // byte offset of the current sentence start
	offset := 0

	flush := func(end int) {
		raw := text[start:end]
		trimmed := strings.TrimSpace(raw)
		if trimmed != "" {
			lead := strings.Index(raw, trimmed)
			sentences = append(sentences, Sentence{
				Text:   trimmed,
				Tokens: textproc.Tokenize(trimmed),
				Start:  start + lead,
				End:    start + lead + len(trimmed),
			})
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		size := len(string(r))

		switch r {
		case '.', '!', '?':
			if r == '.' && !m.isBoundary(runes, i) {
				offset += size
				continue
			}
			// Consume closing quotes/parens after the terminator.
			j := i + 1
			for j < len(runes) && (runes[j] == '"' || runes[j] == '\'' || runes[j] == ')' || runes[j] == ']') {
				j++
			}
			if j >= len(runes) || isSentenceOpener(runes, j) {
				end := offset + size
				for k := i + 1; k < j; k++ {
					end += len(string(runes[k]))
				}
				flush(end)
				for k := i + 1; k < j; k++ {
					offset += len(string(runes[k]))
				}
				i = j - 1
			}
		case '\n':
			// A blank line is a hard paragraph boundary.
			if i+1 < len(runes) && runes[i+1] == '\n' {
				flush(offset)
			}
		}
		offset += size
	}
	flush(len(text))

	return sentences
}

// isBoundary reports whether the period at index i is a genuine sentence
// terminator rather than part of an abbreviation, initial or number.
func (m *Model) isBoundary(runes []rune, i int) bool {
	// Word immediately preceding the period.
	j := i - 1
	for j >= 0 && (unicode.IsLetter(runes[j]) || unicode.IsDigit(runes[j]) || runes[j] == '.') {
		j--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[j+1:i]), "."))

	if m.abbreviations[word] {
		return false
	}
	// Single-letter initials: "J. Smith".
	if len([]rune(word)) == 1 && word != "" && unicode.IsLetter([]rune(word)[0]) {
		return false
	}
	// Decimal numbers and section references: "3.14", "1.2.3".
	if i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
		return false
	}
	return true
}

// isSentenceOpener reports whether position j (after whitespace) plausibly
// starts a new sentence.
func isSentenceOpener(runes []rune, j int) bool {
	for j < len(runes) && unicode.IsSpace(runes[j]) {
		j++
	}
	if j >= len(runes) {
		return true
	}
	r := runes[j]
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '"' || r == '\''
}
