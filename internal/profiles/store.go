// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"reqsift/internal/observability"
	"reqsift/internal/paths"

	"gopkg.in/yaml.v3"
)

// storeVersion is written into the profiles resource so future format
// changes can be migrated.
const storeVersion = "1.1"

// PatternDef is one structural pattern in the resource: a group name and a
// regular expression. The pattern matcher compiles these once at startup.
type PatternDef struct {
	Group string `yaml:"group"`
	Expr  string `yaml:"expr"`
}

// DetectionSignals holds the static evidence the language detector uses:
// letters rarely seen outside the language, high-frequency function words,
// and frequent character triples.
type DetectionSignals struct {
	SpecialChars string   `yaml:"special_chars,omitempty"`
	CommonWords  []string `yaml:"common_words"`
	Trigrams     []string `yaml:"trigrams"`
}

// Profile bundles everything the pipeline knows about one language: keyword
// sets, priority tiers, security override keywords, structural patterns,
// non-breaking abbreviations, detection signals and the sentence model
// identifier. Adding a language is a matter of adding an entry to the
// resource file.
type Profile struct {
	Code             string           `yaml:"code"`
	Keywords         []string         `yaml:"keywords"`
	PriorityHigh     []string         `yaml:"priority_high"`
	PriorityMedium   []string         `yaml:"priority_medium"`
	PriorityLow      []string         `yaml:"priority_low"`
	SecurityKeywords []string         `yaml:"security_keywords"`
	Patterns         []PatternDef     `yaml:"patterns"`
	Abbreviations    []string         `yaml:"abbreviations"`
	Detection        DetectionSignals `yaml:"detection"`
	ModelID          string           `yaml:"model_id"`
}

// storeFile is the on-disk shape of the profiles resource.
type storeFile struct {
	Version   string             `yaml:"version"`
	Languages map[string]Profile `yaml:"languages"`
}

// Store provides thread-safe access to language profiles. The backing file
// is loaded lazily on first access; a missing or corrupted file is replaced
// with built-in defaults (logged, never fatal).
//
// The store is constructed explicitly and passed to the pipeline by the
// host process; internal laziness uses double-checked locking so that
// steady-state reads after warm-up take only the read lock.
type Store struct {
	path     string
	observer *observability.StandardObserver

	mu       sync.RWMutex
	loaded   bool
	profiles map[string]Profile

	// Pre-lowered lookup sets derived from profiles at load time.
	keywordSets  map[string]map[string]bool
	highSets     map[string]map[string]bool
	mediumSets   map[string]map[string]bool
	lowSets      map[string]map[string]bool
	securitySets map[string]map[string]bool
}

// NewStore creates a profile store backed by the given file path.
// An empty path uses the default location under the config directory.
func NewStore(path string, observer *observability.StandardObserver) *Store {
	if path == "" {
		path = paths.GetLanguageProfilesFile()
	}
	return &Store{
		path:     path,
		observer: observer,
	}
}

// ensureLoaded loads the backing file on first use (double-checked locking).
func (s *Store) ensureLoaded() {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loadLocked()
	s.loaded = true
}

// loadLocked reads the resource from disk, falling back to defaults and
// rewriting the file when it is missing or malformed. Caller holds s.mu.
func (s *Store) loadLocked() {
	data, err := os.ReadFile(filepath.Clean(s.path))
	if err != nil {
		s.observer.LogDegradation("profile_store",
			fmt.Sprintf("profiles resource missing, creating defaults at %s", s.path), nil)
		s.resetToDefaultsLocked()
		return
	}

	var file storeFile
	if err := yaml.Unmarshal(data, &file); err != nil || len(file.Languages) == 0 {
		s.observer.LogDegradation("profile_store",
			fmt.Sprintf("profiles resource corrupted, regenerating defaults at %s", s.path), nil)
		s.resetToDefaultsLocked()
		return
	}

	// Reject profiles that violate the basic invariant: a supported code
	// needs keywords, patterns, abbreviations and a model id, and every
	// pattern expression has to compile. Files written by earlier versions
	// without these fields are regenerated.
	for code, p := range file.Languages {
		if len(p.Keywords) == 0 || len(p.Patterns) == 0 || len(p.Abbreviations) == 0 || p.ModelID == "" {
			s.observer.LogDegradation("profile_store",
				fmt.Sprintf("profile %q incomplete, regenerating defaults", code), nil)
			s.resetToDefaultsLocked()
			return
		}
		for _, def := range p.Patterns {
			if _, err := regexp.Compile(def.Expr); err != nil {
				s.observer.LogDegradation("profile_store",
					fmt.Sprintf("profile %q pattern %q does not compile, regenerating defaults", code, def.Expr), nil)
				s.resetToDefaultsLocked()
				return
			}
		}
	}

	s.profiles = file.Languages
	s.rebuildSetsLocked()
}

// resetToDefaultsLocked installs the built-in profiles and persists them.
func (s *Store) resetToDefaultsLocked() {
	s.profiles = DefaultProfiles()
	s.rebuildSetsLocked()
	if err := s.saveLocked(); err != nil {
		s.observer.LogDegradation("profile_store",
			fmt.Sprintf("could not persist default profiles: %v", err), nil)
	}
}

// rebuildSetsLocked derives the lowered lookup sets from s.profiles.
func (s *Store) rebuildSetsLocked() {
	s.keywordSets = make(map[string]map[string]bool, len(s.profiles))
	s.highSets = make(map[string]map[string]bool, len(s.profiles))
	s.mediumSets = make(map[string]map[string]bool, len(s.profiles))
	s.lowSets = make(map[string]map[string]bool, len(s.profiles))
	s.securitySets = make(map[string]map[string]bool, len(s.profiles))

	for code, p := range s.profiles {
		s.keywordSets[code] = toSet(p.Keywords)
		s.highSets[code] = toSet(p.PriorityHigh)
		s.mediumSets[code] = toSet(p.PriorityMedium)
		s.lowSets[code] = toSet(p.PriorityLow)
		s.securitySets[code] = toSet(p.SecurityKeywords)
	}
}

// Profile returns the profile for a language code.
func (s *Store) Profile(code string) (Profile, bool) {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[code]
	return p, ok
}

// Keywords returns the requirement keywords for a language code.
// Unknown codes return an empty slice, never an error.
func (s *Store) Keywords(code string) []string {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.profiles[code].Keywords...)
}

// KeywordSet returns the lowered keyword lookup set for a language code.
func (s *Store) KeywordSet(code string) map[string]bool {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keywordSets[code]
}

// PrioritySets returns the lowered high/medium/low tier keyword sets.
func (s *Store) PrioritySets(code string) (high, medium, low map[string]bool) {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.highSets[code], s.mediumSets[code], s.lowSets[code]
}

// SecuritySet returns the lowered security override keyword set.
func (s *Store) SecuritySet(code string) map[string]bool {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.securitySets[code]
}

// ModelID returns the sentence model identifier for a language code.
// Unknown codes return the empty string.
func (s *Store) ModelID(code string) string {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profiles[code].ModelID
}

// SupportedLanguages returns the sorted list of configured language codes.
func (s *Store) SupportedLanguages() []string {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	codes := make([]string, 0, len(s.profiles))
	for code := range s.profiles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// KeywordsByLanguage returns keyword lists for every configured language,
// used by the language detector's keyword overlap sub-score.
func (s *Store) KeywordsByLanguage() map[string][]string {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]string, len(s.profiles))
	for code, p := range s.profiles {
		out[code] = append([]string(nil), p.Keywords...)
	}
	return out
}

// PatternDefs returns the structural pattern tables for every configured
// language, consumed once at startup by the pattern matcher.
func (s *Store) PatternDefs() map[string][]PatternDef {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]PatternDef, len(s.profiles))
	for code, p := range s.profiles {
		out[code] = append([]PatternDef(nil), p.Patterns...)
	}
	return out
}

// Abbreviations returns the non-breaking abbreviation list for a language
// code. Unknown codes return an empty slice.
func (s *Store) Abbreviations(code string) []string {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.profiles[code].Abbreviations...)
}

// SignalsByLanguage returns the detection signal tables for every configured
// language, consumed once at startup by the language detector.
func (s *Store) SignalsByLanguage() map[string]DetectionSignals {
	s.ensureLoaded()
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]DetectionSignals, len(s.profiles))
	for code, p := range s.profiles {
		out[code] = DetectionSignals{
			SpecialChars: p.Detection.SpecialChars,
			CommonWords:  append([]string(nil), p.Detection.CommonWords...),
			Trigrams:     append([]string(nil), p.Detection.Trigrams...),
		}
	}
	return out
}

// Save persists the current profiles to the backing file.
func (s *Store) Save() error {
	s.ensureLoaded()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes the resource to disk. Caller holds s.mu.
func (s *Store) saveLocked() error {
	file := storeFile{
		Version:   storeVersion,
		Languages: s.profiles,
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("failed to marshal language profiles: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create profiles directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write language profiles: %w", err)
	}
	return nil
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}
