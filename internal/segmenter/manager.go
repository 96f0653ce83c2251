// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package segmenter lazily loads and caches per-language sentence-boundary
// models. Loading happens once per language on first use; subsequent reads
// take only the read lock. Models can be unloaded for memory reclamation.
package segmenter

import (
	"fmt"
	"sync"

	"reqsift/internal/observability"
	"reqsift/internal/profiles"
)

// Manager caches sentence models per language code. It is safe for use
// from multiple goroutines processing different documents concurrently:
// initialization is protected with double-checked locking so that exactly
// one goroutine performs any given load.
type Manager struct {
	profiles        *profiles.Store
	observer        *observability.StandardObserver
	defaultLanguage string

	mu     sync.RWMutex
	models map[string]*Model
	loads  int // number of load operations performed, for diagnostics
}

// NewManager creates a model manager over the given profile store.
func NewManager(store *profiles.Store, defaultLanguage string, observer *observability.StandardObserver) *Manager {
	if defaultLanguage == "" {
		defaultLanguage = profiles.DefaultLanguage
	}
	return &Manager{
		profiles:        store,
		observer:        observer,
		defaultLanguage: defaultLanguage,
		models:          make(map[string]*Model),
	}
}

// Model returns the sentence model for a language code, loading it on first
// use. When the requested language's model is unavailable the manager falls
// back through an explicit candidate chain ending at the default language,
// logging a degradation warning. The returned model may therefore serve a
// different language than requested; callers can check Model.Language.
func (m *Manager) Model(code string) (*Model, error) {
	// Fast path: cached.
	m.mu.RLock()
	model, ok := m.models[code]
	m.mu.RUnlock()
	if ok {
		return model, nil
	}

	// Slow path: take the write lock and re-check before loading.
	m.mu.Lock()
	defer m.mu.Unlock()
	if model, ok := m.models[code]; ok {
		return model, nil
	}

	// Ordered fallback chain: the requested language, then the default.
	candidates := []string{code}
	if code != m.defaultLanguage {
		candidates = append(candidates, m.defaultLanguage)
	}

	for _, candidate := range candidates {
		model, ok := m.loadLocked(candidate)
		if !ok {
			continue
		}
		if candidate != code {
			m.observer.LogDegradation("segmenter",
				fmt.Sprintf("no sentence model for %q, using %q", code, candidate),
				map[string]interface{}{"requested": code, "loaded": candidate})
		}
		// Cache under the requested code so the fallback is resolved once.
		m.models[code] = model
		return model, nil
	}

	return nil, fmt.Errorf("no sentence model available for %q or default %q", code, m.defaultLanguage)
}

// loadLocked performs the actual model load. Caller holds the write lock.
func (m *Manager) loadLocked(code string) (*Model, bool) {
	modelID := m.profiles.ModelID(code)
	if modelID == "" {
		return nil, false
	}

	model, ok := newModel(modelID, code, m.profiles.Abbreviations(code))
	if !ok {
		return nil, false
	}
	m.loads++
	return model, true
}

// Unload evicts the cached model for a language code.
func (m *Manager) Unload(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.models, code)
}

// UnloadAll evicts every cached model.
func (m *Manager) UnloadAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.models = make(map[string]*Model)
}

// Loaded returns the language codes with a cached model.
func (m *Manager) Loaded() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	codes := make([]string, 0, len(m.models))
	for code := range m.models {
		codes = append(codes, code)
	}
	return codes
}

// ExtractSentences segments text with the model for the given language and
// returns the sentences whose word counts fall inside [minWords, maxWords].
// Out-of-range sentences are excluded here so no downstream scoring is
// wasted on them. The returned slice is freshly allocated on every call.
func (m *Manager) ExtractSentences(text, code string, minWords, maxWords int) ([]Sentence, error) {
	model, err := m.Model(code)
	if err != nil {
		return nil, err
	}

	all := model.Split(text)
	kept := make([]Sentence, 0, len(all))
	for _, s := range all {
		n := len(s.Tokens)
		if n < minWords || n > maxWords {
			continue
		}
		kept = append(kept, s)
	}
	return kept, nil
}
