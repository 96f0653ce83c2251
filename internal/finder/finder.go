// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package finder sequences the extraction pipeline over a document's pages:
// preprocess, detect language, segment, filter and match, score, classify,
// and emit requirement records. A failure on one page never aborts the
// document; the page is logged and skipped.
package finder

import (
	"fmt"
	"strings"

	"reqsift/internal/classifier"
	"reqsift/internal/langdetect"
	"reqsift/internal/matcher"
	"reqsift/internal/observability"
	"reqsift/internal/patterns"
	"reqsift/internal/profiles"
	"reqsift/internal/requirement"
	"reqsift/internal/scorer"
	"reqsift/internal/segmenter"
	"reqsift/internal/textproc"
)

// Document is the unit of processing: a named ordered list of raw page
// texts, one string per page, pages 1-indexed in the output.
type Document struct {
	Name  string
	Pages []string
}

// Options configures a Finder.
type Options struct {
	// LanguageHint forces the document language, skipping detection.
	LanguageHint string

	// ConfidenceThreshold drops candidates scoring below it.
	// Zero means the scorer's default.
	ConfidenceThreshold float64

	// MinWords / MaxWords bound accepted sentence lengths.
	// Zero means the matcher defaults.
	MinWords int
	MaxWords int

	// SamplePages is how many leading pages feed language detection.
	// Zero means 3.
	SamplePages int

	// DefaultLanguage is the fallback language. Empty means "en".
	DefaultLanguage string
}

// Finder runs the requirement extraction pipeline.
type Finder struct {
	profiles   *profiles.Store
	models     *segmenter.Manager
	detector   *langdetect.Detector
	patterns   *patterns.Matcher
	scorer     *scorer.Scorer
	classifier *classifier.Classifier
	filter     *matcher.Filter
	observer   *observability.StandardObserver
	opts       Options
}

// New wires a Finder over a profile store. The store and the model manager
// it creates are shared, lazily-initialized services; a single Finder may
// be used from multiple goroutines only for distinct documents.
func New(store *profiles.Store, observer *observability.StandardObserver, opts Options) *Finder {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = profiles.DefaultLanguage
	}
	if opts.ConfidenceThreshold == 0 {
		opts.ConfidenceThreshold = scorer.DefaultThreshold
	}
	if opts.SamplePages == 0 {
		opts.SamplePages = 3
	}

	filter := matcher.NewFilter()
	if opts.MinWords > 0 {
		filter.MinWords = opts.MinWords
	}
	if opts.MaxWords > 0 {
		filter.MaxWords = opts.MaxWords
	}

	p := patterns.New(opts.DefaultLanguage, store.PatternDefs())

	return &Finder{
		profiles:   store,
		models:     segmenter.NewManager(store, opts.DefaultLanguage, observer),
		detector:   langdetect.New(opts.DefaultLanguage, store.KeywordsByLanguage(), store.SignalsByLanguage()),
		patterns:   p,
		scorer:     scorer.New(p),
		classifier: classifier.New(store, p),
		filter:     filter,
		observer:   observer,
		opts:       opts,
	}
}

// Find processes one document and returns its requirement records in page
// order, labels carrying an ascending per-document sequence number. The
// detection result reports the language the document was processed with.
func (f *Finder) Find(doc Document) ([]requirement.Record, requirement.DetectionResult) {
	finish := f.observer.StartTiming("finder", "find_requirements", doc.Name)

	detection := f.resolveLanguage(doc)
	keywords := f.profiles.KeywordSet(detection.Language)

	var records []requirement.Record
	seq := 0
	for i, raw := range doc.Pages {
		page := i + 1
		pageRecords := f.processPage(doc.Name, page, raw, detection.Language, keywords, &seq)
		records = append(records, pageRecords...)
	}

	if finish != nil {
		finish(true, map[string]interface{}{
			"pages":    len(doc.Pages),
			"records":  len(records),
			"language": detection.Language,
		})
	}
	return records, detection
}

// resolveLanguage honors a forced hint or detects once per document on a
// sample of the first few pages.
func (f *Finder) resolveLanguage(doc Document) requirement.DetectionResult {
	if f.opts.LanguageHint != "" {
		return requirement.DetectionResult{
			Language:   f.opts.LanguageHint,
			Confidence: 1.0,
		}
	}

	n := f.opts.SamplePages
	if n > len(doc.Pages) {
		n = len(doc.Pages)
	}
	var sample strings.Builder
	for _, page := range doc.Pages[:n] {
		sample.WriteString(textproc.Normalize(page))
		sample.WriteString("\n")
	}

	detection := f.detector.Detect(sample.String())
	if detection.LowConfidence {
		f.observer.LogDegradation("finder",
			fmt.Sprintf("low-confidence language detection for %q (%s, %.2f), continuing with %s",
				doc.Name, detection.Language, detection.Confidence, detection.Language),
			map[string]interface{}{"document": doc.Name})
	}
	return detection
}

// processPage runs the per-page pipeline. Any panic is recovered, logged
// with the page number and document name, and the page is skipped.
func (f *Finder) processPage(docName string, page int, raw, lang string, keywords map[string]bool, seq *int) (records []requirement.Record) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			f.observer.LogOperation(observability.StandardObservabilityData{
				Component: "finder",
				Operation: "process_page",
				Document:  docName,
				Page:      page,
				Success:   false,
				Error:     fmt.Sprintf("page processing failed: %v", r),
			})
		}
	}()

	text := textproc.Normalize(raw)
	if text == "" {
		return nil
	}

	sentences, err := f.models.ExtractSentences(text, lang, f.filter.MinWords, f.filter.MaxWords)
	if err != nil {
		f.observer.LogDegradation("finder",
			fmt.Sprintf("segmentation unavailable for page %d of %q: %v", page, docName, err),
			map[string]interface{}{"document": docName, "page": page})
		return nil
	}

	for _, sentence := range sentences {
		candidate, verdict := f.filter.Examine(sentence.Text, sentence.Tokens, page, lang, keywords)
		if verdict != matcher.Accepted {
			f.observer.LogRejection("matcher", verdict.String(), float64(len(sentence.Tokens)))
			continue
		}

		confidence := f.scorer.Score(candidate, keywords)
		if confidence < f.opts.ConfidenceThreshold {
			f.observer.LogRejection("scorer", "below_confidence_threshold", confidence)
			continue
		}

		*seq++
		records = append(records, requirement.Record{
			Label:       fmt.Sprintf("%s-Req#%d-%d", docName, page, *seq),
			Description: candidate.Text,
			Page:        page,
			Keyword:     candidate.MatchedKeyword,
			Language:    lang,
			Confidence:  confidence,
			Priority:    f.classifier.Priority(candidate),
			Category:    f.classifier.Categorize(candidate),
			RawTokens:   candidate.Tokens,
		})
	}

	return records
}

// Models exposes the shared segmentation model manager, letting the host
// unload language models between batches.
func (f *Finder) Models() *segmenter.Manager {
	return f.models
}
