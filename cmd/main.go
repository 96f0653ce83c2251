// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"reqsift/internal/annotate"
	"reqsift/internal/config"
	"reqsift/internal/finder"
	"reqsift/internal/observability"
	"reqsift/internal/pdfpages"
	"reqsift/internal/profiles"
	"reqsift/internal/version"

	"reqsift/internal/formatters"
	_ "reqsift/internal/formatters/csv"
	_ "reqsift/internal/formatters/json"
	_ "reqsift/internal/formatters/text"
	_ "reqsift/internal/formatters/yaml"

	"golang.org/x/term"
)

func main() {
	inputFile := flag.String("file", "", "Path to the input document (.txt or .pdf)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profilesFile := flag.String("profiles", "", "Path to language profiles file (YAML, regenerated with defaults if missing or corrupt)")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	confidence := flag.Float64("confidence", 0, "Minimum confidence for extracted requirements (0..1, default 0.40)")
	language := flag.String("language", "", "Force document language (en, de, fr, es, it) and skip detection")
	defaultLanguage := flag.String("default-language", "", "Fallback language when detection is uncertain (default: en)")
	minWords := flag.Int("min-words", 0, "Minimum sentence length in words (default: 5)")
	maxWords := flag.Int("max-words", 0, "Maximum sentence length in words (default: 100)")
	samplePages := flag.Int("sample-pages", 0, "Number of leading pages sampled for language detection (default: 3)")
	annotateOut := flag.String("annotate", "", "Write an annotated copy of the input PDF to this path")
	verbose := flag.Bool("verbose", false, "Display detailed information for each requirement")
	debug := flag.Bool("debug", false, "Enable debug logging to show pipeline flow")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	quiet := flag.Bool("quiet", false, "Suppress banners and summaries (useful for scripts)")
	showTokens := flag.Bool("show-tokens", false, "Include the raw token list in output")
	listFormats := flag.Bool("list-formats", false, "List available output formats")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}

	if *listFormats {
		printFormats()
		return
	}

	// Load configuration, flags override file values
	configPath := *configFile
	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg := config.LoadConfigOrDefault(configPath)
	final := resolveConfiguration(cfg, *outputFormat, *confidence, *language, *defaultLanguage,
		*minWords, *maxWords, *samplePages, *verbose, *debug, *noColor, *showTokens)

	// Positional arguments are additional inputs (shell-expanded globs)
	inputPaths := flag.Args()
	if *inputFile != "" {
		inputPaths = append([]string{*inputFile}, inputPaths...)
	}
	if len(inputPaths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No input file specified. Use -file or pass paths as arguments.")
		flag.Usage()
		os.Exit(1)
	}

	observer := newObserver(final.debug, final.verbose)

	storePath := *profilesFile
	if storePath == "" && cfg.ProfilesFile != "" {
		storePath = cfg.ProfilesFile
	}
	store := profiles.NewStore(storePath, observer)

	engine := finder.New(store, observer, finder.Options{
		LanguageHint:        final.language,
		ConfidenceThreshold: final.confidenceThreshold,
		MinWords:            final.minWords,
		MaxWords:            final.maxWords,
		SamplePages:         final.samplePages,
		DefaultLanguage:     final.defaultLanguage,
	})

	// Disable colors when output is not a terminal or is being redirected
	useColor := !final.noColor && *outputFile == "" && isTerminal(os.Stdout)

	exitCode := 0
	for i, path := range inputPaths {
		if i > 0 && *outputFile == "" && !*quiet {
			fmt.Println()
		}
		if err := processDocument(path, engine, observer, final, useColor, *quiet, *outputFile, *annotateOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}

// finalConfiguration holds resolved configuration values
type finalConfiguration struct {
	format              string
	confidenceThreshold float64
	language            string
	defaultLanguage     string
	minWords            int
	maxWords            int
	samplePages         int
	verbose             bool
	debug               bool
	noColor             bool
	showTokens          bool
}

// resolveConfiguration resolves final values from the config file and command line flags
func resolveConfiguration(cfg *config.Config, format string, confidence float64, language, defaultLanguage string,
	minWords, maxWords, samplePages int, verbose, debug, noColor, showTokens bool) *finalConfiguration {

	final := &finalConfiguration{
		format:              cfg.Defaults.Format,
		confidenceThreshold: cfg.Defaults.ConfidenceThreshold,
		language:            cfg.Defaults.Language,
		defaultLanguage:     cfg.Defaults.DefaultLanguage,
		minWords:            cfg.Defaults.MinSentenceWords,
		maxWords:            cfg.Defaults.MaxSentenceWords,
		samplePages:         cfg.Defaults.SamplePages,
		verbose:             cfg.Defaults.Verbose,
		debug:               cfg.Defaults.Debug,
		noColor:             cfg.Defaults.NoColor,
		showTokens:          cfg.Defaults.ShowTokens,
	}

	if isFlagSet("format") && format != "" {
		final.format = format
	}
	if final.format == "" {
		final.format = "text"
	}
	if isFlagSet("confidence") {
		final.confidenceThreshold = confidence
	}
	if isFlagSet("language") {
		final.language = language
	}
	if isFlagSet("default-language") && defaultLanguage != "" {
		final.defaultLanguage = defaultLanguage
	}
	if isFlagSet("min-words") {
		final.minWords = minWords
	}
	if isFlagSet("max-words") {
		final.maxWords = maxWords
	}
	if isFlagSet("sample-pages") {
		final.samplePages = samplePages
	}
	if isFlagSet("verbose") {
		final.verbose = verbose
	}
	if isFlagSet("debug") {
		final.debug = debug
	}
	if isFlagSet("no-color") {
		final.noColor = noColor
	}
	if isFlagSet("show-tokens") {
		final.showTokens = showTokens
	}

	return final
}

// newObserver picks the observability level from the debug and verbose flags
func newObserver(debug, verbose bool) *observability.StandardObserver {
	if debug {
		d := observability.NewDebugObserver(os.Stderr)
		d.StandardObserver.DebugObserver = d
		return d.StandardObserver
	}
	level := observability.ObservabilityOff
	if verbose {
		level = observability.ObservabilityMetrics
	}
	return observability.NewStandardObserver(level, os.Stderr)
}

// processDocument loads one input file, runs extraction, and writes the result
func processDocument(path string, engine *finder.Finder, observer *observability.StandardObserver,
	final *finalConfiguration, useColor, quiet bool, outputFile, annotateOut string) (err error) {

	if observer.DebugObserver != nil {
		done := observer.DebugObserver.StartStage("cli", "process_document", path)
		defer func() { done(err == nil, "") }()
	}

	doc, err := loadDocument(path)
	if err != nil {
		return err
	}

	records, detection := engine.Find(doc)

	result, err := formatters.Export(final.format, records, detection, formatters.FormatterOptions{
		Verbose:    final.verbose,
		NoColor:    !useColor,
		ShowTokens: final.showTokens,
		Quiet:      quiet,
	})
	if err != nil {
		return err
	}

	if outputFile != "" {
		if err := writeOutputFile(outputFile, result); err != nil {
			return err
		}
	} else {
		fmt.Println(result)
	}

	if annotateOut != "" {
		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			observer.LogDegradation("cli", "annotation requires a PDF input, skipping", map[string]interface{}{
				"file": path,
			})
		} else {
			annotator := annotate.NewAnnotator(observer)
			if _, err := annotator.Annotate(path, annotateOut, records); err != nil {
				return fmt.Errorf("annotation failed: %w", err)
			}
			if !quiet {
				fmt.Fprintf(os.Stderr, "Annotated copy written to %s\n", annotateOut)
			}
		}
	}

	return nil
}

// loadDocument reads an input file into a page-oriented document. PDF pages
// come from the extractor; plain text splits on form feeds, or becomes a
// single page when none are present.
func loadDocument(path string) (finder.Document, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		pages, err := pdfpages.ExtractPages(path)
		if err != nil {
			return finder.Document{}, fmt.Errorf("failed to extract PDF text from %s: %w", path, err)
		}
		return finder.Document{Name: name, Pages: pages}, nil

	case ".txt", ".text", ".md", "":
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return finder.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return finder.Document{Name: name, Pages: splitPages(string(data))}, nil

	default:
		return finder.Document{}, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// splitPages splits plain text on form feed characters
func splitPages(text string) []string {
	if !strings.Contains(text, "\f") {
		return []string{text}
	}
	return strings.Split(text, "\f")
}

// writeOutputFile writes the result to a file with path validation
func writeOutputFile(path, result string) error {
	cleanPath := filepath.Clean(path)
	if strings.Contains(path, "..") || strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed in output path: %s", path)
	}
	if err := os.WriteFile(cleanPath, []byte(result), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Results written to %s\n", cleanPath)
	return nil
}

// printFormats lists the registered output formats
func printFormats() {
	fmt.Println("Available output formats:")
	for _, name := range formatters.List() {
		f, _ := formatters.Get(name)
		fmt.Printf("  %-6s %s\n", name, f.Description())
	}
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
