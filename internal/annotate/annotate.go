// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package annotate

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"reqsift/internal/observability"
	"reqsift/internal/requirement"
)

// maxPageCoverage is the largest fraction of a page that highlight regions
// may cover. Above it the page degrades to a text-only note.
const maxPageCoverage = 0.40

// charsPerLine and lineHeightFraction drive the coverage estimate for a
// highlighted sentence on a typical portrait page.
const (
	charsPerLine       = 90
	lineHeightFraction = 0.02
)

// Page layout constants in PDF points. Pages whose dimensions cannot be
// determined fall back to A4.
const (
	pageMargin = 36.0
	noteSize   = 24.0

	defaultPageWidth  = 595.0
	defaultPageHeight = 842.0
)

// Mode describes how a page's requirements are rendered.
type Mode string

const (
	ModeHighlight Mode = "highlight"
	ModeNote      Mode = "note"
)

// PagePlan describes the annotations planned for one page.
type PagePlan struct {
	Page     int
	Mode     Mode
	Labels   []string
	Coverage float64
}

// Result summarizes an annotation run.
type Result struct {
	OutputPath string
	NotesPath  string
	PageCount  int
	Plans      []PagePlan
	Skipped    int
}

// Annotator writes requirement annotations into a copy of a PDF document
type Annotator struct {
	observer *observability.StandardObserver

	pdfConfig *model.Configuration
}

// NewAnnotator creates a new Annotator
func NewAnnotator(observer *observability.StandardObserver) *Annotator {
	return &Annotator{
		observer:  observer,
		pdfConfig: model.NewDefaultConfiguration(),
	}
}

// Annotate validates pdfPath, plans per-page annotations for the given
// records, and writes the annotated copy to outPath. Requirement labels and
// descriptions are also written to a companion notes file so the annotations
// survive viewers that ignore PDF comments.
func (a *Annotator) Annotate(pdfPath, outPath string, records []requirement.Record) (*Result, error) {
	var finishTiming func(bool, map[string]interface{})
	if a.observer != nil {
		finishTiming = a.observer.StartTiming("annotator", "annotate_document", pdfPath)
	} else {
		finishTiming = func(bool, map[string]interface{}) {}
	}

	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		finishTiming(false, nil)
		return nil, fmt.Errorf("file does not exist: %s", pdfPath)
	}

	// Validate the PDF before touching it
	if err := api.ValidateFile(pdfPath, a.pdfConfig); err != nil {
		finishTiming(false, nil)
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	ctx, err := api.ReadContextFile(pdfPath)
	if err != nil {
		finishTiming(false, nil)
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	plans, skipped := a.planPages(records, ctx.PageCount)

	notesPath := strings.TrimSuffix(outPath, ".pdf") + "_requirements.txt"
	if err := a.writeNotes(notesPath, records, plans); err != nil {
		a.observer.LogDegradation("annotator", "notes file not written", map[string]interface{}{
			"notes_path": notesPath,
			"error":      err.Error(),
		})
		notesPath = ""
	}

	dims, err := api.PageDimsFile(pdfPath)
	if err != nil {
		finishTiming(false, nil)
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	annotations := a.buildAnnotations(records, plans, dims)
	if len(annotations) > 0 {
		if err := api.AddAnnotationsMapFile(pdfPath, outPath, annotations, a.pdfConfig, false); err != nil {
			finishTiming(false, nil)
			return nil, fmt.Errorf("failed to write annotated PDF: %w", err)
		}
	} else if err := api.WriteContextFile(ctx, outPath); err != nil {
		finishTiming(false, nil)
		return nil, fmt.Errorf("failed to write annotated PDF: %w", err)
	}

	finishTiming(true, map[string]interface{}{
		"output_path":  outPath,
		"record_count": len(records),
		"page_count":   ctx.PageCount,
		"skipped":      skipped,
	})

	return &Result{
		OutputPath: outPath,
		NotesPath:  notesPath,
		PageCount:  ctx.PageCount,
		Plans:      plans,
		Skipped:    skipped,
	}, nil
}

// planPages groups records by page and decides highlight vs note per page.
// Records referencing pages beyond the document are skipped.
func (a *Annotator) planPages(records []requirement.Record, pageCount int) ([]PagePlan, int) {
	byPage := make(map[int][]requirement.Record)
	skipped := 0

	for _, record := range records {
		if record.Page < 1 || record.Page > pageCount {
			skipped++
			a.observer.LogDegradation("annotator", "record page outside document", map[string]interface{}{
				"label": record.Label,
				"page":  record.Page,
			})
			continue
		}
		byPage[record.Page] = append(byPage[record.Page], record)
	}

	pages := make([]int, 0, len(byPage))
	for page := range byPage {
		pages = append(pages, page)
	}
	sort.Ints(pages)

	plans := make([]PagePlan, 0, len(pages))
	for _, page := range pages {
		pageRecords := byPage[page]

		coverage := 0.0
		labels := make([]string, 0, len(pageRecords))
		for _, record := range pageRecords {
			coverage += estimateCoverage(record.Description)
			labels = append(labels, record.Label)
		}

		mode := ModeHighlight
		if coverage > maxPageCoverage {
			mode = ModeNote
			a.observer.LogDegradation("annotator", "highlight coverage above page limit", map[string]interface{}{
				"page":     page,
				"coverage": coverage,
			})
		}

		plans = append(plans, PagePlan{
			Page:     page,
			Mode:     mode,
			Labels:   labels,
			Coverage: coverage,
		})
	}

	return plans, skipped
}

// buildAnnotations renders each page plan into pdfcpu annotations. Highlight
// pages get one highlight band per record, stacked from the top margin down.
// Note pages get a single text annotation carrying every requirement.
func (a *Annotator) buildAnnotations(records []requirement.Record, plans []PagePlan, dims []types.Dim) map[int][]model.AnnotationRenderer {
	byPage := make(map[int][]requirement.Record)
	for _, record := range records {
		byPage[record.Page] = append(byPage[record.Page], record)
	}

	annotations := make(map[int][]model.AnnotationRenderer, len(plans))
	for _, plan := range plans {
		width, height := defaultPageWidth, defaultPageHeight
		if plan.Page-1 < len(dims) {
			width, height = dims[plan.Page-1].Width, dims[plan.Page-1].Height
		}

		pageRecords := byPage[plan.Page]
		if plan.Mode == ModeNote {
			annotations[plan.Page] = []model.AnnotationRenderer{noteAnnotation(plan.Page, pageRecords, height)}
			continue
		}

		renderers := make([]model.AnnotationRenderer, 0, len(pageRecords))
		y := height - pageMargin
		for _, record := range pageRecords {
			band := highlightAnnotation(record, width, height, y)
			renderers = append(renderers, band)
			y -= bandHeight(record.Description, height)
		}
		annotations[plan.Page] = renderers
	}
	return annotations
}

// bandHeight is the on-page height of a record's highlight band, matching
// the lines-of-text model behind estimateCoverage.
func bandHeight(text string, pageHeight float64) float64 {
	lines := (len(text) + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lineHeightFraction * pageHeight
}

// highlightAnnotation builds a full-width highlight band for one record,
// anchored with its top edge at y.
func highlightAnnotation(record requirement.Record, pageWidth, pageHeight, y float64) model.HighlightAnnotation {
	rect := types.NewRectangle(pageMargin, y-bandHeight(record.Description, pageHeight), pageWidth-pageMargin, y)
	quad := types.NewQuadLiteralForRect(rect)

	return model.NewHighlightAnnotation(
		*rect,
		record.Description,
		record.Label,
		"",
		0,
		&color.Yellow,
		0, 0, 0,
		record.Label,
		nil,
		nil,
		"",
		fmt.Sprintf("%s/%s", record.Priority, record.Category),
		types.QuadPoints{*quad},
	)
}

// noteAnnotation builds a single comment icon near the top left corner
// holding every requirement found on the page.
func noteAnnotation(page int, records []requirement.Record, pageHeight float64) model.TextAnnotation {
	var contents strings.Builder
	for _, record := range records {
		contents.WriteString(fmt.Sprintf("%s [%s/%s]: %s\n", record.Label, record.Priority, record.Category, record.Description))
	}

	rect := types.NewRectangle(pageMargin, pageHeight-pageMargin-noteSize, pageMargin+noteSize, pageHeight-pageMargin)

	return model.NewTextAnnotation(
		*rect,
		contents.String(),
		fmt.Sprintf("requirements-page-%d", page),
		"",
		0,
		&color.Yellow,
		"Requirements",
		nil,
		nil,
		"",
		"",
		0, 0, 0,
		false,
		"Comment",
	)
}

// estimateCoverage approximates the page-area fraction a highlighted sentence
// occupies, assuming full-width text lines.
func estimateCoverage(text string) float64 {
	lines := (len(text) + charsPerLine - 1) / charsPerLine
	if lines < 1 {
		lines = 1
	}
	return float64(lines) * lineHeightFraction
}

// writeNotes saves a human-readable annotation summary next to the output PDF
func (a *Annotator) writeNotes(path string, records []requirement.Record, plans []PagePlan) error {
	var builder strings.Builder

	modeByPage := make(map[int]Mode, len(plans))
	for _, plan := range plans {
		modeByPage[plan.Page] = plan.Mode
	}

	for _, record := range records {
		mode, ok := modeByPage[record.Page]
		if !ok {
			continue
		}
		builder.WriteString(fmt.Sprintf("%s [page %d, %s, %s/%s]\n%s\n\n",
			record.Label, record.Page, mode, record.Priority, record.Category, record.Description))
	}

	return os.WriteFile(path, []byte(builder.String()), 0600)
}
