// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DebugObserver traces the extraction pipeline stage by stage for the
// -debug flag, indenting nested stages.
type DebugObserver struct {
	*StandardObserver
	depth int
}

// NewDebugObserver creates a stage-level tracer writing to the given writer.
func NewDebugObserver(writer io.Writer) *DebugObserver {
	return &DebugObserver{
		StandardObserver: NewStandardObserver(ObservabilityDebug, writer),
	}
}

// StartStage opens a pipeline stage and returns its completion callback.
// Stages started before the callback runs are rendered one level deeper.
func (d *DebugObserver) StartStage(component, stage, document string) func(success bool, details string) {
	start := time.Now()
	fmt.Fprintf(d.writer, "%s> %s: %s (%s)\n", d.pad(), component, stage, document)
	d.depth++

	return func(success bool, details string) {
		d.depth--
		status := "done"
		if !success {
			status = "failed"
		}
		fmt.Fprintf(d.writer, "%s< %s: %s %s (%dms) %s\n",
			d.pad(), component, stage, status, time.Since(start).Milliseconds(), details)
	}
}

// LogDetail records one line within the current stage.
func (d *DebugObserver) LogDetail(component, detail string) {
	fmt.Fprintf(d.writer, "%s  - %s: %s\n", d.pad(), component, detail)
}

func (d *DebugObserver) pad() string {
	return strings.Repeat("  ", d.depth)
}
