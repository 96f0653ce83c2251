// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugObserverStageTrace(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)

	done := d.StartStage("finder", "find_requirements", "doc")
	d.LogDetail("matcher", "rejected: too_short (3.00)")
	done(true, "2 records")

	out := buf.String()
	if !strings.Contains(out, "> finder: find_requirements (doc)") {
		t.Errorf("stage opening missing: %q", out)
	}
	if !strings.Contains(out, "  - matcher: rejected: too_short (3.00)") {
		t.Errorf("detail not indented under stage: %q", out)
	}
	if !strings.Contains(out, "< finder: find_requirements done") {
		t.Errorf("stage completion missing: %q", out)
	}
}

func TestDebugObserverNestedStagesIndent(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)

	outer := d.StartStage("cli", "process_document", "spec.pdf")
	inner := d.StartStage("finder", "find_requirements", "spec.pdf")
	inner(false, "segmentation unavailable")
	outer(true, "")

	out := buf.String()
	if !strings.Contains(out, "\n  > finder:") {
		t.Errorf("inner stage not indented: %q", out)
	}
	if !strings.Contains(out, "failed") {
		t.Errorf("failed completion missing: %q", out)
	}
}

func TestLogRejectionRoutesToDebugObserver(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)
	d.StandardObserver.DebugObserver = d

	d.StandardObserver.LogRejection("scorer", "below_confidence_threshold", 0.31)

	if !strings.Contains(buf.String(), "below_confidence_threshold (0.31)") {
		t.Errorf("rejection not logged: %q", buf.String())
	}
}

func TestLogRejectionSilentBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityMetrics, &buf)

	o.LogRejection("matcher", "no_keyword", 0)

	if buf.Len() != 0 {
		t.Errorf("rejection logged outside debug mode: %q", buf.String())
	}
}
