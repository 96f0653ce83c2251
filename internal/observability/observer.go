// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// StandardObserver implements observability for all engine components
type StandardObserver struct {
	level         ObservabilityLevel
	writer        io.Writer
	DebugObserver *DebugObserver // Reference to debug observer when in debug mode
}

type ObservabilityLevel int

const (
	ObservabilityOff     ObservabilityLevel = 0
	ObservabilityMetrics ObservabilityLevel = 1
	ObservabilityDebug   ObservabilityLevel = 2
)

// NewStandardObserver creates observability component
func NewStandardObserver(level ObservabilityLevel, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing
func (o *StandardObserver) StartTiming(component, operation, document string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		data := StandardObservabilityData{
			Component:  component,
			Operation:  operation,
			Document:   document,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		}

		o.LogOperation(data)
	}
}

// LogOperation logs operation data
func (o *StandardObserver) LogOperation(data StandardObservabilityData) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data.RequestID = "run-" + time.Now().Format("20060102-150405")

	// Only log JSON in debug mode
	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// LogDegradation records a graceful degradation (language fallback, model
// fallback, regenerated configuration) as a warning-level event.
func (o *StandardObserver) LogDegradation(component, reason string, metadata map[string]interface{}) {
	if o == nil || o.level == ObservabilityOff {
		return
	}

	data := StandardObservabilityData{
		Component: component,
		Operation: "degradation",
		Success:   true,
		Error:     reason,
		Metadata:  metadata,
	}

	if o.level == ObservabilityDebug {
		json.NewEncoder(o.writer).Encode(data)
	} else {
		fmt.Fprintf(o.writer, "Warning: %s: %s\n", component, reason)
	}
}

// LogRejection records a quality-control rejection (length, confidence).
// These are not errors; they are logged at debug level only.
func (o *StandardObserver) LogRejection(component, reason string, value float64) {
	if o == nil || o.level != ObservabilityDebug {
		return
	}
	if o.DebugObserver != nil {
		o.DebugObserver.LogDetail(component, fmt.Sprintf("rejected: %s (%.2f)", reason, value))
	}
}

// StandardObservabilityData for all components
type StandardObservabilityData struct {
	Component     string                 `json:"component"`
	Operation     string                 `json:"operation"`
	RequestID     string                 `json:"request_id"`
	Document      string                 `json:"document,omitempty"`
	Page          int                    `json:"page,omitempty"`
	DurationMs    int64                  `json:"duration_ms,omitempty"`
	Success       bool                   `json:"success"`
	Error         string                 `json:"error,omitempty"`
	ContentLength int                    `json:"content_length,omitempty"`
	RecordCount   int                    `json:"record_count,omitempty"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}
