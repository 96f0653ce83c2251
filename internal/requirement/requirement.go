// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package requirement

// Priority is the urgency tier assigned to a requirement.
// Security is an override, not a peer tier: any security keyword match
// forces it regardless of other tier matches.
type Priority string

const (
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PrioritySecurity Priority = "security"
)

// Category is one of the fixed requirement classifications.
type Category string

const (
	CategoryFunctional    Category = "Functional"
	CategorySafety        Category = "Safety"
	CategoryPerformance   Category = "Performance"
	CategorySecurity      Category = "Security"
	CategoryInterface     Category = "Interface"
	CategoryData          Category = "Data"
	CategoryCompliance    Category = "Compliance"
	CategoryDocumentation Category = "Documentation"
	CategoryTesting       Category = "Testing"
)

// Categories lists all categories in canonical order.
var Categories = []Category{
	CategoryFunctional,
	CategorySafety,
	CategoryPerformance,
	CategorySecurity,
	CategoryInterface,
	CategoryData,
	CategoryCompliance,
	CategoryDocumentation,
	CategoryTesting,
}

// Candidate is a sentence that passed length validation and keyword
// matching and is pending scoring and classification.
type Candidate struct {
	Text           string
	Page           int
	Tokens         []string
	MatchedKeyword string
	Language       string
}

// Record is the finalized, scored and classified output unit.
// A Record is immutable once produced; ownership passes to the caller.
type Record struct {
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	Page        int      `json:"page" yaml:"page"`
	Keyword     string   `json:"keyword" yaml:"keyword"`
	Language    string   `json:"language" yaml:"language"`
	Confidence  float64  `json:"confidence" yaml:"confidence"`
	Priority    Priority `json:"priority" yaml:"priority"`
	Category    Category `json:"category" yaml:"category"`
	RawTokens   []string `json:"raw_tokens" yaml:"raw_tokens"`
}

// DetectionResult is the outcome of language detection for a document.
type DetectionResult struct {
	Language      string  `json:"language" yaml:"language"`
	Confidence    float64 `json:"confidence" yaml:"confidence"`
	LowConfidence bool    `json:"low_confidence" yaml:"low_confidence"`
}
