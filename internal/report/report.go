// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package report merges a rule-set outcome with document metadata into the
// final validation report returned to callers.
package report

import (
	"strings"

	"certscan/internal/document"
	"certscan/internal/rules"
)

// DocumentInfo carries metadata about the analyzed document.
type DocumentInfo struct {
	PageCount                int      `json:"pageCount" yaml:"pageCount"`
	WordCount                int      `json:"wordCount" yaml:"wordCount"`
	LanguageInfo             []string `json:"languageInfo" yaml:"languageInfo"`
	ContainsHandwriting      bool     `json:"containsHandwriting" yaml:"containsHandwriting"`
	DocumentType             string   `json:"documentType" yaml:"documentType"`
	DetectedOrganizationName *string  `json:"detectedOrganizationName" yaml:"detectedOrganizationName"`
}

// ValidationReport is the final payload for one validation request.
type ValidationReport struct {
	Success                 bool         `json:"success" yaml:"success"`
	MissingElements         []string     `json:"missingElements" yaml:"missingElements"`
	SuggestedActions        []string     `json:"suggestedActions" yaml:"suggestedActions"`
	DocumentInfo            DocumentInfo `json:"documentInfo" yaml:"documentInfo"`
	OrganizationNameMatches bool         `json:"organizationNameMatches" yaml:"organizationNameMatches"`
}

// Build assembles the report. OrganizationNameMatches is derived from the
// outcome, not recomputed: it is false exactly when a name-mismatch
// deficiency was recorded.
func Build(documentType string, content *document.Content, outcome *rules.Outcome) *ValidationReport {
	if outcome == nil {
		outcome = rules.NewOutcome()
	}

	var detected *string
	if outcome.DetectedOrganizationName != "" {
		name := outcome.DetectedOrganizationName
		detected = &name
	}

	return &ValidationReport{
		Success:          outcome.Passed(),
		MissingElements:  outcome.MissingElements,
		SuggestedActions: outcome.SuggestedActions,
		DocumentInfo: DocumentInfo{
			PageCount:                content.PageCount(),
			WordCount:                content.WordCount(),
			LanguageInfo:             languageInfo(content),
			ContainsHandwriting:      content.ContainsHandwriting(),
			DocumentType:             documentType,
			DetectedOrganizationName: detected,
		},
		OrganizationNameMatches: !hasNameMismatch(outcome.MissingElements),
	}
}

func hasNameMismatch(missing []string) bool {
	for _, element := range missing {
		if strings.Contains(strings.ToLower(element), "organization name") &&
			strings.Contains(element, rules.NameMismatchMarker) {
			return true
		}
	}
	return false
}

func languageInfo(content *document.Content) []string {
	if content == nil || len(content.Languages) == 0 {
		return []string{}
	}
	return content.Languages
}
