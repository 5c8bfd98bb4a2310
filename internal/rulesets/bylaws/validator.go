// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package bylaws validates corporate bylaws documents.
package bylaws

import (
	"certscan/internal/dates"
	"certscan/internal/document"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for bylaws. All three
// spellings seen in filings are accepted.
type Validator struct {
	dates *dates.Extractor
}

// NewValidator creates a bylaws validator.
func NewValidator() *Validator {
	return &Validator{dates: dates.NewExtractor()}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "BYLAWS" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates corporate bylaws"
}

// Validate implements rules.RuleSet.
func (v *Validator) Validate(content *document.Content, fields document.UserFields) *rules.Outcome {
	outcome := rules.NewOutcome()
	if content == nil {
		content = document.NewContent("")
	}

	rules.RunChecklist(outcome, content, []rules.Check{
		{
			ID:              "title",
			Predicate:       rules.PhrasePresent("bylaws", "by-laws", "by laws"),
			FailureMessage:  "Bylaws title not found",
			SuggestedAction: "Upload the corporation's bylaws",
		},
		{
			ID: "date",
			Predicate: func(c *document.Content) bool {
				return v.dates.ContainsAnyDate(c.RawText)
			},
			FailureMessage:  "Adoption date not found",
			SuggestedAction: "Confirm the bylaws show their adoption or amendment date",
		},
	})

	return outcome
}
