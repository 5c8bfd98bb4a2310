// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package operatingagreement validates LLC operating agreements.
package operatingagreement

import (
	"certscan/internal/dates"
	"certscan/internal/document"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for operating
// agreements. Agreements are free-form member documents, so there is no
// organization-name extraction; only structural evidence is checked.
type Validator struct {
	dates *dates.Extractor
}

// NewValidator creates an operating-agreement validator.
func NewValidator() *Validator {
	return &Validator{dates: dates.NewExtractor()}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "OPERATING_AGREEMENT" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates an LLC operating agreement"
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
			Predicate:       rules.PhrasePresent("operating agreement"),
			FailureMessage:  "Operating agreement title not found",
			SuggestedAction: "Upload the LLC's operating agreement",
		},
		{
			ID:              "signature",
			Predicate:       rules.PhrasePresent("signature", "/s/", "executed by", "signed by"),
			FailureMessage:  "Member signature evidence not found",
			SuggestedAction: "Upload the executed agreement including the member signature pages",
		},
		{
			ID: "date",
			Predicate: func(c *document.Content) bool {
				return v.dates.ContainsAnyDate(c.RawText)
			},
			FailureMessage:  "Agreement date not found",
			SuggestedAction: "Confirm the agreement shows its execution or effective date",
		},
		{
			ID:              "state",
			Predicate:       rules.PhrasePresent("new jersey"),
			FailureMessage:  "New Jersey reference not found",
			SuggestedAction: "Confirm the agreement governs a New Jersey LLC",
		},
	})

	return outcome
}
