// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package irsdetermination validates IRS determination letters.
package irsdetermination

import (
	"certscan/internal/document"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for IRS determination
// letters.
type Validator struct{}

// NewValidator creates an IRS determination letter validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "IRS_DETERMINATION" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates an IRS determination letter"
}

// Validate implements rules.RuleSet.
func (v *Validator) Validate(content *document.Content, fields document.UserFields) *rules.Outcome {
	outcome := rules.NewOutcome()
	if content == nil {
		content = document.NewContent("")
	}

	rules.RunChecklist(outcome, content, []rules.Check{
		{
			ID:              "letterhead",
			Predicate:       rules.PhrasePresent("internal revenue service", "department of the treasury"),
			FailureMessage:  "IRS or Treasury letterhead not found",
			SuggestedAction: "Upload the determination letter on IRS letterhead",
		},
		{
			ID:              "closing",
			Predicate:       rules.PhrasePresent("sincerely", "director"),
			FailureMessage:  "Director's closing signature not found",
			SuggestedAction: "Upload the complete letter including the director's closing",
		},
	})

	return outcome
}
