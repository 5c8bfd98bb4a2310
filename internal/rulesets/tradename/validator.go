// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package tradename validates county-issued certificates of trade name.
package tradename

import (
	"certscan/internal/document"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for certificates of
// trade name. County clerks issue these in widely varying layouts, so the
// title is the only element checked.
type Validator struct {
	titlePhrases []string
}

// NewValidator creates a certificate-of-trade-name validator.
func NewValidator() *Validator {
	return &Validator{
		titlePhrases: []string{
			"certificate of trade name",
			"trade name certificate",
		},
	}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "CERT_TRADE_NAME" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a county certificate of trade name"
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
			Predicate:       rules.PhrasePresent(v.titlePhrases...),
			FailureMessage:  "Certificate of trade name title not found",
			SuggestedAction: "Upload the certificate of trade name filed with the county clerk",
		},
	})

	return outcome
}
