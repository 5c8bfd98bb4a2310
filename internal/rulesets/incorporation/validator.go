// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package incorporation validates certificates of incorporation.
package incorporation

import (
	"certscan/internal/document"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for certificates of
// incorporation. No organization name is extracted on this path; the
// certificate only needs its title and evidence that governance roles are
// named.
type Validator struct{}

// NewValidator creates a certificate-of-incorporation validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "CERT_INCORPORATION" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a certificate of incorporation"
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
			Predicate:       rules.PhrasePresent("certificate of incorporation"),
			FailureMessage:  "Certificate of incorporation title not found",
			SuggestedAction: "Upload the certificate of incorporation",
		},
		{
			ID:              "governance",
			Predicate:       rules.PhrasePresent("director", "incorporator", "trustee", "shareholder"),
			FailureMessage:  "No mention of directors, incorporators, trustees, or shareholders found",
			SuggestedAction: "Upload the complete certificate including the governance provisions",
		},
	})

	return outcome
}
