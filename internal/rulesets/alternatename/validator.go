// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package alternatename validates NJ certificates of alternate name, which
// register a secondary name an entity does business under.
package alternatename

import (
	"certscan/internal/document"
	"certscan/internal/fieldloc"
	"certscan/internal/rules"
)

// Validator implements the rules.RuleSet interface for certificates of
// alternate name.
type Validator struct {
	// titlePhrases are the certificate titles accepted for this document
	// type; the Division of Revenue has issued all three over the years.
	titlePhrases []string
}

// NewValidator creates a certificate-of-alternate-name validator.
func NewValidator() *Validator {
	return &Validator{
		titlePhrases: []string{
			"certificate of alternate name",
			"registration of alternate name",
			"certificate of renewal of alternate name",
		},
	}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string { return "CERT_ALTERNATE_NAME" }

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a NJ certificate of alternate name"
}

// Validate implements rules.RuleSet.
func (v *Validator) Validate(content *document.Content, fields document.UserFields) *rules.Outcome {
	outcome := rules.NewOutcome()
	if content == nil {
		content = document.NewContent("")
	}

	outcome.DetectedOrganizationName = v.detectOrganizationName(content)
	rules.ReconcileOrganizationName(outcome, fields, outcome.DetectedOrganizationName)

	rules.RunChecklist(outcome, content, []rules.Check{
		{
			ID:              "title",
			Predicate:       rules.PhrasePresent(v.titlePhrases...),
			FailureMessage:  "Certificate of alternate name title not found",
			SuggestedAction: "Upload the certificate of alternate name filed with the Division of Revenue",
		},
		{
			ID:              "revenue",
			Predicate:       rules.PhrasePresent("division of revenue"),
			FailureMessage:  "Division of Revenue reference not found",
			SuggestedAction: "Confirm the certificate was filed with the NJ Division of Revenue",
		},
		{
			ID:              "filing-stamp",
			Predicate:       rules.PhrasePresent("department of the treasury", "state treasurer"),
			FailureMessage:  "Treasury filing stamp not found",
			SuggestedAction: "Confirm the certificate carries the Department of the Treasury filing stamp",
		},
	})

	return outcome
}

// detectOrganizationName looks below the certificate title, where the
// registering entity's name is printed, then falls back to the structured
// key-value pairs.
func (v *Validator) detectOrganizationName(content *document.Content) string {
	name := fieldloc.FindValueNearAnchor(content.RawText, fieldloc.Options{
		Anchors:    v.titlePhrases,
		Direction:  fieldloc.After,
		MaxLines:   4,
		Exclusions: fieldloc.DefaultExclusions,
	})
	if name != "" {
		return name
	}
	return fieldloc.FindValueByLabel(content.KeyValuePairs, fieldloc.DefaultLabelSynonyms)
}
