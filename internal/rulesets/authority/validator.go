// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package authority validates NJ certificates of authority, in both the
// manually-reviewed and automatic variants.
package authority

import (
	"certscan/internal/document"
	"certscan/internal/fieldloc"
	"certscan/internal/rules"
)

// Variant selects between the manually-reviewed and automatic rule sets.
type Variant int

const (
	// Manual certificates are reviewed by a person; the rule set checks
	// structure only.
	Manual Variant = iota
	// Auto certificates additionally have their organization name
	// extracted and reconciled.
	Auto
)

// Validator implements the rules.RuleSet interface for certificates of
// authority.
type Validator struct {
	variant Variant
}

// NewValidator creates a certificate-of-authority validator.
func NewValidator(variant Variant) *Validator {
	return &Validator{variant: variant}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string {
	if v.variant == Auto {
		return "CERT_AUTHORITY_AUTO"
	}
	return "CERT_AUTHORITY"
}

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a NJ certificate of authority"
}

// Validate implements rules.RuleSet.
func (v *Validator) Validate(content *document.Content, fields document.UserFields) *rules.Outcome {
	outcome := rules.NewOutcome()
	if content == nil {
		content = document.NewContent("")
	}

	if v.variant == Auto {
		outcome.DetectedOrganizationName = v.detectOrganizationName(content)
		rules.ReconcileOrganizationName(outcome, fields, outcome.DetectedOrganizationName)
	}

	rules.RunChecklist(outcome, content, []rules.Check{
		{
			ID:              "title",
			Predicate:       rules.PhrasePresent("certificate of authority"),
			FailureMessage:  "Certificate of authority title not found",
			SuggestedAction: "Upload the certificate of authority issued by the NJ Division of Taxation",
		},
		{
			ID:              "state",
			Predicate:       rules.PhrasePresent("state of new jersey"),
			FailureMessage:  "State of New Jersey reference not found",
			SuggestedAction: "Confirm the certificate was issued by the State of New Jersey",
		},
		{
			ID:              "taxation",
			Predicate:       rules.PhrasePresent("division of taxation", "department of the treasury"),
			FailureMessage:  "Taxation or Treasury reference not found",
			SuggestedAction: "Confirm the certificate was issued by the Division of Taxation",
		},
	})

	return outcome
}

// detectOrganizationName reads the entity name printed immediately below
// the certificate title, then falls back to the structured key-value pairs.
func (v *Validator) detectOrganizationName(content *document.Content) string {
	name := fieldloc.FindValueNearAnchor(content.RawText, fieldloc.Options{
		Anchors:    []string{"certificate of authority"},
		Direction:  fieldloc.After,
		MaxLines:   3,
		Exclusions: fieldloc.DefaultExclusions,
	})
	if name != "" {
		return name
	}
	return fieldloc.FindValueByLabel(content.KeyValuePairs, fieldloc.DefaultLabelSynonyms)
}
