// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package taxclearance validates New Jersey tax clearance certificates,
// both the online-issued and manually-issued (BATC) variants.
package taxclearance

import (
	"regexp"
	"time"

	"certscan/internal/dates"
	"certscan/internal/document"
	"certscan/internal/fieldloc"
	"certscan/internal/rules"
)

// Variant selects between the online-issued and manually-issued rule sets.
type Variant int

const (
	// Online certificates come from the Premier Business Services portal.
	Online Variant = iota
	// Manual certificates are issued by the Business Assistance Tax
	// Clearance unit and carry a BATC marker.
	Manual
)

// Validator implements the rules.RuleSet interface for tax clearance
// certificates.
type Validator struct {
	variant Variant
	dates   *dates.Extractor

	// Anchor phrases locating the organization-name block; the name is
	// printed above these on the certificate.
	nameAnchors []string

	// Letterhead lines that can never be the organization name.
	nameExclusions []string

	// Signature lines accepted as evidence the certificate was signed by
	// an authorized Division of Taxation official.
	signaturePhrases []string

	serialPattern *regexp.Regexp
}

// NewValidator creates a tax clearance validator for the given variant.
func NewValidator(variant Variant) *Validator {
	return &Validator{
		variant: variant,
		dates:   dates.NewExtractor(),
		nameAnchors: []string{
			"business assistance or incentive",
			"clearance certificate",
		},
		nameExclusions: fieldloc.DefaultExclusions,
		signaturePhrases: []string{
			"acting director",
			"director of taxation",
			"division of taxation director",
		},
		serialPattern: regexp.MustCompile(`serial\s*(?:number|no\.?|#)\s*:?\s*\d+`),
	}
}

// WithClock fixes the validator's notion of "now" for the recency check.
func (v *Validator) WithClock(now func() time.Time) *Validator {
	v.dates.WithClock(now)
	return v
}

// WithWindowMonths overrides the recency window size.
func (v *Validator) WithWindowMonths(months int) *Validator {
	v.dates.WithWindowMonths(months)
	return v
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string {
	if v.variant == Manual {
		return "TAX_CLEARANCE_MANUAL"
	}
	return "TAX_CLEARANCE_ONLINE"
}

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a NJ Division of Taxation tax clearance certificate"
}

// Validate implements rules.RuleSet.
func (v *Validator) Validate(content *document.Content, fields document.UserFields) *rules.Outcome {
	outcome := rules.NewOutcome()
	if content == nil {
		content = document.NewContent("")
	}

	outcome.DetectedOrganizationName = v.detectOrganizationName(content)
	rules.ReconcileOrganizationName(outcome, fields, outcome.DetectedOrganizationName)

	rules.RunChecklist(outcome, content, v.checklist())

	rules.CheckApplicantID(outcome, content, fields.FEIN)

	return outcome
}

func (v *Validator) checklist() []rules.Check {
	checks := []rules.Check{
		{
			ID:              "title",
			Predicate:       rules.PhrasePresent("clearance certificate"),
			FailureMessage:  "Clearance certificate title not found",
			SuggestedAction: "Upload a tax clearance certificate issued by the NJ Division of Taxation",
		},
		{
			ID:              "serial-number",
			Predicate:       rules.PatternPresent(v.serialPattern),
			FailureMessage:  "Certificate serial number not found",
			SuggestedAction: "Verify the certificate shows its serial number; request a reissue if it was cropped",
		},
		{
			ID:              "state",
			Predicate:       rules.PhrasePresent("state of new jersey"),
			FailureMessage:  "State of New Jersey reference not found",
			SuggestedAction: "Confirm the certificate was issued by the State of New Jersey",
		},
		{
			ID:              "treasury",
			Predicate:       rules.PhrasePresent("department of the treasury"),
			FailureMessage:  "Department of the Treasury reference not found",
			SuggestedAction: "Confirm the certificate letterhead shows the Department of the Treasury",
		},
		{
			ID:              "taxation",
			Predicate:       rules.PhrasePresent("division of taxation"),
			FailureMessage:  "Division of Taxation reference not found",
			SuggestedAction: "Confirm the certificate was issued by the Division of Taxation",
		},
		{
			ID:              "issuer",
			Predicate:       rules.PhraseAbsent("department of environmental protection"),
			FailureMessage:  "Certificate was issued by the Department of Environmental Protection, not the Division of Taxation",
			SuggestedAction: "Request a tax clearance certificate from the Division of Taxation",
		},
		{
			ID: "recency",
			Predicate: func(c *document.Content) bool {
				return v.dates.HasDateWithinWindow(c.RawText)
			},
			FailureMessage:  "Certificate date is missing or older than six months",
			SuggestedAction: "Obtain a certificate issued within the last six months",
		},
		{
			ID:              "signature",
			Predicate:       rules.PhrasePresent(v.signaturePhrases...),
			FailureMessage:  "Signature of an authorized Division of Taxation official not found",
			SuggestedAction: "Verify the certificate carries the Acting Director's signature",
		},
	}

	if v.variant == Manual {
		checks = append(checks, rules.Check{
			ID:              "batc-marker",
			Predicate:       rules.PhrasePresent("batc", "manual"),
			FailureMessage:  "BATC manual-issuance marker not found",
			SuggestedAction: "Upload the certificate issued by the Business Assistance Tax Clearance unit",
		})
	}

	return checks
}

// detectOrganizationName scans the lines above the certificate title. The
// organization name is printed between the letterhead block and the title,
// usually in capitals.
func (v *Validator) detectOrganizationName(content *document.Content) string {
	name := fieldloc.FindValueNearAnchor(content.RawText, fieldloc.Options{
		Anchors:    v.nameAnchors,
		Direction:  fieldloc.Before,
		MaxLines:   5,
		Exclusions: v.nameExclusions,
	})
	if name != "" {
		return name
	}
	return fieldloc.FindValueByLabel(content.KeyValuePairs, fieldloc.DefaultLabelSynonyms)
}
