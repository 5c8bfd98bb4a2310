// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package goodstanding validates NJ certificates of good standing in both
// the long form (with standing details and verification block) and the
// short form.
package goodstanding

import (
	"time"

	"certscan/internal/dates"
	"certscan/internal/document"
	"certscan/internal/fieldloc"
	"certscan/internal/rules"
)

// Form selects between the long-form and short-form certificate layouts.
type Form int

const (
	// Long certificates list standing details and a verification block.
	Long Form = iota
	// Short certificates attest standing in a single paragraph.
	Short
)

// Validator implements the rules.RuleSet interface for certificates of
// good standing.
type Validator struct {
	form  Form
	dates *dates.Extractor
}

// NewValidator creates a good-standing validator for the given form.
func NewValidator(form Form) *Validator {
	return &Validator{
		form:  form,
		dates: dates.NewExtractor(),
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
	if v.form == Short {
		return "CERT_GOOD_STANDING_SHORT"
	}
	return "CERT_GOOD_STANDING_LONG"
}

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a NJ certificate of good standing"
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

	return outcome
}

func (v *Validator) checklist() []rules.Check {
	checks := []rules.Check{
		{
			ID:              "title",
			Predicate:       rules.PhrasePresent("good standing"),
			FailureMessage:  "Good standing title not found",
			SuggestedAction: "Upload a certificate of good standing issued by the NJ State Treasurer",
		},
		{
			ID:              "state",
			Predicate:       rules.PhrasePresent("state of new jersey"),
			FailureMessage:  "State of New Jersey reference not found",
			SuggestedAction: "Confirm the certificate was issued by the State of New Jersey",
		},
	}

	if v.form == Long {
		checks = append(checks,
			rules.Check{
				ID:              "treasury",
				Predicate:       rules.PhrasePresent("department of the treasury", "division of revenue"),
				FailureMessage:  "Treasury or Division of Revenue reference not found",
				SuggestedAction: "Confirm the certificate was issued through the Department of the Treasury",
			},
			rules.Check{
				ID:              "signature",
				Predicate:       rules.PhrasePresent("state treasurer", "signature"),
				FailureMessage:  "State Treasurer's signature not found",
				SuggestedAction: "Confirm the certificate carries the State Treasurer's signature",
			},
			rules.Check{
				ID: "recency",
				Predicate: func(c *document.Content) bool {
					return v.dates.HasDateWithinWindow(c.RawText)
				},
				FailureMessage:  "Certificate date is missing or older than six months",
				SuggestedAction: "Obtain a certificate issued within the last six months",
			},
			rules.Check{
				ID:              "verification",
				Predicate:       rules.PhrasePresent("verify this certificate", "certificate verification", "verification #"),
				FailureMessage:  "Certificate verification information not found",
				SuggestedAction: "Upload the certificate copy that includes the verification instructions",
			},
		)
	} else {
		checks = append(checks, rules.Check{
			ID: "date",
			Predicate: func(c *document.Content) bool {
				return v.dates.ContainsAnyDate(c.RawText)
			},
			FailureMessage:  "Certificate date not found",
			SuggestedAction: "Confirm the certificate shows its issue date",
		})
	}

	return checks
}

// detectOrganizationName looks below the certificate title, where the
// entity's name is printed, then falls back to the structured key-value
// pairs.
func (v *Validator) detectOrganizationName(content *document.Content) string {
	name := fieldloc.FindValueNearAnchor(content.RawText, fieldloc.Options{
		Anchors:    []string{"certificate of good standing", "good standing"},
		Direction:  fieldloc.After,
		MaxLines:   4,
		Exclusions: fieldloc.DefaultExclusions,
	})
	if name != "" {
		return name
	}
	return fieldloc.FindValueByLabel(content.KeyValuePairs, fieldloc.DefaultLabelSynonyms)
}
