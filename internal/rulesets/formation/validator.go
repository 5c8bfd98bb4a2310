// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formation validates NJ certificates of formation, including the
// standalone variant issued without the standing verification block.
package formation

import (
	"regexp"
	"strings"

	"certscan/internal/dates"
	"certscan/internal/document"
	"certscan/internal/fieldloc"
	"certscan/internal/rules"
)

// Variant selects between the standard and independent certificate layouts.
type Variant int

const (
	// Standard certificates include the online verification block.
	Standard Variant = iota
	// Independent certificates are issued without the verification block.
	Independent
)

// Options gates checks that only appear in some revisions of the
// certificate layout.
type Options struct {
	RequireEntityID        bool
	RequireRegisteredAgent bool
}

// Validator implements the rules.RuleSet interface for certificates of
// formation.
type Validator struct {
	variant Variant
	opts    Options
	dates   *dates.Extractor

	// namePattern matches the "Name: ..." field on the certificate; the
	// capture keeps original casing for display.
	namePattern *regexp.Regexp

	// aboveNamedPattern matches the recital sentence naming the entity
	// ("The above-named ... was duly filed ...").
	aboveNamedPattern *regexp.Regexp
}

// NewValidator creates a certificate-of-formation validator.
func NewValidator(variant Variant, opts Options) *Validator {
	return &Validator{
		variant:           variant,
		opts:              opts,
		dates:             dates.NewExtractor(),
		namePattern:       regexp.MustCompile(`(?im)^\s*name:\s*(\S[^\n]*)$`),
		aboveNamedPattern: regexp.MustCompile(`(?is)above-named\s+(.+?)\s+was`),
	}
}

// Name implements rules.RuleSet.
func (v *Validator) Name() string {
	if v.variant == Independent {
		return "CERT_FORMATION_INDEPENDENT"
	}
	return "CERT_FORMATION"
}

// Description implements rules.RuleSet.
func (v *Validator) Description() string {
	return "Validates a NJ certificate of formation"
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
			Predicate:       rules.PhrasePresent("certificate of formation"),
			FailureMessage:  "Certificate of formation title not found",
			SuggestedAction: "Upload the certificate of formation filed with the Division of Revenue",
		},
		{
			ID:              "treasury",
			Predicate:       rules.PhrasePresent("department of the treasury", "division of revenue"),
			FailureMessage:  "Treasury or Division of Revenue reference not found",
			SuggestedAction: "Confirm the certificate was filed with the NJ Department of the Treasury",
		},
		{
			ID:              "signature",
			Predicate:       rules.PhrasePresent("signature", "/s/", "state treasurer", "organizer"),
			FailureMessage:  "Signature evidence not found",
			SuggestedAction: "Confirm the certificate shows the filer's or State Treasurer's signature",
		},
		{
			ID: "date",
			Predicate: func(c *document.Content) bool {
				return v.dates.ContainsAnyDate(c.RawText)
			},
			FailureMessage:  "Filing date not found",
			SuggestedAction: "Confirm the certificate shows its filing date",
		},
	}

	if v.variant == Standard {
		checks = append(checks, rules.Check{
			ID:              "verification",
			Predicate:       rules.PhrasePresent("verify this certificate", "certificate verification", "verification #"),
			FailureMessage:  "Certificate verification information not found",
			SuggestedAction: "Upload the certificate copy that includes the verification instructions",
		})
	}

	checks = append(checks,
		rules.Check{
			ID:              "entity-id",
			Enabled:         func() bool { return v.opts.RequireEntityID },
			Predicate:       rules.PhrasePresent("entity id", "identification number"),
			FailureMessage:  "Entity ID not found",
			SuggestedAction: "Confirm the certificate shows the entity's identification number",
		},
		rules.Check{
			ID:              "registered-agent",
			Enabled:         func() bool { return v.opts.RequireRegisteredAgent },
			Predicate:       rules.PhrasePresent("registered agent"),
			FailureMessage:  "Registered agent not found",
			SuggestedAction: "Confirm the certificate names the registered agent",
		},
	)

	return checks
}

// detectOrganizationName tries three sources in decreasing confidence: the
// "Name:" field, the above-named recital sentence, then the structured
// key-value pairs.
func (v *Validator) detectOrganizationName(content *document.Content) string {
	if m := v.namePattern.FindStringSubmatch(content.RawText); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := v.aboveNamedPattern.FindStringSubmatch(content.RawText); m != nil {
		if name := strings.TrimSpace(m[1]); len(name) > 3 {
			return name
		}
	}
	return fieldloc.FindValueByLabel(content.KeyValuePairs, fieldloc.DefaultLabelSynonyms)
}
