// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rules

import (
	"fmt"
	"regexp"
	"strings"

	"certscan/internal/document"
	"certscan/internal/orgname"
)

// NameMismatchMarker is the substring convention every name-mismatch
// deficiency carries. The report aggregator derives its name-match flag
// from it.
const NameMismatchMarker = "doesn't match"

var applicantIDPattern = regexp.MustCompile(`applicant\s*(?:id|#|id#)\s*[:#]?\s*([a-z0-9\-]+)`)

// ContainsPhrase reports whether the document contains the phrase,
// case-insensitively, using the precomputed lowercase text. The phrase must
// be supplied lowercase.
func ContainsPhrase(c *document.Content, phrase string) bool {
	if c == nil {
		return false
	}
	return strings.Contains(c.LowerText, phrase)
}

// ContainsAnyPhrase reports whether any of the phrases is present.
func ContainsAnyPhrase(c *document.Content, phrases ...string) bool {
	for _, p := range phrases {
		if ContainsPhrase(c, p) {
			return true
		}
	}
	return false
}

// MatchesPattern reports whether the pattern matches the lowercase text.
func MatchesPattern(c *document.Content, pattern *regexp.Regexp) bool {
	if c == nil {
		return false
	}
	return pattern.MatchString(c.LowerText)
}

// PhrasePresent adapts ContainsAnyPhrase into a checklist predicate.
func PhrasePresent(phrases ...string) func(*document.Content) bool {
	return func(c *document.Content) bool {
		return ContainsAnyPhrase(c, phrases...)
	}
}

// PhraseAbsent adapts a rejected-phrase rule into a checklist predicate:
// the check passes when the phrase does NOT appear.
func PhraseAbsent(phrases ...string) func(*document.Content) bool {
	return func(c *document.Content) bool {
		return !ContainsAnyPhrase(c, phrases...)
	}
}

// PatternPresent adapts MatchesPattern into a checklist predicate.
func PatternPresent(pattern *regexp.Regexp) func(*document.Content) bool {
	return func(c *document.Content) bool {
		return MatchesPattern(c, pattern)
	}
}

// ReconcileOrganizationName compares the caller-supplied organization name
// against the one detected on the document and records a deficiency on
// mismatch. Either side being absent skips the check.
func ReconcileOrganizationName(o *Outcome, fields document.UserFields, detected string) {
	if fields.OrganizationName == "" || detected == "" {
		return
	}
	if orgname.Match(fields.OrganizationName, detected) {
		return
	}
	o.AddMissing(
		fmt.Sprintf("Organization name on the document %s the name provided", NameMismatchMarker),
		fmt.Sprintf("Verify the organization name; the document shows %q", detected),
	)
}

// CheckApplicantID cross-checks the last three characters of the supplied
// FEIN against the applicant ID printed on the document. Runs only when a
// FEIN was supplied and an applicant ID can be located (regex over the
// text, then key-value pairs); otherwise the check does not apply.
func CheckApplicantID(o *Outcome, c *document.Content, fein string) {
	fein = strings.TrimSpace(fein)
	if c == nil || len(fein) < 3 {
		return
	}

	applicantID := ""
	if m := applicantIDPattern.FindStringSubmatch(c.LowerText); m != nil {
		applicantID = m[1]
	}
	if applicantID == "" {
		for _, kv := range c.KeyValuePairs {
			if strings.Contains(strings.ToLower(kv.Key.Text), "applicant id") {
				applicantID = strings.ToLower(strings.TrimSpace(kv.Value.Text))
				break
			}
		}
	}
	if len(applicantID) < 3 {
		return
	}

	if !strings.HasSuffix(applicantID, strings.ToLower(fein[len(fein)-3:])) {
		o.AddMissing(
			"Applicant ID on the document does not end with the last three digits of the provided FEIN",
			"Confirm the FEIN belongs to the organization named on the certificate",
		)
	}
}
