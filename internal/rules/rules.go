// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rules defines the rule-set contract shared by every document-type
// validator: the validation outcome, the declarative checklist model, and
// the presence-check primitives built on top of it.
package rules

import (
	"certscan/internal/document"
)

// Outcome is the result of running one rule set over one document. A failed
// check is data, never an error: an empty MissingElements means the document
// passed.
type Outcome struct {
	// MissingElements are human-readable deficiency descriptions, in
	// checklist order.
	MissingElements []string

	// SuggestedActions are remediation hints. Indices do not align with
	// MissingElements.
	SuggestedActions []string

	// DetectedOrganizationName is the organization name found printed on
	// the document, in original casing, or "" when no textual evidence
	// supports one. Detection is independent of whether the name matched
	// the caller-supplied one.
	DetectedOrganizationName string
}

// NewOutcome returns an empty passing outcome. Slices are non-nil so a
// clean validation serializes as empty arrays.
func NewOutcome() *Outcome {
	return &Outcome{
		MissingElements:  []string{},
		SuggestedActions: []string{},
	}
}

// AddMissing records a failed check. The action may be empty.
func (o *Outcome) AddMissing(element, action string) {
	o.MissingElements = append(o.MissingElements, element)
	if action != "" {
		o.SuggestedActions = append(o.SuggestedActions, action)
	}
}

// Passed reports whether no deficiency was recorded.
func (o *Outcome) Passed() bool {
	return len(o.MissingElements) == 0
}

// RuleSet is a per-document-type compliance checker. Validate is a pure
// function of its inputs: no I/O, no shared state, safe to call
// concurrently.
type RuleSet interface {
	// Name returns the rule set's short identifier for logs and help.
	Name() string

	// Description returns a one-line summary of what the rule set checks.
	Description() string

	// Validate runs the rule set over the analyzed document content and
	// the caller-supplied fields. It always returns a non-nil Outcome;
	// missing optional inputs skip the corresponding checks rather than
	// failing them.
	Validate(content *document.Content, fields document.UserFields) *Outcome
}

// Check is one entry of a rule set's declarative checklist. Modeling checks
// as data keeps checklist revisions a table edit instead of a logic edit.
type Check struct {
	// ID identifies the check in help output.
	ID string

	// Predicate reports whether the document satisfies the check.
	Predicate func(c *document.Content) bool

	// FailureMessage is appended to MissingElements when the predicate
	// fails.
	FailureMessage string

	// SuggestedAction is appended to SuggestedActions when the predicate
	// fails. May be empty.
	SuggestedAction string

	// Enabled gates checks that appear only in some revisions of a rule
	// set. Nil means always enabled.
	Enabled func() bool
}

// RunChecklist evaluates the checks in order, recording every failure.
func RunChecklist(o *Outcome, c *document.Content, checks []Check) {
	for _, check := range checks {
		if check.Enabled != nil && !check.Enabled() {
			continue
		}
		if check.Predicate != nil && check.Predicate(c) {
			continue
		}
		o.AddMissing(check.FailureMessage, check.SuggestedAction)
	}
}
