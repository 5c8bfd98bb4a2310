// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dispatch maps document-type tags to rule sets and invokes them.
package dispatch

import (
	"sort"

	"github.com/rs/zerolog/log"

	"certscan/internal/document"
	"certscan/internal/rules"
)

// Document-type tags are the stable strings consumed at the API boundary.
const (
	TaxClearanceOnline       = "tax-clearance-online"
	TaxClearanceManual       = "tax-clearance-manual"
	CertAlternativeName      = "cert-alternative-name"
	CertTradeName            = "cert-trade-name"
	CertFormation            = "cert-formation"
	CertFormationIndependent = "cert-formation-independent"
	CertGoodStandingLong     = "cert-good-standing-long"
	CertGoodStandingShort    = "cert-good-standing-short"
	OperatingAgreement       = "operating-agreement"
	CertIncorporation        = "cert-incorporation"
	IRSDetermination         = "irs-determination"
	Bylaws                   = "bylaws"
	CertAuthority            = "cert-authority"
	CertAuthorityAuto        = "cert-authority-auto"
)

// Registry holds the tag-to-rule-set mapping.
type Registry struct {
	rulesets map[string]rules.RuleSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{rulesets: make(map[string]rules.RuleSet)}
}

// Register maps a document-type tag to a rule set. A tag registered twice
// keeps the later rule set.
func (r *Registry) Register(tag string, rs rules.RuleSet) {
	r.rulesets[tag] = rs
}

// Get returns the rule set for a tag.
func (r *Registry) Get(tag string) (rules.RuleSet, bool) {
	rs, ok := r.rulesets[tag]
	return rs, ok
}

// Types returns the registered document-type tags, sorted.
func (r *Registry) Types() []string {
	tags := make([]string, 0, len(r.rulesets))
	for tag := range r.rulesets {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// RuleSets returns every registered rule set, deduplicated (variants of
// one validator register under multiple tags) and ordered by tag.
func (r *Registry) RuleSets() []rules.RuleSet {
	seen := make(map[rules.RuleSet]bool)
	var out []rules.RuleSet
	for _, tag := range r.Types() {
		rs := r.rulesets[tag]
		if !seen[rs] {
			seen[rs] = true
			out = append(out, rs)
		}
	}
	return out
}

// Validate dispatches the document to the rule set registered for its type
// tag. An unrecognized tag yields a fixed "Unknown document type" outcome
// rather than an error.
func (r *Registry) Validate(documentType string, content *document.Content, fields document.UserFields) *rules.Outcome {
	rs, ok := r.rulesets[documentType]
	if !ok {
		log.Debug().Str("document_type", documentType).Msg("no rule set registered for document type")
		outcome := rules.NewOutcome()
		outcome.AddMissing("Unknown document type", "Select a supported document type and resubmit the document")
		return outcome
	}

	log.Debug().
		Str("document_type", documentType).
		Str("ruleset", rs.Name()).
		Msg("dispatching validation")

	outcome := rs.Validate(content, fields)

	log.Debug().
		Str("document_type", documentType).
		Int("missing_elements", len(outcome.MissingElements)).
		Bool("passed", outcome.Passed()).
		Msg("validation complete")

	return outcome
}
