// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package orgname normalizes and fuzzy-compares organization names,
// tolerating legal-entity abbreviation variance ("Acme LLC" vs "Acme
// Limited Liability Company" vs bare "Acme") without conflating legally
// distinct suffixes.
package orgname

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// entityExpansions maps legal-entity abbreviations to their canonical full
// forms. Expansion happens token-by-token after punctuation stripping, so an
// abbreviation embedded inside a word ("Coast") is never touched.
var entityExpansions = map[string]string{
	"llc":  "limited liability company",
	"inc":  "incorporated",
	"corp": "corporation",
	"co":   "company",
	"ltd":  "limited",
	"lp":   "limited partnership",
	"llp":  "limited liability partnership",
	"pllc": "professional limited liability company",
	"pc":   "professional corporation",
	"pa":   "professional association",
	"plc":  "professional limited company",
}

// canonicalTypes lists the full-form entity types, longest first, so suffix
// detection prefers "limited liability company" over "company".
var canonicalTypes = []string{
	"professional limited liability company",
	"limited liability partnership",
	"limited liability company",
	"professional corporation",
	"professional association",
	"professional limited company",
	"limited partnership",
	"incorporated",
	"corporation",
	"company",
	"limited",
}

// compatibleTypePairs are entity types that may be used interchangeably when
// reconciling a user-entered name against a printed one. Filing systems and
// users mix these up routinely; an LLC and a corporation are never mixed.
var compatibleTypePairs = [][2]string{
	{"corporation", "incorporated"},
	{"company", "corporation"},
}

// Normalize canonicalizes an organization name for comparison: Unicode
// compatibility fold, lowercase, trimmed, internal whitespace collapsed,
// commas and periods stripped, and legal-entity abbreviations expanded to
// their full forms. Normalize is idempotent.
func Normalize(name string) string {
	s := norm.NFKC.String(name)
	s = strings.ToLower(s)
	s = strings.NewReplacer(",", " ", ".", " ").Replace(s)

	tokens := strings.Fields(s)
	for i, tok := range tokens {
		if full, ok := entityExpansions[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}

// EntityType returns the canonical entity-type suffix of a normalized name,
// or the empty string when the name carries none.
func EntityType(normalized string) string {
	for _, t := range canonicalTypes {
		if normalized == t || strings.HasSuffix(normalized, " "+t) {
			return t
		}
	}
	return ""
}

// stripEntityType removes a trailing canonical entity type, leaving the core
// name.
func stripEntityType(normalized string) string {
	if t := EntityType(normalized); t != "" {
		return strings.TrimSpace(strings.TrimSuffix(normalized, t))
	}
	return normalized
}

// typesCompatible reports whether two detected entity types may reconcile.
// A name with no detected type is compatible with anything.
func typesCompatible(a, b string) bool {
	if a == "" || b == "" || a == b {
		return true
	}
	for _, pair := range compatibleTypePairs {
		if (a == pair[0] && b == pair[1]) || (a == pair[1] && b == pair[0]) {
			return true
		}
	}
	return false
}

// Match reports whether two organization names refer to the same
// organization. Match is symmetric.
//
// Names match when their normalized forms are equal, when one contains the
// other (partial-name entry), or when their core names (entity-type suffix
// stripped) are equal. Containment and core-name matches are rejected when
// both sides carry a present, different, and incompatible entity type.
func Match(a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}

	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return typesCompatible(EntityType(na), EntityType(nb))
	}

	coreA, coreB := stripEntityType(na), stripEntityType(nb)
	if len(coreA) > 2 && len(coreB) > 2 && coreA == coreB {
		return typesCompatible(EntityType(na), EntityType(nb))
	}

	return false
}
