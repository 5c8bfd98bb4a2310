// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fieldloc locates short name-like values positioned near a known
// anchor phrase in unstructured document text. Rule sets use it to find the
// organization name printed on a certificate, each with its own anchor and
// exclusion lists.
package fieldloc

import (
	"regexp"
	"strings"

	"certscan/internal/document"
)

// Direction selects which side of the anchor phrase is scanned.
type Direction int

const (
	// Before scans the lines above the anchor, nearest first.
	Before Direction = iota
	// After scans the lines below the anchor, nearest first.
	After
)

// DefaultExclusions are boilerplate phrases that disqualify a line from
// being an organization name. Most certificates carry letterhead matching
// these.
var DefaultExclusions = []string{
	"state of",
	"department of",
	"division of",
	"treasury",
	"governor",
	"attn:",
	"p.o. box",
}

// DefaultLabelSynonyms are key texts that mark an organization-name field in
// the analysis service's key-value pairs.
var DefaultLabelSynonyms = []string{
	"taxpayer name",
	"applicant",
	"business name",
	"name:",
	"entity",
}

var (
	bareDatePattern    = regexp.MustCompile(`^\s*\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}\s*$`)
	entitySuffixHint   = regexp.MustCompile(`(?i)\b(llc|l\.l\.c\.|inc|corp|corporation|company|lp|llp|ltd)\.?\s*$`)
	whitespaceCollapse = regexp.MustCompile(`\s+`)
)

// Options configures a search. Anchors are tried in priority order and must
// be lowercase; the first one present in the text wins.
type Options struct {
	Anchors    []string
	Direction  Direction
	MaxLines   int
	Exclusions []string
}

// FindValueNearAnchor scans up to MaxLines non-empty lines adjacent to the
// first matching anchor phrase and returns the best name-like candidate, or
// "" when nothing qualifies.
//
// A candidate is high-confidence when it is all-uppercase and longer than
// five characters, or when it ends in a legal-entity suffix; the scan stops
// at the first high-confidence hit. Otherwise the first surviving line is
// kept as a low-confidence fallback while scanning continues.
func FindValueNearAnchor(text string, opts Options) string {
	if text == "" || len(opts.Anchors) == 0 {
		return ""
	}
	lower := strings.ToLower(text)

	anchorIdx, anchorLen := -1, 0
	for _, anchor := range opts.Anchors {
		if idx := strings.Index(lower, anchor); idx >= 0 {
			anchorIdx, anchorLen = idx, len(anchor)
			break
		}
	}
	if anchorIdx < 0 {
		return ""
	}

	var region string
	if opts.Direction == Before {
		region = text[:anchorIdx]
	} else {
		region = text[anchorIdx+anchorLen:]
	}

	lines := strings.Split(region, "\n")
	if opts.Direction == Before {
		reverse(lines)
	}

	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = 5
	}

	fallback := ""
	examined := 0
	for _, line := range lines {
		candidate := cleanLine(line)
		if candidate == "" {
			continue
		}
		if examined++; examined > maxLines {
			break
		}
		if len(candidate) <= 3 || bareDatePattern.MatchString(candidate) {
			continue
		}
		if excluded(candidate, opts.Exclusions) {
			continue
		}
		if isHighConfidence(candidate) {
			return candidate
		}
		if fallback == "" {
			fallback = candidate
		}
	}
	return fallback
}

// FindValueByLabel scans key-value pairs for a key containing one of the
// label synonyms and returns the paired value. Used as a fallback when no
// anchor phrase is present in the text.
func FindValueByLabel(pairs []document.KeyValuePair, labels []string) string {
	for _, kv := range pairs {
		key := strings.ToLower(strings.TrimSpace(kv.Key.Text))
		if key == "" {
			continue
		}
		for _, label := range labels {
			if strings.Contains(key, label) {
				if value := cleanLine(kv.Value.Text); value != "" {
					return value
				}
			}
		}
	}
	return ""
}

// isHighConfidence reports whether a line looks unmistakably like an
// organization name: certificates print names in capitals, and a
// legal-entity suffix is decisive either way.
func isHighConfidence(line string) bool {
	if entitySuffixHint.MatchString(line) {
		return true
	}
	return len(line) > 5 && line == strings.ToUpper(line) && strings.IndexFunc(line, isLetter) >= 0
}

func excluded(line string, exclusions []string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range exclusions {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func cleanLine(line string) string {
	return strings.TrimSpace(whitespaceCollapse.ReplaceAllString(line, " "))
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
