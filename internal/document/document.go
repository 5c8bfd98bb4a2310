// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package document

import "strings"

// Content holds the output of the upstream document-analysis service for a
// single document. It is read-only to the rule engine: validators consume it
// but never mutate it, so concurrent validations can share one instance.
type Content struct {
	// RawText is the full extracted text, newline-delimited by detected
	// line breaks. Used when original casing matters (name extraction).
	RawText string

	// LowerText is the lowercase form of RawText, computed once at
	// construction. All keyword and phrase checks run against this field
	// instead of re-lowercasing per check.
	LowerText string

	// Pages in document order.
	Pages []Page

	// KeyValuePairs are structured field candidates detected by the
	// analysis service. Keys are not unique and order carries no meaning.
	KeyValuePairs []KeyValuePair

	// Styles flag regions of the document, notably handwriting.
	Styles []StyleRun

	// Languages detected by the analysis service (BCP 47 codes).
	Languages []string
}

// Page is a single page of the analyzed document.
type Page struct {
	Number    int
	Width     float64
	Height    float64
	Unit      string
	WordCount int
	Lines     []Line
}

// Line is one detected line of text with optional geometry.
type Line struct {
	Content     string
	BoundingBox []float64
}

// TextSpan is a piece of text with optional geometry.
type TextSpan struct {
	Text        string
	BoundingBox []float64
}

// KeyValuePair is a label/value candidate detected by the analysis service.
type KeyValuePair struct {
	Key   TextSpan
	Value TextSpan
}

// StyleRun flags a styled region of the document.
type StyleRun struct {
	IsHandwritten bool
	Confidence    float64
}

// UserFields carries caller-supplied values to reconcile against the
// document. Both fields are optional and never trusted as authoritative.
type UserFields struct {
	OrganizationName string
	FEIN             string
}

// NewContent builds a Content from raw extracted text, computing the
// lowercase cache once. Pages, key-value pairs, and styles may be attached
// afterwards; absent sequences behave as empty.
func NewContent(rawText string) *Content {
	return &Content{
		RawText:   rawText,
		LowerText: strings.ToLower(rawText),
	}
}

// PageCount returns the number of pages, zero when none were supplied.
func (c *Content) PageCount() int {
	if c == nil {
		return 0
	}
	return len(c.Pages)
}

// WordCount sums the per-page word counts. Falls back to counting
// whitespace-separated tokens in RawText when no page data is available.
func (c *Content) WordCount() int {
	if c == nil {
		return 0
	}
	if len(c.Pages) == 0 {
		return len(strings.Fields(c.RawText))
	}
	total := 0
	for _, p := range c.Pages {
		total += p.WordCount
	}
	return total
}

// ContainsHandwriting reports whether any style run was flagged as
// handwritten.
func (c *Content) ContainsHandwriting() bool {
	if c == nil {
		return false
	}
	for _, s := range c.Styles {
		if s.IsHandwritten {
			return true
		}
	}
	return false
}

// Lines splits RawText into its detected lines.
func (c *Content) Lines() []string {
	if c == nil || c.RawText == "" {
		return nil
	}
	return strings.Split(c.RawText, "\n")
}

// HasText reports whether any text was extracted at all.
func (c *Content) HasText() bool {
	return c != nil && strings.TrimSpace(c.RawText) != ""
}
