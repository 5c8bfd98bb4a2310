// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package dates finds and parses date-like substrings in extracted document
// text and checks them against a recency window. Presence checks are looser
// than window checks: date-shaped text counts even when it is not a real
// calendar date.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindowMonths is the recency window most rule sets require.
const DefaultWindowMonths = 6

// Match-count caps bound regex work on adversarial inputs. The caps are a
// performance safeguard, not a correctness rule.
const (
	maxNumericMatches = 10
	maxWrittenMatches = 10
	maxOrdinalMatches = 5
)

const monthNames = `january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec`

var (
	// D/M/Y or M/D/Y with -, / or . separators; interpretation decided later.
	numericDatePattern = regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})\b`)

	// "January 2, 2024" with an optional ordinal suffix on the day.
	monthFirstPattern = regexp.MustCompile(`(?i)\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\s*,?\s*(\d{4})\b`)

	// "2 January 2024" / "2nd January, 2024".
	dayFirstPattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(` + monthNames + `)\.?\s*,?\s*(\d{4})\b`)

	// "2nd day of January, 2024".
	ordinalPhrasePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+day\s+of\s+(` + monthNames + `)\s*,?\s*(\d{4})\b`)

	// A bare 4-digit year only counts as a date when a cue word precedes it,
	// otherwise serial numbers and amounts would trip presence checks.
	cuedYearPattern = regexp.MustCompile(`(?i)(?:copyright|adopted|effective|revised|amended|dated|year|©)\s*:?\s*\(?((?:19|20)\d{2})\)?`)
)

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Extractor checks text for dates. The zero value is not usable; call
// NewExtractor.
type Extractor struct {
	// WindowMonths is the recency window size in calendar months.
	WindowMonths int

	now func() time.Time
}

// NewExtractor returns an Extractor with the default six-month window.
func NewExtractor() *Extractor {
	return &Extractor{
		WindowMonths: DefaultWindowMonths,
		now:          time.Now,
	}
}

// WithWindowMonths overrides the recency window size.
func (e *Extractor) WithWindowMonths(months int) *Extractor {
	e.WindowMonths = months
	return e
}

// WithClock fixes the extractor's notion of "now". Used by tests.
func (e *Extractor) WithClock(now func() time.Time) *Extractor {
	e.now = now
	return e
}

// ContainsAnyDate reports whether the text contains anything date-shaped:
// a sane numeric date, a written date, an ordinal-phrase date, or a 4-digit
// year preceded by a cue word ("adopted", "effective", "copyright", ...).
// Numeric candidates only need component-range sanity, not calendar
// validity.
func (e *Extractor) ContainsAnyDate(text string) bool {
	for _, m := range numericDatePattern.FindAllStringSubmatch(text, maxNumericMatches) {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year := expandYear(m[3])
		if year >= 1900 && year <= 2100 &&
			first >= 1 && first <= 31 && second >= 1 && second <= 31 {
			return true
		}
	}

	if monthFirstPattern.MatchString(text) || dayFirstPattern.MatchString(text) {
		return true
	}
	if ordinalPhrasePattern.MatchString(text) {
		return true
	}
	return cuedYearPattern.MatchString(text)
}

// HasDateWithinWindow reports whether any parseable date in the text falls
// inside [now - WindowMonths, now], inclusive on both ends. The window is
// calendar-month arithmetic, not a day count: with now = July 1st, January
// 1st is inside and December 31st is not.
//
// Ambiguous numeric dates are tried under both MM/DD/YYYY and DD/MM/YYYY;
// one in-window interpretation is enough.
func (e *Extractor) HasDateWithinWindow(text string) bool {
	now := truncateToDay(e.now())
	cutoff := now.AddDate(0, -e.WindowMonths, 0)

	inWindow := func(d time.Time, ok bool) bool {
		return ok && !d.Before(cutoff) && !d.After(now)
	}

	for _, m := range numericDatePattern.FindAllStringSubmatch(text, maxNumericMatches) {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		year := expandYear(m[3])

		if inWindow(calendarDate(year, first, second)) { // MM/DD/YYYY
			return true
		}
		if inWindow(calendarDate(year, second, first)) { // DD/MM/YYYY
			return true
		}
	}

	for _, m := range monthFirstPattern.FindAllStringSubmatch(text, maxWrittenMatches) {
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if inWindow(namedMonthDate(year, m[1], day)) {
			return true
		}
	}

	for _, m := range dayFirstPattern.FindAllStringSubmatch(text, maxWrittenMatches) {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if inWindow(namedMonthDate(year, m[2], day)) {
			return true
		}
	}

	for _, m := range ordinalPhrasePattern.FindAllStringSubmatch(text, maxOrdinalMatches) {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		if inWindow(namedMonthDate(year, m[2], day)) {
			return true
		}
	}

	return false
}

// calendarDate builds a real calendar date, rejecting out-of-range
// components (time.Date would silently normalize February 30th).
func calendarDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func namedMonthDate(year int, monthName string, day int) (time.Time, bool) {
	month, ok := monthsByName[strings.ToLower(monthName)]
	if !ok {
		return time.Time{}, false
	}
	return calendarDate(year, int(month), day)
}

// expandYear maps two-digit years onto 2000-2049 / 1950-1999.
func expandYear(s string) int {
	year, _ := strconv.Atoi(s)
	if len(s) <= 2 {
		if year < 50 {
			return 2000 + year
		}
		return 1900 + year
	}
	return year
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
