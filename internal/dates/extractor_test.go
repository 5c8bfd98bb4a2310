// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dates

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 15, 4, 5, 0, time.UTC)
	}
}

func TestContainsAnyDate(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"numeric slash", "issued on 03/15/2024 by the division", true},
		{"numeric dash", "issued 15-03-2024", true},
		{"numeric dot", "issued 3.4.24", true},
		{"written month first", "Executed on January 2, 2024", true},
		{"written day first", "Executed on 2nd January 2024", true},
		{"written abbreviated month", "Dated Mar 5, 2023", true},
		{"ordinal phrase", "this 2nd day of January, 2024", true},
		{"cued year only", "Adopted 2019", true},
		{"copyright year", "copyright 2021 Acme", true},
		{"bare year not a date", "serial number 2019 is assigned", false},
		{"out of range year", "version 1/1/1850", false},
		{"zero components", "part 0/0/2024", false},
		{"component too large", "ratio 45/99/2024", false},
		{"no date", "no dates here at all", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, e.ContainsAnyDate(tt.text))
		})
	}
}

func TestContainsAnyDateSkipsCalendarValidity(t *testing.T) {
	// Presence checks only need date-shaped text; February 31st still
	// counts because its components are in range.
	e := NewExtractor()
	assert.True(t, e.ContainsAnyDate("signed 02/31/2024"))
}

func TestHasDateWithinWindowBoundary(t *testing.T) {
	e := NewExtractor().WithClock(fixedNow(2024, time.July, 1))

	// Exactly six calendar months back is inside the window.
	assert.True(t, e.HasDateWithinWindow("issued 01/01/2024"))
	// One day earlier, by month-boundary arithmetic, is outside.
	assert.False(t, e.HasDateWithinWindow("issued 12/31/2023"))
	// Today is inside.
	assert.True(t, e.HasDateWithinWindow("issued 07/01/2024"))
	// The future is not.
	assert.False(t, e.HasDateWithinWindow("issued 07/02/2024"))
}

func TestHasDateWithinWindowAmbiguousNumeric(t *testing.T) {
	// 03/04/2024 is March 4 (MM/DD) or April 3 (DD/MM); either in-window
	// interpretation is enough.
	e := NewExtractor().WithClock(fixedNow(2024, time.April, 10))
	assert.True(t, e.HasDateWithinWindow("issued 03/04/2024"))

	// Window covering April 3 but not March 4 still passes.
	narrow := NewExtractor().WithWindowMonths(1).WithClock(fixedNow(2024, time.April, 10))
	assert.True(t, narrow.HasDateWithinWindow("issued 03/04/2024"))
}

func TestHasDateWithinWindowWrittenForms(t *testing.T) {
	e := NewExtractor().WithClock(fixedNow(2024, time.July, 1))

	assert.True(t, e.HasDateWithinWindow("Executed on March 15, 2024"))
	assert.True(t, e.HasDateWithinWindow("Executed on 15th March, 2024"))
	assert.True(t, e.HasDateWithinWindow("this 15th day of March, 2024"))
	assert.False(t, e.HasDateWithinWindow("Executed on March 15, 2023"))
}

func TestHasDateWithinWindowRejectsInvalidCalendarDates(t *testing.T) {
	e := NewExtractor().WithClock(fixedNow(2024, time.March, 1))
	// Neither MM/DD nor DD/MM interpretation of 02/30 is a real date.
	assert.False(t, e.HasDateWithinWindow("signed 02/30/2024"))
}

func TestHasDateWithinWindowTwoDigitYears(t *testing.T) {
	e := NewExtractor().WithClock(fixedNow(2024, time.July, 1))
	assert.True(t, e.HasDateWithinWindow("issued 06/15/24"))
	assert.False(t, e.HasDateWithinWindow("issued 06/15/99"))
}

func TestMatchCapBoundsWork(t *testing.T) {
	// An adversarial blob of many out-of-window dates followed by one
	// in-window date past the cap: the cap means it is never examined.
	e := NewExtractor().WithClock(fixedNow(2024, time.July, 1))

	var b strings.Builder
	for i := 0; i < maxNumericMatches; i++ {
		fmt.Fprintf(&b, "archived 01/01/%d\n", 1990+i)
	}
	b.WriteString("issued 06/15/2024\n")

	assert.False(t, e.HasDateWithinWindow(b.String()))
}
