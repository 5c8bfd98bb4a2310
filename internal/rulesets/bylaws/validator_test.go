// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bylaws

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_AcceptsSpellingVariants(t *testing.T) {
	for _, title := range []string{"Bylaws", "By-Laws", "By Laws"} {
		text := title + " of Acme Corp\nAdopted 2019\n"
		outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})
		assert.Empty(t, outcome.MissingElements, "title %q", title)
	}
}

func TestValidate_CuedYearCountsAsDate(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent("Bylaws\nAdopted 2019\n"), document.UserFields{})
	assert.True(t, outcome.Passed())

	// A bare number is not date evidence.
	outcome = NewValidator().Validate(document.NewContent("Bylaws\nSection 2019\n"), document.UserFields{})
	assert.False(t, outcome.Passed())
}
