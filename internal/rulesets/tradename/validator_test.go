// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package tradename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_TitleVariants(t *testing.T) {
	for _, title := range []string{"Certificate of Trade Name", "Trade Name Certificate"} {
		outcome := NewValidator().Validate(document.NewContent(title+"\nCounty of Bergen\n"), document.UserFields{})
		assert.True(t, outcome.Passed(), "title %q", title)
	}
}

func TestValidate_MissingTitle(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent("County of Bergen\nFiled 2024\n"), document.UserFields{})
	assert.False(t, outcome.Passed())
	assert.Len(t, outcome.MissingElements, 1)
	assert.Len(t, outcome.SuggestedActions, 1)
}
