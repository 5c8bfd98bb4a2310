// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package irsdetermination

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_Compliant(t *testing.T) {
	text := "Internal Revenue Service\nDepartment of the Treasury\n\nDear Applicant:\n...\nSincerely,\nDirector, Exempt Organizations\n"
	outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})
	assert.True(t, outcome.Passed())
}

func TestValidate_MissingLetterhead(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent("Dear Applicant:\nSincerely,\nDirector\n"), document.UserFields{})
	assert.False(t, outcome.Passed())
	assert.Equal(t, []string{"IRS or Treasury letterhead not found"}, outcome.MissingElements)
}

func TestValidate_MissingClosing(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent("Internal Revenue Service\nDear Applicant:\n"), document.UserFields{})
	assert.False(t, outcome.Passed())
	assert.Equal(t, []string{"Director's closing signature not found"}, outcome.MissingElements)
}
