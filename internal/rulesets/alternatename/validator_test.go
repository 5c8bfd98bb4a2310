// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package alternatename

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_AcceptsAllTitleVariants(t *testing.T) {
	titles := []string{
		"Certificate of Alternate Name",
		"Registration of Alternate Name",
		"Certificate of Renewal of Alternate Name",
	}
	for _, title := range titles {
		text := title + "\nACME LLC\nDivision of Revenue\nDepartment of the Treasury\n"
		outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})
		assert.Empty(t, outcome.MissingElements, "title %q", title)
	}
}

func TestValidate_DetectsNameBelowTitle(t *testing.T) {
	text := "Certificate of Alternate Name\nACME LLC\nDivision of Revenue\nDepartment of the Treasury\n"
	outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{OrganizationName: "Acme LLC"})

	assert.Equal(t, "ACME LLC", outcome.DetectedOrganizationName)
	assert.True(t, outcome.Passed())
}

func TestValidate_MissingRevenueReference(t *testing.T) {
	text := "Certificate of Alternate Name\nDepartment of the Treasury\n"
	outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})

	assert.Len(t, outcome.MissingElements, 1)
	assert.Contains(t, outcome.MissingElements[0], "Division of Revenue")
}
