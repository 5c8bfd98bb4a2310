// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package goodstanding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func fixedNow() func() time.Time {
	return func() time.Time {
		return time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC)
	}
}

const longFormCertificate = `State of New Jersey
Department of the Treasury
Certificate of Good Standing
ACME LLC
The above entity is in good standing as of 06/15/2024.
Signature of the State Treasurer
To verify this certificate, visit the verification portal.
`

func TestValidate_LongFormCompliant(t *testing.T) {
	v := NewValidator(Long).WithClock(fixedNow())
	outcome := v.Validate(document.NewContent(longFormCertificate), document.UserFields{})

	assert.Empty(t, outcome.MissingElements)
	assert.Equal(t, "ACME LLC", outcome.DetectedOrganizationName)
}

func TestValidate_LongFormStaleDate(t *testing.T) {
	v := NewValidator(Long).WithClock(fixedNow())
	text := `State of New Jersey
Department of the Treasury
Certificate of Good Standing
ACME LLC
The above entity is in good standing as of 06/15/2023.
Signature of the State Treasurer
To verify this certificate, visit the verification portal.
`
	outcome := v.Validate(document.NewContent(text), document.UserFields{})
	assert.False(t, outcome.Passed())
}

func TestValidate_ShortFormOnlyNeedsTitleStateAndDate(t *testing.T) {
	v := NewValidator(Short).WithClock(fixedNow())
	text := "Certificate of Good Standing\nState of New Jersey\nIssued 01/15/2019\n"

	outcome := v.Validate(document.NewContent(text), document.UserFields{})
	assert.Empty(t, outcome.MissingElements)
}

func TestValidate_ShortFormMissingDate(t *testing.T) {
	v := NewValidator(Short).WithClock(fixedNow())
	text := "Certificate of Good Standing\nState of New Jersey\n"

	outcome := v.Validate(document.NewContent(text), document.UserFields{})
	assert.Len(t, outcome.MissingElements, 1)
	assert.Contains(t, outcome.MissingElements[0], "date")
}
