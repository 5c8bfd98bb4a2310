// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package operatingagreement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_Compliant(t *testing.T) {
	text := `Operating Agreement of Acme Widgets LLC
This agreement is entered into as of January 2, 2024 under the laws of New Jersey.
Signature: Jane Member
`
	outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})

	assert.Empty(t, outcome.MissingElements)
	assert.Empty(t, outcome.DetectedOrganizationName, "operating agreements do not extract a name")
}

func TestValidate_EmptyContentFailsEveryCheck(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent(""), document.UserFields{})
	assert.Len(t, outcome.MissingElements, 4)
}
