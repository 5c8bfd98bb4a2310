// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package authority

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

const compliantCertificate = `State of New Jersey
Division of Taxation
Certificate of Authority
ACME LLC
is authorized to collect New Jersey sales tax.
`

func TestValidate_Compliant(t *testing.T) {
	for _, variant := range []Variant{Manual, Auto} {
		outcome := NewValidator(variant).Validate(document.NewContent(compliantCertificate), document.UserFields{})
		assert.Empty(t, outcome.MissingElements, "variant %d", variant)
	}
}

func TestValidate_OnlyAutoVariantDetectsName(t *testing.T) {
	content := document.NewContent(compliantCertificate)

	manual := NewValidator(Manual).Validate(content, document.UserFields{})
	assert.Empty(t, manual.DetectedOrganizationName)

	auto := NewValidator(Auto).Validate(content, document.UserFields{})
	assert.Equal(t, "ACME LLC", auto.DetectedOrganizationName)
}

func TestValidate_AutoVariantKeyValueFallback(t *testing.T) {
	content := document.NewContent("Certificate of Authority\n")
	content.KeyValuePairs = []document.KeyValuePair{
		{Key: document.TextSpan{Text: "Business Name"}, Value: document.TextSpan{Text: "Beta Corp"}},
	}

	outcome := NewValidator(Auto).Validate(content, document.UserFields{})
	assert.Equal(t, "Beta Corp", outcome.DetectedOrganizationName)
}

func TestValidate_MissingElements(t *testing.T) {
	outcome := NewValidator(Manual).Validate(document.NewContent("unrelated text"), document.UserFields{})
	assert.Len(t, outcome.MissingElements, 3)
}
