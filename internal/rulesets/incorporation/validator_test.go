// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package incorporation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestValidate_Compliant(t *testing.T) {
	text := "Certificate of Incorporation\nThe incorporator named below certifies...\n"
	outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})
	assert.True(t, outcome.Passed())
}

func TestValidate_AnyGovernanceRoleSatisfies(t *testing.T) {
	for _, role := range []string{"director", "incorporator", "trustee", "shareholder"} {
		text := "Certificate of Incorporation\nInitial " + role + ": Jane Doe\n"
		outcome := NewValidator().Validate(document.NewContent(text), document.UserFields{})
		assert.True(t, outcome.Passed(), "role %q", role)
	}
}

func TestValidate_MissingGovernance(t *testing.T) {
	outcome := NewValidator().Validate(document.NewContent("Certificate of Incorporation\n"), document.UserFields{})
	assert.False(t, outcome.Passed())
	assert.Len(t, outcome.MissingElements, 1)
}
