// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"certscan/internal/document"
)

func TestDefaultRegistryCoversAllTags(t *testing.T) {
	registry := DefaultRegistry(nil)

	expected := []string{
		TaxClearanceOnline,
		TaxClearanceManual,
		CertAlternativeName,
		CertTradeName,
		CertFormation,
		CertFormationIndependent,
		CertGoodStandingLong,
		CertGoodStandingShort,
		OperatingAgreement,
		CertIncorporation,
		IRSDetermination,
		Bylaws,
		CertAuthority,
		CertAuthorityAuto,
	}
	for _, tag := range expected {
		_, ok := registry.Get(tag)
		assert.True(t, ok, "tag %s not registered", tag)
	}
	assert.Len(t, registry.Types(), len(expected))
}

func TestValidate_UnknownDocumentType(t *testing.T) {
	registry := DefaultRegistry(nil)
	content := document.NewContent("some text")

	outcome := registry.Validate("not-a-real-type", content, document.UserFields{})

	assert.Equal(t, []string{"Unknown document type"}, outcome.MissingElements)
	assert.NotEmpty(t, outcome.SuggestedActions)
	assert.Empty(t, outcome.DetectedOrganizationName)
}

func TestValidate_Idempotent(t *testing.T) {
	now := func() time.Time {
		return time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	}
	registry := DefaultRegistry(nil).WithClock(now)
	content := document.NewContent("Certificate of Incorporation\nThe directors shall meet annually.")
	fields := document.UserFields{OrganizationName: "Acme LLC"}

	first := registry.Validate(CertIncorporation, content, fields)
	second := registry.Validate(CertIncorporation, content, fields)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("validation is not idempotent (-first +second):\n%s", diff)
	}
}

func TestValidate_EmptyContentNeverPanics(t *testing.T) {
	registry := DefaultRegistry(nil)
	empty := document.NewContent("")

	for _, tag := range registry.Types() {
		outcome := registry.Validate(tag, empty, document.UserFields{})
		assert.NotNil(t, outcome, "tag %s returned nil outcome", tag)
		assert.False(t, outcome.Passed(), "tag %s passed on empty content", tag)
	}
}
