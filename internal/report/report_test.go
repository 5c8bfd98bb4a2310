// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"certscan/internal/document"
	"certscan/internal/rules"
)

func sampleContent() *document.Content {
	content := document.NewContent("line one\nline two")
	content.Pages = []document.Page{
		{Number: 1, WordCount: 120},
		{Number: 2, WordCount: 80},
	}
	content.Languages = []string{"en"}
	content.Styles = []document.StyleRun{{IsHandwritten: true, Confidence: 0.9}}
	return content
}

func TestBuild_PassingOutcome(t *testing.T) {
	outcome := rules.NewOutcome()
	outcome.DetectedOrganizationName = "ACME LLC"

	got := Build("cert-formation", sampleContent(), outcome)

	name := "ACME LLC"
	want := &ValidationReport{
		Success:          true,
		MissingElements:  []string{},
		SuggestedActions: []string{},
		DocumentInfo: DocumentInfo{
			PageCount:                2,
			WordCount:                200,
			LanguageInfo:             []string{"en"},
			ContainsHandwriting:      true,
			DocumentType:             "cert-formation",
			DetectedOrganizationName: &name,
		},
		OrganizationNameMatches: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected report (-want +got):\n%s", diff)
	}
}

func TestBuild_NameMismatchFlipsFlag(t *testing.T) {
	outcome := rules.NewOutcome()
	outcome.DetectedOrganizationName = "Beta Corporation"
	rules.ReconcileOrganizationName(outcome, document.UserFields{OrganizationName: "Beta LLC"}, "Beta Corporation")

	got := Build("tax-clearance-online", sampleContent(), outcome)

	if got.OrganizationNameMatches {
		t.Error("expected OrganizationNameMatches=false after a name-mismatch deficiency")
	}
	if got.Success {
		t.Error("expected Success=false with missing elements present")
	}
}

func TestBuild_OtherDeficienciesKeepFlag(t *testing.T) {
	outcome := rules.NewOutcome()
	outcome.AddMissing("Certificate serial number not found", "request a reissue")

	got := Build("tax-clearance-online", sampleContent(), outcome)

	if !got.OrganizationNameMatches {
		t.Error("non-name deficiencies must not flip OrganizationNameMatches")
	}
}

func TestBuild_NoDetectedNameSerializesAsNull(t *testing.T) {
	got := Build("bylaws", document.NewContent("text"), rules.NewOutcome())

	data, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"detectedOrganizationName":null`) {
		t.Errorf("expected null detected name in JSON, got %s", data)
	}
	if !strings.Contains(string(data), `"missingElements":[]`) {
		t.Errorf("expected empty array for missing elements, got %s", data)
	}
}

func TestBuild_NilOutcome(t *testing.T) {
	got := Build("bylaws", document.NewContent(""), nil)
	if !got.Success {
		t.Error("nil outcome should build a passing report")
	}
}
