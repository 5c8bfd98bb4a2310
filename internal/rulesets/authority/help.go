// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package authority

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the
// certificate-of-authority rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "NJ certificate of authority",
		DetailedDescription: `Validates a certificate of authority issued by the NJ Division of
Taxation: title, State of New Jersey reference, and a Taxation or Treasury
reference.`,
		DocumentTypes: []string{"cert-authority"},
		RequiredElements: []string{
			"Certificate of authority title",
			"State of New Jersey",
			"Taxation or Treasury reference",
		},
		Examples: []string{
			"certscan validate --type cert-authority --input analysis.json",
		},
	}
	if v.variant == Auto {
		info.DocumentTypes = []string{"cert-authority-auto"}
		info.DetailedDescription += `

The automatic variant additionally extracts the organization name printed
below the title and reconciles it against the caller-supplied name.`
		info.Examples = []string{
			"certscan validate --type cert-authority-auto --input analysis.json --organization \"Acme LLC\"",
		}
	}
	return info
}
