// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formation

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the formation rule
// set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "NJ certificate of formation",
		DetailedDescription: `Validates a certificate of formation filed with the NJ Division of
Revenue. The entity name is read from the "Name:" field, the above-named
recital sentence, or the analysis service's key-value pairs, and reconciled
against the caller-supplied organization name.`,
		DocumentTypes: []string{"cert-formation"},
		RequiredElements: []string{
			"Certificate of formation title",
			"Treasury or Division of Revenue reference",
			"Signature evidence",
			"Filing date",
			"Verification information",
		},
		Examples: []string{
			"certscan validate --type cert-formation --input analysis.json --organization \"Acme LLC\"",
		},
	}
	if v.variant == Independent {
		info.DocumentTypes = []string{"cert-formation-independent"}
		info.RequiredElements = info.RequiredElements[:4]
	}
	return info
}
