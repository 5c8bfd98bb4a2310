// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package goodstanding

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the good-standing
// rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	if v.form == Short {
		return help.CheckInfo{
			Name:             v.Name(),
			ShortDescription: "NJ certificate of good standing (short form)",
			DetailedDescription: `Validates a short-form certificate of good standing: title, State of New
Jersey reference, and an issue date.`,
			DocumentTypes: []string{"cert-good-standing-short"},
			RequiredElements: []string{
				"Good standing title",
				"State of New Jersey",
				"Issue date",
			},
			Examples: []string{
				"certscan validate --type cert-good-standing-short --input analysis.json",
			},
		}
	}
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "NJ certificate of good standing (long form)",
		DetailedDescription: `Validates a long-form certificate of good standing issued through the NJ
Department of the Treasury, including the State Treasurer's signature, a
six-month recency requirement, and the verification block.`,
		DocumentTypes: []string{"cert-good-standing-long"},
		RequiredElements: []string{
			"Good standing title",
			"State of New Jersey",
			"Treasury or Division of Revenue reference",
			"State Treasurer's signature",
			"Date within the last six months",
			"Verification information",
		},
		Examples: []string{
			"certscan validate --type cert-good-standing-long --input analysis.json --organization \"Acme LLC\"",
		},
	}
}
