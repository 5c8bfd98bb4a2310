// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package operatingagreement

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the
// operating-agreement rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "LLC operating agreement",
		DetailedDescription: `Validates an executed LLC operating agreement: title, member signature
evidence, an execution or effective date, and a New Jersey reference.`,
		DocumentTypes: []string{"operating-agreement"},
		RequiredElements: []string{
			"Operating agreement title",
			"Member signature evidence",
			"Execution or effective date",
			"New Jersey reference",
		},
		Examples: []string{
			"certscan validate --type operating-agreement --input analysis.json",
		},
	}
}
