// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package irsdetermination

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the IRS
// determination letter rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "IRS determination letter",
		DetailedDescription: `Validates an IRS determination letter: IRS or Treasury letterhead plus
the director's closing signature cue.`,
		DocumentTypes: []string{"irs-determination"},
		RequiredElements: []string{
			"IRS or Treasury letterhead",
			"Director's closing signature",
		},
		Examples: []string{
			"certscan validate --type irs-determination --input analysis.json",
		},
	}
}
