// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package bylaws

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the bylaws rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "Corporate bylaws",
		DetailedDescription: `Validates corporate bylaws: the bylaws title (any of its three common
spellings) plus an adoption or amendment date.`,
		DocumentTypes: []string{"bylaws"},
		RequiredElements: []string{
			"Bylaws title",
			"Adoption or amendment date",
		},
		Examples: []string{
			"certscan validate --type bylaws --input analysis.json",
		},
	}
}
