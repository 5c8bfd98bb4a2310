// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package tradename

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the trade-name rule
// set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "County certificate of trade name",
		DetailedDescription: `Validates a certificate of trade name filed with a county clerk. County
layouts vary too much for structural checks, so only the certificate title
is required.`,
		DocumentTypes: []string{"cert-trade-name"},
		RequiredElements: []string{
			"Certificate of trade name title",
		},
		Examples: []string{
			"certscan validate --type cert-trade-name --input analysis.json",
		},
	}
}
