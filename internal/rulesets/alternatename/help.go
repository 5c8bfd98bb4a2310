// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package alternatename

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the alternate-name
// rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "NJ certificate of alternate name",
		DetailedDescription: `Validates a certificate of alternate name (or its registration/renewal
variants) filed with the NJ Division of Revenue. The registering entity's
name printed below the title is reconciled against the caller-supplied
organization name.`,
		DocumentTypes: []string{"cert-alternative-name"},
		RequiredElements: []string{
			"Certificate of alternate name title (or registration/renewal variant)",
			"Division of Revenue",
			"Treasury filing stamp",
		},
		Examples: []string{
			"certscan validate --type cert-alternative-name --input analysis.json --organization \"Acme LLC\"",
		},
	}
}
