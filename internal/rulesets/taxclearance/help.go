// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package taxclearance

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the tax clearance
// rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	info := help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "NJ Division of Taxation tax clearance certificate",
		DetailedDescription: `Validates a tax clearance certificate issued for business assistance or
incentive programs. The certificate must come from the NJ Division of
Taxation, carry its serial number and an authorized official's signature,
and be dated within the last six months. The organization name printed
above the certificate title is reconciled against the name supplied by the
caller, and the applicant ID is cross-checked against the last three digits
of the supplied FEIN.`,
		DocumentTypes: []string{"tax-clearance-online"},
		RequiredElements: []string{
			"Clearance certificate title",
			"Certificate serial number",
			"State of New Jersey",
			"Department of the Treasury",
			"Division of Taxation",
			"Date within the last six months",
			"Authorized official's signature",
		},
		RejectedElements: []string{
			"Department of Environmental Protection as issuer",
		},
		Examples: []string{
			"certscan validate --type tax-clearance-online --input analysis.json --organization \"Acme LLC\" --fein 123456789",
		},
	}
	if v.variant == Manual {
		info.DocumentTypes = []string{"tax-clearance-manual"}
		info.RequiredElements = append(info.RequiredElements, "BATC manual-issuance marker")
		info.Examples = []string{
			"certscan validate --type tax-clearance-manual --input analysis.json --organization \"Acme LLC\"",
		}
	}
	return info
}
