// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package incorporation

import "certscan/internal/help"

// GetCheckInfo returns standardized information about the incorporation
// rule set.
func (v *Validator) GetCheckInfo() help.CheckInfo {
	return help.CheckInfo{
		Name:             v.Name(),
		ShortDescription: "Certificate of incorporation",
		DetailedDescription: `Validates a certificate of incorporation: the title plus a mention of the
corporation's directors, incorporators, trustees, or shareholders.`,
		DocumentTypes: []string{"cert-incorporation"},
		RequiredElements: []string{
			"Certificate of incorporation title",
			"Directors, incorporators, trustees, or shareholders mention",
		},
		Examples: []string{
			"certscan validate --type cert-incorporation --input analysis.json",
		},
	}
}
