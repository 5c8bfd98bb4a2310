// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"certscan/internal/dispatch"
	"certscan/internal/help"
)

func newChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks [name]",
		Short: "Show the elements each rule set requires",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			system := help.NewSystem(noColor)
			registry := dispatch.DefaultRegistry(cfg)
			for _, rs := range registry.RuleSets() {
				if provider, ok := rs.(help.Provider); ok {
					system.RegisterProvider(provider)
				}
			}

			if len(args) == 0 {
				system.ShowChecksList()
				return nil
			}
			if !system.ShowCheckHelp(args[0]) {
				return fmt.Errorf("unknown rule set %q", args[0])
			}
			return nil
		},
	}
}
