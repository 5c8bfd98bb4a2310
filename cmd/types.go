// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"certscan/internal/dispatch"
)

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported document types",
		Run: func(cmd *cobra.Command, args []string) {
			registry := dispatch.DefaultRegistry(cfg)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, tag := range registry.Types() {
				rs, _ := registry.Get(tag)
				fmt.Fprintf(w, "  %s\t%s\n", tag, rs.Description())
			}
			w.Flush()
		},
	}
}
