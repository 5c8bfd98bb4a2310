// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"certscan/internal/dispatch"
	"certscan/internal/document"
	"certscan/internal/formatters"
	"certscan/internal/report"
)

// errValidationFailed signals a completed validation whose outcome is
// "failed". It maps to exit code 1 without printing a second error line.
var errValidationFailed = errors.New("validation failed")

func newValidateCmd() *cobra.Command {
	var (
		documentType string
		inputFile    string
		organization string
		fein         string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an analyzed document against its rule set",
		Long: `Validate reads a document-analysis result (JSON produced by the upstream
analysis service), runs the rule set for the given document type, and
prints the validation report. Exits non-zero when the document fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := document.LoadAnalysisFile(inputFile)
			if err != nil {
				return err
			}

			if format == "" {
				format = cfg.Defaults.Format
			}
			formatter, ok := formatters.Get(format)
			if !ok {
				return fmt.Errorf("unknown output format %q (available: %v)", format, formatters.List())
			}

			registry := dispatch.DefaultRegistry(cfg)
			fields := document.UserFields{
				OrganizationName: organization,
				FEIN:             fein,
			}

			outcome := registry.Validate(documentType, content, fields)
			result := report.Build(documentType, content, outcome)

			output, err := formatter.Format(result, formatters.FormatterOptions{
				Verbose: verbose || cfg.Defaults.Verbose,
				NoColor: noColor,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)

			if !result.Success {
				log.Debug().Strs("missing", result.MissingElements).Msg("document failed validation")
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&documentType, "type", "t", "", "Document type tag (see 'certscan types')")
	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to the document-analysis JSON file")
	cmd.Flags().StringVarP(&organization, "organization", "o", "", "Organization name to reconcile against the document")
	cmd.Flags().StringVar(&fein, "fein", "", "FEIN to cross-check against the document's applicant ID")
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json, or yaml")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("input")

	return cmd
}
