// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cmd contains the CLI commands for the certscan application.
package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"certscan/internal/config"
	_ "certscan/internal/formatters/json"
	_ "certscan/internal/formatters/text"
	_ "certscan/internal/formatters/yaml"
)

var (
	// Global flags
	configFile string
	verbose    bool
	noColor    bool

	cfg *config.Config
)

// NewRootCmd creates a new root command instance.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "certscan",
		Short: "Validate business documents against compliance rule sets",
		Long: `certscan validates analyzed business documents (certificates, agreements,
letters) against document-type-specific compliance rule sets. It consumes
the output of the upstream document-analysis service and reports which
required elements are missing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = time.RFC3339
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}

			path := configFile
			if path == "" {
				path = config.FindConfigFile()
			}
			cfg = config.LoadConfigOrDefault(path)

			if cfg.Defaults.NoColor {
				noColor = true
			}
			// Piped output gets no color regardless of flags.
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				noColor = true
			}
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config file (default: auto-detect)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to stderr")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newChecksCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		// A failed validation already printed its report; only unexpected
		// errors get a log line.
		if !errors.Is(err, errValidationFailed) {
			log.Error().Err(err).Msg("command failed")
		}
		return err
	}
	return nil
}
