// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"certscan/internal/formatters"
	"certscan/internal/report"
)

// Formatter implements human-readable text output.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"pass":   color.New(color.FgGreen, color.Bold),
			"fail":   color.New(color.FgRed, color.Bold),
			"item":   color.New(color.FgRed),
			"action": color.New(color.FgYellow),
			"header": color.New(color.FgCyan),
			"dim":    color.New(color.Faint),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// Format renders the report for a terminal. Verbose adds suggested actions
// and document metadata.
func (f *Formatter) Format(r *report.ValidationReport, options formatters.FormatterOptions) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var b strings.Builder

	if r.Success {
		b.WriteString(f.colors["pass"].Sprint("PASSED"))
		fmt.Fprintf(&b, "  %s meets all requirements\n", r.DocumentInfo.DocumentType)
	} else {
		b.WriteString(f.colors["fail"].Sprint("FAILED"))
		fmt.Fprintf(&b, "  %s: %d missing element(s)\n", r.DocumentInfo.DocumentType, len(r.MissingElements))
	}

	if len(r.MissingElements) > 0 {
		b.WriteString("\n")
		b.WriteString(f.colors["header"].Sprint("Missing elements:"))
		b.WriteString("\n")
		for _, element := range r.MissingElements {
			fmt.Fprintf(&b, "  %s %s\n", f.colors["item"].Sprint("✗"), element)
		}
	}

	if options.Verbose && len(r.SuggestedActions) > 0 {
		b.WriteString("\n")
		b.WriteString(f.colors["header"].Sprint("Suggested actions:"))
		b.WriteString("\n")
		for _, action := range r.SuggestedActions {
			fmt.Fprintf(&b, "  %s %s\n", f.colors["action"].Sprint("→"), action)
		}
	}

	if !r.OrganizationNameMatches {
		b.WriteString("\n")
		b.WriteString(f.colors["fail"].Sprint("Organization name does not match"))
		b.WriteString("\n")
	}

	if options.Verbose {
		b.WriteString("\n")
		b.WriteString(f.colors["header"].Sprint("Document info:"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Pages: %d, Words: %d\n", r.DocumentInfo.PageCount, r.DocumentInfo.WordCount)
		if r.DocumentInfo.DetectedOrganizationName != nil {
			fmt.Fprintf(&b, "  Detected organization: %s\n", *r.DocumentInfo.DetectedOrganizationName)
		}
		if r.DocumentInfo.ContainsHandwriting {
			b.WriteString(f.colors["dim"].Sprint("  Document contains handwriting\n"))
		}
		if len(r.DocumentInfo.LanguageInfo) > 0 {
			fmt.Fprintf(&b, "  Languages: %s\n", strings.Join(r.DocumentInfo.LanguageInfo, ", "))
		}
	}

	return b.String(), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
