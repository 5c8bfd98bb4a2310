// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package help renders rule-set documentation for the CLI: which document
// types exist and which elements each rule set requires.
package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// CheckInfo contains standardized information about one rule set.
type CheckInfo struct {
	Name                string   // Rule set name (e.g., "TAX_CLEARANCE")
	ShortDescription    string   // One-line summary for the listing
	DetailedDescription string   // What the rule set validates and why
	DocumentTypes       []string // Document-type tags dispatched to it
	RequiredElements    []string // Elements the document must contain
	RejectedElements    []string // Elements that must NOT appear
	Examples            []string // CLI usage examples
}

// Provider is implemented by every rule-set package.
type Provider interface {
	GetCheckInfo() CheckInfo
}

// System collects providers and renders help output.
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a help system. Colors are disabled when noColor is set.
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}
	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"item":     color.New(color.FgCyan),
			"positive": color.New(color.FgGreen),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a rule set's help content.
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetCheckInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowChecksList prints a table of all registered rule sets.
func (h *System) ShowChecksList() {
	h.colors["title"].Println("Available document rule sets:")
	fmt.Println()

	names := make([]string, 0, len(h.providers))
	for name := range h.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		info := h.providers[name].GetCheckInfo()
		fmt.Fprintf(w, "  %s\t%s\t%s\n",
			info.Name,
			strings.Join(info.DocumentTypes, ","),
			info.ShortDescription)
	}
	w.Flush()
}

// ShowCheckHelp prints detailed help for one rule set. Returns false when
// the name is unknown.
func (h *System) ShowCheckHelp(name string) bool {
	provider, ok := h.providers[strings.ToLower(name)]
	if !ok {
		return false
	}
	info := provider.GetCheckInfo()

	h.colors["title"].Printf("%s\n\n", info.Name)
	fmt.Println(info.DetailedDescription)
	fmt.Println()

	if len(info.DocumentTypes) > 0 {
		h.colors["header"].Println("Document types:")
		for _, t := range info.DocumentTypes {
			h.colors["item"].Printf("  %s\n", t)
		}
		fmt.Println()
	}

	if len(info.RequiredElements) > 0 {
		h.colors["header"].Println("Required elements:")
		for _, e := range info.RequiredElements {
			h.colors["positive"].Printf("  + %s\n", e)
		}
		fmt.Println()
	}

	if len(info.RejectedElements) > 0 {
		h.colors["header"].Println("Must not appear:")
		for _, e := range info.RejectedElements {
			h.colors["negative"].Printf("  - %s\n", e)
		}
		fmt.Println()
	}

	if len(info.Examples) > 0 {
		h.colors["header"].Println("Examples:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
	}
	return true
}
