// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders validation reports in the output formats the
// CLI supports. Formatters register themselves during package
// initialization.
package formatters

import (
	"sort"

	"certscan/internal/report"
)

// FormatterOptions defines configuration options for formatters.
type FormatterOptions struct {
	Verbose bool // Whether to include suggested actions and document info
	NoColor bool // Whether to disable colored output
}

// Formatter is implemented by every output format.
type Formatter interface {
	// Format renders the report.
	Format(r *report.ValidationReport, options FormatterOptions) (string, error)

	// Name returns the format name (e.g., "json", "text").
	Name() string

	// Description returns a brief description of the output.
	Description() string

	// FileExtension returns the recommended file extension.
	FileExtension() string
}

// Registry holds registered formatters.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty formatter registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter to the registry.
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns registered formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get retrieves a formatter from the default registry.
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List returns the default registry's formatter names.
func List() []string {
	return DefaultRegistry.List()
}
