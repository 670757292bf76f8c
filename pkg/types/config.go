// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration shared by the CLI and its stages.
package types

import "fmt"

// OutputFormat selects how extracted filenames are printed.
type OutputFormat string

const (
	// FormatList prints a count followed by one "- name" line per file.
	FormatList OutputFormat = "list"
	// FormatQuery prints the names joined into one search-tool query.
	FormatQuery OutputFormat = "query"
	// FormatJSON prints the names as a JSON array.
	FormatJSON OutputFormat = "json"
	// FormatYAML prints the names as a YAML sequence.
	FormatYAML OutputFormat = "yaml"
)

// ParseOutputFormat validates s. An empty string means FormatList.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case "":
		return FormatList, nil
	case FormatList, FormatQuery, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want list, query, json, or yaml)", s)
	}
}

// Config holds settings for one extraction run.
type Config struct {
	// Format selects the result layout (default list).
	Format OutputFormat `json:"format" yaml:"format"`

	// Separator joins names into a search query (default "|").
	Separator string `json:"separator" yaml:"separator"`

	// Demo controls whether the built-in sample is run before the file.
	Demo bool `json:"demo" yaml:"demo"`

	// Copy places the joined query on the system clipboard.
	Copy bool `json:"copy" yaml:"copy"`

	// SavePath, when set, is where the YAML results file is written.
	SavePath string `json:"save_path,omitempty" yaml:"save_path,omitempty"`

	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`
}
