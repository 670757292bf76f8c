// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders extraction runs for the terminal: the program
// header, the built-in demonstration, and the filenames recovered from a
// page dump in list, query, JSON, or YAML form.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/failed-upload-helper/internal/extract"
	"github.com/pdiddy/failed-upload-helper/pkg/types"
)

// ProgramName is printed in the header.
const ProgramName = "Failed Upload Helper"

// Header writes the program name, version, and a rule.
func Header(w io.Writer, version string) {
	fmt.Fprintln(w, color.CyanString(ProgramName))
	fmt.Fprintf(w, "Version: %s\n", version)
	fmt.Fprintln(w, strings.Repeat("=", 25))
}

// Demo runs the extractor over extract.Sample and lists what it found.
func Demo(w io.Writer) {
	fmt.Fprintln(w, color.YellowString("--- Running Internal Test Case ---"))
	fmt.Fprint(w, "Searching in the following test text:\n"+extract.Sample+"\n")

	names := extract.Extract(extract.Sample)
	if len(names) == 0 {
		fmt.Fprintln(w, "Internal test found no matching files.")
	} else {
		fmt.Fprintf(w, "Internal test found %d file(s):\n", len(names))
		writeList(w, names)
	}
	fmt.Fprintln(w, color.YellowString("--- Internal Test Finished ---"))
	fmt.Fprintln(w)
}

// Results writes names in the given format. sep is used by FormatQuery.
func Results(w io.Writer, names []string, format types.OutputFormat, sep string) error {
	switch format {
	case types.FormatList, "":
		if len(names) == 0 {
			fmt.Fprintln(w, "\nNo matching filenames were found in the file.")
			return nil
		}
		fmt.Fprintf(w, "\nSuccessfully extracted %d filename(s):\n", len(names))
		writeList(w, names)
	case types.FormatQuery:
		fmt.Fprintln(w, extract.Join(names, sep))
	case types.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(nonNil(names)); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
	case types.FormatYAML:
		data, err := yaml.Marshal(nonNil(names))
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

func writeList(w io.Writer, names []string) {
	for _, n := range names {
		fmt.Fprintf(w, "- %s\n", n)
	}
}

// nonNil makes empty results encode as [] rather than null.
func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
