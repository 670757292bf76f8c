// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/failed-upload-helper/internal/extract"
)

// ResultsFile is the on-disk record of one extraction. It keeps the joined
// query alongside the names so a re-upload can be repeated without the
// original page dump.
type ResultsFile struct {
	Source      string    `yaml:"source"`
	ExtractedAt time.Time `yaml:"extracted_at"`
	Count       int       `yaml:"count"`
	Filenames   []string  `yaml:"filenames"`
	Query       string    `yaml:"query"`
}

// WriteResultsFile saves names extracted from source to a YAML file at path.
func WriteResultsFile(path, source string, names []string, sep string) error {
	rf := ResultsFile{
		Source:      source,
		ExtractedAt: time.Now().UTC(),
		Count:       len(names),
		Filenames:   nonNil(names),
		Query:       extract.Join(names, sep),
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling results file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultsFile loads a previously saved results file from disk.
func ReadResultsFile(path string) (*ResultsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading results file: %w", err)
	}
	var rf ResultsFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing results file: %w", err)
	}
	return &rf, nil
}
