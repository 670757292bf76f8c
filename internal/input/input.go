// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package input reads the saved page text that the extractor searches.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

var (
	// ErrNotFound reports that the input path does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrNotUTF8 reports that the input is not valid UTF-8 text.
	ErrNotUTF8 = errors.New("invalid UTF-8")
)

// ReadText reads the file at path and returns its contents as a string.
// A missing file wraps ErrNotFound and undecodable content wraps ErrNotUTF8;
// any other failure wraps the underlying OS error.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("reading %s: %w", path, ErrNotFound)
		}
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	if off := invalidOffset(data); off >= 0 {
		return "", fmt.Errorf("decoding %s at byte %d: %w", path, off, ErrNotUTF8)
	}
	return string(data), nil
}

// invalidOffset returns the position of the first invalid UTF-8 sequence
// in data, or -1 when data is valid.
func invalidOffset(data []byte) int {
	if utf8.Valid(data) {
		return -1
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
