// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract recovers failed-upload filenames from pasted page text.
// Each filename sits somewhere after a loading spinner marker in the
// rendered page body; Extract returns the first .txt or .pdf name that
// follows each marker, in page order.
package extract

import (
	"regexp"
	"strings"
)

// Marker is the literal text that precedes every failed upload entry.
const Marker = "loading-spinner-container"

// DefaultSeparator joins names into a search-tool query (Everything accepts
// "a|b|c" as an OR query).
const DefaultSeparator = "|"

// wordClass is a Unicode word character: letter, mark, number, or
// underscore. RE2's \w and \b only know ASCII.
const wordClass = `\p{L}\p{M}\p{N}_`

// filenamePattern matches a word/hyphen run ending in .txt or .pdf. The
// name starts at a word character and is bounded by non-word characters or
// the segment ends; group 1 holds the name without the boundary runes.
// RE2 guarantees linear-time matching, and splitting on Marker first keeps
// each search scoped to one segment.
var filenamePattern = regexp.MustCompile(
	`(?:^|[^` + wordClass + `])` +
		`([` + wordClass + `][` + wordClass + `\-]*\.(?:txt|pdf))` +
		`(?:$|[^` + wordClass + `])`)

// Extract returns the first filename found after each occurrence of Marker.
// Text before the first marker is ignored, and a segment with no filename
// contributes nothing. The result is never nil.
func Extract(text string) []string {
	segments := strings.Split(text, Marker)

	found := make([]string, 0, len(segments)-1)
	for _, seg := range segments[1:] {
		if m := filenamePattern.FindStringSubmatch(seg); m != nil {
			found = append(found, m[1])
		}
	}
	return found
}

// Count returns the number of Marker occurrences in text.
func Count(text string) int {
	return strings.Count(text, Marker)
}

// Join builds a search query from names. An empty sep means
// DefaultSeparator. Duplicates are kept.
func Join(names []string, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Join(names, sep)
}
