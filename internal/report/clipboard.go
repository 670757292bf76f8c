// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/pdiddy/failed-upload-helper/internal/extract"
)

// ErrNothingToCopy is returned by CopyQuery when there are no names.
var ErrNothingToCopy = errors.New("no filenames to copy")

// clipboardWrite is replaced in tests so they never touch the real clipboard.
var clipboardWrite = clipboard.WriteAll

// CopyQuery places the joined search query on the system clipboard and
// returns the text that was copied.
func CopyQuery(names []string, sep string) (string, error) {
	if len(names) == 0 {
		return "", ErrNothingToCopy
	}
	q := extract.Join(names, sep)
	if err := clipboardWrite(q); err != nil {
		return "", fmt.Errorf("copying query: %w", err)
	}
	return q, nil
}
