// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/failed-upload-helper/pkg/types"
)

func init() {
	color.NoColor = true
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "1.1.1")

	assert.Equal(t, ProgramName+"\nVersion: 1.1.1\n"+strings.Repeat("=", 25)+"\n", buf.String())
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)
	out := buf.String()

	assert.Contains(t, out, "Internal test found 4 file(s):")
	assert.Contains(t, out, "- document-v1.pdf\n- report-final.txt\n- my-multiline-report.pdf\n- my-special-document.pdf\n")
	assert.NotContains(t, out, "- ignorethis.txt")
	assert.Contains(t, out, "--- Internal Test Finished ---")
}

func TestResults(t *testing.T) {
	names := []string{"a.pdf", "b-2.txt"}

	tests := []struct {
		name   string
		names  []string
		format types.OutputFormat
		sep    string
		want   string
	}{
		{
			name:   "list",
			names:  names,
			format: types.FormatList,
			want:   "\nSuccessfully extracted 2 filename(s):\n- a.pdf\n- b-2.txt\n",
		},
		{
			name:   "empty format defaults to list",
			names:  names,
			format: "",
			want:   "\nSuccessfully extracted 2 filename(s):\n- a.pdf\n- b-2.txt\n",
		},
		{
			name:   "list with no names",
			names:  nil,
			format: types.FormatList,
			want:   "\nNo matching filenames were found in the file.\n",
		},
		{
			name:   "query with default separator",
			names:  names,
			format: types.FormatQuery,
			want:   "a.pdf|b-2.txt\n",
		},
		{
			name:   "query with custom separator",
			names:  names,
			format: types.FormatQuery,
			sep:    " | ",
			want:   "a.pdf | b-2.txt\n",
		},
		{
			name:   "yaml",
			names:  names,
			format: types.FormatYAML,
			want:   "- a.pdf\n- b-2.txt\n",
		},
		{
			name:   "yaml with no names",
			names:  nil,
			format: types.FormatYAML,
			want:   "[]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Results(&buf, tt.names, tt.format, tt.sep))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Results(&buf, []string{"a.pdf", "a.pdf"}, types.FormatJSON, ""))

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"a.pdf", "a.pdf"}, got)

	buf.Reset()
	require.NoError(t, Results(&buf, nil, types.FormatJSON, ""))
	assert.Equal(t, "[]\n", buf.String())
}

func TestResults_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Results(&buf, []string{"a.pdf"}, types.OutputFormat("csv"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "csv")
}

func TestResultsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.yaml")
	names := []string{"document-v1.pdf", "report-final.txt"}

	require.NoError(t, WriteResultsFile(path, "page.txt", names, ""))

	rf, err := ReadResultsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "page.txt", rf.Source)
	assert.Equal(t, 2, rf.Count)
	assert.Equal(t, names, rf.Filenames)
	assert.Equal(t, "document-v1.pdf|report-final.txt", rf.Query)
	assert.False(t, rf.ExtractedAt.IsZero())
}

func TestResultsFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "failed.yaml")
	require.NoError(t, WriteResultsFile(path, "page.txt", nil, "|"))

	rf, err := ReadResultsFile(path)
	require.NoError(t, err)
	assert.Equal(t, 0, rf.Count)
	assert.Empty(t, rf.Filenames)
	assert.Equal(t, "", rf.Query)
}

func TestReadResultsFile_Errors(t *testing.T) {
	_, err := ReadResultsFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading results file")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	data, _ := yaml.Marshal("just a string")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	_, err = ReadResultsFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing results file")
}

func TestCopyQuery(t *testing.T) {
	var copied string
	orig := clipboardWrite
	t.Cleanup(func() { clipboardWrite = orig })

	clipboardWrite = func(s string) error {
		copied = s
		return nil
	}

	q, err := CopyQuery([]string{"a.pdf", "b.txt"}, "")
	require.NoError(t, err)
	assert.Equal(t, "a.pdf|b.txt", q)
	assert.Equal(t, q, copied)

	_, err = CopyQuery(nil, "")
	assert.ErrorIs(t, err, ErrNothingToCopy)

	clipboardWrite = func(string) error { return errors.New("no xclip") }
	_, err = CopyQuery([]string{"a.pdf"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no xclip")
}
