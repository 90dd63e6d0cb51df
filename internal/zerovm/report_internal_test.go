// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zerovm

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBinary(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected bool
	}{
		{
			name:  "empty",
			input: []byte{},
		},
		{
			name:  "plain text",
			input: []byte("Version = 20130611\nNode = 1\n"),
		},
		{
			name:  "text control characters",
			input: []byte("bell\a backspace\b tab\t feed\f return\r escape\x1b"),
		},
		{
			name:  "high bytes",
			input: []byte{0xc3, 0xa4, 0xff, 0x7f},
		},
		{
			name:     "nul byte",
			input:    []byte{'E', 'L', 'F', 0x00},
			expected: true,
		},
		{
			name:     "vertical tab",
			input:    []byte{0x0b},
			expected: true,
		},
		{
			// Binary bytes beyond the probe are not examined.
			name:  "late binary byte",
			input: append(bytes.Repeat([]byte("a"), 1024), 0x00),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isBinary(tt.input))
		})
	}
}

func TestDumpFailure(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "manifest.1"), []byte("Node = 1"), 0o644)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "boot.1"), []byte{0x7f, 'E', 'L', 'F', 0x00}, 0o644)
	require.NoError(t, err)

	err = os.Mkdir(filepath.Join(dir, "subdir"), 0o755)
	require.NoError(t, err)

	var buf bytes.Buffer

	dumpFailure(&buf, dir, []byte("report line\n"), 9)

	expected := filepath.Join(dir, "boot.1") + " is a binary file\n" +
		"----------manifest.1----------\n" +
		"Node = 1\n" +
		strings.Repeat("-", 25) + "\n" +
		"report line\n" +
		"ERROR: ZeroVM return code is 9\n"

	assert.Equal(t, expected, buf.String())
}

func TestDumpFailure_MissingDir(t *testing.T) {
	var buf bytes.Buffer

	dumpFailure(&buf, filepath.Join(t.TempDir(), "missing"), nil, 1)

	assert.Equal(t, "ERROR: ZeroVM return code is 1\n", buf.String())
}
