// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvsh/zvsh/internal/manifest"
)

func TestAccessClass_MarshalText(t *testing.T) {
	tests := []struct {
		input       manifest.AccessClass
		expected    string
		expectedErr error
	}{
		{
			input:    manifest.AccessSequentialRead,
			expected: "seq-read",
		},
		{
			input:    manifest.AccessSequentialWrite,
			expected: "seq-write",
		},
		{
			input:    manifest.AccessRandomReadWrite,
			expected: "random-rw",
		},
		{
			input:    manifest.AccessRandomReadOnly,
			expected: "random-ro",
		},
		{
			input:       manifest.AccessClass("unknown"),
			expectedErr: manifest.ErrAccessClassInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			actual, err := tt.input.MarshalText()
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, string(actual))
		})
	}
}

func TestAccessClass_UnmarshalText(t *testing.T) {
	tests := []struct {
		input       string
		expected    manifest.AccessClass
		expectedErr error
	}{
		{
			input:    "seq-read",
			expected: manifest.AccessSequentialRead,
		},
		{
			input:    "seq-write",
			expected: manifest.AccessSequentialWrite,
		},
		{
			input:    "random-rw",
			expected: manifest.AccessRandomReadWrite,
		},
		{
			input:    "random-ro",
			expected: manifest.AccessRandomReadOnly,
		},
		{
			input:       "unknown",
			expectedErr: manifest.ErrAccessClassInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var actual manifest.AccessClass

			err := actual.UnmarshalText([]byte(tt.input))
			require.ErrorIs(t, err, tt.expectedErr)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
