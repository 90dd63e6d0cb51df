// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package nvram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zvsh/zvsh/internal/nvram"
)

func TestBlob_Render(t *testing.T) {
	tests := []struct {
		name     string
		input    nvram.Blob
		expected string
	}{
		{
			name: "args only",
			input: nvram.Blob{
				Args: []string{"guest.nexe", "-v"},
			},
			expected: "[args]\nargs = guest.nexe -v\n",
		},
		{
			name: "args with commas",
			input: nvram.Blob{
				Args: []string{"guest.nexe", "a,b", "c"},
			},
			expected: "[args]\nargs = guest.nexe a\\x2cb c\n",
		},
		{
			name: "complete",
			input: nvram.Blob{
				Args: []string{"guest.nexe", "/dev/1.input"},
				Env: []nvram.Entry{
					{Name: "LANG", Value: "C"},
					{Name: "PATH", Value: "/bin,/usr/bin"},
				},
				Mounts: []nvram.Mount{
					{Channel: "/dev/2.image.tar", Mountpoint: "/", Access: "ro"},
				},
				Mappings: []nvram.Mapping{
					{Channel: "/dev/stdin"},
					{Channel: "/dev/stdout"},
				},
				Verbosity: 4,
			},
			expected: "[args]\n" +
				"args = guest.nexe /dev/1.input\n" +
				"[env]\n" +
				"name=LANG,value=C\n" +
				"name=PATH,value=/bin\\x2c/usr/bin\n" +
				"[fstab]\n" +
				"channel=/dev/2.image.tar,mountpoint=/,access=ro,removable=no\n" +
				"[mapping]\n" +
				"channel=/dev/stdin,mode=char\n" +
				"channel=/dev/stdout,mode=char\n" +
				"[debug]\n" +
				"verbosity=4\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, string(tt.input.Render()))
		})
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no comma",
			input:    "plain",
			expected: "plain",
		},
		{
			name:     "single comma",
			input:    "a,b",
			expected: `a\x2cb`,
		},
		{
			name:     "only commas",
			input:    ",,",
			expected: `\x2c\x2c`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := nvram.Escape(tt.input)
			assert.Equal(t, tt.expected, actual)

			assert.Equal(t, tt.input, nvram.Unescape(actual))
		})
	}
}
