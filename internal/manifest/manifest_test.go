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

func TestManifest_Render(t *testing.T) {
	limits := manifest.Limits{
		Reads:      1,
		ReadBytes:  2,
		Writes:     3,
		WriteBytes: 4,
	}

	tests := []struct {
		name        string
		input       manifest.Manifest
		expected    string
		expectedErr error
	}{
		{
			name: "complete",
			input: manifest.Manifest{
				Settings: []manifest.Setting{
					{Key: "Version", Value: "20130611"},
					{Key: "Memory", Value: "4294967296, 0"},
					{Key: "Node", Value: "1"},
					{Key: "Timeout", Value: "50"},
				},
				Program: "/home/user/guest.nexe",
				Channels: []manifest.Channel{
					{
						HostPath: "/dev/stdin",
						Device:   "/dev/stdin",
						Access:   manifest.AccessSequentialRead,
						Limits:   limits,
					},
					{
						HostPath: "/tmp/zvsh/nvram.1",
						Device:   "/dev/nvram",
						Access:   manifest.AccessRandomReadWrite,
						Limits:   limits,
					},
				},
			},
			expected: "Version = 20130611\n" +
				"Memory = 4294967296, 0\n" +
				"Node = 1\n" +
				"Timeout = 50\n" +
				"Program = /home/user/guest.nexe\n" +
				"Channel = /dev/stdin,/dev/stdin,0,0,1,2,0,0\n" +
				"Channel = /tmp/zvsh/nvram.1,/dev/nvram,3,0,1,2,3,4",
		},
		{
			name: "no channels",
			input: manifest.Manifest{
				Settings: []manifest.Setting{
					{Key: "Node", Value: "2"},
				},
				Program: "/bin/guest",
			},
			expected: "Node = 2\nProgram = /bin/guest\n",
		},
		{
			name: "no program",
			input: manifest.Manifest{
				Settings: []manifest.Setting{
					{Key: "Node", Value: "1"},
				},
			},
			expectedErr: manifest.ErrNoProgram,
		},
		{
			name: "invalid channel",
			input: manifest.Manifest{
				Program: "/bin/guest",
				Channels: []manifest.Channel{
					{
						HostPath: "/dev/stdin",
						Device:   "/dev/stdin",
						Access:   manifest.AccessClass("unknown"),
					},
				},
			},
			expectedErr: manifest.ErrAccessClassInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := tt.input.Render()
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			assert.Equal(t, tt.expected, string(actual))
		})
	}
}
