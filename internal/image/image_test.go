// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package image_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zvsh/zvsh/internal/image"
)

func TestParseSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected image.Image
	}{
		{
			input: "rootfs.tar",
			expected: image.Image{
				Path:       "rootfs.tar",
				Mountpoint: "/",
				Access:     "ro",
			},
		},
		{
			input: "data.tar,/data",
			expected: image.Image{
				Path:       "data.tar",
				Mountpoint: "/data",
				Access:     "ro",
			},
		},
		{
			input: "data.tar,/data,rw",
			expected: image.Image{
				Path:       "data.tar",
				Mountpoint: "/data",
				Access:     "rw",
			},
		},
		{
			// Empty fields keep their defaults.
			input: "data.tar,,rw",
			expected: image.Image{
				Path:       "data.tar",
				Mountpoint: "/",
				Access:     "rw",
			},
		},
		{
			// Surplus fields are ignored.
			input: "data.tar,/data,rw,extra",
			expected: image.Image{
				Path:       "data.tar",
				Mountpoint: "/data",
				Access:     "rw",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, image.ParseSpec(tt.input))
		})
	}
}

func TestImage_String(t *testing.T) {
	img := image.Image{
		Path:       "data.tar",
		Mountpoint: "/data",
		Access:     "rw",
	}

	assert.Equal(t, "data.tar,/data,rw", img.String())
}
