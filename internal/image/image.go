// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package image

import "strings"

const (
	// DefaultMountpoint is used if an image spec does not name one.
	DefaultMountpoint = "/"
	// DefaultAccess is used if an image spec does not name an access mode.
	DefaultAccess = "ro"
)

// Image is a filesystem image to be mounted into the guest.
type Image struct {
	// Path of the image file on the host.
	Path string
	// Mountpoint in the guest filesystem.
	Mountpoint string
	// Access mode the guest gets, usually "ro" or "rw".
	Access string
}

// ParseSpec parses an image spec of the form "path[,mountpoint[,access]]".
//
// Missing or empty fields fall back to [DefaultMountpoint] and
// [DefaultAccess]. Surplus fields are ignored.
func ParseSpec(spec string) Image {
	img := Image{
		Mountpoint: DefaultMountpoint,
		Access:     DefaultAccess,
	}

	fields := strings.Split(spec, ",")

	img.Path = fields[0]

	if len(fields) > 1 && fields[1] != "" {
		img.Mountpoint = fields[1]
	}

	if len(fields) > 2 && fields[2] != "" {
		img.Access = fields[2]
	}

	return img
}

// String implements [fmt.Stringer].
func (i Image) String() string {
	return strings.Join([]string{i.Path, i.Mountpoint, i.Access}, ",")
}
