// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package nvram

import (
	"fmt"
	"strings"
)

// Entry is a single guest environment variable.
type Entry struct {
	Name  string
	Value string
}

// Mount attaches the image behind a channel to the guest filesystem.
type Mount struct {
	Channel    string
	Mountpoint string
	Access     string
}

// Mapping marks a channel as attached to a terminal so the bootstrap puts
// the device into character mode.
type Mapping struct {
	Channel string
}

// Blob is the content of a session's NVRAM file.
type Blob struct {
	// Guest argument vector, including the program name.
	Args []string
	// Guest environment entries.
	Env []Entry
	// Image mounts.
	Mounts []Mount
	// Terminal mappings.
	Mappings []Mapping
	// Verbosity of the guest side debug output. Zero omits the section.
	Verbosity int
}

// Render returns the blob serialized in the format the bootstrap parses.
// Sections without content are omitted, except for [args] which is always
// present.
func (b *Blob) Render() []byte {
	var sb strings.Builder

	args := make([]string, 0, len(b.Args))
	for _, arg := range b.Args {
		args = append(args, Escape(arg))
	}

	sb.WriteString("[args]\n")
	fmt.Fprintf(&sb, "args = %s\n", strings.Join(args, " "))

	if len(b.Env) > 0 {
		sb.WriteString("[env]\n")

		for _, entry := range b.Env {
			fmt.Fprintf(&sb, "name=%s,value=%s\n", entry.Name, Escape(entry.Value))
		}
	}

	if len(b.Mounts) > 0 {
		sb.WriteString("[fstab]\n")

		for _, mount := range b.Mounts {
			fmt.Fprintf(&sb, "channel=%s,mountpoint=%s,access=%s,removable=no\n",
				mount.Channel, mount.Mountpoint, mount.Access)
		}
	}

	if len(b.Mappings) > 0 {
		sb.WriteString("[mapping]\n")

		for _, mapping := range b.Mappings {
			fmt.Fprintf(&sb, "channel=%s,mode=char\n", mapping.Channel)
		}
	}

	if b.Verbosity != 0 {
		sb.WriteString("[debug]\n")
		fmt.Fprintf(&sb, "verbosity=%d\n", b.Verbosity)
	}

	return []byte(sb.String())
}
