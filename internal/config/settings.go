// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"slices"
	"strconv"
	"strings"

	"github.com/zvsh/zvsh/internal/manifest"
)

// Built-in manifest defaults. They describe a single node session with 4 GiB
// of guest memory.
const (
	DefaultVersion = "20130611"
	DefaultMemory  = "4294967296, 0"
	DefaultNode    = 1
	DefaultTimeout = 50
)

// Mount declares an image file to be mounted into the guest filesystem.
type Mount struct {
	Path       string
	Mountpoint string
	Access     string
}

// Settings is the merged launcher configuration.
type Settings struct {
	// Manifest format version.
	Version string
	// Guest memory size and eTag flag, verbatim manifest value.
	Memory string
	// Node number. It is used in the names of the session artifacts.
	Node int
	// Guest timeout in seconds.
	Timeout int
	// Additional manifest settings not interpreted by the launcher.
	Extra []manifest.Setting
	// IO quotas applied to all channels.
	Limits manifest.Limits
	// Guest environment entries.
	Env map[string]string
	// Image mounts from the configuration files.
	Mounts []Mount
}

// NewSettings returns [Settings] with the built-in defaults applied.
func NewSettings() Settings {
	return Settings{
		Version: DefaultVersion,
		Memory:  DefaultMemory,
		Node:    DefaultNode,
		Timeout: DefaultTimeout,
		Limits:  manifest.DefaultLimits(),
		Env:     map[string]string{},
	}
}

// ManifestSettings returns the global settings entries for the boot
// manifest. The well-known settings come first, additional ones follow
// sorted by key.
func (s *Settings) ManifestSettings() []manifest.Setting {
	entries := []manifest.Setting{
		{Key: "Version", Value: s.Version},
		{Key: "Memory", Value: s.Memory},
		{Key: "Node", Value: strconv.Itoa(s.Node)},
		{Key: "Timeout", Value: strconv.Itoa(s.Timeout)},
	}

	extra := slices.Clone(s.Extra)
	slices.SortFunc(extra, func(a, b manifest.Setting) int {
		return strings.Compare(a.Key, b.Key)
	})

	return append(entries, extra...)
}

func (s *Settings) setExtra(key, value string) {
	for i, entry := range s.Extra {
		if entry.Key == key {
			s.Extra[i].Value = value
			return
		}
	}

	s.Extra = append(s.Extra, manifest.Setting{Key: key, Value: value})
}
