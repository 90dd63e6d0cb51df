// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import (
	"fmt"
	"strings"
)

// Setting is a single global manifest setting, like "Version" or "Memory".
type Setting struct {
	Key   string
	Value string
}

// Manifest is a complete ZeroVM boot manifest.
type Manifest struct {
	// Global settings in the order they are written.
	Settings []Setting
	// Absolute path of the guest program on the host.
	Program string
	// Channels in the order the runtime opens them.
	Channels []Channel
}

// Render returns the manifest serialized in the format the runtime parses.
// The last channel line is not newline terminated.
func (m *Manifest) Render() ([]byte, error) {
	if m.Program == "" {
		return nil, ErrNoProgram
	}

	var sb strings.Builder

	for _, setting := range m.Settings {
		fmt.Fprintf(&sb, "%s = %s\n", setting.Key, setting.Value)
	}

	fmt.Fprintf(&sb, "Program = %s\n", m.Program)

	lines := make([]string, 0, len(m.Channels))

	for _, channel := range m.Channels {
		line, err := channel.Line()
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", channel.Device, err)
		}

		lines = append(lines, line)
	}

	sb.WriteString(strings.Join(lines, "\n"))

	return []byte(sb.String()), nil
}
