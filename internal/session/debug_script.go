// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// debugScriptTemplate is the gdb command file for debugging a guest program.
// The fixed address is where the runtime maps the guest's text segment.
const debugScriptTemplate = `set confirm off
b CreateSession
r
b main
add-symbol-file %s 0x440a00020000
shell clear
c
d br
`

// WriteDebugScript writes a gdb command file for the session's guest
// program into the scratch directory and returns its path.
func (s *Session) WriteDebugScript() (string, error) {
	program, err := filepath.Abs(s.program)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	path := filepath.Join(s.dir, "debug.scp")

	err = os.WriteFile(path, fmt.Appendf(nil, debugScriptTemplate, program), 0o644)
	if err != nil {
		return "", fmt.Errorf("write debug script: %w", err)
	}

	return path, nil
}
