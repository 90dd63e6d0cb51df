// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package pipe

import "golang.org/x/term"

// Terminal reports whether the given stream is attached to a terminal.
//
// It returns false for streams that do not expose a file descriptor.
func Terminal(stream any) bool {
	file, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
