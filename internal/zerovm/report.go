// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zerovm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// binaryProbeSize is the number of leading bytes examined to decide whether
// a file is dumped as text.
const binaryProbeSize = 1024

// dumpFailure writes the content of every regular file in the scratch
// directory, sorted by name, followed by the runtime report and the final
// error line. Binary files are only mentioned by path.
func dumpFailure(w io.Writer, dir string, report []byte, exitCode int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		entries = nil
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		if isBinary(data) {
			fmt.Fprintf(w, "%s is a binary file\n", path)
			continue
		}

		separator := strings.Repeat("-", 10)
		fmt.Fprintf(w, "%s%s%s\n%s\n%s\n",
			separator, entry.Name(), separator, data, strings.Repeat("-", 25))
	}

	_, _ = w.Write(report)

	fmt.Fprintf(w, "ERROR: ZeroVM return code is %d\n", exitCode)
}

// isBinary reports whether the first kilobyte contains bytes that do not
// occur in text output.
func isBinary(data []byte) bool {
	if len(data) > binaryProbeSize {
		data = data[:binaryProbeSize]
	}

	for _, b := range data {
		if b >= 0x20 {
			continue
		}

		switch b {
		case '\a', '\b', '\t', '\n', '\f', '\r', 0x1b:
			continue
		}

		return true
	}

	return false
}
