// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zerovm

import "errors"

var (
	// ErrNonZeroExitCode is returned if the runtime did not exit with code 0.
	ErrNonZeroExitCode = errors.New("exit code not 0")

	// ErrNoManifest is returned if a command is created without a boot
	// manifest.
	ErrNoManifest = errors.New("no boot manifest given")
)

// CommandError wraps any error occurred during runtime execution.
type CommandError struct {
	Err      error
	ExitCode int
}

// Error implements the [error] interface.
func (e *CommandError) Error() string {
	return "zerovm: " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*CommandError) Is(other error) bool {
	_, ok := other.(*CommandError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CommandError) Unwrap() error {
	return e.Err
}
