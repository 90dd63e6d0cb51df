// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zvsh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"slices"

	"github.com/zvsh/zvsh/internal/session"
	"github.com/zvsh/zvsh/internal/zerovm"
)

const debuggerExecutable = "gdb"

// runDebugger runs the runtime under gdb instead of supervising it. The
// debugger inherits the given streams, so no copying duties are set up and
// the guest's endpoints are left alone.
func runDebugger(
	ctx context.Context,
	spec *Spec,
	sess *session.Session,
	manifestPath string,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	scriptPath, err := sess.WriteDebugScript()
	if err != nil {
		return fmt.Errorf("debug script: %w", err)
	}

	executable := spec.Executable
	if executable == "" {
		executable = zerovm.DefaultExecutable
	}

	args := slices.Clone(spec.GdbArgs)
	args = append(args, "--command="+scriptPath, "--args", executable, manifestPath)

	cmd := exec.CommandContext(ctx, debuggerExecutable, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	slog.Debug("Debugger command", slog.String("command", cmd.String()))

	err = cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &zerovm.CommandError{
				Err:      zerovm.ErrNonZeroExitCode,
				ExitCode: exitErr.ExitCode(),
			}
		}

		return fmt.Errorf("gdb: %w", err)
	}

	return nil
}
