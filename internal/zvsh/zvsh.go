// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zvsh

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/zvsh/zvsh/internal/config"
	"github.com/zvsh/zvsh/internal/image"
	"github.com/zvsh/zvsh/internal/pipe"
	"github.com/zvsh/zvsh/internal/session"
	"github.com/zvsh/zvsh/internal/zerovm"
)

// Spec describes a single [Run].
type Spec struct {
	// Configuration files merged into the session settings. Missing files
	// are skipped.
	ConfigFiles []string

	// Guest program path and its raw arguments. Arguments prefixed with "@"
	// refer to host files or set guest environment variables.
	Program string
	Args    []string

	// Additional file system images attached to the guest.
	Images []image.Image

	// DebugLog and TraceLog attach the fixed runtime log channels in the
	// working directory.
	DebugLog bool
	TraceLog bool

	// Verbosity of the runtime inside the guest. 0 keeps it quiet.
	Verbosity int

	// SaveDir keeps the session scratch directory after the run by moving
	// it to the given path. If empty, the scratch directory is removed.
	SaveDir string

	// Gdb runs the runtime under a debugger instead of supervising it.
	// GdbArgs are passed to gdb before the generated command file.
	Gdb     bool
	GdbArgs []string

	// Path or name of the runtime binary.
	Executable string

	// Endpoint paths for the guest's stdout and stderr. If empty, named
	// pipes in the scratch directory are used.
	GuestStdout string
	GuestStderr string
}

// Run runs with the given [Spec].
//
// A session scratch directory with boot manifest and NVRAM file is built
// and the runtime is started with it. It returns no error if the runtime
// exits with code 0. The scratch directory is removed, unless
// [Spec.SaveDir] is set.
func Run(
	ctx context.Context,
	spec *Spec,
	stdin io.Reader,
	stdout, stderr io.Writer,
) error {
	settings, err := config.Load(spec.ConfigFiles...)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	terminals := session.Terminals{
		Stdin:  pipe.Terminal(stdin),
		Stdout: pipe.Terminal(stdout),
		Stderr: pipe.Terminal(stderr),
	}

	sess, err := session.New(session.Spec{
		Settings:   settings,
		Terminals:  terminals,
		StdoutPath: spec.GuestStdout,
		StderrPath: spec.GuestStderr,
	})
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	defer cleanupSession(sess, spec.SaveDir)

	slog.Debug("Created session scratch dir", slog.String("path", sess.Dir()))

	if spec.DebugLog {
		err = sess.AddDebugLog()
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
	}

	if spec.TraceLog {
		err = sess.AddTraceLog()
		if err != nil {
			return fmt.Errorf("trace log: %w", err)
		}
	}

	err = sess.SetGuestCommand(spec.Program, spec.Args)
	if err != nil {
		return fmt.Errorf("guest command: %w", err)
	}

	err = sess.AddImages(spec.Images)
	if err != nil {
		return fmt.Errorf("images: %w", err)
	}

	err = sess.WriteNVRAM(spec.Verbosity)
	if err != nil {
		return fmt.Errorf("write nvram: %w", err)
	}

	manifestPath, err := sess.WriteManifest()
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	slog.Debug("Created boot manifest", slog.String("path", manifestPath))

	if spec.Gdb {
		return runDebugger(ctx, spec, sess, manifestPath, stdin, stdout, stderr)
	}

	cmd, err := zerovm.NewCommand(zerovm.CommandSpec{
		Executable:     spec.Executable,
		Manifest:       manifestPath,
		GuestStdout:    sess.StdoutPath(),
		GuestStderr:    sess.StderrPath(),
		ScratchDir:     sess.Dir(),
		StdinTerminal:  terminals.Stdin,
		StdoutTerminal: terminals.Stdout,
	})
	if err != nil {
		return fmt.Errorf("zerovm command: %w", err)
	}

	slog.Debug("ZeroVM command", slog.String("command", cmd.String()))

	err = cmd.Run(ctx, stdin, stdout, stderr)
	if err != nil {
		return fmt.Errorf("zerovm run: %w", err)
	}

	return nil
}

func cleanupSession(sess *session.Session, saveDir string) {
	if saveDir == "" {
		removeSession(sess)
		return
	}

	err := sess.Retain(saveDir)
	if err != nil {
		slog.Error(
			"Failed to save session scratch dir",
			slog.String("path", saveDir),
			slog.Any("error", err),
		)
		removeSession(sess)

		return
	}

	slog.Debug("Saved session scratch dir", slog.String("path", saveDir))
}

func removeSession(sess *session.Session) {
	err := sess.Remove()
	if err != nil {
		slog.Error(
			"Failed to remove session scratch dir",
			slog.String("path", sess.Dir()),
			slog.Any("error", err),
		)
	}
}
