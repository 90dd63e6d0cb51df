// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package zerovm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zvsh/zvsh/internal/pipe"
)

// DefaultExecutable is the runtime binary used if none is configured.
const DefaultExecutable = "zerovm"

// CommandSpec defines the parameters for a [Command].
type CommandSpec struct {
	// Path or name of the runtime binary.
	Executable string
	// Path of the boot manifest.
	Manifest string
	// Host paths of the guest's stdout and stderr channel endpoints.
	GuestStdout string
	GuestStderr string
	// Directory with the session artifacts. Its files are written to stderr
	// when the runtime reports a failure.
	ScratchDir string
	// Terminal state of the invoking process. A terminal selects line
	// buffered instead of chunked copying for the related stream.
	StdinTerminal  bool
	StdoutTerminal bool
}

// Command is a single runtime invocation.
type Command struct {
	spec CommandSpec
}

// NewCommand creates a new [Command] for the given spec.
func NewCommand(spec CommandSpec) (*Command, error) {
	if spec.Manifest == "" {
		return nil, ErrNoManifest
	}

	if spec.Executable == "" {
		spec.Executable = DefaultExecutable
	}

	return &Command{spec: spec}, nil
}

// Args returns the argument vector of the command.
func (c *Command) Args() []string {
	return []string{c.spec.Executable, c.spec.Manifest}
}

// String implements [fmt.Stringer].
func (c *Command) String() string {
	return strings.Join(c.Args(), " ")
}

// Run executes the command and supervises it until the runtime exits.
//
// Four duties run concurrently: the given stdin is fed to the runtime, the
// runtime's own stdout is captured as the report, and the guest's stdout and
// stderr endpoints are relayed to the given writers.
//
// The report is always collected completely. The relays are joined only
// after a clean exit. A failed runtime may never have opened its endpoints,
// so their relays would block forever and are abandoned instead. On failure
// the session artifacts and the report are dumped to stderr and a
// [CommandError] carrying the exit code is returned.
func (c *Command) Run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, c.spec.Executable, c.spec.Manifest)
	cmd.Stderr = stderr

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}

	reportRead, reportWrite, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("report pipe: %w", err)
	}

	cmd.Stdout = reportWrite

	err = cmd.Start()
	if err != nil {
		_ = reportRead.Close()
		_ = reportWrite.Close()

		return fmt.Errorf("start: %w", err)
	}

	// The child holds its own copy of the write end now.
	_ = reportWrite.Close()

	go feed(stdinPipe, stdin, c.stdinCopyFunc())

	var report bytes.Buffer

	reportDone := make(chan struct{})

	go func() {
		defer close(reportDone)
		defer reportRead.Close()

		_, _ = pipe.Chunked(&report, reportRead)
	}()

	relays := errgroup.Group{}
	relays.Go(func() error {
		return relay(c.spec.GuestStdout, stdout, c.stdoutCopyFunc())
	})
	relays.Go(func() error {
		return relay(c.spec.GuestStderr, stderr, pipe.Chunked)
	})

	exitCode := 0

	err = cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			<-reportDone
			return fmt.Errorf("wait: %w", err)
		}

		exitCode = exitErr.ExitCode()
	}

	<-reportDone

	if exitCode == 0 {
		// Errors stop a relay locally, they do not fail the run.
		_ = relays.Wait()

		return nil
	}

	if exitCode > 0 {
		dumpFailure(stderr, c.spec.ScratchDir, report.Bytes(), exitCode)
	}

	if ctx.Err() != nil {
		return &CommandError{Err: ctx.Err(), ExitCode: exitCode}
	}

	return &CommandError{Err: ErrNonZeroExitCode, ExitCode: exitCode}
}

func (c *Command) stdinCopyFunc() pipe.CopyFunc {
	if c.spec.StdinTerminal {
		return pipe.LineBuffered
	}

	return pipe.Chunked
}

func (c *Command) stdoutCopyFunc() pipe.CopyFunc {
	if c.spec.StdoutTerminal {
		return pipe.LineBuffered
	}

	return pipe.Chunked
}

// feed copies the invoking process's stdin into the runtime. Closing the
// pipe is the runtime's only EOF, so it happens even if copying fails.
func feed(dst io.WriteCloser, src io.Reader, copyFunc pipe.CopyFunc) {
	defer dst.Close()

	if src == nil {
		return
	}

	_, _ = copyFunc(dst, src)
}

// relay copies a guest output endpoint to the given writer. Opening blocks
// until the runtime opens the other end of a named pipe.
func relay(path string, dst io.Writer, copyFunc pipe.CopyFunc) error {
	src, err := os.Open(path)
	if err != nil {
		return &pipe.Error{Name: path, Err: err}
	}
	defer src.Close()

	_, err = copyFunc(dst, src)
	if err != nil {
		return &pipe.Error{Name: path, Err: err}
	}

	return nil
}
