// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/zvsh/zvsh/internal/zerovm"
	"github.com/zvsh/zvsh/internal/zvsh"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := newFlags(output)

	err := flags.ParseArgs(args[1:])
	if err != nil {
		return nil, err
	}

	return flags, nil
}

func handleParseArgsError(err error) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return 0
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if !errors.Is(err, &ParseArgsError{}) {
		slog.Error(err.Error())
	}

	return -1
}

func handleRunError(err error) int {
	exitCode := -1

	var cmdErr *zerovm.CommandError
	if errors.As(err, &cmdErr) {
		if cmdErr.ExitCode != 0 {
			exitCode = cmdErr.ExitCode
		}
	}

	// Do not print the error in case the runtime failed regularly. The
	// diagnostic dump has been written already.
	if !errors.Is(err, zerovm.ErrNonZeroExitCode) {
		slog.Error(err.Error())
	}

	return exitCode
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err)
	}

	setupLogging(cfg.Stderr, flags.debug)

	err = zvsh.Run(ctx, &flags.spec, cfg.Stdin, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return handleRunError(err)
	}

	return 0
}
