// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"slices"

	"github.com/zvsh/zvsh/internal/config"
	"github.com/zvsh/zvsh/internal/zerovm"
	"github.com/zvsh/zvsh/internal/zvsh"
)

const (
	name = "zvsh"

	// Name of the command that selects debugger mode instead of a guest
	// program path.
	debuggerCommand = "gdb"

	// Separator between gdb arguments and the guest command in debugger
	// mode.
	gdbArgsSeparator = "--args"

	usageMessage = `Usage of 'zvsh':
    zvsh [flags...] command [args...]

Run a guest program inside the ZeroVM sandbox:
	zvsh -zvm-image=image.tar myprog.nexe input.txt

Arguments prefixed with "@" name host files that are attached to the guest
as channels, or set guest environment variables if they look like
assignments:
	zvsh myprog.nexe @input.txt @DEBUG=1

Run the runtime under gdb, with gdb arguments before "--args":
	zvsh gdb [gdb-args...] --args myprog.nexe [args...]

Manifest settings, resource limits, guest environment and file system
images can also be set via the configuration files /etc/zvsh/zvsh.yaml,
~/.zvsh.yaml and ./zvsh.yaml.
`
)

type flags struct {
	spec    zvsh.Spec
	flagSet *flag.FlagSet

	version bool
	debug   bool
}

func newFlags(output io.Writer) *flags {
	flags := &flags{
		spec: zvsh.Spec{
			ConfigFiles: config.DefaultFiles(),
			Executable:  zerovm.DefaultExecutable,
		},
	}

	flags.initFlagset(output)

	return flags
}

func (f *flags) ParseArgs(args []string) error {
	// Parses arguments up to the first one that is not prefixed with a "-" or
	// is "--".
	err := f.flagSet.Parse(args)
	if err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		err := f.printVersionInformation()
		return &ParseArgsError{msg: "version requested", err: err}
	}

	positionalArgs := f.flagSet.Args()

	// First positional argument is the guest program path, or "gdb" for
	// running the runtime under a debugger.
	if len(positionalArgs) < 1 {
		return f.fail("no command given", nil)
	}

	f.spec.Program = positionalArgs[0]

	// All further positional arguments are passed to the guest program,
	// after "@" prefixed ones have been rewritten.
	f.spec.Args = positionalArgs[1:]

	if f.spec.Program == debuggerCommand {
		return f.splitGdbArgs()
	}

	return nil
}

// splitGdbArgs splits the collected guest arguments at the "--args"
// separator. Arguments before it belong to gdb, the first one after it is
// the actual guest program.
func (f *flags) splitGdbArgs() error {
	idx := slices.Index(f.spec.Args, gdbArgsSeparator)
	if idx < 0 || idx == len(f.spec.Args)-1 {
		return f.fail("no guest command given (use --args)", nil)
	}

	f.spec.Gdb = true
	f.spec.GdbArgs = f.spec.Args[:idx]
	f.spec.Program = f.spec.Args[idx+1]
	f.spec.Args = f.spec.Args[idx+2:]

	return nil
}

func (f *flags) initFlagset(output io.Writer) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = f.usage

	flagSet.StringVar(
		&f.spec.Executable,
		"zerovm-bin",
		f.spec.Executable,
		"ZeroVM binary to use",
	)

	flagSet.Var(
		(*imageList)(&f.spec.Images),
		"zvm-image",
		"file system image to attach, format: path[,mountpoint[,access]] "+
			"(defaults: /, ro). Flag may be used more than once.",
	)

	flagSet.BoolVar(
		&f.spec.DebugLog,
		"zvm-debug",
		f.spec.DebugLog,
		"enable runtime debug output into zvsh.log",
	)

	flagSet.BoolVar(
		&f.spec.TraceLog,
		"zvm-trace",
		f.spec.TraceLog,
		"enable runtime trace output into zvsh.trace.log",
	)

	flagSet.IntVar(
		&f.spec.Verbosity,
		"zvm-verbosity",
		f.spec.Verbosity,
		"runtime debug verbosity level",
	)

	flagSet.StringVar(
		&f.spec.SaveDir,
		"zvm-save-dir",
		f.spec.SaveDir,
		"save session files into the given directory, replacing its previous "+
			"content",
	)

	flagSet.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "Version: %s\n", buildInfo.Main.Version)

	return ErrHelp
}

func (f *flags) usage() {
	fmt.Fprint(f.flagSet.Output(), usageMessage)
	fmt.Fprintln(f.flagSet.Output(), "\nFlags:")
	f.flagSet.PrintDefaults()
}
