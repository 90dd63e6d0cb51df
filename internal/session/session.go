// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/zvsh/zvsh/internal/config"
	"github.com/zvsh/zvsh/internal/image"
	"github.com/zvsh/zvsh/internal/manifest"
	"github.com/zvsh/zvsh/internal/nvram"
)

const (
	debugLogName = "zvsh.log"
	traceLogName = "zvsh.trace.log"
)

// Terminals describes which standard streams of the invoking process are
// attached to a terminal.
type Terminals struct {
	Stdin  bool
	Stdout bool
	Stderr bool
}

// Spec defines the parameters for a new [Session].
type Spec struct {
	// Merged launcher configuration.
	Settings config.Settings

	// Terminal state of the invoking process.
	Terminals Terminals

	// Endpoint paths for the guest's standard streams. Empty values select
	// the defaults: the host's stdin device and named pipes in the scratch
	// directory.
	StdinPath  string
	StdoutPath string
	StderrPath string
}

// Session is the on-disk state of a single ZeroVM run.
type Session struct {
	settings  config.Settings
	terminals Terminals

	dir        string
	stdinPath  string
	stdoutPath string
	stderrPath string

	channels  []manifest.Channel
	mounts    []nvram.Mount
	env       map[string]string
	args      []string
	program   string
	fileCount int

	nvramPath string
}

// New creates the scratch directory with the default stream endpoints and
// registers the channels from the configuration.
func New(spec Spec) (*Session, error) {
	dir, err := os.MkdirTemp("", "zvsh")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}

	s := &Session{
		settings:  spec.Settings,
		terminals: spec.Terminals,
		dir:       dir,
		env:       make(map[string]string, len(spec.Settings.Env)),
	}

	maps.Copy(s.env, spec.Settings.Env)

	err = s.initStreams(spec)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, err
	}

	for _, mount := range spec.Settings.Mounts {
		device, err := s.RegisterChannel(mount.Path)
		if err != nil {
			_ = os.RemoveAll(dir)
			return nil, err
		}

		s.mounts = append(s.mounts, nvram.Mount{
			Channel:    device,
			Mountpoint: mount.Mountpoint,
			Access:     mount.Access,
		})
	}

	return s, nil
}

func (s *Session) initStreams(spec Spec) error {
	s.stdinPath = spec.StdinPath
	if s.stdinPath == "" {
		s.stdinPath = "/dev/stdin"
	}

	var err error

	s.stdoutPath, err = s.streamEndpoint(spec.StdoutPath, "stdout")
	if err != nil {
		return err
	}

	s.stderrPath, err = s.streamEndpoint(spec.StderrPath, "stderr")
	if err != nil {
		return err
	}

	s.channels = append(s.channels,
		manifest.Channel{
			HostPath: s.stdinPath,
			Device:   "/dev/stdin",
			Access:   manifest.AccessSequentialRead,
			Limits:   s.settings.Limits,
		},
		manifest.Channel{
			HostPath: s.stdoutPath,
			Device:   "/dev/stdout",
			Access:   manifest.AccessSequentialWrite,
			Limits:   s.settings.Limits,
		},
		manifest.Channel{
			HostPath: s.stderrPath,
			Device:   "/dev/stderr",
			Access:   manifest.AccessSequentialWrite,
			Limits:   s.settings.Limits,
		},
	)

	return nil
}

// streamEndpoint returns the given custom path as is, or the default path in
// the scratch directory with a named pipe created for it.
func (s *Session) streamEndpoint(custom, name string) (string, error) {
	if custom != "" {
		return custom, nil
	}

	path := s.scratchFile(name)

	err := unix.Mkfifo(path, 0o600)
	if err != nil {
		return "", fmt.Errorf("create %s pipe: %w", name, err)
	}

	return path, nil
}

func (s *Session) scratchFile(prefix string) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s.%d", prefix, s.settings.Node))
}

// RegisterChannel adds a random access channel for the given host file and
// returns the generated device name.
//
// The device name embeds a counter, so registration order determines the
// names the guest sees. The channel is writable for the guest if the host
// file is writable for the invoking user.
func (s *Session) RegisterChannel(hostPath string) (string, error) {
	abs, err := filepath.Abs(hostPath)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	s.fileCount++
	device := fmt.Sprintf("/dev/%d.%s", s.fileCount, filepath.Base(hostPath))

	access := manifest.AccessRandomReadOnly
	if unix.Access(abs, unix.W_OK) == nil {
		access = manifest.AccessRandomReadWrite
	}

	s.channels = append(s.channels, manifest.Channel{
		HostPath: abs,
		Device:   device,
		Access:   access,
		Limits:   s.settings.Limits,
	})

	return device, nil
}

// SetGuestCommand sets the guest program and classifies its arguments.
//
// Arguments prefixed with "@" are host references: "@NAME=VALUE" adds a
// guest environment entry, any other "@path" registers the file as a channel
// and passes the device name to the guest instead. All other arguments are
// passed through verbatim.
func (s *Session) SetGuestCommand(program string, args []string) error {
	if program == "" {
		return ErrNoGuestCommand
	}

	s.program = program

	guestArgs := make([]string, 0, len(args)+1)
	guestArgs = append(guestArgs, filepath.Base(program))

	for _, arg := range args {
		ref, ok := strings.CutPrefix(arg, "@")
		if !ok {
			guestArgs = append(guestArgs, arg)
			continue
		}

		if name, value, ok := cutEnvAssignment(ref); ok {
			s.env[name] = value
			continue
		}

		device, err := s.RegisterChannel(ref)
		if err != nil {
			return err
		}

		guestArgs = append(guestArgs, device)
	}

	s.args = guestArgs

	return nil
}

// AddImages registers the given images and resolves the guest program
// against each of them in turn.
//
// An image containing a member whose name equals the current program's base
// name provides the actual boot file. It is extracted into the scratch
// directory and the session boots it instead.
func (s *Session) AddImages(images []image.Image) error {
	for _, img := range images {
		device, err := s.RegisterChannel(img.Path)
		if err != nil {
			return err
		}

		s.mounts = append(s.mounts, nvram.Mount{
			Channel:    device,
			Mountpoint: img.Mountpoint,
			Access:     img.Access,
		})

		bootPath := s.scratchFile("boot")

		found, err := image.ExtractMember(img.Path, filepath.Base(s.program), bootPath)
		if err != nil {
			return fmt.Errorf("resolve guest program: %w", err)
		}

		if found {
			s.program = bootPath
		}
	}

	return nil
}

// AddDebugLog attaches a channel for the runtime's debug log, written to
// zvsh.log in the working directory.
func (s *Session) AddDebugLog() error {
	return s.addLogChannel(debugLogName, "/dev/debug")
}

// AddTraceLog attaches a channel for the runtime's trace log, written to
// zvsh.trace.log in the working directory.
func (s *Session) AddTraceLog() error {
	return s.addLogChannel(traceLogName, "/dev/trace")
}

func (s *Session) addLogChannel(name, device string) error {
	abs, err := filepath.Abs(name)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}

	s.channels = append(s.channels, manifest.Channel{
		HostPath: abs,
		Device:   device,
		Access:   manifest.AccessSequentialWrite,
		Limits:   s.settings.Limits,
	})

	return nil
}

// WriteNVRAM serializes the NVRAM blob into the scratch directory. It must
// be called after [Session.SetGuestCommand] and before
// [Session.WriteManifest]. Environment entries are written sorted by name.
func (s *Session) WriteNVRAM(verbosity int) error {
	if s.args == nil {
		return ErrNoGuestCommand
	}

	blob := nvram.Blob{
		Args:      s.args,
		Mounts:    s.mounts,
		Verbosity: verbosity,
	}

	for _, name := range slices.Sorted(maps.Keys(s.env)) {
		blob.Env = append(blob.Env, nvram.Entry{Name: name, Value: s.env[name]})
	}

	if s.terminals.Stdin {
		blob.Mappings = append(blob.Mappings, nvram.Mapping{Channel: "/dev/stdin"})
	}

	if s.terminals.Stdout {
		blob.Mappings = append(blob.Mappings, nvram.Mapping{Channel: "/dev/stdout"})
	}

	if s.terminals.Stderr {
		blob.Mappings = append(blob.Mappings, nvram.Mapping{Channel: "/dev/stderr"})
	}

	path := s.scratchFile("nvram")

	err := os.WriteFile(path, blob.Render(), 0o644)
	if err != nil {
		return fmt.Errorf("write nvram: %w", err)
	}

	s.nvramPath = path

	return nil
}

// WriteManifest serializes the boot manifest into the scratch directory and
// returns its path. The NVRAM channel is appended after all others, so
// [Session.WriteNVRAM] must have run before.
func (s *Session) WriteManifest() (string, error) {
	if s.nvramPath == "" {
		return "", ErrNVRAMNotWritten
	}

	program, err := filepath.Abs(s.program)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	channels := make([]manifest.Channel, 0, len(s.channels)+1)
	channels = append(channels, s.channels...)
	channels = append(channels, manifest.Channel{
		HostPath: s.nvramPath,
		Device:   "/dev/nvram",
		Access:   manifest.AccessRandomReadWrite,
		Limits:   s.settings.Limits,
	})

	doc := manifest.Manifest{
		Settings: s.settings.ManifestSettings(),
		Program:  program,
		Channels: channels,
	}

	data, err := doc.Render()
	if err != nil {
		return "", fmt.Errorf("render manifest: %w", err)
	}

	path := s.scratchFile("manifest")

	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}

	return path, nil
}

// Dir returns the path of the scratch directory.
func (s *Session) Dir() string {
	return s.dir
}

// StdoutPath returns the endpoint path of the guest's stdout channel.
func (s *Session) StdoutPath() string {
	return s.stdoutPath
}

// StderrPath returns the endpoint path of the guest's stderr channel.
func (s *Session) StderrPath() string {
	return s.stderrPath
}

// Program returns the host path of the guest program the session boots.
func (s *Session) Program() string {
	return s.program
}

// Remove deletes the scratch directory.
func (s *Session) Remove() error {
	err := os.RemoveAll(s.dir)
	if err != nil {
		return fmt.Errorf("remove scratch dir: %w", err)
	}

	return nil
}

// Retain moves the scratch directory to the given path, replacing it if it
// exists.
func (s *Session) Retain(path string) error {
	err := os.RemoveAll(path)
	if err != nil {
		return fmt.Errorf("remove old save dir: %w", err)
	}

	err = os.Rename(s.dir, path)
	if err != nil {
		return fmt.Errorf("retain scratch dir: %w", err)
	}

	return nil
}
