// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration file format.
type File struct {
	Manifest map[string]any    `yaml:"manifest"`
	Limits   *limitsSection    `yaml:"limits"`
	Env      map[string]any    `yaml:"env"`
	Fstab    map[string]string `yaml:"fstab"`
}

type limitsSection struct {
	Reads      *uint64 `yaml:"reads"`
	ReadBytes  *uint64 `yaml:"rbytes"`
	Writes     *uint64 `yaml:"writes"`
	WriteBytes *uint64 `yaml:"wbytes"`
}

// DefaultFiles returns the configuration file paths searched by default:
// the host wide file, the user's file and the one in the working directory.
func DefaultFiles() []string {
	files := []string{"/etc/zvsh/zvsh.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, ".zvsh.yaml"))
	}

	return append(files, "zvsh.yaml")
}

// Load reads the given configuration files in order and merges them over the
// built-in defaults. Later files win. Files that cannot be read are skipped.
func Load(files ...string) (Settings, error) {
	settings := NewSettings()

	for _, name := range files {
		data, err := os.ReadFile(name)
		if err != nil {
			slog.Debug("Skipping config file",
				slog.String("path", name),
				slog.Any("error", err),
			)

			continue
		}

		var file File

		err = yaml.Unmarshal(data, &file)
		if err != nil {
			return settings, fmt.Errorf("parse config %s: %w", name, err)
		}

		err = settings.apply(&file)
		if err != nil {
			return settings, fmt.Errorf("config %s: %w", name, err)
		}

		slog.Debug("Loaded config file", slog.String("path", name))
	}

	return settings, nil
}

func (s *Settings) apply(file *File) error {
	for _, key := range slices.Sorted(maps.Keys(file.Manifest)) {
		err := s.applyManifestSetting(key, scalar(file.Manifest[key]))
		if err != nil {
			return err
		}
	}

	if file.Limits != nil {
		applyLimit(&s.Limits.Reads, file.Limits.Reads)
		applyLimit(&s.Limits.ReadBytes, file.Limits.ReadBytes)
		applyLimit(&s.Limits.Writes, file.Limits.Writes)
		applyLimit(&s.Limits.WriteBytes, file.Limits.WriteBytes)
	}

	for _, name := range slices.Sorted(maps.Keys(file.Env)) {
		s.Env[name] = scalar(file.Env[name])
	}

	for _, path := range slices.Sorted(maps.Keys(file.Fstab)) {
		fields := strings.Fields(file.Fstab[path])
		if len(fields) != 2 {
			return fmt.Errorf("%w: %q", ErrMountInvalid, file.Fstab[path])
		}

		s.Mounts = append(s.Mounts, Mount{
			Path:       path,
			Mountpoint: fields[0],
			Access:     fields[1],
		})
	}

	return nil
}

func (s *Settings) applyManifestSetting(key, value string) error {
	switch key {
	case "Version":
		s.Version = value
	case "Memory":
		s.Memory = value
	case "Node":
		node, err := strconv.Atoi(value)
		if err != nil || node < 1 {
			return fmt.Errorf("%w: Node %q", ErrSettingInvalid, value)
		}

		s.Node = node
	case "Timeout":
		timeout, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: Timeout %q", ErrSettingInvalid, value)
		}

		s.Timeout = timeout
	default:
		s.setExtra(key, value)
	}

	return nil
}

func applyLimit(limit *uint64, value *uint64) {
	if value != nil {
		*limit = *value
	}
}

// scalar renders a YAML scalar the way it is written into manifest files.
func scalar(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}
