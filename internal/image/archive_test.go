// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package image_test

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/cavaliergopher/cpio"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zvsh/zvsh/internal/image"
)

type archiveEntry struct {
	name    string
	content string
}

func buildTar(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer

	writer := tar.NewWriter(&buf)

	err := writer.WriteHeader(&tar.Header{
		Name:     "bin/",
		Typeflag: tar.TypeDir,
		Mode:     0o755,
	})
	require.NoError(t, err)

	for _, entry := range entries {
		err := writer.WriteHeader(&tar.Header{
			Name:     entry.name,
			Typeflag: tar.TypeReg,
			Mode:     0o755,
			Size:     int64(len(entry.content)),
		})
		require.NoError(t, err)

		_, err = writer.Write([]byte(entry.content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return buf.Bytes()
}

func buildCpio(t *testing.T, entries []archiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer

	writer := cpio.NewWriter(&buf)

	for _, entry := range entries {
		err := writer.WriteHeader(&cpio.Header{
			Name: entry.name,
			Mode: cpio.TypeReg | 0o755,
			Size: int64(len(entry.content)),
		})
		require.NoError(t, err)

		_, err = writer.Write([]byte(entry.content))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return buf.Bytes()
}

func writeArchive(t *testing.T, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "image")

	err := os.WriteFile(path, data, 0o644)
	require.NoError(t, err)

	return path
}

func TestExtractMember(t *testing.T) {
	entries := []archiveEntry{
		{name: "bin/guest.nexe", content: "nested"},
		{name: "guest.nexe", content: "guest program"},
		{name: "other", content: "other file"},
	}

	t.Run("tar found", func(t *testing.T) {
		archivePath := writeArchive(t, buildTar(t, entries))
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.NoError(t, err)
		require.True(t, found)

		content, err := os.ReadFile(destPath)
		require.NoError(t, err)

		assert.Equal(t, "guest program", string(content))
	})

	t.Run("tar miss", func(t *testing.T) {
		archivePath := writeArchive(t, buildTar(t, entries))
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "missing", destPath)
		require.NoError(t, err)
		require.False(t, found)

		assert.NoFileExists(t, destPath)
	})

	t.Run("tar dot slash prefix", func(t *testing.T) {
		archive := buildTar(t, []archiveEntry{
			{name: "./guest.nexe", content: "guest program"},
		})
		archivePath := writeArchive(t, archive)
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.NoError(t, err)

		assert.True(t, found)
	})

	t.Run("gzip tar", func(t *testing.T) {
		var buf bytes.Buffer

		writer := gzip.NewWriter(&buf)
		_, err := writer.Write(buildTar(t, entries))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		archivePath := writeArchive(t, buf.Bytes())
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.NoError(t, err)
		require.True(t, found)

		content, err := os.ReadFile(destPath)
		require.NoError(t, err)

		assert.Equal(t, "guest program", string(content))
	})

	t.Run("zstd tar", func(t *testing.T) {
		var buf bytes.Buffer

		writer, err := zstd.NewWriter(&buf)
		require.NoError(t, err)

		_, err = writer.Write(buildTar(t, entries))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		archivePath := writeArchive(t, buf.Bytes())
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.NoError(t, err)
		require.True(t, found)

		content, err := os.ReadFile(destPath)
		require.NoError(t, err)

		assert.Equal(t, "guest program", string(content))
	})

	t.Run("cpio found", func(t *testing.T) {
		archivePath := writeArchive(t, buildCpio(t, entries))
		destPath := filepath.Join(t.TempDir(), "boot.1")

		found, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.NoError(t, err)
		require.True(t, found)

		content, err := os.ReadFile(destPath)
		require.NoError(t, err)

		assert.Equal(t, "guest program", string(content))
	})

	t.Run("unknown format", func(t *testing.T) {
		archivePath := writeArchive(t, []byte("not an archive"))
		destPath := filepath.Join(t.TempDir(), "boot.1")

		_, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.ErrorIs(t, err, image.ErrUnknownFormat)
	})

	t.Run("missing archive", func(t *testing.T) {
		archivePath := filepath.Join(t.TempDir(), "missing")
		destPath := filepath.Join(t.TempDir(), "boot.1")

		_, err := image.ExtractMember(archivePath, "guest.nexe", destPath)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
