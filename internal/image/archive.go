// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package image

import (
	"archive/tar"
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/cavaliergopher/cpio"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	cpioMagic = []byte("07070")
)

// tarMagic is found at offset 257 of a tar archive.
const (
	tarMagic       = "ustar"
	tarMagicOffset = 257
)

// member is a single regular archive member.
type member struct {
	name string
	mode fs.FileMode
	body io.Reader
}

// nextMember returns the next regular member or [io.EOF] once the archive is
// exhausted.
type nextMember func() (*member, error)

// ExtractMember searches the archive for a regular member with the given
// name and writes its content to destPath. It reports whether the member was
// found. A leading "./" in member names is ignored for the comparison.
func ExtractMember(archivePath, name, destPath string) (bool, error) {
	file, err := os.Open(archivePath)
	if err != nil {
		return false, fmt.Errorf("open image: %w", err)
	}
	defer file.Close()

	reader, closeReader, err := decompressed(bufio.NewReader(file))
	if err != nil {
		return false, fmt.Errorf("image %s: %w", archivePath, err)
	}
	defer closeReader()

	next, err := openArchive(reader)
	if err != nil {
		return false, fmt.Errorf("image %s: %w", archivePath, err)
	}

	for {
		member, err := next()
		if errors.Is(err, io.EOF) {
			return false, nil
		}

		if err != nil {
			return false, fmt.Errorf("read image %s: %w", archivePath, err)
		}

		if strings.TrimPrefix(member.name, "./") != name {
			continue
		}

		err = writeMember(member, destPath)
		if err != nil {
			return false, err
		}

		return true, nil
	}
}

// decompressed wraps the reader with the decompressor matching the stream's
// magic bytes. Streams without a known magic are passed through untouched.
func decompressed(src *bufio.Reader) (io.Reader, func(), error) {
	magic, _ := src.Peek(4)

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		reader, err := gzip.NewReader(src)
		if err != nil {
			return nil, nil, fmt.Errorf("gzip: %w", err)
		}

		return reader, func() { _ = reader.Close() }, nil
	case bytes.HasPrefix(magic, zstdMagic):
		reader, err := zstd.NewReader(src)
		if err != nil {
			return nil, nil, fmt.Errorf("zstd: %w", err)
		}

		return reader, reader.Close, nil
	default:
		return src, func() {}, nil
	}
}

func openArchive(src io.Reader) (nextMember, error) {
	reader := bufio.NewReader(src)

	magic, _ := reader.Peek(tarMagicOffset + len(tarMagic))

	switch {
	case len(magic) > tarMagicOffset &&
		string(magic[tarMagicOffset:tarMagicOffset+len(tarMagic)]) == tarMagic:
		return tarMembers(reader), nil
	case bytes.HasPrefix(magic, cpioMagic):
		return cpioMembers(reader), nil
	default:
		return nil, ErrUnknownFormat
	}
}

func tarMembers(reader io.Reader) nextMember {
	archive := tar.NewReader(reader)

	return func() (*member, error) {
		for {
			hdr, err := archive.Next()
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			if hdr.Typeflag != tar.TypeReg {
				continue
			}

			return &member{
				name: hdr.Name,
				mode: hdr.FileInfo().Mode().Perm(),
				body: archive,
			}, nil
		}
	}
}

func cpioMembers(reader io.Reader) nextMember {
	archive := cpio.NewReader(reader)

	return func() (*member, error) {
		for {
			hdr, err := archive.Next()
			if err != nil {
				return nil, err //nolint:wrapcheck
			}

			if !hdr.FileInfo().Mode().IsRegular() {
				continue
			}

			return &member{
				name: hdr.Name,
				mode: hdr.FileInfo().Mode().Perm(),
				body: archive,
			}, nil
		}
	}
}

func writeMember(member *member, destPath string) error {
	mode := member.mode
	if mode == 0 {
		mode = 0o644
	}

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("create %s: %w", destPath, err)
	}

	_, err = io.Copy(dest, member.body)
	if err != nil {
		_ = dest.Close()
		return fmt.Errorf("extract %s: %w", member.name, err)
	}

	err = dest.Close()
	if err != nil {
		return fmt.Errorf("close %s: %w", destPath, err)
	}

	return nil
}
