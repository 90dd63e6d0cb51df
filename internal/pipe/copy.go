// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package pipe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

var _ CopyFunc = Chunked

// Chunked is a [CopyFunc] that copies the data in chunks of at most 64 KiB.
//
// This function should be used for streams that are not read interactively,
// like redirected files and pipes.
func Chunked(dst io.Writer, src io.Reader) (int64, error) {
	var written int64

	buf := make([]byte, chunkSize)

	for {
		read, err := src.Read(buf)
		if read > 0 {
			n, werr := dst.Write(buf[:read])

			written += int64(n)

			if werr != nil {
				return written, fmt.Errorf("write: %w", werr)
			}

			if n != read {
				return written, io.ErrShortWrite
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}

		if err != nil {
			return written, fmt.Errorf("read: %w", err)
		}
	}
}

var _ CopyFunc = LineBuffered

// LineBuffered is a [CopyFunc] that copies the data line by line. Line breaks
// are forwarded as read, so the data is not altered.
//
// This function should be used for streams attached to a terminal, so output
// is forwarded as soon as a line is complete.
func LineBuffered(dst io.Writer, src io.Reader) (int64, error) {
	var written int64

	reader := bufio.NewReader(src)

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			n, werr := dst.Write(line)

			written += int64(n)

			if werr != nil {
				return written, fmt.Errorf("write: %w", werr)
			}
		}

		if errors.Is(err, io.EOF) {
			return written, nil
		}

		if err != nil {
			return written, fmt.Errorf("read: %w", err)
		}
	}
}
