// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package session

import "errors"

var (
	// ErrNoGuestCommand is returned if the NVRAM blob is written before a
	// guest command has been set.
	ErrNoGuestCommand = errors.New("no guest command set")

	// ErrNVRAMNotWritten is returned if the manifest is written before the
	// NVRAM blob. The manifest references the NVRAM file, so the blob must
	// exist first.
	ErrNVRAMNotWritten = errors.New("nvram not written")
)
