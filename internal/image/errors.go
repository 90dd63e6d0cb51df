// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package image

import "errors"

// ErrUnknownFormat is returned if a file is neither a tar nor a cpio archive.
var ErrUnknownFormat = errors.New("unknown archive format")
