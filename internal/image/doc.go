// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package image handles filesystem images that are attached to the guest.
//
// Images are tar or cpio archives, optionally gzip or zstd compressed. The
// guest program itself may live inside such an archive and is extracted to
// the host before boot.
package image
