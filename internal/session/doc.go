// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package session assembles everything a single ZeroVM run needs on disk.
//
// A session owns a scratch directory holding the boot manifest, the NVRAM
// blob and the named pipes for the guest's standard streams. Channels are
// registered in call order, which determines the device names the guest
// sees.
package session
