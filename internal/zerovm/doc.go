// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package zerovm executes the ZeroVM runtime and supervises a single run.
//
// The runtime reads a boot manifest, runs the guest and prints its report to
// stdout. While the guest runs, the package feeds the invoking process's
// stdin to the runtime and relays the guest's output endpoints. On failure
// the session artifacts are dumped for inspection.
package zerovm
