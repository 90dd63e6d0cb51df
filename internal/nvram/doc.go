// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package nvram renders the NVRAM blob that the in-guest bootstrap parses.
//
// The blob is an ini style file with the guest argument vector, environment
// entries, filesystem mounts, terminal mappings and the debug verbosity.
package nvram
