// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package manifest renders ZeroVM boot manifests.
//
// A manifest is a plain text file with global settings, the guest program
// path and the list of IO channels the guest may use.
package manifest
