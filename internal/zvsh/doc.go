// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package zvsh ties a session and a runtime invocation into a single run.
package zvsh
