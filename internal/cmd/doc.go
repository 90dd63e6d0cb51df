// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package cmd provides a CLI command entry point for zvsh. It handles flag
// parsing, error handling, and output handling.
package cmd
