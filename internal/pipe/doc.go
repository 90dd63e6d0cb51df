// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package pipe provides the stream copy primitives for pumping data between
// the invoking process and the guest's IO channels.
package pipe
