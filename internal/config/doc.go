// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the launcher configuration.
//
// Configuration is merged from a list of YAML files over built-in defaults,
// later files winning. Files that cannot be read are skipped, so hosts and
// users only provide what they need.
package config
