// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

var (
	// ErrSettingInvalid is returned if a manifest setting has a value the
	// launcher cannot work with.
	ErrSettingInvalid = errors.New("invalid manifest setting")

	// ErrMountInvalid is returned if an fstab entry is not of the form
	// "mountpoint access".
	ErrMountInvalid = errors.New("invalid fstab entry")
)
