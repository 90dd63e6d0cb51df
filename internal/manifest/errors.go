// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import "errors"

var (
	// ErrAccessClassInvalid is returned if an access class is not known.
	ErrAccessClassInvalid = errors.New("access class invalid")

	// ErrNoProgram is returned if a manifest is rendered without a guest
	// program path.
	ErrNoProgram = errors.New("no guest program path")
)
