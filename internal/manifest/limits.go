// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import "strconv"

// DefaultQuota is the default value for all channel IO quotas.
const DefaultQuota uint64 = 4294967296

// Limits are the IO quotas of a single channel. The runtime terminates the
// guest once a channel exceeds any of them.
type Limits struct {
	Reads      uint64
	ReadBytes  uint64
	Writes     uint64
	WriteBytes uint64
}

// DefaultLimits returns [Limits] with all quotas set to [DefaultQuota].
func DefaultLimits() Limits {
	return Limits{
		Reads:      DefaultQuota,
		ReadBytes:  DefaultQuota,
		Writes:     DefaultQuota,
		WriteBytes: DefaultQuota,
	}
}

func quota(value uint64) string {
	return strconv.FormatUint(value, 10)
}
