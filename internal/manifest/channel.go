// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import "strings"

// Channel maps a host file to a device the guest can use.
type Channel struct {
	// Path of the backing file on the host.
	HostPath string
	// Device name the guest sees, like "/dev/stdin" or "/dev/1.input".
	Device string
	// Access class of the channel.
	Access AccessClass
	// IO quotas of the channel.
	Limits Limits
}

// Line renders the manifest line for the channel. It has the form
//
//	Channel = path,device,type,etag,gets,get_size,puts,put_size
//
// where the quota columns not covered by the access class are zero.
func (c Channel) Line() (string, error) {
	fields := c.Access.channelFields(c.Limits)
	if fields == nil {
		return "", ErrAccessClassInvalid
	}

	columns := append([]string{c.HostPath, c.Device}, fields...)

	return "Channel = " + strings.Join(columns, ","), nil
}
