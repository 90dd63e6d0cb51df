// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package manifest

import "slices"

const (
	// AccessSequentialRead is a read only channel that the guest consumes
	// from start to end, like a pipe.
	AccessSequentialRead AccessClass = "seq-read"
	// AccessSequentialWrite is a write only channel the guest appends to,
	// like a pipe.
	AccessSequentialWrite AccessClass = "seq-write"
	// AccessRandomReadWrite is a seekable channel the guest may read and
	// write at any offset.
	AccessRandomReadWrite AccessClass = "random-rw"
	// AccessRandomReadOnly is a seekable channel the guest may only read.
	AccessRandomReadOnly AccessClass = "random-ro"
)

// AccessClass represents ZeroVM channel access classes.
type AccessClass string

func (a *AccessClass) isKnown() bool {
	knownAccessClasses := []AccessClass{
		AccessSequentialRead,
		AccessSequentialWrite,
		AccessRandomReadWrite,
		AccessRandomReadOnly,
	}

	return slices.Contains(knownAccessClasses, *a)
}

// String implements [fmt.Stringer].
func (a *AccessClass) String() string {
	if !a.isKnown() {
		return ""
	}

	return string(*a)
}

// MarshalText implements [encoding.TextMarshaler].
func (a AccessClass) MarshalText() ([]byte, error) {
	s := a.String()
	if s == "" {
		return nil, ErrAccessClassInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *AccessClass) UnmarshalText(text []byte) error {
	class := AccessClass(text)

	if !class.isKnown() {
		return ErrAccessClassInvalid
	}

	*a = class

	return nil
}

// channelFields returns the channel line columns type, etag, gets, get_size,
// puts and put_size for the class with the given limits applied.
func (a AccessClass) channelFields(limits Limits) []string {
	switch a {
	case AccessSequentialRead:
		return []string{"0", "0", quota(limits.Reads), quota(limits.ReadBytes), "0", "0"}
	case AccessSequentialWrite:
		return []string{"0", "0", "0", "0", quota(limits.Writes), quota(limits.WriteBytes)}
	case AccessRandomReadWrite:
		return []string{"3", "0", quota(limits.Reads), quota(limits.ReadBytes), quota(limits.Writes), quota(limits.WriteBytes)}
	case AccessRandomReadOnly:
		return []string{"3", "0", quota(limits.Reads), quota(limits.ReadBytes), "0", "0"}
	default:
		return nil
	}
}
