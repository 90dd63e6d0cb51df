// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package session

import "regexp"

// envAssignment matches guest environment assignments of the form
// NAME=VALUE, where the name consists of uppercase letters, digits and
// underscores.
var envAssignment = regexp.MustCompile(`^([_A-Z0-9]+)=(.*)`)

func cutEnvAssignment(arg string) (name, value string, ok bool) {
	match := envAssignment.FindStringSubmatch(arg)
	if match == nil {
		return "", "", false
	}

	return match[1], match[2], true
}
