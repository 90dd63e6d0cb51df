// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package nvram

import "strings"

// escapedComma is the literal byte sequence that replaces a comma. The
// bootstrap splits values on commas, so the byte itself must not occur.
const escapedComma = `\x2c`

// Escape replaces every comma in value with its escape sequence.
func Escape(value string) string {
	return strings.ReplaceAll(value, ",", escapedComma)
}

// Unescape reverses [Escape].
func Unescape(value string) string {
	return strings.ReplaceAll(value, escapedComma, ",")
}
