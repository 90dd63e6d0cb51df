// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

//go:build tools

package tools

import (
	_ "github.com/boumenot/gocover-cobertura"
	_ "github.com/jstemmer/go-junit-report/v2"
	_ "golang.org/x/vuln/cmd/govulncheck"
)
