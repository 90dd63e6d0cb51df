// SPDX-FileCopyrightText: 2026 The zvsh authors
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"strings"

	"github.com/zvsh/zvsh/internal/image"
)

// imageList collects repeated image attachment flags. Specs are separated
// by spaces since the fields of a single spec are comma separated already.
type imageList []image.Image

func (l *imageList) String() string {
	specs := make([]string, len(*l))
	for idx, img := range *l {
		specs[idx] = img.String()
	}

	return strings.Join(specs, " ")
}

func (l *imageList) Set(value string) error {
	*l = append(*l, image.ParseSpec(value))
	return nil
}
