// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"fmt"
	"strings"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(headTailRule{})
}

// headTailRule handles head and tail with one shared implementation:
// head selects from the front (-First), tail from the back (-Last). A
// leading dash-prefixed argument carries the line count; without one the
// unix default of 10 lines applies.
type headTailRule struct{}

func (headTailRule) Names() []string { return []string{"head", "tail"} }

func (headTailRule) Rewrite(base, _ string, args []string) (string, string) {
	selector, position := "-First", "first"
	if base == "tail" {
		selector, position = "-Last", "last"
	}

	if len(args) >= 1 && strings.HasPrefix(args[0], "-") {
		count := strings.TrimPrefix(args[0], "-")
		if len(args) >= 2 {
			file := args[1]
			return fmt.Sprintf("Get-Content '%s' | Select-Object %s %s", file, selector, count),
				fmt.Sprintf("Shows %s %s lines of file '%s'", position, count, file)
		}
		return fmt.Sprintf("Select-Object %s %s", selector, count),
			fmt.Sprintf("Shows %s %s lines", position, count)
	}

	return fmt.Sprintf("Get-Content | Select-Object %s 10", selector),
		fmt.Sprintf("Shows %s 10 lines (default)", position)
}
