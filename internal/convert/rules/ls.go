// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"slices"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(lsRule{})
}

// lsRule maps the common ls flag spellings onto listing variants. The
// long-format flags are checked before -a so the more specific flag wins.
type lsRule struct{}

func (lsRule) Names() []string { return []string{"ls"} }

func (lsRule) Rewrite(_, template string, args []string) (string, string) {
	switch {
	case slices.Contains(args, "-la") || slices.Contains(args, "-l"):
		return "Get-ChildItem | Format-List", "Lists files with detailed information"
	case slices.Contains(args, "-a"):
		return "Get-ChildItem -Force", "Lists all files including hidden ones"
	default:
		return template, "Lists files and directories"
	}
}
