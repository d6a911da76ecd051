// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"fmt"
	"slices"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(findRule{})
}

// findRule recognizes the -name flag when a value follows it; a trailing
// -name with no value is treated as if absent and falls back to the
// positional-path form.
type findRule struct{}

func (findRule) Names() []string { return []string{"find"} }

func (findRule) Rewrite(_, template string, args []string) (string, string) {
	if len(args) == 0 {
		return template, "Finds files and directories"
	}

	if i := slices.Index(args, "-name"); i >= 0 && i+1 < len(args) {
		pattern := args[i+1]
		return fmt.Sprintf("Get-ChildItem -Recurse -Name '*%s*'", pattern),
			fmt.Sprintf("Finds files matching pattern '%s'", pattern)
	}

	path := args[0]
	return fmt.Sprintf("Get-ChildItem -Path '%s' -Recurse", path),
		fmt.Sprintf("Lists all files in directory '%s' recursively", path)
}
