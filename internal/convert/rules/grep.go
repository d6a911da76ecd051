// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"fmt"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(grepRule{})
}

// grepRule treats the first argument as the search pattern and the
// second, when present, as the file to search. Values are inserted
// verbatim, with no escaping.
type grepRule struct{}

func (grepRule) Names() []string { return []string{"grep"} }

func (grepRule) Rewrite(_, template string, args []string) (string, string) {
	switch {
	case len(args) >= 2:
		return fmt.Sprintf("Select-String -Pattern '%s' -Path '%s'", args[0], args[1]),
			fmt.Sprintf("Searches for pattern '%s' in file '%s'", args[0], args[1])
	case len(args) == 1:
		return fmt.Sprintf("Select-String -Pattern '%s'", args[0]),
			fmt.Sprintf("Searches for pattern '%s' in input", args[0])
	default:
		return template, "Searches for patterns in text"
	}
}
