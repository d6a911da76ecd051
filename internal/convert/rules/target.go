// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"fmt"
	"strings"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(targetRule{})
}

// targetRule covers the single-target filesystem commands: all arguments
// are joined into one quoted target appended after the template.
type targetRule struct{}

func (targetRule) Names() []string {
	return []string{"cd", "mkdir", "rmdir", "rm", "cp", "mv", "cat"}
}

func (targetRule) Rewrite(base, template string, args []string) (string, string) {
	if len(args) >= 1 {
		target := strings.Join(args, " ")
		return fmt.Sprintf("%s '%s'", template, target),
			fmt.Sprintf("Performs %s operation on '%s'", base, target)
	}
	return template, fmt.Sprintf("PowerShell equivalent of %s", base)
}
