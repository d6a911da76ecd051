// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package rules

import (
	"fmt"

	"github.com/poshconv/cli/internal/convert"
)

func init() {
	convert.Register(killRule{})
}

// killRule treats the first argument as a process id. The value is not
// validated as numeric; it is inserted verbatim.
type killRule struct{}

func (killRule) Names() []string { return []string{"kill"} }

func (killRule) Rewrite(_, template string, args []string) (string, string) {
	if len(args) >= 1 {
		return fmt.Sprintf("Stop-Process -Id %s", args[0]),
			fmt.Sprintf("Terminates process with ID %s", args[0])
	}
	return template, "Terminates processes"
}
