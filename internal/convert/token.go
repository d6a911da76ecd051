// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package convert

import "strings"

// ParsedCommand is a raw input line split into a base command and its
// ordered arguments. It is created fresh per conversion and never
// persisted.
type ParsedCommand struct {
	Base string
	Args []string
}

// Parse trims the line and splits it on whitespace runs. The first token
// is the base command, the rest are arguments in original order. Empty
// or all-whitespace input yields an empty base and no arguments.
//
// There is no quoting or escaping awareness: a token boundary is any
// whitespace run.
func Parse(line string) ParsedCommand {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParsedCommand{}
	}
	return ParsedCommand{Base: fields[0], Args: fields[1:]}
}
