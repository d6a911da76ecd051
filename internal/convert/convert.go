// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package convert translates single-line unix shell commands into their
// closest PowerShell equivalents.
//
// The engine is a pure function of the input line and the mapping table:
// it holds no mutable state, performs no I/O, and is safe for concurrent
// use. Per-command rewrite behavior lives in Rule implementations that
// register themselves by base command name; anything without a dedicated
// rule gets the default template-plus-arguments rewrite.
package convert

import (
	"fmt"
	"strings"

	"github.com/poshconv/cli/internal/mapping"
)

// Rule defines the interface all rewrite rules must implement.
type Rule interface {
	// Names returns the base commands this rule handles (e.g., "ls").
	Names() []string

	// Rewrite folds the parsed arguments into the command's PowerShell
	// template and returns the final command text and its explanation.
	Rewrite(base, template string, args []string) (command, explanation string)
}

var rules = make(map[string]Rule)

// Register adds a rule to the registry under each of its names.
func Register(r Rule) {
	for _, name := range r.Names() {
		rules[name] = r
	}
}

// ruleFor selects the rule for a base command, or the default rewrite
// when no dedicated rule is registered.
func ruleFor(base string) Rule {
	if r, ok := rules[base]; ok {
		return r
	}
	return defaultRule{}
}

// defaultRule appends the arguments, space-joined, after the template.
type defaultRule struct{}

func (defaultRule) Names() []string { return nil }

func (defaultRule) Rewrite(base, template string, args []string) (string, string) {
	if len(args) > 0 {
		return template + " " + strings.Join(args, " "),
			fmt.Sprintf("PowerShell equivalent of %s with arguments", base)
	}
	return template, fmt.Sprintf("PowerShell equivalent of %s", base)
}

// Engine converts unix command lines using an immutable mapping table.
type Engine struct {
	store *mapping.Store
}

// NewEngine creates an Engine backed by the given mapping table.
func NewEngine(store *mapping.Store) *Engine {
	return &Engine{store: store}
}

// Convert translates one unix command line. Unmapped base commands are a
// soft miss, not an error: the result carries a comment-style placeholder
// and still reports success.
func (e *Engine) Convert(line string) Result {
	parsed := Parse(line)

	template, ok := e.store.Get(parsed.Base)
	if !ok {
		return Result{
			UnixCommand:       line,
			PowerShellCommand: fmt.Sprintf("# No direct mapping found for '%s'", parsed.Base),
			Explanation:       fmt.Sprintf("Command '%s' doesn't have a direct PowerShell equivalent in our database", parsed.Base),
			Status:            StatusSuccess,
		}
	}

	command, explanation := ruleFor(parsed.Base).Rewrite(parsed.Base, template, parsed.Args)
	return Result{
		UnixCommand:       line,
		PowerShellCommand: command,
		Explanation:       explanation,
		Status:            StatusSuccess,
	}
}
