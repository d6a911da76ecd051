// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package mapping owns the unix-name to PowerShell-template association
// table. The table is built once at process start and never mutated
// afterward, so concurrent readers need no locking.
package mapping

import (
	"encoding/json"
	"log/slog"
	"os"
	"sort"
)

// Source values reported by Store.Source.
const (
	SourceFile    = "file"
	SourceBuiltin = "builtin"
)

// Store is the immutable unix-to-PowerShell mapping table.
type Store struct {
	entries map[string]string
	source  string
}

// Load builds a Store from the JSON mapping file at path, a flat object
// of unix command names to PowerShell template strings. A missing or
// unparsable file is not an error: the builtin table is used instead
// and the fallback is invisible to callers.
func Load(path string) *Store {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		slog.Debug("mapping file unavailable, using builtin table", "path", path, "error", err)
		return builtin()
	}

	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Debug("mapping file unparsable, using builtin table", "path", path, "error", err)
		return builtin()
	}

	return &Store{entries: entries, source: SourceFile}
}

func builtin() *Store {
	entries := make(map[string]string, len(defaults))
	for name, tmpl := range defaults {
		entries[name] = tmpl
	}
	return &Store{entries: entries, source: SourceBuiltin}
}

// Builtin returns a Store backed by the builtin default table.
func Builtin() *Store {
	return builtin()
}

// Get returns the PowerShell template for a unix command name. Lookups
// are case-sensitive exact matches.
func (s *Store) Get(name string) (string, bool) {
	tmpl, ok := s.entries[name]
	return tmpl, ok
}

// All returns a copy of the full mapping table.
func (s *Store) All() map[string]string {
	out := make(map[string]string, len(s.entries))
	for name, tmpl := range s.entries {
		out[name] = tmpl
	}
	return out
}

// Len returns the number of entries in the table.
func (s *Store) Len() int {
	return len(s.entries)
}

// Names returns all mapped unix command names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source reports where the table came from: "file" or "builtin".
func (s *Store) Source() string {
	return s.source
}
