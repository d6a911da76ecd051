// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package rules holds the per-command rewrite rules. Each rule registers
// itself with the convert registry in init(); consumers blank-import this
// package to activate the full set.
package rules
