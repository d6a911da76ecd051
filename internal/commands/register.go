// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	// Import rules to auto-register the full rewrite set.
	_ "github.com/poshconv/cli/internal/convert/rules"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "poshconv",
		Short: "Translate unix shell commands to their PowerShell equivalents",
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newMappingsCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
