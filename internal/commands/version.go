// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poshconv/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Example: `  # Show the CLI version
  poshconv version`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
