// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poshconv/cli/internal/config"
	"github.com/poshconv/cli/internal/convert"
	"github.com/poshconv/cli/internal/mapping"
	"github.com/poshconv/cli/internal/prompts"
)

type convertOptions struct {
	explain  bool
	mappings string
}

func newConvertCmd() *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert [command...]",
		Short: "Translate a unix command line to PowerShell",
		Long: `Translate a single-line unix shell command into its closest PowerShell
equivalent. Without arguments an interactive prompt asks for the command.`,
		Example: `  # Interactive mode
  poshconv convert

  # One-shot translation
  poshconv convert ls -la

  # With explanation
  poshconv convert --explain grep foo file.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args)
		},
	}

	cmd.Flags().BoolVarP(&opts.explain, "explain", "e", false, "Include a human-readable explanation")
	cmd.Flags().StringVar(&opts.mappings, "mappings", config.DefaultMappings, "Path to a JSON mapping file")

	// Flags of the translated command must reach the engine untouched.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runConvert(opts *convertOptions, args []string) error {
	line := strings.Join(args, " ")
	explain := opts.explain

	// Prompt for any missing values
	if line == "" {
		if err := prompts.RunConvertForm(&line, &explain); err != nil {
			return err
		}
	}

	if strings.TrimSpace(line) == "" {
		return errors.New("command cannot be empty")
	}

	engine := convert.NewEngine(mapping.Load(opts.mappings))
	result := engine.Convert(line)

	fields := []prompts.ResultField{
		{Label: "Unix", Value: result.UnixCommand},
		{Label: "PowerShell", Value: result.PowerShellCommand},
	}
	if explain {
		fields = append(fields, prompts.ResultField{Label: "Explanation", Value: result.Explanation})
	}
	prompts.PrintResult(fields, "")

	return nil
}
