// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Poshconv Authors

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/poshconv/cli/internal/config"
	"github.com/poshconv/cli/internal/mapping"
	"github.com/poshconv/cli/internal/prompts"
)

type mappingsOptions struct {
	mappings string
}

func newMappingsCmd() *cobra.Command {
	opts := &mappingsOptions{}

	cmd := &cobra.Command{
		Use:   "mappings [name]",
		Short: "List the unix to PowerShell mapping table",
		Long: `List all unix commands in the mapping table together with their
PowerShell templates, or look up a single command by name.`,
		Example: `  # Full table
  poshconv mappings

  # Single lookup
  poshconv mappings grep`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := mapping.Load(opts.mappings)
			if len(args) == 1 {
				return runMappingLookup(store, args[0])
			}
			return runMappingsList(store)
		},
	}

	cmd.Flags().StringVar(&opts.mappings, "mappings", config.DefaultMappings, "Path to a JSON mapping file")

	return cmd
}

func runMappingsList(store *mapping.Store) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "UNIX\tPOWERSHELL")

	for _, name := range store.Names() {
		template, _ := store.Get(name)
		_, _ = fmt.Fprintf(w, "%s\t%s\n", name, template)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d commands (%s table)\n", store.Len(), store.Source())
	return nil
}

func runMappingLookup(store *mapping.Store, name string) error {
	template, ok := store.Get(name)
	if !ok {
		return fmt.Errorf("no mapping found for command: %s", name)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Unix", Value: name},
		{Label: "PowerShell", Value: template},
	}, "")
	return nil
}
